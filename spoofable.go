package spoofable

import (
	"github.com/synqronlabs/spoofable/dmarc"
	"github.com/synqronlabs/spoofable/spf"
)

// Condition is a weakness that makes a domain spoofable.
type Condition int

const (
	// NoSPFRecord: the domain publishes no SPF record.
	NoSPFRecord Condition = iota + 1

	// SPFMissingCatchAll: the SPF record has neither "-all" nor "~all".
	SPFMissingCatchAll

	// NoDMARCRecord: nothing starting with v=DMARC at _dmarc.<domain>.
	NoDMARCRecord

	// DMARCNoPolicy: the DMARC record has no p= tag.
	DMARCNoPolicy

	// DMARCPolicyNone: the DMARC policy is "none" (monitor only).
	DMARCPolicyNone
)

var conditionNames = map[Condition]string{
	NoSPFRecord:        "no SPF record",
	SPFMissingCatchAll: "SPF record lacks -all/~all",
	NoDMARCRecord:      "no DMARC record",
	DMARCNoPolicy:      "DMARC record has no policy",
	DMARCPolicyNone:    "DMARC policy is none",
}

func (c Condition) String() string {
	if s, ok := conditionNames[c]; ok {
		return s
	}
	return "unknown condition"
}

// Record is a fetched TXT record. Found is false when the domain does not
// publish one.
type Record struct {
	Text  string
	Found bool
}

// Finding is the outcome of checking one condition.
type Finding struct {
	Condition Condition
	Held      bool
}

// Report is the outcome of an evaluation.
type Report struct {
	Domain string
	SPF    Record
	DMARC  Record

	// Policy is the DMARC p= value, empty when there is none.
	Policy dmarc.Policy

	// Findings lists every condition checked, SPF first.
	Findings []Finding

	// Spoofable is true when any finding held.
	Spoofable bool
}

// Reasons returns the conditions that held, in check order.
func (r *Report) Reasons() []Condition {
	var reasons []Condition
	for _, f := range r.Findings {
		if f.Held {
			reasons = append(reasons, f.Condition)
		}
	}
	return reasons
}

func (r *Report) add(c Condition, held bool) {
	r.Findings = append(r.Findings, Finding{Condition: c, Held: held})
	r.Spoofable = r.Spoofable || held
}

// Judge applies the spoofability rules to already fetched records.
//
// Each record contributes on its own: a missing or catch-all-less SPF
// record, and a missing, policy-less or p=none DMARC record, each make the
// domain spoofable.
func Judge(domain string, spfRecord, dmarcRecord Record) *Report {
	r := &Report{
		Domain: domain,
		SPF:    spfRecord,
		DMARC:  dmarcRecord,
	}

	if !spfRecord.Found {
		r.add(NoSPFRecord, true)
	} else {
		r.add(SPFMissingCatchAll, !spf.HasCatchAll(spfRecord.Text))
	}

	if !dmarcRecord.Found {
		r.add(NoDMARCRecord, true)
	} else if p, ok := dmarc.PolicyTag(dmarcRecord.Text); !ok {
		r.add(DMARCNoPolicy, true)
	} else {
		r.Policy = dmarc.Policy(p)
		r.add(DMARCPolicyNone, !r.Policy.Enforcing())
	}

	return r
}
