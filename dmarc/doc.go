// Package dmarc inspects the Domain-based Message Authentication, Reporting,
// and Conformance (DMARC) record a domain publishes at "_dmarc.<domain>".
//
// The record's policy tag (p=) tells receivers what to do with mail that
// fails authentication. "none" asks for monitoring only, so a record with
// p=none, or with no p= tag at all, offers no protection against forged
// From addresses.
//
// # Basic Usage
//
//	record, found, err := dmarc.Lookup(ctx, resolver, "example.com")
//	if err != nil {
//	    // DNS failed; the policy cannot be determined
//	}
//	policy, ok := dmarc.PolicyTag(record)
//	if !found || !ok || dmarc.Policy(policy) == dmarc.PolicyNone {
//	    // No enforcement
//	}
//
// # References
//
//   - RFC 7489: Domain-based Message Authentication, Reporting, and Conformance (DMARC)
package dmarc
