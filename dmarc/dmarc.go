package dmarc

import (
	"errors"
)

// ErrDNS indicates a DNS lookup error occurred.
var ErrDNS = errors.New("dmarc: DNS lookup error")

// Version is the tag that starts a DMARC record. It is matched as a
// case-insensitive prefix, so "v=DMARC1" and "v=dmarc1" both qualify.
const Version = "v=DMARC"

// Policy determines how receivers should handle messages that fail DMARC.
type Policy string

const (
	// PolicyNone requests no specific action be taken for failing messages.
	// This is typically used for monitoring/reporting during initial deployment.
	PolicyNone Policy = "none"

	// PolicyQuarantine requests that failing messages be treated as suspicious.
	PolicyQuarantine Policy = "quarantine"

	// PolicyReject requests that failing messages be rejected.
	PolicyReject Policy = "reject"
)

// Enforcing reports whether p asks receivers to act on failing mail.
// Only the exact value "none" is treated as monitor-only.
func (p Policy) Enforcing() bool {
	return p != PolicyNone
}
