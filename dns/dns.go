// Package dns provides the resolver capability used to fetch the TXT records
// that carry a domain's SPF and DMARC policies.
//
// Two implementations are provided. DNSResolver talks to nameservers directly
// using github.com/miekg/dns and reports precise response codes. StdResolver
// wraps the standard library net.Resolver. MockResolver serves canned answers
// for tests.
package dns

import (
	"context"
	"errors"
	"strings"
)

// DNS lookup errors.
var (
	// ErrDNSNotFound indicates the name does not exist (NXDOMAIN) or has no
	// records of the requested type.
	ErrDNSNotFound = errors.New("dns: no records found")

	// ErrDNSTimeout indicates the query timed out.
	ErrDNSTimeout = errors.New("dns: query timed out")

	// ErrDNSServFail indicates the server failed to answer (SERVFAIL).
	ErrDNSServFail = errors.New("dns: server failure")

	// ErrDNSRefused indicates the server refused the query (REFUSED).
	ErrDNSRefused = errors.New("dns: query refused")

	// ErrInvalidDomain indicates a name that cannot be queried.
	ErrInvalidDomain = errors.New("dns: invalid domain name")
)

// Result holds the records of a lookup.
type Result[T any] struct {
	Records []T
}

// Resolver looks up TXT records. Implementations must be safe for
// concurrent use.
type Resolver interface {
	// LookupTXT returns the TXT records at name. Character-strings of a
	// single record are joined. A name without TXT records returns
	// ErrDNSNotFound.
	LookupTXT(ctx context.Context, name string) (Result[string], error)
}

// IsNotFound reports whether err is a negative answer.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDNSNotFound)
}

// IsTimeout reports whether err is a query timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrDNSTimeout)
}

// IsServFail reports whether err is a SERVFAIL answer.
func IsServFail(err error) bool {
	return errors.Is(err, ErrDNSServFail)
}

// IsTemporary reports whether a later attempt might succeed.
func IsTemporary(err error) bool {
	return IsTimeout(err) || IsServFail(err)
}

// ensureAbsolute ensures the domain name ends with a dot (FQDN format).
func ensureAbsolute(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}
