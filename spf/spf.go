package spf

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/synqronlabs/spoofable/dns"
)

// Version is the version tag that starts every SPF record.
const Version = "v=spf1"

// Catch-all mechanisms that declare an enforcement stance for senders the
// record does not list.
const (
	CatchAllFail     = "-all"
	CatchAllSoftfail = "~all"
)

// ErrDNS indicates the SPF record could not be fetched.
var ErrDNS = errors.New("spf: DNS lookup error")

// isSPF reports whether a TXT record is an SPF record. The version tag is
// matched case-insensitively.
var isSPF = dns.HasPrefixFold(Version)

// Lookup returns the SPF record published at domain.
//
// A domain with no SPF record returns found=false and a nil error. Any DNS
// failure other than a negative answer is wrapped with ErrDNS.
func Lookup(ctx context.Context, resolver dns.Resolver, domain string) (record string, found bool, err error) {
	record, found, err = dns.FindTXT(ctx, resolver, domain, isSPF)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrDNS, err)
	}
	return record, found, nil
}

// HasCatchAll reports whether record contains a "-all" or "~all" mechanism.
// Both qualifiers count; this is a substring check, not a parse.
func HasCatchAll(record string) bool {
	return strings.Contains(record, CatchAllFail) || strings.Contains(record, CatchAllSoftfail)
}
