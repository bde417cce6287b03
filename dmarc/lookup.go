package dmarc

import (
	"context"
	"fmt"
	"strings"

	"github.com/synqronlabs/spoofable/dns"
)

var isDMARC = dns.HasPrefixFold(Version)

// RecordName returns the name the DMARC record for domain is published at.
func RecordName(domain string) string {
	return "_dmarc." + strings.TrimSuffix(domain, ".")
}

// Lookup looks up the DMARC TXT record for the given domain.
//
// Only "_dmarc.<domain>" is queried; there is no fallback to the
// organizational domain. A missing record returns found=false and a nil
// error. Any other DNS failure is wrapped with ErrDNS.
func Lookup(ctx context.Context, resolver dns.Resolver, domain string) (record string, found bool, err error) {
	record, found, err = dns.FindTXT(ctx, resolver, RecordName(domain), isDMARC)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrDNS, err)
	}
	return record, found, nil
}
