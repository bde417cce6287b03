package dns

import (
	"fmt"
	"strings"

	mdns "github.com/miekg/dns"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// NormalizeDomain returns name in the lower-case ASCII form used for
// queries, without a trailing dot.
//
// Internationalized names are converted to A-labels. Names that are not
// valid DNS names, and names that are themselves an ICANN public suffix
// ("com", "co.uk"), are rejected with ErrInvalidDomain.
func NormalizeDomain(name string) (string, error) {
	d := strings.TrimSuffix(strings.TrimSpace(name), ".")
	if d == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidDomain)
	}

	ascii, err := idna.Lookup.ToASCII(d)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDomain, name, err)
	}
	ascii = strings.ToLower(ascii)

	if _, ok := mdns.IsDomainName(ascii); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, name)
	}

	if suffix, icann := publicsuffix.PublicSuffix(ascii); icann && suffix == ascii {
		return "", fmt.Errorf("%w: %q is a public suffix", ErrInvalidDomain, name)
	}

	return ascii, nil
}
