package spoofable

import (
	"errors"

	"github.com/synqronlabs/spoofable/dns"
)

var (
	// ErrResolution indicates a DNS failure prevented the evaluation. The
	// domain may or may not be spoofable.
	ErrResolution = errors.New("spoofable: could not resolve records")

	// ErrInvalidDomain is re-exported from the dns package for convenience.
	ErrInvalidDomain = dns.ErrInvalidDomain
)
