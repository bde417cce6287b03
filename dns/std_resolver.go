package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// StdResolver implements the Resolver interface using the standard library net package.
// It follows the system resolver configuration and cannot tell SERVFAIL
// apart from other temporary failures. Names are queried rooted, so the
// resolv.conf search list never replaces a failure with a later NXDOMAIN.
type StdResolver struct {
	resolver *net.Resolver
}

// NewStdResolver creates a resolver using the standard library.
func NewStdResolver() *StdResolver {
	return &StdResolver{
		resolver: &net.Resolver{StrictErrors: true},
	}
}

// NewStdResolverWithDialer creates a resolver using a custom dialer.
// This allows configuring custom DNS servers while using the stdlib interface.
func NewStdResolverWithDialer(dial func(ctx context.Context, network, address string) (net.Conn, error)) *StdResolver {
	return &StdResolver{
		resolver: &net.Resolver{
			PreferGo:     true,
			StrictErrors: true,
			Dial:         dial,
		},
	}
}

// LookupTXT retrieves TXT records using the standard library.
func (r *StdResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	records, err := r.resolver.LookupTXT(ctx, ensureAbsolute(name))
	if err != nil {
		return Result[string]{}, convertError(err)
	}

	if len(records) == 0 {
		return Result[string]{}, ErrDNSNotFound
	}

	return Result[string]{Records: records}, nil
}

// convertError converts standard library DNS errors to package errors.
func convertError(err error) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return ErrDNSNotFound
		}
		if dnsErr.IsTimeout {
			return fmt.Errorf("%w: %v", ErrDNSTimeout, err)
		}
		if dnsErr.IsTemporary {
			return fmt.Errorf("%w: %v", ErrDNSServFail, err)
		}
	}

	return fmt.Errorf("dns lookup failed: %w", err)
}
