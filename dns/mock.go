package dns

import (
	"context"
	"slices"
	"sync/atomic"
)

// MockResolver is a Resolver used for testing.
// TXT maps FQDNs (with trailing dot) to record values.
type MockResolver struct {
	TXT map[string][]string

	// Fail contains names whose TXT lookup returns SERVFAIL.
	// Format: "txt example.com." (lower-case type, FQDN).
	Fail []string

	// Timeout contains names whose TXT lookup times out, in the same
	// format as Fail.
	Timeout []string

	// Queries counts LookupTXT calls. May be nil.
	Queries *atomic.Int64
}

var _ Resolver = MockResolver{}

// mockReq represents a mock DNS request.
type mockReq struct {
	Type string // E.g. "txt"
	Name string // FQDN with trailing dot
}

func (mr mockReq) String() string {
	return mr.Type + " " + mr.Name
}

// LookupTXT returns TXT records for the given domain.
func (r MockResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	if r.Queries != nil {
		r.Queries.Add(1)
	}
	if err := ctx.Err(); err != nil {
		return Result[string]{}, err
	}

	fqdn := ensureAbsolute(name)
	mr := mockReq{"txt", fqdn}

	// Check for configured failures
	if slices.Contains(r.Fail, mr.String()) {
		return Result[string]{}, ErrDNSServFail
	}
	if slices.Contains(r.Timeout, mr.String()) {
		return Result[string]{}, ErrDNSTimeout
	}

	records, ok := r.TXT[fqdn]
	if !ok || len(records) == 0 {
		return Result[string]{}, ErrDNSNotFound
	}

	return Result[string]{Records: records}, nil
}
