package dns

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		isNotFound bool
		isTimeout  bool
		isServFail bool
		isTemp     bool
	}{
		{
			name:       "not found error",
			err:        ErrDNSNotFound,
			isNotFound: true,
		},
		{
			name:      "timeout error",
			err:       ErrDNSTimeout,
			isTimeout: true,
			isTemp:    true,
		},
		{
			name:       "server failure",
			err:        ErrDNSServFail,
			isServFail: true,
			isTemp:     true,
		},
		{
			name: "refused",
			err:  ErrDNSRefused,
		},
		{
			name:       "wrapped server failure",
			err:        fmt.Errorf("txt lookup: %w", ErrDNSServFail),
			isServFail: true,
			isTemp:     true,
		},
		{
			name: "text that only looks like not found",
			err:  errors.New("wrapper: " + ErrDNSNotFound.Error()),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.isNotFound)
			}
			if got := IsTimeout(tt.err); got != tt.isTimeout {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.isTimeout)
			}
			if got := IsServFail(tt.err); got != tt.isServFail {
				t.Errorf("IsServFail() = %v, want %v", got, tt.isServFail)
			}
			if got := IsTemporary(tt.err); got != tt.isTemp {
				t.Errorf("IsTemporary() = %v, want %v", got, tt.isTemp)
			}
		})
	}
}

// TestResolverInterface verifies that our types implement Resolver
func TestResolverInterface(t *testing.T) {
	var _ Resolver = (*DNSResolver)(nil)
	var _ Resolver = (*StdResolver)(nil)
	var _ Resolver = MockResolver{}
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(ResolverConfig{})

	if r.config.Timeout == 0 {
		t.Error("expected default timeout to be set")
	}
	if r.config.Retries == 0 {
		t.Error("expected default retries to be set")
	}
	// Should have nameservers (either from system or fallback)
	if len(r.config.Nameservers) == 0 {
		t.Error("expected nameservers to be set")
	}
	if r.config.Logger == nil {
		t.Error("expected default logger to be set")
	}
}

func TestNewResolverNameserverPorts(t *testing.T) {
	r := NewResolver(ResolverConfig{
		Nameservers: []string{"9.9.9.9", "1.1.1.1:5353", "2001:db8::53", "[2001:db8::1]:53"},
	})

	want := []string{"9.9.9.9:53", "1.1.1.1:5353", "[2001:db8::53]:53", "[2001:db8::1]:53"}
	got := r.Config().Nameservers
	if len(got) != len(want) {
		t.Fatalf("got %d nameservers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("nameserver %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewStdResolver(t *testing.T) {
	r := NewStdResolver()
	if r == nil {
		t.Fatal("expected non-nil resolver")
	}
	if r.resolver == nil {
		t.Error("expected non-nil internal resolver")
	}
}

func TestMockResolver(t *testing.T) {
	r := MockResolver{
		TXT: map[string][]string{
			"example.com.": {"v=spf1 -all"},
		},
		Fail:    []string{"txt fail.example.com."},
		Timeout: []string{"txt slow.example.com."},
	}
	ctx := context.Background()

	res, err := r.LookupTXT(ctx, "example.com")
	if err != nil {
		t.Fatalf("LookupTXT() error = %v", err)
	}
	if len(res.Records) != 1 || res.Records[0] != "v=spf1 -all" {
		t.Errorf("LookupTXT() = %v", res.Records)
	}

	if _, err := r.LookupTXT(ctx, "missing.example.com."); !IsNotFound(err) {
		t.Errorf("missing name: error = %v, want not found", err)
	}
	if _, err := r.LookupTXT(ctx, "fail.example.com"); !IsServFail(err) {
		t.Errorf("failing name: error = %v, want servfail", err)
	}
	if _, err := r.LookupTXT(ctx, "slow.example.com"); !IsTimeout(err) {
		t.Errorf("slow name: error = %v, want timeout", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := r.LookupTXT(cancelled, "example.com"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled context: error = %v, want context.Canceled", err)
	}
}

// Integration test - skip if no network
func TestDNSResolverIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	r := NewResolver(ResolverConfig{
		Nameservers: []string{"8.8.8.8:53"},
	})

	txtResult, err := r.LookupTXT(context.Background(), "google.com")
	if err != nil {
		t.Logf("TXT lookup failed (may be expected): %v", err)
	} else if len(txtResult.Records) == 0 {
		t.Log("No TXT records found for google.com")
	}
}

func TestStdResolverIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	r := NewStdResolver()
	_, err := r.LookupTXT(context.Background(), "nonexistent.invalid")
	if err != nil && !IsNotFound(err) {
		t.Logf("lookup of nonexistent.invalid failed (may be expected): %v", err)
	}
}
