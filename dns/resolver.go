package dns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	mdns "github.com/miekg/dns"
)

// ResolverConfig contains configuration for the DNS resolver.
type ResolverConfig struct {
	// Nameservers is a list of DNS servers to query (e.g., "8.8.8.8:53").
	// If empty, system resolvers from /etc/resolv.conf are used,
	// falling back to public DNS (8.8.8.8, 1.1.1.1).
	Nameservers []string

	// Timeout is the timeout for individual DNS queries. Default is 5 seconds.
	Timeout time.Duration

	// Retries is the number of retries for failed queries. Default is 2.
	// A negative value disables retries.
	Retries int

	// Logger receives a debug record per exchange. Default discards.
	Logger *slog.Logger
}

// DNSResolver implements the Resolver interface using github.com/miekg/dns.
type DNSResolver struct {
	config    ResolverConfig
	client    *mdns.Client
	tcpClient *mdns.Client
}

// NewResolver creates a new DNS resolver.
func NewResolver(config ResolverConfig) *DNSResolver {
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}
	switch {
	case config.Retries == 0:
		config.Retries = 2
	case config.Retries < 0:
		config.Retries = 0
	}
	if len(config.Nameservers) == 0 {
		config.Nameservers = getSystemNameservers()
	} else {
		servers := make([]string, 0, len(config.Nameservers))
		for _, s := range config.Nameservers {
			servers = append(servers, withPort(s, "53"))
		}
		config.Nameservers = servers
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &DNSResolver{
		config: config,
		client: &mdns.Client{
			Timeout: config.Timeout,
		},
		tcpClient: &mdns.Client{
			Net:     "tcp",
			Timeout: config.Timeout,
		},
	}
}

// getSystemNameservers tries to get system DNS servers from resolv.conf.
func getSystemNameservers() []string {
	config, err := mdns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(config.Servers) == 0 {
		// Fallback to common public DNS servers
		return []string{"8.8.8.8:53", "1.1.1.1:53"}
	}

	servers := make([]string, 0, len(config.Servers))
	for _, s := range config.Servers {
		servers = append(servers, withPort(s, config.Port))
	}
	return servers
}

// withPort appends port to a bare host, bracketing IPv6 literals.
func withPort(server, port string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	if port == "" {
		port = "53"
	}
	return net.JoinHostPort(strings.Trim(server, "[]"), port)
}

// exchange sends m to server, retrying over TCP when the UDP answer is
// truncated.
func (r *DNSResolver) exchange(ctx context.Context, m *mdns.Msg, server string) (*mdns.Msg, error) {
	resp, rtt, err := r.client.ExchangeContext(ctx, m, server)
	if err != nil {
		return nil, err
	}
	r.config.Logger.Debug("dns exchange",
		"server", server,
		"name", m.Question[0].Name,
		"rcode", mdns.RcodeToString[resp.Rcode],
		"rtt", rtt)

	if !resp.Truncated {
		return resp, nil
	}

	resp, rtt, err = r.tcpClient.ExchangeContext(ctx, m, server)
	if err != nil {
		return nil, err
	}
	r.config.Logger.Debug("dns exchange over tcp",
		"server", server,
		"name", m.Question[0].Name,
		"rcode", mdns.RcodeToString[resp.Rcode],
		"rtt", rtt)
	return resp, nil
}

// query performs a DNS query with retries across all nameservers.
func (r *DNSResolver) query(ctx context.Context, name string, qtype uint16) (*mdns.Msg, error) {
	m := new(mdns.Msg)
	m.SetQuestion(ensureAbsolute(name), qtype)
	m.RecursionDesired = true
	m.SetEdns0(4096, false)

	var lastErr error

	for i := 0; i <= r.config.Retries; i++ {
		for _, server := range r.config.Nameservers {
			// Check context cancellation
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			resp, err := r.exchange(ctx, m, server)
			if err != nil {
				r.config.Logger.Debug("dns exchange failed", "server", server, "name", name, "attempt", i+1, "error", err)
				lastErr = convertExchangeError(err)
				continue
			}

			// Check response code
			switch resp.Rcode {
			case mdns.RcodeSuccess:
				return resp, nil
			case mdns.RcodeNameError: // NXDOMAIN
				return nil, ErrDNSNotFound
			case mdns.RcodeServerFailure:
				lastErr = ErrDNSServFail
				continue
			case mdns.RcodeRefused:
				lastErr = ErrDNSRefused
				continue
			default:
				lastErr = fmt.Errorf("dns: unexpected rcode %s", mdns.RcodeToString[resp.Rcode])
				continue
			}
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrDNSServFail
}

// convertExchangeError maps transport errors from the client to package
// errors.
func convertExchangeError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrDNSTimeout, err)
	}
	return fmt.Errorf("dns query failed: %w", err)
}

// LookupTXT retrieves TXT records for the given domain.
func (r *DNSResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	resp, err := r.query(ctx, name, mdns.TypeTXT)
	if err != nil {
		return Result[string]{}, err
	}

	var records []string
	for _, rr := range resp.Answer {
		if txt, ok := rr.(*mdns.TXT); ok {
			// TXT records may be split into multiple character strings, join them
			// per RFC 7208 Section 3.3
			records = append(records, strings.Join(txt.Txt, ""))
		}
	}

	if len(records) == 0 {
		return Result[string]{}, ErrDNSNotFound
	}

	return Result[string]{Records: records}, nil
}

// Config returns the resolver's current configuration.
func (r *DNSResolver) Config() ResolverConfig {
	return r.config
}
