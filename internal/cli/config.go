package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/synqronlabs/spoofable/dns"
)

// ErrInvalidConfig indicates an environment variable has an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Resolver kinds selectable with SPOOFABLE_RESOLVER.
const (
	ResolverDNS    = "dns"
	ResolverSystem = "system"
)

// Config captures the resolver and logging settings of a run.
type Config struct {
	Resolver    string
	Nameservers []string
	Timeout     time.Duration
	Retries     int
	LogLevel    slog.Level
}

// FromEnv builds a Config from SPOOFABLE_* environment variables so main
// stays lean. Unset variables take their defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Resolver: ResolverDNS,
		Timeout:  5 * time.Second,
		Retries:  2,
		LogLevel: slog.LevelWarn,
	}

	if v := getenv("SPOOFABLE_RESOLVER"); v != "" {
		switch v = strings.ToLower(v); v {
		case ResolverDNS, ResolverSystem:
			cfg.Resolver = v
		default:
			return Config{}, fmt.Errorf("%w: SPOOFABLE_RESOLVER=%q, want %q or %q", ErrInvalidConfig, v, ResolverDNS, ResolverSystem)
		}
	}

	if v := getenv("SPOOFABLE_NAMESERVERS"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Nameservers = append(cfg.Nameservers, s)
			}
		}
	}

	if v := getenv("SPOOFABLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: SPOOFABLE_TIMEOUT=%q is not a positive duration", ErrInvalidConfig, v)
		}
		cfg.Timeout = d
	}

	if v := getenv("SPOOFABLE_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: SPOOFABLE_RETRIES=%q is not a non-negative integer", ErrInvalidConfig, v)
		}
		cfg.Retries = n
	}

	if v := getenv("SPOOFABLE_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%w: SPOOFABLE_LOG_LEVEL=%q", ErrInvalidConfig, v)
		}
	}

	return cfg, nil
}

// NewLogger returns a text logger on w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// NewResolver builds the configured resolver.
func (c Config) NewResolver(logger *slog.Logger) dns.Resolver {
	if c.Resolver == ResolverSystem {
		return dns.NewStdResolver()
	}

	retries := c.Retries
	if retries == 0 {
		retries = -1 // zero means "default" to dns.NewResolver
	}
	return dns.NewResolver(dns.ResolverConfig{
		Nameservers: c.Nameservers,
		Timeout:     c.Timeout,
		Retries:     retries,
		Logger:      logger,
	})
}
