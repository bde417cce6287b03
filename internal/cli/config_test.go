package cli

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/synqronlabs/spoofable/dns"
)

func envFunc(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFunc(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	want := Config{
		Resolver: ResolverDNS,
		Timeout:  5 * time.Second,
		Retries:  2,
		LogLevel: slog.LevelWarn,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(envFunc(map[string]string{
		"SPOOFABLE_RESOLVER":    "System",
		"SPOOFABLE_NAMESERVERS": "9.9.9.9, 149.112.112.112:53,,",
		"SPOOFABLE_TIMEOUT":     "750ms",
		"SPOOFABLE_RETRIES":     "0",
		"SPOOFABLE_LOG_LEVEL":   "debug",
	}))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	want := Config{
		Resolver:    ResolverSystem,
		Nameservers: []string{"9.9.9.9", "149.112.112.112:53"},
		Timeout:     750 * time.Millisecond,
		Retries:     0,
		LogLevel:    slog.LevelDebug,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SPOOFABLE_RESOLVER", "doh"},
		{"SPOOFABLE_TIMEOUT", "soon"},
		{"SPOOFABLE_TIMEOUT", "-1s"},
		{"SPOOFABLE_RETRIES", "many"},
		{"SPOOFABLE_RETRIES", "-3"},
		{"SPOOFABLE_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			_, err := FromEnv(envFunc(map[string]string{tt.key: tt.value}))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("FromEnv() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigNewResolver(t *testing.T) {
	cfg := Config{Resolver: ResolverSystem}
	if _, ok := cfg.NewResolver(nil).(*dns.StdResolver); !ok {
		t.Errorf("system config did not build a *dns.StdResolver")
	}

	cfg = Config{
		Resolver:    ResolverDNS,
		Nameservers: []string{"192.0.2.53"},
		Timeout:     time.Second,
		Retries:     0,
	}
	r, ok := cfg.NewResolver(nil).(*dns.DNSResolver)
	if !ok {
		t.Fatalf("dns config did not build a *dns.DNSResolver")
	}
	got := r.Config()
	if got.Retries != 0 {
		t.Errorf("Retries = %d, want 0", got.Retries)
	}
	if got.Timeout != time.Second {
		t.Errorf("Timeout = %v, want 1s", got.Timeout)
	}
	if !reflect.DeepEqual(got.Nameservers, []string{"192.0.2.53:53"}) {
		t.Errorf("Nameservers = %v", got.Nameservers)
	}
}
