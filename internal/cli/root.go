// Package cli implements the spoofable command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/synqronlabs/spoofable"
	"github.com/synqronlabs/spoofable/dns"
)

// Exit codes. The verdict never affects the exit code.
const (
	ExitOK      = 0
	ExitFailure = 1 // DNS failure or output error
	ExitUsage   = 2 // bad arguments, domain or configuration
)

// Options wires the command to its environment.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// Resolver replaces the resolver built from the environment.
	Resolver dns.Resolver
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
}

// NewRootCommand returns the spoofable command.
func NewRootCommand(opts Options) *cobra.Command {
	opts.defaults()

	cmd := &cobra.Command{
		Use:   "spoofable <domain>",
		Short: "Check whether a domain's SPF and DMARC records allow spoofing",
		Long: `spoofable looks up the SPF record of a domain and the DMARC record at
_dmarc.<domain>, and reports whether mail from the domain can be forged.

A domain is spoofable when it has no SPF record, an SPF record without
"-all" or "~all", no DMARC record, a DMARC record without a policy, or a
DMARC policy of "none".

The exit status is 0 whenever the check completes, 1 when DNS fails and 2
for invalid input.

Environment:
  SPOOFABLE_RESOLVER     dns (default) or system
  SPOOFABLE_NAMESERVERS  comma-separated host[:port] list
  SPOOFABLE_TIMEOUT      per-query timeout (default 5s)
  SPOOFABLE_RETRIES      retries per query (default 2)
  SPOOFABLE_LOG_LEVEL    debug, info, warn (default) or error
  NO_COLOR               disable colored output

Example:
  spoofable example.com`,
		Version:       versionString(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args[0])
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

func run(ctx context.Context, opts Options, domain string) error {
	cfg, err := FromEnv(opts.Getenv)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(opts.Stderr)

	resolver := opts.Resolver
	if resolver == nil {
		resolver = cfg.NewResolver(logger)
	}

	e := &spoofable.Evaluator{Resolver: resolver, Logger: logger}
	report, err := e.Evaluate(ctx, domain)
	if errors.Is(err, spoofable.ErrResolution) {
		return fmt.Errorf("could not determine whether %s is spoofable: %w", domain, err)
	}
	if err != nil {
		return err
	}

	if err := report.Write(opts.Stdout, spoofable.PrintOptions{NoColor: noColor(opts.Stdout)}); err != nil {
		return &outputError{err: err}
	}
	return nil
}

// outputError is a failure to write the report.
type outputError struct {
	err error
}

func (e *outputError) Error() string { return "writing report: " + e.err.Error() }
func (e *outputError) Unwrap() error { return e.err }

// noColor reports whether output to w must be plain.
func noColor(w io.Writer) bool {
	return color.NoColor || w != io.Writer(os.Stdout)
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	opts.defaults()
	cmd := NewRootCommand(opts)
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, spoofable.ErrResolution):
		fmt.Fprintf(opts.Stderr, "error: %v\n", err)
		if dns.IsTemporary(err) {
			fmt.Fprintln(opts.Stderr, "the failure may be temporary; try again later")
		}
		return ExitFailure
	case errors.As(err, new(*outputError)):
		fmt.Fprintf(opts.Stderr, "error: %v\n", err)
		return ExitFailure
	case errors.Is(err, spoofable.ErrInvalidDomain), errors.Is(err, ErrInvalidConfig):
		fmt.Fprintf(opts.Stderr, "error: %v\n", err)
		return ExitUsage
	default:
		// Argument and flag errors from cobra.
		fmt.Fprintf(opts.Stderr, "error: %v\n\n%s", err, cmd.UsageString())
		return ExitUsage
	}
}
