package spoofable

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/synqronlabs/spoofable/dmarc"
	"github.com/synqronlabs/spoofable/dns"
	"github.com/synqronlabs/spoofable/spf"
)

// Evaluator fetches a domain's records and judges them.
type Evaluator struct {
	// Resolver is used for both lookups. Required.
	Resolver dns.Resolver

	// Logger receives debug records about each lookup. Default discards.
	Logger *slog.Logger
}

// Evaluate is shorthand for an Evaluator with the given resolver and no
// logging.
func Evaluate(ctx context.Context, resolver dns.Resolver, domain string) (*Report, error) {
	e := &Evaluator{Resolver: resolver}
	return e.Evaluate(ctx, domain)
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

// Evaluate normalizes domain, fetches its SPF and DMARC records
// concurrently, and judges them.
//
// An invalid domain returns an error wrapping ErrInvalidDomain before any
// query is sent. A DNS failure other than a negative answer returns an error
// wrapping ErrResolution and no report.
func (e *Evaluator) Evaluate(ctx context.Context, domain string) (*Report, error) {
	d, err := dns.NormalizeDomain(domain)
	if err != nil {
		return nil, err
	}
	log := e.logger().With("domain", d)

	var spfRecord, dmarcRecord Record
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, found, err := spf.Lookup(gctx, e.Resolver, d)
		if err != nil {
			log.Debug("spf lookup failed", "error", err)
			return err
		}
		log.Debug("spf lookup", "found", found, "record", text)
		spfRecord = Record{Text: text, Found: found}
		return nil
	})

	g.Go(func() error {
		text, found, err := dmarc.Lookup(gctx, e.Resolver, d)
		if err != nil {
			log.Debug("dmarc lookup failed", "name", dmarc.RecordName(d), "error", err)
			return err
		}
		log.Debug("dmarc lookup", "name", dmarc.RecordName(d), "found", found, "record", text)
		dmarcRecord = Record{Text: text, Found: found}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w for %s: %w", ErrResolution, d, err)
	}

	report := Judge(d, spfRecord, dmarcRecord)
	log.Debug("evaluated", "spoofable", report.Spoofable, "reasons", len(report.Reasons()))
	return report, nil
}
