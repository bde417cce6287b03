// Package spoofable decides whether a domain's SPF and DMARC records are
// weak enough for a third party to forge mail from it.
//
// A domain is spoofable when any of the following holds:
//   - it publishes no SPF record
//   - its SPF record has neither a "-all" nor a "~all" mechanism
//   - it publishes no DMARC record at _dmarc.<domain>
//   - its DMARC record has no policy (p=) tag
//   - its DMARC policy is "none"
//
// # Basic Usage
//
//	resolver := dns.NewResolver(dns.ResolverConfig{})
//
//	report, err := spoofable.Evaluate(ctx, resolver, "example.com")
//	if err != nil {
//	    // Invalid domain or DNS failure; nothing was determined
//	}
//	_ = report.Write(os.Stdout, spoofable.PrintOptions{})
//
// Judge applies the same rules to records that have already been fetched
// and performs no I/O.
package spoofable
