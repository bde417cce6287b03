// Package spf inspects a domain's Sender Policy Framework (SPF) record for
// the weaknesses that let a third party send mail as that domain.
//
// SPF lets a domain owner publish, as a DNS TXT record starting with
// "v=spf1", the hosts allowed to send mail for the domain. A record that
// ends without an "all" mechanism qualified as fail ("-all") or softfail
// ("~all") leaves receivers with no stance on unlisted senders.
//
// Basic Usage:
//
//	resolver := dns.NewResolver(dns.ResolverConfig{})
//
//	record, found, err := spf.Lookup(ctx, resolver, "example.com")
//	if err != nil {
//	    // DNS failed; the weakness cannot be determined
//	}
//	if !found || !spf.HasCatchAll(record) {
//	    // Weak SPF
//	}
//
// References:
//   - RFC 7208: Sender Policy Framework (SPF)
package spf
