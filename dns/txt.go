package dns

import (
	"context"
	"fmt"
	"strings"
)

// FindTXT looks up the TXT records at name and returns the first one
// accepted by match.
//
// Enclosing quote characters are stripped before matching. A negative answer
// is not an error: it returns found=false. Any other lookup failure is
// returned so callers never confuse a broken resolver with a missing record.
func FindTXT(ctx context.Context, r Resolver, name string, match func(string) bool) (txt string, found bool, err error) {
	result, err := r.LookupTXT(ctx, name)
	if err != nil {
		if IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("txt lookup for %s: %w", name, err)
	}

	for _, record := range result.Records {
		record = Unquote(record)
		if match(record) {
			return record, true, nil
		}
	}
	return "", false, nil
}

// HasPrefixFold returns a predicate reporting whether a record starts with
// prefix, ignoring case.
func HasPrefixFold(prefix string) func(string) bool {
	return func(s string) bool {
		return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
	}
}

// Unquote strips the quote characters zone-file encoding puts around TXT
// text.
func Unquote(s string) string {
	return strings.Trim(s, `"`)
}
