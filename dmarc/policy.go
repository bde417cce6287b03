package dmarc

import (
	"regexp"
	"strings"
)

// policyTag matches a p= field between semicolons. The value runs to the
// next semicolon or to the end of the record.
var policyTag = regexp.MustCompile(`(?:^|;)\s*p\s*=([^;]*)`)

// PolicyTag extracts the value of the p= tag from a DMARC record, with
// surrounding whitespace removed. ok is false when the record has no p= tag
// or the tag is empty.
//
//	PolicyTag("v=DMARC1; p=none")   // "none", true
//	PolicyTag("v=DMARC1; p=reject; rua=mailto:x@example.com") // "reject", true
//	PolicyTag("v=DMARC1; sp=none")  // "", false
func PolicyTag(record string) (value string, ok bool) {
	m := policyTag.FindStringSubmatch(record)
	if m == nil {
		return "", false
	}
	value = strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}
	return value, true
}
