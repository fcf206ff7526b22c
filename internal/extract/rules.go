package extract

import (
	"regexp"
	"strings"
)

// NotFound is the sentinel returned by String when no rule matched.
const NotFound = "N/A"

// Rule is one pattern in a field cascade. The value of interest is the
// last capturing group of the expression.
type Rule struct {
	re *regexp.Regexp
}

// NewRule compiles expr as a case-insensitive pattern. It panics on an
// invalid expression, so rule lists are declared at package init.
func NewRule(expr string) Rule {
	return Rule{re: regexp.MustCompile(`(?i)` + expr)}
}

// String runs the cascade in order and returns the trimmed last capture
// group of the first rule that produced a non-empty value, or NotFound.
func String(text string, rules []Rule) string {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(m[len(m)-1])
		if v != "" {
			return v
		}
	}
	return NotFound
}

// Number is String followed by CleanNumber; 0 when no rule matched.
func Number(text string, rules []Rule) float64 {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := strings.TrimSpace(m[len(m)-1])
		if v != "" {
			return CleanNumber(v)
		}
	}
	return 0
}
