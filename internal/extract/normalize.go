package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumeric = regexp.MustCompile(`[^\d.,]`)

// CleanNumber parses a numeric amount out of noisy recognized text.
// Currency symbols, spaces and other junk are stripped, the first comma
// is treated as a French decimal separator, and anything unparseable
// comes back as 0. It never fails.
func CleanNumber(text string) float64 {
	cleaned := nonNumeric.ReplaceAllString(text, "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}
