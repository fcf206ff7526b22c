package extract

import (
	"math/rand/v2"
	"strings"
)

// RefSource produces product references for reconstructed line items.
// It is an interface so tests can pin the generated suffixes.
type RefSource interface {
	Ref(category string) string
}

const refAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomRefSource builds refs like SPO-4K7Q2N: a three-letter category
// prefix (PRD when the category is unknown) and a random suffix.
type randomRefSource struct{}

func (randomRefSource) Ref(category string) string {
	prefix := "PRD"
	if category != "" {
		r := []rune(strings.ToUpper(category))
		if len(r) > 3 {
			r = r[:3]
		}
		prefix = string(r)
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('-')
	for i := 0; i < 6; i++ {
		b.WriteByte(refAlphabet[rand.IntN(len(refAlphabet))])
	}
	return b.String()
}
