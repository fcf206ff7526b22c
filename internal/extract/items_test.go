package extract

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotBrands(t *testing.T) {
	e := newTestExtractor()

	text := "Achat iPhone et Adidas\nLivraison prévue lundi"
	mentions := e.SpotBrands(text)

	names := make([]string, 0, len(mentions))
	for _, m := range mentions {
		names = append(names, m.Matched)
		assert.GreaterOrEqual(t, m.Confidence, 0.7)
		assert.NotEmpty(t, m.Category)
	}
	assert.Contains(t, names, "iPhone")
	assert.Contains(t, names, "Adidas")
	assert.True(t, sort.StringsAreSorted(names))
}

func TestSpotBrands_DedupesKeepingHighestConfidence(t *testing.T) {
	e := newTestExtractor()

	// "iPhone" appears alone (exact) and inside a longer window; only
	// one mention survives, carrying the best score.
	mentions := e.SpotBrands("iPhone\niPhone 15 Pro")

	count := 0
	for _, m := range mentions {
		if m.Matched == "iPhone" {
			count++
			assert.GreaterOrEqual(t, m.Confidence, 1.0)
		}
	}
	assert.Equal(t, 1, count)
}

func TestSpotBrands_EmptyText(t *testing.T) {
	e := newTestExtractor()

	assert.Empty(t, e.SpotBrands(""))
	assert.Empty(t, e.SpotBrands("zzz qqq xxx"))
}

func TestRandomRefSource(t *testing.T) {
	var src randomRefSource

	ref := src.Ref("Sportswear")
	require.Len(t, ref, 10)
	assert.True(t, strings.HasPrefix(ref, "SPO-"))

	assert.True(t, strings.HasPrefix(src.Ref(""), "PRD-"))

	suffix := strings.TrimPrefix(ref, "SPO-")
	for _, r := range suffix {
		assert.Contains(t, refAlphabet, string(r))
	}
}
