package catalog

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// DefaultThreshold is the minimum similarity required for a fuzzy
// match to be accepted when the caller does not supply one.
const DefaultThreshold = 0.7

// Category is one product category: a display name, search keywords
// and the brand names recognized inside free text.
type Category struct {
	Name     string
	Keywords []string
	Brands   []string
}

// MatchResult is the outcome of a catalog lookup. Confidence is 1.0
// for an exact match; containment and edit-distance matches carry the
// score that won the scan.
type MatchResult struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Catalog holds the category/brand data used for fuzzy product
// identification. Lookups are read-heavy and may run concurrently;
// the single mutation point (AddBrand) takes the write lock.
type Catalog struct {
	mu         sync.RWMutex
	categories []Category
}

// New builds a catalog from the given categories. The slice is copied
// so the caller cannot mutate catalog state behind the lock.
func New(categories []Category) *Catalog {
	copied := make([]Category, len(categories))
	for i, cat := range categories {
		copied[i] = Category{
			Name:     cat.Name,
			Keywords: append([]string(nil), cat.Keywords...),
			Brands:   append([]string(nil), cat.Brands...),
		}
	}
	return &Catalog{categories: copied}
}

// Default returns a catalog populated with the built-in product data.
func Default() *Catalog {
	return New(defaultCategories)
}

// Match finds the best catalog entry for a candidate phrase, or nil
// when nothing scores at or above the threshold.
//
// Three tiers, in order: exact equality short-circuits with confidence
// 1.0; containment scores max(len)/min(len); Levenshtein similarity
// 1 - dist/maxLen is considered only at or above the threshold. Every
// brand in every category is scanned — the catalog is small and fixed,
// so correctness wins over latency.
func (c *Catalog) Match(phrase string, threshold float64) *MatchResult {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var best *MatchResult
	bestScore := 0.0

	for ci := range c.categories {
		cat := &c.categories[ci]
		for _, brand := range cat.Brands {
			brandLower := strings.ToLower(brand)

			if phrase == brandLower {
				return &MatchResult{Name: brand, Category: cat.Name, Confidence: 1.0}
			}

			phraseLen := utf8.RuneCountInString(phrase)
			brandLen := utf8.RuneCountInString(brandLower)

			if strings.Contains(phrase, brandLower) || strings.Contains(brandLower, phrase) {
				confidence := float64(maxLen(phraseLen, brandLen)) / float64(minLen(phraseLen, brandLen))
				if confidence > bestScore {
					bestScore = confidence
					best = &MatchResult{Name: brand, Category: cat.Name, Confidence: confidence}
				}
			}

			dist := distance(phrase, brandLower)
			similarity := 1 - float64(dist)/float64(maxLen(phraseLen, brandLen))
			if similarity >= threshold && similarity > bestScore {
				bestScore = similarity
				best = &MatchResult{Name: brand, Category: cat.Name, Confidence: similarity}
			}
		}
	}

	if best != nil && bestScore >= threshold {
		return best
	}
	return nil
}

// AddBrand appends a custom brand to a category's brand list. It is a
// no-op when the category is unknown or the brand is already present.
func (c *Catalog) AddBrand(categoryName, brandName string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.categories {
		cat := &c.categories[i]
		if cat.Name != categoryName {
			continue
		}
		for _, b := range cat.Brands {
			if b == brandName {
				return
			}
		}
		cat.Brands = append(cat.Brands, brandName)
		return
	}
}

// AllBrands returns every brand across all categories, sorted.
func (c *Catalog) AllBrands() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var brands []string
	for i := range c.categories {
		brands = append(brands, c.categories[i].Brands...)
	}
	sort.Strings(brands)
	return brands
}

func maxLen(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}
