package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"facturo/internal/domain"
)

// Threshold used when resolving an order line's base phrase against the
// catalog. Looser than brand spotting because order lines carry extra
// words ("chaussures de sport") around the brand.
const baseMatchThreshold = 0.6

var (
	orderBaseRe  = regexp.MustCompile(`(\d+)\s*([a-zA-Z0-9\s]+?)(?:,|$)`)
	colorListRe  = regexp.MustCompile(`(?i)couleurs\s*:?\s*(.*)`)
	colorEntryRe = regexp.MustCompile(`(\d+)\s*([a-zA-Z\s]+)`)
)

// lineItems reconstructs line items from the order line, if any.
// A "couleurs: 2 noir, 1 blanc" breakdown yields one item per variant;
// otherwise the whole quantity lands on a single item. The unit price
// is the explicit per-unit price when stated, else the stated total
// spread over the quantity, else 0.
func (e *Extractor) lineItems(text string, unitPrice, statedTotal float64) []domain.LineItem {
	line := String(text, orderLineRules)
	if line == NotFound {
		return nil
	}
	base := orderBaseRe.FindStringSubmatch(line)
	if base == nil {
		return nil
	}
	totalQty, _ := strconv.Atoi(base[1])
	baseProduct := strings.TrimSpace(base[2])

	category := ""
	confidence := 0.0
	if m := e.catalog.Match(baseProduct, baseMatchThreshold); m != nil {
		category = m.Category
		confidence = m.Confidence
	}

	price := unitPrice
	if price == 0 && totalQty > 0 {
		price = statedTotal / float64(totalQty)
	}

	var items []domain.LineItem
	if colors := colorListRe.FindStringSubmatch(line); colors != nil && strings.TrimSpace(colors[1]) != "" {
		for _, part := range strings.Split(colors[1], ",") {
			cm := colorEntryRe.FindStringSubmatch(strings.TrimSpace(part))
			if cm == nil {
				continue
			}
			qty, _ := strconv.Atoi(cm[1])
			items = append(items, domain.LineItem{
				Name:       fmt.Sprintf("%s (%s)", baseProduct, strings.TrimSpace(cm[2])),
				Ref:        e.refs.Ref(category),
				Qty:        qty,
				UnitPrice:  price,
				Category:   category,
				Confidence: confidence,
			})
		}
	} else {
		items = append(items, domain.LineItem{
			Name:       baseProduct,
			Ref:        e.refs.Ref(category),
			Qty:        totalQty,
			UnitPrice:  price,
			Category:   category,
			Confidence: confidence,
		})
	}
	return items
}

// BrandMention is a brand spotted somewhere in a document.
type BrandMention struct {
	Original   string  `json:"original"`
	Matched    string  `json:"matched"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

var wordSplitRe = regexp.MustCompile(`\s+`)

// SpotBrands scans every line of the document with one, two and three
// word windows and matches each window against the catalog. Duplicate
// hits on the same brand keep the highest confidence. The result is
// sorted by brand name so output is stable.
func (e *Extractor) SpotBrands(text string) []BrandMention {
	best := make(map[string]BrandMention)

	consider := func(phrase string) {
		m := e.catalog.Match(phrase, catalogThreshold)
		if m == nil {
			return
		}
		if prev, ok := best[m.Name]; ok && prev.Confidence >= m.Confidence {
			return
		}
		best[m.Name] = BrandMention{
			Original:   phrase,
			Matched:    m.Name,
			Category:   m.Category,
			Confidence: m.Confidence,
		}
	}

	for _, line := range strings.Split(text, "\n") {
		words := wordSplitRe.Split(strings.TrimSpace(line), -1)
		for i := range words {
			consider(words[i])
			if i+1 < len(words) {
				consider(words[i] + " " + words[i+1])
			}
			if i+2 < len(words) {
				consider(words[i] + " " + words[i+1] + " " + words[i+2])
			}
		}
	}

	mentions := make([]BrandMention, 0, len(best))
	for _, m := range best {
		mentions = append(mentions, m)
	}
	sort.Slice(mentions, func(i, j int) bool { return mentions[i].Matched < mentions[j].Matched })
	return mentions
}
