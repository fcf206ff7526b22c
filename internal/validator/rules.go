package validator

import (
	"fmt"
	"math"

	"facturo/internal/domain"
)

const (
	// Tolerance for sums recomputed from the record's own items.
	sumTolerance = 0.01
	// Tolerance before a stated total is flagged as disagreeing with
	// subtotal plus tax. Recognized text rounds aggressively, so this
	// is loose on purpose.
	reconTolerance = 1.00
)

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func fmtf(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// recordRule adapts a validate func into a Rule.
type recordRule struct {
	ruleKey  string
	ruleName string
	severity Severity
	validate func(*domain.InvoiceRecord) []Result
}

func (r *recordRule) RuleKey() string    { return r.ruleKey }
func (r *recordRule) RuleName() string   { return r.ruleName }
func (r *recordRule) Severity() Severity { return r.severity }

func (r *recordRule) Validate(rec *domain.InvoiceRecord) []Result {
	results := r.validate(rec)
	for i := range results {
		results[i].RuleKey = r.ruleKey
		results[i].RuleName = r.ruleName
		results[i].Severity = r.severity
	}
	return results
}

// DefaultRules returns the built-in rule set for extracted records.
func DefaultRules() []Rule {
	return []Rule{
		&recordRule{
			ruleKey: "math.subtotal", ruleName: "Math: Subtotal",
			severity: SeverityError,
			validate: func(rec *domain.InvoiceRecord) []Result {
				expected := 0.0
				for _, it := range rec.Items {
					expected += float64(it.Qty) * it.UnitPrice
				}
				passed := approxEqual(rec.Subtotal, expected, sumTolerance)
				msg := "Math: Subtotal: subtotal matches item sum"
				if !passed {
					msg = fmt.Sprintf("Math: Subtotal: subtotal mismatch (expected %s, got %s)", fmtf(expected), fmtf(rec.Subtotal))
				}
				return []Result{{
					Passed: passed, FieldPath: "subtotal",
					Expected: fmtf(expected), Actual: fmtf(rec.Subtotal), Message: msg,
				}}
			},
		},
		&recordRule{
			ruleKey: "items.positive", ruleName: "Items: Positive Quantity And Price",
			severity: SeverityError,
			validate: func(rec *domain.InvoiceRecord) []Result {
				results := make([]Result, 0, len(rec.Items))
				for i, it := range rec.Items {
					passed := it.Qty > 0 && it.UnitPrice > 0
					msg := fmt.Sprintf("Items: item %d has positive quantity and price", i)
					if !passed {
						msg = fmt.Sprintf("Items: item %d has non-positive quantity or price (qty %d, price %s)", i, it.Qty, fmtf(it.UnitPrice))
					}
					results = append(results, Result{
						Passed: passed, FieldPath: fmt.Sprintf("items[%d]", i),
						Actual: fmt.Sprintf("qty=%d price=%s", it.Qty, fmtf(it.UnitPrice)), Message: msg,
					})
				}
				return results
			},
		},
		&recordRule{
			ruleKey: "math.total_reconciliation", ruleName: "Math: Total Reconciliation",
			severity: SeverityWarning,
			validate: func(rec *domain.InvoiceRecord) []Result {
				expected := rec.Subtotal + rec.Tax
				passed := approxEqual(rec.Total, expected, reconTolerance)
				msg := "Math: Total Reconciliation: total agrees with subtotal plus tax"
				if !passed {
					msg = fmt.Sprintf("Math: Total Reconciliation: stated total %s disagrees with computed %s; the stated total is kept", fmtf(rec.Total), fmtf(expected))
				}
				return []Result{{
					Passed: passed, FieldPath: "total",
					Expected: fmtf(expected), Actual: fmtf(rec.Total), Message: msg,
				}}
			},
		},
		&recordRule{
			ruleKey: "record.usable", ruleName: "Record: Usable",
			severity: SeverityError,
			validate: func(rec *domain.InvoiceRecord) []Result {
				passed := rec.Usable()
				msg := "Record: record has items and a positive total"
				if !passed {
					msg = fmt.Sprintf("Record: record is not usable (%d items, total %s)", len(rec.Items), fmtf(rec.Total))
				}
				return []Result{{
					Passed: passed, FieldPath: "items",
					Actual: fmt.Sprintf("items=%d total=%s", len(rec.Items), fmtf(rec.Total)), Message: msg,
				}}
			},
		},
		&recordRule{
			ruleKey: "fields.buyer_name", ruleName: "Fields: Buyer Name",
			severity: SeverityWarning,
			validate: func(rec *domain.InvoiceRecord) []Result {
				passed := rec.BuyerName != "" && rec.BuyerName != "Unknown Customer"
				msg := "Fields: buyer name was extracted"
				if !passed {
					msg = "Fields: buyer name fell back to the default"
				}
				return []Result{{
					Passed: passed, FieldPath: "buyer_name",
					Actual: rec.BuyerName, Message: msg,
				}}
			},
		},
	}
}
