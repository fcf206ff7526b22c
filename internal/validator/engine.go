package validator

import (
	"time"

	"facturo/internal/domain"
)

// Report statuses.
const (
	StatusPassed       = "passed"
	StatusWithWarnings = "passed_with_warnings"
	StatusFailed       = "failed"
)

// Report aggregates rule results for one record.
type Report struct {
	Status       string    `json:"status"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	Results      []Result  `json:"results"`
	ValidatedAt  time.Time `json:"validated_at"`
}

// Engine runs a fixed rule set against extracted records.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine; with no rules given it uses DefaultRules.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Validate evaluates every rule and rolls the failures up into a
// status: failed on any error, passed_with_warnings on warnings only.
func (e *Engine) Validate(rec *domain.InvoiceRecord) *Report {
	report := &Report{
		Status:      StatusPassed,
		ValidatedAt: time.Now().UTC(),
	}
	for _, rule := range e.rules {
		for _, res := range rule.Validate(rec) {
			report.Results = append(report.Results, res)
			if res.Passed {
				continue
			}
			switch res.Severity {
			case SeverityError:
				report.ErrorCount++
			case SeverityWarning:
				report.WarningCount++
			}
		}
	}
	if report.ErrorCount > 0 {
		report.Status = StatusFailed
	} else if report.WarningCount > 0 {
		report.Status = StatusWithWarnings
	}
	return report
}
