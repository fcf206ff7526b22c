package validator

import "facturo/internal/domain"

// Severity classifies how a failed rule affects a record.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Result is the outcome of evaluating one rule against one record.
type Result struct {
	RuleKey   string   `json:"rule_key"`
	RuleName  string   `json:"rule_name"`
	Passed    bool     `json:"passed"`
	Severity  Severity `json:"severity"`
	FieldPath string   `json:"field_path"`
	Expected  string   `json:"expected_value,omitempty"`
	Actual    string   `json:"actual_value,omitempty"`
	Message   string   `json:"message"`
}

// Rule is a single built-in validation rule for extracted records.
type Rule interface {
	RuleKey() string
	RuleName() string
	Severity() Severity
	Validate(rec *domain.InvoiceRecord) []Result
}
