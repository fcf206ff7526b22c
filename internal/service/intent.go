package service

import "strings"

// invoiceTriggers are the chat phrases that ask the bot to produce an
// invoice from whatever it has seen so far. French and English, matched
// as substrings of the lowercased message.
var invoiceTriggers = []string{
	"donner le facture",
	"donner moi mon facture",
	"can you give me the invoice",
	"generate my pdf facture",
	"créer pdf",
	"générer la facture",
}

// IsInvoiceIntent reports whether a chat message asks for an invoice.
func IsInvoiceIntent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, trigger := range invoiceTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
