package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvoiceIntent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"donner le facture", true},
		{"  DONNER LE FACTURE  ", true},
		{"peux-tu donner le facture s'il te plaît", true},
		{"can you give me the invoice?", true},
		{"generate my pdf facture", true},
		{"créer pdf", true},
		{"générer la facture maintenant", true},
		{"bonjour", false},
		{"je veux une facture", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInvoiceIntent(tt.text), "IsInvoiceIntent(%q)", tt.text)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("Tapez **donner le facture**")
	assert.Contains(t, html, "<strong>donner le facture</strong>")
}
