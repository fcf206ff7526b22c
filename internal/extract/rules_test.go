package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_CascadeOrder(t *testing.T) {
	rules := []Rule{
		NewRule(`Vendeur\s*:\s*(.+)`),
		NewRule(`Société\s*:\s*(.+)`),
	}

	assert.Equal(t, "Acme", String("Vendeur: Acme\nSociété: Other", rules))
	assert.Equal(t, "Other", String("Société: Other", rules))
	assert.Equal(t, NotFound, String("nothing here", rules))
}

func TestString_LastCaptureGroupWins(t *testing.T) {
	rules := []Rule{NewRule(`(?:Total\s*(?:TTC)?|Prix total)\s*:?\s*([\d.,]+)`)}

	assert.Equal(t, "99", String("Total TTC : 99", rules))
	assert.Equal(t, "87,5", String("Prix total: 87,5", rules))
}

func TestString_EmptyGroupSkipsRule(t *testing.T) {
	// "sans commande" matches the label but captures nothing; the
	// cascade must fall through to NotFound instead of returning "".
	rules := []Rule{NewRule(`Commande\s*:?\s*(.*)`)}

	assert.Equal(t, NotFound, String("une note sans commande", rules))
}

func TestString_CaseInsensitive(t *testing.T) {
	rules := []Rule{NewRule(`Client\s*:\s*(.+)`)}

	assert.Equal(t, "Jean", String("CLIENT : Jean", rules))
	assert.Equal(t, "Jean", String("client: Jean", rules))
}

func TestNumber(t *testing.T) {
	rules := []Rule{NewRule(`TVA\s*:?\s*([\d.,]+)`)}

	assert.Equal(t, 9.0, Number("TVA : 9", rules))
	assert.Equal(t, 20.5, Number("tva: 20,5", rules))
	assert.Equal(t, 0.0, Number("no tax here", rules))
}
