package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1 234,56 €", 1234.56},
		{"abc", 0},
		{"", 0},
		{"45€", 45},
		{"99", 99},
		{"12.5", 12.5},
		{"12,5", 12.5},
		{",5", 0.5},
		{"EUR 1.299,00", 0}, // both separators present, ambiguous
		{"Total: 87", 87},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanNumber(tt.in), "CleanNumber(%q)", tt.in)
	}
}
