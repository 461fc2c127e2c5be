package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"padded title case", " Tomato ", "tomato"},
		{"already normalized", "tomato", "tomato"},
		{"tabs and newlines", "\tOlive Oil\n", "olive oil"},
		{"inner spacing kept", "Brown  Sugar", "brown  sugar"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"decomposed accent", "Cre\u0301me", "cr\u00e9me"},
		{"non ascii upper", "ÉCLAIR", "éclair"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{" Tomato ", "Créme Brûlée", "  SALT", "kitchen tools"} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), s)
	}
}

func TestNormalizeCollides(t *testing.T) {
	assert.Equal(t, Normalize("Salt"), Normalize(" salt "))
}

func TestTrimKey(t *testing.T) {
	assert.Equal(t, "Ana@Example.com", TrimKey("  Ana@Example.com "))
}
