package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBRL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{
			name:  "thousands and cents",
			input: "R$ 1.549,65",
			want:  1549.65,
		},
		{
			name:  "zero",
			input: "R$ 0,00",
			want:  0,
		},
		{
			name:  "no cents",
			input: "R$ 899",
			want:  899,
		},
		{
			name:  "cents only",
			input: "R$ 899,90",
			want:  899.90,
		},
		{
			name:  "no currency symbol",
			input: "1.234,50",
			want:  1234.50,
		},
		{
			name:  "garbage",
			input: "garbage",
			want:  0,
		},
		{
			name:  "empty",
			input: "",
			want:  0,
		},
		{
			name:  "negative clamps to zero",
			input: "R$ -5,00",
			want:  0,
		},
		{
			name:  "nan text is not a price",
			input: "nan",
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBRL(tt.input))
		})
	}
}
