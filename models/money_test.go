package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentsFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Cents
	}{
		{"whole dollars", 20.0, 2000},
		{"typical price", 19.99, 1999},
		{"binary-unfriendly", 0.10, 10},
		{"rounds up", 1.006, 101},
		{"rounds down", 1.004, 100},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CentsFromFloat(tt.in))
		})
	}
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "$39.98", Cents(3998).String())
	assert.Equal(t, "$0.05", Cents(5).String())
	assert.Equal(t, "-$1.50", Cents(-150).String())
}

func TestCentsFloat(t *testing.T) {
	assert.Equal(t, 39.98, Cents(3998).Float())
}
