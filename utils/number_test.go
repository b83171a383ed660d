package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  float64
	}{
		{"parenthesized negative", "(1.234,56)", -1234.56},
		{"dots as thousands", "1.234.567", 1234567.0},
		{"comma decimal", "1234,5", 1234.5},
		{"both separators", "29.454.653,25", 29454653.25},
		{"plain integer", "54515060", 54515060.0},
		{"leading minus", "-3.000.000", -3000000.0},
		{"unicode minus", "−12,5", -12.5},
		{"single dot kept as decimal", "12.5", 12.5},
		{"surrounding whitespace", "  7,25 ", 7.25},
		{"unparseable", "abc", 0.0},
		{"empty", "", 0.0},
		{"comma used twice", "1,234,567", 0.0},
		{"empty parentheses", "()", 0.0},
		{"signed inside parentheses", "(-1.234,56)", -1234.56},
		{"unicode minus inside parentheses", "(−5.000)", -5.0},
		{"infinity word", "inf", 0.0},
		{"not a number word", "NaN", 0.0},
		{"overflow", "1e999", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeNumber(tt.token), 1e-9)
		})
	}
}

func TestNumberTokenStopsOnDigit(t *testing.T) {
	assert.Equal(t, "29.454.653", NumberToken.FindString("AKIŞLARI ... 29.454.653."))
	assert.Equal(t, "(1.234,56)", NumberToken.FindString("toplam (1.234,56) TL"))
	assert.Equal(t, "5", NumberToken.FindString("(Dipnot 5)"))
	assert.Equal(t, "", NumberToken.FindString("no digits here ..."))
	assert.Equal(t, "-1.234,56", NumberToken.FindString("toplam (-1.234,56) TL"))
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 8, CountDigits("(29.454.653)"))
	assert.Equal(t, 0, CountDigits("..."))
}
