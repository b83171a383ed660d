package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NumberToken matches an amount: an optional sign and digits mixed with '.' and ','
// separators, or unsigned digits wrapped in accounting parentheses. It always ends on a
// digit (or the closing parenthesis) so sentence punctuation is not captured.
var NumberToken = regexp.MustCompile(`\(\d(?:[\d.,]*\d)?\)|[-−]?\d(?:[\d.,]*\d)?`)

// NormalizeNumber converts a Turkish formatted amount ("1.234,56", "(29.454.653)")
// into a float64. Tokens that still fail to parse yield 0, so callers that need to tell
// "zero" from "garbage" must validate the token first.
func NormalizeNumber(token string) float64 {
	s := strings.TrimSpace(token)
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, " ", "")

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 {
		s = "-" + strings.TrimPrefix(s[1:len(s)-1], "-")
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasDot && strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0.0
	}
	return v
}

// CountDigits returns the number of decimal digits in s.
func CountDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
