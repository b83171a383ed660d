package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var turkishLetters = map[rune]rune{
	'ı': 'i',
	'İ': 'I',
	'ğ': 'g',
	'Ğ': 'G',
	'ş': 's',
	'Ş': 'S',
}

// FoldText strips diacritics and upper-cases s so that "İşletme", "ISLETME" and a
// PDF-decomposed "İŞLETME" all compare equal. Digits and punctuation are kept as is.
func FoldText(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Map(func(r rune) rune {
			if m, ok := turkishLetters[r]; ok {
				return m
			}
			return r
		}),
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(folded)
}

// Preview returns at most n runes of s with surrounding whitespace trimmed.
func Preview(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
