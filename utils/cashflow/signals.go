package cashflow

import (
	"strings"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/cloudflare/ahocorasick"
)

type unitHint struct {
	unit       string
	multiplier float64
}

// Statement keywords, folded. The first three mark a cash-flow statement.
var statementKeywords = []string{
	"NAKIT AKIS",
	"NAKIT AKIM",
	"CASH FLOW",
	"FAALIYETLERINDEN",
	"NAKIT BENZERLERI",
	"CASH EQUIVALENTS",
}

const cashFlowMarkers = 3

// Unit declarations in precedence order: the first one present wins.
var unitKeywords = []struct {
	keyword string
	hint    unitHint
}{
	{"MILYON TL", unitHint{"millions TRY", 1e6}},
	{"MILYON TURK LIRASI", unitHint{"millions TRY", 1e6}},
	{"IN MILLIONS", unitHint{"millions", 1e6}},
	{"BIN TL", unitHint{"thousands TRY", 1e3}},
	{"BIN TURK LIRASI", unitHint{"thousands TRY", 1e3}},
	{"IN THOUSANDS", unitHint{"thousands", 1e3}},
}

// SignalScanner runs a single Aho-Corasick pass over folded text to report statement
// keywords and the declared amount unit. The values are informational and never
// rescale extracted amounts. Safe for concurrent use.
type SignalScanner struct {
	matcher *ahocorasick.Matcher
}

func NewSignalScanner() *SignalScanner {
	patterns := append([]string{}, statementKeywords...)
	for _, u := range unitKeywords {
		patterns = append(patterns, u.keyword)
	}
	return &SignalScanner{matcher: ahocorasick.NewStringMatcher(patterns)}
}

// Scan reports the signals found in folded text.
func (s *SignalScanner) Scan(folded string) dto.StatementSignals {
	compact := strings.Join(strings.Fields(folded), " ")

	hits := s.matcher.MatchThreadSafe([]byte(compact))

	found := make(map[int]bool, len(hits))
	for _, idx := range hits {
		found[idx] = true
	}

	signals := dto.StatementSignals{Keywords: []string{}}
	for i, kw := range statementKeywords {
		if !found[i] {
			continue
		}
		signals.Keywords = append(signals.Keywords, kw)
		if i < cashFlowMarkers {
			signals.CashFlow = true
		}
	}

	for i, u := range unitKeywords {
		if found[len(statementKeywords)+i] {
			signals.Unit = u.hint.unit
			signals.Multiplier = u.hint.multiplier
			break
		}
	}
	return signals
}
