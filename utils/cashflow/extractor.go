package cashflow

import (
	"errors"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/utils"
)

// ErrNoSectionsFound is returned when a document yields no cash-flow section at all.
var ErrNoSectionsFound = errors.New("no cash-flow sections found in text")

// Extractor turns raw statement text into a Record. It holds no per-document state.
type Extractor struct {
	rules    *RuleSet
	matcher  *Matcher
	subItems *SubItemExtractor
	signals  *SignalScanner
}

func NewExtractor(rules *RuleSet, opts Options) *Extractor {
	if rules == nil {
		rules = DefaultRuleSet()
	}
	return &Extractor{
		rules:    rules,
		matcher:  NewMatcher(rules, opts),
		subItems: NewSubItemExtractor(rules, opts),
		signals:  NewSignalScanner(),
	}
}

// Rules returns the rule table the extractor was built with.
func (e *Extractor) Rules() *RuleSet {
	return e.rules
}

// Extract runs heading matching, sub-item lookup and the signal scan. When nothing is
// found the returned record is empty and the error is ErrNoSectionsFound.
func (e *Extractor) Extract(text string) (dto.Record, error) {
	folded := utils.FoldText(text)
	record := dto.NewRecord()
	record.Signals = e.signals.Scan(folded)

	matched := e.matcher.Match(folded)
	for key, m := range matched {
		record.Sections[key] = m.Value
		record.Matches[key] = dto.MatchInfo{Rule: m.Rule, Token: m.Token}
	}

	for key, items := range e.subItems.Extract(folded, matched) {
		values := make(map[string]float64, len(items))
		for name, m := range items {
			values[name] = m.Value
		}
		record.SubItems[key] = values
	}

	if record.Empty() {
		return record, ErrNoSectionsFound
	}
	return record, nil
}
