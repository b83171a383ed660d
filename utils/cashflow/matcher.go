package cashflow

import (
	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/utils"
)

// Options controls how a value is picked after a heading.
type Options struct {
	// MinDigits skips numeric tokens with fewer digits, e.g. footnote references
	// such as "(Dipnot 5)". Values below 1 accept any token.
	MinDigits int
	// Lookahead limits how many bytes after the heading a value may start.
	// Zero means unbounded.
	Lookahead int
}

// DefaultOptions accepts the nearest numeric token with no distance limit.
func DefaultOptions() Options {
	return Options{MinDigits: 1}
}

// Match is a resolved section or sub-item value.
type Match struct {
	Section dto.SectionKey
	Rule    string
	Token   string
	Value   float64
	// Start and End delimit the heading in the folded text.
	Start int
	End   int
}

// Matcher finds, per section, the first registered heading rule that is followed by a
// numeric token. It only reads from the rule set and is safe for concurrent use.
type Matcher struct {
	rules *RuleSet
	opts  Options
}

func NewMatcher(rules *RuleSet, opts Options) *Matcher {
	return &Matcher{rules: rules, opts: opts}
}

// Match scans folded text (see utils.FoldText) and returns one Match per section found.
func (m *Matcher) Match(folded string) map[dto.SectionKey]Match {
	out := make(map[dto.SectionKey]Match)
	for _, key := range dto.AllSections() {
		if match, ok := m.first(m.rules.headingsFor(key), folded); ok {
			out[key] = match
		}
	}
	return out
}

// MatchSection resolves a single section.
func (m *Matcher) MatchSection(key dto.SectionKey, folded string) (Match, bool) {
	return m.first(m.rules.headingsFor(key), folded)
}

func (m *Matcher) first(rules []compiledRule, text string) (Match, bool) {
	for _, r := range rules {
		loc := r.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		token, ok := m.valueAfter(text, loc[1])
		if !ok {
			continue
		}
		return Match{
			Section: r.Section,
			Rule:    r.Name,
			Token:   token,
			Value:   utils.NormalizeNumber(token),
			Start:   loc[0],
			End:     loc[1],
		}, true
	}
	return Match{}, false
}

// valueAfter returns the first acceptable numeric token starting at or after from.
func (m *Matcher) valueAfter(text string, from int) (string, bool) {
	offset := from
	for offset < len(text) {
		loc := utils.NumberToken.FindStringIndex(text[offset:])
		if loc == nil {
			return "", false
		}
		start, end := offset+loc[0], offset+loc[1]
		if m.opts.Lookahead > 0 && start-from >= m.opts.Lookahead {
			return "", false
		}
		token := text[start:end]
		if utils.CountDigits(token) >= m.opts.MinDigits {
			return token, true
		}
		offset = end
	}
	return "", false
}
