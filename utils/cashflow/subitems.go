package cashflow

import (
	"github.com/Aashish23092/cashflow-analyzer/dto"
)

// SubItemExtractor looks up named line items for sections that were already matched.
// It scans the whole text for every section; patterns must be specific enough to not
// collide across sections.
type SubItemExtractor struct {
	matcher *Matcher
}

func NewSubItemExtractor(rules *RuleSet, opts Options) *SubItemExtractor {
	return &SubItemExtractor{matcher: NewMatcher(rules, opts)}
}

// Extract returns sub-item values grouped by parent section. Sections absent from
// matched are skipped; sections with no sub-item hits are left out.
func (s *SubItemExtractor) Extract(folded string, matched map[dto.SectionKey]Match) map[dto.SectionKey]map[string]Match {
	out := make(map[dto.SectionKey]map[string]Match)
	for _, key := range dto.AllSections() {
		if _, ok := matched[key]; !ok {
			continue
		}

		byName := groupByName(s.matcher.rules.subItemsFor(key))
		items := make(map[string]Match)
		for _, name := range byName.order {
			if match, ok := s.matcher.first(byName.rules[name], folded); ok {
				items[name] = match
			}
		}
		if len(items) > 0 {
			out[key] = items
		}
	}
	return out
}

type namedRules struct {
	order []string
	rules map[string][]compiledRule
}

func groupByName(rules []compiledRule) namedRules {
	g := namedRules{rules: make(map[string][]compiledRule)}
	for _, r := range rules {
		if _, seen := g.rules[r.Name]; !seen {
			g.order = append(g.order, r.Name)
		}
		g.rules[r.Name] = append(g.rules[r.Name], r)
	}
	return g
}
