package cashflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/utils"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var sectionAliases = map[string]dto.SectionKey{
	"operating":  dto.SectionOperating,
	"isletme":    dto.SectionOperating,
	"a":          dto.SectionOperating,
	"investing":  dto.SectionInvesting,
	"yatirim":    dto.SectionInvesting,
	"b":          dto.SectionInvesting,
	"financing":  dto.SectionFinancing,
	"finansman":  dto.SectionFinancing,
	"c":          dto.SectionFinancing,
	"fx":         dto.SectionFXEffect,
	"kur-farki":  dto.SectionFXEffect,
	"d":          dto.SectionFXEffect,
	"opening":    dto.SectionPeriodStartCash,
	"donem-basi": dto.SectionPeriodStartCash,
	"closing":    dto.SectionPeriodEndCash,
	"donem-sonu": dto.SectionPeriodEndCash,
}

// ResolveSectionKey maps a user supplied section name to a canonical key. Exact keys and
// known aliases resolve directly; anything else goes through fuzzy matching and must
// have a single best candidate.
func ResolveSectionKey(name string) (dto.SectionKey, error) {
	n := strings.ToLower(utils.FoldText(strings.TrimSpace(name)))
	n = strings.Join(strings.Fields(n), "-")
	if n == "" {
		return "", fmt.Errorf("empty section name")
	}

	if key := dto.SectionKey(n); key.Valid() {
		return key, nil
	}
	if key, ok := sectionAliases[n]; ok {
		return key, nil
	}

	targets := make([]string, 0, len(sectionAliases)+len(dto.AllSections()))
	lookup := make(map[string]dto.SectionKey)
	for _, key := range dto.AllSections() {
		targets = append(targets, string(key))
		lookup[string(key)] = key
	}
	for alias, key := range sectionAliases {
		if len(alias) > 1 {
			targets = append(targets, alias)
			lookup[alias] = key
		}
	}

	ranks := fuzzy.RankFindFold(n, targets)
	if len(ranks) == 0 {
		return "", fmt.Errorf("unknown section %q", name)
	}
	sort.Sort(ranks)

	best := lookup[ranks[0].Target]
	for _, r := range ranks[1:] {
		if r.Distance > ranks[0].Distance {
			break
		}
		if lookup[r.Target] != best {
			return "", fmt.Errorf("ambiguous section %q", name)
		}
	}
	return best, nil
}

// ParseSections resolves a list of names (each may itself be comma separated) into
// canonical keys in display order. An empty list selects every section.
func ParseSections(names []string) ([]dto.SectionKey, error) {
	selected := make(map[dto.SectionKey]bool)
	for _, raw := range names {
		for _, part := range strings.Split(raw, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			key, err := ResolveSectionKey(part)
			if err != nil {
				return nil, err
			}
			selected[key] = true
		}
	}

	if len(selected) == 0 {
		return dto.AllSections(), nil
	}

	var out []dto.SectionKey
	for _, key := range dto.AllSections() {
		if selected[key] {
			out = append(out, key)
		}
	}
	return out, nil
}
