// Package cashflow turns cash-flow statement text into a dto.Record.
//
// Headings are located with an ordered rule table per section. Rules are written
// against FoldText output (ASCII upper case, no diacritics), so one pattern covers
// "İşletme", "ISLETME" and decomposed PDF text alike.
package cashflow

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"gopkg.in/yaml.v2"
)

// Rule maps a heading pattern to a section. For sub-item rules Name is the sub-item name.
type Rule struct {
	Section dto.SectionKey `yaml:"section"`
	Name    string         `yaml:"name"`
	Pattern string         `yaml:"pattern"`
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// RuleSet is an immutable, compiled rule table. Order of Headings is precedence.
type RuleSet struct {
	headings []compiledRule
	subItems []compiledRule
}

// DefaultHeadingRules returns the built-in heading synonyms in precedence order.
func DefaultHeadingRules() []Rule {
	return []Rule{
		{dto.SectionOperating, "tfrs-lettered", `A\.?\s*(?:ISLETME\s*FAALIYETLERINDEN|FAALIYETLERDEN\s*DOGAN)\s*NAKIT\s*AKISLARI`},
		{dto.SectionOperating, "tfrs-unlettered", `(?:ISLETME\s*FAALIYETLERINDEN|ESAS\s*FAALIYETLERDEN)\s*(?:KAYNAKLANAN\s*)?(?:NET\s*)?NAKIT\s*(?:AKISLARI|AKIMLARI)`},
		{dto.SectionOperating, "ifrs-english", `CASH\s*FLOWS?\s*(?:FROM|USED\s*IN|PROVIDED\s*BY)\s*OPERATING\s*ACTIVITIES`},

		{dto.SectionInvesting, "tfrs-lettered", `B\.?\s*YATIRIM\s*FAALIYETLERINDEN\s*(?:KAYNAKLANAN\s*)?NAKIT\s*AKISLARI`},
		{dto.SectionInvesting, "tfrs-unlettered", `YATIRIM\s*FAALIYETLERINDEN\s*(?:KAYNAKLANAN\s*)?(?:NET\s*)?NAKIT\s*(?:AKISLARI|AKIMLARI)`},
		{dto.SectionInvesting, "ifrs-english", `CASH\s*FLOWS?\s*(?:FROM|USED\s*IN|PROVIDED\s*BY)\s*INVESTING\s*ACTIVITIES`},

		{dto.SectionFinancing, "tfrs-lettered", `C\.?\s*FINANSMAN\s*FAALIYETLERINDEN\s*(?:KAYNAKLANAN\s*)?NAKIT\s*AKISLARI`},
		{dto.SectionFinancing, "tfrs-unlettered", `FINANSMAN\s*FAALIYETLERINDEN\s*(?:KAYNAKLANAN\s*)?(?:NET\s*)?NAKIT\s*(?:AKISLARI|AKIMLARI)`},
		{dto.SectionFinancing, "ifrs-english", `CASH\s*FLOWS?\s*(?:FROM|USED\s*IN|PROVIDED\s*BY)\s*FINANCING\s*ACTIVITIES`},

		{dto.SectionFXEffect, "tfrs-translation", `YABANCI\s*PARA\s*CEVRIM\s*FARKLARININ\s*NAKIT\s*VE\s*NAKIT\s*BENZERLERI\s*UZERINDEKI\s*ETKISI`},
		{dto.SectionFXEffect, "tfrs-exchange", `KUR\s*FARKLARININ\s*NAKIT\s*VE\s*NAKIT\s*BENZERLERI\s*UZERINDEKI\s*ETKISI`},
		{dto.SectionFXEffect, "ifrs-english", `EFFECTS?\s*OF\s*(?:FOREIGN\s*)?EXCHANGE\s*RATE\s*CHANGES`},

		{dto.SectionPeriodStartCash, "tfrs", `DONEM\s*BASI\s*NAKIT\s*VE\s*NAKIT\s*BENZERLERI`},
		{dto.SectionPeriodStartCash, "ifrs-english", `CASH\s*AND\s*CASH\s*EQUIVALENTS\s*AT\s*(?:THE\s*)?BEGINNING\s*OF\s*(?:THE\s*)?(?:PERIOD|YEAR)`},

		{dto.SectionPeriodEndCash, "tfrs", `DONEM\s*SONU\s*NAKIT\s*VE\s*NAKIT\s*BENZERLERI`},
		{dto.SectionPeriodEndCash, "ifrs-english", `CASH\s*AND\s*CASH\s*EQUIVALENTS\s*AT\s*(?:THE\s*)?END\s*OF\s*(?:THE\s*)?(?:PERIOD|YEAR)`},
	}
}

// DefaultSubItemRules returns the built-in line items looked up inside matched sections.
func DefaultSubItemRules() []Rule {
	return []Rule{
		{dto.SectionOperating, "net-period-profit", `DONEM\s*(?:NET\s*)?KARI\s*\(?\s*ZARARI\s*\)?|PROFIT\s*FOR\s*THE\s*(?:PERIOD|YEAR)`},
		{dto.SectionOperating, "depreciation-amortization", `AMORTISMAN\s*VE\s*ITFA\s*GIDER(?:I|LERI)\s*ILE\s*ILGILI\s*DUZELTMELER|DEPRECIATION\s*AND\s*AMORTI[SZ]ATION`},
		{dto.SectionOperating, "working-capital-changes", `ISLETME\s*SERMAYESINDE\s*GERCEKLESEN\s*DEGISIMLER|CHANGES\s*IN\s*WORKING\s*CAPITAL`},
		{dto.SectionOperating, "taxes-paid", `VERGI\s*(?:IADELERI\s*\(?\s*)?ODEMELERI\s*\)?|INCOME\s*TAXES?\s*PAID`},

		{dto.SectionInvesting, "capex", `MADDI\s*VE\s*MADDI\s*OLMAYAN\s*DURAN\s*VARLIKLARIN\s*ALIMINDAN\s*KAYNAKLANAN\s*NAKIT\s*CIKISLARI|PURCHASES?\s*OF\s*PROPERTY,?\s*PLANT\s*AND\s*EQUIPMENT`},
		{dto.SectionInvesting, "asset-disposals", `MADDI\s*VE\s*MADDI\s*OLMAYAN\s*DURAN\s*VARLIKLARIN\s*SATISINDAN\s*KAYNAKLANAN\s*NAKIT\s*GIRISLERI|PROCEEDS\s*FROM\s*(?:THE\s*)?SALES?\s*OF\s*PROPERTY`},
		{dto.SectionInvesting, "interest-received", `ALINAN\s*FAIZ(?:LER)?|INTEREST\s*RECEIVED`},

		{dto.SectionFinancing, "borrowing-proceeds", `BORCLANMADAN\s*KAYNAKLANAN\s*NAKIT\s*GIRISLERI|PROCEEDS\s*FROM\s*BORROWINGS`},
		{dto.SectionFinancing, "debt-repayments", `BORC\s*ODEMELERINE\s*ILISKIN\s*NAKIT\s*CIKISLARI|REPAYMENTS?\s*OF\s*BORROWINGS`},
		{dto.SectionFinancing, "dividends-paid", `ODENEN\s*TEMETTU(?:LER)?|DIVIDENDS\s*PAID`},
		{dto.SectionFinancing, "interest-paid", `ODENEN\s*FAIZ(?:LER)?|INTEREST\s*PAID`},
	}
}

// NewRuleSet compiles heading and sub-item rules. Every rule must name a canonical
// section and carry a valid pattern.
func NewRuleSet(headings, subItems []Rule) (*RuleSet, error) {
	h, err := compileRules(headings)
	if err != nil {
		return nil, fmt.Errorf("invalid heading rule: %w", err)
	}
	s, err := compileRules(subItems)
	if err != nil {
		return nil, fmt.Errorf("invalid sub-item rule: %w", err)
	}
	return &RuleSet{headings: h, subItems: s}, nil
}

// DefaultRuleSet returns the compiled built-in rules.
func DefaultRuleSet() *RuleSet {
	rs, err := NewRuleSet(DefaultHeadingRules(), DefaultSubItemRules())
	if err != nil {
		panic(err)
	}
	return rs
}

func compileRules(rules []Rule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		if !r.Section.Valid() {
			return nil, fmt.Errorf("rule %q: unknown section %q", r.Name, r.Section)
		}
		if r.Name == "" {
			return nil, fmt.Errorf("rule for %s: name is required", r.Section)
		}
		re, err := regexp.Compile(`(?is)` + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s/%s: %w", r.Section, r.Name, err)
		}
		out = append(out, compiledRule{Rule: r, re: re})
	}
	return out, nil
}

// Headings returns the heading rules in precedence order.
func (rs *RuleSet) Headings() []Rule {
	return plainRules(rs.headings)
}

// SubItems returns the sub-item rules in precedence order.
func (rs *RuleSet) SubItems() []Rule {
	return plainRules(rs.subItems)
}

func plainRules(in []compiledRule) []Rule {
	out := make([]Rule, len(in))
	for i, r := range in {
		out[i] = r.Rule
	}
	return out
}

func (rs *RuleSet) headingsFor(key dto.SectionKey) []compiledRule {
	return filterSection(rs.headings, key)
}

func (rs *RuleSet) subItemsFor(key dto.SectionKey) []compiledRule {
	return filterSection(rs.subItems, key)
}

func filterSection(rules []compiledRule, key dto.SectionKey) []compiledRule {
	var out []compiledRule
	for _, r := range rules {
		if r.Section == key {
			out = append(out, r)
		}
	}
	return out
}

// Describe groups the rule table by section for listing.
func (rs *RuleSet) Describe() []dto.SectionRules {
	var out []dto.SectionRules
	for _, key := range dto.AllSections() {
		sr := dto.SectionRules{Section: key, Label: key.Label()}
		for _, r := range rs.headingsFor(key) {
			sr.Rules = append(sr.Rules, dto.RuleInfo{Name: r.Name, Pattern: r.Pattern})
		}
		for _, r := range rs.subItemsFor(key) {
			sr.SubItems = append(sr.SubItems, dto.RuleInfo{Name: r.Name, Pattern: r.Pattern})
		}
		out = append(out, sr)
	}
	return out
}

// Rule file modes.
const (
	ModeAppend  = "append"
	ModePrepend = "prepend"
	ModeReplace = "replace"
)

// RuleFile is the YAML form of a custom rule table.
type RuleFile struct {
	Mode     string `yaml:"mode"`
	Headings []Rule `yaml:"headings"`
	SubItems []Rule `yaml:"sub_items"`
}

// ParseRuleFile decodes a YAML rule file.
func ParseRuleFile(data []byte) (*RuleFile, error) {
	var rf RuleFile
	if err := yaml.UnmarshalStrict(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rule file: %w", err)
	}
	switch rf.Mode {
	case "":
		rf.Mode = ModeAppend
	case ModeAppend, ModePrepend, ModeReplace:
	default:
		return nil, fmt.Errorf("unknown rule file mode %q", rf.Mode)
	}
	return &rf, nil
}

// Merge combines the file's rules with the built-in rules according to its mode.
func (rf *RuleFile) Merge(headings, subItems []Rule) ([]Rule, []Rule) {
	switch rf.Mode {
	case ModeReplace:
		return rf.Headings, rf.SubItems
	case ModePrepend:
		return append(append([]Rule{}, rf.Headings...), headings...),
			append(append([]Rule{}, rf.SubItems...), subItems...)
	default:
		return append(append([]Rule{}, headings...), rf.Headings...),
			append(append([]Rule{}, subItems...), rf.SubItems...)
	}
}

// LoadRuleSet builds the rule table, extending the defaults with the YAML file at path
// when path is not empty.
func LoadRuleSet(path string) (*RuleSet, error) {
	headings, subItems := DefaultHeadingRules(), DefaultSubItemRules()
	if path == "" {
		return NewRuleSet(headings, subItems)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	rf, err := ParseRuleFile(data)
	if err != nil {
		return nil, err
	}
	headings, subItems = rf.Merge(headings, subItems)
	return NewRuleSet(headings, subItems)
}
