package dto

import (
	"encoding/json"
	"time"
)

// SectionKey identifies a canonical cash-flow category independent of document wording.
type SectionKey string

const (
	SectionOperating       SectionKey = "operating-activities"
	SectionInvesting       SectionKey = "investing-activities"
	SectionFinancing       SectionKey = "financing-activities"
	SectionFXEffect        SectionKey = "fx-effect"
	SectionPeriodStartCash SectionKey = "period-start-cash"
	SectionPeriodEndCash   SectionKey = "period-end-cash"
)

var sectionOrder = []SectionKey{
	SectionOperating,
	SectionInvesting,
	SectionFinancing,
	SectionFXEffect,
	SectionPeriodStartCash,
	SectionPeriodEndCash,
}

var sectionLabels = map[SectionKey]string{
	SectionOperating:       "A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI",
	SectionInvesting:       "B. YATIRIM FAALİYETLERİNDEN NAKİT AKIŞLARI",
	SectionFinancing:       "C. FİNANSMAN FAALİYETLERİNDEN NAKİT AKIŞLARI",
	SectionFXEffect:        "D. YABANCI PARA ÇEVRİM FARKLARININ ETKİSİ",
	SectionPeriodStartCash: "DÖNEM BAŞI NAKİT VE NAKİT BENZERLERİ",
	SectionPeriodEndCash:   "DÖNEM SONU NAKİT VE NAKİT BENZERLERİ",
}

// AllSections returns the canonical keys in display order.
func AllSections() []SectionKey {
	out := make([]SectionKey, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// Valid reports whether k is one of the canonical keys.
func (k SectionKey) Valid() bool {
	_, ok := sectionLabels[k]
	return ok
}

// Label returns the statement heading shown for the section.
func (k SectionKey) Label() string {
	if l, ok := sectionLabels[k]; ok {
		return l
	}
	return string(k)
}

// Value is either a number or Missing. A zero Value is Missing.
type Value struct {
	Amount  float64
	Present bool
}

func Number(v float64) Value { return Value{Amount: v, Present: true} }

func Missing() Value { return Value{} }

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Present {
		return []byte("null"), nil
	}
	return json.Marshal(v.Amount)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Missing()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Number(f)
	return nil
}

// StatementSignals describes what the keyword scan saw in a document.
type StatementSignals struct {
	Keywords   []string `json:"keywords"`
	CashFlow   bool     `json:"cash_flow"`
	Unit       string   `json:"unit,omitempty"`
	Multiplier float64  `json:"multiplier,omitempty"`
}

// Record is the normalized result of processing one document's text.
// A section that was not found has no key in Sections.
type Record struct {
	Sections map[SectionKey]float64            `json:"sections"`
	SubItems map[SectionKey]map[string]float64 `json:"sub_items,omitempty"`
	Matches  map[SectionKey]MatchInfo          `json:"matches,omitempty"`
	Signals  StatementSignals                  `json:"signals"`
}

// MatchInfo records which rule produced a section value and the raw token it captured.
type MatchInfo struct {
	Rule  string `json:"rule"`
	Token string `json:"token"`
}

func NewRecord() Record {
	return Record{
		Sections: make(map[SectionKey]float64),
		SubItems: make(map[SectionKey]map[string]float64),
		Matches:  make(map[SectionKey]MatchInfo),
	}
}

// Get returns the section value, or Missing when it was not extracted.
func (r Record) Get(key SectionKey) Value {
	if v, ok := r.Sections[key]; ok {
		return Number(v)
	}
	return Missing()
}

// Empty reports whether no section was extracted.
func (r Record) Empty() bool {
	return len(r.Sections) == 0
}

// Period is a labeled Record, one per document.
type Period struct {
	Label  string     `json:"label"`
	Source string     `json:"source"`
	Date   *time.Time `json:"date,omitempty"`
	Record Record     `json:"record"`
}
