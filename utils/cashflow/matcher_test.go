package cashflow

import (
	"strings"
	"testing"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchText(t *testing.T, opts Options, text string) map[dto.SectionKey]Match {
	t.Helper()
	return NewMatcher(DefaultRuleSet(), opts).Match(utils.FoldText(text))
}

func TestMatcherOperatingHeading(t *testing.T) {
	got := matchText(t, DefaultOptions(), "A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI ... 29.454.653")

	require.Contains(t, got, dto.SectionOperating)
	assert.Equal(t, 29454653.0, got[dto.SectionOperating].Value)
	assert.Equal(t, "29.454.653", got[dto.SectionOperating].Token)
	assert.Equal(t, "tfrs-lettered", got[dto.SectionOperating].Rule)
}

func TestMatcherAllSections(t *testing.T) {
	got := matchText(t, DefaultOptions(), statement2024)

	want := map[dto.SectionKey]float64{
		dto.SectionOperating:       29454653,
		dto.SectionInvesting:       -8765432,
		dto.SectionFinancing:       -3210000,
		dto.SectionFXEffect:        1456789,
		dto.SectionPeriodStartCash: 5000000,
		dto.SectionPeriodEndCash:   23936010,
	}
	require.Len(t, got, len(want))
	for key, v := range want {
		assert.Equal(t, v, got[key].Value, key)
	}
}

func TestMatcherHeadingSpansLines(t *testing.T) {
	text := "A. İŞLETME FAALİYETLERİNDEN\nNAKİT\n  AKIŞLARI\n\n 1.234.567"
	got := matchText(t, DefaultOptions(), text)

	assert.Equal(t, 1234567.0, got[dto.SectionOperating].Value)
}

func TestMatcherAlternativeWording(t *testing.T) {
	text := "A. Faaliyetlerden Doğan Nakit Akışları 100.200.300"
	got := matchText(t, DefaultOptions(), text)

	assert.Equal(t, 100200300.0, got[dto.SectionOperating].Value)
	assert.Equal(t, "tfrs-lettered", got[dto.SectionOperating].Rule)
}

func TestMatcherRegistrationOrderWins(t *testing.T) {
	text := "Cash flows from operating activities 1.000.000\n" +
		"A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI 2.000.000"
	got := matchText(t, DefaultOptions(), text)

	assert.Equal(t, 2000000.0, got[dto.SectionOperating].Value)
	assert.Equal(t, "tfrs-lettered", got[dto.SectionOperating].Rule)
}

func TestMatcherFallsBackWhenHeadingHasNoValue(t *testing.T) {
	text := "Cash flows from operating activities 3.000.000\n" +
		"A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI"
	got := matchText(t, DefaultOptions(), text)

	assert.Equal(t, 3000000.0, got[dto.SectionOperating].Value)
	assert.Equal(t, "ifrs-english", got[dto.SectionOperating].Rule)
}

func TestMatcherMissingSectionIsAbsent(t *testing.T) {
	got := matchText(t, DefaultOptions(), "DÖNEM SONU NAKİT VE NAKİT BENZERLERİ 0")

	assert.NotContains(t, got, dto.SectionOperating)
	require.Contains(t, got, dto.SectionPeriodEndCash)
	assert.Equal(t, 0.0, got[dto.SectionPeriodEndCash].Value)
}

func TestMatcherMinDigits(t *testing.T) {
	text := "A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI (Dipnot 5) 29.454.653"

	loose := matchText(t, DefaultOptions(), text)
	assert.Equal(t, 5.0, loose[dto.SectionOperating].Value)

	strict := matchText(t, Options{MinDigits: 2}, text)
	assert.Equal(t, 29454653.0, strict[dto.SectionOperating].Value)
}

func TestMatcherLookahead(t *testing.T) {
	text := "DÖNEM SONU NAKİT VE NAKİT BENZERLERİ" + strings.Repeat(" ", 80) + "1.000.000"

	assert.NotContains(t, matchText(t, Options{MinDigits: 1, Lookahead: 40}, text), dto.SectionPeriodEndCash)
	assert.Contains(t, matchText(t, Options{MinDigits: 1, Lookahead: 200}, text), dto.SectionPeriodEndCash)
	assert.Contains(t, matchText(t, DefaultOptions(), text), dto.SectionPeriodEndCash)
}

func TestMatcherFXDoesNotTakeNetIncreaseLine(t *testing.T) {
	text := "YABANCI PARA ÇEVRİM FARKLARININ ETKİSİNDEN ÖNCE NAKİT VE NAKİT BENZERLERİNDEKİ NET ARTIŞ (AZALIŞ) 9.999.999"
	got := matchText(t, DefaultOptions(), text)

	assert.NotContains(t, got, dto.SectionFXEffect)
}

func TestMatcherEnglishStatement(t *testing.T) {
	text := `Net cash flows from operating activities 1,250.5
Cash flows used in investing activities (300)
Cash flows from financing activities -45
Effect of exchange rate changes 12
Cash and cash equivalents at the beginning of the period 1.000.000
Cash and cash equivalents at end of the year 2.000.000`
	got := matchText(t, DefaultOptions(), text)

	// both separators present: '.' is dropped and ',' becomes the decimal point
	assert.Equal(t, 1.2505, got[dto.SectionOperating].Value)
	assert.Equal(t, -300.0, got[dto.SectionInvesting].Value)
	assert.Equal(t, -45.0, got[dto.SectionFinancing].Value)
	assert.Equal(t, 12.0, got[dto.SectionFXEffect].Value)
	assert.Equal(t, 1000000.0, got[dto.SectionPeriodStartCash].Value)
	assert.Equal(t, 2000000.0, got[dto.SectionPeriodEndCash].Value)
}
