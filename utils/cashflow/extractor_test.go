package cashflow

import (
	"testing"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStatement(t *testing.T) {
	e := NewExtractor(nil, DefaultOptions())

	record, err := e.Extract(statement2024)
	require.NoError(t, err)

	assert.Equal(t, dto.Number(29454653), record.Get(dto.SectionOperating))
	assert.Equal(t, dto.Number(23936010), record.Get(dto.SectionPeriodEndCash))
	assert.Equal(t, "tfrs-lettered", record.Matches[dto.SectionOperating].Rule)
	assert.Equal(t, "29.454.653", record.Matches[dto.SectionOperating].Token)

	assert.Equal(t, map[string]float64{
		"net-period-profit":         12345678,
		"depreciation-amortization": 1234567,
		"working-capital-changes":   -2500000,
		"taxes-paid":                -1750000,
	}, record.SubItems[dto.SectionOperating])
	assert.Equal(t, map[string]float64{"capex": -9000000}, record.SubItems[dto.SectionInvesting])
	assert.Equal(t, map[string]float64{"dividends-paid": -1000000}, record.SubItems[dto.SectionFinancing])
	assert.NotContains(t, record.SubItems, dto.SectionFXEffect)

	assert.True(t, record.Signals.CashFlow)
	assert.Equal(t, "thousands TRY", record.Signals.Unit)
	assert.Equal(t, 1000.0, record.Signals.Multiplier)
}

func TestExtractNoHeadings(t *testing.T) {
	e := NewExtractor(nil, DefaultOptions())

	record, err := e.Extract("Lorem ipsum dolor sit amet, 2024 yılı faaliyet raporu. Sayfa 3")
	assert.ErrorIs(t, err, ErrNoSectionsFound)
	assert.True(t, record.Empty())
	assert.Equal(t, dto.Missing(), record.Get(dto.SectionOperating))
}

func TestExtractSubItemsOnlyForMatchedSections(t *testing.T) {
	e := NewExtractor(nil, DefaultOptions())

	text := "A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI 1.000.000\nÖdenen Temettüler (500.000,00)"
	record, err := e.Extract(text)
	require.NoError(t, err)

	assert.NotContains(t, record.SubItems, dto.SectionFinancing)
	assert.NotContains(t, record.Sections, dto.SectionFinancing)
}

func TestExtractMissingIsNotZero(t *testing.T) {
	e := NewExtractor(nil, DefaultOptions())

	record, err := e.Extract("DÖNEM SONU NAKİT VE NAKİT BENZERLERİ 0\nDÖNEM BAŞI NAKİT VE NAKİT BENZERLERİ abc")
	require.NoError(t, err)

	assert.Equal(t, dto.Number(0), record.Get(dto.SectionPeriodEndCash))
	assert.True(t, record.Get(dto.SectionPeriodEndCash).Present)
	assert.Equal(t, dto.Missing(), record.Get(dto.SectionPeriodStartCash))
	assert.Equal(t, dto.Missing(), record.Get(dto.SectionOperating))
}
