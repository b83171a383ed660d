package cashflow

import (
	"testing"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSectionKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  dto.SectionKey
	}{
		{"canonical key", "period-end-cash", dto.SectionPeriodEndCash},
		{"alias", "operating", dto.SectionOperating},
		{"turkish alias", "Yatırım", dto.SectionInvesting},
		{"statement letter", "C", dto.SectionFinancing},
		{"spaces become dashes", "Dönem Başı", dto.SectionPeriodStartCash},
		{"fuzzy suffix", "end cash", dto.SectionPeriodEndCash},
		{"fuzzy prefix", "financ", dto.SectionFinancing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSectionKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSectionKeyErrors(t *testing.T) {
	_, err := ResolveSectionKey("   ")
	assert.Error(t, err)

	_, err = ResolveSectionKey("xyz")
	assert.ErrorContains(t, err, "unknown section")
}

func TestParseSections(t *testing.T) {
	got, err := ParseSections([]string{"financing,operating", "operating-activities"})
	require.NoError(t, err)
	assert.Equal(t, []dto.SectionKey{dto.SectionOperating, dto.SectionFinancing}, got)

	all, err := ParseSections(nil)
	require.NoError(t, err)
	assert.Equal(t, dto.AllSections(), all)

	_, err = ParseSections([]string{"operating,xyz"})
	assert.Error(t, err)
}
