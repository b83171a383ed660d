package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	assert.Equal(t, "A. ISLETME FAALIYETLERINDEN NAKIT AKISLARI", FoldText("A. İŞLETME FAALİYETLERİNDEN NAKİT AKIŞLARI"))
	assert.Equal(t, "DONEM SONU NAKIT VE NAKIT BENZERLERI", FoldText("Dönem sonu nakit ve nakit benzerleri"))
	assert.Equal(t, "YATIRIM", FoldText("yatırım"))
	assert.Equal(t, "(1.234,56)", FoldText("(1.234,56)"))
	// I followed by a combining dot above, as some PDF encoders emit it
	assert.Equal(t, "ISLETME", FoldText("İŞLETME"))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "İşl", Preview("  İşletme  ", 3))
	assert.Equal(t, "kısa", Preview("kısa", 10))
}
