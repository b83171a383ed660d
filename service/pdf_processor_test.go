package service

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/utils/cashflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pdfRun struct {
	X, Y float64
	S    string
}

// buildPDF writes a single page, uncompressed PDF with one text run per entry.
func buildPDF(runs []pdfRun) []byte {
	var content strings.Builder
	content.WriteString("BT /F1 10 Tf\n")
	for _, r := range runs {
		fmt.Fprintf(&content, "1 0 0 1 %.0f %.0f Tm (%s) Tj\n", r.X, r.Y, r.S)
	}
	content.WriteString("ET")
	return buildPDFContent(content.String())
}

// buildPDFContent wraps a raw page content stream into a single page PDF.
func buildPDFContent(content string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func statementPDF() []byte {
	return buildPDF([]pdfRun{
		{X: 420, Y: 720, S: "29.454.653"},
		{X: 72, Y: 720, S: "A. ISLETME FAALIYETLERINDEN NAKIT AKISLARI"},
		{X: 72, Y: 700, S: "DONEM SONU NAKIT VE NAKIT BENZERLERI"},
		{X: 420, Y: 700, S: "23.936.010"},
	})
}

func TestExtractTextRowsTopToBottom(t *testing.T) {
	text, err := NewPDFProcessor().ExtractText(statementPDF(), "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A. ISLETME FAALIYETLERINDEN NAKIT AKISLARI 29.454.653", lines[0])
	assert.Equal(t, "DONEM SONU NAKIT VE NAKIT BENZERLERI 23.936.010", lines[1])
}

func TestExtractTextKernedShowTextArray(t *testing.T) {
	pdfData := buildPDFContent("BT /F1 10 Tf\n" +
		"1 0 0 1 72 720 Tm [(A. ISLETME FAALIYETLERINDEN NAKIT AKISLARI )(29.4)-12(54.653)] TJ\n" +
		"1 0 0 1 72 700 Tm (DONEM SONU NAKIT VE NAKIT BENZERLERI) Tj\n" +
		"1 0 0 1 420 700 Tm [(23.)-8(936.)-8(010)] TJ\n" +
		"ET")

	text, err := NewPDFProcessor().ExtractText(pdfData, "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A. ISLETME FAALIYETLERINDEN NAKIT AKISLARI 29.454.653", lines[0])
	assert.Equal(t, "DONEM SONU NAKIT VE NAKIT BENZERLERI 23.936.010", lines[1])

	record, err := cashflow.NewExtractor(nil, cashflow.DefaultOptions()).Extract(text)
	require.NoError(t, err)
	assert.Equal(t, 29454653.0, record.Sections[dto.SectionOperating])
	assert.Equal(t, 23936010.0, record.Sections[dto.SectionPeriodEndCash])
}

func TestExtractTextPasswordOnPlainFile(t *testing.T) {
	text, err := NewPDFProcessor().ExtractText(statementPDF(), "secret")
	require.NoError(t, err)
	assert.Contains(t, text, "29.454.653")
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	_, err := NewPDFProcessor().ExtractText([]byte("not a pdf at all"), "")
	assert.ErrorContains(t, err, "failed to open pdf")

	_, err = NewPDFProcessor().ExtractText(nil, "")
	assert.Error(t, err)
}
