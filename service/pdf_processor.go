package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
)

// ErrInvalidPassword is returned for encrypted PDFs that cannot be opened with the given password.
var ErrInvalidPassword = errors.New("invalid or missing PDF password")

type PDFProcessor interface {
	ExtractText(pdfData []byte, password string) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText returns the text of every page, one line per text row, top to bottom.
func (p *pdfProcessor) ExtractText(pdfData []byte, password string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	if password != "" && bytes.Contains(pdfData, []byte("/Encrypt")) {
		decrypted, derr := decrypt(pdfData, password)
		if derr == nil {
			pdfData = decrypted
		} else {
			log.Debug().Err(derr).Msg("pdfcpu decryption failed, falling back to reader password")
		}
	}

	r, err := pdf.NewReaderEncrypted(bytes.NewReader(pdfData), int64(len(pdfData)), once(password))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", ErrInvalidPassword
		}
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}
		for _, row := range rows {
			if line := joinRow(row.Content); line != "" {
				textBuilder.WriteString(line)
				textBuilder.WriteString("\n")
			}
		}
	}
	return textBuilder.String(), nil
}

// joinRow rebuilds one text row. Strings of a single TJ array are reported with the
// same X, so they are concatenated as is; a space is only inserted where X moves.
func joinRow(content pdf.TextHorizontal) string {
	var (
		runs    []string
		current strings.Builder
		lastX   float64
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			runs = append(runs, s)
		}
		current.Reset()
	}
	for i, t := range content {
		if i > 0 && t.X != lastX {
			flush()
		}
		current.WriteString(t.S)
		lastX = t.X
	}
	flush()
	return strings.Join(runs, " ")
}

// decrypt removes password protection with pdfcpu.
func decrypt(pdfData []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		return nil, fmt.Errorf("failed to decrypt pdf: %w", err)
	}
	return out.Bytes(), nil
}

// once yields password a single time so the reader stops after one failed attempt.
func once(password string) func() string {
	used := false
	return func() string {
		if used {
			return ""
		}
		used = true
		return password
	}
}
