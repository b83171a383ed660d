package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

// DocumentMeta carries per-file options sent alongside an upload.
type DocumentMeta struct {
	Filename string `json:"filename"`
	Password string `json:"password,omitempty"`
	Label    string `json:"label,omitempty"`
}

type UploadMetadata struct {
	Documents []DocumentMeta `json:"documents"`
}

// Lookup returns the metadata entry for filename, if any.
func (m UploadMetadata) Lookup(filename string) (DocumentMeta, bool) {
	for _, d := range m.Documents {
		if d.Filename == filename {
			return d, true
		}
	}
	return DocumentMeta{}, false
}

// AnalyzeRequest represents an uploaded batch of statement PDFs
type AnalyzeRequest struct {
	Files    []*multipart.FileHeader `form:"files[]" binding:"required"`
	Metadata string                  `form:"metadata"`
	Sections string                  `form:"sections"`
}

// Validate performs basic validation on the request
func (r *AnalyzeRequest) Validate(maxFileSize int64) error {
	if len(r.Files) == 0 {
		return ErrNoFiles
	}
	for _, f := range r.Files {
		if !strings.HasSuffix(strings.ToLower(f.Filename), ".pdf") {
			return fmt.Errorf("invalid file type for %s. Supported: PDF", f.Filename)
		}
		if maxFileSize > 0 && f.Size > maxFileSize {
			return fmt.Errorf("%s (%d bytes): %w", f.Filename, maxFileSize, ErrFileTooLarge)
		}
	}
	return nil
}

// TextDocument is raw statement text that already went through PDF extraction.
type TextDocument struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// ExtractTextRequest is the JSON body of the raw text endpoint.
type ExtractTextRequest struct {
	Documents []TextDocument `json:"documents"`
	Sections  []string       `json:"sections,omitempty"`
}

func (r *ExtractTextRequest) Validate() error {
	if len(r.Documents) == 0 {
		return ErrNoFiles
	}
	for i, d := range r.Documents {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("document %d: name is required", i)
		}
	}
	return nil
}

// DocumentInput is one document handed to the service, either as PDF bytes or as text.
type DocumentInput struct {
	Name     string
	Data     []byte
	Text     string
	Password string
	Label    string
}

// IsText reports whether the input skips PDF extraction.
func (d DocumentInput) IsText() bool {
	return d.Data == nil
}

var errEmptyName = errors.New("document name is required")

func (d DocumentInput) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errEmptyName
	}
	return nil
}
