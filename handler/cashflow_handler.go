package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Aashish23092/cashflow-analyzer/dto"
	"github.com/Aashish23092/cashflow-analyzer/export"
	"github.com/Aashish23092/cashflow-analyzer/service"
	"github.com/Aashish23092/cashflow-analyzer/utils/cashflow"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type CashFlowHandler struct {
	cashFlowService *service.CashFlowService
	maxFileSize     int64
}

func NewCashFlowHandler(cashFlowService *service.CashFlowService, maxFileSize int64) *CashFlowHandler {
	return &CashFlowHandler{
		cashFlowService: cashFlowService,
		maxFileSize:     maxFileSize,
	}
}

// ListSections handles GET /cashflow/sections
func (h *CashFlowHandler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, h.cashFlowService.Rules().Describe())
}

// Analyze handles POST /cashflow/analyze
func (h *CashFlowHandler) Analyze(c *gin.Context) {
	response, ok := h.analyzeUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response)
}

// Export handles POST /cashflow/export?format=csv|xlsx|json|table
func (h *CashFlowHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatCSV)))
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid export format", err)
		return
	}
	table := c.DefaultQuery("table", export.TablePivot)
	if format == export.FormatCSV && table != export.TablePivot && table != export.TableComparison {
		h.sendError(c, http.StatusBadRequest, "Invalid table", fmt.Errorf("unknown table %q (pivot, comparison)", table))
		return
	}

	response, ok := h.analyzeUpload(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("cashflow-%s.%s", response.BatchID, format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", format.ContentType())
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, response, table); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("export failed after headers were sent")
	}
}

// ExtractText handles POST /cashflow/extract with already extracted text.
func (h *CashFlowHandler) ExtractText(c *gin.Context) {
	var request dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sections, err := cashflow.ParseSections(request.Sections)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid sections", err)
		return
	}

	docs := make([]dto.DocumentInput, len(request.Documents))
	for i, d := range request.Documents {
		docs[i] = dto.DocumentInput{Name: d.Name, Text: d.Text, Label: d.Label}
	}

	response, err := h.cashFlowService.Analyze(c.Request.Context(), docs, sections)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to analyze documents", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// analyzeUpload parses the multipart batch and runs it through the service. It writes
// the error response itself and reports false on failure.
func (h *CashFlowHandler) analyzeUpload(c *gin.Context) (*dto.AnalysisResponse, bool) {
	logger := zerolog.Ctx(c.Request.Context())

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, false
	}

	request := &dto.AnalyzeRequest{
		Files:    form.File["files[]"],
		Metadata: c.PostForm("metadata"),
		Sections: c.PostForm("sections"),
	}
	if err := request.Validate(h.maxFileSize); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dto.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.sendError(c, status, err.Error(), err)
		return nil, false
	}

	var metadata dto.UploadMetadata
	if strings.TrimSpace(request.Metadata) != "" {
		if err := json.Unmarshal([]byte(request.Metadata), &metadata); err != nil {
			h.sendError(c, http.StatusBadRequest, "Invalid metadata JSON", err)
			return nil, false
		}
	}

	sections, err := cashflow.ParseSections([]string{request.Sections})
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid sections", err)
		return nil, false
	}

	docs := make([]dto.DocumentInput, 0, len(request.Files))
	for _, file := range request.Files {
		data, err := readUpload(file)
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
			return nil, false
		}
		doc := dto.DocumentInput{Name: file.Filename, Data: data}
		if meta, ok := metadata.Lookup(file.Filename); ok {
			doc.Password = meta.Password
			doc.Label = meta.Label
		}
		docs = append(docs, doc)
	}

	logger.Info().Int("files", len(docs)).Int("sections", len(sections)).Msg("processing upload")

	response, err := h.cashFlowService.Analyze(c.Request.Context(), docs, sections)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to analyze documents", err)
		return nil, false
	}
	return response, true
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", file.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", file.Filename, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// sendError sends a structured error response
func (h *CashFlowHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Int("status", statusCode).Msg(message)
	}

	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Error:   errorCode(statusCode),
		Message: errorMsg,
		Code:    statusCode,
	})
}

func errorCode(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusRequestEntityTooLarge:
		return "FILE_TOO_LARGE"
	default:
		return "ANALYSIS_FAILED"
	}
}
