package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Aashish23092/cashflow-analyzer/dto"
)

// Write renders resp in the given format. table selects the CSV table and is ignored
// by the other formats.
func Write(w io.Writer, format Format, resp *dto.AnalysisResponse, table string) error {
	switch format {
	case FormatTable:
		return NewReporter(w).Handle(resp)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatCSV:
		return WriteCSV(w, resp, table)
	case FormatXLSX:
		return WriteXLSX(w, resp)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
