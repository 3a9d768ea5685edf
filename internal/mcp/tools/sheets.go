package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
)

var (
	errSpreadsheetRequired = errors.New("sheet.spreadsheet_id is required")
	errNoSource            = errors.New("either search or vacancy_ids is required")
	errNoCatalog           = errors.New("vacancy_ids need graph storage, which is not configured")
)

// SheetsClient writes rows into a spreadsheet
type SheetsClient interface {
	Export(ctx context.Context, req SheetsWrite) (SheetsExportResult, error)
}

// SheetTarget addresses the destination of an export
type SheetTarget struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write into"`
	Range         string `json:"range,omitempty" jsonschema:"Optional A1 range override"`
}

// SheetRow is one vacancy as a spreadsheet row
type SheetRow struct {
	ID       string
	Name     string
	Employer string
	Area     string
	Salary   string
	URL      string
}

// SheetsWrite is what the tool hands to SheetsClient
type SheetsWrite struct {
	Sheet    SheetTarget
	Rows     []SheetRow
	Upsert   bool
	ClearTab bool
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Search     *VacancySearchParams `json:"search,omitempty" jsonschema:"Run this search and export its page"`
	VacancyIDs []string             `json:"vacancy_ids,omitempty" jsonschema:"Export vacancies previously recorded in the graph"`
	Upsert     bool                 `json:"upsert,omitempty" jsonschema:"Overwrite from row 2 (true) or append (false)"`
	ClearTab   bool                 `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
	Sheet      SheetTarget          `json:"sheet" jsonschema:"Destination sheet information"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab,omitempty" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many rows were written"`
	Mode          string    `json:"mode" jsonschema:"append or upsert"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
	Message       string    `json:"message,omitempty" jsonschema:"Optional status message"`
}

type sheetsExportTool struct {
	service VacancyService
	catalog CatalogService
	client  SheetsClient
}

// WithSheetsExport registers sheets_export. catalog may be nil.
func WithSheetsExport(service VacancyService, catalog CatalogService, client SheetsClient) Option {
	return func(reg *registry) {
		handler := sheetsExportTool{service: service, catalog: catalog, client: client}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Export a vacancy search page or recorded vacancies to Google Sheets",
		}, handler.handle)
	}
}

func (t sheetsExportTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if strings.TrimSpace(params.Sheet.SpreadsheetID) == "" {
		return nil, nil, errSpreadsheetRequired
	}

	var items []domain.VacancySummary
	switch {
	case params.Search != nil:
		res, err := t.service.SearchVacancies(ctx, params.Search.pageRequest())
		if err != nil {
			return nil, nil, err
		}
		page, ok := res.Payload()
		if !ok {
			out := textResult(fmt.Sprintf("[sheets_export] search failed: %s", res))
			out.IsError = true
			return out, nil, nil
		}
		items = page.Items
	case len(params.VacancyIDs) > 0:
		if t.catalog == nil {
			return nil, nil, errNoCatalog
		}
		found, err := t.catalog.Recorded(ctx, params.VacancyIDs)
		if err != nil {
			return nil, nil, err
		}
		items = found
	default:
		return nil, nil, errNoSource
	}

	res, err := t.client.Export(ctx, SheetsWrite{
		Sheet:    params.Sheet,
		Rows:     sheetRows(items),
		Upsert:   params.Upsert,
		ClearTab: params.ClearTab,
	})
	if err != nil {
		return nil, nil, err
	}

	msg := fmt.Sprintf("[sheets_export] mode=%s rows=%d spreadsheet_id=%q tab=%q", res.Mode, res.WrittenRows, res.SpreadsheetID, res.Tab)
	return textResult(msg), res, nil
}

func sheetRows(items []domain.VacancySummary) []SheetRow {
	rows := make([]SheetRow, 0, len(items))
	for _, v := range items {
		rows = append(rows, SheetRow{
			ID:       v.ID,
			Name:     v.Name,
			Employer: v.EmployerName,
			Area:     v.AreaName,
			Salary:   formatSalary(v.Salary),
			URL:      v.AlternateURL,
		})
	}
	return rows
}

func formatSalary(s *domain.Salary) string {
	if s == nil {
		return ""
	}
	var parts []string
	if s.From != nil {
		parts = append(parts, "from "+strconv.Itoa(*s.From))
	}
	if s.To != nil {
		parts = append(parts, "to "+strconv.Itoa(*s.To))
	}
	if len(parts) == 0 {
		return ""
	}
	if s.Currency != "" {
		parts = append(parts, s.Currency)
	}
	return strings.Join(parts, " ")
}
