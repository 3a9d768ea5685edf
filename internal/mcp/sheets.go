package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/honeycarbs/vacancy-gateway/internal/mcp/tools"
)

const defaultTab = "Sheet1"

var errSheetsNotConfigured = errors.New("sheets: client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")

var sheetHeader = []any{"ID", "Vacancy", "Employer", "Area", "Salary", "URL"}

// valuesWriter is the part of pkg/sheets.Client the adapter uses
type valuesWriter interface {
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
}

type sheetsClientAdapter struct {
	client valuesWriter
	now    func() time.Time
}

func newSheetsClientAdapter(client valuesWriter) *sheetsClientAdapter {
	return &sheetsClientAdapter{client: client, now: time.Now}
}

func (a *sheetsClientAdapter) Export(ctx context.Context, req tools.SheetsWrite) (tools.SheetsExportResult, error) {
	res := tools.SheetsExportResult{
		SpreadsheetID: req.Sheet.SpreadsheetID,
		Tab:           req.Sheet.Tab,
		Mode:          "append",
	}
	if req.Upsert {
		res.Mode = "upsert"
	}

	if a.client == nil {
		res.Message = errSheetsNotConfigured.Error()
		return res, errSheetsNotConfigured
	}

	if len(req.Rows) == 0 {
		res.Message = "no rows to export"
		res.CompletedAt = a.now().UTC()
		return res, nil
	}

	tab := req.Sheet.Tab
	if tab == "" {
		tab = defaultTab
	}

	if req.ClearTab {
		if err := a.client.ClearValues(ctx, req.Sheet.SpreadsheetID, tab+"!A2:Z"); err != nil {
			return res, fmt.Errorf("sheets: clear tab: %w", err)
		}
	}

	values := convertRowsToValues(req.Rows)
	rng := buildRange(req.Sheet.Range, tab, req.Upsert)

	if req.Upsert {
		// the header is rewritten on every upsert so a fresh tab is usable
		if err := a.client.UpdateValues(ctx, req.Sheet.SpreadsheetID, tab+"!A1", [][]any{sheetHeader}); err != nil {
			return res, fmt.Errorf("sheets: write header: %w", err)
		}
		if err := a.client.UpdateValues(ctx, req.Sheet.SpreadsheetID, rng, values); err != nil {
			return res, fmt.Errorf("sheets: upsert rows: %w", err)
		}
	} else {
		if err := a.client.AppendValues(ctx, req.Sheet.SpreadsheetID, rng, values); err != nil {
			return res, fmt.Errorf("sheets: append rows: %w", err)
		}
	}

	res.WrittenRows = len(req.Rows)
	res.CompletedAt = a.now().UTC()
	res.Message = fmt.Sprintf("exported %d row(s)", res.WrittenRows)
	return res, nil
}

func buildRange(override, tab string, upsert bool) string {
	if override != "" {
		return override
	}
	if upsert {
		return tab + "!A2"
	}
	return tab + "!A1"
}

func convertRowsToValues(rows []tools.SheetRow) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = []any{row.ID, row.Name, row.Employer, row.Area, row.Salary, row.URL}
	}
	return values
}
