package tools

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/domain/catalog"
	"github.com/honeycarbs/vacancy-gateway/internal/result"
)

type stubService struct {
	lastReq domain.PageRequest
	page    result.Result[domain.VacancyPage]
	detail  result.Result[domain.VacancyDetail]
	lookups result.Result[domain.LookupList]
}

func (s *stubService) SearchVacancies(_ context.Context, req domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	s.lastReq = req
	return s.page, nil
}

func (s *stubService) VacancyDetail(context.Context, int64) (result.Result[domain.VacancyDetail], error) {
	return s.detail, nil
}

func (s *stubService) Industries(context.Context) (result.Result[domain.LookupList], error) {
	return s.lookups, nil
}

func (s *stubService) Areas(context.Context) (result.Result[domain.LookupList], error) {
	return s.lookups, nil
}

func (s *stubService) AreasByID(context.Context, string) (result.Result[domain.LookupList], error) {
	return s.lookups, nil
}

func (s *stubService) SearchAreas(context.Context, string, string) (result.Result[domain.LookupList], error) {
	return s.lookups, nil
}

type stubCatalog struct {
	recorded int
	stored   []domain.VacancySummary
}

func (c *stubCatalog) SyncLookups(context.Context) (catalog.SyncReport, error) {
	return catalog.SyncReport{Industries: 2, Areas: 5}, nil
}

func (c *stubCatalog) SearchAndRecord(_ context.Context, _ domain.PageRequest) (result.Result[domain.VacancyPage], error) {
	c.recorded++
	return result.Success(domain.VacancyPage{Items: c.stored}), nil
}

func (c *stubCatalog) Recorded(context.Context, []string) ([]domain.VacancySummary, error) {
	return c.stored, nil
}

type stubSheets struct {
	last SheetsWrite
}

func (s *stubSheets) Export(_ context.Context, req SheetsWrite) (SheetsExportResult, error) {
	s.last = req
	return SheetsExportResult{
		SpreadsheetID: req.Sheet.SpreadsheetID,
		Tab:           req.Sheet.Tab,
		WrittenRows:   len(req.Rows),
		Mode:          "append",
		CompletedAt:   time.Now(),
	}, nil
}

func connect(t *testing.T, opts ...Option) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	Register(server, nil, opts...)

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	_, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func call(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) *sdkmcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	return res
}

func text(res *sdkmcp.CallToolResult) string {
	for _, c := range res.Content {
		if txt, ok := c.(*sdkmcp.TextContent); ok {
			return txt.Text
		}
	}
	return ""
}

func TestToolsListed(t *testing.T) {
	svc := &stubService{}
	cat := &stubCatalog{}
	session := connect(t,
		WithVacancySearch(svc, cat),
		WithVacancyDetail(svc),
		WithLookups(svc),
		WithLookupSync(cat),
		WithSheetsExport(svc, cat, &stubSheets{}),
	)

	list, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range list.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"vacancy_search", "vacancy_detail", "industries", "areas",
		"areas_by_id", "area_search", "lookup_sync", "sheets_export",
	}, names)
}

func TestVacancySearch(t *testing.T) {
	svc := &stubService{page: result.Success(domain.VacancyPage{
		Items: []domain.VacancySummary{{ID: "1", Name: "Go"}},
		Found: 40, Page: 0, Pages: 2,
	})}
	session := connect(t, WithVacancySearch(svc, nil))

	res := call(t, session, "vacancy_search", map[string]any{"text": "golang", "area_id": "1", "per_page": 20})
	assert.False(t, res.IsError)
	assert.Contains(t, text(res), "40 found")
	assert.Equal(t, "golang", svc.lastReq.Filter.Text)
	assert.Equal(t, "1", svc.lastReq.Filter.RegionID)
	assert.Equal(t, 20, svc.lastReq.PageSize)
}

func TestVacancySearch_Record(t *testing.T) {
	cat := &stubCatalog{stored: []domain.VacancySummary{{ID: "1"}}}
	session := connect(t, WithVacancySearch(&stubService{}, cat))

	res := call(t, session, "vacancy_search", map[string]any{"text": "go", "record": true})
	assert.False(t, res.IsError)
	assert.Equal(t, 1, cat.recorded)
}

func TestVacancyDetail_RemoteErrorIsToolError(t *testing.T) {
	svc := &stubService{detail: result.RemoteError[domain.VacancyDetail](404)}
	session := connect(t, WithVacancyDetail(svc))

	res := call(t, session, "vacancy_detail", map[string]any{"id": 42})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "remote_error(404)")
}

func TestLookupTools(t *testing.T) {
	svc := &stubService{lookups: result.Success(domain.LookupList{Entries: []domain.LookupEntry{
		{ID: "113", Name: "Россия", Children: []domain.LookupEntry{{ID: "1", Name: "Москва"}}},
	}})}
	session := connect(t, WithLookups(svc))

	for _, name := range []string{"industries", "areas"} {
		res := call(t, session, name, map[string]any{})
		assert.False(t, res.IsError, name)
		assert.Contains(t, text(res), "1 top-level entries, 2 in total")
	}

	res := call(t, session, "areas_by_id", map[string]any{"id": "113"})
	assert.False(t, res.IsError)

	res = call(t, session, "area_search", map[string]any{"country_id": "113", "text": "моск"})
	assert.False(t, res.IsError)
}

func TestLookupSync(t *testing.T) {
	session := connect(t, WithLookupSync(&stubCatalog{}))

	res := call(t, session, "lookup_sync", map[string]any{})
	assert.False(t, res.IsError)
	assert.Contains(t, text(res), "industries=2 areas=5")
}

func TestSheetsExport(t *testing.T) {
	from := 1000
	svc := &stubService{page: result.Success(domain.VacancyPage{Items: []domain.VacancySummary{
		{ID: "1", Name: "Go", EmployerName: "Acme", Salary: &domain.Salary{From: &from, Currency: "RUR"}},
	}})}
	sheets := &stubSheets{}
	session := connect(t, WithSheetsExport(svc, nil, sheets))

	res := call(t, session, "sheets_export", map[string]any{
		"search": map[string]any{"text": "go"},
		"sheet":  map[string]any{"spreadsheet_id": "doc-1", "tab": "Vacancies"},
	})
	require.False(t, res.IsError, text(res))
	require.Len(t, sheets.last.Rows, 1)
	assert.Equal(t, "from 1000 RUR", sheets.last.Rows[0].Salary)
	assert.Equal(t, "Acme", sheets.last.Rows[0].Employer)

	res = call(t, session, "sheets_export", map[string]any{
		"vacancy_ids": []string{"1"},
		"sheet":       map[string]any{"spreadsheet_id": "doc-1"},
	})
	assert.True(t, res.IsError)

	res = call(t, session, "sheets_export", map[string]any{"sheet": map[string]any{"spreadsheet_id": ""}})
	assert.True(t, res.IsError)
}

func TestFormatSalary(t *testing.T) {
	from, to := 100, 200
	assert.Equal(t, "", formatSalary(nil))
	assert.Equal(t, "", formatSalary(&domain.Salary{Currency: "RUR"}))
	assert.Equal(t, "from 100 to 200 USD", formatSalary(&domain.Salary{From: &from, To: &to, Currency: "USD"}))
}
