package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type lookupSyncTool struct {
	catalog CatalogService
}

// WithLookupSync registers lookup_sync
func WithLookupSync(catalog CatalogService) Option {
	return func(reg *registry) {
		handler := lookupSyncTool{catalog: catalog}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "lookup_sync",
			Description: "Copy industries and areas into the Neo4j graph now",
		}, handler.handle)
	}
}

func (t lookupSyncTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, any, error) {
	report, err := t.catalog.SyncLookups(ctx)
	if err != nil {
		return nil, nil, err
	}

	msg := fmt.Sprintf("[lookup_sync] industries=%d areas=%d", report.Industries, report.Areas)
	if len(report.Skipped) > 0 {
		msg += fmt.Sprintf(" skipped=%v", report.Skipped)
	}
	return textResult(msg), report, nil
}
