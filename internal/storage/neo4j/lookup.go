package neo4j

import (
	"context"
	"fmt"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/repository"
	pkgneo4j "github.com/honeycarbs/vacancy-gateway/pkg/neo4j"
)

var _ repository.LookupRepository = (*LookupRepository)(nil)

// LookupRepository implements repository.LookupRepository with Neo4j
type LookupRepository struct {
	client *pkgneo4j.Client
}

// NewLookupRepository creates a LookupRepository with a Neo4j client
func NewLookupRepository(client *pkgneo4j.Client) *LookupRepository {
	return &LookupRepository{client: client}
}

const upsertIndustriesQuery = `
	UNWIND $rows AS row
	MERGE (i:Industry {id: row.id})
	SET i.name = row.name
	WITH i, row
	WHERE row.parentId <> ""
	MERGE (p:Industry {id: row.parentId})
	MERGE (i)-[:PART_OF]->(p)
`

const upsertAreasQuery = `
	UNWIND $rows AS row
	MERGE (a:Area {id: row.id})
	SET a.name = row.name
	WITH a, row
	WHERE row.parentId <> ""
	MERGE (p:Area {id: row.parentId})
	MERGE (a)-[:LOCATED_IN]->(p)
`

// UpsertIndustries merges every industry and its group link.
// It returns the number of rows written.
func (r *LookupRepository) UpsertIndustries(ctx context.Context, list domain.LookupList) (int, error) {
	return r.upsert(ctx, upsertIndustriesQuery, list)
}

// UpsertAreas merges the area tree, one node per area
func (r *LookupRepository) UpsertAreas(ctx context.Context, list domain.LookupList) (int, error) {
	return r.upsert(ctx, upsertAreasQuery, list)
}

func (r *LookupRepository) upsert(ctx context.Context, query string, list domain.LookupList) (int, error) {
	rows := lookupRows(list)
	if len(rows) == 0 {
		return 0, nil
	}

	if _, err := r.client.Write(ctx, query, map[string]any{"rows": rows}); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", list.Kind, err)
	}
	return len(rows), nil
}

// lookupRows flattens list into query parameters, parents first
func lookupRows(list domain.LookupList) []map[string]any {
	flat := list.Flatten()
	rows := make([]map[string]any, 0, len(flat))
	for _, e := range flat {
		if e.ID == "" {
			continue
		}
		rows = append(rows, map[string]any{
			"id":       e.ID,
			"name":     e.Name,
			"parentId": e.ParentID,
		})
	}
	return rows
}
