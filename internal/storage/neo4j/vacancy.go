package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
	"github.com/honeycarbs/vacancy-gateway/internal/repository"
	pkgneo4j "github.com/honeycarbs/vacancy-gateway/pkg/neo4j"
)

var _ repository.VacancyRepository = (*VacancyRepository)(nil)

// VacancyRepository implements repository.VacancyRepository with Neo4j
type VacancyRepository struct {
	client *pkgneo4j.Client
}

// NewVacancyRepository creates a VacancyRepository with a Neo4j client
func NewVacancyRepository(client *pkgneo4j.Client) *VacancyRepository {
	return &VacancyRepository{client: client}
}

const upsertVacanciesQuery = `
	UNWIND $vacancies AS v
	MERGE (j:Vacancy {id: v.id})
	SET j.name = v.name,
	    j.url = v.url,
	    j.salaryFrom = v.salaryFrom,
	    j.salaryTo = v.salaryTo,
	    j.currency = v.currency,
	    j.seenAt = datetime({epochMillis: v.seenAt})
	WITH j, v
	FOREACH (_ IN CASE WHEN v.employer <> "" THEN [1] ELSE [] END |
		MERGE (e:Employer {name: v.employer})
		SET e.logoUrl = v.employerLogo
		MERGE (j)-[:OFFERED_BY]->(e)
	)
	FOREACH (_ IN CASE WHEN v.areaId <> "" THEN [1] ELSE [] END |
		MERGE (a:Area {id: v.areaId})
		SET a.name = coalesce(a.name, v.areaName)
		MERGE (j)-[:LOCATED_IN]->(a)
	)
`

const findVacanciesQuery = `
	MATCH (j:Vacancy)
	WHERE j.id IN $ids
	OPTIONAL MATCH (j)-[:OFFERED_BY]->(e:Employer)
	OPTIONAL MATCH (j)-[:LOCATED_IN]->(a:Area)
	RETURN j, e, a
`

// UpsertVacancies merges search rows and links them to employer and area
func (r *VacancyRepository) UpsertVacancies(ctx context.Context, items []domain.VacancySummary, seenAt time.Time) error {
	if len(items) == 0 {
		return nil
	}

	params := map[string]any{"vacancies": vacancyRows(items, seenAt)}
	if _, err := r.client.Write(ctx, upsertVacanciesQuery, params); err != nil {
		return fmt.Errorf("upsert vacancies: %w", err)
	}
	return nil
}

// FindByIDs loads stored vacancies by id, in no particular order
func (r *VacancyRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.VacancySummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	records, err := r.client.Read(ctx, findVacanciesQuery, map[string]any{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("find vacancies: %w", err)
	}

	out := make([]domain.VacancySummary, 0, len(records))
	for _, record := range records {
		v, ok := vacancyFromRecord(record)
		if !ok {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func vacancyRows(items []domain.VacancySummary, seenAt time.Time) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		row := map[string]any{
			"id":           it.ID,
			"name":         it.Name,
			"url":          it.AlternateURL,
			"employer":     it.EmployerName,
			"employerLogo": it.EmployerLogoURL,
			"areaId":       it.AreaID,
			"areaName":     it.AreaName,
			"salaryFrom":   nil,
			"salaryTo":     nil,
			"currency":     "",
			"seenAt":       seenAt.UnixMilli(),
		}
		if s := it.Salary; s != nil {
			if s.From != nil {
				row["salaryFrom"] = int64(*s.From)
			}
			if s.To != nil {
				row["salaryTo"] = int64(*s.To)
			}
			row["currency"] = s.Currency
		}
		rows = append(rows, row)
	}
	return rows
}

func vacancyFromRecord(record *neo4j.Record) (domain.VacancySummary, bool) {
	jobVal, ok := record.Get("j")
	if !ok {
		return domain.VacancySummary{}, false
	}
	node, ok := jobVal.(neo4j.Node)
	if !ok {
		return domain.VacancySummary{}, false
	}

	props := node.Props
	v := domain.VacancySummary{
		ID:           stringProp(props, "id"),
		Name:         stringProp(props, "name"),
		AlternateURL: stringProp(props, "url"),
	}
	if v.ID == "" {
		return domain.VacancySummary{}, false
	}

	from, hasFrom := intProp(props, "salaryFrom")
	to, hasTo := intProp(props, "salaryTo")
	if hasFrom || hasTo {
		s := &domain.Salary{Currency: stringProp(props, "currency")}
		if hasFrom {
			s.From = &from
		}
		if hasTo {
			s.To = &to
		}
		v.Salary = s
	}

	if val, ok := record.Get("e"); ok {
		if e, ok := val.(neo4j.Node); ok {
			v.EmployerName = stringProp(e.Props, "name")
			v.EmployerLogoURL = stringProp(e.Props, "logoUrl")
		}
	}
	if val, ok := record.Get("a"); ok {
		if a, ok := val.(neo4j.Node); ok {
			v.AreaID = stringProp(a.Props, "id")
			v.AreaName = stringProp(a.Props, "name")
		}
	}

	return v, true
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

func intProp(props map[string]any, key string) (int, bool) {
	n, ok := props[key].(int64)
	return int(n), ok
}
