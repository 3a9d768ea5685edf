package neo4j

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/vacancy-gateway/internal/domain"
)

func TestLookupRows(t *testing.T) {
	list := domain.LookupList{
		Kind: domain.LookupAreas,
		Entries: []domain.LookupEntry{
			{ID: "113", Name: "Россия", Children: []domain.LookupEntry{
				{ID: "1", Name: "Москва", ParentID: "113"},
			}},
			{Name: "no id"},
		},
	}

	rows := lookupRows(list)
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]any{"id": "113", "name": "Россия", "parentId": ""}, rows[0])
	assert.Equal(t, map[string]any{"id": "1", "name": "Москва", "parentId": "113"}, rows[1])
}

func TestVacancyRows(t *testing.T) {
	from := 100000
	seen := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	rows := vacancyRows([]domain.VacancySummary{
		{ID: "1", Name: "Go", AreaID: "1", Salary: &domain.Salary{From: &from, Currency: "RUR"}},
		{ID: "", Name: "dropped"},
		{ID: "2", Name: "QA"},
	}, seen)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(100000), rows[0]["salaryFrom"])
	assert.Nil(t, rows[0]["salaryTo"])
	assert.Equal(t, "RUR", rows[0]["currency"])
	assert.Equal(t, seen.UnixMilli(), rows[0]["seenAt"])
	assert.Nil(t, rows[1]["salaryFrom"])
}

func TestVacancyFromRecord(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"j", "e", "a"},
		Values: []any{
			neo4j.Node{Props: map[string]any{"id": "7", "name": "SRE", "url": "https://hh.ru/vacancy/7", "salaryTo": int64(300000), "currency": "RUR"}},
			neo4j.Node{Props: map[string]any{"name": "Acme", "logoUrl": "https://img/240.png"}},
			nil,
		},
	}

	v, ok := vacancyFromRecord(record)
	require.True(t, ok)
	assert.Equal(t, "7", v.ID)
	assert.Equal(t, "Acme", v.EmployerName)
	assert.Empty(t, v.AreaID)
	require.NotNil(t, v.Salary)
	assert.Nil(t, v.Salary.From)
	assert.Equal(t, 300000, *v.Salary.To)

	_, ok = vacancyFromRecord(&neo4j.Record{Keys: []string{"j"}, Values: []any{"not a node"}})
	assert.False(t, ok)
}
