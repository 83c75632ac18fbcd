package merge

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklens/core/internal/models"
)

var fixedClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBuild(t *testing.T) {
	t.Run("marks used tables and functions", func(t *testing.T) {
		catalog := &models.Catalog{
			Tables: []models.Table{
				{Schema: "public", Name: "orders"},
				{Schema: "public", Name: "invoices"},
			},
			Functions: []models.Function{
				{Schema: "public", Name: "refresh_orders", TablesUsed: []string{"orders"}},
				{Schema: "public", Name: "unused_fn", TablesUsed: []string{}},
			},
		}
		usage := models.Usage{
			Tables:    map[string]bool{"orders": true},
			Functions: map[string]bool{"refresh_orders": true},
		}

		report := Build(nil, catalog, usage, fixedClock)

		require.Len(t, report.Supabase.Tables, 2)
		assert.True(t, report.Supabase.Tables[0].UsedByN8n)
		assert.False(t, report.Supabase.Tables[1].UsedByN8n)

		require.Len(t, report.Supabase.Functions, 2)
		assert.True(t, report.Supabase.Functions[0].UsedByN8n)
		assert.False(t, report.Supabase.Functions[1].UsedByN8n)
	})

	t.Run("empty workflows with non-empty catalog marks everything unused", func(t *testing.T) {
		catalog := &models.Catalog{
			Tables:    []models.Table{{Name: "orders"}, {Name: "customers"}},
			Functions: []models.Function{{Name: "refresh_orders"}},
		}

		report := Build(nil, catalog, models.NewUsage(), fixedClock)

		for _, table := range report.Supabase.Tables {
			assert.False(t, table.UsedByN8n)
		}
		for _, fn := range report.Supabase.Functions {
			assert.False(t, fn.UsedByN8n)
		}
		assert.Equal(t, 0, report.Metadata.TablesUsedByN8n)
		assert.Equal(t, 0, report.Metadata.FunctionsUsedByN8n)
		assert.Equal(t, 0, report.Metadata.WorkflowCount)
	})

	t.Run("nil catalog produces an empty report", func(t *testing.T) {
		report := Build(nil, nil, models.NewUsage(), fixedClock)

		assert.Empty(t, report.Supabase.Tables)
		assert.Empty(t, report.Supabase.Functions)
		assert.Equal(t, 0, report.Metadata.TableCount)
		assert.Equal(t, 0, report.Metadata.FunctionCount)
	})

	t.Run("a placeholder-named catalog table stays unused", func(t *testing.T) {
		catalog := &models.Catalog{
			Tables: []models.Table{{Schema: "public", Name: "Supabase"}},
		}

		report := Build(nil, catalog, models.NewUsage(), fixedClock)

		require.Len(t, report.Supabase.Tables, 1)
		assert.False(t, report.Supabase.Tables[0].UsedByN8n)
	})

	t.Run("missing schema defaults to public", func(t *testing.T) {
		catalog := &models.Catalog{
			Tables:    []models.Table{{Name: "orders"}},
			Functions: []models.Function{{Name: "fn"}},
		}

		report := Build(nil, catalog, models.NewUsage(), fixedClock)

		assert.Equal(t, "public", report.Supabase.Tables[0].Schema)
		assert.Equal(t, "public", report.Supabase.Functions[0].Schema)
	})

	t.Run("usage matching ignores schema", func(t *testing.T) {
		catalog := &models.Catalog{
			Functions: []models.Function{
				{Schema: "public", Name: "compute_totals"},
				{Schema: "analytics", Name: "compute_totals"},
			},
		}
		usage := models.Usage{Functions: map[string]bool{"compute_totals": true}}

		report := Build(nil, catalog, usage, fixedClock)

		assert.True(t, report.Supabase.Functions[0].UsedByN8n)
		assert.True(t, report.Supabase.Functions[1].UsedByN8n)
	})

	t.Run("tables_used passes through and is never null", func(t *testing.T) {
		catalog := &models.Catalog{
			Functions: []models.Function{
				{Name: "a", TablesUsed: []string{"orders", "customers"}},
				{Name: "b"},
			},
		}

		report := Build(nil, catalog, models.NewUsage(), fixedClock)

		assert.Equal(t, []string{"orders", "customers"}, report.Supabase.Functions[0].TablesUsed)
		assert.NotNil(t, report.Supabase.Functions[1].TablesUsed)

		out, err := json.Marshal(report.Supabase.Functions[1])
		require.NoError(t, err)
		assert.Contains(t, string(out), `"tables_used":[]`)
	})

	t.Run("raw dependency rows are resolved into tables_used", func(t *testing.T) {
		catalog := &models.Catalog{
			Functions: []models.Function{
				{Schema: "public", Name: "refresh_orders"},
				{Schema: "public", Name: "no_deps_fn"},
			},
			Dependencies: []models.DependencyRecord{
				{FunctionSchema: "public", FunctionName: "refresh_orders", ReferencedTable: "orders"},
				{FunctionSchema: "public", FunctionName: "refresh_orders", ReferencedTable: "customers"},
			},
		}

		report := Build(nil, catalog, models.NewUsage(), fixedClock)

		require.Len(t, report.Supabase.Functions, 2)
		assert.Equal(t, []string{"customers", "orders"}, report.Supabase.Functions[0].TablesUsed)
		assert.Empty(t, report.Supabase.Functions[1].TablesUsed)
		assert.NotNil(t, report.Supabase.Functions[1].TablesUsed)
	})

	t.Run("workflows pass through in input order", func(t *testing.T) {
		workflows := []models.Workflow{
			{ID: "wf-2", Name: "second"},
			{ID: "wf-1", Name: "first"},
		}

		report := Build(workflows, nil, models.NewUsage(), fixedClock)

		require.Len(t, report.Workflows, 2)
		assert.Equal(t, "wf-2", report.Workflows[0].ID)
		assert.Equal(t, "wf-1", report.Workflows[1].ID)
	})

	t.Run("metadata counts and timestamp", func(t *testing.T) {
		catalog := &models.Catalog{
			Tables:    []models.Table{{Name: "orders"}},
			Functions: []models.Function{{Name: "fn"}},
		}
		usage := models.Usage{
			Tables:    map[string]bool{"orders": true},
			Functions: map[string]bool{"fn": true, "ghost_fn": true},
		}

		report := Build([]models.Workflow{{ID: "wf-1"}}, catalog, usage, fixedClock)

		assert.Equal(t, 1, report.Metadata.WorkflowCount)
		assert.Equal(t, 1, report.Metadata.TableCount)
		assert.Equal(t, 1, report.Metadata.FunctionCount)
		assert.Equal(t, 1, report.Metadata.TablesUsedByN8n)
		assert.Equal(t, 2, report.Metadata.FunctionsUsedByN8n)
		assert.Equal(t, "2025-06-01T12:00:00Z", report.Metadata.GeneratedAt)
	})

	t.Run("fixed clock makes output deterministic", func(t *testing.T) {
		catalog := &models.Catalog{Tables: []models.Table{{Name: "orders"}}}

		first, err := json.Marshal(Build(nil, catalog, models.NewUsage(), fixedClock))
		require.NoError(t, err)
		second, err := json.Marshal(Build(nil, catalog, models.NewUsage(), fixedClock))
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})
}
