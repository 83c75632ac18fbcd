package merge

import (
	"time"

	"github.com/stacklens/core/internal/models"
)

// Build produces the unified report from the workflow collection, the catalog
// and the extracted usage sets. A nil catalog is treated as empty, so the
// merge still yields a complete (if degraded) report when the catalog export
// is missing. Usage matching is by bare name: schema is deliberately not part
// of the key, mirroring how workflows themselves reference tables.
func Build(workflows []models.Workflow, catalog *models.Catalog, usage models.Usage, generatedAt time.Time) *models.StackData {
	if catalog == nil {
		catalog = models.EmptyCatalog()
	}
	if workflows == nil {
		workflows = []models.Workflow{}
	}

	tables := make([]models.ReportTable, 0, len(catalog.Tables))
	for _, table := range catalog.Tables {
		schema := table.Schema
		if schema == "" {
			schema = models.DefaultSchema
		}
		tables = append(tables, models.ReportTable{
			Name:      table.Name,
			Schema:    schema,
			UsedByN8n: usage.Tables[table.Name],
		})
	}

	// Raw dependency rows in the catalog take precedence over any
	// pre-folded tables_used lists.
	catalogFunctions := catalog.Functions
	if len(catalog.Dependencies) > 0 {
		catalogFunctions = AttachDependencies(catalogFunctions, ResolveDependencies(catalog.Dependencies))
	}

	functions := make([]models.ReportFunction, 0, len(catalogFunctions))
	for _, fn := range catalogFunctions {
		schema := fn.Schema
		if schema == "" {
			schema = models.DefaultSchema
		}
		tablesUsed := fn.TablesUsed
		if tablesUsed == nil {
			tablesUsed = []string{}
		}
		functions = append(functions, models.ReportFunction{
			Name:       fn.Name,
			Schema:     schema,
			TablesUsed: tablesUsed,
			UsedByN8n:  usage.Functions[fn.Name],
		})
	}

	return &models.StackData{
		Metadata: models.Metadata{
			GeneratedAt:        generatedAt.UTC().Format(time.RFC3339),
			WorkflowCount:      len(workflows),
			TableCount:         len(tables),
			FunctionCount:      len(functions),
			TablesUsedByN8n:    len(usage.Tables),
			FunctionsUsedByN8n: len(usage.Functions),
		},
		Workflows: workflows,
		Supabase: models.SupabaseReport{
			Tables:    tables,
			Functions: functions,
		},
	}
}
