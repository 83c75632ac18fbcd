// Package merge combines extracted workflow references with the Supabase
// catalog into the unified stack report.
package merge

import (
	"sort"

	"github.com/stacklens/core/internal/models"
)

// ResolveDependencies collapses the flat function→table dependency listing
// into a per-function set of table names, deduplicated and sorted. Records
// with no referenced table contribute nothing; a missing schema defaults to
// "public". The result is invariant under permutation of the input.
func ResolveDependencies(records []models.DependencyRecord) map[models.FunctionKey][]string {
	sets := make(map[models.FunctionKey]map[string]bool)

	for _, record := range records {
		if record.ReferencedTable == "" {
			continue
		}

		schema := record.FunctionSchema
		if schema == "" {
			schema = models.DefaultSchema
		}

		key := models.FunctionKey{Schema: schema, Name: record.FunctionName}
		if sets[key] == nil {
			sets[key] = make(map[string]bool)
		}
		sets[key][record.ReferencedTable] = true
	}

	resolved := make(map[models.FunctionKey][]string, len(sets))
	for key, tables := range sets {
		names := make([]string, 0, len(tables))
		for name := range tables {
			names = append(names, name)
		}
		sort.Strings(names)
		resolved[key] = names
	}

	return resolved
}

// AttachDependencies fills in TablesUsed for every catalog function from the
// resolved dependency map. Functions with no dependency records get an empty
// list, never nil, so the serialized report always carries tables_used.
func AttachDependencies(functions []models.Function, deps map[models.FunctionKey][]string) []models.Function {
	attached := make([]models.Function, 0, len(functions))

	for _, fn := range functions {
		schema := fn.Schema
		if schema == "" {
			schema = models.DefaultSchema
		}

		tables := deps[models.FunctionKey{Schema: schema, Name: fn.Name}]
		if tables == nil {
			tables = []string{}
		}

		attached = append(attached, models.Function{
			Schema:     schema,
			Name:       fn.Name,
			TablesUsed: tables,
		})
	}

	return attached
}
