package models

// DefaultSchema is assumed whenever a catalog record omits its schema.
const DefaultSchema = "public"

// Catalog is the Supabase export bundle: every table and callable function
// the exporter found, plus whatever metadata it attached. Dependencies holds
// the raw function→table rows when the exporter did not fold them into the
// functions themselves.
type Catalog struct {
	Tables       []Table            `json:"tables"`
	Functions    []Function         `json:"functions"`
	Dependencies []DependencyRecord `json:"dependencies,omitempty"`
	Metadata     map[string]any     `json:"metadata,omitempty"`
}

type Table struct {
	Schema string `json:"schema"`
	Name   string `json:"name"`
}

// Function is a callable schema function together with the tables it is known
// to touch. TablesUsed may be empty when dependency data was unavailable.
type Function struct {
	Schema     string   `json:"schema"`
	Name       string   `json:"name"`
	TablesUsed []string `json:"tables_used"`
}

// DependencyRecord is one row of the flat function→table dependency listing
// produced by the exporter's list_function_dependencies RPC.
type DependencyRecord struct {
	FunctionSchema  string `json:"function_schema"`
	FunctionName    string `json:"function_name"`
	ReferencedTable string `json:"referenced_table"`
}

// FunctionKey identifies a function within the catalog.
type FunctionKey struct {
	Schema string
	Name   string
}

// EmptyCatalog substitutes for a missing catalog export so the merge can run
// in degraded mode instead of aborting.
func EmptyCatalog() *Catalog {
	return &Catalog{
		Tables:    []Table{},
		Functions: []Function{},
		Metadata:  map[string]any{},
	}
}
