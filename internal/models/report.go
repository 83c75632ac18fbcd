package models

// Usage holds the table and function names referenced by at least one
// workflow. Both sets are deduplicated and case-sensitive; membership is
// checked by bare name, never schema-qualified.
type Usage struct {
	Tables    map[string]bool
	Functions map[string]bool
}

func NewUsage() Usage {
	return Usage{
		Tables:    make(map[string]bool),
		Functions: make(map[string]bool),
	}
}

// StackData is the unified report consumed by the visualizer.
type StackData struct {
	Metadata  Metadata       `json:"metadata"`
	Workflows []Workflow     `json:"workflows"`
	Supabase  SupabaseReport `json:"supabase"`
}

type Metadata struct {
	GeneratedAt        string `json:"generated_at"`
	WorkflowCount      int    `json:"workflow_count"`
	TableCount         int    `json:"table_count"`
	FunctionCount      int    `json:"function_count"`
	TablesUsedByN8n    int    `json:"tables_used_by_n8n"`
	FunctionsUsedByN8n int    `json:"functions_used_by_n8n"`
}

type SupabaseReport struct {
	Tables    []ReportTable    `json:"tables"`
	Functions []ReportFunction `json:"functions"`
}

type ReportTable struct {
	Name      string `json:"name"`
	Schema    string `json:"schema"`
	UsedByN8n bool   `json:"used_by_n8n"`
}

type ReportFunction struct {
	Name       string   `json:"name"`
	Schema     string   `json:"schema"`
	TablesUsed []string `json:"tables_used"`
	UsedByN8n  bool     `json:"used_by_n8n"`
}
