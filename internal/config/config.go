// Package config loads stacklens configuration from defaults, an optional
// stacklens.yaml, STACKLENS_-prefixed environment variables and CLI flags,
// in ascending order of precedence.
package config

// Config holds all runtime settings for the CLI and the API server.
type Config struct {
	WorkflowsPath string `koanf:"workflows_path"`
	CatalogPath   string `koanf:"catalog_path"`
	OutputPath    string `koanf:"output_path"`
	ListenAddr    string `koanf:"listen_addr"`
	CORSOrigin    string `koanf:"cors_origin"`
	Verbose       bool   `koanf:"verbose"`
}

// Default artifact locations. The fallback paths mirror the directories the
// export tooling writes into when run from the repository root.
const (
	DefaultWorkflowsPath = "n8n_data.json"
	DefaultCatalogPath   = "supabase_data.json"
	DefaultOutputPath    = "stack_data.json"
	DefaultListenAddr    = ":8080"
	DefaultCORSOrigin    = "*"

	FallbackWorkflowsPath = "n8n_workflows_export/n8n_data.json"
	FallbackCatalogPath   = "supabase_export_tables/supabase_data.json"
)
