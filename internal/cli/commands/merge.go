package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stacklens/core/internal/config"
	"github.com/stacklens/core/internal/extract"
	"github.com/stacklens/core/internal/merge"
	"github.com/stacklens/core/internal/models"
	"github.com/stacklens/core/internal/parser"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge the n8n and Supabase exports into a unified report",
		Long: `Read the n8n workflow export and the Supabase catalog export, cross-reference
which tables and functions the workflows use, and write the unified
stack_data.json report.

A missing export file is substituted with an empty one (the run succeeds with
a degraded report); a malformed export aborts the run and leaves any existing
output file untouched.`,
		Example: `  # Merge with the default artifact locations
  stacklens merge

  # Explicit artifact paths
  stacklens merge --workflows n8n_data.json --catalog supabase_data.json --output stack_data.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd)
		},
	}
}

func runMerge(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var workflows []models.Workflow
	workflowData, err := readArtifact(cfg.WorkflowsPath, config.FallbackWorkflowsPath)
	if err != nil {
		return err
	}
	if workflowData == nil {
		slog.Warn("workflow export not found, merging with empty workflow set", "path", cfg.WorkflowsPath)
	} else {
		workflows, err = parser.ParseWorkflowExport(workflowData)
		if err != nil {
			return err
		}
	}

	var catalog *models.Catalog
	catalogData, err := readArtifact(cfg.CatalogPath, config.FallbackCatalogPath)
	if err != nil {
		return err
	}
	if catalogData == nil {
		slog.Warn("catalog export not found, merging with empty catalog", "path", cfg.CatalogPath)
	} else {
		catalog, err = parser.ParseCatalog(catalogData)
		if err != nil {
			return err
		}
	}

	usage := extract.References(workflows)
	report := merge.Build(workflows, catalog, usage, time.Now())

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}

	printSummary(cmd, cfg.OutputPath, report)

	return nil
}

// readArtifact reads an export artifact, trying the fallback location the
// export tooling writes into. A missing file is not an error: it returns
// nil data so the caller can substitute an empty artifact.
func readArtifact(path, fallback string) ([]byte, error) {
	for _, candidate := range []string{path, fallback} {
		data, err := os.ReadFile(candidate)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", candidate, err)
		}
	}
	return nil, nil
}

func printSummary(cmd *cobra.Command, outputPath string, report *models.StackData) {
	out := cmd.OutOrStdout()
	meta := report.Metadata

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Total", "Used by n8n"})
	t.AppendRow(table.Row{"Workflows", meta.WorkflowCount, "-"})
	t.AppendRow(table.Row{"Tables", meta.TableCount, meta.TablesUsedByN8n})
	t.AppendRow(table.Row{"Functions", meta.FunctionCount, meta.FunctionsUsedByN8n})
	t.Render()

	_, _ = fmt.Fprintf(out, "Report written to %s\n", outputPath)
}
