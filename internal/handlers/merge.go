package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/stacklens/core/internal/extract"
	"github.com/stacklens/core/internal/merge"
	"github.com/stacklens/core/internal/models"
	"github.com/stacklens/core/internal/parser"
)

// MergeRequest carries the two export artifacts. Either side may be null or
// absent; the merge then runs degraded with an empty substitute.
type MergeRequest struct {
	N8n      json.RawMessage `json:"n8n"`
	Supabase json.RawMessage `json:"supabase"`
}

func MergeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read body", http.StatusBadRequest)
		return
	}

	defer r.Body.Close()

	var request MergeRequest
	if err := json.Unmarshal(body, &request); err != nil {
		http.Error(w, "Invalid merge request: "+err.Error(), http.StatusBadRequest)
		return
	}

	var workflows []models.Workflow
	if present(request.N8n) {
		workflows, err = parser.ParseWorkflowExport(request.N8n)
		if err != nil {
			http.Error(w, "Invalid workflow export: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		slog.Warn("no workflow export in request, merging with empty workflow set")
	}

	var catalog *models.Catalog
	if present(request.Supabase) {
		catalog, err = parser.ParseCatalog(request.Supabase)
		if err != nil {
			http.Error(w, "Invalid catalog export: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		slog.Warn("no catalog export in request, merging with empty catalog")
	}

	usage := extract.References(workflows)
	report := merge.Build(workflows, catalog, usage, time.Now())

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(report); err != nil {
		slog.Error("encoding merge response", "error", err)
	}
}

func present(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}
