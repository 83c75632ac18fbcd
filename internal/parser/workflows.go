// Package parser decodes the serialized export artifacts the merge consumes.
// A parse failure here is the only fatal condition in the pipeline; missing
// artifacts are the caller's concern and are substituted with empty defaults.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/stacklens/core/internal/models"
)

// ParseWorkflowExport decodes an n8n workflow export. Both export shapes are
// accepted: an object with a top-level "workflows" key, or a bare array of
// workflows.
func ParseWorkflowExport(data []byte) ([]models.Workflow, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty workflow export")
	}

	if data[0] == '[' {
		var workflows []models.Workflow
		if err := json.Unmarshal(data, &workflows); err != nil {
			return nil, fmt.Errorf("failed to unmarshal workflow export: %w", err)
		}
		return workflows, nil
	}

	var export struct {
		Workflows []models.Workflow `json:"workflows"`
	}
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workflow export: %w", err)
	}

	return export.Workflows, nil
}
