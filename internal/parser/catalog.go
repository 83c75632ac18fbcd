package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/stacklens/core/internal/models"
)

// ParseCatalog decodes a Supabase catalog export bundle.
func ParseCatalog(data []byte) (*models.Catalog, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty catalog export")
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog export: %w", err)
	}

	return &catalog, nil
}
