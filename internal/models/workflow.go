// Package models defines the core data structures shared across the merge
// pipeline: n8n workflow exports, the Supabase catalog, and the unified report.
package models

import (
	"encoding/json"
	"fmt"
)

// PlaceholderTable is the value the n8n Supabase node stores in tableName
// when no table has been selected yet. It must never be counted as a real
// table reference.
const PlaceholderTable = "Supabase"

// Workflow is a single n8n workflow definition. Only the fields the extractor
// needs are typed; the full original JSON is retained so the workflow can be
// passed through to the report without losing fields we do not model.
type Workflow struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`

	raw json.RawMessage
}

// Node is one step of a workflow. Parameters values are either plain strings
// or n8n resource locator objects; ResolveLocator handles both.
type Node struct {
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
}

func (w *Workflow) UnmarshalJSON(data []byte) error {
	type plain Workflow
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*w = Workflow(p)
	w.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original input verbatim when available, so the
// workflows section of the report round-trips fields we never looked at.
func (w Workflow) MarshalJSON() ([]byte, error) {
	if len(w.raw) > 0 {
		return w.raw, nil
	}
	type plain Workflow
	return json.Marshal(plain(w))
}

// ResolveLocator extracts a plain string from an n8n parameter value.
// Values come in two shapes: a bare string, or a resource locator object
// carrying a cached display name and a raw value. The display name wins,
// then the raw value, then empty string.
func ResolveLocator(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any:
		if name, ok := val["cachedResultName"].(string); ok && name != "" {
			return name
		}
		if inner, ok := val["value"]; ok && inner != nil {
			if s, ok := inner.(string); ok {
				return s
			}
			return fmt.Sprint(inner)
		}
		return ""
	default:
		return fmt.Sprint(val)
	}
}
