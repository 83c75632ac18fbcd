// Package extract scans workflow definitions for references to Supabase
// tables and RPC functions.
package extract

import (
	"regexp"
	"strings"

	"github.com/stacklens/core/internal/models"
)

// rpcPattern matches an RPC call encoded in a REST URL, e.g.
// https://x/rest/v1/rpc/compute_totals?x=1 -> compute_totals.
// Only the leftmost match per URL is recognized.
var rpcPattern = regexp.MustCompile(`/rpc/([A-Za-z_][A-Za-z0-9_]*)`)

// References walks every node of every workflow and collects the Supabase
// table and function names they invoke. Node types are matched
// case-insensitively; the result is independent of workflow order.
func References(workflows []models.Workflow) models.Usage {
	usage := models.NewUsage()

	for _, workflow := range workflows {
		for _, node := range workflow.Nodes {
			nodeType := strings.ToLower(node.Type)
			params := node.Parameters

			if strings.Contains(nodeType, "supabase") {
				tableName := models.ResolveLocator(params["tableName"])
				if tableName != "" && tableName != models.PlaceholderTable {
					usage.Tables[tableName] = true
				}

				if models.ResolveLocator(params["operation"]) == "call" {
					value := params["functionName"]
					if value == nil {
						value = params["rpc"]
					}
					if funcName := models.ResolveLocator(value); funcName != "" {
						usage.Functions[funcName] = true
					}
				}
			}

			if strings.Contains(nodeType, "httprequest") || strings.Contains(nodeType, "http") {
				url := models.ResolveLocator(params["url"])
				if match := rpcPattern.FindStringSubmatch(url); match != nil {
					usage.Functions[match[1]] = true
				}
			}
		}
	}

	return usage
}
