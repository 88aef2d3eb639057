package dataprocessing

import (
	"strings"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// ResolveColumn finds the raw value for a semantic field by keyword
// match against column titles. It returns the value of the first
// column (in schema order) whose lowercased title contains any of the
// keywords as a substring, or "" when none match.
//
// First-match-wins over schema order is the contract, not an accident:
// when two columns both hit a keyword, schema order decides. Each
// semantic field is resolved independently with its own keyword list,
// so one field's ambiguity cannot corrupt another's.
func ResolveColumn(item domain.RawItem, schema domain.Schema, keywords []string) string {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	for _, col := range schema.Columns {
		title := strings.ToLower(col.Title)
		for _, kw := range lowered {
			if strings.Contains(title, kw) {
				return item.Value(col.ID)
			}
		}
	}
	return ""
}
