package domain

import "strings"

// Reserved RawItem keys injected by the board client alongside column values.
const (
	KeyItemID   = "_item_id"
	KeyItemName = "_item_name"
)

// Column describes one board column as reported by the source.
// Titles are free text and are not guaranteed unique or stable
// across refreshes; only the ID identifies a column within one
// schema snapshot.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Schema is an ordered column catalogue for one board snapshot.
// Column order matters: the column resolver disambiguates
// overlapping keyword hits by first match in schema order.
type Schema struct {
	BoardID   string   `json:"board_id"`
	BoardName string   `json:"board_name"`
	Columns   []Column `json:"columns"`
}

// RawItem is one row of a board at fetch time: column ID to raw
// textual value, plus the reserved item keys. RawItems are inputs
// only and are never mutated by the pipeline.
type RawItem map[string]string

// Name returns the trimmed item name.
func (r RawItem) Name() string {
	return strings.TrimSpace(r[KeyItemName])
}

// Value returns the raw value for a column ID, or "" when absent.
func (r RawItem) Value(columnID string) string {
	return r[columnID]
}
