package dataprocessing

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// currencyMarkers strips currency words and symbols before numeric parsing.
var currencyMarkers = regexp.MustCompile(`(?i)(rs\.?|inr|usd|eur|£|€|\$|₹)`)

// whitespaceAndCommas strips thousands separators and spacing.
var whitespaceAndCommas = regexp.MustCompile(`[,\s]`)

// NormalizeAmount converts a messy monetary string to a float.
// It handles shorthand magnitudes ("10k", "1.5L", "2.5Cr"), currency
// markers ("₹1,20,000", "Rs. 500"), and JSON-wrapped values the board
// source sometimes emits. Returns 0 on any failure, never an error:
// one unparseable cell must not sink a whole batch.
func NormalizeAmount(raw string) float64 {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0
	}

	// Board cells are sometimes double-serialized JSON; unwrap the
	// value/text field before scrubbing.
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, `"`) {
		text = unwrapJSONAmount(text)
	}

	text = currencyMarkers.ReplaceAllString(text, "")
	text = whitespaceAndCommas.ReplaceAllString(text, "")

	// Suffix order matters: "cr" must be tested before the bare "l"
	// and "k" single letters.
	multiplier := 1.0
	lower := strings.ToLower(text)
	switch {
	case strings.HasSuffix(lower, "cr"):
		multiplier = 1e7
		text = text[:len(text)-2]
	case strings.HasSuffix(lower, "l"):
		multiplier = 1e5
		text = text[:len(text)-1]
	case strings.HasSuffix(lower, "k"):
		multiplier = 1e3
		text = text[:len(text)-1]
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return value * multiplier
}

// unwrapJSONAmount extracts the numeric payload from a JSON-shaped cell.
// Objects yield their "value" field (falling back to "text"); quoted
// scalars yield themselves. Unparseable input passes through untouched.
func unwrapJSONAmount(text string) string {
	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}
	switch v := parsed.(type) {
	case map[string]interface{}:
		if inner, ok := v["value"]; ok && inner != nil {
			return fmt.Sprint(inner)
		}
		if inner, ok := v["text"]; ok && inner != nil {
			return fmt.Sprint(inner)
		}
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return text
}

// dateLayouts is the fixed, ordered list of accepted date formats.
// Order is contractual: day/month/year is tried before month/day/year,
// so ambiguous strings like "01/02/2025" resolve as 1 February. That
// is a documented, lossy policy inherited from the data source.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

// NormalizeDate parses heterogeneous date text into a calendar date.
// JSON-wrapped cells ({"date":"2025-12-31"}) are unwrapped first.
// Returns the zero time when nothing matches.
func NormalizeDate(raw string) time.Time {
	text := strings.TrimSpace(raw)
	if text == "" {
		return time.Time{}
	}

	if strings.HasPrefix(text, "{") {
		var wrapper struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal([]byte(text), &wrapper); err == nil {
			if wrapper.Date == "" {
				return time.Time{}
			}
			text = wrapper.Date
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// NormalizeText trims and lowercases for categorical comparison, so
// title-case and whitespace variants collapse to one canonical key.
func NormalizeText(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
