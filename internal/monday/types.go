package monday

import (
	"encoding/json"
	"fmt"
)

// APIError describes a failed monday.com API call. StatusCode is the
// HTTP status, or 0 when the failure happened before a response was
// received. Messages carries any GraphQL-level error messages.
type APIError struct {
	StatusCode int
	Messages   []string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case len(e.Messages) > 0:
		return fmt.Sprintf("monday: api error (status %d): %s", e.StatusCode, e.Messages[0])
	case e.Err != nil:
		return fmt.Sprintf("monday: request failed: %v", e.Err)
	default:
		return fmt.Sprintf("monday: unexpected status %d", e.StatusCode)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// retryable reports whether the request can be retried. Auth and
// bad-request failures are permanent; rate limits and server errors
// are not.
func (e *APIError) retryable() bool {
	switch e.StatusCode {
	case 400, 401, 403:
		return false
	}
	return true
}

// graphQLRequest is the request envelope for the /v2 endpoint.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

// Wire shapes for the board queries. Only the fields the pipeline
// consumes are declared.

type columnPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type boardSchemaPayload struct {
	Boards []struct {
		ID      string          `json:"id"`
		Name    string          `json:"name"`
		Columns []columnPayload `json:"columns"`
	} `json:"boards"`
}

type columnValuePayload struct {
	ID    string  `json:"id"`
	Text  *string `json:"text"`
	Value *string `json:"value"`
}

type itemPayload struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	ColumnValues []columnValuePayload `json:"column_values"`
}

type itemsPagePayload struct {
	Boards []struct {
		ItemsPage struct {
			Cursor *string       `json:"cursor"`
			Items  []itemPayload `json:"items"`
		} `json:"items_page"`
	} `json:"boards"`
}

type mePayload struct {
	Me struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"me"`
}
