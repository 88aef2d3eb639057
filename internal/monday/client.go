package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

const (
	defaultEndpoint = "https://api.monday.com/v2"
	defaultPageSize = 100

	maxRetries     = 3
	retryBaseDelay = 500 * time.Millisecond
	maxRetryDelay  = 30 * time.Second
)

// Client talks to the monday.com GraphQL API. Construct with NewClient.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	pageSize int
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint. Used by tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithPageSize sets the items_page size for BoardItems.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a monday.com API client authenticated with token.
func NewClient(token string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
		// monday's complexity budget refills continuously; 2 req/s with a
		// small burst keeps a full two-board refresh well under it.
		limiter:  rate.NewLimiter(rate.Limit(2), 4),
		logger:   logger,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Me verifies the token by fetching the authenticated user's identity.
func (c *Client) Me(ctx context.Context) (string, error) {
	const query = `query { me { id name } }`

	var payload mePayload
	if err := c.execute(ctx, query, nil, &payload); err != nil {
		return "", err
	}
	return payload.Me.Name, nil
}

// BoardSchema fetches the column schema of a board. Column order is
// preserved as returned by the API.
func (c *Client) BoardSchema(ctx context.Context, boardID string) (domain.Schema, error) {
	const query = `query ($boardID: [ID!]) {
		boards(ids: $boardID) {
			id
			name
			columns { id title type }
		}
	}`

	var payload boardSchemaPayload
	err := c.execute(ctx, query, map[string]any{"boardID": []string{boardID}}, &payload)
	if err != nil {
		return domain.Schema{}, err
	}
	if len(payload.Boards) == 0 {
		return domain.Schema{}, &APIError{Messages: []string{fmt.Sprintf("board %s not found", boardID)}}
	}

	board := payload.Boards[0]
	schema := domain.Schema{
		BoardID:   board.ID,
		BoardName: board.Name,
		Columns:   make([]domain.Column, 0, len(board.Columns)),
	}
	for _, col := range board.Columns {
		schema.Columns = append(schema.Columns, domain.Column{
			ID:    col.ID,
			Title: col.Title,
			Type:  col.Type,
		})
	}
	return schema, nil
}

// BoardItems fetches every item on a board, following the items_page
// cursor until exhausted. Each item is flattened into a RawItem keyed
// by column ID, with the item's identity under the reserved keys.
// For each column value the display text is preferred; the raw JSON
// value is the fallback when text is empty.
func (c *Client) BoardItems(ctx context.Context, boardID string) ([]domain.RawItem, error) {
	const firstPage = `query ($boardID: [ID!], $limit: Int!) {
		boards(ids: $boardID) {
			items_page(limit: $limit) {
				cursor
				items { id name column_values { id text value } }
			}
		}
	}`
	const nextPage = `query ($boardID: [ID!], $limit: Int!, $cursor: String!) {
		boards(ids: $boardID) {
			items_page(limit: $limit, cursor: $cursor) {
				cursor
				items { id name column_values { id text value } }
			}
		}
	}`

	var (
		items  []domain.RawItem
		cursor *string
	)
	for page := 0; ; page++ {
		query := firstPage
		vars := map[string]any{"boardID": []string{boardID}, "limit": c.pageSize}
		if cursor != nil {
			query = nextPage
			vars["cursor"] = *cursor
		}

		var payload itemsPagePayload
		if err := c.execute(ctx, query, vars, &payload); err != nil {
			return nil, fmt.Errorf("board %s page %d: %w", boardID, page, err)
		}
		if len(payload.Boards) == 0 {
			return nil, &APIError{Messages: []string{fmt.Sprintf("board %s not found", boardID)}}
		}

		pageData := payload.Boards[0].ItemsPage
		for _, item := range pageData.Items {
			items = append(items, flattenItem(item))
		}

		cursor = pageData.Cursor
		if cursor == nil || *cursor == "" {
			break
		}
	}

	c.logger.InfoContext(ctx, "fetched board items",
		slog.String("board_id", boardID),
		slog.Int("count", len(items)))
	return items, nil
}

func flattenItem(item itemPayload) domain.RawItem {
	raw := make(domain.RawItem, len(item.ColumnValues)+2)
	raw[domain.KeyItemID] = item.ID
	raw[domain.KeyItemName] = item.Name
	for _, cv := range item.ColumnValues {
		switch {
		case cv.Text != nil && *cv.Text != "":
			raw[cv.ID] = *cv.Text
		case cv.Value != nil:
			raw[cv.ID] = *cv.Value
		default:
			raw[cv.ID] = ""
		}
	}
	return raw
}

// execute runs one GraphQL query with rate limiting and retry, decoding
// the data envelope into out.
func (c *Client) execute(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal query: %w", err)
	}

	var lastErr error
	delay := retryBaseDelay
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.WarnContext(ctx, "retrying monday request",
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.String("error", lastErr.Error()))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxRetryDelay {
				delay = maxRetryDelay
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		lastErr = c.doRequest(ctx, body, out)
		if lastErr == nil {
			return nil
		}
		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && !apiErr.retryable() {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) doRequest(ctx context.Context, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &APIError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.token)
	req.Header.Set("API-Version", "2024-10")

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Messages: []string{string(bytes.TrimSpace(data))}}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		// GraphQL errors arrive with HTTP 200; treat them as permanent.
		return &APIError{StatusCode: http.StatusBadRequest, Messages: msgs}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}
