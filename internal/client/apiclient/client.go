package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Client talks to the script catalog REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the API rooted at baseURL
// (for example "http://localhost:8080/api").
func New(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logger.With("adapter", "apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type scriptBody struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
}

type scriptPayload struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p scriptPayload) script() domain.Script {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Script{
		ID:          p.ID,
		Title:       p.Title,
		Tags:        tags,
		Description: p.Description,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type summaryPayload struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
}

// List fetches every script summary in server order.
func (c *Client) List(ctx context.Context) ([]domain.ScriptSummary, error) {
	var payload []summaryPayload
	if err := c.do(ctx, http.MethodGet, "/scripts", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]domain.ScriptSummary, len(payload))
	for i, p := range payload {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		out[i] = domain.ScriptSummary{
			ID:          p.ID,
			Title:       p.Title,
			Tags:        tags,
			Description: p.Description,
		}
	}
	return out, nil
}

// Get fetches one full script.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (*domain.Script, error) {
	var p scriptPayload
	if err := c.do(ctx, http.MethodGet, "/scripts/"+id.String(), nil, &p); err != nil {
		return nil, err
	}
	s := p.script()
	return &s, nil
}

// Create stores a new script and returns it as persisted.
func (c *Client) Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error) {
	var p scriptPayload
	if err := c.do(ctx, http.MethodPost, "/scripts", toBody(f), &p); err != nil {
		return nil, err
	}
	s := p.script()
	return &s, nil
}

// Update replaces every mutable field of the script.
func (c *Client) Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error) {
	var p scriptPayload
	if err := c.do(ctx, http.MethodPut, "/scripts/"+id.String(), toBody(f), &p); err != nil {
		return nil, err
	}
	s := p.script()
	return &s, nil
}

// Delete removes the script.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/scripts/"+id.String(), nil, nil)
}

// Search runs the server-side pattern search.
func (c *Client) Search(ctx context.Context, pattern string) ([]domain.Script, error) {
	var payload []scriptPayload
	path := "/scripts/search?q=" + url.QueryEscape(pattern)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	out := make([]domain.Script, len(payload))
	for i, p := range payload {
		out[i] = p.script()
	}
	return out, nil
}

func toBody(f domain.ScriptFields) scriptBody {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return scriptBody{
		Title:       f.Title,
		Tags:        tags,
		Description: f.Description,
		Content:     f.Content,
	}
}

// do sends one request and decodes a 2xx JSON body into out (when non-nil).
// Any other status becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.DebugContext(ctx, "api request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		c.log.WarnContext(ctx, "api error response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: decode json: %w", err)
	}
	return nil
}
