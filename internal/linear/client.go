package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/feedback-insights/internal/config"
	"github.com/spec-kit/feedback-insights/pkg/util"
)

const maxErrorBodyBytes = 4096

// Client issues authenticated GraphQL requests against the tracker API.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a client from configuration.
func NewClient(cfg config.LinearConfig, logger *zap.Logger) *Client {
	return &Client{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Query executes one GraphQL request and decodes the data payload into out.
// Any non-2xx response or reported query error is returned as a fatal
// upstream error; callers do not retry.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return util.NewUpstreamError(0, err.Error())
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return util.NewUpstreamError(resp.StatusCode, string(snippet))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return util.NewUpstreamError(resp.StatusCode, "malformed response body: "+err.Error())
	}
	if len(env.Errors) > 0 {
		messages := make([]string, 0, len(env.Errors))
		for _, gqlErr := range env.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return util.NewUpstreamQueryError(messages)
	}

	return json.Unmarshal(env.Data, out)
}
