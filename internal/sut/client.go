// Package sut implements the HTTP client for the system under test: an
// externally hosted question-answering service with an unknown API shape.
package sut

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Header is one ordered request header name/value pair.
type Header struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Config describes how to reach the system under test. It is immutable for
// the duration of a batch run.
type Config struct {
	BaseURL string        `yaml:"base_url"`
	Path    string        `yaml:"path"`
	Method  string        `yaml:"method"`
	Headers []Header      `yaml:"headers"`
	Timeout time.Duration `yaml:"timeout"` // zero means no timeout
}

// Validate checks that the configuration can produce a request.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("SUT base URL is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("invalid SUT base URL: %w", err)
	}
	switch strings.ToUpper(c.Method) {
	case http.MethodGet, http.MethodPost, http.MethodPut:
		return nil
	default:
		return fmt.Errorf("unsupported SUT method %q (supported: GET, POST, PUT)", c.Method)
	}
}

// Endpoint returns the full request URL.
func (c Config) Endpoint() string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(c.Path, "/")
}

// Client sends questions to the SUT.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a SUT client for the given configuration. The config's
// timeout, when non-zero, bounds every request; the default is unbounded.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Config returns the client's configuration.
func (c *Client) Config() Config { return c.cfg }

// questionPayload duplicates the question under multiple common field
// names. SUT request shapes are unknown, so the body carries the question
// under every key a typical QA service might read.
func questionPayload(question string) map[string]string {
	return map[string]string{
		"query":    question,
		"question": question,
		"pregunta": question,
		"message":  question,
	}
}

// Ask sends one question to the SUT and returns the raw response body.
// It returns *TransportError for network failures and non-2xx statuses,
// and *EmptyResponseError when a 2xx response carries no body. A single
// attempt is made; there is no retry.
func (c *Client) Ask(ctx context.Context, question string) ([]byte, error) {
	method := strings.ToUpper(c.cfg.Method)

	var body io.Reader
	if method != http.MethodGet {
		data, err := json.Marshal(questionPayload(question))
		if err != nil {
			return nil, fmt.Errorf("failed to encode SUT request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build SUT request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodGet {
		q := req.URL.Query()
		q.Set("query", question)
		req.URL.RawQuery = q.Encode()
	}
	for _, h := range c.cfg.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Reason: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Reason: "failed to read response body: " + err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Status: resp.StatusCode, Reason: resp.Status}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &EmptyResponseError{}
	}

	return raw, nil
}
