package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/metrics"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

// RequestError is returned for any non-2xx backend response. Message comes
// from the response body when it carries one, otherwise the HTTP status text.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Options carries the optional parts of a request. Only params with non-empty
// values are serialized into the query string.
type Options struct {
	Params  map[string]string
	Body    interface{}
	Headers map[string]string
}

// Client issues authenticated JSON requests against the backend. The bearer
// token is read from durable session storage on every call so a login in one
// part of the app is immediately visible to the rest.
type Client struct {
	baseURL    string
	httpClient *http.Client
	storage    session.Storage
	tokenKey   string
}

func NewClient(baseURL string, storage session.Storage, tokenKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		storage:    storage,
		tokenKey:   tokenKey,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Token returns the persisted bearer token, or "" when logged out.
func (c *Client) Token() string {
	token, _ := c.storage.Get(c.tokenKey)
	return token
}

func (c *Client) Request(method, path string, opts Options) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("url: %w", err)
	}
	if len(opts.Params) > 0 {
		q := u.Query()
		for key, value := range opts.Params {
			if value != "" {
				q.Set(key, value)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}

	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	metrics.BackendRequests.Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendErrors.Inc()
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return json.RawMessage(`{}`), nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendErrors.Inc()
		return nil, fmt.Errorf("read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendErrors.Inc()
		return nil, &RequestError{Status: resp.StatusCode, Message: errorMessage(data, resp.Status)}
	}

	if !json.Valid(data) {
		metrics.BackendErrors.Inc()
		return nil, fmt.Errorf("unmarshal: invalid JSON response")
	}

	return json.RawMessage(data), nil
}

func (c *Client) Get(path string, params map[string]string) (json.RawMessage, error) {
	return c.Request(http.MethodGet, path, Options{Params: params})
}

func (c *Client) Post(path string, body interface{}) (json.RawMessage, error) {
	return c.Request(http.MethodPost, path, Options{Body: body})
}

func (c *Client) Put(path string, body interface{}) (json.RawMessage, error) {
	return c.Request(http.MethodPut, path, Options{Body: body})
}

func (c *Client) Patch(path string, body interface{}) (json.RawMessage, error) {
	return c.Request(http.MethodPatch, path, Options{Body: body})
}

func (c *Client) Delete(path string) (json.RawMessage, error) {
	return c.Request(http.MethodDelete, path, Options{})
}

func errorMessage(body []byte, statusText string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return statusText
}
