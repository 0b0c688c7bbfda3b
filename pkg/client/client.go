// Package client is a small data-access layer for the assessment API. It
// mirrors the server's resource routes: one Endpoint per resource with
// FetchAll/FetchByID/Create/Update, plus a Login convenience.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Response is the classified outcome of a request. JSON bodies land in Data,
// anything else in Text.
type Response struct {
	Status int
	Data   json.RawMessage
	Text   string
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("response has no JSON body")
	}
	return json.Unmarshal(r.Data, v)
}

// APIError is returned for non-2xx responses so callers can branch on the
// status code (401 means invalid credentials on login, 404 unknown id).
type APIError struct {
	Status int
	Data   json.RawMessage
}

func (e *APIError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Data)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Client talks to one API server. The zero value is not usable; use New.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the API rooted at baseURL, e.g.
// "http://localhost:3001/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint addresses one resource collection, e.g. "AssessmentProfile".
type Endpoint struct {
	client *Client
	name   string
}

// Resource returns the endpoint for the named resource.
func (c *Client) Resource(name string) *Endpoint {
	return &Endpoint{client: c, name: name}
}

// FetchAll retrieves the whole collection. Query parameters, if any, are
// appended as-is (e.g. "assessmentId=12").
func (e *Endpoint) FetchAll(ctx context.Context, query url.Values) (*Response, error) {
	u := e.client.baseURL + "/" + e.name + "/"
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return e.client.do(ctx, http.MethodGet, u, nil)
}

// FetchByID retrieves a single record.
func (e *Endpoint) FetchByID(ctx context.Context, id int64) (*Response, error) {
	u := fmt.Sprintf("%s/%s/%d", e.client.baseURL, e.name, id)
	return e.client.do(ctx, http.MethodGet, u, nil)
}

// Create posts a new record and returns the stored row.
func (e *Endpoint) Create(ctx context.Context, body any) (*Response, error) {
	u := e.client.baseURL + "/" + e.name + "/"
	return e.client.do(ctx, http.MethodPost, u, body)
}

// Update replaces the record with the given id and returns the stored row.
func (e *Endpoint) Update(ctx context.Context, id int64, body any) (*Response, error) {
	u := fmt.Sprintf("%s/%s/%d", e.client.baseURL, e.name, id)
	return e.client.do(ctx, http.MethodPut, u, body)
}

// Login checks credentials against the server. It returns nil on success and
// an *APIError with status 401 for bad credentials.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/Login", body)
	return err
}

func (c *Client) do(ctx context.Context, method, url string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	result := &Response{Status: resp.StatusCode}
	if isJSON(resp.Header.Get("Content-Type")) {
		result.Data = raw
	} else {
		result.Text = string(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Data: result.Data}
	}
	return result, nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
