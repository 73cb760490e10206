// Package edgar is a thin client for the SEC EDGAR Financial Data API on
// RapidAPI. It covers the three endpoints the tracker consumes: 13F holdings
// by CIK, recent filing summaries, and free-text company search.
//
// The API is loosely typed: list responses arrive either as a bare JSON
// array or wrapped in an object, and numeric fields show up as numbers or
// strings depending on the record. The client only unwraps the envelope;
// interpreting the records is left to the caller.
package edgar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the production API host. Tests point BaseURL at an
	// httptest server instead.
	DefaultBaseURL = "https://sec-edgar-financial-data-api.p.rapidapi.com"

	apiHost = "sec-edgar-financial-data-api.p.rapidapi.com"

	// non-2xx bodies are truncated to this many bytes in error messages.
	errBodyLimit = 300
)

// Client calls the SEC EDGAR Financial Data API. The zero value is not
// usable; construct it with NewClient.
type Client struct {
	Key        string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client authenticating with the given RapidAPI key.
// Each request is bounded by a 30 second timeout.
func NewClient(key string) *Client {
	return &Client{
		Key:        key,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AuthError reports a credential rejected by the API (HTTP 401 or 403).
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("API rejected the credential (HTTP %d): check your RapidAPI key", e.Status)
}

// HTTPError reports any other non-2xx response, carrying the status code and
// a truncated copy of the body.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// TransportError reports a network-level failure before any HTTP status was
// received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "network failure: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// Company is one free-text search result.
type Company struct {
	CIK  string
	Name string
}

// UnmarshalJSON tolerates both string and numeric CIKs; the API is not
// consistent about which one it sends.
func (c *Company) UnmarshalJSON(b []byte) error {
	var raw struct {
		CIK  json.RawMessage `json:"cik"`
		Name string          `json:"name"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.Name = raw.Name
	if len(raw.CIK) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.CIK, &s); err == nil {
		c.CIK = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw.CIK, &n); err != nil {
		return fmt.Errorf("cannot read cik %s: %w", raw.CIK, err)
	}
	c.CIK = n.String()
	return nil
}

// Filing is one 13F filing summary.
type Filing struct {
	FormType        string `json:"formType"`
	FilingDate      string `json:"filingDate"`
	PeriodOfReport  string `json:"periodOfReport"`
	AccessionNumber string `json:"accessionNumber"`
}

// Holdings fetches the raw holding records of the latest 13F filing for a
// CIK. Records keep their source field naming; numbers are preserved as
// json.Number so large share counts survive intact.
func (c *Client) Holdings(ctx context.Context, cik string) ([]map[string]any, error) {
	body, err := c.get(ctx, "/api/v1/holdings/13f", url.Values{"cik": {cik}})
	if err != nil {
		return nil, err
	}
	raw, err := unwrap(body, "holdings", "results")
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings for CIK %s: %w", cik, err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []map[string]any
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot decode holdings for CIK %s: %w", cik, err)
	}
	return records, nil
}

// Filings fetches recent 13F-HR filing summaries for a CIK.
func (c *Client) Filings(ctx context.Context, cik string, limit int) ([]Filing, error) {
	params := url.Values{
		"cik":      {cik},
		"formType": {"13F-HR"},
		"limit":    {fmt.Sprint(limit)},
	}
	body, err := c.get(ctx, "/api/v1/filings", params)
	if err != nil {
		return nil, err
	}
	raw, err := unwrap(body, "filings", "results")
	if err != nil {
		return nil, fmt.Errorf("cannot read filings for CIK %s: %w", cik, err)
	}
	var filings []Filing
	if err := json.Unmarshal(raw, &filings); err != nil {
		return nil, fmt.Errorf("cannot decode filings for CIK %s: %w", cik, err)
	}
	return filings, nil
}

// Search looks up SEC filers matching a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Company, error) {
	body, err := c.get(ctx, "/api/v1/search", url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	raw, err := unwrap(body, "companies", "results")
	if err != nil {
		return nil, fmt.Errorf("cannot read search results for %q: %w", query, err)
	}
	var companies []Company
	if err := json.Unmarshal(raw, &companies); err != nil {
		return nil, fmt.Errorf("cannot decode search results for %q: %w", query, err)
	}
	return companies, nil
}

// get performs one authenticated GET and returns the body, mapping failures
// to the client's error taxonomy. No retry, no caching: each invocation of
// the tool is stateless.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	addr := c.BaseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	req.Header.Set("x-rapidapi-key", c.Key)
	req.Header.Set("x-rapidapi-host", apiHost)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, &TransportError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &HTTPError{Status: resp.StatusCode, Body: truncate(buf.String(), errBodyLimit)}
	}
	return buf.Bytes(), nil
}

// unwrap returns the JSON array in body, either bare or nested under one of
// the candidate keys. An object without any of the keys yields an empty list.
func unwrap(body []byte, keys ...string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '[' {
			return raw, nil
		}
	}
	return json.RawMessage("[]"), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
