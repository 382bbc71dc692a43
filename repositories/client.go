package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nexus-storefront/config"
)

// UpstreamError is a non-2xx reply from the marketplace API, surfaced with
// the status text so controllers can show it inline.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("marketplace API: %s", e.Status)
}

// APIClient talks to the external marketplace API. The id_token cookie is
// forwarded verbatim when present so the upstream can attribute requests;
// this service never validates it.
type APIClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAPIClient() *APIClient {
	return &APIClient{
		BaseURL: config.AppConfig.APIBaseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *APIClient) newRequest(ctx context.Context, method, path string, body io.Reader, idToken string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if idToken != "" {
		req.AddCookie(&http.Cookie{Name: "id_token", Value: idToken})
	}
	return req, nil
}

// getJSON issues a GET and decodes the response into out.
func (c *APIClient) getJSON(ctx context.Context, path, idToken string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, idToken)
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// postJSON issues a POST with a JSON body and decodes the response into out
// (out may be nil).
func (c *APIClient) postJSON(ctx context.Context, path, idToken string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload), idToken)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, out)
}

func (c *APIClient) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
