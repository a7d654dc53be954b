// Package client implements the session.Store contract over HTTP,
// targeting a running protanno server (or any store speaking the same
// form-encoded annotation endpoint).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/protanno/protanno/internal/errors"
	"github.com/protanno/protanno/internal/protein"
)

// DefaultTimeout bounds each request; a hung store fails the submission
// instead of leaving the caller waiting indefinitely.
const DefaultTimeout = 10 * time.Second

// Client posts annotation records to a remote annotation store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the store at baseURL (e.g. "http://localhost:8700").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Create sends one annotation record to the store, scoped to the record's
// ProteinID. Any 2xx status is success and the response body is ignored.
// On failure the response body's optional "detail" field becomes the
// error message, falling back to the HTTP status text.
func (c *Client) Create(ctx context.Context, record protein.Annotation) error {
	form := url.Values{
		"start_index": {strconv.Itoa(record.StartIndex)},
		"end_index":   {strconv.Itoa(record.EndIndex)},
		"label":       {record.Label},
		"color":       {record.Color},
	}

	endpoint := fmt.Sprintf("%s/p/%s/annotations", c.baseURL, url.PathEscape(record.ProteinID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewStoreRejected(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return errors.NewStoreRejected(errorDetail(resp))
}

// errorDetail extracts the "detail" field from a JSON error body, falling
// back to the HTTP status text when the body has none.
func errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(body) > 0 {
		var parsed struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
			return parsed.Detail
		}
	}
	return fmt.Sprintf("store returned %s", resp.Status)
}
