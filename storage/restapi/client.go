// Package restapi talks to the university REST backend.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nkminh14/uniconsole/core"
)

// Client sends JSON requests to the backend rooted at a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(conf *core.Config) *Client {
	return NewClientWithHTTP(conf.API.BaseURL, &http.Client{Timeout: conf.API.Timeout})
}

func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

type errorBody struct {
	Message string `json:"message"`
}

// Do sends in (if not nil) as the JSON body and decodes the answer into out (if not nil).
// Non-2xx answers become *core.APIError; a 404 is core.ErrNotFound.
func (c *Client) Do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return errors.Wrapf(err, "decoding %s %s", method, path)
	}
	return nil
}

func readError(resp *http.Response) error {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = json.Unmarshal(raw, &eb)

	if resp.StatusCode == http.StatusNotFound && eb.Message == "" {
		return core.ErrNotFound
	}
	return &core.APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(eb.Message)}
}

// WaitReady polls path until the backend answers, waiting 100ms longer between each attempt.
func (c *Client) WaitReady(ctx context.Context, path string, maxAttempts int) error {
	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = c.Do(ctx, http.MethodGet, path, nil, nil); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "backend not ready")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "backend ping timeout")
}
