// Package client is the http client of jobfeed api, used by the terminal front end
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
	"github.com/umputun/jobfeed/app/ui"
	"github.com/umputun/jobfeed/app/web"
)

const maxResponseSize = 4 * 1024 * 1024

// Client talks to jobfeed api server
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration // per request, no timeout if zero
	User       string        // basic auth user, auth disabled if empty
	Password   string
}

// New makes client for the server at baseURL
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: &http.Client{}, Timeout: timeout}
}

// Save puts job into list
func (c *Client) Save(ctx context.Context, jobID, listName string) (ui.Reply, error) {
	return c.post(ctx, "/api/save", map[string]string{"job_id": jobID, "list_name": listName})
}

// Unsave removes job from list, or from all lists if listName is empty
func (c *Client) Unsave(ctx context.Context, jobID, listName string) (ui.Reply, error) {
	return c.post(ctx, "/api/unsave", map[string]string{"job_id": jobID, "list_name": listName})
}

// CreateList makes a new list
func (c *Client) CreateList(ctx context.Context, name string) (ui.Reply, error) {
	return c.post(ctx, "/api/lists", map[string]string{"name": name})
}

// Scrape triggers a background scrape with server's default terms and sources
func (c *Client) Scrape(ctx context.Context) (ui.Reply, error) {
	return c.post(ctx, "/api/scrape", struct{}{})
}

// DeleteList removes list and everything saved into it
func (c *Client) DeleteList(ctx context.Context, name string) (ui.Reply, error) {
	return c.do(ctx, http.MethodDelete, "/api/lists/"+url.PathEscape(name), nil)
}

// Feed gets a page of the job feed
func (c *Client) Feed(ctx context.Context, q store.FeedQuery) (web.FeedResponse, error) {
	params := url.Values{}
	if q.Source != "" {
		params.Set("source", q.Source)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Days > 0 {
		params.Set("days", strconv.Itoa(q.Days))
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	path := "/api/jobs"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var res web.FeedResponse
	err := c.get(ctx, path, &res)
	return res, err
}

// Saved gets saved jobs of the list, all saved jobs if list is empty
func (c *Client) Saved(ctx context.Context, list string) (web.SavedResponse, error) {
	path := "/api/saved"
	if list != "" {
		path += "/" + url.PathEscape(list)
	}
	var res web.SavedResponse
	err := c.get(ctx, path, &res)
	return res, err
}

// Lists gets all lists with saved counts
func (c *Client) Lists(ctx context.Context) ([]store.List, error) {
	var res []store.List
	err := c.get(ctx, "/api/lists", &res)
	return res, err
}

// Stats gets totals and scrape state
func (c *Client) Stats(ctx context.Context) (web.StatsResponse, error) {
	var res web.StatsResponse
	err := c.get(ctx, "/api/stats", &res)
	return res, err
}

func (c *Client) post(ctx context.Context, path string, body any) (ui.Reply, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return ui.Reply{}, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, data)
}

// do sends request and reads status with the optional {"error": "..."} body,
// non-json bodies are tolerated and leave Error empty
func (c *Client) do(ctx context.Context, method, path string, body []byte) (ui.Reply, error) {
	resp, cancel, err := c.request(ctx, method, path, body)
	if err != nil {
		return ui.Reply{}, err
	}
	defer cancel()
	defer c.closeBody(resp)

	reply := ui.Reply{Status: resp.StatusCode}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return ui.Reply{}, fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if jerr := json.Unmarshal(data, &errResp); jerr == nil {
		reply.Error = errResp.Error
	}
	return reply, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	resp, cancel, err := c.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// request sends http request, the returned cancel func releases the timeout context
func (c *Client) request(ctx context.Context, method, path string, body []byte) (*http.Response, context.CancelFunc, error) {
	cancel := context.CancelFunc(func() {})
	if c.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
	}

	var rdr io.Reader = http.NoBody
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rdr)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.User != "" {
		req.SetBasicAuth(c.User, c.Password)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	return resp, cancel, nil
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		log.Printf("[WARN] failed to close response body: %v", err)
	}
}
