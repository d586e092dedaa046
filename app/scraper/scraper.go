// Package scraper fetches job posts from public job boards and stores them.
// Each board is a Source, Runner runs a set of sources concurrently and Scheduler
// triggers Runner on a cron schedule.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
)

//go:generate moq -out mocks/source.go -pkg mocks -skip-ensure -fmt goimports . Source

const (
	userAgent      = "JobFeedApp/1.0"
	maxBodySize    = 8 * 1024 * 1024
	maxDescription = 500
	defaultTimeout = 30 * time.Second
)

// Source is a single job board
type Source interface {
	Name() string
	Fetch(ctx context.Context, terms []string) ([]store.JobPost, error)
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// HTTPClient fetches json documents from job boards, each attempt limited by Timeout
// and failed attempts repeated by Repeater if set
type HTTPClient struct {
	Client   *http.Client
	Repeater Repeater
	Timeout  time.Duration
}

// GetJSON requests url and decodes the response into v
func (h *HTTPClient) GetJSON(ctx context.Context, url string, v any) error {
	get := func() error { return h.getJSON(ctx, url, v) }
	if h.Repeater == nil {
		return get()
	}
	return h.Repeater.Do(ctx, get)
}

func (h *HTTPClient) getJSON(ctx context.Context, url string, v any) error {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Printf("[WARN] failed to close response body from %s: %v", url, cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}

// textList decodes either a list of strings or a single string
type textList []string

func (t *textList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s != "" {
		*t = []string{s}
		return nil
	}
	*t = nil
	return nil
}

func (t textList) String() string { return strings.Join(t, ", ") }

// textValue decodes a string or a number into text, anything else is empty
type textValue string

func (v *textValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = textValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = textValue(n.String())
		return nil
	}
	*v = ""
	return nil
}

// matchTerms reports whether any term is found in the searchable fields, no terms match everything
func matchTerms(terms []string, fields ...string) bool {
	if len(terms) == 0 {
		return true
	}
	searchable := strings.ToLower(strings.Join(fields, " "))
	for _, term := range terms {
		if strings.Contains(searchable, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// truncate cuts s to maxDescription runes
func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxDescription {
		return s
	}
	return string([]rune(s)[:maxDescription])
}

// postedAt reformats RFC3339 timestamps to "2006-01-02 15:04", other values kept as is
func postedAt(s string) string {
	if s == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if ts, err = time.Parse("2006-01-02T15:04:05", s); err != nil {
			return s
		}
	}
	return ts.Format("2006-01-02 15:04")
}

func orRemote(location string) string {
	if strings.TrimSpace(location) == "" {
		return "Remote"
	}
	return location
}
