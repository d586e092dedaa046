package scraper

import (
	"context"
	"fmt"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
)

const arbeitnowURL = "https://www.arbeitnow.com/api/job-board-api"

// Arbeitnow walks arbeitnow.com pages and filters jobs by terms locally
type Arbeitnow struct {
	HTTP     *HTTPClient
	BaseURL  string
	MaxPages int
}

type arbeitnowResponse struct {
	Data []struct {
		Title       string    `json:"title"`
		CompanyName string    `json:"company_name"`
		URL         string    `json:"url"`
		Tags        textList  `json:"tags"`
		Location    string    `json:"location"`
		Remote      bool      `json:"remote"`
		CreatedAt   textValue `json:"created_at"`
		Description string    `json:"description"`
	} `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// Name of the source
func (a *Arbeitnow) Name() string { return "arbeitnow" }

// Fetch gets up to MaxPages pages, stops early on the last page.
// A failed page ends the walk, jobs from the earlier pages are kept.
func (a *Arbeitnow) Fetch(ctx context.Context, terms []string) ([]store.JobPost, error) {
	maxPages := a.MaxPages
	if maxPages <= 0 {
		maxPages = 3
	}
	base := arbeitnowURL
	if a.BaseURL != "" {
		base = a.BaseURL
	}

	res := []store.JobPost{}
	for page := 1; page <= maxPages; page++ {
		var resp arbeitnowResponse
		if err := a.HTTP.GetJSON(ctx, fmt.Sprintf("%s?page=%d", base, page), &resp); err != nil {
			if page == 1 {
				return nil, fmt.Errorf("arbeitnow: %w", err)
			}
			log.Printf("[WARN] arbeitnow: fetch page %d failed, %v", page, err)
			break
		}
		if len(resp.Data) == 0 {
			break
		}

		for _, item := range resp.Data {
			title, company := strings.TrimSpace(item.Title), strings.TrimSpace(item.CompanyName)
			if item.URL == "" || title == "" {
				continue
			}
			tags := item.Tags.String()
			if !matchTerms(terms, title, tags, company) {
				continue
			}
			location := orRemote(item.Location)
			if item.Remote && location != "Remote" {
				location += " (Remote)"
			}
			res = append(res, store.JobPost{
				Title:          title,
				Company:        company,
				URL:            item.URL,
				SourcePlatform: a.Name(),
				Location:       location,
				Description:    truncate(item.Description),
				Tags:           tags,
				PostedAt:       string(item.CreatedAt),
			})
		}

		if resp.Links.Next == "" {
			break
		}
	}
	log.Printf("[INFO] arbeitnow: fetched %d jobs", len(res))
	return res, nil
}
