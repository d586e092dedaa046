package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
)

const remotiveURL = "https://remotive.com/api/remote-jobs"

// Remotive fetches remotive.com jobs, filtered by category and search terms on the server side
type Remotive struct {
	HTTP     *HTTPClient
	BaseURL  string
	Category string // "all" or empty for every category
}

type remotiveResponse struct {
	Jobs []struct {
		Title                     string    `json:"title"`
		CompanyName               string    `json:"company_name"`
		URL                       string    `json:"url"`
		Tags                      textList  `json:"tags"`
		PublicationDate           string    `json:"publication_date"`
		Salary                    textValue `json:"salary"`
		CandidateRequiredLocation string    `json:"candidate_required_location"`
		Category                  string    `json:"category"`
		Description               string    `json:"description"`
	} `json:"jobs"`
}

// Name of the source
func (r *Remotive) Name() string { return "remotive" }

// Fetch gets jobs matching category and terms
func (r *Remotive) Fetch(ctx context.Context, terms []string) ([]store.JobPost, error) {
	var resp remotiveResponse
	if err := r.HTTP.GetJSON(ctx, r.url(terms), &resp); err != nil {
		return nil, fmt.Errorf("remotive: %w", err)
	}

	res := []store.JobPost{}
	for _, item := range resp.Jobs {
		title, company := strings.TrimSpace(item.Title), strings.TrimSpace(item.CompanyName)
		if item.URL == "" || title == "" {
			continue
		}
		res = append(res, store.JobPost{
			Title:          title,
			Company:        company,
			URL:            item.URL,
			SourcePlatform: r.Name(),
			Location:       orRemote(item.CandidateRequiredLocation),
			RoleCategory:   item.Category,
			Salary:         string(item.Salary),
			Description:    truncate(item.Description),
			Tags:           item.Tags.String(),
			PostedAt:       postedAt(item.PublicationDate),
		})
	}
	log.Printf("[INFO] remotive: fetched %d jobs", len(res))
	return res, nil
}

func (r *Remotive) url(terms []string) string {
	base := remotiveURL
	if r.BaseURL != "" {
		base = r.BaseURL
	}
	params := url.Values{}
	if r.Category != "" && r.Category != "all" {
		params.Set("category", r.Category)
	}
	if len(terms) > 0 {
		params.Set("search", strings.Join(terms, " "))
	}
	if len(params) == 0 {
		return base
	}
	return base + "?" + params.Encode()
}
