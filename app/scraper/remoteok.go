package scraper

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
)

const remoteOKURL = "https://remoteok.com/api"

// RemoteOK fetches the whole remoteok.com feed and filters it by terms locally
type RemoteOK struct {
	HTTP    *HTTPClient
	BaseURL string
}

type remoteOKItem struct {
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	URL         string    `json:"url"`
	Slug        string    `json:"slug"`
	Tags        textList  `json:"tags"`
	Date        string    `json:"date"`
	SalaryMin   textValue `json:"salary_min"`
	SalaryMax   textValue `json:"salary_max"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// Name of the source
func (r *RemoteOK) Name() string { return "remoteok" }

// Fetch gets all listings, the first element of the feed is a legal notice and skipped
func (r *RemoteOK) Fetch(ctx context.Context, terms []string) ([]store.JobPost, error) {
	var items []remoteOKItem
	if err := r.HTTP.GetJSON(ctx, r.url(), &items); err != nil {
		return nil, fmt.Errorf("remoteok: %w", err)
	}
	if len(items) > 1 {
		items = items[1:]
	}

	res := []store.JobPost{}
	for _, item := range items {
		title, company := strings.TrimSpace(item.Position), strings.TrimSpace(item.Company)
		url := item.URL
		if url == "" && item.Slug != "" {
			url = "https://remoteok.com/remote-jobs/" + item.Slug
		}
		if url == "" || title == "" {
			continue
		}
		tags := item.Tags.String()
		if !matchTerms(terms, title, tags, company) {
			continue
		}
		res = append(res, store.JobPost{
			Title:          title,
			Company:        company,
			URL:            url,
			SourcePlatform: r.Name(),
			Location:       orRemote(item.Location),
			Salary:         usdRange(string(item.SalaryMin), string(item.SalaryMax)),
			Description:    truncate(item.Description),
			Tags:           tags,
			PostedAt:       postedAt(item.Date),
		})
	}
	log.Printf("[INFO] remoteok: fetched %d jobs", len(res))
	return res, nil
}

func (r *RemoteOK) url() string {
	if r.BaseURL != "" {
		return r.BaseURL
	}
	return remoteOKURL
}

// usdRange formats salary bounds as "$60,000 – $90,000" or "$60,000+", zero or missing min gives empty string
func usdRange(minVal, maxVal string) string {
	lo, hi := parseAmount(minVal), parseAmount(maxVal)
	switch {
	case lo > 0 && hi > 0:
		return fmt.Sprintf("$%s – $%s", humanize.Comma(lo), humanize.Comma(hi))
	case lo > 0:
		return fmt.Sprintf("$%s+", humanize.Comma(lo))
	default:
		return ""
	}
}

func parseAmount(s string) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int64(v)
}
