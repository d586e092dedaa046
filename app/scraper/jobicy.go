package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
)

const jobicyURL = "https://jobicy.com/api/v2/remote-jobs"

// Jobicy fetches jobicy.com jobs, terms are passed as the tag filter
type Jobicy struct {
	HTTP     *HTTPClient
	BaseURL  string
	Geo      string
	Industry string
	Count    int
}

type jobicyResponse struct {
	Jobs []struct {
		JobTitle        string    `json:"jobTitle"`
		CompanyName     string    `json:"companyName"`
		URL             string    `json:"url"`
		AnnualSalaryMin textValue `json:"annualSalaryMin"`
		AnnualSalaryMax textValue `json:"annualSalaryMax"`
		SalaryCurrency  string    `json:"salaryCurrency"`
		JobGeo          string    `json:"jobGeo"`
		JobIndustry     textList  `json:"jobIndustry"`
		JobType         textList  `json:"jobType"`
		PubDate         string    `json:"pubDate"`
		JobDescription  string    `json:"jobDescription"`
	} `json:"jobs"`
}

// Name of the source
func (j *Jobicy) Name() string { return "jobicy" }

// Fetch gets up to Count jobs matching geo, industry and terms
func (j *Jobicy) Fetch(ctx context.Context, terms []string) ([]store.JobPost, error) {
	var resp jobicyResponse
	if err := j.HTTP.GetJSON(ctx, j.url(terms), &resp); err != nil {
		return nil, fmt.Errorf("jobicy: %w", err)
	}

	res := []store.JobPost{}
	for _, item := range resp.Jobs {
		title, company := strings.TrimSpace(item.JobTitle), strings.TrimSpace(item.CompanyName)
		if item.URL == "" || title == "" {
			continue
		}
		currency := item.SalaryCurrency
		if currency == "" {
			currency = "USD"
		}
		salary := ""
		switch {
		case item.AnnualSalaryMin != "" && item.AnnualSalaryMax != "":
			salary = fmt.Sprintf("%s %s – %s", currency, item.AnnualSalaryMin, item.AnnualSalaryMax)
		case item.AnnualSalaryMin != "":
			salary = fmt.Sprintf("%s %s+", currency, item.AnnualSalaryMin)
		}
		res = append(res, store.JobPost{
			Title:          title,
			Company:        company,
			URL:            item.URL,
			SourcePlatform: j.Name(),
			Location:       orRemote(item.JobGeo),
			RoleCategory:   item.JobIndustry.String(),
			Salary:         salary,
			Description:    truncate(item.JobDescription),
			Tags:           item.JobType.String(),
			PostedAt:       item.PubDate,
		})
	}
	log.Printf("[INFO] jobicy: fetched %d jobs", len(res))
	return res, nil
}

func (j *Jobicy) url(terms []string) string {
	base := jobicyURL
	if j.BaseURL != "" {
		base = j.BaseURL
	}
	count := j.Count
	if count <= 0 {
		count = 50
	}
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	if j.Geo != "" {
		params.Set("geo", j.Geo)
	}
	if j.Industry != "" {
		params.Set("industry", j.Industry)
	}
	if len(terms) > 0 {
		params.Set("tag", strings.Join(terms, " "))
	}
	return base + "?" + params.Encode()
}
