// Package notify delivers scrape summaries to webhook destinations
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"text/template"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/notify"
)

const defaultTemplate = `jobfeed on {{.Host}}: {{.Inserted}} new jobs ({{.Fetched}} fetched, {{.Skipped}} duplicates)
{{- range .Sources}}
  {{.Name}}: {{.Fetched}} fetched, {{.Status}}
{{- end}}`

// Service sends notifications about completed scrapes
type Service struct {
	destinations []notify.Notifier
	urls         []string
	onlyNew      bool
	tmpl         *template.Template
	host         string
}

// Params for the notification service
type Params struct {
	WebhookURLs []string
	Headers     []string // "header:value" pairs sent with every webhook
	Timeout     time.Duration
	OnlyNew     bool   // skip notification when a scrape found nothing new
	Template    string // optional template file, default template is used if empty or broken
}

// Summary is the data passed to the message template
type Summary struct {
	Host     string
	Fetched  int
	Inserted int
	Skipped  int
	Sources  []SourceSummary
	TS       time.Time
}

// SourceSummary describes one source result
type SourceSummary struct {
	Name    string
	Fetched int
	Status  string
}

// NewService makes notification service, returns nil if no destinations defined
func NewService(p Params) *Service {
	if len(p.WebhookURLs) == 0 {
		return nil
	}
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	res := &Service{
		urls:    p.WebhookURLs,
		onlyNew: p.OnlyNew,
		host:    host,
		tmpl:    template.Must(template.New("summary").Parse(defaultTemplate)),
	}
	wh := notify.NewWebhook(notify.WebhookParams{Timeout: p.Timeout, Headers: p.Headers})
	res.destinations = []notify.Notifier{wh}

	if p.Template != "" {
		if t, err := template.ParseFiles(p.Template); err == nil {
			res.tmpl = t
		} else {
			log.Printf("[WARN] can't load notification template %s, using default: %v", p.Template, err)
		}
	}
	log.Printf("[INFO] notifications enabled, %d webhook(s)", len(p.WebhookURLs))
	return res
}

// MakeText renders summary with the message template
func (s *Service) MakeText(sm Summary) (string, error) {
	if sm.Host == "" {
		sm.Host = s.host
	}
	if sm.TS.IsZero() {
		sm.TS = time.Now()
	}
	buf := bytes.Buffer{}
	if err := s.tmpl.Execute(&buf, sm); err != nil {
		return "", fmt.Errorf("failed to apply template: %w", err)
	}
	return buf.String(), nil
}

// Notify renders summary and sends it to all destinations
func (s *Service) Notify(ctx context.Context, sm Summary) error {
	if s.onlyNew && sm.Inserted == 0 {
		log.Printf("[DEBUG] nothing new, notification skipped")
		return nil
	}
	text, err := s.MakeText(sm)
	if err != nil {
		return err
	}
	return s.Send(ctx, text)
}

// Send text to every webhook url, collects all errors
func (s *Service) Send(ctx context.Context, text string) error {
	var errs []error
	for _, url := range s.urls {
		for _, dest := range s.destinations {
			if err := dest.Send(ctx, url, text); err != nil {
				errs = append(errs, fmt.Errorf("failed to send to %s: %w", url, err))
			}
		}
	}
	return errors.Join(errs...)
}
