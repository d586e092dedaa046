package scraper

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/syncs"

	"github.com/umputun/jobfeed/app/config"
	"github.com/umputun/jobfeed/app/notify"
	"github.com/umputun/jobfeed/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// ErrRunning returned when a scrape is requested while another one is in progress
var ErrRunning = errors.New("scrape already running")

// Store defines the subset of store used by runner
type Store interface {
	InsertJobs(ctx context.Context, jobs []store.JobPost) (inserted, skipped int, err error)
}

// Notifier delivers scrape summaries
type Notifier interface {
	Notify(ctx context.Context, sm notify.Summary) error
}

// Runner runs sources concurrently and inserts fetched jobs into the store.
// Only one scrape runs at a time.
type Runner struct {
	Store         Store
	Sources       []Source
	Terms         []string // default terms, used when request has none
	Concurrency   int
	Notifier      Notifier
	NotifyTimeout time.Duration

	running atomic.Bool
	lock    sync.Mutex
	last    *Result
}

// Request defines what to scrape, empty fields fall back to runner's defaults
type Request struct {
	Terms   []string `json:"terms,omitempty"`
	Sources []string `json:"sources,omitempty"`
}

// SourceStats is the outcome of a single source
type SourceStats struct {
	Fetched int    `json:"fetched"`
	Status  string `json:"status"`
}

// Result is the outcome of a scrape
type Result struct {
	Sources    map[string]SourceStats `json:"sources"`
	Fetched    int                    `json:"fetched"`
	Inserted   int                    `json:"inserted"`
	Skipped    int                    `json:"skipped_duplicates"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
}

// NewSources makes all sources enabled by the profile
func NewSources(cfg *config.Config, h *HTTPClient) []Source {
	res := []Source{}
	for _, name := range cfg.ActiveSources() {
		switch name {
		case "remoteok":
			res = append(res, &RemoteOK{HTTP: h})
		case "remotive":
			res = append(res, &Remotive{HTTP: h, Category: cfg.Remotive.Category})
		case "jobicy":
			res = append(res, &Jobicy{HTTP: h, Geo: cfg.Jobicy.Geo, Industry: cfg.Jobicy.Industry, Count: cfg.Jobicy.Count})
		case "arbeitnow":
			res = append(res, &Arbeitnow{HTTP: h, MaxPages: cfg.Arbeitnow.MaxPages})
		default:
			log.Printf("[WARN] unknown source %q ignored", name)
		}
	}
	return res
}

// Running reports whether a scrape is in progress
func (r *Runner) Running() bool { return r.running.Load() }

// LastResult returns the result of the latest completed scrape
func (r *Runner) LastResult() (Result, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.last == nil {
		return Result{}, false
	}
	return *r.last, true
}

// Start runs scrape in background and returns immediately, ErrRunning if another scrape is active
func (r *Runner) Start(ctx context.Context, req Request) error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	go func() {
		defer r.running.Store(false)
		if _, err := r.run(ctx, req); err != nil {
			log.Printf("[WARN] background scrape failed, %v", err)
		}
	}()
	return nil
}

// Run scrapes synchronously, ErrRunning if another scrape is active
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if !r.running.CompareAndSwap(false, true) {
		return Result{}, ErrRunning
	}
	defer r.running.Store(false)
	return r.run(ctx, req)
}

func (r *Runner) run(ctx context.Context, req Request) (Result, error) {
	terms := req.Terms
	if len(terms) == 0 {
		terms = r.Terms
	}
	sources := r.selectSources(req.Sources)
	res := Result{Sources: make(map[string]SourceStats, len(sources)), StartedAt: time.Now()}
	log.Printf("[INFO] scrape started, sources: %d, terms: %q", len(sources), terms)

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var (
		mu   sync.Mutex
		jobs []store.JobPost
	)
	gr := syncs.NewSizedGroup(concurrency, syncs.Context(ctx))
	for _, src := range sources {
		gr.Go(func(ctx context.Context) {
			log.Printf("[DEBUG] running %s", src.Name())
			fetched, err := src.Fetch(ctx, terms)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[WARN] %s failed, %v", src.Name(), err)
				res.Sources[src.Name()] = SourceStats{Status: fmt.Sprintf("error: %v", err)}
				return
			}
			res.Sources[src.Name()] = SourceStats{Fetched: len(fetched), Status: "ok"}
			jobs = append(jobs, fetched...)
		})
	}
	gr.Wait()

	res.Fetched = len(jobs)
	inserted, skipped, err := r.Store.InsertJobs(ctx, jobs)
	if err != nil {
		return res, fmt.Errorf("failed to store jobs: %w", err)
	}
	res.Inserted, res.Skipped = inserted, skipped
	res.FinishedAt = time.Now()
	log.Printf("[INFO] scrape done: %d fetched, %d new, %d duplicates in %v",
		res.Fetched, res.Inserted, res.Skipped, res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond))

	r.lock.Lock()
	r.last = &res
	r.lock.Unlock()

	if err := r.notify(ctx, res); err != nil {
		log.Printf("[WARN] failed to notify, %v", err)
	}
	return res, nil
}

// selectSources picks sources by name keeping runner's order, empty names select all
func (r *Runner) selectSources(names []string) []Source {
	if len(names) == 0 {
		return r.Sources
	}
	res := []Source{}
	for _, src := range r.Sources {
		if slices.Contains(names, src.Name()) {
			res = append(res, src)
		}
	}
	return res
}

func (r *Runner) notify(ctx context.Context, res Result) error {
	if r.Notifier == nil || reflect.ValueOf(r.Notifier).IsNil() {
		return nil
	}
	timeout := r.NotifyTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sm := notify.Summary{Fetched: res.Fetched, Inserted: res.Inserted, Skipped: res.Skipped, TS: res.FinishedAt}
	for _, src := range r.Sources {
		if st, ok := res.Sources[src.Name()]; ok {
			sm.Sources = append(sm.Sources, notify.SourceSummary{Name: src.Name(), Fetched: st.Fetched, Status: st.Status})
		}
	}
	return r.Notifier.Notify(ctx, sm)
}
