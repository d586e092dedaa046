// Package web implements the JSON API server of jobfeed
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/jobfeed/app/scraper"
	"github.com/umputun/jobfeed/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper

// Server represents the web server
type Server struct {
	store         Store
	scraper       Scraper
	version       string
	passwordHash  string // bcrypt hash for basic auth
	scrapeLimiter *limiter.Limiter
	baseCtx       context.Context // parent of background scrapes, outlives requests
}

// Store defines storage operations used by api handlers
type Store interface {
	Feed(ctx context.Context, q store.FeedQuery) (store.FeedPage, error)
	Sources(ctx context.Context) ([]string, error)
	SaveJob(ctx context.Context, jobID int64, listName string) error
	UnsaveJob(ctx context.Context, jobID int64, listName string) (int64, error)
	CreateList(ctx context.Context, name string) error
	DeleteList(ctx context.Context, name string) error
	Lists(ctx context.Context) ([]store.List, error)
	Saved(ctx context.Context, listName string) ([]store.SavedJob, error)
	Stats(ctx context.Context) (store.Stats, error)
}

// Scraper starts background scrapes and reports their state
type Scraper interface {
	Start(ctx context.Context, req scraper.Request) error
	Running() bool
	LastResult() (scraper.Result, bool)
}

// Config holds server configuration
type Config struct {
	Store        Store
	Scraper      Scraper
	Version      string
	PasswordHash string  // bcrypt hash for basic auth (empty to disable)
	ScrapeRate   float64 // allowed scrape triggers per second, defaults to 1
}

// New creates a new web server
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("web server initialization failed: store is required")
	}
	if cfg.Scraper == nil {
		return nil, errors.New("web server initialization failed: scraper is required")
	}

	rate := cfg.ScrapeRate
	if rate <= 0 {
		rate = 1
	}
	lmt := tollbooth.NewLimiter(rate, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetBurst(max(1, int(rate)))
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessageContentType("application/json")
	lmt.SetMessage(`{"error":"too many requests"}`)

	return &Server{
		store:         cfg.Store,
		scraper:       cfg.Scraper,
		version:       cfg.Version,
		passwordHash:  cfg.PasswordHash,
		scrapeLimiter: lmt,
		baseCtx:       context.Background(),
	}, nil
}

// Run starts the web server, blocks until ctx is canceled
func (s *Server) Run(ctx context.Context, address string) error {
	s.baseCtx = ctx
	server := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting web server on %s", address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware - applied to all routes
	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.Throttle(1000),
		rest.AppInfo("jobfeed", "umputun", s.version),
		rest.Ping,
		rest.Trace,
		rest.SizeLimit(64*1024), // 64KB max request size
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
	)

	// must be done before any routes are defined
	if s.passwordHash != "" {
		log.Printf("[INFO] authentication enabled for api")
		router.Use(s.authMiddleware())
	}

	router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.Use(rest.NoCache)

		api.HandleFunc("GET /jobs", s.handleJobs)
		api.HandleFunc("GET /saved", s.handleSaved)
		api.HandleFunc("GET /saved/{list}", s.handleSaved)
		api.HandleFunc("GET /stats", s.handleStats)

		api.HandleFunc("GET /lists", s.handleLists)
		api.HandleFunc("POST /lists", s.handleCreateList)
		api.HandleFunc("DELETE /lists/{name}", s.handleDeleteList)

		api.HandleFunc("POST /save", s.handleSave)
		api.HandleFunc("POST /unsave", s.handleUnsave)
		api.With(tollbooth.HTTPMiddleware(s.scrapeLimiter)).HandleFunc("POST /scrape", s.handleScrape)
	})

	return router
}
