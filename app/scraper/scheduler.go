package scraper

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/jobfeed/app/config"
)

//go:generate moq -out mocks/cron.go -pkg mocks -skip-ensure -fmt goimports . Cron
//go:generate moq -out mocks/scraper.go -pkg mocks -skip-ensure -fmt goimports . Scraper
//go:generate moq -out mocks/condition_checker.go -pkg mocks -skip-ensure -fmt goimports . ConditionChecker

// Scheduler triggers scrapes on a cron schedule, skipping runs when system conditions are not met
type Scheduler struct {
	Cron
	Runner           Scraper
	Spec             string
	Conditions       *config.ConditionsConfig
	ConditionChecker ConditionChecker
	Jitter           time.Duration
}

// Cron interface defines basic robfig/cron methods used by scheduler
type Cron interface {
	Start()
	Stop() context.Context
	Schedule(schedule cron.Schedule, cmd cron.Job) cron.EntryID
}

// Scraper runs a scrape synchronously
type Scraper interface {
	Run(ctx context.Context, req Request) (Result, error)
}

// ConditionChecker defines interface for checking system conditions
type ConditionChecker interface {
	Check(cond config.ConditionsConfig) (bool, string)
}

// Do runs blocking scheduler until ctx is canceled
func (s *Scheduler) Do(ctx context.Context) error {
	sched, err := cron.ParseStandard(s.Spec)
	if err != nil {
		return fmt.Errorf("can't parse %s: %w", s.Spec, err)
	}
	id := s.Schedule(sched, s.jobFunc(ctx, sched))
	log.Printf("[INFO] scheduled scrape %q, first: %s (%v)", s.Spec, sched.Next(time.Now()).Format(time.RFC3339), id)

	s.Start()
	<-ctx.Done()
	log.Print("[DEBUG] terminate scheduler")
	<-s.Stop().Done()
	return nil
}

func (s *Scheduler) jobFunc(ctx context.Context, sched cron.Schedule) cron.FuncJob {
	return func() {
		if !s.conditionsMet() {
			return
		}
		if s.Jitter > 0 {
			select {
			case <-time.After(rand.N(s.Jitter)): //nolint:gosec // jitter doesn't need crypto rand
			case <-ctx.Done():
				return
			}
		}

		res, err := s.Runner.Run(ctx, Request{})
		switch {
		case errors.Is(err, ErrRunning):
			log.Printf("[INFO] scheduled scrape skipped, another scrape is running")
		case err != nil:
			log.Printf("[WARN] scheduled scrape failed, %v", err)
		default:
			log.Printf("[INFO] scheduled scrape completed, %d new jobs", res.Inserted)
		}
		log.Printf("[INFO] next scrape: %s", sched.Next(time.Now()).Format(time.RFC3339))
	}
}

// conditionsMet checks system conditions, true if no conditions or checker configured
func (s *Scheduler) conditionsMet() bool {
	if s.Conditions == nil || s.ConditionChecker == nil {
		return true
	}
	met, reason := s.ConditionChecker.Check(*s.Conditions)
	if !met {
		log.Printf("[INFO] scheduled scrape skipped, reason: %s", reason)
	}
	return met
}
