package scraper_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobfeed/app/config"
	"github.com/umputun/jobfeed/app/notify"
	"github.com/umputun/jobfeed/app/scraper"
	"github.com/umputun/jobfeed/app/scraper/mocks"
	"github.com/umputun/jobfeed/app/store"
)

func newSource(name string, jobs []store.JobPost, err error, delay time.Duration) *mocks.Source {
	return &mocks.Source{
		NameFunc: func() string { return name },
		FetchFunc: func(ctx context.Context, _ []string) ([]store.JobPost, error) {
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return jobs, err
		},
	}
}

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func makeJobs(src string, n int) []store.JobPost {
	res := make([]store.JobPost, 0, n)
	for i := range n {
		res = append(res, store.JobPost{Title: fmt.Sprintf("%s job %d", src, i), SourcePlatform: src,
			URL: fmt.Sprintf("https://%s.example.com/%d", src, i)})
	}
	return res
}

func TestRunner_Run(t *testing.T) {
	st := newStore(t)
	ok := newSource("remoteok", makeJobs("remoteok", 3), nil, 0)
	bad := newSource("jobicy", nil, errors.New("boom"), 0)
	dup := newSource("remotive", makeJobs("remoteok", 2), nil, 0)
	notif := &mocks.Notifier{NotifyFunc: func(context.Context, notify.Summary) error { return nil }}

	r := &scraper.Runner{Store: st, Sources: []scraper.Source{ok, bad, dup}, Terms: []string{"data"},
		Concurrency: 2, Notifier: notif}

	res, err := r.Run(context.Background(), scraper.Request{})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Fetched)
	assert.Equal(t, 3, res.Inserted)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, scraper.SourceStats{Fetched: 3, Status: "ok"}, res.Sources["remoteok"])
	assert.Equal(t, scraper.SourceStats{Status: "error: boom"}, res.Sources["jobicy"])
	require.Len(t, ok.FetchCalls(), 1)
	assert.Equal(t, []string{"data"}, ok.FetchCalls()[0].Terms, "default terms used")
	assert.False(t, r.Running())

	last, found := r.LastResult()
	require.True(t, found)
	assert.Equal(t, res.Inserted, last.Inserted)

	require.Len(t, notif.NotifyCalls(), 1)
	summary := notif.NotifyCalls()[0].Sm
	assert.Equal(t, 3, summary.Inserted)
	require.Len(t, summary.Sources, 3)
	assert.Equal(t, "remoteok", summary.Sources[0].Name)

	t.Run("request selects sources and terms", func(t *testing.T) {
		res, err := r.Run(context.Background(),
			scraper.Request{Terms: []string{"bi"}, Sources: []string{"remoteok", "unknown"}})
		require.NoError(t, err)
		assert.Len(t, res.Sources, 1)
		assert.Equal(t, 0, res.Inserted)
		require.Len(t, ok.FetchCalls(), 2)
		assert.Equal(t, []string{"bi"}, ok.FetchCalls()[1].Terms)
		assert.Len(t, bad.FetchCalls(), 1, "not selected")
	})
}

func TestRunner_StoreFailure(t *testing.T) {
	st := &mocks.Store{InsertJobsFunc: func(context.Context, []store.JobPost) (int, int, error) {
		return 0, 0, errors.New("disk full")
	}}
	notif := &mocks.Notifier{NotifyFunc: func(context.Context, notify.Summary) error { return nil }}
	r := &scraper.Runner{Store: st, Sources: []scraper.Source{newSource("remoteok", makeJobs("remoteok", 2), nil, 0)},
		Notifier: notif}

	_, err := r.Run(context.Background(), scraper.Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store jobs: disk full")
	require.Len(t, st.InsertJobsCalls(), 1)
	assert.Len(t, st.InsertJobsCalls()[0].Jobs, 2)
	assert.Empty(t, notif.NotifyCalls(), "no notification for failed scrape")
	_, found := r.LastResult()
	assert.False(t, found)
}

func TestRunner_NotifyFailureIgnored(t *testing.T) {
	notif := &mocks.Notifier{NotifyFunc: func(context.Context, notify.Summary) error { return errors.New("webhook down") }}
	r := &scraper.Runner{Store: newStore(t), Sources: []scraper.Source{newSource("remoteok", makeJobs("remoteok", 1), nil, 0)},
		Notifier: notif}
	res, err := r.Run(context.Background(), scraper.Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.Len(t, notif.NotifyCalls(), 1)
}

func TestRunner_NoLastResult(t *testing.T) {
	r := &scraper.Runner{}
	_, found := r.LastResult()
	assert.False(t, found)
}

func TestRunner_StartOnlyOne(t *testing.T) {
	st := newStore(t)
	slow := newSource("remoteok", makeJobs("remoteok", 1), nil, 200*time.Millisecond)
	r := &scraper.Runner{Store: st, Sources: []scraper.Source{slow}}

	require.NoError(t, r.Start(context.Background(), scraper.Request{}))
	assert.True(t, r.Running())
	require.ErrorIs(t, r.Start(context.Background(), scraper.Request{}), scraper.ErrRunning)
	_, err := r.Run(context.Background(), scraper.Request{})
	require.ErrorIs(t, err, scraper.ErrRunning)

	require.Eventually(t, func() bool { return !r.Running() }, time.Second, 10*time.Millisecond)
	last, found := r.LastResult()
	require.True(t, found)
	assert.Equal(t, 1, last.Inserted)
	require.NoError(t, r.Start(context.Background(), scraper.Request{}), "can start again")
	require.Eventually(t, func() bool { return !r.Running() }, time.Second, 10*time.Millisecond)
	assert.Len(t, slow.FetchCalls(), 2)
}

func TestRunner_NilNotifier(t *testing.T) {
	var svc *notify.Service
	r := &scraper.Runner{Store: newStore(t), Sources: []scraper.Source{newSource("remoteok", nil, nil, 0)},
		Notifier: svc}
	_, err := r.Run(context.Background(), scraper.Request{})
	require.NoError(t, err)
}

func TestNewSources(t *testing.T) {
	cfg := config.Default()
	srcs := scraper.NewSources(cfg, &scraper.HTTPClient{})
	require.Len(t, srcs, 4)
	names := make([]string, 0, len(srcs))
	for _, s := range srcs {
		names = append(names, s.Name())
	}
	assert.Equal(t, config.AllSources, names)
	assert.Equal(t, "data", srcs[1].(*scraper.Remotive).Category)
	assert.Equal(t, 50, srcs[2].(*scraper.Jobicy).Count)

	cfg.Sources = []string{"jobicy"}
	srcs = scraper.NewSources(cfg, &scraper.HTTPClient{})
	require.Len(t, srcs, 1)
	assert.Equal(t, "jobicy", srcs[0].Name())
}
