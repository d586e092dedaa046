//go:build e2e

// Package e2e provides end-to-end tests for the jobfeed api server and the interaction controller.
//
// Test organization:
// - e2e_test.go: TestMain, shared helpers, constants, feed and saved-items flows
// - auth_test.go: basic auth tests on a separate server
package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobfeed/app/client"
	"github.com/umputun/jobfeed/app/store"
	"github.com/umputun/jobfeed/app/ui"
)

const (
	baseURL    = "http://localhost:18090"
	testDBPath = "/tmp/jobfeed-e2e.db"
	binaryPath = "/tmp/jobfeed-e2e"
)

var serverCmd *exec.Cmd

func TestMain(m *testing.M) {
	// clean old test data
	_ = os.Remove(testDBPath)
	if err := seedDB(testDBPath); err != nil {
		fmt.Printf("failed to seed db: %v\n", err)
		os.Exit(1)
	}

	// build test binary
	ctx := context.Background()
	build := exec.CommandContext(ctx, "go", "build", "-o", binaryPath, "./app")
	build.Dir = ".."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Printf("failed to build: %v\n", err)
		os.Exit(1)
	}

	// start server without scheduled scrapes, auth tests use separate server
	serverCmd = exec.CommandContext(ctx, binaryPath,
		"--listen=:18090",
		"--db="+testDBPath,
	)
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		fmt.Printf("failed to start server: %v\n", err)
		os.Exit(1)
	}

	if err := waitForServer(baseURL+"/ping", 30*time.Second); err != nil {
		fmt.Printf("server not ready: %v\n", err)
		_ = serverCmd.Process.Kill()
		os.Exit(1)
	}

	code := m.Run()

	_ = serverCmd.Process.Kill()
	_ = os.Remove(testDBPath)
	os.Exit(code)
}

// seedDB puts a few job posts into a fresh database
func seedDB(path string) error {
	st, err := store.NewSQLiteStore(path)
	if err != nil {
		return err
	}
	defer st.Close()
	jobs := make([]store.JobPost, 0, 40)
	for i := range 40 {
		src := []string{"remoteok", "remotive", "jobicy"}[i%3]
		jobs = append(jobs, store.JobPost{Title: fmt.Sprintf("Data Analyst %02d", i), Company: "Acme",
			URL: fmt.Sprintf("https://example.com/e2e/%d", i), SourcePlatform: src})
	}
	_, _, err = st.InsertJobs(context.Background(), jobs)
	return err
}

func waitForServer(url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	httpClient := &http.Client{Timeout: 5 * time.Second}
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("server not ready after %v", timeout)
		default:
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
			if err != nil {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			resp, err := httpClient.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return nil
				}
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

// testPage is a ui.Page with a fixed path and prompt answer
type testPage struct {
	path    string
	answer  string
	reloads atomic.Int32
}

func (p *testPage) Path() string { return p.path }
func (p *testPage) Prompt(context.Context, string) (string, error) { return p.answer, nil }
func (p *testPage) Reload() { p.reloads.Add(1) }

func newController(t *testing.T, p *testPage) (*ui.Controller, *client.Client) {
	t.Helper()
	cl := client.New(baseURL, 5*time.Second)
	c := ui.New(cl, p, ui.Options{ToastDuration: time.Minute, RemoveDelay: 20 * time.Millisecond,
		ReloadDelay: 20 * time.Millisecond})
	t.Cleanup(c.Close)
	return c, cl
}

// feedCards loads the first feed page and makes cards of it
func feedCards(t *testing.T, cl *client.Client) []ui.Card {
	t.Helper()
	feed, err := cl.Feed(context.Background(), store.FeedQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, feed.Jobs)
	cards := make([]ui.Card, 0, len(feed.Jobs))
	for _, j := range feed.Jobs {
		cards = append(cards, ui.Card{JobID: strconv.FormatInt(j.ID, 10), Saved: j.IsSaved, ListNames: j.SavedLists})
	}
	return cards
}

// --- feed tests ---

func TestFeed_Pages(t *testing.T) {
	cl := client.New(baseURL, 5*time.Second)
	feed, err := cl.Feed(context.Background(), store.FeedQuery{})
	require.NoError(t, err)
	assert.Equal(t, 40, feed.Total)
	assert.Equal(t, 2, feed.TotalPages)
	assert.ElementsMatch(t, []string{"jobicy", "remoteok", "remotive"}, feed.Sources)

	feed, err = cl.Feed(context.Background(), store.FeedQuery{Source: "jobicy", Search: "analyst"})
	require.NoError(t, err)
	assert.Equal(t, 13, feed.Total)
}

func TestFeed_SaveAndUnsave(t *testing.T) {
	p := &testPage{path: "/jobs"}
	c, cl := newController(t, p)
	cards := feedCards(t, cl)
	c.SetCards(cards)
	id := cards[0].JobID

	c.ToggleDropdown(id)
	c.Save(context.Background(), id, "E2E Favorites")
	card, ok := c.Card(id)
	require.True(t, ok)
	assert.True(t, card.Saved)
	assert.Equal(t, `Saved to "E2E Favorites"`, c.Snapshot().Toast.Message)
	_, open := c.CurrentlyOpen()
	assert.False(t, open)

	saved, err := cl.Saved(context.Background(), "E2E Favorites")
	require.NoError(t, err)
	require.Len(t, saved.Jobs, 1)
	assert.Equal(t, id, strconv.FormatInt(saved.Jobs[0].ID, 10))

	c.Unsave(context.Background(), id, "")
	card, _ = c.Card(id)
	assert.False(t, card.Saved)
	assert.Equal(t, "☆", card.Glyph())
}

func TestFeed_SaveUnknownJob(t *testing.T) {
	c, _ := newController(t, &testPage{path: "/jobs"})
	c.Save(context.Background(), "999999", "Saved")
	snap := c.Snapshot()
	assert.Equal(t, "job not found", snap.Toast.Message)
	assert.Equal(t, ui.SeverityError, snap.Toast.Severity)
}

func TestSaved_UnsaveRemovesCard(t *testing.T) {
	_, cl := newController(t, &testPage{})
	id := feedCards(t, cl)[1].JobID
	reply, err := cl.Save(context.Background(), id, "E2E Remove")
	require.NoError(t, err)
	require.True(t, reply.OK())

	p := &testPage{path: "/saved/E2E Remove"}
	c, _ := newController(t, p)
	c.SetCards([]ui.Card{{JobID: id, Saved: true, ListNames: []string{"E2E Remove"}}})
	c.Unsave(context.Background(), id, "E2E Remove")
	assert.Equal(t, "Removed from saved", c.Snapshot().Toast.Message)
	require.Eventually(t, func() bool { return len(c.Snapshot().Cards) == 0 }, time.Second, 10*time.Millisecond)

	saved, err := cl.Saved(context.Background(), "E2E Remove")
	require.NoError(t, err)
	assert.Empty(t, saved.Jobs)
}

func TestLists_CreateAndDuplicate(t *testing.T) {
	p := &testPage{path: "/saved", answer: "E2E Later"}
	c, cl := newController(t, p)

	c.CreateList(context.Background())
	assert.Equal(t, `List "E2E Later" created`, c.Snapshot().Toast.Message)
	require.Eventually(t, func() bool { return p.reloads.Load() == 1 }, time.Second, 10*time.Millisecond)

	c.CreateList(context.Background())
	snap := c.Snapshot()
	assert.Equal(t, "List already exists", snap.Toast.Message)
	assert.Equal(t, ui.SeverityError, snap.Toast.Severity)

	reply, err := cl.DeleteList(context.Background(), "E2E Later")
	require.NoError(t, err)
	assert.True(t, reply.OK())
}

func TestLists_CreateEmptyName(t *testing.T) {
	p := &testPage{path: "/jobs", answer: "  "}
	c, cl := newController(t, p)
	before, err := cl.Lists(context.Background())
	require.NoError(t, err)

	c.CreateList(context.Background())
	assert.False(t, c.Snapshot().Toast.Visible)

	after, err := cl.Lists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}
