package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobfeed/app/store"
	"github.com/umputun/jobfeed/app/tui/mocks"
	"github.com/umputun/jobfeed/app/ui"
	"github.com/umputun/jobfeed/app/web"
)

func newBackend() *mocks.Backend {
	ok := func() (ui.Reply, error) { return ui.Reply{Status: 200}, nil }
	feed := web.FeedResponse{
		FeedPage: store.FeedPage{Jobs: []store.JobPost{
			{ID: 1, Title: "Data Analyst", Company: "Acme", SourcePlatform: "remoteok", ScrapedAt: time.Now()},
			{ID: 2, Title: "BI Engineer", Company: "Beta", Salary: "$90,000+", SourcePlatform: "jobicy",
				IsSaved: true, SavedLists: []string{"Saved"}},
		}, Total: 2, Page: 1, TotalPages: 3},
		Sources: []string{"jobicy", "remoteok"},
	}
	saved := web.SavedResponse{Jobs: []store.SavedJob{
		{JobPost: store.JobPost{ID: 2, Title: "BI Engineer"}, ListName: "Saved"},
		{JobPost: store.JobPost{ID: 2, Title: "BI Engineer"}, ListName: "Later"},
		{JobPost: store.JobPost{ID: 5, Title: "Analytics Lead"}, ListName: "Later"},
	}, Lists: []store.List{{Name: "Later", Count: 2}, {Name: "Saved", Count: 1}}}

	return &mocks.Backend{
		SaveFunc:       func(context.Context, string, string) (ui.Reply, error) { return ok() },
		UnsaveFunc:     func(context.Context, string, string) (ui.Reply, error) { return ok() },
		CreateListFunc: func(context.Context, string) (ui.Reply, error) { return ok() },
		ScrapeFunc:     func(context.Context) (ui.Reply, error) { return ok() },
		DeleteListFunc: func(context.Context, string) (ui.Reply, error) { return ok() },
		FeedFunc: func(_ context.Context, q store.FeedQuery) (web.FeedResponse, error) {
			resp := feed
			resp.Page = max(q.Page, 1)
			return resp, nil
		},
		SavedFunc: func(context.Context, string) (web.SavedResponse, error) { return saved, nil },
		ListsFunc: func(context.Context) ([]store.List, error) {
			return []store.List{{Name: "Favorites"}, {Name: "Saved", Count: 1}}, nil
		},
		StatsFunc: func(context.Context) (web.StatsResponse, error) {
			return web.StatsResponse{Stats: store.Stats{TotalJobs: 1234, SavedJobs: 2}}, nil
		},
	}
}

func newTestModel(t *testing.T, backend *mocks.Backend) Model {
	t.Helper()
	m := New(context.Background(), backend, ui.Options{ToastDuration: time.Minute, ReloadDelay: time.Minute,
		ScrapeReloadDelay: time.Minute})
	t.Cleanup(m.ctrl.Close)
	return m
}

// press sends keys to the model one by one
func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// loaded runs Init (or any load cmd) and feeds the result back
func loaded(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, loadedMsg{}, msg)
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_InitialLoad(t *testing.T) {
	backend := newBackend()
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())

	require.Len(t, m.snap.Cards, 2)
	assert.Equal(t, "1", m.snap.Cards[0].JobID)
	assert.True(t, m.snap.Cards[1].Saved)
	assert.Equal(t, 3, m.totalPages)
	assert.Equal(t, []string{"jobicy", "remoteok"}, m.sources)

	view := m.View()
	assert.Contains(t, view, "Job Feed")
	assert.Contains(t, view, "page 1/3")
	assert.Contains(t, view, "2 saved of 1,234")
	assert.Contains(t, view, "☆ Data Analyst @ Acme")
	assert.Contains(t, view, "BI Engineer @ Beta")
	assert.Contains(t, view, "$90,000+")
	assert.Contains(t, view, "in Saved")
}

func TestModel_LoadError(t *testing.T) {
	backend := newBackend()
	backend.FeedFunc = func(context.Context, store.FeedQuery) (web.FeedResponse, error) {
		return web.FeedResponse{}, errors.New("connection refused")
	}
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())
	assert.Contains(t, m.View(), "failed to load: connection refused")
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t, newBackend())
	m = loaded(t, m, m.Init())

	m, _ = press(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)
	m, _ = press(t, m, runes("j"), runes("j"))
	assert.Equal(t, 1, m.cursor, "stays on the last card")
	m, _ = press(t, m, runes("k"), runes("k"))
	assert.Equal(t, 0, m.cursor)

	m, cmd := press(t, m, runes("l"))
	m = loaded(t, m, cmd)
	m, cmd = press(t, m, runes("h"))
	require.NotNil(t, cmd)
	_, cmd = press(t, m, runes("h"))
	assert.Nil(t, cmd, "already on the first page")
}

func TestModel_SaveFromDropdown(t *testing.T) {
	backend := newBackend()
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())

	m, _ = press(t, m, runes("s"))
	assert.Equal(t, "1", m.snap.OpenDropdown)
	view := m.View()
	assert.Contains(t, view, "Save to:")
	assert.Contains(t, view, "1)   Favorites (0)")
	assert.Contains(t, view, "n) + new list")

	m, cmd := press(t, m, runes("1"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	require.Len(t, backend.SaveCalls(), 1)
	assert.Equal(t, "1", backend.SaveCalls()[0].JobID)
	assert.Equal(t, "Favorites", backend.SaveCalls()[0].ListName)

	updated, _ := m.Update(snapshotMsg{snap: m.ctrl.Snapshot()})
	m = updated.(Model)
	assert.Empty(t, m.snap.OpenDropdown)
	assert.True(t, m.snap.Cards[0].Saved)
	view = m.View()
	assert.Contains(t, view, "★")
	assert.Contains(t, view, `Saved to "Favorites"`)
}

func TestModel_DigitWithoutDropdown(t *testing.T) {
	backend := newBackend()
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())
	_, cmd := press(t, m, runes("1"))
	assert.Nil(t, cmd)
	m, _ = press(t, m, runes("s"), runes("9"))
	assert.Equal(t, "1", m.snap.OpenDropdown, "no list 9, nothing happens")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.snap.OpenDropdown)
}

func TestModel_StaleSnapshotDropped(t *testing.T) {
	m := newTestModel(t, newBackend())
	m = loaded(t, m, m.Init())
	current := m.snap

	old := current
	old.Seq = current.Seq - 1
	old.Cards = nil
	updated, _ := m.Update(snapshotMsg{snap: old})
	assert.Len(t, updated.(Model).snap.Cards, 2)
}

func TestModel_RemotePrompt(t *testing.T) {
	m := newTestModel(t, newBackend())
	msgs := make(chan tea.Msg, 10)
	m.page.attach(func(msg tea.Msg) { msgs <- msg })

	type answer struct {
		text string
		err  error
	}
	answers := make(chan answer, 1)
	go func() {
		text, err := m.page.Prompt(context.Background(), "Enter list name:")
		answers <- answer{text, err}
	}()

	var msg tea.Msg
	select {
	case msg = <-msgs:
	case <-time.After(time.Second):
		t.Fatal("no prompt message")
	}
	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.Equal(t, promptRemote, m.prompt)
	assert.Contains(t, m.View(), "Enter list name:")

	m, _ = press(t, m, runes("T"), runes("o"), runes("d"), runes("o"))
	assert.Equal(t, "Todo", m.input.Value())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, promptNone, m.prompt)

	select {
	case a := <-answers:
		require.NoError(t, a.err)
		assert.Equal(t, "Todo", a.text)
	case <-time.After(time.Second):
		t.Fatal("no answer")
	}
}

func TestModel_RemotePromptCanceled(t *testing.T) {
	m := newTestModel(t, newBackend())
	reply := make(chan string, 1)
	updated, _ := m.Update(promptMsg{message: "Enter list name:", reply: reply})
	m = updated.(Model)
	m, _ = press(t, m, runes("x"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, promptNone, m.prompt)
	_, ok := <-reply
	assert.False(t, ok, "reply closed")

	p := &page{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Prompt(ctx, "x")
	require.ErrorIs(t, err, context.Canceled)
}

func TestModel_Search(t *testing.T) {
	backend := newBackend()
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())

	m, _ = press(t, m, runes("/"))
	assert.Equal(t, promptSearch, m.prompt)
	m, _ = press(t, m, runes("p"), runes("o"), runes("w"), runes("e"), runes("r"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "power", m.query.Search)
	m = loaded(t, m, cmd)
	assert.Contains(t, m.View(), `search: "power"`)

	m, cmd = press(t, m, runes("f"))
	assert.Equal(t, "jobicy", m.query.Source)
	m = loaded(t, m, cmd)
	m, cmd = press(t, m, runes("d"))
	assert.Equal(t, 1, m.query.Days)
	m = loaded(t, m, cmd)
	assert.Contains(t, m.View(), "last 1 days")

	calls := backend.FeedCalls()
	require.Len(t, calls, 4)
	assert.Equal(t, store.FeedQuery{Source: "jobicy", Search: "power", Days: 1, Page: 1}, calls[3].Q)
}

func TestModel_SavedView(t *testing.T) {
	backend := newBackend()
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())

	m, cmd := press(t, m, runes("v"))
	assert.Equal(t, savedPath, m.page.Path())
	m = loaded(t, m, cmd)
	require.Len(t, m.snap.Cards, 2, "same job in two lists is one card")
	assert.Equal(t, []string{"Saved", "Later"}, m.snap.Cards[0].ListNames)
	assert.Contains(t, m.View(), "all lists")

	m, cmd = press(t, m, runes("L"))
	assert.Equal(t, "Later", m.savedList)
	assert.Equal(t, "/saved/Later", m.page.Path())
	m = loaded(t, m, cmd)
	require.Len(t, backend.SavedCalls(), 2)
	assert.Empty(t, backend.SavedCalls()[0].List)
	assert.Equal(t, "Later", backend.SavedCalls()[1].List)

	_, cmd = press(t, m, runes("u"))
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, backend.UnsaveCalls(), 1)
	assert.Equal(t, "2", backend.UnsaveCalls()[0].JobID)
	assert.Equal(t, "Later", backend.UnsaveCalls()[0].ListName)
	card, ok := m.ctrl.Card("2")
	require.True(t, ok)
	assert.True(t, card.Leaving)

	_, cmd = press(t, m, runes("D"))
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, listDeletedMsg{name: "Later", reply: ui.Reply{Status: 200}}, msg)
	require.Len(t, backend.DeleteListCalls(), 1)
	assert.Equal(t, "Later", backend.DeleteListCalls()[0].Name)
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	assert.Equal(t, savedPath, m.path)
	assert.Empty(t, m.savedList)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), `List "Later" deleted`)
}

func TestModel_StaleLoadIgnored(t *testing.T) {
	m := newTestModel(t, newBackend())
	cmd := m.Init()
	m, _ = press(t, m, runes("v"))
	updated, _ := m.Update(cmd())
	assert.Empty(t, updated.(Model).snap.Cards)
}

func TestModel_Scrape(t *testing.T) {
	backend := newBackend()
	m := newTestModel(t, backend)
	m = loaded(t, m, m.Init())

	m, cmd := press(t, m, runes("r"))
	require.NotNil(t, cmd)
	cmd()
	assert.Len(t, backend.ScrapeCalls(), 1)
	assert.Empty(t, backend.SaveCalls())

	updated, tick := m.Update(snapshotMsg{snap: m.ctrl.Snapshot()})
	m = updated.(Model)
	assert.NotNil(t, tick, "spinner starts")
	view := m.View()
	assert.Contains(t, view, "scraping...")
	assert.Contains(t, view, "Scraping started!")
	assert.NotContains(t, view, "r scrape")

	_, cmd = press(t, m, runes("r"))
	assert.Nil(t, cmd, "button disabled")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, newBackend())
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCycle(t *testing.T) {
	assert.Equal(t, "b", cycle([]string{"a", "b"}, "a"))
	assert.Equal(t, "a", cycle([]string{"a", "b"}, "b"))
	assert.Equal(t, "a", cycle([]string{"a", "b"}, "zzz"))
}

func TestView_HelpLine(t *testing.T) {
	m := newTestModel(t, newBackend())
	footer := m.footer()
	for _, s := range []string{"s save", "u unsave", "r scrape", "q quit"} {
		assert.True(t, strings.Contains(footer, s), s)
	}
}
