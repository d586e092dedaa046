// Package tui is the terminal front end of jobfeed. It renders the feed and the saved-items
// views and drives ui.Controller from key presses.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobfeed/app/store"
	"github.com/umputun/jobfeed/app/ui"
	"github.com/umputun/jobfeed/app/web"
)

//go:generate moq -out mocks/backend.go -pkg mocks -skip-ensure -fmt goimports . Backend

const (
	feedPath  = "/jobs"
	savedPath = "/saved"
)

// days filter values cycled by the days key, 0 means any time
var daysChoices = []int{0, 1, 3, 7, 30}

// Backend is the jobfeed api used by the terminal client
type Backend interface {
	ui.API
	DeleteList(ctx context.Context, name string) (ui.Reply, error)
	Feed(ctx context.Context, q store.FeedQuery) (web.FeedResponse, error)
	Saved(ctx context.Context, list string) (web.SavedResponse, error)
	Lists(ctx context.Context) ([]store.List, error)
	Stats(ctx context.Context) (web.StatsResponse, error)
}

// job is a job post as rendered on a card
type job struct {
	ID       string
	Title    string
	Company  string
	Location string
	Salary   string
	Source   string
	Tags     string
	URL      string
	Scraped  time.Time
}

// snapshotMsg carries controller state to the model
type snapshotMsg struct{ snap ui.Snapshot }

// loadedMsg is the result of fetching a view
type loadedMsg struct {
	path       string
	jobs       []job
	cards      []ui.Card
	lists      []store.List
	sources    []string
	total      int
	page       int
	totalPages int
	stats      *web.StatsResponse
	err        error
}

// listDeletedMsg reports DeleteList result
type listDeletedMsg struct {
	name  string
	reply ui.Reply
	err   error
}

// promptKind tells what the open prompt is for
type promptKind int

const (
	promptNone   promptKind = iota
	promptRemote            // answer goes back to a controller flow
	promptSearch
)

// Model is the bubbletea model of the client
type Model struct {
	ctx     context.Context
	backend Backend
	ctrl    *ui.Controller
	page    *page
	keys    KeyMap

	snap    ui.Snapshot
	jobs    map[string]job
	lists   []store.List
	sources []string
	stats   *web.StatsResponse
	err     error

	path       string
	query      store.FeedQuery
	savedList  string
	cursor     int
	total      int
	totalPages int
	loading    bool

	prompt      promptKind
	promptTitle string
	promptReply chan string
	input       textinput.Model
	spinner     spinner.Model

	width, height int
}

// New makes the model. The controller announces its state through the page, Run wires
// the page to the program.
func New(ctx context.Context, backend Backend, opts ui.Options) Model {
	p := &page{path: feedPath}
	userOnChange := opts.OnChange
	opts.OnChange = func(s ui.Snapshot) {
		p.emit(snapshotMsg{snap: s})
		if userOnChange != nil {
			userOnChange(s)
		}
	}

	input := textinput.New()
	input.CharLimit = 64
	input.Width = 40

	return Model{
		ctx:     ctx,
		backend: backend,
		ctrl:    ui.New(backend, p, opts),
		page:    p,
		keys:    DefaultKeyMap,
		jobs:    map[string]job{},
		path:    feedPath,
		query:   store.FeedQuery{Page: 1},
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Run starts the client and blocks until the user quits or ctx is canceled
func Run(ctx context.Context, backend Backend, opts ui.Options) error {
	m := New(ctx, backend, opts)
	defer m.ctrl.Close()

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.page.attach(prog.Send)
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal client failed: %w", err)
	}
	return nil
}

// Init loads the first view
func (m Model) Init() tea.Cmd {
	return m.load()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case snapshotMsg:
		if msg.snap.Seq < m.snap.Seq {
			return m, nil // stale, delivered out of order
		}
		wasLoading := m.snap.Scrape.Loading
		m.snap = msg.snap
		m.clampCursor()
		if m.snap.Scrape.Loading && !wasLoading {
			return m, m.spinner.Tick
		}
		return m, nil

	case spinner.TickMsg:
		if !m.snap.Scrape.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reloadMsg:
		return m, m.load()

	case loadedMsg:
		return m.applyLoaded(msg), nil

	case promptMsg:
		return m.openPrompt(promptRemote, msg.message, msg.reply), textinput.Blink

	case listDeletedMsg:
		switch {
		case msg.err != nil:
			m.ctrl.Present("Network error", ui.SeverityError)
		case !msg.reply.OK():
			m.ctrl.Present(orDefault(msg.reply.Error, "Failed to delete list"), ui.SeverityError)
		default:
			m.ctrl.Present(fmt.Sprintf(`List "%s" deleted`, msg.name), ui.SeveritySuccess)
			m.savedList = ""
			m.setPath(savedPath)
			return m.refreshSnapshot(), m.load()
		}
		return m.refreshSnapshot(), nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

// updateKeys handles key presses of the list views
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected, hasSelected := m.selected()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.ctrl.OutsideClick(false)
		return m.refreshSnapshot(), nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ctrl.CloseDropdowns()
		return m.refreshSnapshot(), nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Cards)-1 {
			m.cursor++
		}
		m.ctrl.CloseDropdowns()
		return m.refreshSnapshot(), nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.path == feedPath && m.query.Page > 1 {
			m.query.Page--
			return m, m.load()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.path == feedPath && m.query.Page < m.totalPages {
			m.query.Page++
			return m, m.load()
		}
		return m, nil

	case key.Matches(msg, m.keys.SaveMenu):
		if !hasSelected {
			return m, nil
		}
		m.ctrl.ToggleDropdown(selected.JobID)
		return m.refreshSnapshot(), nil

	case key.Matches(msg, m.keys.SaveToList):
		open, isOpen := m.ctrl.CurrentlyOpen()
		idx, _ := strconv.Atoi(msg.String())
		if !isOpen || idx < 1 || idx > len(m.lists) {
			return m, nil
		}
		listName := m.lists[idx-1].Name
		return m, m.flow(func(ctx context.Context) { m.ctrl.Save(ctx, open, listName) })

	case key.Matches(msg, m.keys.NewAndSave):
		open, isOpen := m.ctrl.CurrentlyOpen()
		if !isOpen {
			return m, nil
		}
		return m, m.flow(func(ctx context.Context) { m.ctrl.CreateAndSave(ctx, open) })

	case key.Matches(msg, m.keys.Unsave):
		if !hasSelected || !selected.Saved {
			return m, nil
		}
		listName := ""
		if m.path != feedPath {
			listName = m.savedList
		}
		return m, m.flow(func(ctx context.Context) { m.ctrl.Unsave(ctx, selected.JobID, listName) })

	case key.Matches(msg, m.keys.NewList):
		return m, m.flow(m.ctrl.CreateList)

	case key.Matches(msg, m.keys.DeleteList):
		if m.path == feedPath || m.savedList == "" || m.savedList == store.DefaultList {
			return m, nil
		}
		return m, m.deleteList(m.savedList)

	case key.Matches(msg, m.keys.Scrape):
		if m.snap.Scrape.Disabled {
			return m, nil
		}
		return m, m.flow(m.ctrl.TriggerScrape)

	case key.Matches(msg, m.keys.SwitchView):
		if m.path == feedPath {
			m.setPath(m.savedRoute())
		} else {
			m.setPath(feedPath)
		}
		return m, m.load()

	case key.Matches(msg, m.keys.NextList):
		if m.path == feedPath {
			return m, nil
		}
		m.savedList = m.nextList()
		m.setPath(m.savedRoute())
		return m, m.load()

	case key.Matches(msg, m.keys.Search):
		if m.path != feedPath {
			return m, nil
		}
		m = m.openPrompt(promptSearch, "Search:", nil)
		m.input.SetValue(m.query.Search)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Source):
		if m.path != feedPath {
			return m, nil
		}
		m.query.Source = cycle(append([]string{""}, m.sources...), m.query.Source)
		m.query.Page = 1
		return m, m.load()

	case key.Matches(msg, m.keys.Days):
		if m.path != feedPath {
			return m, nil
		}
		next := daysChoices[0]
		for i, d := range daysChoices {
			if d == m.query.Days {
				next = daysChoices[(i+1)%len(daysChoices)]
			}
		}
		m.query.Days = next
		m.query.Page = 1
		return m, m.load()
	}
	return m, nil
}

// updatePrompt handles keys while the prompt is open
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := m.input.Value()
		kind, reply := m.prompt, m.promptReply
		m = m.closePrompt()
		if kind == promptRemote {
			reply <- value
			return m, nil
		}
		m.query.Search = strings.TrimSpace(value)
		m.query.Page = 1
		return m, m.load()

	case tea.KeyEsc, tea.KeyCtrlC:
		if m.prompt == promptRemote {
			close(m.promptReply)
		}
		return m.closePrompt(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openPrompt(kind promptKind, title string, reply chan string) Model {
	if m.prompt == promptRemote {
		close(m.promptReply) // a newer flow asks, the older one gives up
	}
	m.prompt, m.promptTitle, m.promptReply = kind, title, reply
	m.input.Reset()
	m.input.Focus()
	return m
}

func (m Model) closePrompt() Model {
	m.prompt, m.promptTitle, m.promptReply = promptNone, "", nil
	m.input.Blur()
	m.input.Reset()
	return m
}

// flow runs controller flow outside of the update loop, the controller reports back with snapshots
func (m Model) flow(fn func(ctx context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		fn(ctx)
		return nil
	}
}

func (m Model) deleteList(name string) tea.Cmd {
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		reply, err := backend.DeleteList(ctx, name)
		return listDeletedMsg{name: name, reply: reply, err: err}
	}
}

// load fetches the current view with lists and stats
func (m Model) load() tea.Cmd {
	ctx, backend, path, query, list := m.ctx, m.backend, m.path, m.query, m.savedList
	return func() tea.Msg {
		res := loadedMsg{path: path}
		if path == feedPath {
			feed, err := backend.Feed(ctx, query)
			if err != nil {
				return loadedMsg{path: path, err: err}
			}
			res.sources, res.total, res.page, res.totalPages = feed.Sources, feed.Total, feed.Page, feed.TotalPages
			for _, j := range feed.Jobs {
				res.jobs = append(res.jobs, toJob(j))
				res.cards = append(res.cards, ui.Card{JobID: idString(j.ID), Saved: j.IsSaved, ListNames: j.SavedLists})
			}
			if res.lists, err = backend.Lists(ctx); err != nil {
				return loadedMsg{path: path, err: err}
			}
		} else {
			saved, err := backend.Saved(ctx, list)
			if err != nil {
				return loadedMsg{path: path, err: err}
			}
			res.lists = saved.Lists
			res.jobs, res.cards = mergeSaved(saved.Jobs)
			res.total, res.page, res.totalPages = len(res.cards), 1, 1
		}
		if stats, err := backend.Stats(ctx); err == nil {
			res.stats = &stats
		} else {
			log.Printf("[DEBUG] can't get stats, %v", err)
		}
		return res
	}
}

func (m Model) applyLoaded(msg loadedMsg) Model {
	if msg.path != m.path {
		return m // view switched while loading
	}
	if msg.err != nil {
		log.Printf("[WARN] failed to load %s, %v", msg.path, msg.err)
		m.err = msg.err
		return m
	}
	m.err = nil
	m.jobs = make(map[string]job, len(msg.jobs))
	for _, j := range msg.jobs {
		m.jobs[j.ID] = j
	}
	m.lists, m.total, m.totalPages = msg.lists, msg.total, msg.totalPages
	if msg.path == feedPath {
		m.sources, m.query.Page = msg.sources, max(msg.page, 1)
	}
	if msg.stats != nil {
		m.stats = msg.stats
	}
	m.ctrl.SetCards(msg.cards)
	m.cursor = 0
	return m.refreshSnapshot()
}

// refreshSnapshot pulls controller state right after a synchronous change
func (m Model) refreshSnapshot() Model {
	m.snap = m.ctrl.Snapshot()
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Cards) {
		m.cursor = len(m.snap.Cards) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (ui.Card, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Cards) {
		return ui.Card{}, false
	}
	return m.snap.Cards[m.cursor], true
}

func (m *Model) setPath(path string) {
	m.path = path
	m.page.setPath(path)
	m.err = nil
}

func (m Model) savedRoute() string {
	if m.savedList == "" {
		return savedPath
	}
	return savedPath + "/" + m.savedList
}

// nextList cycles saved view filter through all lists and back to "all"
func (m Model) nextList() string {
	names := []string{""}
	for _, l := range m.lists {
		names = append(names, l.Name)
	}
	return cycle(names, m.savedList)
}

// mergeSaved collapses saved rows of the same job into one card with all its lists
func mergeSaved(saved []store.SavedJob) (jobs []job, cards []ui.Card) {
	index := map[int64]int{}
	for _, s := range saved {
		if i, ok := index[s.ID]; ok {
			cards[i].ListNames = append(cards[i].ListNames, s.ListName)
			continue
		}
		index[s.ID] = len(cards)
		jobs = append(jobs, toJob(s.JobPost))
		cards = append(cards, ui.Card{JobID: idString(s.ID), Saved: true, ListNames: []string{s.ListName}})
	}
	return jobs, cards
}

func toJob(j store.JobPost) job {
	return job{ID: idString(j.ID), Title: j.Title, Company: j.Company, Location: j.Location, Salary: j.Salary,
		Source: j.SourcePlatform, Tags: j.Tags, URL: j.URL, Scraped: j.ScrapedAt}
}

func idString(id int64) string { return strconv.FormatInt(id, 10) }

// cycle returns the element after current, wrapping around
func cycle(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
