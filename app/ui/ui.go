// Package ui implements the interaction controller of the job feed client.
//
// Controller owns the presentation state of a page: toast, the single open save dropdown,
// per-card saved state and the scrape button. User actions run as flows calling the api
// and patching the state, every change is announced to the renderer with an immutable Snapshot.
// Delayed effects (toast hide, card removal, reload) are cancellable tasks owned by the
// controller and stopped by Close.
package ui

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Default delays of the delayed effects
const (
	DefaultToastDuration     = 2800 * time.Millisecond
	DefaultRemoveDelay       = 220 * time.Millisecond
	DefaultReloadDelay       = 500 * time.Millisecond
	DefaultScrapeReloadDelay = 25000 * time.Millisecond
)

// Reply is the outcome of an api call which reached the server
type Reply struct {
	Status int
	Error  string // server message from {"error": "..."} body, may be empty
}

// OK reports 2xx status
func (r Reply) OK() bool { return r.Status >= 200 && r.Status < 300 }

// API is the backend used by flows. A returned error means transport failure,
// any server response is a Reply.
type API interface {
	Save(ctx context.Context, jobID, listName string) (Reply, error)
	Unsave(ctx context.Context, jobID, listName string) (Reply, error)
	CreateList(ctx context.Context, name string) (Reply, error)
	Scrape(ctx context.Context) (Reply, error)
}

// Page is the host of the controller
type Page interface {
	// Path returns current route, "/saved..." is the saved-items view
	Path() string
	// Prompt asks user for a line of text
	Prompt(ctx context.Context, message string) (string, error)
	// Reload re-fetches the current view
	Reload()
}

// Options defines controller's delays and behavior, zero values replaced by defaults
type Options struct {
	ToastDuration       time.Duration
	RemoveDelay         time.Duration
	ReloadDelay         time.Duration
	ScrapeReloadDelay   time.Duration
	ReportUnsaveFailure bool           // show error toast on non-ok unsave response
	OnChange            func(Snapshot) // called after every state change, outside of controller's lock
}

// ScrapeButton is the state of the scrape trigger
type ScrapeButton struct {
	Loading  bool
	Disabled bool
}

// Snapshot is an immutable copy of the controller state
type Snapshot struct {
	Seq          uint64 // increases with every change, renderers drop snapshots older than the last one seen
	Toast        Toast
	OpenDropdown string // job id of the open dropdown, empty if none
	Cards        []Card
	Scrape       ScrapeButton
}

// Controller is the interaction controller, safe for concurrent use
type Controller struct {
	api   API
	page  Page
	opts  Options
	tasks *tasks

	mu        sync.Mutex
	seq       uint64
	toast     Toast
	dropdowns Dropdowns
	cards     []Card
	scrape    ScrapeButton
}

// New makes controller for the page
func New(api API, page Page, opts Options) *Controller {
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = DefaultToastDuration
	}
	if opts.RemoveDelay <= 0 {
		opts.RemoveDelay = DefaultRemoveDelay
	}
	if opts.ReloadDelay <= 0 {
		opts.ReloadDelay = DefaultReloadDelay
	}
	if opts.ScrapeReloadDelay <= 0 {
		opts.ScrapeReloadDelay = DefaultScrapeReloadDelay
	}
	return &Controller{api: api, page: page, opts: opts, tasks: newTasks()}
}

// Close cancels all pending delayed effects
func (c *Controller) Close() {
	c.tasks.Close()
}

// Snapshot returns current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// SetCards replaces cards of the page, used by the renderer after (re)loading a view.
// Open dropdown is closed.
func (c *Controller) SetCards(cards []Card) {
	c.update(func() {
		c.cards = make([]Card, 0, len(cards))
		for _, card := range cards {
			card.ListNames = slices.Clone(card.ListNames)
			c.cards = append(c.cards, card)
		}
		c.dropdowns.CloseAll()
	})
}

// Card returns card by job id
func (c *Controller) Card(jobID string) (Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if card := c.card(jobID); card != nil {
		return card.clone(), true
	}
	return Card{}, false
}

// update applies fn under the lock and announces the new state
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	c.seq++
	snap := c.snapshot()
	c.mu.Unlock()
	if c.opts.OnChange != nil {
		c.opts.OnChange(snap)
	}
}

// snapshot copies state, must be called under the lock
func (c *Controller) snapshot() Snapshot {
	res := Snapshot{Seq: c.seq, Toast: c.toast, Scrape: c.scrape, Cards: make([]Card, 0, len(c.cards))}
	res.OpenDropdown, _ = c.dropdowns.CurrentlyOpen()
	for _, card := range c.cards {
		res.Cards = append(res.Cards, card.clone())
	}
	return res
}

// card finds card by job id, must be called under the lock
func (c *Controller) card(jobID string) *Card {
	for i := range c.cards {
		if c.cards[i].JobID == jobID {
			return &c.cards[i]
		}
	}
	return nil
}

// removeCard drops card by job id, must be called under the lock
func (c *Controller) removeCard(jobID string) {
	c.cards = slices.DeleteFunc(c.cards, func(card Card) bool { return card.JobID == jobID })
}
