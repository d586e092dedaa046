package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings of the job feed terminal client
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding

	SaveMenu   key.Binding // toggle save dropdown of the selected job
	SaveToList key.Binding // digits pick a list in the open dropdown
	NewAndSave key.Binding // create a list and save the selected job into it
	Unsave     key.Binding
	NewList    key.Binding
	DeleteList key.Binding
	Scrape     key.Binding

	SwitchView key.Binding // feed <-> saved
	NextList   key.Binding
	Search     key.Binding
	Source     key.Binding
	Days       key.Binding

	Close key.Binding
	Quit  key.Binding
}

// DefaultKeyMap is the built-in key binding set
var DefaultKeyMap = KeyMap{
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	PrevPage:   key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev page")),
	NextPage:   key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next page")),
	SaveMenu:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	SaveToList: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick list")),
	NewAndSave: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new list + save")),
	Unsave:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unsave")),
	NewList:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new list")),
	DeleteList: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete list")),
	Scrape:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "scrape")),
	SwitchView: key.NewBinding(key.WithKeys("v", "tab"), key.WithHelp("v", "feed/saved")),
	NextList:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "next list")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Source:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "source")),
	Days:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "days")),
	Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp returns bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SaveMenu, k.Unsave, k.NewList, k.Scrape, k.SwitchView, k.Search, k.Source, k.Days, k.Quit}
}
