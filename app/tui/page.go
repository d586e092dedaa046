package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

var errPromptCanceled = errors.New("prompt canceled")

// reloadMsg asks the model to re-fetch the current view
type reloadMsg struct{}

// promptMsg asks the model to open the text prompt, the answer goes to reply.
// reply is closed if the user cancels.
type promptMsg struct {
	message string
	reply   chan string
}

// page implements ui.Page on top of a running tea program. Messages are sent
// asynchronously as the controller may call it from inside Update.
type page struct {
	mu   sync.Mutex
	path string
	send func(tea.Msg)
}

// Path returns the current route
func (p *page) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

func (p *page) setPath(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.path = path
}

// attach sets the message sink, typically tea.Program.Send
func (p *page) attach(send func(tea.Msg)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send = send
}

// Prompt opens the prompt in the model and blocks until the user answers or ctx is done
func (p *page) Prompt(ctx context.Context, message string) (string, error) {
	reply := make(chan string, 1)
	p.emit(promptMsg{message: message, reply: reply})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case answer, ok := <-reply:
		if !ok {
			return "", errPromptCanceled
		}
		return answer, nil
	}
}

// Reload re-fetches the current view
func (p *page) Reload() { p.emit(reloadMsg{}) }

func (p *page) emit(msg tea.Msg) {
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()
	if send != nil {
		go send(msg)
	}
}
