package app

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/promptstock/promptstock-tui/collections"
	"github.com/promptstock/promptstock-tui/msg"
)

// programNotifier forwards collaborator notifications into the bubbletea
// event loop. Notifications raised before the program handle arrives
// (only possible during startup) are dropped.
type programNotifier struct {
	mu sync.Mutex
	p  *tea.Program
}

func (n *programNotifier) SetProgram(p *tea.Program) {
	n.mu.Lock()
	n.p = p
	n.mu.Unlock()
}

func (n *programNotifier) Notify(text string, level collections.Level) {
	n.mu.Lock()
	p := n.p
	n.mu.Unlock()
	if p == nil {
		return
	}
	toastLevel := msg.ToastSuccess
	if level == collections.LevelError {
		toastLevel = msg.ToastError
	}
	p.Send(msg.Toast{Text: text, Level: toastLevel})
}
