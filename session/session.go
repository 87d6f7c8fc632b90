// Package session owns the lifecycle of one outstanding generation call.
//
// The state machine is Idle → Pending → Fulfilled, with failures dropping
// straight back to Idle. Failed is not a resting state: a failed attempt
// is terminal for that attempt and the controller is immediately ready
// for a new submission.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/promptstock/promptstock-tui/client"
)

// State of the generation session.
type State int

const (
	Idle State = iota
	Pending
	Fulfilled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	default:
		return "unknown"
	}
}

// fallbackError is shown when the collaborator fails without a message.
const fallbackError = "Generation failed. Please try again."

// Controller guards a single in-flight generation call and holds the
// current result set. The mutex exists because bubbletea commands run
// off the Update goroutine; semantically there is still at most one
// submission at a time.
type Controller struct {
	mu     sync.Mutex
	state  State
	result *client.Generation
}

// NewController returns an idle controller with no result.
func NewController() *Controller {
	return &Controller{}
}

// Begin transitions to Pending and reports whether the submission was
// accepted. A submission while another call is in flight is rejected:
// the state stays Pending and no second collaborator call may be issued.
//
// Begin is legal from Idle and from Fulfilled — a fulfilled result
// persists until the next submission replaces it, and it stays visible
// for the whole Pending phase of that next submission.
func (c *Controller) Begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Pending {
		return false
	}
	c.state = Pending
	return true
}

// Fulfill stores the result and transitions to Fulfilled, replacing any
// previously fulfilled result. Returns the user-facing success text.
func (c *Controller) Fulfill(g client.Generation) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Fulfilled
	c.result = &g
	return fmt.Sprintf("Generated %d prompts successfully!", len(g.Prompts))
}

// Fail drops back to Idle, keeping whatever result was fulfilled before
// the failed attempt. Returns the user-facing error text: the
// collaborator's message when it has one, a generic fallback otherwise.
func (c *Controller) Fail(err error) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Idle
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallbackError
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns a copy of the current result set, if any. Once
// fulfilled, results are immutable; callers may read them freely.
func (c *Controller) Result() (client.Generation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return client.Generation{}, false
	}
	return *c.result, true
}
