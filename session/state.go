package session

import (
	"slices"
	"sync"

	"github.com/lifefellowship/fellowship-client/model"
)

// State is the authentication state published to the presentation layer.
// Loading=true with a nil User is the initial state before the first
// validation completes, and reappears while a lifecycle operation is in
// flight.
type State struct {
	Loading bool
	User    *model.UserAccount
}

// Authenticated reports whether a signed-in user is present and no operation
// is in flight.
func (s State) Authenticated() bool {
	return !s.Loading && s.User != nil
}

// publisher holds the current state and fans snapshots out to subscribers.
// Every mutation is a single atomic swap, so observers never see a
// half-updated state.
type publisher struct {
	mu    sync.RWMutex
	state State
	subs  []chan State
}

func (p *publisher) current() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *publisher) set(state State) {
	p.mu.Lock()
	p.state = state
	subs := slices.Clone(p.subs)
	p.mu.Unlock()

	for _, ch := range subs {
		// Latest-wins delivery: a slow subscriber drops intermediate
		// snapshots, never blocks the manager.
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}

// subscribe registers a new observer and returns its channel plus a cancel
// function. The channel immediately carries the current state.
func (p *publisher) subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	p.mu.Lock()
	p.subs = append(p.subs, ch)
	ch <- p.state
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subs {
			if sub == ch {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				return
			}
		}
	}

	return ch, cancel
}
