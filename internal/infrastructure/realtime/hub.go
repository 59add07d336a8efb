package realtime

import (
	"encoding/json"
	"sync"
)

// Event is a single realtime frame pushed to UI sessions.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Session is the minimal contract the hub needs from a connected UI session.
// *Connection satisfies it; tests may plug in fakes.
type Session interface {
	Send(payload []byte) error
}

// Hub is the fan-out registry. It tracks the sessions of each account and
// broadcasts events to all of an account's currently-connected sessions.
// Delivery is at-most-once and best-effort: sessions attached after a publish
// never see it, and a failed send drops that session from the registry.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[string]Session // accountID -> sessionID -> session
}

// NewHub constructs an initialized Hub.
func NewHub() *Hub {
	return &Hub{sessions: make(map[string]map[string]Session)}
}

// Attach registers a session for the account and returns nothing; the caller
// keeps the sessionID for Detach.
func (h *Hub) Attach(accountID, sessionID string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.sessions[accountID]
	if set == nil {
		set = make(map[string]Session)
		h.sessions[accountID] = set
	}
	set[sessionID] = s
}

// Detach removes a session if it is still tracked.
func (h *Hub) Detach(accountID, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.sessions[accountID]
	if set == nil {
		return
	}
	delete(set, sessionID)
	if len(set) == 0 {
		delete(h.sessions, accountID)
	}
}

// Publish marshals the event once and delivers it to every session of the
// account. Sessions whose send fails are dropped so broken sockets do not
// accumulate. Returns the number of sessions reached.
func (h *Hub) Publish(accountID string, ev Event) int {
	payload, err := json.Marshal(ev)
	if err != nil {
		return 0
	}

	h.mu.RLock()
	set := h.sessions[accountID]
	targets := make(map[string]Session, len(set))
	for id, s := range set {
		targets[id] = s
	}
	h.mu.RUnlock()

	delivered := 0
	var failed []string
	for id, s := range targets {
		if err := s.Send(payload); err != nil {
			failed = append(failed, id)
			continue
		}
		delivered++
	}
	for _, id := range failed {
		h.Detach(accountID, id)
	}
	return delivered
}

// Sessions reports how many sessions the account currently has attached.
func (h *Hub) Sessions(accountID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[accountID])
}
