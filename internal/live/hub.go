// Package live fans interviewer replies and termination reports out to
// duplex subscribers, keyed by session id.
package live

import (
	"encoding/json"
	"sync"
)

// Event is one frame pushed to a session's subscribers.
type Event struct {
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	Analysis  any    `json:"analysis,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

const (
	EventQuestion = "ai_question"
	EventEnded    = "interview_ended"
)

type Subscriber struct {
	C chan []byte

	hub       *Hub
	sessionID string
	once      sync.Once
}

// Close detaches the subscriber and closes its channel. Safe to call
// more than once.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.sessionID, s)
	})
}

type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe(sessionID string) *Subscriber {
	sub := &Subscriber{
		C:         make(chan []byte, 16),
		hub:       h,
		sessionID: sessionID,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[*Subscriber]struct{})
	}
	h.subs[sessionID][sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(sessionID string, sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[sessionID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			close(sub.C)
		}
		if len(set) == 0 {
			delete(h.subs, sessionID)
		}
	}
}

// Publish delivers ev to every subscriber of the session. No subscribers is
// a no-op; a subscriber whose buffer is full misses the frame rather than
// blocking the interview.
func (h *Hub) Publish(sessionID string, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[sessionID] {
		select {
		case sub.C <- payload:
		default:
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.subs {
		n += len(set)
	}
	return n
}
