package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrBusy is returned when a dispatch is already in flight for a store.
	ErrBusy = errors.New("dispatch already in flight")
	// ErrBlankInput is returned when a send carries only whitespace.
	ErrBlankInput = errors.New("input is blank")
)

// Store holds the conversation bound to a single agent. One store exists per
// agent binding for the lifetime of the process; it is never shared across
// bindings and never persisted.
//
// awaitingResponse doubles as the single-flight lock: BeginDispatch refuses
// to start a second send while one is unsettled.
type Store struct {
	mu           sync.RWMutex
	agentID      string
	messages     []Message
	pendingInput string
	awaiting     bool
	sampleSeeded bool
	prevSample   bool
}

// NewStore creates an empty conversation store for the given agent.
func NewStore(agentID string) *Store {
	return &Store{
		agentID:  agentID,
		messages: make([]Message, 0, 16),
	}
}

// AgentID reports which agent binding owns this store.
func (s *Store) AgentID() string {
	return s.agentID
}

// Messages returns a copy of the ordered message log.
func (s *Store) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// Len reports the number of messages without copying.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Awaiting reports whether a dispatch is in flight for this store.
func (s *Store) Awaiting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.awaiting
}

// PendingInput returns the current input buffer.
func (s *Store) PendingInput() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pendingInput
}

// SetPendingInput replaces the input buffer.
func (s *Store) SetPendingInput(text string) {
	s.mu.Lock()
	s.pendingInput = text
	s.mu.Unlock()
}

// Append adds a message to the end of the log, assigning ID and timestamp
// when absent. Messages are never reordered or deduplicated afterwards.
func (s *Store) Append(msg Message) Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	return msg
}

// BeginDispatch atomically performs the synchronous half of a send: it
// verifies no dispatch is in flight, appends the user message, clears the
// input buffer, and raises the awaiting flag. ErrBusy keeps the log
// untouched when a dispatch is already running.
func (s *Store) BeginDispatch(content string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.awaiting {
		return Message{}, ErrBusy
	}

	msg := Message{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)
	s.pendingInput = ""
	s.awaiting = true
	return msg, nil
}

// EndDispatch lowers the awaiting flag. Safe to call on every settlement
// path, including after a failed BeginDispatch has never raised the flag.
func (s *Store) EndDispatch() {
	s.mu.Lock()
	s.awaiting = false
	s.mu.Unlock()
}

// Clear drops every message and resets the sample-seed marker. The in-flight
// flag is left alone: a running dispatch still settles into this store.
func (s *Store) Clear() {
	s.mu.Lock()
	s.messages = s.messages[:0]
	s.sampleSeeded = false
	s.mu.Unlock()
}

// SampleState returns the previous sample-toggle value and whether the seed
// was already applied during the current sample-on interval.
func (s *Store) SampleState() (prevToggle, seeded bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prevSample, s.sampleSeeded
}

// SetSampleState records the observed toggle value and seed marker. Each
// store tracks its own previous value so bindings that are not on screen
// still see the transition later.
func (s *Store) SetSampleState(prevToggle, seeded bool) {
	s.mu.Lock()
	s.prevSample = prevToggle
	s.sampleSeeded = seeded
	s.mu.Unlock()
}
