package dispatch

import (
	"sync"

	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
)

// EventType labels a dispatch lifecycle event.
type EventType string

const (
	EventMessageAppended     EventType = "message_appended"
	EventThinkingStarted     EventType = "thinking_started"
	EventThinkingStopped     EventType = "thinking_stopped"
	EventConversationCleared EventType = "conversation_cleared"
)

// Event is one observable change in a conversation store.
type Event struct {
	Type    EventType     `json:"type"`
	AgentID string        `json:"agentId"`
	Message *chat.Message `json:"message,omitempty"`
}

const subscriberBuffer = 32

// Broadcaster fans dispatch events out to subscribers (the websocket feed,
// the TUI refresh loop). Slow subscribers drop events instead of blocking a
// dispatch.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called to
// release the channel.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the event to every live subscriber.
func (b *Broadcaster) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
