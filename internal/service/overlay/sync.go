// Package overlay keeps conversation stores in step with the external
// sample-data toggle.
package overlay

import (
	"log"

	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/dispatch"
)

// SeedPrompt is the canned user turn shown above a seeded sample response.
const SeedPrompt = "Show me the current procurement overview"

const seedFallbackText = "Sample response loaded"

// Action is the store mutation a toggle observation calls for.
type Action int

const (
	ActionNone Action = iota
	ActionSeed
	ActionClear
)

// Transition is the pure per-binding state machine over the sample toggle.
// Repeated observations of the same value are no-ops; seeding only happens
// on a false-to-true edge into an empty store with a sample available.
func Transition(prevToggle, newToggle, storeEmpty, hasSample bool) Action {
	switch {
	case newToggle && !prevToggle && storeEmpty && hasSample:
		return ActionSeed
	case !newToggle && prevToggle:
		return ActionClear
	default:
		return ActionNone
	}
}

// Synchronizer applies toggle transitions to the per-binding stores.
type Synchronizer struct {
	registry agentmodel.Registry
	stores   *chat.Stores
	events   *dispatch.Broadcaster
}

// NewSynchronizer wires the overlay layer. events may be nil.
func NewSynchronizer(registry agentmodel.Registry, stores *chat.Stores, events *dispatch.Broadcaster) *Synchronizer {
	return &Synchronizer{registry: registry, stores: stores, events: events}
}

// Observe records the current toggle value for every binding. Each store
// tracks its own previous value, so a binding opened after the toggle
// flipped still seeds correctly.
func (s *Synchronizer) Observe(show bool) {
	for _, binding := range s.registry.List() {
		s.observeBinding(binding, show)
	}
}

func (s *Synchronizer) observeBinding(binding agentmodel.Binding, show bool) {
	store, ok := s.stores.ByAgent(binding.ID)
	if !ok {
		return
	}

	prev, seeded := store.SampleState()
	action := Transition(prev, show, store.Len() == 0, binding.Sample != nil)

	switch action {
	case ActionSeed:
		content, _ := binding.Sample["summary"].(string)
		if content == "" {
			content = seedFallbackText
		}
		store.Append(chat.Message{Role: chat.RoleUser, Content: SeedPrompt})
		assistant := store.Append(chat.Message{
			Role:    chat.RoleAssistant,
			Content: content,
			Payload: binding.Sample,
		})
		seeded = true
		log.Printf("[overlay] seeded sample conversation for agent %s", binding.ID)
		s.publish(dispatch.Event{Type: dispatch.EventMessageAppended, AgentID: binding.ID, Message: &assistant})
	case ActionClear:
		store.Clear()
		seeded = false
		log.Printf("[overlay] cleared conversation for agent %s", binding.ID)
		s.publish(dispatch.Event{Type: dispatch.EventConversationCleared, AgentID: binding.ID})
	}

	store.SetSampleState(show, seeded)
}

func (s *Synchronizer) publish(event dispatch.Event) {
	if s.events != nil {
		s.events.Publish(event)
	}
}
