// Package dispatch orchestrates a user send: conversation store update,
// remote agent call, outcome handling, and the single-flight guard.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	agentmodel "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/agent"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/chat"
	"github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/model/payload"
	agentsvc "github.com/Lyzr-Apps/procure-track-epic-link-jbma/internal/service/agent"
)

// ErrUnknownScreen is returned when no binding exists for a screen.
var ErrUnknownScreen = errors.New("no agent bound to screen")

const (
	failedResponseText = "Failed to get response. Please try again."
	transportErrorText = "An error occurred. Please try again."
)

// Controller owns the send flow for every agent binding. Dispatches for
// different bindings run independently; at most one is in flight per store.
type Controller struct {
	registry  agentmodel.Registry
	stores    *chat.Stores
	invoker   agentsvc.Invoker
	indicator *Indicator
	events    *Broadcaster
}

// NewController wires the dispatch layer.
func NewController(registry agentmodel.Registry, stores *chat.Stores, invoker agentsvc.Invoker, indicator *Indicator, events *Broadcaster) *Controller {
	return &Controller{
		registry:  registry,
		stores:    stores,
		invoker:   invoker,
		indicator: indicator,
		events:    events,
	}
}

// Indicator exposes the shared thinking indicator for the UI shell.
func (c *Controller) Indicator() *Indicator {
	return c.indicator
}

// Events exposes the dispatch event broadcaster.
func (c *Controller) Events() *Broadcaster {
	return c.events
}

// StoreFor resolves the conversation store bound to a screen.
func (c *Controller) StoreFor(screen agentmodel.Screen) (*chat.Store, agentmodel.Binding, error) {
	binding, ok := c.registry.ByScreen(screen)
	if !ok {
		return nil, agentmodel.Binding{}, ErrUnknownScreen
	}
	store, ok := c.stores.ByAgent(binding.ID)
	if !ok {
		return nil, agentmodel.Binding{}, ErrUnknownScreen
	}
	return store, binding, nil
}

// Send dispatches the raw input to the agent bound to the screen and blocks
// until the outcome is applied. Blank input is ignored without touching the
// store; a second send while one is in flight for the same store is a no-op
// reported as chat.ErrBusy.
func (c *Controller) Send(ctx context.Context, screen agentmodel.Screen, rawInput string) error {
	store, binding, err := c.StoreFor(screen)
	if err != nil {
		return err
	}
	return c.send(ctx, binding, store, rawInput)
}

func (c *Controller) send(ctx context.Context, binding agentmodel.Binding, store *chat.Store, rawInput string) error {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return chat.ErrBlankInput
	}

	userMsg, err := store.BeginDispatch(trimmed)
	if err != nil {
		return err
	}
	c.publish(Event{Type: EventMessageAppended, AgentID: binding.ID, Message: &userMsg})

	c.indicator.Set(binding.ID)
	c.publish(Event{Type: EventThinkingStarted, AgentID: binding.ID})

	// Release the single-flight lock and the indicator on every exit path,
	// including a panicking invoker; nothing may leave the UI stuck thinking.
	defer func() {
		store.EndDispatch()
		c.indicator.Clear()
		c.publish(Event{Type: EventThinkingStopped, AgentID: binding.ID})
	}()

	reply := c.settle(ctx, trimmed, binding)
	appended := store.Append(reply)
	c.publish(Event{Type: EventMessageAppended, AgentID: binding.ID, Message: &appended})
	return nil
}

// settle performs the remote call and maps its outcome to the assistant
// message that will be appended. It never panics outward.
func (c *Controller) settle(ctx context.Context, query string, binding agentmodel.Binding) chat.Message {
	result, err := c.safeInvoke(ctx, query, binding.ID)
	if err != nil {
		log.Printf("[dispatch] agent %s transport failure: %v", binding.ID, err)
		return chat.Message{Role: chat.RoleAssistant, Content: transportErrorText}
	}

	if result.Success && result.Response != nil && result.Response.Result != nil {
		data := result.Response.Result
		return chat.Message{
			Role:    chat.RoleAssistant,
			Content: payload.DisplaySummary(data),
			Payload: data,
		}
	}

	content := result.Error
	if content == "" {
		content = failedResponseText
	}
	log.Printf("[dispatch] agent %s reported failure: %s", binding.ID, content)
	return chat.Message{Role: chat.RoleAssistant, Content: content}
}

func (c *Controller) safeInvoke(ctx context.Context, query, agentID string) (result agentsvc.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent call panicked: %v", r)
		}
	}()
	return c.invoker.Invoke(ctx, query, agentID)
}

func (c *Controller) publish(event Event) {
	if c.events != nil {
		c.events.Publish(event)
	}
}
