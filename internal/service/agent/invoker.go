// Package agent provides the remote agent call behind the chat subsystem.
// The dispatch controller only sees the Invoker interface; transport, auth,
// and timeout policy live behind it.
package agent

import "context"

// InvokeResponse wraps the structured result an agent returned.
type InvokeResponse struct {
	Result map[string]any `json:"result,omitempty"`
}

// Result is the settled outcome of an agent call. A transport failure is
// reported through the error return instead, and both paths must be handled
// by the caller.
type Result struct {
	Success  bool            `json:"success"`
	Response *InvokeResponse `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Invoker performs a single agent call. Implementations do not retry; each
// query is sent independently with no prior turns attached.
type Invoker interface {
	Invoke(ctx context.Context, query, agentID string) (Result, error)
}

// StaticInvoker answers every query with a fixed payload per agent. It backs
// offline runs where neither gateway nor model credentials are configured.
type StaticInvoker struct {
	payloads map[string]map[string]any
}

// NewStaticInvoker builds a static invoker from agent ID to canned payload.
func NewStaticInvoker(payloads map[string]map[string]any) *StaticInvoker {
	return &StaticInvoker{payloads: payloads}
}

// Invoke returns the canned payload for the agent, or a reported failure
// when none is registered.
func (s *StaticInvoker) Invoke(_ context.Context, _ string, agentID string) (Result, error) {
	data, ok := s.payloads[agentID]
	if !ok {
		return Result{Success: false, Error: "no canned response for agent"}, nil
	}
	return Result{Success: true, Response: &InvokeResponse{Result: data}}, nil
}
