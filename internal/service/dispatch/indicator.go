package dispatch

import "sync"

// Indicator is the single shared "which agent is thinking" value consumed by
// the UI shell. Last writer wins; every dispatch clears it on settlement.
type Indicator struct {
	mu      sync.RWMutex
	current string
}

// NewIndicator creates a cleared indicator.
func NewIndicator() *Indicator {
	return &Indicator{}
}

// Set publishes the active agent ID.
func (i *Indicator) Set(agentID string) {
	i.mu.Lock()
	i.current = agentID
	i.mu.Unlock()
}

// Clear resets the indicator.
func (i *Indicator) Clear() {
	i.Set("")
}

// Current returns the active agent ID, or "" when nothing is in flight.
func (i *Indicator) Current() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.current
}
