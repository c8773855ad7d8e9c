package chat

// Stores is the fixed set of per-binding conversation stores, created empty
// at startup. Stores are independent; no operation spans more than one.
type Stores struct {
	order   []string
	byAgent map[string]*Store
}

// NewStores provisions one empty store per agent ID.
func NewStores(agentIDs []string) *Stores {
	byAgent := make(map[string]*Store, len(agentIDs))
	for _, id := range agentIDs {
		byAgent[id] = NewStore(id)
	}
	return &Stores{order: append([]string(nil), agentIDs...), byAgent: byAgent}
}

// ByAgent resolves the store owned by an agent binding.
func (s *Stores) ByAgent(agentID string) (*Store, bool) {
	store, ok := s.byAgent[agentID]
	return store, ok
}

// All returns the stores in seed order.
func (s *Stores) All() []*Store {
	out := make([]*Store, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byAgent[id])
	}
	return out
}
