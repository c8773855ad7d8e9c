package agent

// Registry exposes binding lookups to the dispatch layer and HTTP handlers.
type Registry interface {
	List() []Binding
	ByScreen(screen Screen) (Binding, bool)
	ByID(id string) (Binding, bool)
}

// MemoryRegistry implements Registry over an in-memory slice.
type MemoryRegistry struct {
	items []Binding
}

// NewMemoryRegistry returns a MemoryRegistry preloaded with the supplied bindings.
func NewMemoryRegistry(items []Binding) *MemoryRegistry {
	return &MemoryRegistry{items: append([]Binding(nil), items...)}
}

// List returns the configured bindings in seed order.
func (r *MemoryRegistry) List() []Binding {
	return append([]Binding(nil), r.items...)
}

// ByScreen resolves the binding for a screen.
func (r *MemoryRegistry) ByScreen(screen Screen) (Binding, bool) {
	for _, item := range r.items {
		if item.Screen == screen {
			return item, true
		}
	}
	return Binding{}, false
}

// ByID looks up a binding by agent identifier.
func (r *MemoryRegistry) ByID(id string) (Binding, bool) {
	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}
	return Binding{}, false
}
