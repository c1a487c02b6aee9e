package extract

// Registry holds strategies by kind.
type Registry struct {
	strategies map[Kind]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[Kind]Strategy)}
}

// Register adds a strategy. Panics on duplicate kind.
func (r *Registry) Register(s Strategy) {
	if _, ok := r.strategies[s.Kind()]; ok {
		panic("duplicate extraction strategy: " + string(s.Kind()))
	}
	r.strategies[s.Kind()] = s
}

// Get returns the strategy for kind, or nil.
func (r *Registry) Get(kind Kind) Strategy {
	return r.strategies[kind]
}

// DefaultRegistry returns a registry with the three built-in strategies.
func DefaultRegistry(opts Options, open Opener) *Registry {
	r := NewRegistry()
	r.Register(NewStructured(opts, open))
	r.Register(NewTextLayout(opts, open))
	r.Register(NewStream(opts, open))
	return r
}
