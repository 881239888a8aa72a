package visitor

// Option customizes a traversal
type Option func(w *walker)

// Options represents traversal options
type Options []Option

// Apply applies options
func (o Options) Apply(w *walker) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(w)
	}
}

// WithScalars makes the walk deliver enter and leave events for scalar
// leaves (numbers, strings, booleans) in addition to composite nodes.
// By default scalar leaves are silent.
func WithScalars() Option {
	return func(w *walker) {
		w.scalars = true
	}
}
