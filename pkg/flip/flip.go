// Package flip provides a two-alternative selector for hot-swapping
// interchangeable resources, such as render pipelines, at runtime.
package flip

// Flip holds two alternatives of the same type with exactly one active
// at a time. The zero value is not usable; construct with New.
type Flip[T any] struct {
	alternatives [2]T
	state        bool
}

// New returns a Flip with first as the active alternative.
func New[T any](first, second T) *Flip[T] {
	return &Flip[T]{
		alternatives: [2]T{first, second},
	}
}

// Flip toggles which alternative is active.
func (f *Flip[T]) Flip() {
	f.state = !f.state
}

// Get returns a pointer to the active alternative.
func (f *Flip[T]) Get() *T {
	if f.state {
		return &f.alternatives[1]
	}
	return &f.alternatives[0]
}
