package synccache

import "sync"

type MutationState string

const (
	StateIdle       MutationState = "idle"
	StatePending    MutationState = "pending"
	StateCommitted  MutationState = "committed"
	StateRolledBack MutationState = "rolled_back"
)

// Mutation changes the item stored under Key. Apply must not modify its
// argument in place.
type Mutation[T any] struct {
	Key   string
	Apply func(T) T
}

// Pending is the handle of one in-flight mutation.
type Pending[T any] struct {
	ID         uint64
	Key        string
	prior      T
	optimistic T

	mu    sync.Mutex
	state MutationState
}

func (p *Pending[T]) State() MutationState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Prior is the item as it was before the mutation.
func (p *Pending[T]) Prior() T {
	return p.prior
}

func (p *Pending[T]) Optimistic() T {
	return p.optimistic
}

func (p *Pending[T]) setState(state MutationState) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}
