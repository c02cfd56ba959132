package toggle

// Key identifies a relation row. Existence of the pair is the state.
type Key struct {
	SubjectID string
	ObjectID  string
}

type State string

const (
	StateJoined State = "joined"
	StateLeft   State = "left"
)

// Result is the server-authoritative outcome of a relation toggle.
// ConflictIgnored is set when a concurrent toggler inserted the same pair
// first; the caller still observes StateJoined.
type Result struct {
	Key             Key
	State           State
	ConflictIgnored bool
}

// Flag is the outcome of a flag overwrite.
type Flag[V any] struct {
	EntityID string
	Value    V
}
