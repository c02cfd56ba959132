package toggle

import "context"

// RelationRepository stores one membership-like relation. Insert reports
// false when a uniqueness constraint already held the pair.
type RelationRepository interface {
	Transaction(ctx context.Context, fn func(RelationRepository) error) error
	ObjectExists(ctx context.Context, objectID string) (bool, error)
	Exists(ctx context.Context, key Key) (bool, error)
	Insert(ctx context.Context, key Key) (bool, error)
	Delete(ctx context.Context, key Key) (bool, error)
}

// FlagRepository overwrites a binary or tri-state attribute. An empty
// ownerID skips the ownership predicate. SetFlag reports false when no row
// matched.
type FlagRepository[V any] interface {
	SetFlag(ctx context.Context, ownerID, entityID string, value V) (bool, error)
}

// RelationIndex answers the read-side questions list views need about a
// relation: how many subjects each object has, and which objects a subject
// holds.
type RelationIndex interface {
	CountByObjects(ctx context.Context, objectIDs []string) (map[string]int64, error)
	ObjectsOfSubject(ctx context.Context, subjectID string, objectIDs []string) (map[string]bool, error)
}

// Relations is a relation that can both be toggled and indexed.
type Relations interface {
	RelationRepository
	RelationIndex
}
