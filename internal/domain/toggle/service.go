package toggle

import (
	"context"
	"fmt"
	"strings"
)

type RelationStore struct {
	repo     RelationRepository
	notFound error
}

// NewRelationStore builds a toggle over repo. notFound is returned when the
// object does not exist; it should wrap ErrNotFound.
func NewRelationStore(repo RelationRepository, notFound error) *RelationStore {
	if notFound == nil {
		notFound = ErrNotFound
	}
	return &RelationStore{repo: repo, notFound: notFound}
}

// Toggle flips the relation: an existing pair is deleted (left), a missing
// one is inserted (joined). Concurrent callers are not serialized; the
// unique constraint absorbs a double insert and the next toggle flips back.
func (s *RelationStore) Toggle(ctx context.Context, key Key) (Result, error) {
	key = Key{SubjectID: strings.TrimSpace(key.SubjectID), ObjectID: strings.TrimSpace(key.ObjectID)}
	if key.SubjectID == "" || key.ObjectID == "" {
		return Result{}, ErrInvalidKey
	}

	result := Result{Key: key}
	err := s.repo.Transaction(ctx, func(tx RelationRepository) error {
		exists, err := tx.Exists(ctx, key)
		if err != nil {
			return fmt.Errorf("lookup relation: %w", err)
		}
		if exists {
			if _, err := tx.Delete(ctx, key); err != nil {
				return fmt.Errorf("delete relation: %w", err)
			}
			result.State = StateLeft
			return nil
		}

		objectExists, err := tx.ObjectExists(ctx, key.ObjectID)
		if err != nil {
			return fmt.Errorf("lookup object: %w", err)
		}
		if !objectExists {
			return s.notFound
		}

		inserted, err := tx.Insert(ctx, key)
		if err != nil {
			return fmt.Errorf("insert relation: %w", err)
		}
		result.State = StateJoined
		result.ConflictIgnored = !inserted
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

type FlagStore[V any] struct {
	repo     FlagRepository[V]
	notFound error
}

func NewFlagStore[V any](repo FlagRepository[V], notFound error) *FlagStore[V] {
	if notFound == nil {
		notFound = ErrNotFound
	}
	return &FlagStore[V]{repo: repo, notFound: notFound}
}

// SetFlag overwrites the flag on entityID. With a non-empty ownerID the row
// must belong to that owner, otherwise the store reports not found.
func (s *FlagStore[V]) SetFlag(ctx context.Context, ownerID, entityID string, value V) (Flag[V], error) {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return Flag[V]{}, s.notFound
	}

	matched, err := s.repo.SetFlag(ctx, strings.TrimSpace(ownerID), entityID, value)
	if err != nil {
		return Flag[V]{}, err
	}
	if !matched {
		return Flag[V]{}, s.notFound
	}

	return Flag[V]{EntityID: entityID, Value: value}, nil
}
