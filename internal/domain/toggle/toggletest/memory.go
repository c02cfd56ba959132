// Package toggletest provides an in-memory relation for service tests.
package toggletest

import (
	"context"
	"sync"

	"campus-portal-go/internal/domain/toggle"
)

type Relations struct {
	mu        sync.Mutex
	objects   map[string]bool
	relations map[toggle.Key]bool
}

func NewRelations() *Relations {
	return &Relations{
		objects:   make(map[string]bool),
		relations: make(map[toggle.Key]bool),
	}
}

// AddObject registers an object that subjects can join.
func (r *Relations) AddObject(objectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects[objectID] = true
}

// RemoveObject drops the object and every relation row pointing at it. It
// returns how many rows were removed.
func (r *Relations) RemoveObject(objectID string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.objects, objectID)
	var removed int64
	for key := range r.relations {
		if key.ObjectID == objectID {
			delete(r.relations, key)
			removed++
		}
	}
	return removed
}

// Count returns the number of subjects joined to objectID.
func (r *Relations) Count(objectID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for key := range r.relations {
		if key.ObjectID == objectID {
			count++
		}
	}
	return count
}

func (r *Relations) Transaction(ctx context.Context, fn func(toggle.RelationRepository) error) error {
	return fn(r)
}

func (r *Relations) ObjectExists(ctx context.Context, objectID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.objects[objectID], nil
}

func (r *Relations) Exists(ctx context.Context, key toggle.Key) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.relations[key], nil
}

func (r *Relations) Insert(ctx context.Context, key toggle.Key) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.relations[key] {
		return false, nil
	}
	r.relations[key] = true
	return true, nil
}

func (r *Relations) Delete(ctx context.Context, key toggle.Key) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.relations[key] {
		return false, nil
	}
	delete(r.relations, key)
	return true, nil
}

func (r *Relations) CountByObjects(ctx context.Context, objectIDs []string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(objectIDs))
	for _, id := range objectIDs {
		wanted[id] = true
	}
	result := make(map[string]int64, len(objectIDs))
	for key := range r.relations {
		if wanted[key.ObjectID] {
			result[key.ObjectID]++
		}
	}
	return result, nil
}

func (r *Relations) ObjectsOfSubject(ctx context.Context, subjectID string, objectIDs []string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]bool, len(objectIDs))
	for _, id := range objectIDs {
		if r.relations[toggle.Key{SubjectID: subjectID, ObjectID: id}] {
			result[id] = true
		}
	}
	return result, nil
}
