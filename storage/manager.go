package storage

import (
	"math"
	"slices"

	"taskmgr/task"
)

// Record is what a Manager can hold: something with an identifier the
// manager assigns, which the line codec can encode. Records are compared by
// identity, so in practice T is a pointer type.
type Record interface {
	comparable
	GetID() uint32
	SetID(id uint32)
	Encode() string
}

// Manager is an in-memory, insertion-ordered collection of records.
// Identifiers come from an internal counter and are never reused, even after
// a removal. A Manager has a single owner and is not safe for concurrent use.
type Manager[T Record] struct {
	items  []T
	nextID uint64
}

func NewManager[T Record]() *Manager[T] {
	return &Manager[T]{nextID: 1}
}

// Add assigns the next identifier to item, overwriting any identifier it
// already carries, appends it and returns the identifier. The manager takes
// ownership of item. Adding a record that is already stored changes nothing
// and returns its current identifier.
//
// Add panics once every uint32 identifier has been handed out.
func (m *Manager[T]) Add(item T) uint32 {
	if slices.Contains(m.items, item) {
		return item.GetID()
	}
	id, ok := m.NextID()
	if !ok {
		panic("storage: identifier space exhausted")
	}
	m.nextID++
	item.SetID(id)
	m.items = append(m.items, item)
	return id
}

// Get returns the stored record with the given id. The record is shared with
// the manager, so changes made through it are visible to later calls.
func (m *Manager[T]) Get(id uint32) (T, bool) {
	for _, item := range m.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update runs fn against the record with the given id.
func (m *Manager[T]) Update(id uint32, fn func(T) error) error {
	item, ok := m.Get(id)
	if !ok {
		return task.NotFound(id)
	}
	return fn(item)
}

// Remove deletes and returns the record with the given id.
func (m *Manager[T]) Remove(id uint32) (T, error) {
	for i, item := range m.items {
		if item.GetID() == id {
			m.items = slices.Delete(m.items, i, i+1)
			return item, nil
		}
	}
	var zero T
	return zero, task.NotFound(id)
}

// List returns the records in insertion order. The slice is a copy; the
// records are not.
func (m *Manager[T]) List() []T {
	items := make([]T, len(m.items))
	copy(items, m.items)
	return items
}

func (m *Manager[T]) Count() int {
	return len(m.items)
}

// NextID reports the identifier the next Add will assign. ok is false once
// the identifier space is exhausted, which is exactly when Add panics.
func (m *Manager[T]) NextID() (id uint32, ok bool) {
	if m.nextID > math.MaxUint32 {
		return 0, false
	}
	return uint32(m.nextID), true
}

// Load replaces the whole collection and restarts the counter after the
// highest identifier present, or at 1 when items is empty. Two records with
// the same identifier are rejected and leave the manager untouched.
func (m *Manager[T]) Load(items []T) error {
	var maxID uint32
	seen := make(map[uint32]struct{}, len(items))
	for _, item := range items {
		id := item.GetID()
		if _, dup := seen[id]; dup {
			return task.ValidationErrorf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
		maxID = max(maxID, id)
	}
	m.items = make([]T, len(items))
	copy(m.items, items)
	m.nextID = uint64(maxID) + 1
	return nil
}
