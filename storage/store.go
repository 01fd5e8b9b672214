package storage

// Storage persists a whole collection at once.
// This allows swapping between the line format, JSON, or other backends.
type Storage[T any] interface {
	// Save replaces the stored collection with items.
	Save(items []T) error
	// Load returns the stored collection, or an empty one when nothing has
	// been saved yet.
	Load() ([]T, error)
}
