package store

import (
	"sort"
	"sync"

	"hotel_service/domain"
	"hotel_service/errors"
)

// Repository is the identity-keyed in-memory collection shared by the guest,
// room and booking stores. Items are cloned on the way in and on the way
// out, so a caller mutating a returned record can never corrupt the
// canonical one.
type Repository[T domain.Entity[T]] struct {
	mu    sync.RWMutex
	items map[int]T
}

func NewRepository[T domain.Entity[T]]() *Repository[T] {
	return &Repository[T]{
		items: make(map[int]T),
	}
}

// Save stores a copy of the item under a fresh id, one past the current
// maximum, and returns the stored copy.
func (repository *Repository[T]) Save(item T) T {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	id := repository.nextIDLocked()
	stored := item.WithID(id)
	repository.items[id] = stored
	return stored.Clone()
}

// Insert stores a copy of the item under its own id.
func (repository *Repository[T]) Insert(item T) (T, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var zero T
	id := item.EntityID()
	if id <= 0 {
		return zero, errors.Newf(errors.InvalidArgument, "id %d can not be a negative number or zero", id)
	}
	if _, ok := repository.items[id]; ok {
		return zero, errors.Newf(errors.AlreadyExists, "item with id %d already exists", id)
	}
	repository.items[id] = item.Clone()
	return item.Clone(), nil
}

func (repository *Repository[T]) FindByID(id int) (T, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	item, ok := repository.items[id]
	if !ok {
		var zero T
		return zero, errors.Newf(errors.NotFound, "item with id %d was not found", id)
	}
	return item.Clone(), nil
}

// ExistsByID is a safe probe; it never fails.
func (repository *Repository[T]) ExistsByID(id int) bool {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	_, ok := repository.items[id]
	return ok
}

// Update replaces the stored item carrying the same id.
func (repository *Repository[T]) Update(item T) (T, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var zero T
	id := item.EntityID()
	if _, ok := repository.items[id]; !ok {
		return zero, errors.Newf(errors.NotFound, "item with id %d was not found", id)
	}
	repository.items[id] = item.Clone()
	return item.Clone(), nil
}

// Delete removes the item matching the given one by identity. It returns
// false, not an error, when there is no match.
func (repository *Repository[T]) Delete(item T) bool {
	return repository.DeleteByID(item.EntityID())
}

func (repository *Repository[T]) DeleteByID(id int) bool {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, ok := repository.items[id]; !ok {
		return false
	}
	delete(repository.items, id)
	return true
}

// FindAll returns copies of all items ordered by id.
func (repository *Repository[T]) FindAll() []T {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	all := make([]T, 0, len(repository.items))
	for _, item := range repository.items {
		all = append(all, item.Clone())
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].EntityID() < all[j].EntityID()
	})
	return all
}

func (repository *Repository[T]) Count() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return len(repository.items)
}

// NextID previews the id the next Save would assign. Using max+1 keeps ids
// monotonic even after deletes.
func (repository *Repository[T]) NextID() int {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	return repository.nextIDLocked()
}

func (repository *Repository[T]) nextIDLocked() int {
	maxID := 0
	for id := range repository.items {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
