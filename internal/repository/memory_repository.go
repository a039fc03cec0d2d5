package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/localwork/marketplace/internal/model"
)

type memoryCollection[T any, P record[T]] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]T
}

func newMemoryCollection[T any, P record[T]]() *memoryCollection[T, P] {
	return &memoryCollection[T, P]{items: make(map[uuid.UUID]T)}
}

func (r *memoryCollection[T, P]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items, nil
}

func (r *memoryCollection[T, P]) GetByID(ctx context.Context, id string) (*T, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[uid]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *memoryCollection[T, P]) Create(ctx context.Context, item *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	P(item).Stamp(time.Now())
	id := P(item).RecordID()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; exists {
		return fmt.Errorf("create %s: id %s already exists", collectionName[T, P](), id)
	}
	r.items[id] = *item
	r.order = append(r.order, id)
	return nil
}

// NewMemoryRepositories keeps records in process memory. Used for local development
// (RECORD_BACKEND=memory) and tests.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Jobs:         newMemoryCollection[model.JobListing, *model.JobListing](),
		Applications: newMemoryCollection[model.JobApplication, *model.JobApplication](),
		Contacts:     newMemoryCollection[model.ContactSubmission, *model.ContactSubmission](),
		Ratings:      newMemoryCollection[model.UserRating, *model.UserRating](),
	}
}
