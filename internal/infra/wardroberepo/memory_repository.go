package wardroberepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
)

// MemoryRepository is an in-memory ItemRepository used for tests/dev.
type MemoryRepository struct {
	mu sync.RWMutex

	records map[uuid.UUID]wardrobe.Item
	byUser  map[int64][]uuid.UUID
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[uuid.UUID]wardrobe.Item),
		byUser:  make(map[int64][]uuid.UUID),
	}
}

// Create implements wardrobe.ItemRepository.
func (r *MemoryRepository) Create(_ context.Context, item wardrobe.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[item.ID]; !exists {
		r.byUser[item.UserID] = append(r.byUser[item.UserID], item.ID)
	}
	r.records[item.ID] = item
	return nil
}

// List implements wardrobe.ItemRepository in insertion order.
func (r *MemoryRepository) List(_ context.Context, userID int64) ([]wardrobe.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	items := make([]wardrobe.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, r.records[id])
	}
	return items, nil
}

// Get implements wardrobe.ItemRepository.
func (r *MemoryRepository) Get(_ context.Context, userID int64, id uuid.UUID) (wardrobe.Item, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.records[id]
	if !ok || item.UserID != userID {
		return wardrobe.Item{}, false, nil
	}
	return item, true, nil
}

// Delete implements wardrobe.ItemRepository.
func (r *MemoryRepository) Delete(_ context.Context, userID int64, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.records[id]
	if !ok || item.UserID != userID {
		return nil
	}
	delete(r.records, id)
	ids := r.byUser[userID]
	for i, candidate := range ids {
		if candidate == id {
			r.byUser[userID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

var _ wardrobe.ItemRepository = (*MemoryRepository)(nil)
