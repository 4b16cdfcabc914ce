package memory

import (
	"container/list"
	"context"
	"sync"

	"github.com/emiliopalmerini/typouniverse/internal/domain"
	"github.com/emiliopalmerini/typouniverse/internal/ports"
)

// GuideStore is a bounded in-memory guide cache. Once full, saving a new
// guide evicts the oldest one.
type GuideStore struct {
	mu       sync.RWMutex
	capacity int
	order    *list.List
	byID     map[string]*list.Element
}

var _ ports.GuideStore = (*GuideStore)(nil)

func NewGuideStore(capacity int) *GuideStore {
	if capacity < 1 {
		capacity = 1
	}
	return &GuideStore{
		capacity: capacity,
		order:    list.New(),
		byID:     make(map[string]*list.Element, capacity),
	}
}

func (s *GuideStore) Save(_ context.Context, g *domain.Guide) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.byID[g.ID]; ok {
		el.Value = g
		return nil
	}
	s.byID[g.ID] = s.order.PushBack(g)

	for s.order.Len() > s.capacity {
		oldest := s.order.Front()
		s.order.Remove(oldest)
		delete(s.byID, oldest.Value.(*domain.Guide).ID)
	}
	return nil
}

func (s *GuideStore) Get(_ context.Context, id string) (*domain.Guide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	el, ok := s.byID[id]
	if !ok {
		return nil, ports.ErrGuideNotFound
	}
	return el.Value.(*domain.Guide), nil
}

func (s *GuideStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order.Len()
}
