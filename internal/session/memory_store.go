package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/robfig/cron/v3"
)

const evictionSchedule = "@every 1m"

type memoryEntry struct {
	snapshot  model.WidgetSnapshot
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	cron    *cron.Cron
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	c := cron.New()
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		cron:    c,
		now:     time.Now,
	}

	_, err := c.AddFunc(evictionSchedule, s.evictExpiredWrapper)
	if err != nil {
		logger.Errorf("failed to add session eviction job: %v", err)
	}
	c.Start()

	return s
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*model.WidgetSnapshot, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || s.expired(entry) {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}
	snapshot := entry.snapshot
	return &snapshot, nil
}

func (s *MemoryStore) Save(ctx context.Context, snapshot model.WidgetSnapshot, ttl time.Duration) error {
	entry := memoryEntry{snapshot: snapshot}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[snapshot.ID] = entry
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	<-s.cron.Stop().Done()
	return nil
}

// EvictExpired drops every expired session and reports how many were removed.
func (s *MemoryStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, id)
			evicted++
		}
	}
	return evicted
}

func (s *MemoryStore) evictExpiredWrapper() {
	if n := s.EvictExpired(); n > 0 {
		logger.Infof("evicted %d expired widget sessions", n)
	}
}

func (s *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)
}
