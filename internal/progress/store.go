package progress

import (
	"fmt"
	"sync"

	"github.com/gabelabs/gabe-web/internal/logger"
)

// Store persists one progression record per session identifier.
//
// Load is get-or-create: an unknown session id yields a fresh default
// record that is persisted before being returned. Every Save must be
// visible to the next Load for the same session id within the process.
// A store failure is fatal for the calling action; the engine never
// retries or partially writes.
type Store interface {
	Load(sessionID string) (*Record, error)
	Save(sessionID string, r *Record) error
}

// MemoryStore keeps records in a process-local map. It is the fast path of
// DualStore and the store of choice in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]*Record{}}
}

func (s *MemoryStore) Load(sessionID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.records[sessionID]; ok {
		return r.Clone(), nil
	}
	r := NewRecord()
	s.records[sessionID] = r.Clone()
	return r, nil
}

func (s *MemoryStore) Save(sessionID string, r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = r.Clone()
	return nil
}

// peek returns the cached record without creating one.
func (s *MemoryStore) peek(sessionID string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[sessionID]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

// DualStore fronts a durable store with an in-memory cache. Loads prefer
// the cache; saves write through to both, last write wins. The two layers
// are eventually consistent with each other: a cache entry can be newer
// than the durable row until the write-through lands, and a durable write
// failure is surfaced to the caller as a fatal store error.
type DualStore struct {
	cache   *MemoryStore
	durable Store
	log     *logger.Log
}

func NewDualStore(durable Store) *DualStore {
	return &DualStore{
		cache:   NewMemoryStore(),
		durable: durable,
		log:     logger.New(),
	}
}

func (s *DualStore) Load(sessionID string) (*Record, error) {
	if r, ok := s.cache.peek(sessionID); ok {
		return r, nil
	}

	r, err := s.durable.Load(sessionID)
	if err != nil {
		return nil, fmt.Errorf("progress store unavailable: %w", err)
	}
	if err := s.cache.Save(sessionID, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *DualStore) Save(sessionID string, r *Record) error {
	if err := s.cache.Save(sessionID, r); err != nil {
		return err
	}
	if err := s.durable.Save(sessionID, r); err != nil {
		return fmt.Errorf("progress store unavailable: %w", err)
	}
	s.log.Debug(fmt.Sprintf("saved progress for session %s: xp=%d level=%s", sessionID, r.XP, r.Level))
	return nil
}
