package avatar

import (
	"log"
	"strings"
)

// Store exposes catalog retrieval for the query and image services.
type Store interface {
	All() []Avatar
	FindByName(name string) (Avatar, bool)
	Len() int
}

// MemoryStore implements Store with an ordered in-memory slice plus a
// lowercased-name index. Both are built once at startup and never mutated,
// so concurrent reads need no locking.
type MemoryStore struct {
	items []Avatar
	index map[string]Avatar
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied avatars.
// Names colliding after lowercasing keep both entries in the ordered list;
// the index keeps the later one, and each collision is logged.
func NewMemoryStore(items []Avatar) *MemoryStore {
	s := &MemoryStore{
		items: append([]Avatar(nil), items...),
		index: make(map[string]Avatar, len(items)),
	}
	for _, item := range s.items {
		key := strings.ToLower(item.Name)
		if prev, ok := s.index[key]; ok {
			log.Printf("avatar store: duplicate name %q shadows %q in index", item.Name, prev.Name)
		}
		s.index[key] = item
	}
	return s
}

// All returns the catalog records in their original order.
func (s *MemoryStore) All() []Avatar {
	return append([]Avatar(nil), s.items...)
}

// FindByName looks up an avatar by case-insensitive exact name match.
func (s *MemoryStore) FindByName(name string) (Avatar, bool) {
	item, ok := s.index[strings.ToLower(name)]
	return item, ok
}

// Len reports the number of catalog records.
func (s *MemoryStore) Len() int {
	return len(s.items)
}
