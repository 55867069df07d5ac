package virtual

import "sync"

// store maps normalized absolute paths to document content. Plain
// associative container: no eviction, no size bound, no persistence.
// Lifetime is the owning FS's lifetime.
type store struct {
	mu   sync.RWMutex
	docs map[string]string
}

func newStore() *store {
	return &store{docs: make(map[string]string)}
}

func (s *store) get(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[path]
	return content, ok
}

func (s *store) set(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = content
}

func (s *store) delete(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[path]
	delete(s.docs, path)
	return ok
}

func (s *store) has(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[path]
	return ok
}

// move transfers a key under a single lock. A missing source moves as an
// empty document.
func (s *store) move(oldPath, newPath string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	content := s.docs[oldPath]
	delete(s.docs, oldPath)
	s.docs[newPath] = content
	return content
}
