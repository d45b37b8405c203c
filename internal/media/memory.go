package media

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	errUploadRejected = errors.New("upload rejected")
	errDeleteRejected = errors.New("delete rejected")
)

// MemoryStore holds images in process.
type MemoryStore struct {
	mu      sync.Mutex
	baseURL string
	objects map[string][]byte
	now     func() time.Time

	failUploads bool
	failDeletes bool
}

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "http://localhost/media"
	}
	return &MemoryStore{baseURL: baseURL, objects: map[string][]byte{}, now: time.Now}
}

func (s *MemoryStore) Upload(_ context.Context, data []byte, contentType string) (Uploaded, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUploads {
		return Uploaded{}, errUploadRejected
	}
	key := objectKey(s.now(), extensionFor(contentType))
	s.objects[key] = append([]byte(nil), data...)
	return Uploaded{URL: publicURL(s.baseURL, key), ID: key}, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failDeletes {
		return errDeleteRejected
	}
	delete(s.objects, id)
	return nil
}

// Has reports whether an object with the given handle is stored.
func (s *MemoryStore) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.objects[id]
	return ok
}

// Len is the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.objects)
}

// SetFailures makes later uploads or deletes fail, simulating an
// unavailable host.
func (s *MemoryStore) SetFailures(uploads, deletes bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failUploads = uploads
	s.failDeletes = deletes
}
