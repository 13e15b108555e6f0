package storage

import (
	"fmt"
	"strings"
	"sync"
)

// MemoryScheme prefixes transient audio handles. Synthesized audio is held
// in memory under such a handle until the render flow needs a publicly
// fetchable URL and promotes it to object storage.
const MemoryScheme = "memory://"

// BlobStore holds transient binary blobs keyed by a memory:// handle.
// Safe for concurrent use.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore creates an empty blob store
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// IsMemoryURL reports whether url is a transient handle from this store
func IsMemoryURL(url string) bool {
	return strings.HasPrefix(url, MemoryScheme)
}

// Put stores data under the given object name and returns its handle
func (b *BlobStore) Put(objectName string, data []byte) string {
	handle := MemoryScheme + objectName
	b.mu.Lock()
	b.blobs[handle] = data
	b.mu.Unlock()
	return handle
}

// Get returns the blob for a handle
func (b *BlobStore) Get(handle string) ([]byte, error) {
	b.mu.RLock()
	data, ok := b.blobs[handle]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("blob not found: %s", handle)
	}
	return data, nil
}

// ObjectName strips the scheme from a handle, yielding the object name
// the blob should take when promoted to object storage.
func ObjectName(handle string) string {
	return strings.TrimPrefix(handle, MemoryScheme)
}

// Delete discards the blob for a handle
func (b *BlobStore) Delete(handle string) {
	b.mu.Lock()
	delete(b.blobs, handle)
	b.mu.Unlock()
}
