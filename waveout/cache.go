package waveout

import "sync"

// sampleCache stores decoded samples keyed by resolved file path.
type sampleCache struct {
	mu    sync.RWMutex
	store map[string]*sample
}

func newSampleCache() *sampleCache {
	return &sampleCache{store: make(map[string]*sample)}
}

// get returns the cached sample for path, decoding and caching it on a miss.
func (c *sampleCache) get(path string) (*sample, error) {
	c.mu.RLock()
	s, ok := c.store[path]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Double-check after acquiring the write lock
	if s, ok := c.store[path]; ok {
		return s, nil
	}
	s, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	c.store[path] = s
	return s, nil
}

// contains reports whether path has been cached.
func (c *sampleCache) contains(path string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.store[path]
	return ok
}
