package tutor

import "sync"

// maxCachedLessons bounds the in-process lesson cache.
const maxCachedLessons = 100

type lessonKey struct {
	topic   string
	subject string
	class   int
}

// lessonCache keeps generated lessons keyed by (topic, subject, class).
// When full, the oldest entry is evicted.
type lessonCache struct {
	mu      sync.Mutex
	entries map[lessonKey]*Lesson
	order   []lessonKey
}

func newLessonCache() *lessonCache {
	return &lessonCache{entries: make(map[lessonKey]*Lesson)}
}

func (c *lessonCache) get(k lessonKey) (*Lesson, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.entries[k]
	return l, ok
}

func (c *lessonCache) put(k lessonKey, l *Lesson) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Replacing an existing key keeps its original insertion age: eviction
	// is strict FIFO, not LRU, so an updated entry still evicts first.
	if _, exists := c.entries[k]; exists {
		c.entries[k] = l
		return
	}
	if len(c.order) >= maxCachedLessons {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[k] = l
	c.order = append(c.order, k)
}

func (c *lessonCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
