package styleprops

import "sync"

// Cache maps tags to their styled component so repeated resolution for the
// same tag reuses one instance.
//
// Element tags are keyed by name. Reference tags are keyed by identity: each
// distinct Component gets a stable integer handle, assigned in first-store
// order, which doubles as the ordinal used for deterministic naming. Entries are
// last-write-wins and live as long as the cache.
type Cache struct {
	mu      sync.RWMutex
	byName  map[string]*Styled
	handles map[Component]int
	slots   []*Styled
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		byName:  make(map[string]*Styled),
		handles: make(map[Component]int),
	}
}

// Get returns the cached component for tag.
func (c *Cache) Get(tag Tag) (*Styled, bool) {
	if tag.validate() != nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.get(tag)
}

func (c *Cache) get(tag Tag) (*Styled, bool) {
	if tag.ref == nil {
		s, ok := c.byName[tag.name]
		return s, ok
	}
	h, ok := c.handles[tag.ref]
	if !ok {
		return nil, false
	}
	return c.slots[h], true
}

// Put stores s for tag, replacing any previous entry. A reference tag keeps
// the ordinal it was first given.
func (c *Cache) Put(tag Tag, s *Styled) error {
	if err := tag.validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(tag, s)
	return nil
}

func (c *Cache) put(tag Tag, s *Styled) {
	if tag.ref == nil {
		c.byName[tag.name] = s
		return
	}
	if h, ok := c.handles[tag.ref]; ok {
		c.slots[h] = s
		return
	}
	c.handles[tag.ref] = len(c.slots)
	c.slots = append(c.slots, s)
}

// GetOrBuild returns the cached component for tag, building and storing it on
// a miss. build receives the ordinal the tag will have: the number of
// reference tags already cached, or -1 for element tags.
func (c *Cache) GetOrBuild(tag Tag, build func(ordinal int) *Styled) (*Styled, error) {
	if err := tag.validate(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	s, ok := c.get(tag)
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.get(tag); ok {
		return s, nil
	}

	ordinal := -1
	if tag.ref != nil {
		ordinal = len(c.slots)
	}
	s = build(ordinal)
	c.put(tag, s)
	return s, nil
}

// Ordinal returns the handle of a cached reference tag.
func (c *Cache) Ordinal(tag Tag) (int, bool) {
	if tag.ref == nil || tag.validate() != nil {
		return -1, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handles[tag.ref]
	return h, ok
}

// NextOrdinal returns the ordinal the next new reference tag will receive.
func (c *Cache) NextOrdinal() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}

// Len returns the number of cached tags.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName) + len(c.slots)
}

// References returns the number of cached reference tags.
func (c *Cache) References() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}
