package naming

import (
	"sync"

	"github.com/syssam/dirq/mapping"
)

// Cache memoizes parsed descriptor templates per entity metadata. Parsing
// is deterministic, so a descriptor needs to be parsed once and bound per
// call; repositories dispatching many invocations of the same method share
// one template. The zero value is ready to use and safe for concurrent
// callers.
type Cache struct {
	templates sync.Map // cacheKey -> *Descriptor
}

// cacheKey identifies a template by metadata identity and descriptor
// string. Metadata is immutable and shared, so pointer identity is a
// stable key.
type cacheKey struct {
	md         *mapping.Metadata
	descriptor string
}

// Parse returns the cached template for the descriptor, parsing and
// caching it on first use. Parse failures are not cached; they surface on
// every call, matching the fail-fast contract of construction-time errors.
func (c *Cache) Parse(descriptor string, md *mapping.Metadata) (*Descriptor, error) {
	key := cacheKey{md: md, descriptor: descriptor}
	if v, ok := c.templates.Load(key); ok {
		return v.(*Descriptor), nil
	}
	d, err := Parse(descriptor, md)
	if err != nil {
		return nil, err
	}
	v, _ := c.templates.LoadOrStore(key, d)
	return v.(*Descriptor), nil
}
