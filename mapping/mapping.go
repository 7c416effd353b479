// Package mapping builds validated, immutable per-entity metadata from
// schema descriptors. Metadata is constructed once at initialization and
// then read concurrently by any number of parse and compile calls; it is
// never mutated after Resolve returns.
package mapping

import (
	"sort"
	"strings"

	"github.com/syssam/dirq"
	"github.com/syssam/dirq/schema"
)

// Attribute is the resolved, immutable form of one attribute mapping.
type Attribute struct {
	// Property is the entity-side property name.
	Property string
	// Name is the protocol attribute name used in filters and DNs.
	Name string
	// MultiValued marks attributes holding more than one value.
	MultiValued bool
	// DNIndex is the ordered position in DN composition, or -1 when the
	// attribute is not a DN component.
	DNIndex int
	// Transient attributes never appear in a filter.
	Transient bool
	// ID marks the identifier property.
	ID bool
}

// Metadata is the resolved metadata for one entity type. The zero value is
// not usable; construct it with Resolve.
type Metadata struct {
	entity        string
	base          string
	objectClasses []string
	attrs         []Attribute
	byProperty    map[string]int
	byLength      []string // property names, longest first
	id            int
	dn            []int // indices into attrs, ordered by DNIndex
}

// Resolve validates the given entity descriptor and returns its immutable
// metadata. All violations are reported as MappingError, before any query
// can run against the entity.
func Resolve(e *schema.Entity) (*Metadata, error) {
	if e == nil {
		return nil, dirq.NewMappingError("", "", "nil entity descriptor")
	}
	if len(e.ObjectClasses) == 0 {
		return nil, dirq.NewMappingError(e.Name, "", "at least one object class is required")
	}
	objectClasses := make([]string, 0, len(e.ObjectClasses))
	for _, oc := range e.ObjectClasses {
		oc = strings.TrimSpace(oc)
		if oc == "" {
			return nil, dirq.NewMappingError(e.Name, "", "empty object class")
		}
		objectClasses = append(objectClasses, oc)
	}
	if len(e.Attributes) == 0 {
		return nil, dirq.NewMappingError(e.Name, "", "at least one attribute is required")
	}

	md := &Metadata{
		entity:        e.Name,
		base:          e.Base,
		objectClasses: objectClasses,
		attrs:         make([]Attribute, 0, len(e.Attributes)),
		byProperty:    make(map[string]int, len(e.Attributes)),
		id:            -1,
	}
	dnSeen := make(map[int]int) // DNIndex -> attrs index
	for _, a := range e.Attributes {
		if a.Property == "" {
			return nil, dirq.NewMappingError(e.Name, "", "attribute without a property name")
		}
		if _, ok := md.byProperty[a.Property]; ok {
			return nil, dirq.NewMappingError(e.Name, a.Property, "duplicate property")
		}
		ra := Attribute{
			Property:    a.Property,
			Name:        a.AttributeName(),
			MultiValued: a.MultiValued,
			DNIndex:     -1,
			Transient:   a.Transient,
			ID:          a.ID,
		}
		if a.ID {
			if md.id >= 0 {
				return nil, dirq.NewMappingError(e.Name, a.Property, "more than one identifier property")
			}
			if a.Transient {
				return nil, dirq.NewMappingError(e.Name, a.Property, "identifier property cannot be transient")
			}
			md.id = len(md.attrs)
		}
		if a.DNIndex != nil {
			idx := *a.DNIndex
			if idx < 0 {
				return nil, dirq.NewMappingError(e.Name, a.Property, "negative dn component index")
			}
			if _, ok := dnSeen[idx]; ok {
				return nil, dirq.NewMappingError(e.Name, a.Property, "duplicate dn component index")
			}
			dnSeen[idx] = len(md.attrs)
			ra.DNIndex = idx
		}
		md.byProperty[a.Property] = len(md.attrs)
		md.attrs = append(md.attrs, ra)
	}
	if md.id < 0 {
		return nil, dirq.NewMappingError(e.Name, "", "exactly one identifier property is required")
	}
	// DN component indices must be contiguous from zero.
	md.dn = make([]int, 0, len(dnSeen))
	for i := 0; i < len(dnSeen); i++ {
		at, ok := dnSeen[i]
		if !ok {
			return nil, dirq.NewMappingError(e.Name, "", "dn component indices must be contiguous from zero")
		}
		md.dn = append(md.dn, at)
	}

	md.byLength = make([]string, 0, len(md.attrs))
	for _, a := range md.attrs {
		md.byLength = append(md.byLength, a.Property)
	}
	sort.SliceStable(md.byLength, func(i, j int) bool {
		return len(md.byLength[i]) > len(md.byLength[j])
	})
	return md, nil
}

// Entity returns the entity type name.
func (m *Metadata) Entity() string { return m.entity }

// Base returns the distinguished name of the entity's base location.
func (m *Metadata) Base() string { return m.base }

// ObjectClasses returns the ordered object-class list. The returned slice
// is a copy; callers cannot alter the metadata through it.
func (m *Metadata) ObjectClasses() []string {
	return append([]string(nil), m.objectClasses...)
}

// Attribute returns the resolved attribute for the given property name.
func (m *Metadata) Attribute(property string) (Attribute, bool) {
	i, ok := m.byProperty[property]
	if !ok {
		return Attribute{}, false
	}
	return m.attrs[i], true
}

// ID returns the identifier attribute.
func (m *Metadata) ID() Attribute { return m.attrs[m.id] }

// Attributes returns all resolved attributes in declaration order.
func (m *Metadata) Attributes() []Attribute {
	return append([]Attribute(nil), m.attrs...)
}

// DNAttributes returns the attributes participating in DN composition,
// ordered by their component index (index 0, the most specific, first).
func (m *Metadata) DNAttributes() []Attribute {
	out := make([]Attribute, 0, len(m.dn))
	for _, i := range m.dn {
		out = append(out, m.attrs[i])
	}
	return out
}

// Properties returns all property names ordered longest first. The naming
// parser depends on this ordering for longest-prefix resolution.
func (m *Metadata) Properties() []string {
	return append([]string(nil), m.byLength...)
}
