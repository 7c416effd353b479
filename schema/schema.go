// Package schema defines the user-facing entity descriptors consumed by the
// mapping resolver. Descriptors are plain data: they carry no validation
// logic and can be declared in code or loaded from YAML.
package schema

// Attribute describes how a single entity property maps onto a directory
// attribute.
type Attribute struct {
	// Property is the entity-side property name, e.g. "lastname".
	Property string `yaml:"property" json:"property"`
	// Name is the protocol-level attribute name. Empty means same as
	// Property.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// MultiValued marks attributes that hold more than one value.
	MultiValued bool `yaml:"multiValued,omitempty" json:"multi_valued,omitempty"`
	// DNIndex is the ordered position of this attribute in the entry's
	// distinguished name, if it participates in DN composition. Nil means
	// the attribute is not a DN component.
	DNIndex *int `yaml:"dnIndex,omitempty" json:"dn_index,omitempty"`
	// Transient marks properties that exist on the entity but are never
	// sent to or filtered on in the directory.
	Transient bool `yaml:"transient,omitempty" json:"transient,omitempty"`
	// ID marks the single identifier property holding the entry's
	// distinguished name.
	ID bool `yaml:"id,omitempty" json:"id,omitempty"`
}

// AttributeName returns the protocol attribute name, falling back to the
// property name when no explicit name was declared.
func (a *Attribute) AttributeName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.Property
}

// Entity describes one entity type: its object classes, its base location
// in the directory tree, and its attribute mappings.
type Entity struct {
	// Name is the entity type name, used in error reporting.
	Name string `yaml:"name" json:"name"`
	// ObjectClasses is the ordered, non-empty list of object classes that
	// is ANDed into every filter compiled for this entity.
	ObjectClasses []string `yaml:"objectClasses" json:"object_classes"`
	// Base is the distinguished name of the subtree this entity's entries
	// live under, e.g. "ou=people,dc=example,dc=com".
	Base string `yaml:"base,omitempty" json:"base,omitempty"`
	// Attributes is the ordered list of attribute mappings.
	Attributes []*Attribute `yaml:"attributes" json:"attributes"`
}
