package query

import (
	"github.com/google/uuid"

	"github.com/syssam/dirq"
	"github.com/syssam/dirq/mapping"
)

// Policy selects how the assembler treats request parameters the directory
// protocol cannot honor.
type Policy int

const (
	// PolicyReject fails assembly with an UnsupportedFeatureError when
	// pagination or sorting is requested.
	PolicyReject Policy = iota
	// PolicyIgnore silently drops pagination and sorting parameters.
	PolicyIgnore
)

// String returns the string representation of the Policy.
func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "Reject"
	case PolicyIgnore:
		return "Ignore"
	default:
		return "Unknown"
	}
}

// Params carries the per-invocation search parameters.
type Params struct {
	// Scope selects the search depth. The zero value is ScopeBase.
	Scope Scope
	// Beneath maps DN-component properties to values when the search must
	// be scoped under a computed relative location beneath the entity
	// base. The provided properties must cover the outermost components
	// contiguously.
	Beneath map[string]string
	// Offset and Limit request result paging. The protocol has no offset
	// or cursor concept; non-zero values are rejected or dropped per the
	// assembler's policy.
	Offset int
	Limit  int
	// Sort requests server-side ordering, which the protocol cannot do
	// either; non-empty values are rejected or dropped per policy.
	Sort []string
}

// Assembler packages compiled filters into query descriptors.
type Assembler struct {
	policy Policy
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithPolicy sets how unsupported parameters are treated. The default is
// PolicyReject.
func WithPolicy(p Policy) Option {
	return func(a *Assembler) { a.policy = p }
}

// NewAssembler creates an Assembler.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{policy: PolicyReject}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble combines a compiled filter with the entity's base location and
// the invocation parameters into a query descriptor. The base is extended
// beneath the entity base when params.Beneath names DN components. With
// PolicyReject, pagination or sorting requests fail with an
// UnsupportedFeatureError instead of producing a malformed query.
func (a *Assembler) Assemble(md *mapping.Metadata, filter string, params Params) (*Query, error) {
	if params.Offset != 0 || params.Limit != 0 {
		if a.policy == PolicyReject {
			return nil, dirq.NewUnsupportedFeatureError("pagination")
		}
	}
	if len(params.Sort) != 0 {
		if a.policy == PolicyReject {
			return nil, dirq.NewUnsupportedFeatureError("sorting")
		}
	}

	base, err := a.baseFor(md, params.Beneath)
	if err != nil {
		return nil, err
	}
	return &Query{
		ID:     uuid.New(),
		Base:   base.String(),
		Filter: filter,
		Scope:  params.Scope,
	}, nil
}

// baseFor computes the search base: the entity base, optionally extended
// by DN-component values from the outermost component inward.
func (a *Assembler) baseFor(md *mapping.Metadata, beneath map[string]string) (Name, error) {
	base := BaseName(md.Base())
	if len(beneath) == 0 {
		return base, nil
	}
	dn := md.DNAttributes()
	byProperty := make(map[string]int, len(dn))
	for i, attr := range dn {
		byProperty[attr.Property] = i
	}
	for prop := range beneath {
		if _, ok := byProperty[prop]; !ok {
			return Name{}, dirq.NewCompileError(prop, nil, "not a dn component property")
		}
	}
	// The provided components must form a contiguous run ending at the
	// outermost index, so the computed location is a real ancestor path.
	first := len(dn) - len(beneath)
	for i := len(dn) - 1; i >= first; i-- {
		v, ok := beneath[dn[i].Property]
		if !ok {
			return Name{}, dirq.NewCompileError(dn[i].Property, nil, "dn component values must cover the outermost components contiguously")
		}
		base = base.Child(dn[i].Name, v)
	}
	return base, nil
}
