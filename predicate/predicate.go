// Package predicate defines the predicate tree shared by the descriptor
// parser and the typed expression builders, and consumed by the filter
// compiler. Trees are plain immutable-by-convention values: construct,
// compile, discard.
package predicate

import (
	"fmt"

	"github.com/syssam/dirq"
)

// Kind represents the variant of a predicate node.
type Kind int

const (
	// KindComparison is a single property comparison (attr op value).
	KindComparison Kind = iota
	// KindNot negates its child.
	KindNot
	// KindAnd is a conjunction of children.
	KindAnd
	// KindOr is a disjunction of children.
	KindOr
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindComparison:
		return "COMPARISON"
	case KindNot:
		return "NOT"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Op represents a comparison operator.
type Op int

const (
	// OpEq renders as (attr=value).
	OpEq Op = iota
	// OpLTE renders as (attr<=value).
	OpLTE
	// OpGTE renders as (attr>=value).
	OpGTE
	// OpLike renders as (attr=value) with caller-supplied wildcards kept.
	OpLike
	// OpHasPrefix renders as (attr=value*).
	OpHasPrefix
	// OpHasSuffix renders as (attr=*value).
	OpHasSuffix
	// OpContains renders as (attr=*value*).
	OpContains
	// OpPresent renders as (attr=*). Takes no value.
	OpPresent
	// OpAbsent renders as (!(attr=*)). Takes no value.
	OpAbsent
)

// String returns the string representation of the Op.
func (o Op) String() string {
	switch o {
	case OpEq:
		return "EQ"
	case OpLTE:
		return "LTE"
	case OpGTE:
		return "GTE"
	case OpLike:
		return "LIKE"
	case OpHasPrefix:
		return "HAS_PREFIX"
	case OpHasSuffix:
		return "HAS_SUFFIX"
	case OpContains:
		return "CONTAINS"
	case OpPresent:
		return "PRESENT"
	case OpAbsent:
		return "ABSENT"
	default:
		return "UNKNOWN"
	}
}

// Valued reports whether the operator carries a comparison value.
// OpPresent and OpAbsent are value-less.
func (o Op) Valued() bool {
	return o != OpPresent && o != OpAbsent
}

// P represents one node of a predicate tree. Exactly one shape is populated
// per Kind: Property/Op/Value for comparisons, Child for NOT, Children for
// AND and OR.
type P struct {
	Kind     Kind
	Property string
	Op       Op
	Value    any
	Child    *P
	Children []*P
}

// Param is a positional placeholder for a value supplied at invocation
// time. The descriptor parser emits Param values since a method name
// carries no literals; Bind replaces them with the caller's arguments.
type Param struct {
	// Index is the zero-based argument position.
	Index int
}

// NewComparison creates a comparison node.
func NewComparison(property string, op Op, value any) *P {
	return &P{Kind: KindComparison, Property: property, Op: op, Value: value}
}

// NewNot creates a negation node wrapping child.
func NewNot(child *P) *P {
	return &P{Kind: KindNot, Child: child}
}

// NewAnd creates a conjunction of the given children, in order.
func NewAnd(children ...*P) *P {
	return &P{Kind: KindAnd, Children: children}
}

// NewOr creates a disjunction of the given children, in order.
func NewOr(children ...*P) *P {
	return &P{Kind: KindOr, Children: children}
}

// Arity returns the number of unbound parameters in the tree.
func (p *P) Arity() int {
	n := 0
	p.walk(func(c *P) {
		if c.Kind == KindComparison {
			if _, ok := c.Value.(Param); ok {
				n++
			}
		}
	})
	return n
}

// Bind returns a copy of the tree with each Param placeholder replaced by
// the argument at its index. The placeholders must consume the arguments
// exactly: their indices cover 0..len(args)-1 with no duplicates, so no
// argument is dropped or bound twice. Value-less comparisons consume no
// arguments.
func (p *P) Bind(args ...any) (*P, error) {
	var params []Param
	p.walk(func(c *P) {
		if c.Kind == KindComparison {
			if param, ok := c.Value.(Param); ok {
				params = append(params, param)
			}
		}
	})
	if len(args) != len(params) {
		return nil, dirq.NewCompileError("", nil, fmt.Sprintf("bind: expected %d arguments, got %d", len(params), len(args)))
	}
	seen := make(map[int]bool, len(params))
	for _, param := range params {
		if param.Index < 0 || param.Index >= len(args) {
			return nil, dirq.NewCompileError("", nil, fmt.Sprintf("bind: parameter index %d out of range for %d arguments", param.Index, len(args)))
		}
		if seen[param.Index] {
			return nil, dirq.NewCompileError("", nil, fmt.Sprintf("bind: duplicate parameter index %d", param.Index))
		}
		seen[param.Index] = true
	}
	return p.bind(args), nil
}

func (p *P) bind(args []any) *P {
	c := *p
	switch p.Kind {
	case KindComparison:
		if param, ok := p.Value.(Param); ok {
			c.Value = args[param.Index]
		}
	case KindNot:
		c.Child = p.Child.bind(args)
	case KindAnd, KindOr:
		c.Children = make([]*P, len(p.Children))
		for i, ch := range p.Children {
			c.Children[i] = ch.bind(args)
		}
	}
	return &c
}

func (p *P) walk(fn func(*P)) {
	fn(p)
	if p.Child != nil {
		p.Child.walk(fn)
	}
	for _, c := range p.Children {
		c.walk(fn)
	}
}
