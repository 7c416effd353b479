// Package filter compiles predicate trees into RFC 4515 textual search
// filters. Compilation is pure: the same tree and metadata always produce
// the same filter string, and every caller-supplied literal is escaped so
// no value can alter the filter structure.
package filter

import (
	"strings"

	"github.com/syssam/dirq"
	"github.com/syssam/dirq/mapping"
	"github.com/syssam/dirq/predicate"
)

// Compile renders the predicate tree into a filter string for the entity
// described by md. The object-class constraints are always present and
// ANDed in: a root conjunction splices its children into the outer AND,
// while a root disjunction becomes one ANDed branch. A nil tree compiles
// to the object-class constraints alone.
func Compile(p *predicate.P, md *mapping.Metadata) (string, error) {
	var b strings.Builder
	b.WriteString("(&")
	for _, oc := range md.ObjectClasses() {
		b.WriteString("(objectclass=")
		b.WriteString(escape(oc, false))
		b.WriteString(")")
	}
	if p != nil {
		if p.Kind == predicate.KindAnd {
			for _, c := range p.Children {
				if err := render(&b, c, md); err != nil {
					return "", err
				}
			}
		} else if err := render(&b, p, md); err != nil {
			return "", err
		}
	}
	b.WriteString(")")
	return b.String(), nil
}

// render writes one node of the tree.
func render(b *strings.Builder, p *predicate.P, md *mapping.Metadata) error {
	switch p.Kind {
	case predicate.KindComparison:
		return renderComparison(b, p, md)
	case predicate.KindNot:
		b.WriteString("(!")
		if err := render(b, p.Child, md); err != nil {
			return err
		}
		b.WriteString(")")
		return nil
	case predicate.KindAnd:
		return renderSet(b, "(&", p.Children, md)
	case predicate.KindOr:
		return renderSet(b, "(|", p.Children, md)
	default:
		return dirq.NewCompileError("", nil, "unknown predicate node")
	}
}

// renderSet writes the children of a conjunction or disjunction in tree
// order.
func renderSet(b *strings.Builder, open string, children []*predicate.P, md *mapping.Metadata) error {
	if len(children) == 0 {
		return dirq.NewCompileError("", nil, "empty boolean set")
	}
	b.WriteString(open)
	for _, c := range children {
		if err := render(b, c, md); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

// renderComparison writes a single (attr op value) expression, placing
// wildcards per the operator and escaping the literal.
func renderComparison(b *strings.Builder, p *predicate.P, md *mapping.Metadata) error {
	attr, ok := md.Attribute(p.Property)
	if !ok {
		return dirq.NewCompileError(p.Property, nil, "unknown property")
	}
	if attr.Transient {
		return dirq.NewCompileError(p.Property, nil, "transient property cannot be filtered on")
	}
	if !p.Op.Valued() {
		switch p.Op {
		case predicate.OpPresent:
			b.WriteString("(")
			b.WriteString(attr.Name)
			b.WriteString("=*)")
		case predicate.OpAbsent:
			b.WriteString("(!(")
			b.WriteString(attr.Name)
			b.WriteString("=*))")
		}
		return nil
	}

	if _, unbound := p.Value.(predicate.Param); unbound {
		return dirq.NewCompileError(p.Property, nil, "unbound parameter; bind arguments before compiling")
	}
	v, err := Literal(p.Value)
	if err != nil {
		return dirq.NewCompileError(p.Property, p.Value, err.Error())
	}

	b.WriteString("(")
	b.WriteString(attr.Name)
	switch p.Op {
	case predicate.OpEq:
		b.WriteString("=")
		b.WriteString(escape(v, false))
	case predicate.OpLike:
		// Caller-supplied wildcards are intentional for Like.
		b.WriteString("=")
		b.WriteString(escape(v, true))
	case predicate.OpLTE:
		b.WriteString("<=")
		b.WriteString(escape(v, false))
	case predicate.OpGTE:
		b.WriteString(">=")
		b.WriteString(escape(v, false))
	case predicate.OpHasPrefix:
		b.WriteString("=")
		b.WriteString(escape(v, false))
		b.WriteString("*")
	case predicate.OpHasSuffix:
		b.WriteString("=*")
		b.WriteString(escape(v, false))
	case predicate.OpContains:
		b.WriteString("=*")
		b.WriteString(escape(v, false))
		b.WriteString("*")
	default:
		return dirq.NewCompileError(p.Property, p.Value, "unknown operator")
	}
	b.WriteString(")")
	return nil
}

// escape replaces every byte reserved by the filter grammar with its
// backslash-hex escape sequence: '(' -> \28, ')' -> \29, '\' -> \5c,
// NUL -> \00 and '*' -> \2a. keepWildcards leaves '*' alone for operators
// where the caller's wildcards are part of the match.
func escape(s string, keepWildcards bool) string {
	if !strings.ContainsAny(s, "()\\*\x00") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 6)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(':
			b.WriteString(`\28`)
		case ')':
			b.WriteString(`\29`)
		case '\\':
			b.WriteString(`\5c`)
		case 0:
			b.WriteString(`\00`)
		case '*':
			if keepWildcards {
				b.WriteByte(c)
			} else {
				b.WriteString(`\2a`)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
