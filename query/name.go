package query

import "strings"

// Name is a hierarchical directory name: an ordered sequence of relative
// naming components in front of an opaque base suffix. The zero value is
// the empty name.
type Name struct {
	base string
	rdns []rdn // most specific first
}

type rdn struct {
	attr  string
	value string
}

// BaseName returns a Name anchored at the given distinguished name. The
// string is treated as an opaque, already well-formed suffix.
func BaseName(dn string) Name {
	return Name{base: dn}
}

// Child returns a new Name one level beneath n, addressed by the given
// naming attribute and value. The receiver is unchanged.
func (n Name) Child(attr, value string) Name {
	rdns := make([]rdn, 0, len(n.rdns)+1)
	rdns = append(rdns, rdn{attr: attr, value: value})
	rdns = append(rdns, n.rdns...)
	return Name{base: n.base, rdns: rdns}
}

// IsEmpty reports whether the name has no base and no components.
func (n Name) IsEmpty() bool {
	return n.base == "" && len(n.rdns) == 0
}

// String renders the name in RFC 4514 form, most specific component
// first, with component values escaped.
func (n Name) String() string {
	if len(n.rdns) == 0 {
		return n.base
	}
	var b strings.Builder
	for i, r := range n.rdns {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(r.attr)
		b.WriteString("=")
		b.WriteString(escapeRDNValue(r.value))
	}
	if n.base != "" {
		b.WriteString(",")
		b.WriteString(n.base)
	}
	return b.String()
}

// escapeRDNValue escapes a relative-name component value per RFC 4514:
// backslash-prefix for the special characters, plus leading '#' or space
// and trailing space.
func escapeRDNValue(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' || c == ',' || c == '+' || c == '"' || c == '<' || c == '>' || c == ';' || c == '=':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == ' ' && (i == 0 || i == len(s)-1):
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '#' && i == 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == 0:
			b.WriteString(`\00`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
