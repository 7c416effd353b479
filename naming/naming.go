// Package naming parses repository method-name descriptors of the form
//
//	findBy<Segment>((And|Or)<Segment>)*
//	Segment = <PropertyPath><Keyword>?
//
// into predicate trees. Parsing happens once, at repository construction
// time; the resulting tree is a template with positional parameter
// placeholders that gets bound to argument values per invocation.
package naming

import (
	"sort"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"

	"github.com/syssam/dirq"
	"github.com/syssam/dirq/mapping"
	"github.com/syssam/dirq/predicate"
)

// Subject is the only supported descriptor verb.
const Subject = "findBy"

// keyword describes how a recognized keyword suffix maps onto the
// predicate tree: the comparison operator, and whether the comparison is
// wrapped in a negation node.
type keyword struct {
	op     predicate.Op
	negate bool
}

// keywords maps every recognized keyword suffix. The empty suffix implies
// equality. NotLike deliberately maps to a negated prefix match, not a
// negated Like; existing callers depend on that rendering.
var keywords = map[string]keyword{
	"":                 {op: predicate.OpEq},
	"Not":              {op: predicate.OpEq, negate: true},
	"LessThanEqual":    {op: predicate.OpLTE},
	"GreaterThanEqual": {op: predicate.OpGTE},
	"IsNotNull":        {op: predicate.OpPresent},
	"NotNull":          {op: predicate.OpPresent},
	"IsNull":           {op: predicate.OpAbsent},
	"Null":             {op: predicate.OpAbsent},
	"Like":             {op: predicate.OpLike},
	"NotLike":          {op: predicate.OpHasPrefix, negate: true},
	"IsNotLike":        {op: predicate.OpHasPrefix, negate: true},
	"StartingWith":     {op: predicate.OpHasPrefix},
	"EndingWith":       {op: predicate.OpHasSuffix},
	"Containing":       {op: predicate.OpContains},
}

// keywordsByLength holds the keyword suffixes longest first, so greedy
// matching prefers "NotNull" over "Not".
var keywordsByLength = func() []string {
	ks := make([]string, 0, len(keywords))
	for k := range keywords {
		if k != "" {
			ks = append(ks, k)
		}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if len(ks[i]) != len(ks[j]) {
			return len(ks[i]) > len(ks[j])
		}
		return ks[i] < ks[j]
	})
	return ks
}()

// Descriptor is a parsed method-name descriptor: an unbound predicate tree
// template plus the number of arguments a query invocation must supply.
type Descriptor struct {
	name  string
	tree  *predicate.P
	arity int
}

// Name returns the descriptor string this template was parsed from.
func (d *Descriptor) Name() string { return d.name }

// Tree returns the unbound predicate tree. Comparison values are
// predicate.Param placeholders; compile a bound copy, not this template.
func (d *Descriptor) Tree() *predicate.P { return d.tree }

// Arity returns the number of argument values Bind expects.
func (d *Descriptor) Arity() int { return d.arity }

// Bind returns a bound copy of the template tree with the given argument
// values substituted in declaration order. Value-less segments (IsNull,
// IsNotNull) consume no arguments.
func (d *Descriptor) Bind(args ...any) (*predicate.P, error) {
	return d.tree.Bind(args...)
}

// combinator tracks which boolean connective a descriptor uses. A single
// descriptor may use And or Or, never both: the grammar defines no
// operator precedence, so a mixed reading would be ambiguous.
type combinator int

const (
	combNone combinator = iota
	combAnd
	combOr
)

// Parse parses the descriptor string against the entity metadata.
// Parsing is pure and deterministic: identical descriptor strings always
// yield structurally identical trees.
func Parse(descriptor string, md *mapping.Metadata) (*Descriptor, error) {
	if !strings.HasPrefix(descriptor, Subject) {
		return nil, dirq.NewParseError(descriptor, "", `descriptor must start with "findBy"`)
	}
	rest := descriptor[len(Subject):]
	if rest == "" {
		return nil, dirq.NewParseError(descriptor, "", "descriptor names no property")
	}

	props := camelizedProperties(md)
	var (
		children []*predicate.P
		comb     = combNone
		arity    int
	)
	for {
		node, remainder, err := parseSegment(descriptor, rest, props, md, &arity)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
		if remainder == "" {
			break
		}
		next, tok, err := consumeCombinator(descriptor, remainder)
		if err != nil {
			return nil, err
		}
		if comb != combNone && comb != tok {
			return nil, dirq.NewParseError(descriptor, "", "mixing And and Or is ambiguous without precedence")
		}
		comb = tok
		rest = next
	}

	d := &Descriptor{name: descriptor, arity: arity}
	switch {
	case len(children) == 1:
		d.tree = children[0]
	case comb == combOr:
		d.tree = predicate.NewOr(children...)
	default:
		d.tree = predicate.NewAnd(children...)
	}
	return d, nil
}

// camelized pairs a property with its conventional descriptor spelling.
type camelized struct {
	property string
	camel    string
}

// camelizedProperties returns the known properties with their camelized
// spellings, longest spelling first for greedy prefix matching.
func camelizedProperties(md *mapping.Metadata) []camelized {
	props := md.Properties()
	out := make([]camelized, 0, len(props))
	for _, p := range props {
		out = append(out, camelized{property: p, camel: inflect.Camelize(p)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].camel) > len(out[j].camel)
	})
	return out
}

// parseSegment consumes one <PropertyPath><Keyword>? segment from s and
// returns its predicate node and the unconsumed remainder, which is either
// empty or begins with a combinator token.
func parseSegment(descriptor, s string, props []camelized, md *mapping.Metadata, arity *int) (*predicate.P, string, error) {
	if s == "" {
		return nil, "", dirq.NewParseError(descriptor, "", "dangling combinator")
	}
	propertyMatched := false
	for _, c := range props {
		if !strings.HasPrefix(s, c.camel) {
			continue
		}
		attr, ok := md.Attribute(c.property)
		if !ok {
			continue
		}
		propertyMatched = true
		rest := s[len(c.camel):]
		kw, remainder, ok := matchKeyword(rest)
		if !ok {
			continue
		}
		if attr.Transient {
			return nil, "", dirq.NewParseError(descriptor, s, "transient property cannot be filtered on")
		}
		var value any
		if kw.op.Valued() {
			value = predicate.Param{Index: *arity}
			*arity++
		}
		node := predicate.NewComparison(c.property, kw.op, value)
		if kw.negate {
			node = predicate.NewNot(node)
		}
		return node, remainder, nil
	}
	if propertyMatched {
		return nil, "", dirq.NewParseError(descriptor, s, "unrecognized keyword suffix")
	}
	return nil, "", dirq.NewParseError(descriptor, s, "no known property matches segment")
}

// matchKeyword matches the longest keyword suffix at the start of s such
// that what follows is either empty or a combinator token. The empty
// keyword (implying equality) matches last.
func matchKeyword(s string) (keyword, string, bool) {
	for _, k := range keywordsByLength {
		if strings.HasPrefix(s, k) && segmentBoundary(s[len(k):]) {
			return keywords[k], s[len(k):], true
		}
	}
	if segmentBoundary(s) {
		return keywords[""], s, true
	}
	return keyword{}, "", false
}

// segmentBoundary reports whether s is a valid continuation after a
// segment: nothing, or an And/Or token introducing the next segment.
func segmentBoundary(s string) bool {
	if s == "" {
		return true
	}
	_, _, err := consumeCombinator("", s)
	return err == nil
}

// consumeCombinator consumes a leading And/Or token. The token must be
// followed by an upper-case letter starting the next segment, so property
// spellings containing "And" or "Or" mid-word are not split.
func consumeCombinator(descriptor, s string) (string, combinator, error) {
	switch {
	case strings.HasPrefix(s, "And") && startsUpper(s[3:]):
		return s[3:], combAnd, nil
	case strings.HasPrefix(s, "Or") && startsUpper(s[2:]):
		return s[2:], combOr, nil
	}
	return "", combNone, dirq.NewParseError(descriptor, s, "expected And or Or between segments")
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	return unicode.IsUpper(rune(s[0]))
}
