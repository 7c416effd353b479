// Package query assembles compiled filters into query descriptors for an
// external search executor. Assembly is pure data composition: no I/O, no
// connection, nothing to mock in tests.
package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Scope represents the scope of a directory search, using the protocol's
// numbering.
type Scope int

const (
	// ScopeBase searches only the base entry.
	ScopeBase Scope = 0
	// ScopeOneLevel searches one level below the base entry.
	ScopeOneLevel Scope = 1
	// ScopeSubtree searches the entire subtree under the base entry.
	ScopeSubtree Scope = 2
)

// String returns the string representation of the search scope.
func (s Scope) String() string {
	switch s {
	case ScopeBase:
		return "Base"
	case ScopeOneLevel:
		return "OneLevel"
	case ScopeSubtree:
		return "Subtree"
	default:
		return "Unknown"
	}
}

// Query is an assembled query descriptor: everything a protocol-compliant
// directory client needs to run the search. It is a pure value constructed
// per invocation; the embedded filter carries caller literals, so queries
// are never reused across differing parameter values.
type Query struct {
	// ID correlates the query across log lines and executor boundaries.
	ID uuid.UUID
	// Base is the distinguished name the search starts from.
	Base string
	// Filter is the compiled RFC 4515 filter string.
	Filter string
	// Scope selects how deep below Base the search reaches.
	Scope Scope
}

// wireQuery is the stable wire form of a Query. The ID travels as its
// canonical string so the encoding does not depend on how the msgpack
// codec treats the uuid byte array.
type wireQuery struct {
	ID     string `msgpack:"id"`
	Base   string `msgpack:"base"`
	Filter string `msgpack:"filter"`
	Scope  int    `msgpack:"scope"`
}

// Encode serializes the query for handoff to an out-of-process executor.
func (q *Query) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(wireQuery{
		ID:     q.ID.String(),
		Base:   q.Base,
		Filter: q.Filter,
		Scope:  int(q.Scope),
	})
	if err != nil {
		return nil, fmt.Errorf("query: encoding descriptor: %w", err)
	}
	return b, nil
}

// Decode deserializes a query produced by Encode.
func Decode(b []byte) (*Query, error) {
	w := wireQuery{}
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("query: decoding descriptor: %w", err)
	}
	id, err := uuid.Parse(w.ID)
	if err != nil {
		return nil, fmt.Errorf("query: decoding descriptor id: %w", err)
	}
	return &Query{ID: id, Base: w.Base, Filter: w.Filter, Scope: Scope(w.Scope)}, nil
}

// Entry is one directory entry returned by an executor.
type Entry struct {
	// DN is the entry's distinguished name.
	DN string
	// Attributes maps attribute names to their values.
	Attributes map[string][]string
}

// Executor runs assembled queries against a live directory. It is the
// external collaborator seam; this package never dials a connection.
type Executor interface {
	Search(ctx context.Context, q *Query) ([]*Entry, error)
}

// ExecutorFunc is an adapter allowing ordinary functions to serve as
// executors.
type ExecutorFunc func(ctx context.Context, q *Query) ([]*Entry, error)

// Search calls f(ctx, q).
func (f ExecutorFunc) Search(ctx context.Context, q *Query) ([]*Entry, error) {
	return f(ctx, q)
}
