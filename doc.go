// Package dirq derives LDAP search queries for repository-style data access.
//
// Client code declares what to find either as a method-name descriptor
// ("findByLastnameAndFirstname") or as a typed predicate expression, and dirq
// turns it into a syntactically valid, correctly escaped RFC 4515 filter
// string combined with the entity metadata (object classes, attribute names,
// DN composition) that an external search executor needs.
//
// The engine is split into small, pure packages:
//
//	schema    - entity descriptors (plain structs, YAML loadable)
//	mapping   - validated, immutable per-entity metadata
//	naming    - method-name descriptor parser
//	predicate - the predicate tree and typed expression builders
//	filter    - predicate tree to filter string compiler
//	query     - query descriptor assembly and the executor seam
//
// Every operation is a bounded, deterministic computation over immutable
// inputs. Metadata is built once and read concurrently without locking;
// parsing and compilation share no mutable state across calls. Network
// dispatch of the assembled query is entirely the caller's concern.
package dirq
