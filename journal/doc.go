// Package journal provides the shared abstractions for the append-only
// notification journal that records the ledger's domain events.
//
// The journal is an audit side channel, not a source of truth: the ledger's
// invariants hold whether or not a journal is attached. Entries are
// StorableEvent DTOs built on scalars, completely agnostic of the domain
// event implementation in client code.
//
// Engine implementations live in the postgresengine and memoryengine
// subpackages.
package journal
