// Package core contains the pure domain notifications of the library ledger.
//
// Every successful mutation of the ledger produces exactly one domain event:
// BookRegistered, BookBorrowed or BookReturned. The events are plain structs
// built on scalars so that the serialization boundary (package shell) stays
// completely agnostic of the ledger internals.
//
// Nothing in this package performs I/O or holds state.
package core
