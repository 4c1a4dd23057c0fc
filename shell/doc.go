// Package shell is the serialization boundary between the pure domain
// notifications in package core and the journal's storable event DTOs.
//
// It converts domain events to storable events and back, stamps each
// published event with tracking metadata (message, causation, and correlation
// ids), and provides JournalSink, a ledger.EventSink that appends every
// emitted notification to a journal.
package shell
