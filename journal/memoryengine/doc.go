// Package memoryengine provides an in-memory implementation of the notification journal.
//
// It offers the same Append/Read surface as the PostgreSQL engine over a
// mutex-guarded slice. It is intended for hermetic tests and for running the
// demo without a database; entries do not survive the process.
package memoryengine
