// Package postgresengine provides a PostgreSQL implementation of the notification journal.
//
// The journal is an append-only table of storable events ordered by a
// database-assigned sequence number. It supports multiple PostgreSQL database
// libraries (pgxpool.Pool, sql.DB, and sqlx.DB) through constructor functions:
//
//	journal, err := postgresengine.NewJournalFromPGXPool(pool)
//	journal, err := postgresengine.NewJournalFromSQLDB(db)
//	journal, err := postgresengine.NewJournalFromSQLX(db)
//
// Functional options allow configuration of the table name and logging:
//
//	journal, err := postgresengine.NewJournalFromPGXPool(
//		pool,
//		postgresengine.WithTableName("ledger_events"),
//		postgresengine.WithLogger(logger),
//	)
//
// The expected table schema:
//
//	CREATE TABLE ledger_events (
//		sequence_number BIGSERIAL PRIMARY KEY,
//		event_type      TEXT NOT NULL,
//		occurred_at     TIMESTAMPTZ NOT NULL,
//		payload         JSONB NOT NULL,
//		metadata        JSONB NOT NULL
//	);
package postgresengine
