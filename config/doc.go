// Package config provides database configuration helpers for PostgreSQL connections
// for the library ledger's notification journal.
//
// This package contains factory functions for creating database connections
// using different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB) with
// sensible connection pool defaults.
//
// This package is part of the shell (infrastructure) layer; the ledger core
// never depends on it.
package config
