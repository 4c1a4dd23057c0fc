package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/bookledger/bookledger-go/journal"
	"github.com/bookledger/bookledger-go/journal/postgresengine/internal/adapters"
)

const (
	defaultJournalTableName      = "ledger_events"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildStorableFailed    = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBExecFailed           = "database execution failed during journal append"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgReadCompleted          = "journal read completed"
	logMsgEntriesAppended        = "journal entries appended"
	logMsgSQLExecuted            = "executed sql for: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrEventType             = "event_type"
	logAttrEntryCount            = "entry_count"
	logAttrDurationMS            = "duration_ms"
	logActionRead                = "read"
	logActionAppend              = "append"
	colEventType                 = "event_type"
	colOccurredAt                = "occurred_at"
	colPayload                   = "payload"
	colMetadata                  = "metadata"
	colSequenceNumber            = "sequence_number"
	dialectPostgres              = "postgres"
)

type sqlQueryString = string

// Logger interface for SQL query logging, operational metrics, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Journal represents an append-only storage mechanism for the ledger's domain notifications.
// It leverages a database adapter and supports customizable logging and journal table configuration.
type Journal struct {
	db               adapters.DBAdapter
	journalTableName string
	logger           Logger
}

// Option defines a functional option for configuring a Journal.
type Option func(*Journal) error

// WithTableName sets the table name for the Journal.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return journal.ErrEmptyTableNameSupplied
		}

		j.journalTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Journal.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Entry counts and durations (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}

// NewJournalFromPGXPool creates a new Journal using a pgx Pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, journal.ErrNilDatabaseConnection
	}

	j := Journal{
		db:               adapters.NewPGXAdapter(db),
		journalTableName: defaultJournalTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// NewJournalFromSQLDB creates a new Journal using a sql.DB with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, journal.ErrNilDatabaseConnection
	}

	j := Journal{
		db:               adapters.NewSQLAdapter(db),
		journalTableName: defaultJournalTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// NewJournalFromSQLX creates a new Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (Journal, error) {
	if db == nil {
		return Journal{}, journal.ErrNilDatabaseConnection
	}

	j := Journal{
		db:               adapters.NewSQLXAdapter(db),
		journalTableName: defaultJournalTableName,
	}

	for _, option := range options {
		if err := option(&j); err != nil {
			return Journal{}, err
		}
	}

	return j, nil
}

// Append appends one or multiple journal.StorableEvent(s) onto the journal table.
//
// The database assigns the sequence numbers; entries supplied in one call are
// inserted in argument order. The ledger serializes its mutations, so the
// journal needs no optimistic concurrency control of its own.
func (j Journal) Append(
	ctx context.Context,
	event journal.StorableEvent,
	additionalEvents ...journal.StorableEvent,
) error {

	allEvents := journal.StorableEvents{event}
	allEvents = append(allEvents, additionalEvents...)

	sqlQuery, buildQueryErr := j.buildInsertQuery(allEvents)
	if buildQueryErr != nil {
		if j.logger != nil {
			j.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrEntryCount, len(allEvents))
		}

		return buildQueryErr
	}

	start := time.Now()
	tag, execErr := j.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		if j.logger != nil {
			j.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return errors.Join(journal.ErrAppendingEntryFailed, execErr)
	}

	if _, rowsAffectedErr := tag.RowsAffected(); rowsAffectedErr != nil {
		if j.logger != nil {
			j.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		}

		return errors.Join(journal.ErrAppendingEntryFailed, rowsAffectedErr)
	}

	j.logOperation(
		logMsgEntriesAppended,
		logAttrEntryCount, len(allEvents),
		logAttrDurationMS, j.durationToMilliseconds(duration),
	)

	return nil
}

// Read retrieves all entries from the journal table in sequence order
// and returns them as journal.StorableEvents as well as the highest
// journal.SequenceNumberUint at the time of the read.
func (j Journal) Read(ctx context.Context) (
	journal.StorableEvents,
	journal.SequenceNumberUint,
	error,
) {

	var empty journal.StorableEvents

	sqlQuery, buildQueryErr := j.buildSelectQuery()
	if buildQueryErr != nil {
		if j.logger != nil {
			j.logger.Error(logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		}

		return empty, 0, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionRead, duration)

	if queryErr != nil {
		if j.logger != nil {
			j.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return empty, 0, errors.Join(journal.ErrReadingEntriesFailed, queryErr)
	}
	defer j.closeRows(rows)

	entries, maxSequenceNumber, scanErr := j.processQueryResults(rows)
	if scanErr != nil {
		return empty, 0, scanErr
	}

	j.logOperation(
		logMsgReadCompleted,
		logAttrEntryCount, len(entries),
		logAttrDurationMS, j.durationToMilliseconds(duration))

	return entries, maxSequenceNumber, nil
}

type queryResultRow struct {
	eventType         string
	payload           []byte
	metadata          []byte
	occurredAt        time.Time
	maxSequenceNumber journal.SequenceNumberUint
}

// processQueryResults processes database rows and converts them to storable events.
func (j Journal) processQueryResults(rows adapters.DBRows) (
	journal.StorableEvents,
	journal.SequenceNumberUint,
	error,
) {

	var empty journal.StorableEvents
	result := queryResultRow{}
	entries := make(journal.StorableEvents, 0)
	maxSequenceNumber := journal.SequenceNumberUint(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.eventType, &result.occurredAt, &result.payload, &result.metadata, &result.maxSequenceNumber)
		if rowScanErr != nil {
			if j.logger != nil {
				j.logger.Error(logMsgScanRowFailed, logAttrError, rowScanErr.Error())
			}

			return empty, 0, errors.Join(journal.ErrScanningDBRowFailed, rowScanErr)
		}

		entry, buildStorableErr := journal.BuildStorableEvent(result.eventType, result.occurredAt, result.payload, result.metadata)
		if buildStorableErr != nil {
			if j.logger != nil {
				j.logger.Error(logMsgBuildStorableFailed, logAttrError, buildStorableErr.Error(), logAttrEventType, result.eventType)
			}

			return empty, 0, errors.Join(journal.ErrBuildingStorableEventFailed, buildStorableErr)
		}

		entries = append(entries, entry)
		maxSequenceNumber = result.maxSequenceNumber
	}

	return entries, maxSequenceNumber, nil
}

// closeRows safely closes database rows and logs any errors.
func (j Journal) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if j.logger != nil {
			j.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

func (j Journal) buildSelectQuery() (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.journalTableName).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j Journal) buildInsertQuery(allEvents journal.StorableEvents) (sqlQueryString, error) {
	records := make([]goqu.Record, 0, len(allEvents))

	for _, event := range allEvents {
		records = append(records, goqu.Record{
			colEventType:  event.EventType,
			colOccurredAt: event.OccurredAt,
			colPayload:    event.PayloadJSON,
			colMetadata:   event.MetadataJSON,
		})
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(j.journalTableName).
		Rows(records)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// logQueryWithDuration logs the executed SQL with timing at debug level.
func (j Journal) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if j.logger == nil {
		return
	}

	j.logger.Debug(logMsgSQLExecuted+action, logAttrQuery, sqlQuery, logAttrDurationMS, j.durationToMilliseconds(duration))
}

// logOperation logs operational information at info level.
func (j Journal) logOperation(msg string, args ...any) {
	if j.logger == nil {
		return
	}

	j.logger.Info(msg, args...)
}

// durationToMilliseconds converts a duration to milliseconds with three decimals.
func (j Journal) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
