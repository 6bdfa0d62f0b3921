package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/models"
)

// operationLogRepository is the SQL-backed implementation of
// [OperationLogRepository].
type operationLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewOperationLogRepository constructs an [OperationLogRepository] backed by
// the provided database connection and logger.
func NewOperationLogRepository(db *DB, logger *logger.Logger) OperationLogRepository {
	return &operationLogRepository{
		DB:     db,
		logger: logger,
	}
}

type operationLogRow struct {
	id        string
	kind      string
	title     string
	details   string
	createdAt int64
}

// AppendEntry stores one log entry. Timestamps are persisted as unix seconds
// so the column sorts identically under both drivers.
func (r *operationLogRepository) AppendEntry(ctx context.Context, entry models.OperationLogEntry) error {
	log := logger.FromContext(ctx)

	row := operationLogRow{
		id:        entry.ID,
		kind:      entry.Kind,
		title:     entry.Title,
		details:   entry.Details,
		createdAt: entry.CreatedAt.Unix(),
	}

	query, args, err := buildAppendEntryQuery(r.DB.builder, row)
	if err != nil {
		log.Err(err).
			Str("func", "operationLogRepository.AppendEntry").
			Str("kind", entry.Kind).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationLogRepository.AppendEntry").
			Str("kind", entry.Kind).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute statement for appending log entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "operationLogRepository.AppendEntry").
			Str("kind", entry.Kind).
			Msg("provided log entry was not saved")
		return ErrEntryNotSaved
	}

	return nil
}

// RecentEntries returns up to limit entries, newest first.
//
// Returns an empty slice when the log is empty.
func (r *operationLogRepository) RecentEntries(ctx context.Context, limit int) ([]models.OperationLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentEntriesQuery(r.DB.builder, limit)
	if err != nil {
		log.Err(err).
			Str("func", "operationLogRepository.RecentEntries").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationLogRepository.RecentEntries").
			Int("limit", limit).
			Msg("failed to execute query for getting recent log entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.OperationLogEntry, 0, limit)

	for rows.Next() {
		var row operationLogRow

		scanErr := rows.Scan(&row.id, &row.kind, &row.title, &row.details, &row.createdAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "operationLogRepository.RecentEntries").
				Msg("failed to scan log entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, models.OperationLogEntry{
			ID:        row.id,
			Kind:      row.kind,
			Title:     row.title,
			Details:   row.details,
			CreatedAt: time.Unix(row.createdAt, 0).UTC(),
		})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "operationLogRepository.RecentEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
