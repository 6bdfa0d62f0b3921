package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The PostgreSQL implementation inspects driver error codes;
// SQLite operations are never classified as retryable.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB together with the driver name, the placeholder format
// used by the query builder, and an error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
