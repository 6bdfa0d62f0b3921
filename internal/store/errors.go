package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when no credential exists for the
	// requested scope key.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrCredentialNotSaved is returned when an INSERT of a credential
	// completes without error but the number of affected rows is zero,
	// indicating that nothing was actually persisted.
	ErrCredentialNotSaved = errors.New("credential was not saved")

	// ErrEntryNotSaved is returned when an operation log INSERT affects
	// zero rows.
	ErrEntryNotSaved = errors.New("operation log entry was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
