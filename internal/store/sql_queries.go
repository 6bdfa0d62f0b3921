package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	credentialsTable  = "credentials"
	operationLogTable = "operation_log"
)

var credentialColumns = []string{
	"scope_key", "public_key", "private_key", "signature",
	"contracts", "user_address", "start_timestamp", "duration_days",
}

var operationLogColumns = []string{
	"id", "kind", "title", "details", "created_at",
}

// buildSaveCredentialQuery builds an upsert keyed by scope_key: re-signing a
// scope replaces the previous credential.
func buildSaveCredentialQuery(b sq.StatementBuilderType, row credentialRow) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(
			row.scopeKey, row.publicKey, row.privateKey, row.signature,
			row.contracts, row.userAddress, row.startTimestamp, row.durationDays,
		).
		Suffix(`ON CONFLICT (scope_key) DO UPDATE SET
			public_key = excluded.public_key,
			private_key = excluded.private_key,
			signature = excluded.signature,
			contracts = excluded.contracts,
			user_address = excluded.user_address,
			start_timestamp = excluded.start_timestamp,
			duration_days = excluded.duration_days`).
		ToSql()
}

func buildGetCredentialQuery(b sq.StatementBuilderType, scopeKey string) (string, []any, error) {
	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"scope_key": scopeKey}).
		ToSql()
}

func buildAppendEntryQuery(b sq.StatementBuilderType, row operationLogRow) (string, []any, error) {
	return b.Insert(operationLogTable).
		Columns(operationLogColumns...).
		Values(row.id, row.kind, row.title, row.details, row.createdAt).
		ToSql()
}

func buildRecentEntriesQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select(operationLogColumns...).
		From(operationLogTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}
