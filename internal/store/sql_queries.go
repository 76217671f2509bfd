// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	syncStateTable = "sync_state"

	colStateKey   = "state_key"
	colStateValue = "state_val"
	colUpdatedAt  = "updated_at"
)

// psql is the statement builder for SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetStateQuery(key string) (string, []any, error) {
	return psql.
		Select(colStateValue).
		From(syncStateTable).
		Where(sq.Eq{colStateKey: key}).
		ToSql()
}

func buildUpsertStateQuery(key string, value []byte, now time.Time) (string, []any, error) {
	return psql.
		Insert(syncStateTable).
		Columns(colStateKey, colStateValue, colUpdatedAt).
		Values(key, string(value), now.UTC()).
		Suffix("ON CONFLICT(" + colStateKey + ") DO UPDATE SET " +
			colStateValue + " = excluded." + colStateValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt).
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return psql.
		Delete(syncStateTable).
		Where(sq.Eq{colStateKey: key}).
		ToSql()
}
