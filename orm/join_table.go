package orm

import (
	"context"
	"fmt"
	"strings"
)

// JoinPair holds a source–target pair read from a join table.
type JoinPair[S, T comparable] struct {
	Source S
	Target T
}

// QueryJoinTable reads (sourceCol, targetCol) rows from the given join table
// where sourceCol IN (sourceIDs), ordered by source then target. It returns
// a slice of JoinPair.
//
// The "join table" may also be the target entity's own table when the
// association is held by a join column on the many side.
func QueryJoinTable[S, T comparable](
	ctx context.Context, db Querier, table, sourceCol, targetCol string, sourceIDs []S,
) ([]JoinPair[S, T], error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}

	d := db.dialect()
	qi := d.QuoteIdent

	placeholders := make([]string, len(sourceIDs))
	args := make([]any, len(sourceIDs))
	for i, id := range sourceIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s IN (%s) ORDER BY %s, %s",
		qi(sourceCol), qi(targetCol), qi(table), qi(sourceCol),
		strings.Join(placeholders, ", "),
		qi(sourceCol), qi(targetCol),
	)

	query = rewritePlaceholders(d, query)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	var pairs []JoinPair[S, T]
	for rows.Next() {
		var p JoinPair[S, T]
		if err := rows.Scan(&p.Source, &p.Target); err != nil {
			return nil, err //nolint:wrapcheck // pass through
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err() //nolint:wrapcheck // pass through
}

// InsertJoinPairs writes one join-table row per pair in a single statement.
func InsertJoinPairs[S, T comparable](
	ctx context.Context, db Querier, table, sourceCol, targetCol string, pairs []JoinPair[S, T],
) error {
	if len(pairs) == 0 {
		return nil
	}

	d := db.dialect()
	qi := d.QuoteIdent

	values := make([]string, len(pairs))
	args := make([]any, 0, 2*len(pairs))
	for i, p := range pairs {
		values[i] = "(?, ?)"
		args = append(args, p.Source, p.Target)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES %s",
		qi(table), qi(sourceCol), qi(targetCol), strings.Join(values, ", "),
	)

	_, err := db.ExecContext(ctx, rewritePlaceholders(d, query), args...)
	return err //nolint:wrapcheck // pass through
}

// DeleteJoinPairs removes every join-table row whose sourceCol is in sourceIDs.
func DeleteJoinPairs[S comparable](
	ctx context.Context, db Querier, table, sourceCol string, sourceIDs []S,
) error {
	if len(sourceIDs) == 0 {
		return nil
	}

	d := db.dialect()
	qi := d.QuoteIdent

	placeholders := make([]string, len(sourceIDs))
	args := make([]any, len(sourceIDs))
	for i, id := range sourceIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s IN (%s)",
		qi(table), qi(sourceCol), strings.Join(placeholders, ", "),
	)

	_, err := db.ExecContext(ctx, rewritePlaceholders(d, query), args...)
	return err //nolint:wrapcheck // pass through
}

// UniqueTargets extracts deduplicated target values from a slice of JoinPair.
func UniqueTargets[S, T comparable](pairs []JoinPair[S, T]) []T {
	seen := make(map[T]struct{}, len(pairs))
	result := make([]T, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Target]; !ok {
			seen[p.Target] = struct{}{}
			result = append(result, p.Target)
		}
	}
	return result
}

// rewritePlaceholders converts ? to dialect-specific placeholders ($1, $2, …).
func rewritePlaceholders(d Dialect, query string) string {
	if positional(d) {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	idx := 1
	for i := range len(query) {
		if query[i] == '?' {
			b.WriteString(d.Placeholder(idx))
			idx++
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

// GroupBySource groups JoinPair values by source key into a map[S][]T.
func GroupBySource[S, T comparable](pairs []JoinPair[S, T]) map[S][]T {
	m := make(map[S][]T)
	for _, p := range pairs {
		m[p.Source] = append(m[p.Source], p.Target)
	}
	return m
}
