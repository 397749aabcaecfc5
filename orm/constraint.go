package orm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ConstraintKind identifies which integrity rule the database enforced.
type ConstraintKind int

const (
	ConstraintUnknown ConstraintKind = iota
	ConstraintNotNull
	ConstraintForeignKey
	ConstraintUnique
	ConstraintCheck
	ConstraintTooLong
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintNotNull:
		return "not null"
	case ConstraintForeignKey:
		return "foreign key"
	case ConstraintUnique:
		return "unique"
	case ConstraintCheck:
		return "check"
	case ConstraintTooLong:
		return "value too long"
	default:
		return "constraint"
	}
}

// ConstraintError is a database integrity violation raised while flushing.
// Err is the original driver error.
type ConstraintError struct {
	Kind   ConstraintKind
	Column string
	Err    error
}

func (e *ConstraintError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("orm: %s violation on %s: %v", e.Kind, e.Column, e.Err)
	}
	return fmt.Sprintf("orm: %s violation: %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// AsConstraint reports whether err wraps a *ConstraintError.
func AsConstraint(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// Classify converts driver-specific integrity errors from pgx, lib/pq,
// go-sql-driver/mysql and modernc sqlite into a *ConstraintError.
// Any other error is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsConstraint(err); ok {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if kind, ok := sqlStateKind(pgErr.Code); ok {
			return &ConstraintError{Kind: kind, Column: pgErr.ColumnName, Err: err}
		}
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if kind, ok := sqlStateKind(string(pqErr.Code)); ok {
			return &ConstraintError{Kind: kind, Column: pqErr.Column, Err: err}
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if kind, ok := mysqlKind(myErr.Number); ok {
			return &ConstraintError{Kind: kind, Err: err}
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		if kind, ok := sqliteKind(liteErr.Code(), liteErr.Error()); ok {
			return &ConstraintError{Kind: kind, Err: err}
		}
	}
	return err
}

// sqlStateKind maps PostgreSQL SQLSTATE codes.
func sqlStateKind(code string) (ConstraintKind, bool) {
	switch code {
	case "23502":
		return ConstraintNotNull, true
	case "23503":
		return ConstraintForeignKey, true
	case "23505":
		return ConstraintUnique, true
	case "23514":
		return ConstraintCheck, true
	case "22001":
		return ConstraintTooLong, true
	}
	if strings.HasPrefix(code, "23") {
		return ConstraintUnknown, true
	}
	return ConstraintUnknown, false
}

func mysqlKind(number uint16) (ConstraintKind, bool) {
	switch number {
	case 1048, 1364:
		return ConstraintNotNull, true
	case 1451, 1452, 1216, 1217:
		return ConstraintForeignKey, true
	case 1062:
		return ConstraintUnique, true
	case 3819:
		return ConstraintCheck, true
	case 1406:
		return ConstraintTooLong, true
	}
	return ConstraintUnknown, false
}

func sqliteKind(code int, msg string) (ConstraintKind, bool) {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return ConstraintNotNull, true
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ConstraintForeignKey, true
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return ConstraintUnique, true
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return ConstraintCheck, true
	}
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return ConstraintUnknown, false
	}
	// Extended result codes disabled: fall back to the message text.
	switch {
	case strings.Contains(msg, "NOT NULL"):
		return ConstraintNotNull, true
	case strings.Contains(msg, "FOREIGN KEY"):
		return ConstraintForeignKey, true
	case strings.Contains(msg, "UNIQUE"):
		return ConstraintUnique, true
	case strings.Contains(msg, "CHECK"):
		return ConstraintCheck, true
	}
	return ConstraintUnknown, true
}
