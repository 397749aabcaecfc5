package orm

import (
	"context"
	"database/sql"
	"errors"
)

var errRecorderRows = errors.New("recorder: queries return no rows")

// Recorder is a Querier that keeps every statement instead of running it.
// Exec calls succeed with zero results and queries fail with
// errRecorderRows, so only the SQL built before the round trip is checked.
type Recorder struct {
	D          Dialect
	Statements []Statement
}

// Statement is one recorded statement with its bind arguments.
type Statement struct {
	SQL  string
	Args []any
}

func NewRecorder(d Dialect) *Recorder {
	return &Recorder{D: d}
}

var _ Querier = (*Recorder)(nil)

func (r *Recorder) QueryContext(_ context.Context, query string, args ...any) (*sql.Rows, error) {
	r.Statements = append(r.Statements, Statement{query, args})
	return nil, errRecorderRows
}

func (r *Recorder) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	r.Statements = append(r.Statements, Statement{query, args})
	return noResult{}, nil
}

// Last is the most recent statement. It panics when nothing was recorded.
func (r *Recorder) Last() Statement {
	return r.Statements[len(r.Statements)-1]
}

// SQL lists the recorded statements without their arguments.
func (r *Recorder) SQL() []string {
	out := make([]string, len(r.Statements))
	for i, s := range r.Statements {
		out[i] = s.SQL
	}
	return out
}

func (r *Recorder) dialect() Dialect { return r.D }

type noResult struct{}

func (noResult) LastInsertId() (int64, error) { return 0, nil }
func (noResult) RowsAffected() (int64, error) { return 0, nil }
