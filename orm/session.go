package orm

import (
	"context"
	"errors"
	"fmt"
)

// Mapping describes how a Session writes an entity of type T.
type Mapping[T any] struct {
	// Query returns the generated query factory bound to db.
	Query func(db Querier) *Query[T]

	// ID returns the generated identity, or 0 before insert. Nil for
	// entities whose key is assigned by the application.
	ID func(t *T) int64

	// References are the single-valued associations whose join column
	// lives in T's table.
	References []Reference[T]

	// Collections are the multi-valued associations owned by T.
	Collections []Collection[T]
}

// Reference is an owned to-one association held by a join column.
type Reference[T any] struct {
	Name   string
	Column string

	// Nullable records whether the join column accepts NULL. The database
	// enforces it; the Session only reports it in ErrTransientReference.
	Nullable bool

	// Target returns the referenced entity pointer and its identity.
	// It must return a nil entity (not a typed nil) when unset.
	Target func(t *T) (entity any, id int64)

	// SetFK stores the join column value on t before INSERT.
	SetFK func(t *T, id *int64)
}

// Collection is an owned to-many association.
//
// With JoinTable set, rows (SourceColumn, TargetColumn) are inserted into
// it. Without it, the association is a join column on TargetTable:
// SourceColumn is set on every row whose TargetColumn matches an element.
type Collection[T any] struct {
	Name         string
	JoinTable    string
	TargetTable  string
	SourceColumn string
	TargetColumn string

	Elements func(t *T) []Ref
}

// Ref is an element of a Collection: the entity pointer and its identity.
type Ref struct {
	Entity any
	ID     int64
}

type opKind int

const (
	opPersist opKind = iota
	opMerge
	opRemove
)

type op struct {
	kind   opKind
	entity any
	name   string

	// write performs the statement and returns the deferred work that must
	// run after every queued insert.
	write func(ctx context.Context, s *Session) (fixups []func(context.Context) error, err error)
	// collections writes owned collections once all identities are known.
	collections func(ctx context.Context, s *Session) error
}

// Session is a unit of work over one database transaction. Entities queued
// with Persist, Merge and Remove are written in queue order on Flush.
// A Session holds no cache: reads always go to the database.
type Session struct {
	tx  *Tx
	ops []op

	// state tracks queued entities: false while pending, true once inserted.
	state map[any]bool

	rollbackOnly bool
	closed       bool
}

// Begin opens a Session in a new transaction on db.
func Begin(ctx context.Context, db *DB) (*Session, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{tx: tx, state: make(map[any]bool)}, nil
}

// Querier returns the transaction so that reads see pending writes.
func (s *Session) Querier() Querier { return s.tx }

// Persist queues v for insertion.
func Persist[T any](s *Session, m *Mapping[T], v *T) {
	s.state[v] = false
	s.ops = append(s.ops, op{
		kind:   opPersist,
		entity: v,
		name:   m.Query(s.tx).Table(),
		write: func(ctx context.Context, s *Session) ([]func(context.Context) error, error) {
			fixups, err := resolveReferences(s, m, v)
			if err != nil {
				return nil, err
			}
			if err := m.Query(s.tx).Create(ctx, v); err != nil {
				return nil, err
			}
			s.state[v] = true
			return fixups, nil
		},
		collections: func(ctx context.Context, s *Session) error {
			return writeCollections(ctx, s, m, v, false)
		},
	})
}

// Merge queues v for update. An entity without an identity yet is
// inserted instead, and an entity keyed by the application is upserted.
// Flush fails with ErrNotFound when the row to update does not exist.
func Merge[T any](s *Session, m *Mapping[T], v *T) {
	if m.ID != nil && m.ID(v) == 0 {
		Persist(s, m, v)
		return
	}
	s.ops = append(s.ops, op{
		kind:   opMerge,
		entity: v,
		name:   m.Query(s.tx).Table(),
		write: func(ctx context.Context, s *Session) ([]func(context.Context) error, error) {
			fixups, err := resolveReferences(s, m, v)
			if err != nil {
				return nil, err
			}
			if m.ID == nil {
				return fixups, m.Query(s.tx).Upsert(ctx, v)
			}
			if err := m.Query(s.tx).Update(ctx, v); err != nil {
				return nil, err
			}
			return fixups, nil
		},
		collections: func(ctx context.Context, s *Session) error {
			return writeCollections(ctx, s, m, v, true)
		},
	})
}

// Remove queues v for deletion. Rows of owned join tables go first, and
// rows holding an owned join column are detached from v.
func Remove[T any](s *Session, m *Mapping[T], v *T) {
	s.ops = append(s.ops, op{
		kind:   opRemove,
		entity: v,
		name:   m.Query(s.tx).Table(),
		write: func(ctx context.Context, s *Session) ([]func(context.Context) error, error) {
			if m.ID != nil {
				for _, c := range m.Collections {
					var err error
					if c.JoinTable == "" {
						err = unlink(ctx, s, c, m.ID(v))
					} else {
						err = DeleteJoinPairs(ctx, s.tx, c.JoinTable, c.SourceColumn, []int64{m.ID(v)})
					}
					if err != nil {
						return nil, err
					}
				}
			}
			return nil, m.Query(s.tx).Remove(ctx, v)
		},
	})
}

// resolveReferences sets every owned join column of v according to the
// state of its target and returns the fix-ups for targets still pending.
func resolveReferences[T any](s *Session, m *Mapping[T], v *T) ([]func(context.Context) error, error) {
	var fixups []func(context.Context) error
	for _, r := range m.References {
		target, id := r.Target(v)
		switch {
		case target == nil:
			r.SetFK(v, nil)
		case id != 0:
			r.SetFK(v, &id)
		case s.pending(target):
			r.SetFK(v, nil)
			fixups = append(fixups, func(ctx context.Context) error {
				_, id := r.Target(v)
				if id == 0 {
					return fmt.Errorf("%w: %s", ErrTransientReference, r.describe())
				}
				r.SetFK(v, &id)
				return m.Query(s.tx).UpdateColumn(ctx, v, r.Column, id)
			})
		default:
			return nil, fmt.Errorf("%w: %s", ErrTransientReference, r.describe())
		}
	}
	return fixups, nil
}

// describe names the reference and its join column, e.g. "Address (add_fk
// NOT NULL)".
func (r Reference[T]) describe() string {
	if r.Nullable {
		return r.Name + " (" + r.Column + ")"
	}
	return r.Name + " (" + r.Column + " NOT NULL)"
}

func writeCollections[T any](ctx context.Context, s *Session, m *Mapping[T], v *T, replace bool) error {
	if m.ID == nil {
		return nil
	}
	source := m.ID(v)
	for _, c := range m.Collections {
		elems := c.Elements(v)
		if c.JoinTable == "" {
			if replace {
				if err := unlink(ctx, s, c, source); err != nil {
					return err
				}
			}
			for _, e := range elems {
				if e.ID == 0 {
					return fmt.Errorf("%w: %s", ErrTransientReference, c.Name)
				}
				q := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?",
					s.tx.d.QuoteIdent(c.TargetTable), s.tx.d.QuoteIdent(c.SourceColumn), s.tx.d.QuoteIdent(c.TargetColumn))
				if _, err := s.tx.ExecContext(ctx, rewritePlaceholders(s.tx.d, q), source, e.ID); err != nil {
					return err //nolint:wrapcheck // classified by Flush
				}
			}
			continue
		}

		if replace {
			if err := DeleteJoinPairs(ctx, s.tx, c.JoinTable, c.SourceColumn, []int64{source}); err != nil {
				return err
			}
		}
		pairs := make([]JoinPair[int64, int64], 0, len(elems))
		for _, e := range elems {
			if e.ID == 0 {
				return fmt.Errorf("%w: %s", ErrTransientReference, c.Name)
			}
			pairs = append(pairs, JoinPair[int64, int64]{Source: source, Target: e.ID})
		}
		if err := InsertJoinPairs(ctx, s.tx, c.JoinTable, c.SourceColumn, c.TargetColumn, pairs); err != nil {
			return err
		}
	}
	return nil
}

// unlink sets the join column of c to NULL on every target row that
// points at source.
func unlink[T any](ctx context.Context, s *Session, c Collection[T], source int64) error {
	d := s.tx.d
	q := fmt.Sprintf("UPDATE %s SET %s = NULL WHERE %s = ?",
		d.QuoteIdent(c.TargetTable), d.QuoteIdent(c.SourceColumn), d.QuoteIdent(c.SourceColumn))
	_, err := s.tx.ExecContext(ctx, rewritePlaceholders(d, q), source)
	return err //nolint:wrapcheck // classified by Flush
}

func (s *Session) pending(entity any) bool {
	inserted, ok := s.state[entity]
	return ok && !inserted
}

// Flush writes every queued operation inside the transaction. A failed
// flush marks the Session rollback-only; database integrity errors are
// returned as *ConstraintError.
func (s *Session) Flush(ctx context.Context) error {
	if s.closed {
		return errors.New("orm: session is closed")
	}
	if s.rollbackOnly {
		return ErrRollbackOnly
	}
	ops := s.ops
	s.ops = nil

	var fixups []func(context.Context) error
	for _, o := range ops {
		fs, err := o.write(ctx, s)
		if err != nil {
			return s.fail(o.name, err)
		}
		fixups = append(fixups, fs...)
	}
	for _, f := range fixups {
		if err := f(ctx); err != nil {
			return s.fail("fix-up", err)
		}
	}
	for _, o := range ops {
		if o.collections == nil {
			continue
		}
		if err := o.collections(ctx, s); err != nil {
			return s.fail(o.name, err)
		}
	}
	return nil
}

func (s *Session) fail(what string, err error) error {
	s.rollbackOnly = true
	return fmt.Errorf("orm: flush %s: %w", what, Classify(err))
}

// Commit flushes and commits. On any failure the transaction is rolled
// back and the returned error wraps ErrRollback and the cause.
func (s *Session) Commit(ctx context.Context) error {
	if s.closed {
		return errors.New("orm: session is closed")
	}
	if err := s.Flush(ctx); err != nil {
		_ = s.Rollback()
		return fmt.Errorf("%w: %w", ErrRollback, err)
	}
	s.closed = true
	if err := s.tx.Commit(); err != nil {
		_ = s.tx.Rollback()
		return fmt.Errorf("%w: %w", ErrRollback, Classify(err))
	}
	return nil
}

// Rollback discards the transaction. It is safe to call after Commit.
func (s *Session) Rollback() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.ops = nil
	return s.tx.Rollback()
}
