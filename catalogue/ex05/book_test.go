package ex05_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex05"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func ptr[T any](v T) *T { return &v }

func newBook(title *string, description string) *ex05.Book {
	return &ex05.Book{
		Title:         title,
		Price:         12.5,
		Description:   description,
		ISBN:          "1-84023-742-2",
		NbOfPage:      ptr(354),
		Illustrations: false,
	}
}

func persist(ctx context.Context, db *orm.DB, b *ex05.Book) error {
	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, ex05.BookMapping, b)
	return s.Commit(ctx)
}

func merge(ctx context.Context, db *orm.DB, b *ex05.Book) error {
	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Merge(s, ex05.BookMapping, b)
	return s.Commit(ctx)
}

func assertConstraint(t *testing.T, err error, kinds ...orm.ConstraintKind) {
	t.Helper()

	require.ErrorIs(t, err, orm.ErrRollback)
	ce, ok := orm.AsConstraint(err)
	require.True(t, ok, "want a constraint error, got %v", err)
	assert.Contains(t, kinds, ce.Kind)
}

func TestCreateABook(t *testing.T) {
	db := dbtest.Open(t, "ex05")

	book := newBook(ptr("The Hitchhiker's Guide to the Galaxy"), "1234567890123456")
	require.NoError(t, persist(context.Background(), db, book))
	assert.NotZero(t, book.ID)
}

func TestNullTitleRollsBackOnCommit(t *testing.T) {
	db := dbtest.Open(t, "ex05")

	err := persist(context.Background(), db, newBook(nil, "1234567890123456"))
	assertConstraint(t, err, orm.ConstraintNotNull)
}

func TestNullTitleFailsOnFlush(t *testing.T) {
	db := dbtest.Open(t, "ex05")
	ctx := context.Background()

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	defer func() { _ = s.Rollback() }()

	orm.Persist(s, ex05.BookMapping, newBook(nil, "1234567890123456"))
	err = s.Flush(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, orm.ErrRollback)
	ce, ok := orm.AsConstraint(err)
	require.True(t, ok)
	assert.Equal(t, orm.ConstraintNotNull, ce.Kind)

	// The session can only be rolled back now.
	assert.ErrorIs(t, s.Flush(ctx), orm.ErrRollbackOnly)
}

func TestNullPageCountRollsBackOnUpdate(t *testing.T) {
	db := dbtest.Open(t, "ex05")
	ctx := context.Background()

	book := newBook(ptr("The Hitchhiker's Guide to the Galaxy"), "1234567890123456")
	require.NoError(t, persist(ctx, db, book))

	persisted, err := ex05.Books(db).Find(ctx, book.ID)
	require.NoError(t, err)
	persisted.NbOfPage = nil

	assertConstraint(t, merge(ctx, db, &persisted), orm.ConstraintNotNull)

	reloaded, err := ex05.Books(db).Find(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.NbOfPage)
	assert.Equal(t, 354, *reloaded.NbOfPage)
}

func TestTitleUpdateIsIgnored(t *testing.T) {
	db := dbtest.Open(t, "ex05")
	ctx := context.Background()

	book := newBook(ptr("The Hitchhiker's Guide to the Galaxy"), "1234567890123456")
	require.NoError(t, persist(ctx, db, book))

	persisted, err := ex05.Books(db).Find(ctx, book.ID)
	require.NoError(t, err)
	persisted.Title = ptr("Updated title")
	persisted.Price = 15
	require.NoError(t, merge(ctx, db, &persisted))

	updated, err := ex05.Books(db).Find(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Hitchhiker's Guide to the Galaxy", *updated.Title)
	assert.Equal(t, float32(15), updated.Price)
}

func TestDescriptionTooLongOnCreate(t *testing.T) {
	db := dbtest.Open(t, "ex05")

	err := persist(context.Background(), db, newBook(ptr("The Hitchhiker's Guide to the Galaxy"), "12345678901234567"))
	assertConstraint(t, err, orm.ConstraintTooLong, orm.ConstraintCheck)
}

func TestDescriptionTooLongOnUpdate(t *testing.T) {
	db := dbtest.Open(t, "ex05")
	ctx := context.Background()

	book := newBook(ptr("The Hitchhiker's Guide to the Galaxy"), "1234567890123456")
	require.NoError(t, persist(ctx, db, book))

	persisted, err := ex05.Books(db).Find(ctx, book.ID)
	require.NoError(t, err)
	persisted.Description = "12345678901234567"

	assertConstraint(t, merge(ctx, db, &persisted), orm.ConstraintTooLong, orm.ConstraintCheck)
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex05")
	ctx := context.Background()

	require.NoError(t, ex05.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex05.Clear(ctx, db))

	n, err := ex05.Books(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
