package ex01_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex01"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func TestPersistAssignsIdentity(t *testing.T) {
	db := dbtest.Open(t, "ex01")
	ctx := context.Background()

	book := &ex01.Book{
		Title:       "The Hitchhiker's Guide to the Galaxy",
		Price:       12.5,
		Description: "Scifi book",
		ISBN:        "1-84023-742-2",
		NbOfPage:    354,
	}

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex01.BookMapping, book)
	require.NoError(t, s.Commit(ctx))

	assert.NotZero(t, book.ID)

	found, err := ex01.Books(db).Find(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, *book, found)
}

func TestIdentitiesAreUnique(t *testing.T) {
	db := dbtest.Open(t, "ex01")
	ctx := context.Background()

	a := &ex01.Book{Title: "Dune"}
	b := &ex01.Book{Title: "Hyperion"}

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex01.BookMapping, a)
	orm.Persist(s, ex01.BookMapping, b)
	require.NoError(t, s.Commit(ctx))

	assert.NotZero(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRollbackDiscardsInsert(t *testing.T) {
	db := dbtest.Open(t, "ex01")
	ctx := context.Background()

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex01.BookMapping, &ex01.Book{Title: "Dune"})
	require.NoError(t, s.Flush(ctx))
	require.NoError(t, s.Rollback())

	n, err := ex01.Books(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex01")
	ctx := context.Background()

	require.NoError(t, ex01.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex01.Clear(ctx, db))

	n, err := ex01.Books(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
