package ex03_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex03"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func persistNews(t *testing.T, db *orm.DB) *ex03.News {
	t.Helper()

	news := &ex03.News{
		Title:    "Richard Wright has died",
		Language: "EN",
		Content:  "The keyboard of Pink Floyd has died today",
	}
	ctx := context.Background()
	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex03.NewsMapping, news)
	require.NoError(t, s.Commit(ctx))
	return news
}

func TestFindByKey(t *testing.T) {
	db := dbtest.Open(t, "ex03")
	news := persistNews(t, db)

	found, err := ex03.Find(context.Background(), db, news.Key())
	require.NoError(t, err)
	assert.Equal(t, *news, found)
}

func TestFindByAnotherEqualKey(t *testing.T) {
	db := dbtest.Open(t, "ex03")
	persistNews(t, db)

	key := ex03.NewsKey{Title: "Richard Wright has died", Language: "EN"}
	found, err := ex03.Find(context.Background(), db, key)
	require.NoError(t, err)

	assert.Equal(t, key, found.Key())
	assert.Equal(t, "The keyboard of Pink Floyd has died today", found.Content)
}

func TestKeysAreComparable(t *testing.T) {
	a := ex03.News{Title: "t", Language: "EN", Content: "one"}
	b := ex03.News{Title: "t", Language: "EN", Content: "two"}
	c := ex03.News{Title: "t", Language: "FR"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())

	seen := map[ex03.NewsKey]bool{a.Key(): true}
	assert.True(t, seen[b.Key()])
}

func TestAllTitles(t *testing.T) {
	db := dbtest.Open(t, "ex03")
	persistNews(t, db)

	titles, err := ex03.AllTitles(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Richard Wright has died"}, titles)
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex03")
	ctx := context.Background()

	require.NoError(t, ex03.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex03.Clear(ctx, db))

	_, err := ex03.Find(ctx, db, ex03.NewsKey{Title: "Richard Wright has died", Language: "EN"})
	assert.ErrorIs(t, err, orm.ErrNotFound)
}
