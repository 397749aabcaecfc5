package ex02

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
	"github.com/osakanaya/beginningee6-chapter03/scope"
)

// NewsMapping writes News rows. The key is assigned by the caller, so
// Merge upserts.
var NewsMapping = &orm.Mapping[News]{
	Query: NewsQuery,
}

// Find returns the news identified by id.
func Find(ctx context.Context, db orm.Querier, id NewsID) (News, error) {
	return NewsQuery(db).Find(ctx, id.Title, id.Language)
}

// FindAll returns the news identified by ids, ordered by key. Ids without
// a row are skipped.
func FindAll(ctx context.Context, db orm.Querier, ids ...NewsID) ([]News, error) {
	keys := make([][]any, len(ids))
	for i, id := range ids {
		keys[i] = []any{id.Title, id.Language}
	}
	q := NewsQuery(db)
	return q.Scopes(scope.InKeys(q.PrimaryKey(), keys), scope.OrderBy("title, language")).All(ctx)
}

// AllTitles returns the title of every news item.
func AllTitles(ctx context.Context, db orm.Querier) ([]string, error) {
	return orm.Pluck[News, string](ctx, NewsQuery(db).OrderBy("title"), "title")
}

// Clear deletes every row of the example.
func Clear(ctx context.Context, db orm.Querier) error {
	return NewsQuery(db).DeleteAll(ctx)
}
