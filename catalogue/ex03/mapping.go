package ex03

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// NewsMapping writes News rows. The key is assigned by the caller.
var NewsMapping = &orm.Mapping[News]{
	Query: NewsQuery,
}

// Find returns the news identified by key.
func Find(ctx context.Context, db orm.Querier, key NewsKey) (News, error) {
	return NewsQuery(db).Find(ctx, key.Title, key.Language)
}

// AllTitles returns the title of every news item.
func AllTitles(ctx context.Context, db orm.Querier) ([]string, error) {
	return orm.Pluck[News, string](ctx, NewsQuery(db).OrderBy("title"), "title")
}

// Clear deletes every row of the example.
func Clear(ctx context.Context, db orm.Querier) error {
	return NewsQuery(db).DeleteAll(ctx)
}
