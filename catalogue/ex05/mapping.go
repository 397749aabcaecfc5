package ex05

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// BookMapping writes Book rows. Updates never touch book_title.
var BookMapping = &orm.Mapping[Book]{
	Query: Books,
	ID:    func(b *Book) int64 { return b.ID },
}

// Clear deletes every row of the example.
func Clear(ctx context.Context, db orm.Querier) error {
	return Books(db).DeleteAll(ctx)
}
