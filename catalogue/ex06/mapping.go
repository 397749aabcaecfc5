package ex06

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// CustomerMapping writes Customer rows. A zero CreationDate is stamped
// with the insertion time.
var CustomerMapping = &orm.Mapping[Customer]{
	Query: Customers,
	ID:    func(c *Customer) int64 { return c.ID },
}

// Clear deletes every row of the example.
func Clear(ctx context.Context, db orm.Querier) error {
	return Customers(db).DeleteAll(ctx)
}
