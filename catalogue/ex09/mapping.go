package ex09

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// OrderMapping sets order_fk on every line of the order after all rows
// are inserted.
var OrderMapping = &orm.Mapping[Order]{
	Query: Orders,
	ID:    func(o *Order) int64 { return o.ID },
	Collections: []orm.Collection[Order]{{
		Name:         "OrderLines",
		TargetTable:  "orderline_ex09",
		SourceColumn: "order_fk",
		TargetColumn: "id",
		Elements: func(o *Order) []orm.Ref {
			refs := make([]orm.Ref, 0, len(o.OrderLines))
			for _, l := range o.OrderLines {
				refs = append(refs, orm.Ref{Entity: l, ID: l.ID})
			}
			return refs
		},
	}},
}

var OrderLineMapping = &orm.Mapping[OrderLine]{
	Query: OrderLines,
	ID:    func(l *OrderLine) int64 { return l.ID },
}

// Clear deletes every row of the example, lines first.
func Clear(ctx context.Context, db orm.Querier) error {
	if err := OrderLines(db).DeleteAll(ctx); err != nil {
		return err
	}
	return Orders(db).DeleteAll(ctx)
}
