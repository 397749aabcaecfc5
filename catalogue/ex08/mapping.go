package ex08

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

const (
	joinTable   = "jnd_ord_line_ex08"
	orderFK     = "order_fk"
	orderLineFK = "order_line_fk"
)

// OrderMapping inserts one join row per order line once every line has
// an identity, so lines may be queued before or after their order.
var OrderMapping = &orm.Mapping[Order]{
	Query: Orders,
	ID:    func(o *Order) int64 { return o.ID },
	Collections: []orm.Collection[Order]{{
		Name:         "OrderLines",
		JoinTable:    joinTable,
		SourceColumn: orderFK,
		TargetColumn: orderLineFK,
		Elements: func(o *Order) []orm.Ref {
			refs := make([]orm.Ref, len(o.OrderLines))
			for i, l := range o.OrderLines {
				refs[i] = orm.Ref{Entity: l, ID: l.ID}
			}
			return refs
		},
	}},
}

var OrderLineMapping = &orm.Mapping[OrderLine]{
	Query: OrderLines,
	ID:    func(l *OrderLine) int64 { return l.ID },
}

// Clear deletes every row of the example, join rows first.
func Clear(ctx context.Context, db orm.Querier) error {
	if _, err := db.ExecContext(ctx, "DELETE FROM "+joinTable); err != nil {
		return err
	}
	if err := Orders(db).DeleteAll(ctx); err != nil {
		return err
	}
	return OrderLines(db).DeleteAll(ctx)
}
