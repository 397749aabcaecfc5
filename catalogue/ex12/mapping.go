package ex12

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// OrderMapping writes Order rows only. OrderLines is the inverse side and
// is written through each line's Order.
var OrderMapping = &orm.Mapping[Order]{
	Query: Orders,
	ID:    func(o *Order) int64 { return o.ID },
}

// OrderLineMapping writes order_id from Order.
var OrderLineMapping = &orm.Mapping[OrderLine]{
	Query: OrderLines,
	ID:    func(l *OrderLine) int64 { return l.ID },
	References: []orm.Reference[OrderLine]{{
		Name:     "Order",
		Column:   "order_id",
		Nullable: true,
		Target: func(l *OrderLine) (any, int64) {
			if l.Order == nil {
				return nil, 0
			}
			return l.Order, l.Order.ID
		},
		SetFK: func(l *OrderLine, id *int64) { l.OrderID = id },
	}},
}

// Clear deletes every row of the example, lines first.
func Clear(ctx context.Context, db orm.Querier) error {
	if err := OrderLines(db).DeleteAll(ctx); err != nil {
		return err
	}
	return Orders(db).DeleteAll(ctx)
}
