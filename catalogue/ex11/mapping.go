package ex11

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// CustomerMapping writes address_id from Address.
var CustomerMapping = &orm.Mapping[Customer]{
	Query: Customers,
	ID:    func(c *Customer) int64 { return c.ID },
	References: []orm.Reference[Customer]{{
		Name:     "Address",
		Column:   "address_id",
		Nullable: true,
		Target: func(c *Customer) (any, int64) {
			if c.Address == nil {
				return nil, 0
			}
			return c.Address, c.Address.ID
		},
		SetFK: func(c *Customer, id *int64) { c.AddressID = id },
	}},
}

// AddressMapping writes Address rows only. Customer is the inverse side.
var AddressMapping = &orm.Mapping[Address]{
	Query: Addresses,
	ID:    func(a *Address) int64 { return a.ID },
}

// Clear deletes every row of the example, customers first.
func Clear(ctx context.Context, db orm.Querier) error {
	if err := Customers(db).DeleteAll(ctx); err != nil {
		return err
	}
	return Addresses(db).DeleteAll(ctx)
}
