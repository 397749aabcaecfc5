package ex07

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
	"github.com/osakanaya/beginningee6-chapter03/scope"
)

var OptionalAddressMapping = &orm.Mapping[OptionalAddress]{
	Query: OptionalAddresses,
	ID:    func(a *OptionalAddress) int64 { return a.ID },
}

// OptionalCustomerMapping writes add_fk from Address. A customer queued
// before its address is inserted with a NULL add_fk and updated once the
// address has an identity.
var OptionalCustomerMapping = &orm.Mapping[OptionalCustomer]{
	Query: OptionalCustomers,
	ID:    func(c *OptionalCustomer) int64 { return c.ID },
	References: []orm.Reference[OptionalCustomer]{{
		Name:     "Address",
		Column:   "add_fk",
		Nullable: true,
		Target: func(c *OptionalCustomer) (any, int64) {
			if c.Address == nil {
				return nil, 0
			}
			return c.Address, c.Address.ID
		},
		SetFK: func(c *OptionalCustomer, id *int64) { c.AddressID = id },
	}},
}

var RequiredAddressMapping = &orm.Mapping[RequiredAddress]{
	Query: RequiredAddresses,
	ID:    func(a *RequiredAddress) int64 { return a.ID },
}

// RequiredCustomerMapping writes add_fk from Address. The column is NOT
// NULL, so the address must be queued first.
var RequiredCustomerMapping = &orm.Mapping[RequiredCustomer]{
	Query: RequiredCustomers,
	ID:    func(c *RequiredCustomer) int64 { return c.ID },
	References: []orm.Reference[RequiredCustomer]{{
		Name:   "Address",
		Column: "add_fk",
		Target: func(c *RequiredCustomer) (any, int64) {
			if c.Address == nil {
				return nil, 0
			}
			return c.Address, c.Address.ID
		},
		SetFK: func(c *RequiredCustomer, id *int64) { c.AddressID = id },
	}},
}

// CustomersWithoutAddress returns the optional customers whose add_fk is
// NULL, ordered by id.
func CustomersWithoutAddress(ctx context.Context, db orm.Querier) ([]OptionalCustomer, error) {
	return OptionalCustomers(db).Scopes(scope.IsNull("add_fk"), scope.OrderBy("id")).All(ctx)
}

// Clear deletes every row of the example, customers first.
func Clear(ctx context.Context, db orm.Querier) error {
	if err := OptionalCustomers(db).DeleteAll(ctx); err != nil {
		return err
	}
	if err := OptionalAddresses(db).DeleteAll(ctx); err != nil {
		return err
	}
	if err := RequiredCustomers(db).DeleteAll(ctx); err != nil {
		return err
	}
	return RequiredAddresses(db).DeleteAll(ctx)
}
