package ex07_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex07"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func commit(ctx context.Context, db *orm.DB, queue func(s *orm.Session)) error {
	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	queue(s)
	return s.Commit(ctx)
}

func optionalCustomer() *ex07.OptionalCustomer {
	return &ex07.OptionalCustomer{FirstName: "John", LastName: "Smith", Email: "jsmith@gmail.com", PhoneNumber: "1234565"}
}

func optionalAddress() *ex07.OptionalAddress {
	return &ex07.OptionalAddress{Street1: "65B Ritherdon Rd", Street2: "At James place", City: "London", State: "LDN", Zipcode: "7QE554", Country: "UK"}
}

func requiredCustomer() *ex07.RequiredCustomer {
	return &ex07.RequiredCustomer{FirstName: "John", LastName: "Smith", Email: "jsmith@gmail.com", PhoneNumber: "1234565"}
}

func requiredAddress() *ex07.RequiredAddress {
	return &ex07.RequiredAddress{Street1: "65B Ritherdon Rd", Street2: "At James place", City: "London", State: "LDN", Zipcode: "7QE554", Country: "UK"}
}

func TestOptionalCustomer(t *testing.T) {
	tests := []struct {
		name         string
		addressFirst bool
	}{
		{name: "address then customer", addressFirst: true},
		{name: "customer then address", addressFirst: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := dbtest.Open(t, "ex07")
			ctx := context.Background()

			customer := optionalCustomer()
			customer.Address = optionalAddress()
			err := commit(ctx, db, func(s *orm.Session) {
				if tt.addressFirst {
					orm.Persist(s, ex07.OptionalAddressMapping, customer.Address)
					orm.Persist(s, ex07.OptionalCustomerMapping, customer)
				} else {
					orm.Persist(s, ex07.OptionalCustomerMapping, customer)
					orm.Persist(s, ex07.OptionalAddressMapping, customer.Address)
				}
			})
			require.NoError(t, err)

			found, err := ex07.OptionalCustomers(db).Preload("Address").Find(ctx, customer.ID)
			require.NoError(t, err)
			assert.Equal(t, "jsmith@gmail.com", found.Email)
			require.NotNil(t, found.Address)
			assert.NotZero(t, found.Address.ID)
			assert.Equal(t, "65B Ritherdon Rd", found.Address.Street1)
		})
	}
}

func TestOptionalCustomerWithUnsavedAddressRollsBack(t *testing.T) {
	db := dbtest.Open(t, "ex07")
	ctx := context.Background()

	customer := optionalCustomer()
	customer.Address = optionalAddress()
	err := commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, ex07.OptionalCustomerMapping, customer)
	})
	require.ErrorIs(t, err, orm.ErrRollback)
	assert.ErrorIs(t, err, orm.ErrTransientReference)

	n, err := ex07.OptionalCustomers(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOptionalCustomerWithoutAddress(t *testing.T) {
	db := dbtest.Open(t, "ex07")
	ctx := context.Background()

	customer := optionalCustomer()
	require.NoError(t, commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, ex07.OptionalCustomerMapping, customer)
	}))

	found, err := ex07.OptionalCustomers(db).Preload("Address").Find(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "jsmith@gmail.com", found.Email)
	assert.Nil(t, found.AddressID)
	assert.Nil(t, found.Address)

	withAddress := optionalCustomer()
	withAddress.Address = optionalAddress()
	require.NoError(t, commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, ex07.OptionalAddressMapping, withAddress.Address)
		orm.Persist(s, ex07.OptionalCustomerMapping, withAddress)
	}))

	without, err := ex07.CustomersWithoutAddress(ctx, db)
	require.NoError(t, err)
	require.Len(t, without, 1)
	assert.Equal(t, customer.ID, without[0].ID)
}

func TestRequiredCustomerAddressThenCustomer(t *testing.T) {
	db := dbtest.Open(t, "ex07")
	ctx := context.Background()

	customer := requiredCustomer()
	customer.Address = requiredAddress()
	require.NoError(t, commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, ex07.RequiredAddressMapping, customer.Address)
		orm.Persist(s, ex07.RequiredCustomerMapping, customer)
	}))

	found, err := ex07.RequiredCustomers(db).Preload("Address").Find(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Address)
	assert.Equal(t, customer.Address.ID, found.Address.ID)
	assert.Equal(t, "65B Ritherdon Rd", found.Address.Street1)
}

func TestRequiredCustomerRollsBack(t *testing.T) {
	tests := []struct {
		name      string
		queue     func(s *orm.Session, c *ex07.RequiredCustomer)
		transient bool
	}{
		{
			name: "customer then address",
			queue: func(s *orm.Session, c *ex07.RequiredCustomer) {
				c.Address = requiredAddress()
				orm.Persist(s, ex07.RequiredCustomerMapping, c)
				orm.Persist(s, ex07.RequiredAddressMapping, c.Address)
			},
		},
		{
			name: "customer with unsaved address",
			queue: func(s *orm.Session, c *ex07.RequiredCustomer) {
				c.Address = requiredAddress()
				orm.Persist(s, ex07.RequiredCustomerMapping, c)
			},
			transient: true,
		},
		{
			name: "customer without address",
			queue: func(s *orm.Session, c *ex07.RequiredCustomer) {
				orm.Persist(s, ex07.RequiredCustomerMapping, c)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := dbtest.Open(t, "ex07")
			ctx := context.Background()

			customer := requiredCustomer()
			err := commit(ctx, db, func(s *orm.Session) { tt.queue(s, customer) })
			require.ErrorIs(t, err, orm.ErrRollback)
			if tt.transient {
				assert.ErrorIs(t, err, orm.ErrTransientReference)
				assert.ErrorContains(t, err, "add_fk NOT NULL")
			} else {
				ce, ok := orm.AsConstraint(err)
				require.True(t, ok, "want a constraint error, got %v", err)
				assert.Equal(t, orm.ConstraintNotNull, ce.Kind)
			}

			n, err := ex07.RequiredCustomers(db).Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, n)
		})
	}
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex07")
	ctx := context.Background()

	require.NoError(t, ex07.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex07.Clear(ctx, db))

	n, err := ex07.OptionalAddresses(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = ex07.RequiredCustomers(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
