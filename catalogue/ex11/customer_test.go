package ex11_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex11"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func TestNavigateBothDirections(t *testing.T) {
	db := dbtest.Open(t, "ex11")
	ctx := context.Background()

	customer := &ex11.Customer{FirstName: "John", LastName: "Smith", Email: "jsmith@gmail.com", PhoneNumber: "1234565"}
	address := &ex11.Address{Street1: "65B Ritherdon Rd", Street2: "At James place", City: "London", State: "LDN", Zipcode: "7QE554", Country: "UK"}
	customer.SetAddress(address)

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex11.CustomerMapping, customer)
	orm.Persist(s, ex11.AddressMapping, address)
	require.NoError(t, s.Commit(ctx))

	c, err := ex11.Customers(db).Preload("Address").Find(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "jsmith@gmail.com", c.Email)
	require.NotNil(t, c.Address)
	assert.Equal(t, address.ID, c.Address.ID)
	assert.Equal(t, "65B Ritherdon Rd", c.Address.Street1)

	a, err := ex11.Addresses(db).Preload("Customer").Find(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "65B Ritherdon Rd", a.Street1)
	require.NotNil(t, a.Customer)
	assert.Equal(t, "jsmith@gmail.com", a.Customer.Email)
}

func TestAddressWithoutCustomer(t *testing.T) {
	db := dbtest.Open(t, "ex11")
	ctx := context.Background()

	address := &ex11.Address{Street1: "Abbey Road", City: "London"}
	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex11.AddressMapping, address)
	require.NoError(t, s.Commit(ctx))

	a, err := ex11.Addresses(db).Preload("Customer").Find(ctx, address.ID)
	require.NoError(t, err)
	assert.Nil(t, a.Customer)
}

func TestAddressIsLoadedOnRequest(t *testing.T) {
	db := dbtest.Open(t, "ex11")
	ctx := context.Background()

	customer := &ex11.Customer{Email: "jsmith@gmail.com"}
	customer.SetAddress(&ex11.Address{Street1: "65B Ritherdon Rd"})
	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex11.AddressMapping, customer.Address)
	orm.Persist(s, ex11.CustomerMapping, customer)
	require.NoError(t, s.Commit(ctx))

	c, err := ex11.Customers(db).Find(ctx, customer.ID)
	require.NoError(t, err)
	assert.Nil(t, c.Address)
	require.NotNil(t, c.AddressID)
	assert.Equal(t, customer.Address.ID, *c.AddressID)
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex11")
	ctx := context.Background()

	require.NoError(t, ex11.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex11.Clear(ctx, db))

	n, err := ex11.Addresses(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
