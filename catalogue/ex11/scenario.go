package ex11

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists a customer and its address and navigates between them
// in both directions.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	customer := &Customer{FirstName: "John", LastName: "Smith", Email: "jsmith@gmail.com", PhoneNumber: "1234565"}
	customer.SetAddress(&Address{Street1: "65B Ritherdon Rd", Street2: "At James place", City: "London", State: "LDN", Zipcode: "7QE554", Country: "UK"})

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, CustomerMapping, customer)
	orm.Persist(s, AddressMapping, customer.Address)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist customer: %w", err)
	}

	c, err := Customers(db).Preload("Address").Find(ctx, customer.ID)
	if err != nil {
		return fmt.Errorf("find customer %d: %w", customer.ID, err)
	}
	a, err := Addresses(db).Preload("Customer").Find(ctx, customer.Address.ID)
	if err != nil {
		return fmt.Errorf("find address %d: %w", customer.Address.ID, err)
	}
	log.Info("customer lives at",
		zap.String("email", c.Email),
		zap.String("street1", c.Address.Street1),
		zap.String("resident", a.Customer.Email),
	)
	return nil
}
