package ex07

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario links customers to addresses in both queue orders and shows
// that the not-null join column rejects a customer queued first.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	optional := &OptionalCustomer{FirstName: "John", LastName: "Smith", Email: "jsmith@gmail.com", PhoneNumber: "1234565"}
	optional.Address = &OptionalAddress{Street1: "65B Ritherdon Rd", Street2: "At James place", City: "London", State: "LDN", Zipcode: "7QE554", Country: "UK"}
	err := commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, OptionalCustomerMapping, optional)
		orm.Persist(s, OptionalAddressMapping, optional.Address)
	})
	if err != nil {
		return fmt.Errorf("persist optional customer: %w", err)
	}
	found, err := OptionalCustomers(db).Preload("Address").Find(ctx, optional.ID)
	if err != nil {
		return fmt.Errorf("find optional customer %d: %w", optional.ID, err)
	}
	log.Info("customer queued before address", zap.Int64("id", found.ID), zap.Int64p("add_fk", found.AddressID))

	required := &RequiredCustomer{FirstName: "John", LastName: "Smith", Email: "jsmith@gmail.com", PhoneNumber: "1234565"}
	required.Address = &RequiredAddress{Street1: "65B Ritherdon Rd", Street2: "At James place", City: "London", State: "LDN", Zipcode: "7QE554", Country: "UK"}
	err = commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, RequiredCustomerMapping, required)
		orm.Persist(s, RequiredAddressMapping, required.Address)
	})
	if !errors.Is(err, orm.ErrRollback) {
		return fmt.Errorf("required customer before address: want rollback, got %v", err)
	}
	log.Info("required customer before address rolled back", zap.Error(err))

	required.ID, required.Address.ID, required.AddressID = 0, 0, nil
	err = commit(ctx, db, func(s *orm.Session) {
		orm.Persist(s, RequiredAddressMapping, required.Address)
		orm.Persist(s, RequiredCustomerMapping, required)
	})
	if err != nil {
		return fmt.Errorf("persist required customer: %w", err)
	}
	log.Info("required customer persisted", zap.Int64("id", required.ID), zap.Int64p("add_fk", required.AddressID))

	without, err := CustomersWithoutAddress(ctx, db)
	if err != nil {
		return fmt.Errorf("customers without address: %w", err)
	}
	log.Info("optional customers without address", zap.Int("count", len(without)))
	return nil
}

func commit(ctx context.Context, db *orm.DB, queue func(s *orm.Session)) error {
	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	queue(s)
	return s.Commit(ctx)
}
