package ex06

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists a customer and reads back both temporal columns.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	now := time.Now()
	customer := &Customer{
		FirstName:    "John",
		LastName:     "Smith",
		Email:        "jsmith@gmail.com",
		PhoneNumber:  "1234565",
		DateOfBirth:  orm.Date{Time: now},
		CreationDate: orm.NewTimestamp(now),
	}

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, CustomerMapping, customer)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist customer: %w", err)
	}

	found, err := Customers(db).Find(ctx, customer.ID)
	if err != nil {
		return fmt.Errorf("find customer %d: %w", customer.ID, err)
	}
	log.Info("customer persisted",
		zap.Time("date_of_birth", found.DateOfBirth.Time),
		zap.Time("creation_date", found.CreationDate.Time),
	)
	return nil
}
