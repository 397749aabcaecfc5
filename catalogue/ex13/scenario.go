package ex13

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario points two lines at one order and resolves the order from each.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	order := &Order{}
	lines := []*OrderLine{
		{Item: "H2G2", UnitPrice: 12, Quantity: 1, Order: order},
		{Item: "The White Album", UnitPrice: 14.5, Quantity: 2, Order: order},
	}

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, OrderMapping, order)
	for _, l := range lines {
		orm.Persist(s, OrderLineMapping, l)
	}
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist order: %w", err)
	}

	found, err := OrderLines(db).Preload("Order").OrderBy("id").All(ctx)
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}
	for _, l := range found {
		log.Info("order line", zap.String("item", l.Item), zap.Int64("order", l.Order.ID))
	}
	return nil
}
