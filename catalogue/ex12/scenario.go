package ex12

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists an order with two lines and navigates from the order
// to its lines and from a line back to the order.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	order := &Order{}
	order.Add(&OrderLine{Item: "H2G2", UnitPrice: 12, Quantity: 1})
	order.Add(&OrderLine{Item: "The White Album", UnitPrice: 14.5, Quantity: 2})

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, OrderMapping, order)
	for _, l := range order.OrderLines {
		orm.Persist(s, OrderLineMapping, l)
	}
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist order: %w", err)
	}

	found, err := Orders(db).Preload("OrderLines").Find(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("find order %d: %w", order.ID, err)
	}
	log.Info("order", zap.Int64("id", found.ID), zap.Int("lines", len(found.OrderLines)))

	line, err := OrderLines(db).Preload("Order").Find(ctx, order.OrderLines[0].ID)
	if err != nil {
		return fmt.Errorf("find order line %d: %w", order.OrderLines[0].ID, err)
	}
	log.Info("order line", zap.String("item", line.Item), zap.Int64("order", line.Order.ID))
	return nil
}
