package ex08

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists an order with two lines and navigates from the order
// to its lines.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	order := &Order{OrderLines: []*OrderLine{
		{Item: "H2G2", UnitPrice: 12, Quantity: 1},
		{Item: "The White Album", UnitPrice: 14.5, Quantity: 2},
	}}

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
	for _, l := range found.OrderLines {
		log.Info("order line", zap.Int64("order", found.ID), zap.String("item", l.Item), zap.Int("quantity", l.Quantity))
	}
	return nil
}
