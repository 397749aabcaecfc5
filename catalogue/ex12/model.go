// Package ex12 maps a bidirectional one-to-many association. OrderLine owns
// the order_id join column; Order lists its lines in reverse.
package ex12

import "github.com/osakanaya/beginningee6-chapter03/orm"

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Order struct {
	ID           int64         `db:"id,primaryKey"`
	CreationDate orm.Timestamp `db:"creation_date,createdAt"`
	OrderLines   []*OrderLine  `rel:"one_to_many,mapped_by:Order"`
}

func (Order) TableName() string { return "order_ex12" }

// Add appends line to o and points line back at o.
func (o *Order) Add(line *OrderLine) {
	o.OrderLines = append(o.OrderLines, line)
	line.Order = o
}

type OrderLine struct {
	ID        int64   `db:"id,primaryKey"`
	Item      string  `db:"item"`
	UnitPrice float64 `db:"unit_price"`
	Quantity  int     `db:"quantity"`
	OrderID   *int64  `db:"order_id,references:order_ex12"`
	Order     *Order  `rel:"many_to_one,owner"`
}

func (OrderLine) TableName() string { return "orderline_ex12" }
