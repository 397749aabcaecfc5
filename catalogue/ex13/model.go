// Package ex13 maps a unidirectional many-to-one association from OrderLine
// to Order.
package ex13

import "github.com/osakanaya/beginningee6-chapter03/orm"

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Order struct {
	ID           int64         `db:"id,primaryKey"`
	CreationDate orm.Timestamp `db:"creation_date,createdAt"`
}

func (Order) TableName() string { return "order_ex13" }

type OrderLine struct {
	ID        int64   `db:"id,primaryKey"`
	Item      string  `db:"item"`
	UnitPrice float64 `db:"unit_price"`
	Quantity  int     `db:"quantity"`
	OrderID   *int64  `db:"order_id,references:order_ex13"`
	Order     *Order  `rel:"many_to_one,owner"`
}

func (OrderLine) TableName() string { return "orderline_ex13" }
