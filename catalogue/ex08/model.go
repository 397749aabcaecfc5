// Package ex08 maps a unidirectional one-to-many association through the
// jnd_ord_line_ex08 join table.
package ex08

import "github.com/osakanaya/beginningee6-chapter03/orm"

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Order struct {
	ID           int64         `db:"id,primaryKey"`
	CreationDate orm.Timestamp `db:"creation_date,createdAt"`
	OrderLines   []*OrderLine  `rel:"one_to_many,join_table:jnd_ord_line_ex08,join_column:order_fk,inverse_join_column:order_line_fk"`
}

func (Order) TableName() string { return "order_ex08" }

type OrderLine struct {
	ID        int64   `db:"id,primaryKey"`
	Item      string  `db:"item"`
	UnitPrice float64 `db:"unit_price"`
	Quantity  int     `db:"quantity"`
}

func (OrderLine) TableName() string { return "orderline_ex08" }
