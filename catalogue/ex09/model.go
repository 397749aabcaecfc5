// Package ex09 maps a unidirectional one-to-many association held by the
// order_fk join column of the line table. OrderLine does not see it.
package ex09

import "github.com/osakanaya/beginningee6-chapter03/orm"

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Order struct {
	ID           int64         `db:"id,primaryKey"`
	CreationDate orm.Timestamp `db:"creation_date,createdAt"`
	OrderLines   []*OrderLine  `rel:"one_to_many,join_column:order_fk"`
}

func (Order) TableName() string { return "order_ex09" }

type OrderLine struct {
	ID        int64   `db:"id,primaryKey"`
	Item      string  `db:"item"`
	UnitPrice float64 `db:"unit_price"`
	Quantity  int     `db:"quantity"`
}

func (OrderLine) TableName() string { return "orderline_ex09" }
