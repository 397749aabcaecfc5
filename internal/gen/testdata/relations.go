package testdata

import "github.com/osakanaya/beginningee6-chapter03/orm"

type Address struct {
	ID       int64     `db:"id,primaryKey"`
	Street   string    `db:"street1"`
	Customer *Customer `rel:"one_to_one,mapped_by:Address"`
}

func (Address) TableName() string { return "address_ex07_2" }

type Customer struct {
	ID          int64         `db:"id,primaryKey"`
	FirstName   string        `db:"first_name"`
	DateOfBirth orm.Date      `db:"date_of_birth"`
	AddressID   *int64        `db:"add_fk,notNull,references:address_ex07_2"`
	Address     *Address      `db:"-" rel:"one_to_one,owner"`
	Created     orm.Timestamp `db:"creation_date,createdAt"`
}

func (Customer) TableName() string { return "customer_ex07_2" }

type Order struct {
	ID         int64        `db:"id,primaryKey"`
	OrderLines []*OrderLine `rel:"one_to_many,join_table:jnd_ord_line_ex08,join_column:order_fk,inverse_join_column:order_line_fk"`
}

func (Order) TableName() string { return "order_ex08" }

type OrderLine struct {
	ID   int64  `db:"id,primaryKey"`
	Item string `db:"item"`
}

func (OrderLine) TableName() string { return "orderline_ex08" }

type Invoice struct {
	ID    int64         `db:"id,primaryKey"`
	Items []InvoiceItem `rel:"one_to_many,join_column:invoice_fk"`
}

type InvoiceItem struct {
	ID     int64   `db:"id,primaryKey"`
	Amount float64 `db:"amount"`
}

type Ticket struct {
	ID      int64   `db:"id,primaryKey"`
	EventID int64   `db:"event_id,notNull,references:events"`
	Event   Event   `rel:"many_to_one,owner"`
	Seats   []*Seat `rel:"one_to_many,mapped_by:Ticket"`
}

type Event struct {
	ID   int64  `db:"id,primaryKey"`
	Name string `db:"name"`
}

type Seat struct {
	ID       int64   `db:"id,primaryKey"`
	TicketID *int64  `db:"ticket_id,references:tickets"`
	Ticket   *Ticket `rel:"many_to_one,owner"`
}

type Artist struct {
	ID  int64 `db:"id,primaryKey"`
	CDs []*CD `rel:"many_to_many,join_table:jnd_artist_cd,join_column:artist_fk,inverse_join_column:cd_fk"`
}

type CD struct {
	ID      int64     `db:"id,primaryKey"`
	Title   string    `db:"title"`
	Artists []*Artist `rel:"many_to_many,mapped_by:CDs"`
}
