// Package ex11 maps a bidirectional one-to-one association. Customer owns
// the address_id join column; Address navigates back to its customer.
package ex11

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Customer struct {
	ID          int64    `db:"id,primaryKey"`
	FirstName   string   `db:"first_name"`
	LastName    string   `db:"last_name"`
	Email       string   `db:"email"`
	PhoneNumber string   `db:"phone_number"`
	AddressID   *int64   `db:"address_id,references:address_ex11"`
	Address     *Address `rel:"one_to_one,owner"`
}

func (Customer) TableName() string { return "customer_ex11" }

// SetAddress links c and a on both sides.
func (c *Customer) SetAddress(a *Address) {
	c.Address = a
	a.Customer = c
}

type Address struct {
	ID       int64     `db:"id,primaryKey"`
	Street1  string    `db:"street1"`
	Street2  string    `db:"street2"`
	City     string    `db:"city"`
	State    string    `db:"state"`
	Zipcode  string    `db:"zipcode"`
	Country  string    `db:"country"`
	Customer *Customer `rel:"one_to_one,mapped_by:Address"`
}

func (Address) TableName() string { return "address_ex11" }
