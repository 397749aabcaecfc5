// Package ex07 maps a unidirectional one-to-one association held by the
// add_fk join column, once nullable and once not null.
package ex07

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type OptionalAddress struct {
	ID      int64  `db:"id,primaryKey"`
	Street1 string `db:"street1"`
	Street2 string `db:"street2"`
	City    string `db:"city"`
	State   string `db:"state"`
	Zipcode string `db:"zipcode"`
	Country string `db:"country"`
}

func (OptionalAddress) TableName() string { return "address_ex07_1" }

// OptionalCustomer may exist without an address.
type OptionalCustomer struct {
	ID          int64            `db:"id,primaryKey"`
	FirstName   string           `db:"first_name"`
	LastName    string           `db:"last_name"`
	Email       string           `db:"email"`
	PhoneNumber string           `db:"phone_number"`
	AddressID   *int64           `db:"add_fk,references:address_ex07_1"`
	Address     *OptionalAddress `rel:"one_to_one,owner"`
}

func (OptionalCustomer) TableName() string { return "customer_ex07_1" }

type RequiredAddress struct {
	ID      int64  `db:"id,primaryKey"`
	Street1 string `db:"street1"`
	Street2 string `db:"street2"`
	City    string `db:"city"`
	State   string `db:"state"`
	Zipcode string `db:"zipcode"`
	Country string `db:"country"`
}

func (RequiredAddress) TableName() string { return "address_ex07_2" }

// RequiredCustomer cannot be written before its address.
type RequiredCustomer struct {
	ID          int64            `db:"id,primaryKey"`
	FirstName   string           `db:"first_name"`
	LastName    string           `db:"last_name"`
	Email       string           `db:"email"`
	PhoneNumber string           `db:"phone_number"`
	AddressID   *int64           `db:"add_fk,notNull,references:address_ex07_2"`
	Address     *RequiredAddress `rel:"one_to_one,owner"`
}

func (RequiredCustomer) TableName() string { return "customer_ex07_2" }
