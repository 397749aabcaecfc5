// Package ex06 maps temporal values at date and timestamp granularity.
package ex06

import "github.com/osakanaya/beginningee6-chapter03/orm"

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Customer struct {
	ID           int64         `db:"id,primaryKey"`
	FirstName    string        `db:"first_name"`
	LastName     string        `db:"last_name"`
	Email        string        `db:"email"`
	PhoneNumber  string        `db:"phone_number"`
	DateOfBirth  orm.Date      `db:"date_of_birth"`
	CreationDate orm.Timestamp `db:"creation_date,createdAt"`
}

func (Customer) TableName() string { return "customer_ex06" }
