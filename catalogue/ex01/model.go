// Package ex01 maps a single entity with a generated surrogate key.
package ex01

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Book struct {
	ID            int64   `db:"id,primaryKey"`
	Title         string  `db:"title"`
	Price         float32 `db:"price"`
	Description   string  `db:"description"`
	ISBN          string  `db:"isbn"`
	NbOfPage      int     `db:"nb_of_page"`
	Illustrations bool    `db:"illustrations"`
}

func (Book) TableName() string { return "book_ex01" }
