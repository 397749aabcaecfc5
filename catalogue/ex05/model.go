// Package ex05 maps column constraints: a not-null title that cannot be
// updated, a bounded description and a not-null page count.
package ex05

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

// Book uses pointers for the not-null columns so that a missing value
// reaches the database as NULL.
type Book struct {
	ID            int64   `db:"id,primaryKey"`
	Title         *string `db:"book_title,notNull,immutable"`
	Price         float32 `db:"price"`
	Description   string  `db:"description,size:16"`
	ISBN          string  `db:"isbn"`
	NbOfPage      *int    `db:"nb_of_page,notNull"`
	Illustrations bool    `db:"illustrations"`
}

func (Book) TableName() string { return "book_ex05" }
