// Package ex02 maps a composite primary key held in an embedded value.
package ex02

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

// NewsID identifies a News item. It is comparable, so two ids built from
// the same title and language are equal and work as map keys.
type NewsID struct {
	Title    string `db:"title"`
	Language string `db:"language"`
}

type News struct {
	ID      NewsID `db:",embedded,primaryKey"`
	Content string `db:"content"`
}

func (News) TableName() string { return "news_ex02" }
