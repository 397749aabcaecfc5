// Package ex04 maps a binary large object that is loaded on demand.
package ex04

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Track struct {
	ID          int64   `db:"id,primaryKey"`
	Title       string  `db:"title"`
	Duration    float32 `db:"duration"`
	Wav         []byte  `db:"wav,lazy"`
	Description string  `db:"description"`
}

func (Track) TableName() string { return "track_ex04" }
