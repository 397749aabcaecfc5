// Package ex14 maps a unidirectional many-to-many association. Only Artist
// knows its CDs.
package ex14

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Artist struct {
	ID           int64  `db:"id,primaryKey"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	AppearsOnCDs []*CD  `rel:"many_to_many,join_table:jnd_artist_cd_ex14,join_column:artist_fk,inverse_join_column:cd_fk"`
}

func (Artist) TableName() string { return "artist_ex14" }

// AppearsOn adds cd to the artist's CDs.
func (a *Artist) AppearsOn(cd *CD) {
	a.AppearsOnCDs = append(a.AppearsOnCDs, cd)
}

type CD struct {
	ID          int64   `db:"id,primaryKey"`
	Title       string  `db:"title"`
	Price       float32 `db:"price"`
	Description string  `db:"description"`
}

func (CD) TableName() string { return "cd_ex14" }
