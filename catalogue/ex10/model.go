// Package ex10 maps a bidirectional many-to-many association. Artist owns
// the jnd_artist_cd join table; CD navigates it in reverse.
package ex10

//go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE

type Artist struct {
	ID           int64  `db:"id,primaryKey"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	AppearsOnCDs []*CD  `rel:"many_to_many,join_table:jnd_artist_cd,join_column:artist_fk,inverse_join_column:cd_fk"`
}

func (Artist) TableName() string { return "artist_ex10" }

type CD struct {
	ID               int64     `db:"id,primaryKey"`
	Title            string    `db:"title"`
	Price            float32   `db:"price"`
	Description      string    `db:"description"`
	CreatedByArtists []*Artist `rel:"many_to_many,mapped_by:AppearsOnCDs"`
}

func (CD) TableName() string { return "cd_ex10" }
