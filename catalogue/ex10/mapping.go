package ex10

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

const (
	joinTable = "jnd_artist_cd"
	artistFK  = "artist_fk"
	cdFK      = "cd_fk"
)

// ArtistMapping writes the join rows of AppearsOnCDs.
var ArtistMapping = &orm.Mapping[Artist]{
	Query: Artists,
	ID:    func(a *Artist) int64 { return a.ID },
	Collections: []orm.Collection[Artist]{{
		Name:         "AppearsOnCDs",
		JoinTable:    joinTable,
		SourceColumn: artistFK,
		TargetColumn: cdFK,
		Elements: func(a *Artist) []orm.Ref {
			refs := make([]orm.Ref, len(a.AppearsOnCDs))
			for i, cd := range a.AppearsOnCDs {
				refs[i] = orm.Ref{Entity: cd, ID: cd.ID}
			}
			return refs
		},
	}},
}

// CDMapping writes CD rows only. CreatedByArtists is the inverse side.
var CDMapping = &orm.Mapping[CD]{
	Query: CDs,
	ID:    func(c *CD) int64 { return c.ID },
}

// Clear deletes every row of the example, join rows first.
func Clear(ctx context.Context, db orm.Querier) error {
	if _, err := db.ExecContext(ctx, "DELETE FROM "+joinTable); err != nil {
		return err
	}
	if err := Artists(db).DeleteAll(ctx); err != nil {
		return err
	}
	return CDs(db).DeleteAll(ctx)
}
