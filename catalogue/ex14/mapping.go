package ex14

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

const joinTable = "jnd_artist_cd_ex14"

// ArtistMapping writes the join rows of AppearsOnCDs. Removing an artist
// deletes its join rows and keeps the CDs.
var ArtistMapping = &orm.Mapping[Artist]{
	Query: Artists,
	ID:    func(a *Artist) int64 { return a.ID },
	Collections: []orm.Collection[Artist]{{
		Name:         "AppearsOnCDs",
		JoinTable:    joinTable,
		SourceColumn: "artist_fk",
		TargetColumn: "cd_fk",
		Elements: func(a *Artist) []orm.Ref {
			refs := make([]orm.Ref, 0, len(a.AppearsOnCDs))
			for _, cd := range a.AppearsOnCDs {
				refs = append(refs, orm.Ref{Entity: cd, ID: cd.ID})
			}
			return refs
		},
	}},
}

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
