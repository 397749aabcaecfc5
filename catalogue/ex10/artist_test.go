package ex10_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex10"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

type band struct {
	ringo, john, franck, jimi *ex10.Artist
	zoot, sgtpepper, heyjoe   *ex10.CD
}

func newBand() band {
	b := band{
		ringo:     &ex10.Artist{FirstName: "Ringo", LastName: "Starr"},
		john:      &ex10.Artist{FirstName: "John", LastName: "Lenon"},
		franck:    &ex10.Artist{FirstName: "Franck", LastName: "Zappa"},
		jimi:      &ex10.Artist{FirstName: "Jimi", LastName: "Hendrix"},
		zoot:      &ex10.CD{Title: "Zoot Allures", Price: 12.5, Description: "Released in October 1976, it is mostly a studio album"},
		sgtpepper: &ex10.CD{Title: "Sergent Pepper", Price: 28.5, Description: "Best Beatles Album"},
		heyjoe:    &ex10.CD{Title: "Hey Joe", Price: 32, Description: "Hendrix live with friends"},
	}
	b.ringo.AppearsOn(b.sgtpepper)
	b.john.AppearsOn(b.sgtpepper)
	b.john.AppearsOn(b.heyjoe)
	b.franck.AppearsOn(b.zoot)
	b.franck.AppearsOn(b.heyjoe)
	b.jimi.AppearsOn(b.sgtpepper)
	b.jimi.AppearsOn(b.heyjoe)
	return b
}

func (b band) persist(ctx context.Context, t *testing.T, db *orm.DB) {
	t.Helper()

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	for _, a := range []*ex10.Artist{b.ringo, b.john, b.franck, b.jimi} {
		orm.Persist(s, ex10.ArtistMapping, a)
	}
	for _, c := range []*ex10.CD{b.zoot, b.sgtpepper, b.heyjoe} {
		orm.Persist(s, ex10.CDMapping, c)
	}
	require.NoError(t, s.Commit(ctx))
}

func findArtist(ctx context.Context, t *testing.T, db *orm.DB, id int64) *ex10.Artist {
	t.Helper()

	a, err := ex10.Artists(db).Preload("AppearsOnCDs").Find(ctx, id)
	require.NoError(t, err)
	return &a
}

func findCD(ctx context.Context, t *testing.T, db *orm.DB, id int64) *ex10.CD {
	t.Helper()

	c, err := ex10.CDs(db).Preload("CreatedByArtists").Find(ctx, id)
	require.NoError(t, err)
	return &c
}

func TestArtistToCDs(t *testing.T) {
	db := dbtest.Open(t, "ex10")
	ctx := context.Background()
	b := newBand()
	b.persist(ctx, t, db)

	zoot := findCD(ctx, t, db, b.zoot.ID)
	sgtpepper := findCD(ctx, t, db, b.sgtpepper.ID)
	heyjoe := findCD(ctx, t, db, b.heyjoe.ID)

	tests := []struct {
		artist *ex10.Artist
		want   []*ex10.CD
	}{
		{b.ringo, []*ex10.CD{sgtpepper}},
		{b.john, []*ex10.CD{sgtpepper, heyjoe}},
		{b.franck, []*ex10.CD{zoot, heyjoe}},
		{b.jimi, []*ex10.CD{sgtpepper, heyjoe}},
	}
	for _, tt := range tests {
		t.Run(tt.artist.FirstName, func(t *testing.T) {
			got := findArtist(ctx, t, db, tt.artist.ID)
			require.Len(t, got.AppearsOnCDs, len(tt.want))
			for _, cd := range tt.want {
				assert.True(t, ex10.HasCD(got.AppearsOnCDs, cd), "%s should appear on %s", got.FirstName, cd.Title)
			}
		})
	}
}

func TestCDToArtists(t *testing.T) {
	db := dbtest.Open(t, "ex10")
	ctx := context.Background()
	b := newBand()
	b.persist(ctx, t, db)

	ringo := findArtist(ctx, t, db, b.ringo.ID)
	john := findArtist(ctx, t, db, b.john.ID)
	franck := findArtist(ctx, t, db, b.franck.ID)
	jimi := findArtist(ctx, t, db, b.jimi.ID)

	tests := []struct {
		cd   *ex10.CD
		want []*ex10.Artist
	}{
		{b.zoot, []*ex10.Artist{franck}},
		{b.sgtpepper, []*ex10.Artist{ringo, john, jimi}},
		{b.heyjoe, []*ex10.Artist{john, franck, jimi}},
	}
	for _, tt := range tests {
		t.Run(tt.cd.Title, func(t *testing.T) {
			got := findCD(ctx, t, db, tt.cd.ID)
			require.Len(t, got.CreatedByArtists, len(tt.want))
			for _, a := range tt.want {
				assert.True(t, ex10.HasArtist(got.CreatedByArtists, a), "%s should be created by %s", got.Title, a.FirstName)
			}
		})
	}
}

func TestKeysAreComparable(t *testing.T) {
	b := newBand()
	b.sgtpepper.ID = 2
	copied := &ex10.CD{ID: 2, Title: "Sergent Pepper", Price: 28.5, Description: "Best Beatles Album"}

	seen := map[ex10.CDKey]bool{b.sgtpepper.Key(): true}
	assert.True(t, seen[copied.Key()])
	assert.True(t, b.sgtpepper.Equal(copied))
	assert.False(t, b.sgtpepper.Equal(b.heyjoe))
	assert.False(t, b.sgtpepper.Equal(nil))
}

func TestInverseSideIsNotWritten(t *testing.T) {
	db := dbtest.Open(t, "ex10")
	ctx := context.Background()

	artist := &ex10.Artist{FirstName: "Ringo", LastName: "Starr"}
	cd := &ex10.CD{Title: "Sergent Pepper", Price: 28.5}
	cd.CreatedByArtists = append(cd.CreatedByArtists, artist)

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex10.ArtistMapping, artist)
	orm.Persist(s, ex10.CDMapping, cd)
	require.NoError(t, s.Commit(ctx))

	assert.Empty(t, findCD(ctx, t, db, cd.ID).CreatedByArtists)
	assert.Empty(t, findArtist(ctx, t, db, artist.ID).AppearsOnCDs)
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex10")
	ctx := context.Background()

	require.NoError(t, ex10.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex10.Clear(ctx, db))

	n, err := ex10.CDs(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
