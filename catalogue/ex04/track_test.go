package ex04_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/osakanaya/beginningee6-chapter03/catalogue/ex04"
	"github.com/osakanaya/beginningee6-chapter03/internal/dbtest"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func persistTrack(t *testing.T, db *orm.DB) *ex04.Track {
	t.Helper()

	track := &ex04.Track{
		Title:       "ELVIS - That's the way it is",
		Duration:    72.84,
		Description: "Elvis' concert filmed at the Hilton hotel, Las Vega, NV.",
		Wav:         []byte("Wav content"),
	}
	ctx := context.Background()
	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Persist(s, ex04.TrackMapping, track)
	require.NoError(t, s.Commit(ctx))
	return track
}

func TestWavIsNotLoadedByDefault(t *testing.T) {
	db := dbtest.Open(t, "ex04")
	track := persistTrack(t, db)

	found, err := ex04.Tracks(db).Find(context.Background(), track.ID)
	require.NoError(t, err)

	assert.Equal(t, "ELVIS - That's the way it is", found.Title)
	assert.Equal(t, float32(72.84), found.Duration)
	assert.Equal(t, "Elvis' concert filmed at the Hilton hotel, Las Vega, NV.", found.Description)
	assert.Nil(t, found.Wav)
}

func TestLoadWav(t *testing.T) {
	db := dbtest.Open(t, "ex04")
	track := persistTrack(t, db)
	ctx := context.Background()

	found, err := ex04.Tracks(db).Find(ctx, track.ID)
	require.NoError(t, err)
	require.NoError(t, ex04.LoadWav(ctx, db, &found))

	assert.Equal(t, "Wav content", string(found.Wav))
}

func TestMergeKeepsWav(t *testing.T) {
	db := dbtest.Open(t, "ex04")
	track := persistTrack(t, db)
	ctx := context.Background()

	found, err := ex04.Tracks(db).Find(ctx, track.ID)
	require.NoError(t, err)
	found.Title = "That's the way it is"

	s, err := orm.Begin(ctx, db)
	require.NoError(t, err)
	orm.Merge(s, ex04.TrackMapping, &found)
	require.NoError(t, s.Commit(ctx))

	reloaded, err := ex04.Tracks(db).Find(ctx, track.ID)
	require.NoError(t, err)
	require.NoError(t, ex04.LoadWav(ctx, db, &reloaded))
	assert.Equal(t, "That's the way it is", reloaded.Title)
	assert.Equal(t, "Wav content", string(reloaded.Wav))
}

func TestLoadWavMissingTrack(t *testing.T) {
	db := dbtest.Open(t, "ex04")

	err := ex04.LoadWav(context.Background(), db, &ex04.Track{ID: 42})
	assert.ErrorIs(t, err, orm.ErrNotFound)
}

func TestScenarioAndClear(t *testing.T) {
	db := dbtest.Open(t, "ex04")
	ctx := context.Background()

	require.NoError(t, ex04.Scenario(ctx, db, zaptest.NewLogger(t)))
	require.NoError(t, ex04.Clear(ctx, db))

	n, err := ex04.Tracks(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
