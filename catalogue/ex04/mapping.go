package ex04

import (
	"context"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// TrackMapping writes Track rows, wav included.
var TrackMapping = &orm.Mapping[Track]{
	Query: Tracks,
	ID:    func(t *Track) int64 { return t.ID },
}

// LoadWav reads the wav column of t, which default loads leave empty.
func LoadWav(ctx context.Context, db orm.Querier, t *Track) error {
	wav, err := orm.LoadColumn[Track, []byte](ctx, Tracks(db), t, "wav")
	if err != nil {
		return err
	}
	t.Wav = wav
	return nil
}

// Clear deletes every row of the example.
func Clear(ctx context.Context, db orm.Querier) error {
	return Tracks(db).DeleteAll(ctx)
}
