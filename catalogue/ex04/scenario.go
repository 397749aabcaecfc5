package ex04

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists a track with its wav and loads the wav separately.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	track := &Track{
		Title:       "ELVIS - That's the way it is",
		Duration:    72.84,
		Description: "Elvis' concert filmed at the Hilton hotel, Las Vega, NV.",
		Wav:         []byte("Wav content"),
	}

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, TrackMapping, track)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist track: %w", err)
	}

	found, err := Tracks(db).Find(ctx, track.ID)
	if err != nil {
		return fmt.Errorf("find track %d: %w", track.ID, err)
	}
	loadedEagerly := found.Wav != nil
	if err := LoadWav(ctx, db, &found); err != nil {
		return fmt.Errorf("load wav: %w", err)
	}
	log.Info("track persisted",
		zap.String("title", found.Title),
		zap.Bool("wav_in_default_load", loadedEagerly),
		zap.Int("wav_bytes", len(found.Wav)),
	)
	return nil
}
