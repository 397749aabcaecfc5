package ex10

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario links four artists to three CDs and navigates the association
// from both sides.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	ringo := &Artist{FirstName: "Ringo", LastName: "Starr"}
	john := &Artist{FirstName: "John", LastName: "Lenon"}
	franck := &Artist{FirstName: "Franck", LastName: "Zappa"}
	jimi := &Artist{FirstName: "Jimi", LastName: "Hendrix"}
	zoot := &CD{Title: "Zoot Allures", Price: 12.5, Description: "Released in October 1976, it is mostly a studio album"}
	sgtpepper := &CD{Title: "Sergent Pepper", Price: 28.5, Description: "Best Beatles Album"}
	heyjoe := &CD{Title: "Hey Joe", Price: 32, Description: "Hendrix live with friends"}

	ringo.AppearsOn(sgtpepper)
	john.AppearsOn(sgtpepper)
	john.AppearsOn(heyjoe)
	franck.AppearsOn(zoot)
	franck.AppearsOn(heyjoe)
	jimi.AppearsOn(sgtpepper)
	jimi.AppearsOn(heyjoe)

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	for _, a := range []*Artist{ringo, john, franck, jimi} {
		orm.Persist(s, ArtistMapping, a)
	}
	for _, c := range []*CD{zoot, sgtpepper, heyjoe} {
		orm.Persist(s, CDMapping, c)
	}
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist artists and cds: %w", err)
	}

	artists, err := Artists(db).Preload("AppearsOnCDs").OrderBy("id").All(ctx)
	if err != nil {
		return fmt.Errorf("load artists: %w", err)
	}
	for _, a := range artists {
		log.Info("artist", zap.String("name", a.FirstName+" "+a.LastName), zap.Int("cds", len(a.AppearsOnCDs)))
	}
	cds, err := CDs(db).Preload("CreatedByArtists").OrderBy("id").All(ctx)
	if err != nil {
		return fmt.Errorf("load cds: %w", err)
	}
	for _, c := range cds {
		log.Info("cd", zap.String("title", c.Title), zap.Int("artists", len(c.CreatedByArtists)))
	}
	return nil
}
