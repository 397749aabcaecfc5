package ex02

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists a news item, finds it again with a new, equal key and
// merges a translation that was never persisted.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	news := &News{
		ID:      NewsID{Title: "Richard Wright has died", Language: "EN"},
		Content: "The keyboard of Pink Floyd has died today",
	}

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, NewsMapping, news)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist news: %w", err)
	}

	found, err := Find(ctx, db, NewsID{Title: "Richard Wright has died", Language: "EN"})
	if err != nil {
		return fmt.Errorf("find news: %w", err)
	}
	titles, err := AllTitles(ctx, db)
	if err != nil {
		return fmt.Errorf("news titles: %w", err)
	}
	log.Info("news persisted",
		zap.String("title", found.ID.Title),
		zap.String("language", found.ID.Language),
		zap.Strings("titles", titles),
	)

	french := &News{
		ID:      NewsID{Title: "Richard Wright has died", Language: "FR"},
		Content: "Le claviériste de Pink Floyd est mort",
	}
	s, err = orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Merge(s, NewsMapping, french)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("merge news: %w", err)
	}
	all, err := FindAll(ctx, db, news.ID, french.ID)
	if err != nil {
		return fmt.Errorf("find news: %w", err)
	}
	log.Info("translation merged", zap.Int("news", len(all)))
	return nil
}
