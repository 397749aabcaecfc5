package ex03

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists a news item and finds it through a separately built key.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	news := &News{
		Title:    "Richard Wright has died",
		Language: "EN",
		Content:  "The keyboard of Pink Floyd has died today",
	}

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, NewsMapping, news)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist news: %w", err)
	}

	key := NewsKey{Title: "Richard Wright has died", Language: "EN"}
	found, err := Find(ctx, db, key)
	if err != nil {
		return fmt.Errorf("find news: %w", err)
	}
	log.Info("news persisted",
		zap.String("title", found.Title),
		zap.Bool("same_key", found.Key() == key),
	)
	return nil
}
