package ex01

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario persists a book and reads it back by its generated identity.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	book := &Book{
		Title:       "The Hitchhiker's Guide to the Galaxy",
		Price:       12.5,
		Description: "Scifi book",
		ISBN:        "1-84023-742-2",
		NbOfPage:    354,
	}

	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	orm.Persist(s, BookMapping, book)
	if err := s.Commit(ctx); err != nil {
		return fmt.Errorf("persist book: %w", err)
	}

	found, err := Books(db).Find(ctx, book.ID)
	if err != nil {
		return fmt.Errorf("find book %d: %w", book.ID, err)
	}
	log.Info("book persisted", zap.Int64("id", found.ID), zap.String("title", found.Title))
	return nil
}
