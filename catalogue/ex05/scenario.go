package ex05

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// Scenario commits a valid book, shows that a title update is ignored and
// that a missing title is rejected by the database.
func Scenario(ctx context.Context, db *orm.DB, log *zap.Logger) error {
	title := "The Hitchhiker's Guide to the Galaxy"
	pages := 354
	book := &Book{
		Title:       &title,
		Price:       12.5,
		Description: "1234567890123456",
		ISBN:        "1-84023-742-2",
		NbOfPage:    &pages,
	}
	if err := commit(ctx, db, book, orm.Persist[Book]); err != nil {
		return fmt.Errorf("persist book: %w", err)
	}

	updated := "Updated title"
	book.Title = &updated
	if err := commit(ctx, db, book, orm.Merge[Book]); err != nil {
		return fmt.Errorf("merge book: %w", err)
	}
	found, err := Books(db).Find(ctx, book.ID)
	if err != nil {
		return fmt.Errorf("find book %d: %w", book.ID, err)
	}
	log.Info("title update ignored", zap.Stringp("title", found.Title))

	err = commit(ctx, db, &Book{NbOfPage: &pages}, orm.Persist[Book])
	if !errors.Is(err, orm.ErrRollback) {
		return fmt.Errorf("book without title: want rollback, got %v", err)
	}
	log.Info("book without title rolled back", zap.Error(err))
	return nil
}

func commit(ctx context.Context, db *orm.DB, b *Book, queue func(*orm.Session, *orm.Mapping[Book], *Book)) error {
	s, err := orm.Begin(ctx, db)
	if err != nil {
		return err
	}
	queue(s, BookMapping, b)
	return s.Commit(ctx)
}
