// Package dbtest opens a fresh database for a test.
//
// The configuration is loaded with viper under the CHAPTER03_TEST prefix:
// CHAPTER03_TEST_DIALECT (default sqlite), CHAPTER03_TEST_DRIVER and
// CHAPTER03_TEST_DSN. SQLite tests get a private in-memory database; other
// dialects share the configured one, so tests using them must not run in
// parallel.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"unicode"

	"github.com/osakanaya/beginningee6-chapter03/internal/config"
	"github.com/osakanaya/beginningee6-chapter03/internal/database"
	"github.com/osakanaya/beginningee6-chapter03/orm"
	"github.com/osakanaya/beginningee6-chapter03/schema"
)

var seq atomic.Int64

// Config returns the test database configuration.
func Config(t testing.TB) config.Config {
	t.Helper()

	cfg, err := config.Load(config.NewWithPrefix(config.TestEnvPrefix))
	if err != nil {
		t.Fatalf("dbtest: %v", err)
	}
	if cfg.Dialect == "sqlite" {
		name := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return '_'
		}, t.Name())
		cfg.DSN = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))
	} else if cfg.DSN == "" {
		t.Skipf("CHAPTER03_TEST_DSN is not set for dialect %s", cfg.Dialect)
	}
	return cfg
}

// Open returns a database with the tables of the given examples freshly
// created. Tables are dropped and the database closed when the test ends.
func Open(t testing.TB, examples ...string) *orm.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, Config(t))
	if err != nil {
		t.Fatalf("dbtest: %v", err)
	}
	if err := schema.Create(ctx, db, examples...); err != nil {
		_ = db.Close()
		t.Fatalf("dbtest: %v", err)
	}
	t.Cleanup(func() {
		_ = schema.Drop(ctx, db, examples...)
		_ = db.Close()
	})
	return db
}
