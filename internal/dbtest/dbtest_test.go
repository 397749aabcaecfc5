package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultsToPrivateSQLite(t *testing.T) {
	t.Setenv("CHAPTER03_TEST_DIALECT", "")

	a := Config(t)
	b := Config(t)
	assert.Equal(t, "sqlite", a.Dialect)
	assert.NotEqual(t, a.DSN, b.DSN)
	assert.Contains(t, a.DSN, "mode=memory")
}

func TestOpenCreatesTables(t *testing.T) {
	t.Setenv("CHAPTER03_TEST_DIALECT", "")

	db := Open(t, "ex01")
	_, err := db.ExecContext(context.Background(), "INSERT INTO book_ex01 (title) VALUES (?)", "Dune")
	require.NoError(t, err)
}

func TestConfigReadsTestPrefix(t *testing.T) {
	t.Setenv("CHAPTER03_DIALECT", "mysql")
	t.Setenv("CHAPTER03_TEST_DIALECT", "postgres")
	t.Setenv("CHAPTER03_TEST_DRIVER", "pq")
	t.Setenv("CHAPTER03_TEST_DSN", "postgres://localhost/chapter03_test")

	cfg := Config(t)
	assert.Equal(t, "postgres", cfg.Dialect)
	assert.Equal(t, "pq", cfg.Driver)
	assert.Equal(t, "postgres://localhost/chapter03_test", cfg.DSN)
}

func TestConfigIgnoresApplicationPrefix(t *testing.T) {
	t.Setenv("CHAPTER03_TEST_DIALECT", "")
	t.Setenv("CHAPTER03_DIALECT", "mysql")

	assert.Equal(t, "sqlite", Config(t).Dialect)
}
