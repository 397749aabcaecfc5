package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osakanaya/beginningee6-chapter03/internal/config"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "file:chapter03.db?_pragma=foreign_keys(1)"},
		{"file:x?mode=memory", "file:x?mode=memory&_pragma=foreign_keys(1)"},
		{"file:x?_pragma=foreign_keys(0)", "file:x?_pragma=foreign_keys(0)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SQLiteDSN(tt.in), tt.in)
	}
}

func TestMySQLDSN(t *testing.T) {
	got, err := MySQLDSN("root:secret@tcp(localhost:3306)/chapter03")
	require.NoError(t, err)
	assert.Contains(t, got, "parseTime=true")
	assert.Contains(t, got, "clientFoundRows=true")
	assert.Contains(t, got, "root:secret@tcp(localhost:3306)/chapter03")

	_, err = MySQLDSN("not a dsn")
	assert.Error(t, err)
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, config.Config{Dialect: "sqlite", DSN: "file:database_test?mode=memory&cache=shared"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.Equal(t, orm.SQLite, db.Dialect())

	rows, err := db.QueryContext(ctx, "PRAGMA foreign_keys")
	require.NoError(t, err)
	defer rows.Close()
	require.True(t, rows.Next())
	var on int
	require.NoError(t, rows.Scan(&on))
	assert.Equal(t, 1, on)
}

func TestOpenUnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), config.Config{Dialect: "oracle"})
	assert.Error(t, err)
}
