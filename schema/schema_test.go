package schema_test

import (
	"context"
	"database/sql"
	"slices"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/osakanaya/beginningee6-chapter03/orm"
	"github.com/osakanaya/beginningee6-chapter03/schema"
)

func TestExamples(t *testing.T) {
	t.Parallel()

	got := schema.Examples()
	if len(got) != 14 {
		t.Fatalf("len(Examples) = %d, want 14", len(got))
	}
	if got[0] != "ex01" || got[13] != "ex14" {
		t.Errorf("Examples = %v", got)
	}
}

func TestEveryDialectHasEveryExample(t *testing.T) {
	t.Parallel()

	for _, dialect := range []string{"sqlite", "postgres", "mysql"} {
		for _, ex := range schema.Examples() {
			tables, err := schema.Tables(dialect, ex)
			if err != nil {
				t.Errorf("%s/%s: %v", dialect, ex, err)
				continue
			}
			sqliteTables, _ := schema.Tables("sqlite", ex)
			if !slices.Equal(tables, sqliteTables) {
				t.Errorf("%s/%s: tables = %v, want %v", dialect, ex, tables, sqliteTables)
			}
		}
	}
}

func TestTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		example string
		want    []string
	}{
		{"ex01", []string{"book_ex01"}},
		{"ex07", []string{"address_ex07_1", "customer_ex07_1", "address_ex07_2", "customer_ex07_2"}},
		{"ex08", []string{"order_ex08", "orderline_ex08", "jnd_ord_line_ex08"}},
		{"ex10", []string{"artist_ex10", "cd_ex10", "jnd_artist_cd"}},
	}
	for _, tt := range tests {
		t.Run(tt.example, func(t *testing.T) {
			t.Parallel()

			got, err := schema.Tables("postgres", tt.example)
			if err != nil {
				t.Fatalf("Tables: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tables = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDDLUnknown(t *testing.T) {
	t.Parallel()

	if _, err := schema.DDL("oracle", "ex01"); err == nil {
		t.Error("expected error for unknown dialect, got nil")
	}
	if _, err := schema.DDL("sqlite", "ex99"); err == nil {
		t.Error("expected error for unknown example, got nil")
	}
}

func TestCreateAndDropOnSQLite(t *testing.T) {
	t.Parallel()

	raw, err := sql.Open("sqlite", "file:schema_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = raw.Close() })
	db := orm.New(raw, orm.SQLite)
	ctx := context.Background()

	if err := schema.Create(ctx, db); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Creating twice drops first.
	if err := schema.Create(ctx, db, "ex08"); err != nil {
		t.Fatalf("Create ex08 again: %v", err)
	}

	count := func() int {
		var n int
		row := raw.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'")
		if err := row.Scan(&n); err != nil {
			t.Fatalf("count tables: %v", err)
		}
		return n
	}
	if got := count(); got != 27 {
		t.Errorf("tables after Create = %d, want 27", got)
	}

	if err := schema.Drop(ctx, db); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if got := count(); got != 0 {
		t.Errorf("tables after Drop = %d, want 0", got)
	}
}
