package orm_test

import (
	"testing"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

func TestMySQLPlaceholder(t *testing.T) {
	t.Parallel()

	for _, index := range []int{1, 2, 10} {
		if got := orm.MySQL.Placeholder(index); got != "?" {
			t.Errorf("Placeholder(%d) = %q, want %q", index, got, "?")
		}
	}
}

func TestMySQLUseReturning(t *testing.T) {
	t.Parallel()

	if orm.MySQL.UseReturning() {
		t.Error("MySQL.UseReturning() = true, want false")
	}
}

func TestMySQLReturningClause(t *testing.T) {
	t.Parallel()

	if got := orm.MySQL.ReturningClause("id"); got != "" {
		t.Errorf("MySQL.ReturningClause(\"id\") = %q, want %q", got, "")
	}
}

func TestPostgreSQLPlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index int
		want  string
	}{
		{1, "$1"},
		{2, "$2"},
		{10, "$10"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if got := orm.PostgreSQL.Placeholder(tt.index); got != tt.want {
				t.Errorf("Placeholder(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestPostgreSQLUseReturning(t *testing.T) {
	t.Parallel()

	if !orm.PostgreSQL.UseReturning() {
		t.Error("PostgreSQL.UseReturning() = false, want true")
	}
}

func TestPostgreSQLReturningClause(t *testing.T) {
	t.Parallel()

	want := ` RETURNING "id"`
	if got := orm.PostgreSQL.ReturningClause("id"); got != want {
		t.Errorf("PostgreSQL.ReturningClause(\"id\") = %q, want %q", got, want)
	}
}

func TestMySQLQuoteIdent(t *testing.T) {
	t.Parallel()

	if got := orm.MySQL.QuoteIdent("order"); got != "`order`" {
		t.Errorf("QuoteIdent = %q, want %q", got, "`order`")
	}
}

func TestPostgreSQLQuoteIdent(t *testing.T) {
	t.Parallel()

	want := `"order"`
	if got := orm.PostgreSQL.QuoteIdent("order"); got != want {
		t.Errorf("QuoteIdent = %q, want %q", got, want)
	}
}

func TestSQLiteDialect(t *testing.T) {
	t.Parallel()

	if got := orm.SQLite.Placeholder(3); got != "?" {
		t.Errorf("Placeholder(3) = %q, want %q", got, "?")
	}
	if got := orm.SQLite.QuoteIdent("order"); got != `"order"` {
		t.Errorf("QuoteIdent = %q, want %q", got, `"order"`)
	}
	if orm.SQLite.UseReturning() {
		t.Error("SQLite.UseReturning() = true, want false")
	}
}

func TestDialectByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"mysql", "mysql"},
		{"postgres", "postgres"},
		{"postgresql", "postgres"},
		{"sqlite", "sqlite"},
		{"sqlite3", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := orm.DialectByName(tt.name)
			if err != nil {
				t.Fatalf("DialectByName(%q): %v", tt.name, err)
			}
			if got := d.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialectByNameUnknown(t *testing.T) {
	t.Parallel()

	if _, err := orm.DialectByName("oracle"); err == nil {
		t.Fatal("expected error for unknown dialect, got nil")
	}
}
