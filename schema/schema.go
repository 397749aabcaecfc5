// Package schema holds the DDL of every catalogue example for the three
// supported dialects.
package schema

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"

	"github.com/osakanaya/beginningee6-chapter03/orm"
)

//go:embed sql
var files embed.FS

var createTable = regexp.MustCompile(`(?m)^CREATE TABLE (\w+)`)

// Examples returns the names of all examples, "ex01" through "ex14".
func Examples() []string {
	entries, err := fs.ReadDir(files, "sql/sqlite")
	if err != nil {
		panic(err) // embedded at build time
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".sql"))
	}
	slices.Sort(names)
	return names
}

// DDL returns the CREATE TABLE statements of an example.
func DDL(dialect, example string) (string, error) {
	b, err := files.ReadFile("sql/" + dialect + "/" + example + ".sql")
	if err != nil {
		return "", fmt.Errorf("schema: no DDL for %s in dialect %q", example, dialect)
	}
	return string(b), nil
}

// Tables returns the tables of an example in creation order.
func Tables(dialect, example string) ([]string, error) {
	ddl, err := DDL(dialect, example)
	if err != nil {
		return nil, err
	}
	var tables []string
	for _, m := range createTable.FindAllStringSubmatch(ddl, -1) {
		tables = append(tables, m[1])
	}
	return tables, nil
}

// Create drops and recreates the tables of the given examples, or of every
// example when none is given.
func Create(ctx context.Context, db orm.Querier, examples ...string) error {
	if err := Drop(ctx, db, examples...); err != nil {
		return err
	}
	dialect := orm.DialectOf(db).Name()
	for _, ex := range orAll(examples) {
		ddl, err := DDL(dialect, ex)
		if err != nil {
			return err
		}
		for _, stmt := range statements(ddl) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("schema: create %s: %w", ex, err)
			}
		}
	}
	return nil
}

// Drop drops the tables of the given examples in reverse dependency order.
func Drop(ctx context.Context, db orm.Querier, examples ...string) error {
	dialect := orm.DialectOf(db).Name()
	exs := orAll(examples)
	for i := len(exs) - 1; i >= 0; i-- {
		tables, err := Tables(dialect, exs[i])
		if err != nil {
			return err
		}
		for j := len(tables) - 1; j >= 0; j-- {
			if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+tables[j]); err != nil {
				return fmt.Errorf("schema: drop %s: %w", tables[j], err)
			}
		}
	}
	return nil
}

func orAll(examples []string) []string {
	if len(examples) == 0 {
		return Examples()
	}
	return examples
}

// statements splits a DDL file on the terminating semicolons.
func statements(ddl string) []string {
	var out []string
	for _, s := range strings.Split(ddl, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
