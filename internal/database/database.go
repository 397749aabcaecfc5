// Package database opens an *orm.DB for the configured dialect and driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"  // registers "postgres"
	_ "modernc.org/sqlite" // registers "sqlite"

	"github.com/osakanaya/beginningee6-chapter03/internal/config"
	"github.com/osakanaya/beginningee6-chapter03/orm"
)

// DefaultSQLiteDSN is a file database next to the working directory.
const DefaultSQLiteDSN = "file:chapter03.db"

// Open connects to the database described by cfg and pings it.
//
// SQLite connections always enforce foreign keys and share a single
// connection, so readers must go through the Session while one is open.
// MySQL DSNs are rewritten to parse DATE and DATETIME columns as UTC
// time.Time values and to count matched rows on UPDATE.
func Open(ctx context.Context, cfg config.Config) (*orm.DB, error) {
	d, err := orm.DialectByName(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	var raw *sql.DB
	switch d.Name() {
	case "sqlite":
		raw, err = sql.Open("sqlite", SQLiteDSN(cfg.DSN))
		if err == nil {
			raw.SetMaxOpenConns(1)
		}
	case "postgres":
		raw, err = openPostgres(cfg.Driver, cfg.DSN)
	case "mysql":
		var dsn string
		dsn, err = MySQLDSN(cfg.DSN)
		if err == nil {
			raw, err = sql.Open("mysql", dsn)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name(), err)
	}

	if err := raw.PingContext(ctx); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name(), err)
	}
	return orm.New(raw, d), nil
}

func openPostgres(driver, dsn string) (*sql.DB, error) {
	if driver == "pq" {
		return sql.Open("postgres", dsn)
	}
	cc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDB(*cc), nil
}

// SQLiteDSN adds the foreign_keys pragma to dsn. An empty dsn selects
// DefaultSQLiteDSN.
func SQLiteDSN(dsn string) string {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// MySQLDSN forces parseTime and a UTC location on dsn. clientFoundRows
// makes UPDATE report matched rows, so an unchanged row is still found.
func MySQLDSN(dsn string) (string, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}
