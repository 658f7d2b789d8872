// Package catalog publishes per-test summaries of fixture files to a MySQL
// database so graders can query points and lock state without the fixtures.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"okc/internal/config"
	"okc/internal/domain"
)

// Entry is one row of the catalog table
type Entry struct {
	Assignment string
	Test       string
	Aliases    string
	Points     float64
	Cases      int
	Locked     int
}

// Entries flattens an assignment into catalog rows, one per test. Unnamed
// tests are keyed by their 1-based position in the assignment.
func Entries(assignment *domain.Assignment) []Entry {
	entries := make([]Entry, 0, len(assignment.Tests))
	for i, test := range assignment.Tests {
		key := fmt.Sprintf("test-%d", i+1)
		if len(test.Names) > 0 {
			key = test.Names[0]
		}
		entries = append(entries, Entry{
			Assignment: assignment.Name,
			Test:       key,
			Aliases:    strings.Join(test.Names, ","),
			Points:     test.Points(),
			Cases:      test.CountCases(),
			Locked:     test.CountLocked(),
		})
	}
	return entries
}

// Publisher writes catalog entries to a MySQL table
type Publisher struct {
	config *config.Config
	db     *sql.DB
}

// NewPublisher creates a Publisher using the config's database settings
func NewPublisher(cfg *config.Config) *Publisher {
	return &Publisher{config: cfg}
}

// Open connects to the catalog database and makes sure the table exists
func (p *Publisher) Open(ctx context.Context) error {
	table := p.config.Database.Table
	if !IsValidTableName(table) {
		return fmt.Errorf("invalid catalog table name: %s", table)
	}

	db, err := sql.Open("mysql", p.config.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to catalog database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping catalog database: %w", err)
	}
	if _, err := db.ExecContext(ctx, CreateTableQuery(table)); err != nil {
		db.Close()
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	p.db = db
	return nil
}

// Publish upserts entries inside a single transaction
func (p *Publisher) Publish(ctx context.Context, entries []Entry) error {
	if p.db == nil {
		return fmt.Errorf("catalog database is not open")
	}
	if len(entries) == 0 {
		return nil
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, UpsertQuery(p.config.Database.Table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare catalog upsert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Assignment, e.Test, e.Aliases, e.Points, e.Cases, e.Locked); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert %s/%s: %w", e.Assignment, e.Test, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog transaction: %w", err)
	}
	return nil
}

// Close releases the database connection
func (p *Publisher) Close() error {
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

// CreateTableQuery returns the DDL of the catalog table
func CreateTableQuery(table string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"`assignment` VARCHAR(191) NOT NULL, "+
		"`test` VARCHAR(191) NOT NULL, "+
		"`aliases` TEXT NOT NULL, "+
		"`points` DOUBLE NOT NULL, "+
		"`cases` INT NOT NULL, "+
		"`locked` INT NOT NULL, "+
		"`updated_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP, "+
		"PRIMARY KEY (`assignment`, `test`))", table)
}

// UpsertQuery returns the statement inserting or refreshing one catalog row
func UpsertQuery(table string) string {
	return fmt.Sprintf("INSERT INTO `%s` (`assignment`, `test`, `aliases`, `points`, `cases`, `locked`) "+
		"VALUES (?, ?, ?, ?, ?, ?) "+
		"ON DUPLICATE KEY UPDATE `aliases` = VALUES(`aliases`), `points` = VALUES(`points`), "+
		"`cases` = VALUES(`cases`), `locked` = VALUES(`locked`)", table)
}

// IsValidTableName allows only ASCII letters, digits and underscores, up to 64 characters
func IsValidTableName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
