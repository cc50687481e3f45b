// Package storage provides a SQLite-backed level library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The library holds level packs imported from files together with solver
// results recorded by the validate command. It never stores play progress.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/tui-colorsort/internal/games/colorsort/levels/formats"
)

// ErrPackNotFound is returned when a pack ID is not in the library.
var ErrPackNotFound = errors.New("storage: pack not found")

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// PackInfo summarizes an imported pack.
type PackInfo struct {
	ID         string
	Name       string
	Levels     int
	ImportedAt time.Time
}

// StoredLevel is one level row of a pack.
type StoredLevel struct {
	Pack       string
	Index      int // 0-based position within the pack
	Name       string
	Definition core.Definition
	MinMoves   int // -1 until a solution is recorded
	Explored   int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS levels (
			pack_id TEXT NOT NULL REFERENCES packs(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			definition TEXT NOT NULL,
			min_moves INTEGER,
			explored INTEGER,
			PRIMARY KEY (pack_id, idx)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportPack stores every level of pack under packID, replacing any levels
// previously imported with that ID. Returns the number of levels written.
func (s *Store) ImportPack(ctx context.Context, packID string, pack formats.Pack) (int, error) {
	if packID == "" {
		return 0, errors.New("storage: pack id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO packs (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, imported_at = CURRENT_TIMESTAMP`,
		packID, pack.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save pack: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM levels WHERE pack_id = ?", packID); err != nil {
		return 0, fmt.Errorf("storage: cannot clear pack levels: %w", err)
	}

	for i, lvl := range pack.Levels {
		data, err := formats.EncodeDefinition(lvl.Name, lvl.Definition)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot encode level %d: %w", i+1, err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO levels (pack_id, idx, name, definition) VALUES (?, ?, ?, ?)",
			packID, i, lvl.Name, string(data),
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save level %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(pack.Levels), nil
}

// Packs lists the imported packs ordered by ID.
func (s *Store) Packs(ctx context.Context) ([]PackInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.imported_at, COUNT(l.idx)
		 FROM packs p LEFT JOIN levels l ON l.pack_id = p.id
		 GROUP BY p.id
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []PackInfo
	for rows.Next() {
		var p PackInfo
		var importedAt any
		if err := rows.Scan(&p.ID, &p.Name, &importedAt, &p.Levels); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.ImportedAt = parseTime(importedAt)
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return packs, nil
}

// PackLevels returns the levels of a pack in order.
func (s *Store) PackLevels(ctx context.Context, packID string) ([]StoredLevel, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM packs WHERE id = ?", packID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query pack: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPackNotFound, packID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, name, definition, min_moves, explored
		 FROM levels
		 WHERE pack_id = ?
		 ORDER BY idx`,
		packID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var levels []StoredLevel
	for rows.Next() {
		lvl := StoredLevel{Pack: packID, MinMoves: -1}
		var data string
		var minMoves, explored sql.NullInt64
		if err := rows.Scan(&lvl.Index, &lvl.Name, &data, &minMoves, &explored); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		_, def, err := formats.DecodeDefinition([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("storage: level %d of %s: %w", lvl.Index+1, packID, err)
		}
		lvl.Definition = def
		if minMoves.Valid {
			lvl.MinMoves = int(minMoves.Int64)
		}
		if explored.Valid {
			lvl.Explored = int(explored.Int64)
		}
		levels = append(levels, lvl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return levels, nil
}

// RecordSolution saves solver results for one level.
func (s *Store) RecordSolution(ctx context.Context, packID string, index, minMoves, explored int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE levels SET min_moves = ?, explored = ? WHERE pack_id = ? AND idx = ?",
		minMoves, explored, packID, index,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record solution: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot record solution: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s level %d", ErrPackNotFound, packID, index+1)
	}
	return nil
}

// DeletePack removes a pack and its levels.
func (s *Store) DeletePack(ctx context.Context, packID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM levels WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot delete levels: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM packs WHERE id = ?", packID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrPackNotFound, packID)
	}
	return tx.Commit()
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
