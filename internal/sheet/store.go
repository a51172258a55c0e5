package sheet

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS sheets (
	id            INTEGER PRIMARY KEY,
	name          TEXT NOT NULL UNIQUE,
	row_count     INTEGER NOT NULL DEFAULT 0,
	header_hidden INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS columns (
	sheet_id   INTEGER NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
	idx        INTEGER NOT NULL,
	key        TEXT NOT NULL,
	title      TEXT NOT NULL,
	width      INTEGER NOT NULL,
	min_width  INTEGER NOT NULL,
	editable   INTEGER NOT NULL,
	selectable INTEGER NOT NULL,
	hidden     INTEGER NOT NULL,
	PRIMARY KEY (sheet_id, idx)
);

CREATE TABLE IF NOT EXISTS cells (
	sheet_id INTEGER NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
	row      INTEGER NOT NULL,
	col      INTEGER NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (sheet_id, row, col)
);

CREATE TABLE IF NOT EXISTS spans (
	sheet_id INTEGER NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
	row      INTEGER NOT NULL,
	col      INTEGER NOT NULL,
	length   INTEGER NOT NULL,
	PRIMARY KEY (sheet_id, row, col)
);
`

// Store persists sheets in a single-file sqlite database.
type Store struct {
	conn *sql.DB
}

// OpenStore opens (creating if needed) the database at path and ensures the
// schema exists.
func OpenStore(path string) (*Store, error) {
	conn, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// WAL for concurrent reads while writes are serialized.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

func (st *Store) Close() error { return st.conn.Close() }

// Names lists the stored sheet names in alphabetical order.
func (st *Store) Names(ctx context.Context) ([]string, error) {
	rows, err := st.conn.QueryContext(ctx, "SELECT name FROM sheets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list sheets: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Save writes the sheet, replacing any stored sheet of the same name. Empty
// cells are not stored; row_count preserves trailing empty rows.
func (st *Store) Save(ctx context.Context, s *Sheet) error {
	tx, err := st.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sheets WHERE name = ?", s.Name); err != nil {
		return fmt.Errorf("save sheet: clear previous: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO sheets (name, row_count, header_hidden) VALUES (?, ?, ?)",
		s.Name, s.RowCount(), s.headerHidden)
	if err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}

	for i, c := range s.columns {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO columns (sheet_id, idx, key, title, width, min_width, editable, selectable, hidden)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, c.Key, c.Title, c.Width, c.MinWidth, c.Editable, c.Selectable, c.Hidden); err != nil {
			return fmt.Errorf("save sheet: column %q: %w", c.Key, err)
		}
	}
	for r, row := range s.rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO cells (sheet_id, row, col, value) VALUES (?, ?, ?, ?)",
				id, r, c, v); err != nil {
				return fmt.Errorf("save sheet: cell (%d,%d): %w", r, c, err)
			}
		}
	}
	for owner, span := range s.spans {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO spans (sheet_id, row, col, length) VALUES (?, ?, ?, ?)",
			id, owner.Row, owner.Col, span); err != nil {
			return fmt.Errorf("save sheet: span (%d,%d): %w", owner.Row, owner.Col, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save sheet: %w", err)
	}
	return nil
}

// Load reads a stored sheet by name.
func (st *Store) Load(ctx context.Context, name string) (*Sheet, error) {
	var (
		id           int64
		rowCount     int
		headerHidden bool
	)
	err := st.conn.QueryRowContext(ctx,
		"SELECT id, row_count, header_hidden FROM sheets WHERE name = ?", name).
		Scan(&id, &rowCount, &headerHidden)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("load sheet: %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("load sheet: %w", err)
	}

	cols, err := st.loadColumns(ctx, id)
	if err != nil {
		return nil, err
	}
	s := New(name, cols)
	s.headerHidden = headerHidden
	for i := 0; i < rowCount; i++ {
		s.AppendRow(nil)
	}

	cells, err := st.conn.QueryContext(ctx,
		"SELECT row, col, value FROM cells WHERE sheet_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load sheet: cells: %w", err)
	}
	defer cells.Close()
	for cells.Next() {
		var (
			r, c int
			v    string
		)
		if err := cells.Scan(&r, &c, &v); err != nil {
			return nil, fmt.Errorf("load sheet: cells: %w", err)
		}
		if err := s.SetValue(r, c, v); err != nil {
			return nil, fmt.Errorf("load sheet: %w", err)
		}
	}
	if err := cells.Err(); err != nil {
		return nil, fmt.Errorf("load sheet: cells: %w", err)
	}

	spans, err := st.conn.QueryContext(ctx,
		"SELECT row, col, length FROM spans WHERE sheet_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("load sheet: spans: %w", err)
	}
	defer spans.Close()
	for spans.Next() {
		var r, c, length int
		if err := spans.Scan(&r, &c, &length); err != nil {
			return nil, fmt.Errorf("load sheet: spans: %w", err)
		}
		if err := s.SetSpan(r, c, length); err != nil {
			return nil, fmt.Errorf("load sheet: %w", err)
		}
	}
	return s, spans.Err()
}

func (st *Store) loadColumns(ctx context.Context, id int64) ([]Column, error) {
	rows, err := st.conn.QueryContext(ctx,
		`SELECT key, title, width, min_width, editable, selectable, hidden
		 FROM columns WHERE sheet_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("load sheet: columns: %w", err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Key, &c.Title, &c.Width, &c.MinWidth, &c.Editable, &c.Selectable, &c.Hidden); err != nil {
			return nil, fmt.Errorf("load sheet: columns: %w", err)
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
