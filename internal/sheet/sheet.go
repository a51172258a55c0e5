// Package sheet holds the grid's data model: ordered columns, row-major cell
// values, and vertical cell merges. Sheet satisfies grid.Layout, so a sheet
// can be handed straight to a selection manager.
package sheet

import (
	"fmt"

	"github.com/wilbur182/tessera/internal/grid"
)

var _ grid.Layout = (*Sheet)(nil)

// Sheet is a named table of cells with optional vertical merges. The zero
// value is not usable; construct with New or LoadCSV.
type Sheet struct {
	Name string

	columns []Column
	rows    [][]string

	// spans maps a merge's owner cell to its length; owners maps every cell
	// covered by a merge back to its owner, so MappedCell is a single lookup.
	spans  map[grid.Coordinate]int
	owners map[grid.Coordinate]grid.Coordinate

	headerHidden bool
}

// New builds an empty sheet with the given columns.
func New(name string, columns []Column) *Sheet {
	return &Sheet{
		Name:    name,
		columns: append([]Column(nil), columns...),
		spans:   map[grid.Coordinate]int{},
		owners:  map[grid.Coordinate]grid.Coordinate{},
	}
}

// Columns returns the column definitions in display order.
func (s *Sheet) Columns() []Column { return s.columns }

// Column returns the definition for col. It panics when col is out of range,
// matching the slice access the caller would otherwise write.
func (s *Sheet) Column(col int) Column { return s.columns[col] }

// RowCount returns the number of data rows.
func (s *Sheet) RowCount() int { return len(s.rows) }

// ColCount returns the number of columns, hidden included.
func (s *Sheet) ColCount() int { return len(s.columns) }

// Value returns the cell text at (row, col), empty for out-of-range
// coordinates so render code can over-scan freely.
func (s *Sheet) Value(row, col int) string {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.columns) {
		return ""
	}
	return s.rows[row][col]
}

// SetValue writes the cell text at (row, col).
func (s *Sheet) SetValue(row, col int, v string) error {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.columns) {
		return fmt.Errorf("set value: cell (%d,%d) out of range", row, col)
	}
	s.rows[row][col] = v
	return nil
}

// AppendRow adds a row at the bottom, padding or truncating values to the
// column count.
func (s *Sheet) AppendRow(values []string) {
	row := make([]string, len(s.columns))
	copy(row, values)
	s.rows = append(s.rows, row)
}

// SetSpan merges span cells vertically starting at (row, col). A span of 1
// removes an existing merge. Merges may not overlap and may not run past the
// last row.
func (s *Sheet) SetSpan(row, col, span int) error {
	if span < 1 {
		return fmt.Errorf("set span: length %d invalid at (%d,%d)", span, row, col)
	}
	if row < 0 || col < 0 || col >= len(s.columns) || row+span > len(s.rows) {
		return fmt.Errorf("set span: (%d,%d)+%d out of range", row, col, span)
	}
	owner := grid.Coord(row, col)
	for r := row; r < row+span; r++ {
		if o, ok := s.owners[grid.Coord(r, col)]; ok && o != owner {
			return fmt.Errorf("set span: (%d,%d) already merged into (%d,%d)", r, col, o.Row, o.Col)
		}
	}
	s.clearSpan(owner)
	if span == 1 {
		return nil
	}
	s.spans[owner] = span
	for r := row; r < row+span; r++ {
		s.owners[grid.Coord(r, col)] = owner
	}
	return nil
}

func (s *Sheet) clearSpan(owner grid.Coordinate) {
	span, ok := s.spans[owner]
	if !ok {
		return
	}
	for r := owner.Row; r < owner.Row+span; r++ {
		delete(s.owners, grid.Coord(r, owner.Col))
	}
	delete(s.spans, owner)
}

// MoveColumn reorders a column from one display position to another. Merges
// are keyed by column index, so they follow their column.
func (s *Sheet) MoveColumn(from, to int) error {
	n := len(s.columns)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move column: %d -> %d out of range", from, to)
	}
	if from == to {
		return nil
	}
	move := func(row []string) {
		v := row[from]
		if from < to {
			copy(row[from:], row[from+1:to+1])
		} else {
			copy(row[to+1:], row[to:from])
		}
		row[to] = v
	}
	col := s.columns[from]
	if from < to {
		copy(s.columns[from:], s.columns[from+1:to+1])
	} else {
		copy(s.columns[to+1:], s.columns[to:from])
	}
	s.columns[to] = col
	for _, row := range s.rows {
		move(row)
	}
	s.remapSpans(colPermutation(n, from, to))
	return nil
}

// colPermutation returns old column index -> new column index for a move.
func colPermutation(n, from, to int) map[int]int {
	perm := make(map[int]int, n)
	for i := 0; i < n; i++ {
		switch {
		case i == from:
			perm[i] = to
		case from < to && i > from && i <= to:
			perm[i] = i - 1
		case to < from && i >= to && i < from:
			perm[i] = i + 1
		default:
			perm[i] = i
		}
	}
	return perm
}

func (s *Sheet) remapSpans(perm map[int]int) {
	spans := make(map[grid.Coordinate]int, len(s.spans))
	owners := make(map[grid.Coordinate]grid.Coordinate, len(s.owners))
	for owner, span := range s.spans {
		moved := grid.Coord(owner.Row, perm[owner.Col])
		spans[moved] = span
		for r := moved.Row; r < moved.Row+span; r++ {
			owners[grid.Coord(r, moved.Col)] = moved
		}
	}
	s.spans = spans
	s.owners = owners
}

// ResizeColumn adjusts a column's display width by delta, clamped at the
// column's minimum.
func (s *Sheet) ResizeColumn(col, delta int) error {
	if col < 0 || col >= len(s.columns) {
		return fmt.Errorf("resize column: %d out of range", col)
	}
	c := &s.columns[col]
	c.Width += delta
	if c.Width < c.minWidth() {
		c.Width = c.minWidth()
	}
	return nil
}

// SetHeaderHidden toggles the column-header row.
func (s *Sheet) SetHeaderHidden(hidden bool) { s.headerHidden = hidden }

// Spans returns the merge table keyed by owner cell.
func (s *Sheet) Spans() map[grid.Coordinate]int { return s.spans }

// grid.Layout implementation.

func (s *Sheet) MappedCell(c grid.Coordinate) grid.Coordinate {
	if c.ColumnHeader {
		return c
	}
	if owner, ok := s.owners[grid.Coord(c.Row, c.Col)]; ok {
		return owner
	}
	return grid.Coord(c.Row, c.Col)
}

func (s *Sheet) MinSelectableCol() int {
	for i := range s.columns {
		if s.ColSelectable(i) {
			return i
		}
	}
	return 0
}

func (s *Sheet) MaxSelectableCol() int {
	for i := len(s.columns) - 1; i >= 0; i-- {
		if s.ColSelectable(i) {
			return i
		}
	}
	return 0
}

func (s *Sheet) MaxCol() int { return len(s.columns) - 1 }
func (s *Sheet) MaxRow() int { return len(s.rows) - 1 }

func (s *Sheet) RowSpan(c grid.Coordinate) int {
	if span, ok := s.spans[grid.Coord(c.Row, c.Col)]; ok {
		return span
	}
	return 1
}

func (s *Sheet) CellEditable(c grid.Coordinate) bool {
	if c.Col < 0 || c.Col >= len(s.columns) {
		return false
	}
	return s.columns[c.Col].Editable
}

func (s *Sheet) ColSelectable(col int) bool {
	if col < 0 || col >= len(s.columns) {
		return false
	}
	c := s.columns[col]
	return c.Selectable && !c.Hidden
}

func (s *Sheet) ColumnHeaderHidden() bool { return s.headerHidden }
