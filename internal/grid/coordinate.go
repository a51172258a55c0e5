package grid

import "fmt"

// HeaderRow is the reserved row index for column-header cells.
const HeaderRow = -1

// Coordinate identifies one addressable position in the grid: a data cell,
// a column-header cell, or a data cell reached through its row header.
// Coordinate is an immutable value type.
type Coordinate struct {
	Row int
	Col int

	// ColumnHeader marks a cell in the column-header row (Row == HeaderRow).
	ColumnHeader bool

	// RowHeader marks a coordinate that originated from a row-header hit.
	// It is a UI-origin hint and is excluded from equality.
	RowHeader bool
}

// Coord returns a data-cell coordinate.
func Coord(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// HeaderCoord returns a column-header coordinate for the given column.
func HeaderCoord(col int) Coordinate {
	return Coordinate{Row: HeaderRow, Col: col, ColumnHeader: true}
}

// RowHeaderCoord returns a data coordinate flagged as row-header origin.
func RowHeaderCoord(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col, RowHeader: true}
}

// Equal reports whether two coordinates identify the same cell.
// RowHeader is intentionally ignored.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Row == other.Row && c.Col == other.Col && c.ColumnHeader == other.ColumnHeader
}

// IsHeader returns true for column-header coordinates.
func (c Coordinate) IsHeader() bool {
	return c.ColumnHeader
}

// String returns a compact representation for logs and test failures.
func (c Coordinate) String() string {
	if c.ColumnHeader {
		return fmt.Sprintf("header(%d)", c.Col)
	}
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
