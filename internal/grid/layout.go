package grid

// Layout is the read-only shape of the grid the selection core runs against.
// Implementations must be side-effect-free; every query is answered per call
// and expected to be O(1) or O(row-span).
type Layout interface {
	// MappedCell resolves a coordinate covered by a row-spanning cell to the
	// coordinate that owns the span. Coordinates outside any span map to
	// themselves.
	MappedCell(c Coordinate) Coordinate

	// MinSelectableCol / MaxSelectableCol bound the columns a selection may
	// touch; MaxCol / MaxRow bound the grid itself.
	MinSelectableCol() int
	MaxSelectableCol() int
	MaxCol() int
	MaxRow() int

	// RowSpan returns the number of rows the cell at c occupies. Must be > 0
	// for any in-range coordinate.
	RowSpan(c Coordinate) int

	// CellEditable reports whether the cell can enter edit mode.
	CellEditable(c Coordinate) bool

	// ColSelectable reports whether the column can participate in selections.
	ColSelectable(col int) bool

	// ColumnHeaderHidden reports whether the header row is not rendered, in
	// which case header coordinates never appear in selections.
	ColumnHeaderHidden() bool
}
