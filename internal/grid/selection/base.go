package selection

import "github.com/wilbur182/tessera/internal/grid"

// base carries the layout and the mode-independent transitions and geometry
// helpers shared by the concrete managers. Concrete managers embed or compose
// it; they never subclass each other.
type base struct {
	layout grid.Layout
}

// HandleCancel exits edit mode back to the resting selection.
func (b base) HandleCancel(prev State) (State, bool) {
	if prev.Mode != ModeEdit {
		return prev, false
	}
	next := prev
	next.Mode = ModeSelect
	return next, true
}

// HandleEdit enters edit mode on the primary cell when it is editable.
func (b base) HandleEdit(prev State) (State, bool) {
	if prev.Mode != ModeSelect {
		return prev, false
	}
	if prev.Primary.ColumnHeader || !b.layout.CellEditable(prev.Primary) {
		return prev, false
	}
	next := prev
	next.Mode = ModeEdit
	return next, true
}

// HandleKeypress treats a printable character like the edit key: typing into
// an editable cell begins editing.
func (b base) HandleKeypress(prev State) (State, bool) {
	return b.HandleEdit(prev)
}

// HandleCellMouseUp ends a drag. The grid lands in ModeSelect, or directly in
// ModeEdit when the host requests it for a cell whose editor opens on click.
func (b base) HandleCellMouseUp(prev State, beginEdit bool) (State, bool) {
	if prev.Mode != ModeSelecting {
		return prev, false
	}
	next := prev
	next.Mode = ModeSelect
	if beginEdit && !prev.Primary.ColumnHeader && b.layout.CellEditable(prev.Primary) {
		next.Mode = ModeEdit
	}
	return next, true
}

// HandleFillMouseDown starts a fill drag from the fill handle.
func (b base) HandleFillMouseDown(prev State, target grid.Coordinate) (State, bool) {
	if prev.Mode == ModeSelecting || prev.Mode == ModeFilling {
		return prev, false
	}
	if _, ok := prev.ActiveRegion(); !ok {
		return prev, false
	}
	next := prev
	next.Mode = ModeFilling
	next.Fill = nil
	return next, true
}

// HandleFillMouseUp ends a fill drag, merging the pending fill strip into the
// active region when one was projected.
func (b base) HandleFillMouseUp(prev State) (State, bool) {
	if prev.Mode != ModeFilling {
		return prev, false
	}
	next := prev
	next.Mode = ModeSelect
	next.Fill = nil
	if prev.Fill != nil {
		if active, ok := prev.ActiveRegion(); ok {
			next = next.withActiveRegion(active.Union(*prev.Fill))
		}
	}
	return next, true
}

// mapped resolves a coordinate through the layout's span index. Header
// coordinates map to themselves.
func (b base) mapped(c grid.Coordinate) grid.Coordinate {
	if c.ColumnHeader {
		return c
	}
	return b.layout.MappedCell(c)
}

// rectangularSelection builds the span-safe rectangle between an anchor and
// a free corner.
func (b base) rectangularSelection(primary, secondary grid.Coordinate, includePartial bool) grid.Region {
	return grid.Span(primary, secondary).Rectangularize(b.layout, includePartial)
}

// expandToRowSelection stretches a region's columns across the full
// selectable span. Header regions are left alone; they have no row to expand.
func (b base) expandToRowSelection(r grid.Region) grid.Region {
	if r.Primary.ColumnHeader {
		return r
	}
	out := r
	out.Primary.Col = b.layout.MinSelectableCol()
	out.Secondary.Col = b.layout.MaxSelectableCol()
	return out
}

// nextSelectableCol returns the first selectable column strictly after col,
// or false when none remains.
func (b base) nextSelectableCol(col int) (int, bool) {
	for c := col + 1; c <= b.layout.MaxSelectableCol(); c++ {
		if b.layout.ColSelectable(c) {
			return c, true
		}
	}
	return 0, false
}

// prevSelectableCol returns the last selectable column strictly before col,
// or false when none remains.
func (b base) prevSelectableCol(col int) (int, bool) {
	for c := col - 1; c >= b.layout.MinSelectableCol(); c-- {
		if b.layout.ColSelectable(c) {
			return c, true
		}
	}
	return 0, false
}

// nextTabCell advances one position in tab order: along the header row, then
// into the first data row, then column by column within each row, wrapping to
// the next row after the last selectable column. It never advances past the
// last row.
func (b base) nextTabCell(c grid.Coordinate) (grid.Coordinate, bool) {
	if c.ColumnHeader {
		if col, ok := b.nextSelectableCol(c.Col); ok {
			return grid.HeaderCoord(col), true
		}
		return b.mapped(grid.Coord(0, b.layout.MinSelectableCol())), true
	}
	if col, ok := b.nextSelectableCol(c.Col); ok {
		return b.mapped(grid.Coord(c.Row, col)), true
	}
	if c.Row < b.layout.MaxRow() {
		return b.mapped(grid.Coord(c.Row+1, b.layout.MinSelectableCol())), true
	}
	return grid.Coordinate{}, false
}

// prevTabCell is the reverse traversal of nextTabCell. From the first data
// cell it re-enters the header row unless the header is hidden.
func (b base) prevTabCell(c grid.Coordinate) (grid.Coordinate, bool) {
	if c.ColumnHeader {
		if col, ok := b.prevSelectableCol(c.Col); ok {
			return grid.HeaderCoord(col), true
		}
		return grid.Coordinate{}, false
	}
	if col, ok := b.prevSelectableCol(c.Col); ok {
		return b.mapped(grid.Coord(c.Row, col)), true
	}
	if c.Row > 0 {
		return b.mapped(grid.Coord(c.Row-1, b.layout.MaxSelectableCol())), true
	}
	if !b.layout.ColumnHeaderHidden() {
		return grid.HeaderCoord(b.layout.MaxSelectableCol()), true
	}
	return grid.Coordinate{}, false
}
