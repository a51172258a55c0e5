package selection

import "github.com/wilbur182/tessera/internal/grid"

// multiCell implements the full multi-cell policy: arbitrary sets of
// possibly-disjoint rectangular regions, drag extension, ctrl-click disjoint
// anchors, and fill projection. The row and single-cell variants are built by
// composing this manager and post-processing its results.
type multiCell struct {
	base
}

func newMultiCell(layout grid.Layout) *multiCell {
	return &multiCell{base{layout: layout}}
}

// navigable reports whether keyboard navigation applies to the state.
func navigable(s State) bool {
	return s.Mode == ModeSelect || s.Mode == ModeEdit
}

// exitEdit leaves edit mode without moving, used when navigation hits a grid
// boundary while an editor is open.
func exitEdit(prev State) (State, bool) {
	if prev.Mode != ModeEdit {
		return prev, false
	}
	next := prev
	next.Mode = ModeSelect
	return next, true
}

func (m *multiCell) HandleFocus(prev State) (State, bool) {
	if prev.Mode != ModeNone {
		return prev, false
	}
	col := m.layout.MinSelectableCol()
	if m.layout.ColumnHeaderHidden() {
		return single(m.mapped(grid.Coord(0, col))), true
	}
	return single(grid.HeaderCoord(col)), true
}

func (m *multiCell) HandleEnter(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	if cur.ColumnHeader {
		return single(m.mapped(grid.Coord(0, cur.Col))), true
	}
	row := cur.Row + grid.RowSpanOf(m.layout, cur)
	if row > m.layout.MaxRow() {
		return exitEdit(prev)
	}
	return single(m.mapped(grid.Coord(row, cur.Col))), true
}

func (m *multiCell) HandleShiftEnter(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	if cur.ColumnHeader {
		return prev, false
	}
	if cur.Row == 0 {
		return exitEdit(prev)
	}
	return single(m.mapped(grid.Coord(cur.Row-1, cur.Col))), true
}

func (m *multiCell) HandleTab(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	next, ok := m.nextTabCell(prev.Primary)
	if !ok {
		return exitEdit(prev)
	}
	return single(next), true
}

func (m *multiCell) HandleShiftTab(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	next, ok := m.prevTabCell(prev.Primary)
	if !ok {
		return exitEdit(prev)
	}
	return single(next), true
}

func (m *multiCell) HandleHome(prev State) (State, bool) {
	return m.moveToCol(prev, m.layout.MinSelectableCol())
}

func (m *multiCell) HandleEnd(prev State) (State, bool) {
	return m.moveToCol(prev, m.layout.MaxSelectableCol())
}

// moveToCol moves the primary cell to a column within its current row.
func (m *multiCell) moveToCol(prev State, col int) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	if cur.ColumnHeader {
		return single(grid.HeaderCoord(col)), true
	}
	return single(m.mapped(grid.Coord(cur.Row, col))), true
}

func (m *multiCell) HandleCtrlHome(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	return single(m.mapped(grid.Coord(0, m.layout.MinSelectableCol()))), true
}

func (m *multiCell) HandleCtrlEnd(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	return single(m.mapped(grid.Coord(m.layout.MaxRow(), m.layout.MaxSelectableCol()))), true
}

func (m *multiCell) HandleShiftHome(prev State) (State, bool) {
	return m.moveSecondary(prev, func(sec grid.Coordinate) (grid.Coordinate, bool) {
		return grid.Coord(sec.Row, m.layout.MinSelectableCol()), true
	})
}

func (m *multiCell) HandleShiftEnd(prev State) (State, bool) {
	return m.moveSecondary(prev, func(sec grid.Coordinate) (grid.Coordinate, bool) {
		return grid.Coord(sec.Row, m.layout.MaxSelectableCol()), true
	})
}

func (m *multiCell) HandleCtrlShiftHome(prev State) (State, bool) {
	return m.moveSecondary(prev, func(sec grid.Coordinate) (grid.Coordinate, bool) {
		return grid.Coord(0, m.layout.MinSelectableCol()), true
	})
}

func (m *multiCell) HandleCtrlShiftEnd(prev State) (State, bool) {
	return m.moveSecondary(prev, func(sec grid.Coordinate) (grid.Coordinate, bool) {
		return grid.Coord(m.layout.MaxRow(), m.layout.MaxSelectableCol()), true
	})
}

// moveSecondary relocates the free corner of the sole existing region and
// re-rectangularizes. It applies only when exactly one region is committed;
// the shift family never operates on ctrl-click region sets.
func (m *multiCell) moveSecondary(prev State, to func(sec grid.Coordinate) (grid.Coordinate, bool)) (State, bool) {
	if prev.Mode != ModeSelect && prev.Mode != ModeSelecting {
		return prev, false
	}
	if len(prev.Regions) != 1 {
		return prev, false
	}
	reg := prev.Regions[0]
	if reg.Primary.ColumnHeader {
		return prev, false
	}
	sec, ok := to(reg.Secondary)
	if !ok {
		return prev, false
	}
	rect := m.rectangularSelection(reg.Primary, sec, true)
	if rect.Equal(reg) {
		return prev, false
	}
	next := prev
	next.Regions = []grid.Region{rect}
	return next, true
}

func (m *multiCell) HandleUp(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	if cur.ColumnHeader {
		return prev, false
	}
	if cur.Row == 0 {
		if m.layout.ColumnHeaderHidden() {
			return prev, false
		}
		return single(grid.HeaderCoord(cur.Col)), true
	}
	return single(m.mapped(grid.Coord(cur.Row-1, cur.Col))), true
}

func (m *multiCell) HandleDown(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	if cur.ColumnHeader {
		return single(m.mapped(grid.Coord(0, cur.Col))), true
	}
	row := cur.Row + grid.RowSpanOf(m.layout, cur)
	if row > m.layout.MaxRow() {
		return prev, false
	}
	return single(m.mapped(grid.Coord(row, cur.Col))), true
}

func (m *multiCell) HandleLeft(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	col, ok := m.prevSelectableCol(cur.Col)
	if !ok {
		return prev, false
	}
	if cur.ColumnHeader {
		return single(grid.HeaderCoord(col)), true
	}
	return single(m.mapped(grid.Coord(cur.Row, col))), true
}

func (m *multiCell) HandleRight(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	col, ok := m.nextSelectableCol(cur.Col)
	if !ok {
		return prev, false
	}
	if cur.ColumnHeader {
		return single(grid.HeaderCoord(col)), true
	}
	return single(m.mapped(grid.Coord(cur.Row, col))), true
}

func (m *multiCell) HandleCtrlUp(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	if cur.ColumnHeader {
		return prev, false
	}
	return single(m.mapped(grid.Coord(0, cur.Col))), true
}

func (m *multiCell) HandleCtrlDown(prev State) (State, bool) {
	if !navigable(prev) {
		return prev, false
	}
	cur := m.mapped(prev.Primary)
	return single(m.mapped(grid.Coord(m.layout.MaxRow(), cur.Col))), true
}

func (m *multiCell) HandleCtrlLeft(prev State) (State, bool) {
	return m.HandleHome(prev)
}

func (m *multiCell) HandleCtrlRight(prev State) (State, bool) {
	return m.HandleEnd(prev)
}

func (m *multiCell) HandleShiftUp(prev State) (State, bool) {
	return m.growRows(prev, -1)
}

func (m *multiCell) HandleShiftDown(prev State) (State, bool) {
	return m.growRows(prev, 1)
}

// growRows moves the live region's free corner one row in the given
// direction, expanding when the corner moves away from the anchor and
// shrinking (with span-safe retraction) when it moves toward it.
func (m *multiCell) growRows(prev State, dir int) (State, bool) {
	if prev.Mode != ModeSelect && prev.Mode != ModeSelecting {
		return prev, false
	}
	reg, ok := prev.ActiveRegion()
	if !ok || reg.Primary.ColumnHeader {
		return prev, false
	}
	rows := reg.RowRange()
	anchor := reg.Primary.Row
	sec := reg.Secondary

	var row int
	include := true
	if dir > 0 {
		if sec.Row < anchor {
			// Free corner is the top edge: moving down shrinks.
			row = rows.Start + 1
			include = false
			if row > anchor {
				row = anchor
			}
		} else {
			row = rows.End + 1
			if row > m.layout.MaxRow() {
				return prev, false
			}
		}
	} else {
		if sec.Row > anchor {
			// Free corner is the bottom edge: moving up shrinks.
			row = rows.End - 1
			include = false
			if row < anchor {
				row = anchor
			}
		} else {
			row = rows.Start - 1
			if row < 0 {
				return prev, false
			}
		}
	}
	rect := m.rectangularSelection(reg.Primary, grid.Coord(row, sec.Col), include)
	return m.commitActive(prev, reg, rect)
}

func (m *multiCell) HandleShiftLeft(prev State) (State, bool) {
	return m.growCols(prev, -1)
}

func (m *multiCell) HandleShiftRight(prev State) (State, bool) {
	return m.growCols(prev, 1)
}

// growCols moves the live region's free corner one selectable column in the
// given direction. Column moves never bisect a span vertically, but freshly
// added columns may expose new spans, so the result is always
// re-rectangularized in growing mode.
func (m *multiCell) growCols(prev State, dir int) (State, bool) {
	if prev.Mode != ModeSelect && prev.Mode != ModeSelecting {
		return prev, false
	}
	reg, ok := prev.ActiveRegion()
	if !ok || reg.Primary.ColumnHeader {
		return prev, false
	}
	cols := reg.ColRange()
	anchor := reg.Primary.Col
	sec := reg.Secondary

	var col int
	if dir > 0 {
		if sec.Col < anchor {
			col = cols.Start + 1
			if col > anchor {
				col = anchor
			}
		} else {
			next, ok := m.nextSelectableCol(cols.End)
			if !ok {
				return prev, false
			}
			col = next
		}
	} else {
		if sec.Col > anchor {
			col = cols.End - 1
			if col < anchor {
				col = anchor
			}
		} else {
			next, ok := m.prevSelectableCol(cols.Start)
			if !ok {
				return prev, false
			}
			col = next
		}
	}
	rect := m.rectangularSelection(reg.Primary, grid.Coord(sec.Row, col), true)
	return m.commitActive(prev, reg, rect)
}

func (m *multiCell) HandleCtrlShiftUp(prev State) (State, bool) {
	return m.jumpSecondary(prev, func(sec grid.Coordinate) grid.Coordinate {
		return grid.Coord(0, sec.Col)
	})
}

func (m *multiCell) HandleCtrlShiftDown(prev State) (State, bool) {
	return m.jumpSecondary(prev, func(sec grid.Coordinate) grid.Coordinate {
		return grid.Coord(m.layout.MaxRow(), sec.Col)
	})
}

func (m *multiCell) HandleCtrlShiftLeft(prev State) (State, bool) {
	return m.jumpSecondary(prev, func(sec grid.Coordinate) grid.Coordinate {
		return grid.Coord(sec.Row, m.layout.MinSelectableCol())
	})
}

func (m *multiCell) HandleCtrlShiftRight(prev State) (State, bool) {
	return m.jumpSecondary(prev, func(sec grid.Coordinate) grid.Coordinate {
		return grid.Coord(sec.Row, m.layout.MaxSelectableCol())
	})
}

// jumpSecondary throws the live region's free corner to a grid extreme.
func (m *multiCell) jumpSecondary(prev State, to func(sec grid.Coordinate) grid.Coordinate) (State, bool) {
	if prev.Mode != ModeSelect && prev.Mode != ModeSelecting {
		return prev, false
	}
	reg, ok := prev.ActiveRegion()
	if !ok || reg.Primary.ColumnHeader {
		return prev, false
	}
	rect := m.rectangularSelection(reg.Primary, to(reg.Secondary), true)
	return m.commitActive(prev, reg, rect)
}

// commitActive replaces the live region with rect, rejecting the update when
// nothing changed or when the new rectangle would overlap another committed
// region.
func (m *multiCell) commitActive(prev State, old, rect grid.Region) (State, bool) {
	if rect.Equal(old) {
		return prev, false
	}
	for _, other := range prev.Regions[:len(prev.Regions)-1] {
		if rect.Overlaps(other) {
			return prev, false
		}
	}
	return prev.withActiveRegion(rect), true
}

func (m *multiCell) HandleCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	if !m.layout.ColSelectable(target.Col) {
		return prev, false
	}
	if target.ColumnHeader {
		return single(target), true
	}
	p := m.mapped(target)
	p.RowHeader = target.RowHeader
	next := single(p)
	next.Mode = ModeSelecting
	return next, true
}

func (m *multiCell) HandleShiftCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	next, ok := m.extendActiveTo(prev, target)
	if !ok {
		return prev, false
	}
	next.Mode = ModeSelecting
	return next, true
}

func (m *multiCell) HandleCtrlCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	if target.ColumnHeader || !m.layout.ColSelectable(target.Col) {
		return prev, false
	}
	p := m.mapped(target)
	for _, reg := range prev.Regions {
		if reg.Contains(p) {
			return prev, false
		}
	}
	next := prev
	next.Mode = ModeSelecting
	next.Primary = p
	next.Regions = append(append([]grid.Region(nil), prev.Regions...), grid.NewRegion(p))
	next.Fill = nil
	return next, true
}

func (m *multiCell) HandleCellMouseEnter(prev State, target grid.Coordinate) (State, bool) {
	switch prev.Mode {
	case ModeSelecting:
		return m.extendActiveTo(prev, target)
	case ModeFilling:
		return m.projectFill(prev, target)
	default:
		return prev, false
	}
}

// extendActiveTo stretches the live region from its anchor to the target,
// rectangularizing in the direction of travel and rejecting updates that
// would overlap another committed region.
func (m *multiCell) extendActiveTo(prev State, target grid.Coordinate) (State, bool) {
	reg, ok := prev.ActiveRegion()
	if !ok || reg.Primary.ColumnHeader {
		return prev, false
	}
	if target.ColumnHeader || !m.layout.ColSelectable(target.Col) {
		return prev, false
	}
	t := m.mapped(target)
	rect := m.rectangularSelection(reg.Primary, t, !shrinksRows(reg, t))
	return m.commitActive(prev, reg, rect)
}

// shrinksRows reports whether dragging the free corner to t narrows the
// region's row range, which switches rectangularization into retracting mode.
func shrinksRows(reg grid.Region, t grid.Coordinate) bool {
	old := reg.RowRange()
	anchor := reg.Primary.Row
	next := grid.Range{Start: anchor, End: t.Row}
	if t.Row < anchor {
		next = grid.Range{Start: t.Row, End: anchor}
	}
	return next.Start >= old.Start && next.End <= old.End && next != old
}

// projectFill recomputes the pending fill strip while the fill handle drags.
// A transition is emitted only when the projected strip actually changed.
func (m *multiCell) projectFill(prev State, target grid.Coordinate) (State, bool) {
	reg, ok := prev.ActiveRegion()
	if !ok {
		return prev, false
	}
	fill, ok := reg.FillTarget(m.mapped(target))
	if !ok {
		if prev.Fill == nil {
			return prev, false
		}
		next := prev
		next.Fill = nil
		return next, true
	}
	if prev.Fill != nil && prev.Fill.Equal(fill) {
		return prev, false
	}
	next := prev
	next.Fill = &fill
	return next, true
}

func (m *multiCell) HandleRightClick(prev State, target grid.Coordinate) (State, bool) {
	if !m.layout.ColSelectable(target.Col) {
		return prev, false
	}
	p := m.mapped(target)
	if p.Equal(prev.Primary) {
		return prev, false
	}
	next := single(p)
	next.Mode = ModeSelect
	return next, true
}
