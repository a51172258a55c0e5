package selection

import "github.com/wilbur182/tessera/internal/grid"

// multiRow implements whole-row selection by composing the multi-cell
// manager and post-processing every transition it produces: each region is
// stretched across the full selectable column span and the primary cell is
// marked as a row-header coordinate. Purely horizontal navigation is
// inapplicable when the unit of selection is a row.
type multiRow struct {
	cell *multiCell
}

func newMultiRow(layout grid.Layout) *multiRow {
	return &multiRow{cell: newMultiCell(layout)}
}

// rowify post-processes a cell-level transition into row granularity.
func (m *multiRow) rowify(next State, ok bool) (State, bool) {
	if !ok {
		return next, false
	}
	if len(next.Regions) > 0 {
		regions := make([]grid.Region, len(next.Regions))
		for i, reg := range next.Regions {
			regions[i] = m.cell.expandToRowSelection(reg)
		}
		next.Regions = regions
	}
	if !next.Primary.ColumnHeader {
		next.Primary.RowHeader = true
	}
	return next, true
}

func (m *multiRow) HandleFocus(prev State) (State, bool) {
	return m.rowify(m.cell.HandleFocus(prev))
}

func (m *multiRow) HandleEnter(prev State) (State, bool) {
	return m.rowify(m.cell.HandleEnter(prev))
}

func (m *multiRow) HandleShiftEnter(prev State) (State, bool) {
	return m.rowify(m.cell.HandleShiftEnter(prev))
}

func (m *multiRow) HandleTab(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleShiftTab(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleHome(prev State) (State, bool) {
	return m.rowify(m.cell.HandleHome(prev))
}

func (m *multiRow) HandleEnd(prev State) (State, bool) {
	return m.rowify(m.cell.HandleEnd(prev))
}

func (m *multiRow) HandleCtrlHome(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlHome(prev))
}

func (m *multiRow) HandleCtrlEnd(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlEnd(prev))
}

func (m *multiRow) HandleShiftHome(prev State) (State, bool) {
	return m.rowify(m.cell.HandleShiftHome(prev))
}

func (m *multiRow) HandleShiftEnd(prev State) (State, bool) {
	return m.rowify(m.cell.HandleShiftEnd(prev))
}

func (m *multiRow) HandleCtrlShiftHome(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlShiftHome(prev))
}

func (m *multiRow) HandleCtrlShiftEnd(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlShiftEnd(prev))
}

func (m *multiRow) HandleUp(prev State) (State, bool) {
	return m.rowify(m.cell.HandleUp(prev))
}

func (m *multiRow) HandleDown(prev State) (State, bool) {
	return m.rowify(m.cell.HandleDown(prev))
}

func (m *multiRow) HandleLeft(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleRight(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleShiftUp(prev State) (State, bool) {
	return m.rowify(m.cell.HandleShiftUp(prev))
}

func (m *multiRow) HandleShiftDown(prev State) (State, bool) {
	return m.rowify(m.cell.HandleShiftDown(prev))
}

func (m *multiRow) HandleShiftLeft(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleShiftRight(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleCtrlUp(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlUp(prev))
}

func (m *multiRow) HandleCtrlDown(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlDown(prev))
}

func (m *multiRow) HandleCtrlLeft(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleCtrlRight(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleCtrlShiftUp(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlShiftUp(prev))
}

func (m *multiRow) HandleCtrlShiftDown(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCtrlShiftDown(prev))
}

func (m *multiRow) HandleCtrlShiftLeft(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleCtrlShiftRight(prev State) (State, bool) {
	return prev, false
}

func (m *multiRow) HandleCancel(prev State) (State, bool) {
	return m.rowify(m.cell.HandleCancel(prev))
}

func (m *multiRow) HandleEdit(prev State) (State, bool) {
	return m.rowify(m.cell.HandleEdit(prev))
}

func (m *multiRow) HandleKeypress(prev State) (State, bool) {
	return m.rowify(m.cell.HandleKeypress(prev))
}

func (m *multiRow) HandleCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.rowify(m.cell.HandleCellMouseDown(prev, target))
}

func (m *multiRow) HandleShiftCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.rowify(m.cell.HandleShiftCellMouseDown(prev, target))
}

func (m *multiRow) HandleCtrlCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.rowify(m.cell.HandleCtrlCellMouseDown(prev, target))
}

func (m *multiRow) HandleCellMouseUp(prev State, beginEdit bool) (State, bool) {
	return m.rowify(m.cell.HandleCellMouseUp(prev, beginEdit))
}

func (m *multiRow) HandleCellMouseEnter(prev State, target grid.Coordinate) (State, bool) {
	return m.rowify(m.cell.HandleCellMouseEnter(prev, target))
}

func (m *multiRow) HandleFillMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.rowify(m.cell.HandleFillMouseDown(prev, target))
}

func (m *multiRow) HandleFillMouseUp(prev State) (State, bool) {
	return m.rowify(m.cell.HandleFillMouseUp(prev))
}

func (m *multiRow) HandleRightClick(prev State, target grid.Coordinate) (State, bool) {
	return m.rowify(m.cell.HandleRightClick(prev, target))
}
