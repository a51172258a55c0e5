package selection

import "github.com/wilbur182/tessera/internal/grid"

// singleRow restricts the multi-row policy to exactly one selected row, the
// same way singleCell restricts multiCell: extend inputs collapse to moves
// and a mouse-down never starts a drag.
type singleRow struct {
	*multiRow
}

func newSingleRow(layout grid.Layout) *singleRow {
	return &singleRow{multiRow: newMultiRow(layout)}
}

func (m *singleRow) HandleShiftUp(prev State) (State, bool) {
	return m.multiRow.HandleUp(prev)
}

func (m *singleRow) HandleShiftDown(prev State) (State, bool) {
	return m.multiRow.HandleDown(prev)
}

func (m *singleRow) HandleCtrlShiftUp(prev State) (State, bool) {
	return m.multiRow.HandleCtrlUp(prev)
}

func (m *singleRow) HandleCtrlShiftDown(prev State) (State, bool) {
	return m.multiRow.HandleCtrlDown(prev)
}

func (m *singleRow) HandleShiftHome(prev State) (State, bool) {
	return m.multiRow.HandleHome(prev)
}

func (m *singleRow) HandleShiftEnd(prev State) (State, bool) {
	return m.multiRow.HandleEnd(prev)
}

func (m *singleRow) HandleCtrlShiftHome(prev State) (State, bool) {
	return m.multiRow.HandleCtrlHome(prev)
}

func (m *singleRow) HandleCtrlShiftEnd(prev State) (State, bool) {
	return m.multiRow.HandleCtrlEnd(prev)
}

func (m *singleRow) HandleCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	next, ok := m.multiRow.HandleCellMouseDown(prev, target)
	if !ok {
		return prev, false
	}
	if next.Mode == ModeSelecting {
		next.Mode = ModeSelect
	}
	return next, true
}

func (m *singleRow) HandleShiftCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.HandleCellMouseDown(prev, target)
}

func (m *singleRow) HandleCtrlCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.HandleCellMouseDown(prev, target)
}

func (m *singleRow) HandleCellMouseEnter(prev State, target grid.Coordinate) (State, bool) {
	if prev.Mode != ModeFilling {
		return prev, false
	}
	return m.multiRow.HandleCellMouseEnter(prev, target)
}
