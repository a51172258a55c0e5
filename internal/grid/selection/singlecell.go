package selection

import "github.com/wilbur182/tessera/internal/grid"

// singleCell restricts the multi-cell policy to exactly one selected cell:
// every extend/shift input collapses to its plain move equivalent, and a
// mouse-down lands directly in ModeSelect because there is nothing to drag
// over.
type singleCell struct {
	*multiCell
}

func newSingleCell(layout grid.Layout) *singleCell {
	return &singleCell{multiCell: newMultiCell(layout)}
}

func (m *singleCell) HandleShiftUp(prev State) (State, bool) {
	return m.multiCell.HandleUp(prev)
}

func (m *singleCell) HandleShiftDown(prev State) (State, bool) {
	return m.multiCell.HandleDown(prev)
}

func (m *singleCell) HandleShiftLeft(prev State) (State, bool) {
	return m.multiCell.HandleLeft(prev)
}

func (m *singleCell) HandleShiftRight(prev State) (State, bool) {
	return m.multiCell.HandleRight(prev)
}

func (m *singleCell) HandleCtrlShiftUp(prev State) (State, bool) {
	return m.multiCell.HandleCtrlUp(prev)
}

func (m *singleCell) HandleCtrlShiftDown(prev State) (State, bool) {
	return m.multiCell.HandleCtrlDown(prev)
}

func (m *singleCell) HandleCtrlShiftLeft(prev State) (State, bool) {
	return m.multiCell.HandleCtrlLeft(prev)
}

func (m *singleCell) HandleCtrlShiftRight(prev State) (State, bool) {
	return m.multiCell.HandleCtrlRight(prev)
}

func (m *singleCell) HandleShiftHome(prev State) (State, bool) {
	return m.multiCell.HandleHome(prev)
}

func (m *singleCell) HandleShiftEnd(prev State) (State, bool) {
	return m.multiCell.HandleEnd(prev)
}

func (m *singleCell) HandleCtrlShiftHome(prev State) (State, bool) {
	return m.multiCell.HandleCtrlHome(prev)
}

func (m *singleCell) HandleCtrlShiftEnd(prev State) (State, bool) {
	return m.multiCell.HandleCtrlEnd(prev)
}

func (m *singleCell) HandleCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	next, ok := m.multiCell.HandleCellMouseDown(prev, target)
	if !ok {
		return prev, false
	}
	if next.Mode == ModeSelecting {
		next.Mode = ModeSelect
	}
	return next, true
}

func (m *singleCell) HandleShiftCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.HandleCellMouseDown(prev, target)
}

func (m *singleCell) HandleCtrlCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return m.HandleCellMouseDown(prev, target)
}

func (m *singleCell) HandleCellMouseEnter(prev State, target grid.Coordinate) (State, bool) {
	// Never in ModeSelecting; only fill projection applies.
	if prev.Mode != ModeFilling {
		return prev, false
	}
	return m.multiCell.HandleCellMouseEnter(prev, target)
}
