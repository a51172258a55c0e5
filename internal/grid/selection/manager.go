// Package selection implements the pure state machine that decides, for
// every classified keyboard or mouse input, the grid's next selection state.
// Handlers are deterministic functions of the previous state and the injected
// grid.Layout; they perform no I/O and hold no mutable fields. Every handler
// returns (next, true) when the input produced a transition, or (_, false)
// when the input does not apply in the current mode and the host must leave
// its state untouched.
package selection

import "github.com/wilbur182/tessera/internal/grid"

// SelectionMode selects the granularity policy a grid is configured with.
type SelectionMode uint8

const (
	// SelectionNone disables selection entirely.
	SelectionNone SelectionMode = iota

	// SelectionSingleCell allows exactly one selected cell.
	SelectionSingleCell

	// SelectionMultiCell allows arbitrary sets of rectangular cell regions.
	SelectionMultiCell

	// SelectionSingleRow allows exactly one selected row.
	SelectionSingleRow

	// SelectionMultiRow allows one or more selected rows.
	SelectionMultiRow
)

// String returns the configuration name of the mode.
func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "none"
	case SelectionSingleCell:
		return "single-cell"
	case SelectionMultiCell:
		return "multi-cell"
	case SelectionSingleRow:
		return "single-row"
	case SelectionMultiRow:
		return "multi-row"
	default:
		return "unknown"
	}
}

// ParseSelectionMode maps a configuration string to a SelectionMode.
// Unknown strings map to SelectionNone, matching NewManager's default.
func ParseSelectionMode(s string) SelectionMode {
	switch s {
	case "single-cell":
		return SelectionSingleCell
	case "multi-cell":
		return SelectionMultiCell
	case "single-row":
		return SelectionSingleRow
	case "multi-row":
		return SelectionMultiRow
	default:
		return SelectionNone
	}
}

// Manager is the full transition-handler contract the host grid drives.
// One named handler exists per discrete input; the host classifies raw
// terminal events and calls exactly one handler per event.
type Manager interface {
	HandleFocus(prev State) (State, bool)

	HandleEnter(prev State) (State, bool)
	HandleShiftEnter(prev State) (State, bool)
	HandleTab(prev State) (State, bool)
	HandleShiftTab(prev State) (State, bool)

	HandleHome(prev State) (State, bool)
	HandleEnd(prev State) (State, bool)
	HandleCtrlHome(prev State) (State, bool)
	HandleCtrlEnd(prev State) (State, bool)
	HandleShiftHome(prev State) (State, bool)
	HandleShiftEnd(prev State) (State, bool)
	HandleCtrlShiftHome(prev State) (State, bool)
	HandleCtrlShiftEnd(prev State) (State, bool)

	HandleUp(prev State) (State, bool)
	HandleDown(prev State) (State, bool)
	HandleLeft(prev State) (State, bool)
	HandleRight(prev State) (State, bool)
	HandleShiftUp(prev State) (State, bool)
	HandleShiftDown(prev State) (State, bool)
	HandleShiftLeft(prev State) (State, bool)
	HandleShiftRight(prev State) (State, bool)
	HandleCtrlUp(prev State) (State, bool)
	HandleCtrlDown(prev State) (State, bool)
	HandleCtrlLeft(prev State) (State, bool)
	HandleCtrlRight(prev State) (State, bool)
	HandleCtrlShiftUp(prev State) (State, bool)
	HandleCtrlShiftDown(prev State) (State, bool)
	HandleCtrlShiftLeft(prev State) (State, bool)
	HandleCtrlShiftRight(prev State) (State, bool)

	HandleCancel(prev State) (State, bool)
	HandleEdit(prev State) (State, bool)
	HandleKeypress(prev State) (State, bool)

	HandleCellMouseDown(prev State, target grid.Coordinate) (State, bool)
	HandleShiftCellMouseDown(prev State, target grid.Coordinate) (State, bool)
	HandleCtrlCellMouseDown(prev State, target grid.Coordinate) (State, bool)
	HandleCellMouseUp(prev State, beginEdit bool) (State, bool)
	HandleCellMouseEnter(prev State, target grid.Coordinate) (State, bool)
	HandleFillMouseDown(prev State, target grid.Coordinate) (State, bool)
	HandleFillMouseUp(prev State) (State, bool)
	HandleRightClick(prev State, target grid.Coordinate) (State, bool)
}

// NewManager returns the manager implementing the given selection mode.
// Unknown modes get the no-op manager, which never transitions.
func NewManager(mode SelectionMode, layout grid.Layout) Manager {
	switch mode {
	case SelectionSingleCell:
		return newSingleCell(layout)
	case SelectionMultiCell:
		return newMultiCell(layout)
	case SelectionSingleRow:
		return newSingleRow(layout)
	case SelectionMultiRow:
		return newMultiRow(layout)
	default:
		return noop{}
	}
}
