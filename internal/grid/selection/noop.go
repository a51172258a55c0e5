package selection

import "github.com/wilbur182/tessera/internal/grid"

// noop is the manager for SelectionNone: every input is inapplicable.
type noop struct{}

func (noop) HandleFocus(prev State) (State, bool)         { return prev, false }
func (noop) HandleEnter(prev State) (State, bool)         { return prev, false }
func (noop) HandleShiftEnter(prev State) (State, bool)    { return prev, false }
func (noop) HandleTab(prev State) (State, bool)           { return prev, false }
func (noop) HandleShiftTab(prev State) (State, bool)      { return prev, false }
func (noop) HandleHome(prev State) (State, bool)          { return prev, false }
func (noop) HandleEnd(prev State) (State, bool)           { return prev, false }
func (noop) HandleCtrlHome(prev State) (State, bool)      { return prev, false }
func (noop) HandleCtrlEnd(prev State) (State, bool)       { return prev, false }
func (noop) HandleShiftHome(prev State) (State, bool)     { return prev, false }
func (noop) HandleShiftEnd(prev State) (State, bool)      { return prev, false }
func (noop) HandleCtrlShiftHome(prev State) (State, bool) { return prev, false }
func (noop) HandleCtrlShiftEnd(prev State) (State, bool)  { return prev, false }
func (noop) HandleUp(prev State) (State, bool)            { return prev, false }
func (noop) HandleDown(prev State) (State, bool)          { return prev, false }
func (noop) HandleLeft(prev State) (State, bool)          { return prev, false }
func (noop) HandleRight(prev State) (State, bool)         { return prev, false }
func (noop) HandleShiftUp(prev State) (State, bool)       { return prev, false }
func (noop) HandleShiftDown(prev State) (State, bool)     { return prev, false }
func (noop) HandleShiftLeft(prev State) (State, bool)     { return prev, false }
func (noop) HandleShiftRight(prev State) (State, bool)    { return prev, false }
func (noop) HandleCtrlUp(prev State) (State, bool)        { return prev, false }
func (noop) HandleCtrlDown(prev State) (State, bool)      { return prev, false }
func (noop) HandleCtrlLeft(prev State) (State, bool)      { return prev, false }
func (noop) HandleCtrlRight(prev State) (State, bool)     { return prev, false }
func (noop) HandleCtrlShiftUp(prev State) (State, bool)   { return prev, false }
func (noop) HandleCtrlShiftDown(prev State) (State, bool) { return prev, false }
func (noop) HandleCtrlShiftLeft(prev State) (State, bool) { return prev, false }
func (noop) HandleCtrlShiftRight(prev State) (State, bool) {
	return prev, false
}
func (noop) HandleCancel(prev State) (State, bool)   { return prev, false }
func (noop) HandleEdit(prev State) (State, bool)     { return prev, false }
func (noop) HandleKeypress(prev State) (State, bool) { return prev, false }
func (noop) HandleCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return prev, false
}
func (noop) HandleShiftCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return prev, false
}
func (noop) HandleCtrlCellMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return prev, false
}
func (noop) HandleCellMouseUp(prev State, beginEdit bool) (State, bool) {
	return prev, false
}
func (noop) HandleCellMouseEnter(prev State, target grid.Coordinate) (State, bool) {
	return prev, false
}
func (noop) HandleFillMouseDown(prev State, target grid.Coordinate) (State, bool) {
	return prev, false
}
func (noop) HandleFillMouseUp(prev State) (State, bool) { return prev, false }
func (noop) HandleRightClick(prev State, target grid.Coordinate) (State, bool) {
	return prev, false
}
