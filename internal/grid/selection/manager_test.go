package selection

import (
	"testing"

	"github.com/wilbur182/tessera/internal/grid"
)

// testLayout is a configurable grid shape for state-machine tests.
type testLayout struct {
	maxRow, maxCol int
	minSel, maxSel int
	spans          map[grid.Coordinate]int
	unselectable   map[int]bool
	uneditable     map[grid.Coordinate]bool
	headerHidden   bool
}

// newTestLayout returns a 5x4 grid (rows 0-4, cols 0-3) with no spans and a
// visible header, the shape most tests start from.
func newTestLayout() *testLayout {
	return &testLayout{
		maxRow: 4,
		maxCol: 3,
		minSel: 0,
		maxSel: 3,
		spans:  map[grid.Coordinate]int{},
	}
}

func (l *testLayout) MappedCell(c grid.Coordinate) grid.Coordinate {
	for r := c.Row; r >= 0; r-- {
		if span, ok := l.spans[grid.Coord(r, c.Col)]; ok {
			if r+span-1 >= c.Row {
				return grid.Coord(r, c.Col)
			}
			break
		}
	}
	return grid.Coord(c.Row, c.Col)
}

func (l *testLayout) MinSelectableCol() int { return l.minSel }
func (l *testLayout) MaxSelectableCol() int { return l.maxSel }
func (l *testLayout) MaxCol() int           { return l.maxCol }
func (l *testLayout) MaxRow() int           { return l.maxRow }

func (l *testLayout) RowSpan(c grid.Coordinate) int {
	if span, ok := l.spans[grid.Coord(c.Row, c.Col)]; ok {
		return span
	}
	return 1
}

func (l *testLayout) CellEditable(c grid.Coordinate) bool {
	return !l.uneditable[grid.Coord(c.Row, c.Col)]
}
func (l *testLayout) ColSelectable(col int) bool { return !l.unselectable[col] }
func (l *testLayout) ColumnHeaderHidden() bool   { return l.headerHidden }

// selected builds a ModeSelect state with a single region anchored at
// (row, col).
func selected(row, col int) State {
	return single(grid.Coord(row, col))
}

func TestNewManager_ModeMapping(t *testing.T) {
	layout := newTestLayout()
	tests := []struct {
		mode SelectionMode
		want string
	}{
		{SelectionNone, "selection.noop"},
		{SelectionSingleCell, "*selection.singleCell"},
		{SelectionMultiCell, "*selection.multiCell"},
		{SelectionSingleRow, "*selection.singleRow"},
		{SelectionMultiRow, "*selection.multiRow"},
		{SelectionMode(99), "selection.noop"},
	}
	for _, tt := range tests {
		m := NewManager(tt.mode, layout)
		switch tt.want {
		case "selection.noop":
			if _, ok := m.(noop); !ok {
				t.Errorf("NewManager(%v) = %T, want noop", tt.mode, m)
			}
		case "*selection.singleCell":
			if _, ok := m.(*singleCell); !ok {
				t.Errorf("NewManager(%v) = %T, want *singleCell", tt.mode, m)
			}
		case "*selection.multiCell":
			if _, ok := m.(*multiCell); !ok {
				t.Errorf("NewManager(%v) = %T, want *multiCell", tt.mode, m)
			}
		case "*selection.singleRow":
			if _, ok := m.(*singleRow); !ok {
				t.Errorf("NewManager(%v) = %T, want *singleRow", tt.mode, m)
			}
		case "*selection.multiRow":
			if _, ok := m.(*multiRow); !ok {
				t.Errorf("NewManager(%v) = %T, want *multiRow", tt.mode, m)
			}
		}
	}
}

func TestParseSelectionMode(t *testing.T) {
	tests := []struct {
		in   string
		want SelectionMode
	}{
		{"none", SelectionNone},
		{"single-cell", SelectionSingleCell},
		{"multi-cell", SelectionMultiCell},
		{"single-row", SelectionSingleRow},
		{"multi-row", SelectionMultiRow},
		{"bogus", SelectionNone},
		{"", SelectionNone},
	}
	for _, tt := range tests {
		if got := ParseSelectionMode(tt.in); got != tt.want {
			t.Errorf("ParseSelectionMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, mode := range []SelectionMode{SelectionNone, SelectionSingleCell, SelectionMultiCell, SelectionSingleRow, SelectionMultiRow} {
		if got := ParseSelectionMode(mode.String()); got != mode {
			t.Errorf("ParseSelectionMode(%q) = %v, want round trip", mode.String(), mode)
		}
	}
}

// namedHandler pairs a handler name with a uniform single-argument form so
// totality properties can run against the full contract.
type namedHandler struct {
	name string
	fn   func(State) (State, bool)
}

// allHandlers enumerates every Manager handler, adapting the mouse handlers
// to a fixed target coordinate.
func allHandlers(m Manager) []namedHandler {
	target := grid.Coord(2, 2)
	return []namedHandler{
		{"Focus", m.HandleFocus},
		{"Enter", m.HandleEnter},
		{"ShiftEnter", m.HandleShiftEnter},
		{"Tab", m.HandleTab},
		{"ShiftTab", m.HandleShiftTab},
		{"Home", m.HandleHome},
		{"End", m.HandleEnd},
		{"CtrlHome", m.HandleCtrlHome},
		{"CtrlEnd", m.HandleCtrlEnd},
		{"ShiftHome", m.HandleShiftHome},
		{"ShiftEnd", m.HandleShiftEnd},
		{"CtrlShiftHome", m.HandleCtrlShiftHome},
		{"CtrlShiftEnd", m.HandleCtrlShiftEnd},
		{"Up", m.HandleUp},
		{"Down", m.HandleDown},
		{"Left", m.HandleLeft},
		{"Right", m.HandleRight},
		{"ShiftUp", m.HandleShiftUp},
		{"ShiftDown", m.HandleShiftDown},
		{"ShiftLeft", m.HandleShiftLeft},
		{"ShiftRight", m.HandleShiftRight},
		{"CtrlUp", m.HandleCtrlUp},
		{"CtrlDown", m.HandleCtrlDown},
		{"CtrlLeft", m.HandleCtrlLeft},
		{"CtrlRight", m.HandleCtrlRight},
		{"CtrlShiftUp", m.HandleCtrlShiftUp},
		{"CtrlShiftDown", m.HandleCtrlShiftDown},
		{"CtrlShiftLeft", m.HandleCtrlShiftLeft},
		{"CtrlShiftRight", m.HandleCtrlShiftRight},
		{"Cancel", m.HandleCancel},
		{"Edit", m.HandleEdit},
		{"Keypress", m.HandleKeypress},
		{"CellMouseDown", func(s State) (State, bool) { return m.HandleCellMouseDown(s, target) }},
		{"ShiftCellMouseDown", func(s State) (State, bool) { return m.HandleShiftCellMouseDown(s, target) }},
		{"CtrlCellMouseDown", func(s State) (State, bool) { return m.HandleCtrlCellMouseDown(s, target) }},
		{"CellMouseUp", func(s State) (State, bool) { return m.HandleCellMouseUp(s, false) }},
		{"CellMouseEnter", func(s State) (State, bool) { return m.HandleCellMouseEnter(s, target) }},
		{"FillMouseDown", func(s State) (State, bool) { return m.HandleFillMouseDown(s, target) }},
		{"FillMouseUp", m.HandleFillMouseUp},
		{"RightClick", func(s State) (State, bool) { return m.HandleRightClick(s, target) }},
	}
}

func TestNoop_NeverTransitions(t *testing.T) {
	states := []State{
		DefaultState(),
		selected(2, 1),
		{Mode: ModeEdit, Primary: grid.Coord(1, 1), Regions: []grid.Region{grid.NewRegion(grid.Coord(1, 1))}},
		{Mode: ModeSelecting, Primary: grid.Coord(0, 0), Regions: []grid.Region{grid.NewRegion(grid.Coord(0, 0))}},
	}
	for _, prev := range states {
		for _, h := range allHandlers(noop{}) {
			if _, ok := h.fn(prev); ok {
				t.Errorf("noop %s transitioned from mode %v", h.name, prev.Mode)
			}
		}
	}
}

func TestDefaultState(t *testing.T) {
	st := DefaultState()
	if st.Mode != ModeNone {
		t.Errorf("default mode = %v, want none", st.Mode)
	}
	if len(st.Regions) != 0 || st.Fill != nil {
		t.Errorf("default state must carry no selections")
	}
	if !st.Primary.Equal(grid.Coord(-1, -1)) {
		t.Errorf("default primary = %v, want (-1,-1)", st.Primary)
	}
}
