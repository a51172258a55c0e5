package selection

import (
	"testing"

	"github.com/wilbur182/tessera/internal/grid"
)

// TestMultiRow_RegionsAlwaysSpanAllColumns drives every handler over a set of
// starting states and asserts the row invariant: any region a row manager
// emits covers the full selectable column range, and the primary cell is
// marked as a row header.
func TestMultiRow_RegionsAlwaysSpanAllColumns(t *testing.T) {
	layout := newTestLayout()
	layout.minSel = 1
	layout.maxSel = 3
	m := newMultiRow(layout)

	rowState := func(row int) State {
		st := single(grid.RowHeaderCoord(row, layout.minSel))
		st.Regions = []grid.Region{m.cell.expandToRowSelection(st.Regions[0])}
		return st
	}

	states := []State{
		DefaultState(),
		rowState(0),
		rowState(2),
		rowState(4),
		single(grid.HeaderCoord(1)),
	}

	wantCols := grid.Range{Start: layout.minSel, End: layout.maxSel}
	for _, prev := range states {
		for _, h := range allHandlers(m) {
			next, ok := h.fn(prev)
			if !ok {
				continue
			}
			for i, reg := range next.Regions {
				if reg.Primary.ColumnHeader {
					continue
				}
				if got := reg.ColRange(); got != wantCols {
					t.Errorf("%s from %v: region %d cols = %v, want %v", h.name, prev.Primary, i, got, wantCols)
				}
			}
			if !next.Primary.ColumnHeader && !next.Primary.RowHeader {
				t.Errorf("%s from %v: primary %v not marked as row header", h.name, prev.Primary, next.Primary)
			}
		}
	}
}

func TestMultiRow_HorizontalNavigationInapplicable(t *testing.T) {
	m := newMultiRow(newTestLayout())
	prev := single(grid.RowHeaderCoord(2, 0))

	handlers := []struct {
		name string
		fn   func(State) (State, bool)
	}{
		{"left", m.HandleLeft},
		{"right", m.HandleRight},
		{"shift+left", m.HandleShiftLeft},
		{"shift+right", m.HandleShiftRight},
		{"ctrl+left", m.HandleCtrlLeft},
		{"ctrl+right", m.HandleCtrlRight},
		{"ctrl+shift+left", m.HandleCtrlShiftLeft},
		{"ctrl+shift+right", m.HandleCtrlShiftRight},
		{"tab", m.HandleTab},
		{"shift+tab", m.HandleShiftTab},
	}
	for _, h := range handlers {
		if _, ok := h.fn(prev); ok {
			t.Errorf("%s must not transition on a row manager", h.name)
		}
	}
}

func TestMultiRow_DownSelectsWholeRow(t *testing.T) {
	m := newMultiRow(newTestLayout())

	st, ok := m.HandleDown(single(grid.RowHeaderCoord(1, 0)))
	if !ok {
		t.Fatalf("down must transition")
	}
	if !st.Primary.Equal(grid.Coord(2, 0)) || !st.Primary.RowHeader {
		t.Errorf("primary = %v, want row-header (2,0)", st.Primary)
	}
	want := grid.Span(grid.Coord(2, 0), grid.Coord(2, 3))
	if len(st.Regions) != 1 || !st.Regions[0].Equal(want) {
		t.Errorf("region = %v, want %v", st.Regions, want)
	}
}

func TestMultiRow_ShiftDownGrowsRowRange(t *testing.T) {
	m := newMultiRow(newTestLayout())

	prev := single(grid.RowHeaderCoord(1, 0))
	prev.Regions = []grid.Region{grid.Span(grid.Coord(1, 0), grid.Coord(1, 3))}

	st, ok := m.HandleShiftDown(prev)
	if !ok {
		t.Fatalf("shift+down must transition")
	}
	want := grid.Span(grid.Coord(1, 0), grid.Coord(2, 3))
	if len(st.Regions) != 1 || !st.Regions[0].Equal(want) {
		t.Errorf("region = %v, want rows 1-2 across all columns, got %v", st.Regions, want)
	}
}

func TestMultiRow_CtrlClickAppendsRows(t *testing.T) {
	m := newMultiRow(newTestLayout())

	st, ok := m.HandleCtrlCellMouseDown(DefaultState(), grid.Coord(1, 2))
	if !ok {
		t.Fatalf("first ctrl+click must transition")
	}
	st, ok = m.HandleCtrlCellMouseDown(st, grid.Coord(3, 0))
	if !ok {
		t.Fatalf("second ctrl+click must transition")
	}
	if len(st.Regions) != 2 {
		t.Fatalf("regions = %v, want two rows", st.Regions)
	}
	for i, reg := range st.Regions {
		if got := reg.ColRange(); got != (grid.Range{Start: 0, End: 3}) {
			t.Errorf("region %d cols = %v, want full width", i, got)
		}
	}

	// A third click inside an already-selected row is rejected.
	if _, ok := m.HandleCtrlCellMouseDown(st, grid.Coord(3, 3)); ok {
		t.Errorf("ctrl+click inside a selected row must not transition")
	}
}

func TestMultiRow_HeaderFocus(t *testing.T) {
	m := newMultiRow(newTestLayout())
	st, ok := m.HandleFocus(DefaultState())
	if !ok || !st.Primary.Equal(grid.HeaderCoord(0)) {
		t.Errorf("focus = %v ok=%v, want header(0)", st.Primary, ok)
	}
	if st.Primary.RowHeader {
		t.Errorf("a column-header primary must not carry the row-header mark")
	}
}
