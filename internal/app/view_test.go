package app

import (
	"strings"
	"testing"

	"github.com/wilbur182/tessera/internal/mouse"
)

func TestViewLineCountMatchesHeight(t *testing.T) {
	m := testModel(t, 100)
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 12 {
		t.Errorf("view should fill the terminal height, got %d lines", len(lines))
	}
}

func TestViewVirtualizesRows(t *testing.T) {
	m := testModel(t, 100)
	view := m.View()
	if !strings.Contains(view, "item-0") {
		t.Error("first visible row missing")
	}
	if !strings.Contains(view, "item-9") {
		t.Error("last visible row missing")
	}
	if strings.Contains(view, "item-50") {
		t.Error("off-screen rows must not be rendered")
	}
}

func TestViewScrolledWindow(t *testing.T) {
	m := testModel(t, 100)
	m.scrollRow = 40
	view := m.View()
	if strings.Contains(view, "item-0\t") || strings.Contains(view, " item-1 ") {
		t.Error("rows above the viewport must not be rendered")
	}
	if !strings.Contains(view, "item-40") || !strings.Contains(view, "item-49") {
		t.Error("scrolled window should show rows 40-49")
	}
}

func TestViewStickyHeader(t *testing.T) {
	m := testModel(t, 100)
	m.scrollRow = 40
	lines := strings.Split(m.View(), "\n")
	if !strings.Contains(lines[0], "ID") || !strings.Contains(lines[0], "Name") {
		t.Errorf("header should stay on the first line, got %q", lines[0])
	}
}

func TestViewHiddenHeader(t *testing.T) {
	m := testModel(t, 100)
	m.sheet.SetHeaderHidden(true)
	lines := strings.Split(m.View(), "\n")
	if strings.Contains(lines[0], "Name") {
		t.Errorf("hidden header should not render, got %q", lines[0])
	}
	// The freed line goes to data rows.
	if !strings.Contains(lines[0], "item-0") {
		t.Errorf("first line should be the first data row, got %q", lines[0])
	}
}

func TestViewMergedCellRendersAtOwnerRow(t *testing.T) {
	m := testModel(t, 4)
	if err := m.sheet.SetSpan(0, 0, 2); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(m.View(), "\n")

	// Row 2 (second row of the merge) shows the gutter number but an empty
	// ID column; the value renders only at the owner row above.
	if got := strings.TrimSpace(lines[2][:8]); got != "2" {
		t.Errorf("continuation cell should be blank, first columns = %q", lines[2][:8])
	}
	if got := strings.TrimSpace(lines[1][:8]); got != "1 0" {
		t.Errorf("owner row should show gutter and value, got %q", got)
	}
}

func TestViewStatusBar(t *testing.T) {
	m := testModel(t, 4)
	lines := strings.Split(m.View(), "\n")
	status := lines[len(lines)-1]
	if !strings.Contains(status, "inventory") {
		t.Errorf("status should name the sheet, got %q", status)
	}
	if !strings.Contains(status, "tessera test") {
		t.Errorf("status should show the version, got %q", status)
	}
}

func TestViewRegistersHitRegions(t *testing.T) {
	m := testModel(t, 4)
	m.View()

	cases := []struct {
		name string
		x, y int
		kind mouse.TargetKind
	}{
		{"first cell", 4, 1, mouse.TargetCell},
		{"header", 9, 0, mouse.TargetColumnHeader},
		{"resize gutter", 7, 0, mouse.TargetResizeGutter},
		{"row gutter", 1, 2, mouse.TargetRowGutter},
		{"scrollbar", 59, 3, mouse.TargetScrollbar},
	}
	for _, tc := range cases {
		r := m.mouse.HitMap.Test(tc.x, tc.y)
		if r == nil {
			t.Errorf("%s: no region at (%d,%d)", tc.name, tc.x, tc.y)
			continue
		}
		if r.Target.Kind != tc.kind {
			t.Errorf("%s: kind = %v, want %v", tc.name, r.Target.Kind, tc.kind)
		}
	}
}

func TestViewFillHandleRegion(t *testing.T) {
	m := testModel(t, 4)
	m.View()
	m = press(t, m, 4, 1)
	m = motion(t, m, 10, 2)
	m = release(t, m, 10, 2)
	m.View()

	// Bottom-right of the selection is (1,1): the Name column at y=2; the
	// handle overlays the separator at its right edge.
	r := m.mouse.HitMap.Test(16, 2)
	if r == nil || r.Target.Kind != mouse.TargetFillHandle {
		t.Fatalf("expected fill handle at (16,2), got %+v", r)
	}
	if r.Target.Cell.Row != 1 || r.Target.Cell.Col != 1 {
		t.Errorf("handle should anchor on (1,1), got %v", r.Target.Cell)
	}
}

func TestFillDragMergesStrip(t *testing.T) {
	m := testModel(t, 4)
	m.View()
	m = press(t, m, 4, 1) // (0,0)
	m = release(t, m, 4, 1)
	m.View()

	m = press(t, m, 7, 1)  // fill handle of the single-cell selection
	m = motion(t, m, 4, 3) // hover (2,0)
	m = release(t, m, 4, 3)

	active, ok := m.Selection().ActiveRegion()
	if !ok {
		t.Fatal("expected a region after the fill drag")
	}
	if active.RowRange().End != 2 || active.RowRange().Start != 0 {
		t.Errorf("fill should extend rows 0-2, got %v", active)
	}
}

func TestViewRowCacheReuse(t *testing.T) {
	m := testModel(t, 4)
	m.View()
	first, ok := m.rowCache[1]
	if !ok {
		t.Fatal("row 1 should be cached after a render")
	}
	m.View()
	if got := m.rowCache[1]; got.key != first.key || got.line != first.line {
		t.Error("unchanged row should hit the cache")
	}

	if err := m.sheet.SetValue(1, 1, "changed"); err != nil {
		t.Fatal(err)
	}
	m.View()
	if got := m.rowCache[1]; got.line == first.line {
		t.Error("edited row should re-render")
	}
	if !strings.Contains(m.rowCache[1].line, "changed") {
		t.Error("re-rendered line should carry the new value")
	}
}
