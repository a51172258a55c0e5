package mouse

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/tessera/internal/grid"
)

func TestHitMap_TopmostWins(t *testing.T) {
	h := NewHitMap()
	h.AddRect("cell:2:1", 10, 5, 8, 1, CellTarget(grid.Coord(2, 1)))
	h.AddRect("fill:2:1", 17, 5, 1, 1, Target{Kind: TargetFillHandle, Cell: grid.Coord(2, 1)})

	if got := h.Test(12, 5); got == nil || got.Target.Kind != TargetCell {
		t.Fatalf("Test(12,5) = %+v, want cell target", got)
	}
	if got := h.Test(17, 5); got == nil || got.Target.Kind != TargetFillHandle {
		t.Fatalf("Test(17,5) = %+v, want fill handle over cell", got)
	}
	if got := h.Test(0, 0); got != nil {
		t.Fatalf("Test(0,0) = %+v, want miss", got)
	}
}

func TestHitMap_Clear(t *testing.T) {
	h := NewHitMap()
	h.AddRect("header:0", 0, 0, 10, 1, HeaderTarget(0))
	h.Clear()
	if got := h.Test(1, 0); got != nil {
		t.Errorf("Test after clear = %+v, want miss", got)
	}
	if n := len(h.Regions()); n != 0 {
		t.Errorf("regions after clear = %d, want 0", n)
	}
}

func TestHeaderTarget(t *testing.T) {
	tgt := HeaderTarget(3)
	if tgt.Kind != TargetColumnHeader || tgt.Col != 3 {
		t.Fatalf("target = %+v", tgt)
	}
	if !tgt.Cell.ColumnHeader || tgt.Cell.Col != 3 {
		t.Errorf("header target cell = %v, want header(3)", tgt.Cell)
	}
}

func press(x, y int, btn tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: btn}
}

func TestHandler_DoubleClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("cell:1:1", 5, 3, 8, 1, CellTarget(grid.Coord(1, 1)))

	first := h.Handle(press(6, 3, tea.MouseButtonLeft))
	if first.Type != ActionPress {
		t.Fatalf("first press = %v, want press", first.Type)
	}
	second := h.Handle(press(7, 3, tea.MouseButtonLeft))
	if second.Type != ActionDoubleClick {
		t.Fatalf("second press = %v, want double-click", second.Type)
	}
	// The double-click consumed the streak; a third press starts over.
	third := h.Handle(press(6, 3, tea.MouseButtonLeft))
	if third.Type != ActionPress {
		t.Fatalf("third press = %v, want press", third.Type)
	}
}

func TestHandler_DoubleClickWindowExpires(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("cell:1:1", 5, 3, 8, 1, CellTarget(grid.Coord(1, 1)))

	h.Handle(press(6, 3, tea.MouseButtonLeft))
	h.lastClickTime = time.Now().Add(-2 * doubleClickWindow)
	if got := h.Handle(press(6, 3, tea.MouseButtonLeft)); got.Type != ActionPress {
		t.Fatalf("press after window = %v, want plain press", got.Type)
	}
}

func TestHandler_DragLifecycle(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("resize:1", 14, 0, 1, 1, Target{Kind: TargetResizeGutter, Col: 1})

	reg := h.HitMap.Test(14, 0)
	h.StartDrag(14, 0, reg, 10)
	if !h.IsDragging() {
		t.Fatalf("drag not tracked")
	}
	if got := h.DragTarget(); got.Kind != TargetResizeGutter || got.Col != 1 {
		t.Fatalf("drag target = %+v", got)
	}

	move := h.Handle(tea.MouseMsg{X: 20, Y: 2, Action: tea.MouseActionMotion})
	if move.Type != ActionDrag || move.DragDX != 6 || move.DragDY != 2 {
		t.Fatalf("motion = %+v, want drag with delta (6,2)", move)
	}
	if got := h.DragStartValue(); got != 10 {
		t.Errorf("start value = %d, want 10", got)
	}

	rel := h.Handle(tea.MouseMsg{X: 20, Y: 2, Action: tea.MouseActionRelease})
	if rel.Type != ActionRelease {
		t.Fatalf("release = %v, want release", rel.Type)
	}
	if h.IsDragging() {
		t.Errorf("drag survives release")
	}
}

func TestHandler_Classification(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("cell:0:0", 0, 0, 10, 1, CellTarget(grid.Coord(0, 0)))

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want ActionType
	}{
		{"right click", press(1, 0, tea.MouseButtonRight), ActionRightClick},
		{"wheel up", press(1, 0, tea.MouseButtonWheelUp), ActionScrollUp},
		{"wheel down", press(1, 0, tea.MouseButtonWheelDown), ActionScrollDown},
		{"shift wheel up", tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Shift: true}, ActionScrollLeft},
		{"shift wheel down", tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, Shift: true}, ActionScrollRight},
		{"hover", tea.MouseMsg{X: 1, Action: tea.MouseActionMotion}, ActionHover},
	}
	for _, tt := range tests {
		if got := h.Handle(tt.msg); got.Type != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got.Type, tt.want)
		}
	}

	ctrl := h.Handle(tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true})
	if !ctrl.Ctrl || ctrl.Type != ActionPress {
		t.Errorf("ctrl press = %+v, want press with ctrl flag", ctrl)
	}
}
