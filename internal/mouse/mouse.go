// Package mouse maps terminal mouse events onto the grid's hit regions and
// tracks the stateful parts of pointer input: double-clicks and drags.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/tessera/internal/grid"
)

// TargetKind identifies what part of the grid a hit region represents.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetColumnHeader
	TargetRowGutter
	TargetFillHandle
	TargetResizeGutter
	TargetScrollbar
)

// Target is the typed payload attached to a hit region.
type Target struct {
	Kind TargetKind
	Cell grid.Coordinate // TargetCell, TargetFillHandle, TargetRowGutter
	Col  int             // TargetColumnHeader, TargetResizeGutter
}

// CellTarget builds the payload for a data cell.
func CellTarget(c grid.Coordinate) Target { return Target{Kind: TargetCell, Cell: c} }

// HeaderTarget builds the payload for a column-header cell.
func HeaderTarget(col int) Target {
	return Target{Kind: TargetColumnHeader, Cell: grid.HeaderCoord(col), Col: col}
}

// Rect is a rectangular screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangular hit region with its grid target.
type Region struct {
	ID     string
	Rect   Rect
	Target Target
}

// HitMap tracks the hit regions rebuilt on every render.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{regions: make([]Region, 0, 128)}
}

// Clear removes all regions; call before re-registering a frame.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add registers a region.
func (h *HitMap) Add(id string, rect Rect, target Target) {
	h.regions = append(h.regions, Region{ID: id, Rect: rect, Target: target})
}

// AddRect registers a region from individual coordinates.
func (h *HitMap) AddRect(id string, x, y, w, height int, target Target) {
	h.Add(id, Rect{X: x, Y: y, W: w, H: height}, target)
}

// Test returns the region containing the point, or nil. Later registrations
// win, so overlays register after the cells beneath them.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns a copy of the registered regions.
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// doubleClickWindow is the longest gap between two presses on the same
// region that still counts as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// Handler combines a HitMap with click and drag state.
type Handler struct {
	HitMap *HitMap

	lastClickTime   time.Time
	lastClickRegion string

	dragging       bool
	dragStartX     int
	dragStartY     int
	dragStartValue int
	dragRegion     string
	dragTarget     Target
}

func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// StartDrag begins tracking a drag anchored on a region. startValue carries
// whatever quantity the drag adjusts, such as a column width.
func (h *Handler) StartDrag(x, y int, region *Region, startValue int) {
	h.dragging = true
	h.dragStartX = x
	h.dragStartY = y
	h.dragStartValue = startValue
	h.dragRegion = ""
	h.dragTarget = Target{}
	if region != nil {
		h.dragRegion = region.ID
		h.dragTarget = region.Target
	}
}

func (h *Handler) IsDragging() bool { return h.dragging }

// DragTarget returns the target the drag started on.
func (h *Handler) DragTarget() Target { return h.dragTarget }

// DragDelta returns movement since the drag started.
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

func (h *Handler) DragStartValue() int { return h.dragStartValue }

func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
	h.dragTarget = Target{}
}

// ActionType classifies a processed mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionPress
	ActionDoubleClick
	ActionRightClick
	ActionRelease
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionHover
)

// Action is a processed mouse event: the raw position, the region under the
// pointer, modifier state, and drag or scroll deltas when applicable.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
	Shift  bool
	Ctrl   bool
	Delta  int
	DragDX int
	DragDY int
}

// Handle classifies a tea.MouseMsg against the current hit map. Presses on
// the same region within the double-click window upgrade to a double-click.
func (h *Handler) Handle(msg tea.MouseMsg) Action {
	act := Action{X: msg.X, Y: msg.Y, Shift: msg.Shift, Ctrl: msg.Ctrl}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			act.Region = h.HitMap.Test(msg.X, msg.Y)
			act.Type = ActionPress
			if act.Region != nil {
				now := time.Now()
				if act.Region.ID == h.lastClickRegion && now.Sub(h.lastClickTime) < doubleClickWindow {
					act.Type = ActionDoubleClick
					// Reset so a triple click does not double again.
					h.lastClickRegion = ""
					h.lastClickTime = time.Time{}
				} else {
					h.lastClickRegion = act.Region.ID
					h.lastClickTime = now
				}
			}
			return act

		case tea.MouseButtonRight:
			act.Region = h.HitMap.Test(msg.X, msg.Y)
			act.Type = ActionRightClick
			return act

		case tea.MouseButtonWheelUp:
			act.Region = h.HitMap.Test(msg.X, msg.Y)
			if msg.Shift {
				act.Type, act.Delta = ActionScrollLeft, -4
			} else {
				act.Type, act.Delta = ActionScrollUp, -3
			}
			return act

		case tea.MouseButtonWheelDown:
			act.Region = h.HitMap.Test(msg.X, msg.Y)
			if msg.Shift {
				act.Type, act.Delta = ActionScrollRight, 4
			} else {
				act.Type, act.Delta = ActionScrollDown, 3
			}
			return act

		case tea.MouseButtonWheelLeft:
			act.Region = h.HitMap.Test(msg.X, msg.Y)
			act.Type, act.Delta = ActionScrollLeft, -4
			return act

		case tea.MouseButtonWheelRight:
			act.Region = h.HitMap.Test(msg.X, msg.Y)
			act.Type, act.Delta = ActionScrollRight, 4
			return act
		}

	case tea.MouseActionRelease:
		act.Region = h.HitMap.Test(msg.X, msg.Y)
		act.Type = ActionRelease
		if h.dragging {
			h.EndDrag()
		}
		return act

	case tea.MouseActionMotion:
		act.Region = h.HitMap.Test(msg.X, msg.Y)
		if h.dragging {
			act.Type = ActionDrag
			act.DragDX, act.DragDY = h.DragDelta(msg.X, msg.Y)
			return act
		}
		act.Type = ActionHover
		return act
	}

	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}
