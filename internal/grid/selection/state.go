package selection

import "github.com/wilbur182/tessera/internal/grid"

// Mode is the interaction phase of the selection state machine.
type Mode uint8

const (
	// ModeNone means nothing is selected yet.
	ModeNone Mode = iota

	// ModeSelect is the resting state with a committed selection.
	ModeSelect

	// ModeSelecting is the transient state while a drag is in progress.
	ModeSelecting

	// ModeEdit means the primary cell hosts an active editor.
	ModeEdit

	// ModeFilling is the transient state while the fill handle is dragged.
	ModeFilling
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSelect:
		return "select"
	case ModeSelecting:
		return "selecting"
	case ModeEdit:
		return "edit"
	case ModeFilling:
		return "filling"
	default:
		return "unknown"
	}
}

// State is the full selection state of one grid instance. It is replaced
// wholesale on every accepted transition and never partially mutated.
type State struct {
	Mode Mode

	// Primary is the active cell: it drives editing and directional
	// navigation.
	Primary grid.Coordinate

	// Regions holds the committed selection rectangles. Insertion order is
	// z-order for overlap checks; more than one region only exists in
	// multi-cell ctrl-click selections. Empty only when Mode is ModeNone.
	Regions []grid.Region

	// Fill is the pending fill strip; non-nil only in ModeFilling.
	Fill *grid.Region
}

// DefaultState is the no-selection state a grid mounts with.
func DefaultState() State {
	return State{
		Mode:    ModeNone,
		Primary: grid.Coord(-1, -1),
	}
}

// ActiveRegion returns the live region (the most recently started one).
func (s State) ActiveRegion() (grid.Region, bool) {
	if len(s.Regions) == 0 {
		return grid.Region{}, false
	}
	return s.Regions[len(s.Regions)-1], true
}

// withActiveRegion returns a copy of s whose live region is replaced.
func (s State) withActiveRegion(r grid.Region) State {
	out := s
	out.Regions = append(append([]grid.Region(nil), s.Regions[:len(s.Regions)-1]...), r)
	return out
}

// single returns the state selecting exactly one cell in ModeSelect.
func single(c grid.Coordinate) State {
	return State{
		Mode:    ModeSelect,
		Primary: c,
		Regions: []grid.Region{grid.NewRegion(c)},
	}
}
