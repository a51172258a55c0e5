package sheet

// Column describes one grid column: identity, presentation width, and the
// per-column flags the selection layer consults.
type Column struct {
	Key        string
	Title      string
	Width      int
	MinWidth   int
	Editable   bool
	Selectable bool
	Hidden     bool
}

// DefaultMinWidth is applied when a column declares no minimum of its own.
const DefaultMinWidth = 3

func (c Column) minWidth() int {
	if c.MinWidth > 0 {
		return c.MinWidth
	}
	return DefaultMinWidth
}
