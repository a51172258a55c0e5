package grid

import (
	"fmt"
	"iter"
)

// Range is an inclusive index interval, always normalized Start <= End.
type Range struct {
	Start, End int
}

// Contains reports whether i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

// Len returns the number of indices covered.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Intersects reports whether two ranges share any index.
func (r Range) Intersects(other Range) bool {
	return r.Start <= other.End && other.Start <= r.End
}

func orderedRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Region is a rectangle of coordinates defined by an anchor (Primary) and a
// free corner (Secondary). The row/column ranges are order-independent: the
// anchor may sit at any corner. Region is a value type; every operation
// returns a new value.
type Region struct {
	Primary   Coordinate
	Secondary Coordinate
}

// NewRegion returns the single-cell region anchored at c.
func NewRegion(c Coordinate) Region {
	return Region{Primary: c, Secondary: c}
}

// Span returns the region between an anchor and a free corner.
func Span(primary, secondary Coordinate) Region {
	return Region{Primary: primary, Secondary: secondary}
}

// RowRange returns the absolute row interval covered by the region.
func (r Region) RowRange() Range {
	return orderedRange(r.Primary.Row, r.Secondary.Row)
}

// ColRange returns the absolute column interval covered by the region.
func (r Region) ColRange() Range {
	return orderedRange(r.Primary.Col, r.Secondary.Col)
}

// IsSingleCell reports whether the region covers exactly one cell.
func (r Region) IsSingleCell() bool {
	return r.Primary.Row == r.Secondary.Row && r.Primary.Col == r.Secondary.Col
}

// Contains reports whether the coordinate falls inside the region.
func (r Region) Contains(c Coordinate) bool {
	return r.RowRange().Contains(c.Row) && r.ColRange().Contains(c.Col)
}

// Overlaps reports whether two regions share any cell.
func (r Region) Overlaps(other Region) bool {
	return r.RowRange().Intersects(other.RowRange()) && r.ColRange().Intersects(other.ColRange())
}

// Equal reports whether two regions cover the same rectangle, regardless of
// which corner anchors each.
func (r Region) Equal(other Region) bool {
	return r.RowRange() == other.RowRange() && r.ColRange() == other.ColRange()
}

// Union returns the bounding rectangle of two regions, anchored at the
// top-left corner.
func (r Region) Union(other Region) Region {
	rows := r.RowRange()
	cols := r.ColRange()
	orows := other.RowRange()
	ocols := other.ColRange()
	if orows.Start < rows.Start {
		rows.Start = orows.Start
	}
	if orows.End > rows.End {
		rows.End = orows.End
	}
	if ocols.Start < cols.Start {
		cols.Start = ocols.Start
	}
	if ocols.End > cols.End {
		cols.End = ocols.End
	}
	return Region{
		Primary:   Coord(rows.Start, cols.Start),
		Secondary: Coord(rows.End, cols.End),
	}
}

// Cells enumerates every coordinate in the region in row-major order.
func (r Region) Cells() iter.Seq[Coordinate] {
	rows := r.RowRange()
	cols := r.ColRange()
	return func(yield func(Coordinate) bool) {
		for row := rows.Start; row <= rows.End; row++ {
			for col := cols.Start; col <= cols.End; col++ {
				if !yield(Coord(row, col)) {
					return
				}
			}
		}
	}
}

// CellPosition describes where a cell sits relative to a region's edges.
type CellPosition struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
	In     bool
}

// CellPosition classifies the coordinate against the region's edges. Bottom
// is also set when the cell's row-span ends on the region's last row, so a
// spanning cell drawn above the boundary still renders a bottom edge.
func (r Region) CellPosition(c Coordinate, layout Layout) CellPosition {
	var p CellPosition
	if !r.Contains(c) {
		return p
	}
	rows := r.RowRange()
	cols := r.ColRange()
	p.In = true
	p.Left = c.Col == cols.Start
	p.Right = c.Col == cols.End
	p.Top = c.Row == rows.Start
	if c.Row == rows.End {
		p.Bottom = true
	} else {
		owner := layout.MappedCell(c)
		if owner.Row+RowSpanOf(layout, owner)-1 == rows.End {
			p.Bottom = true
		}
	}
	return p
}

// FillTarget returns the strip adjacent to the region that a fill operation
// should project into, given the coordinate currently under the pointer.
// Hovering below the region yields the rows between the region's bottom and
// the pointer; hovering above is symmetric. Hovering inside the row range
// returns false: there is no fill direction.
func (r Region) FillTarget(hover Coordinate) (Region, bool) {
	rows := r.RowRange()
	cols := r.ColRange()
	switch {
	case hover.Row > rows.End:
		return Region{
			Primary:   Coord(rows.End+1, cols.Start),
			Secondary: Coord(hover.Row, cols.End),
		}, true
	case hover.Row < rows.Start:
		return Region{
			Primary:   Coord(hover.Row, cols.Start),
			Secondary: Coord(rows.Start-1, cols.End),
		}, true
	default:
		return Region{}, false
	}
}

// Rectangularize adjusts the region's row boundaries until no row-spanning
// cell is bisected by the top or bottom edge. With includePartial the moving
// edge grows to swallow each offending span (the default when a selection is
// expanding); without it the edge retracts to exclude the span (used when
// shrinking). If retraction would carry an edge across the anchor row, the
// edge is clamped to the anchor and the whole procedure re-runs in growing
// mode, which resolves spans newly exposed on the opposite side. Column
// bounds never change.
//
// Each pass moves an edge monotonically within [0, MaxRow], so the fixed
// point is reached in at most one sweep per row.
func (r Region) Rectangularize(layout Layout, includePartial bool) Region {
	rows := r.RowRange()
	cols := r.ColRange()
	top := rows.Start
	bottom := rows.End
	anchorRow := r.Primary.Row
	crossed := false

	// Header-only regions have no spans to resolve.
	if bottom < 0 {
		return r
	}
	if top < 0 {
		top = 0
	}

	// Bottom edge fixed point. A crossed anchor ends the sweep: the edge can
	// retract no further and the growing re-run below settles the rest.
	for adjusted := true; adjusted && !crossed; {
		adjusted = false
		for col := cols.Start; col <= cols.End; col++ {
			owner := layout.MappedCell(Coord(bottom, col))
			last := owner.Row + RowSpanOf(layout, owner) - 1
			if last <= bottom {
				continue
			}
			if includePartial {
				bottom = last
			} else {
				bottom = owner.Row - 1
				if bottom < anchorRow {
					bottom = anchorRow
					crossed = true
				}
			}
			adjusted = true
			break
		}
	}

	// Top edge fixed point.
	for adjusted := true; adjusted && !crossed; {
		adjusted = false
		for col := cols.Start; col <= cols.End; col++ {
			owner := layout.MappedCell(Coord(top, col))
			if owner.Row >= top {
				continue
			}
			if includePartial {
				top = owner.Row
			} else {
				top = owner.Row + RowSpanOf(layout, owner)
				if top > anchorRow {
					top = anchorRow
					crossed = true
				}
			}
			adjusted = true
			break
		}
	}

	out := r.withRowBounds(top, bottom)
	if crossed {
		// Clamping an edge to the anchor can leave a span bisected on the
		// other side; a growing pass settles it.
		return out.Rectangularize(layout, true)
	}
	return out
}

// withRowBounds rewrites the corner rows so RowRange() == [top, bottom],
// keeping each corner on the side it already occupied.
func (r Region) withRowBounds(top, bottom int) Region {
	out := r
	if r.Primary.Row <= r.Secondary.Row {
		out.Primary.Row = top
		out.Secondary.Row = bottom
	} else {
		out.Primary.Row = bottom
		out.Secondary.Row = top
	}
	return out
}

// RowSpanOf validates the layout's row-span contract. A span of zero or less
// is a data-contract breach from the host and fails fast.
func RowSpanOf(layout Layout, c Coordinate) int {
	span := layout.RowSpan(c)
	if span <= 0 {
		panic(fmt.Sprintf("grid: row span %d for cell %s", span, c))
	}
	return span
}

// String returns a compact representation for logs and test failures.
func (r Region) String() string {
	rows := r.RowRange()
	cols := r.ColRange()
	return fmt.Sprintf("{r%d-%d c%d-%d}", rows.Start, rows.End, cols.Start, cols.End)
}
