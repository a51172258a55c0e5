package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/wilbur182/tessera/internal/grid"
	"github.com/wilbur182/tessera/internal/grid/selection"
	"github.com/wilbur182/tessera/internal/mouse"
	"github.com/wilbur182/tessera/internal/styles"
	"github.com/wilbur182/tessera/internal/ui"
)

// View renders the visible slice of the grid and rebuilds the mouse hit map
// to match what is on screen.
func (m Model) View() string {
	if !m.ready {
		return ""
	}

	m.mouse.HitMap.Clear()

	rows := m.visibleRows()
	lines := make([]string, 0, rows+2)

	sb := ui.ScrollbarLines(ui.ScrollbarParams{
		TotalItems:   m.sheet.RowCount(),
		ScrollOffset: m.scrollRow,
		VisibleItems: rows,
		TrackHeight:  rows,
	})
	if rows > 0 {
		m.mouse.HitMap.AddRect("scrollbar", m.width-1, m.headerLines(), 1, rows,
			mouse.Target{Kind: mouse.TargetScrollbar})
	}

	if m.headerLines() > 0 {
		lines = append(lines, m.renderHeader()+" ")
	}

	for i := 0; i < rows; i++ {
		row := m.scrollRow + i
		y := m.headerLines() + i
		var line string
		if row < m.sheet.RowCount() {
			line = m.renderRow(row, y)
		} else {
			line = strings.Repeat(" ", m.width-1)
		}
		lines = append(lines, line+sb[i])
	}

	if m.statusLines() > 0 {
		lines = append(lines, m.renderStatus())
	}

	return strings.Join(lines, "\n")
}

func (m Model) headerLines() int {
	if m.sheet.ColumnHeaderHidden() {
		return 0
	}
	return 1
}

func (m Model) statusLines() int {
	if m.cfg.UI.ShowStatus {
		return 1
	}
	return 0
}

// visibleRows is the number of data rows the viewport can show.
func (m Model) visibleRows() int {
	rows := m.height - m.headerLines() - m.statusLines()
	if rows < 0 {
		rows = 0
	}
	return rows
}

// gutterWidth is the width of the row-number gutter, separator included.
func (m Model) gutterWidth() int {
	if !m.cfg.Grid.RowGutter {
		return 0
	}
	digits := len(strconv.Itoa(m.sheet.RowCount()))
	if digits < 2 {
		digits = 2
	}
	return digits + 1
}

// gridWidth is the horizontal space available to cells, after the gutter and
// the scrollbar column.
func (m Model) gridWidth() int {
	w := m.width - m.gutterWidth() - 1
	if w < 0 {
		w = 0
	}
	return w
}

// visibleCol describes one column slot laid out for the current frame.
type visibleCol struct {
	col   int
	x     int
	width int // clipped to the viewport edge
}

// layoutCols walks columns from the horizontal scroll offset and assigns
// screen positions until the viewport runs out.
func (m Model) layoutCols() []visibleCol {
	out := make([]visibleCol, 0, m.sheet.ColCount())
	x := m.gutterWidth()
	limit := m.gutterWidth() + m.gridWidth()
	for c := m.scrollCol; c < m.sheet.ColCount(); c++ {
		col := m.sheet.Column(c)
		if col.Hidden {
			continue
		}
		remain := limit - x
		if remain < 2 {
			break
		}
		w := col.Width
		if w > remain-1 {
			w = remain - 1
		}
		out = append(out, visibleCol{col: c, x: x, width: w})
		x += w + 1
	}
	return out
}

// renderHeader draws the sticky column-header row and registers its hit
// regions, including the one-cell resize gutters on the separators.
func (m Model) renderHeader() string {
	var b strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		b.WriteString(styles.Header.Render(strings.Repeat(" ", gw)))
	}

	used := m.gutterWidth()
	for _, vc := range m.layoutCols() {
		col := m.sheet.Column(vc.col)
		hc := grid.HeaderCoord(vc.col)

		style := styles.Header
		if m.headerSelected(vc.col) {
			style = styles.HeaderSelected
		}
		if m.sel.Primary.Equal(hc) {
			style = styles.HeaderSelected.Underline(true)
		}

		b.WriteString(style.Render(padCell(col.Title, vc.width)))
		b.WriteString(styles.Header.Render(" "))

		m.mouse.HitMap.AddRect(fmt.Sprintf("header-%d", vc.col),
			vc.x, 0, vc.width, 1, mouse.HeaderTarget(vc.col))
		m.mouse.HitMap.AddRect(fmt.Sprintf("resize-%d", vc.col),
			vc.x+vc.width, 0, 1, 1,
			mouse.Target{Kind: mouse.TargetResizeGutter, Col: vc.col})

		used = vc.x + vc.width + 1
	}

	if pad := m.width - 1 - used; pad > 0 {
		b.WriteString(styles.Header.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

// renderRow draws one data row. Hit regions are registered every frame; the
// rendered string itself is served from the row cache when nothing feeding
// it changed.
func (m Model) renderRow(row, y int) string {
	cols := m.layoutCols()
	m.registerRowRegions(row, y, cols)

	editing := m.sel.Mode == selection.ModeEdit && m.sel.Primary.Row == row
	key := m.rowCacheKey(row, cols)
	if !editing {
		if e, ok := m.rowCache[row]; ok && e.key == key {
			return e.line
		}
	}

	line := m.renderRowCells(row, cols)
	if !editing {
		m.rowCache[row] = rowCacheEntry{key: key, line: line}
	}
	return line
}

// registerRowRegions adds the gutter, cell, and fill-handle hit regions for
// one rendered row.
func (m Model) registerRowRegions(row, y int, cols []visibleCol) {
	if gw := m.gutterWidth(); gw > 0 {
		m.mouse.HitMap.AddRect(fmt.Sprintf("gutter-%d", row), 0, y, gw, 1,
			mouse.Target{Kind: mouse.TargetRowGutter,
				Cell: grid.RowHeaderCoord(row, m.sheet.MinSelectableCol())})
	}
	for _, vc := range cols {
		m.mouse.HitMap.AddRect(fmt.Sprintf("cell-%d-%d", row, vc.col),
			vc.x, y, vc.width, 1, mouse.CellTarget(grid.Coord(row, vc.col)))
	}

	// The fill handle overlays the separator right of the active region's
	// bottom-right cell, so it registers after the cells.
	if br, ok := m.fillHandleCell(); ok && br.Row == row {
		for _, vc := range cols {
			if vc.col == br.Col {
				m.mouse.HitMap.AddRect("fill-handle", vc.x+vc.width, y, 1, 1,
					mouse.Target{Kind: mouse.TargetFillHandle, Cell: br})
			}
		}
	}
}

// fillHandleCell returns the cell whose corner hosts the fill handle.
func (m Model) fillHandleCell() (grid.Coordinate, bool) {
	if m.sel.Mode != selection.ModeSelect {
		return grid.Coordinate{}, false
	}
	active, ok := m.sel.ActiveRegion()
	if !ok || active.Primary.ColumnHeader {
		return grid.Coordinate{}, false
	}
	return grid.Coord(active.RowRange().End, active.ColRange().End), true
}

func (m Model) renderRowCells(row int, cols []visibleCol) string {
	var b strings.Builder

	if gw := m.gutterWidth(); gw > 0 {
		num := strconv.Itoa(row + 1)
		style := styles.Gutter
		if m.rowSelected(row) {
			style = styles.GutterSelected
		}
		b.WriteString(style.Render(fmt.Sprintf("%*s ", gw-1, num)))
	}

	handle, hasHandle := m.fillHandleCell()
	used := m.gutterWidth()
	for _, vc := range cols {
		c := grid.Coord(row, vc.col)
		owner := m.sheet.MappedCell(c)

		val := ""
		if owner.Row == row {
			val = m.sheet.Value(row, vc.col)
		}

		if m.sel.Mode == selection.ModeEdit && m.sel.Primary.Equal(owner) && owner.Row == row {
			b.WriteString(styles.Editor.Render(padCell(m.editor.View(), vc.width)))
		} else {
			b.WriteString(m.cellStyle(c).Render(padCell(val, vc.width)))
		}

		if hasHandle && handle.Row == row && handle.Col == vc.col {
			b.WriteString(lipgloss.NewStyle().Foreground(styles.Accent).Render("┛"))
		} else {
			b.WriteString(" ")
		}
		used = vc.x + vc.width + 1
	}

	if pad := m.width - 1 - used; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

// cellStyle resolves the style precedence for one cell: pending fill strip,
// primary cell, selected, plain.
func (m Model) cellStyle(c grid.Coordinate) lipgloss.Style {
	if m.sel.Fill != nil && m.sel.Fill.Contains(c) {
		return styles.CellFillPreview
	}
	owner := m.sheet.MappedCell(c)
	if m.sel.Mode != selection.ModeNone && m.sel.Primary.Equal(owner) {
		return styles.CellPrimary
	}
	for _, r := range m.sel.Regions {
		if r.Contains(c) {
			return styles.CellSelected
		}
	}
	return styles.Cell
}

// headerSelected reports whether a selection region covers the header cell.
func (m Model) headerSelected(col int) bool {
	for _, r := range m.sel.Regions {
		if r.Contains(grid.HeaderCoord(col)) {
			return true
		}
	}
	return false
}

// rowSelected reports whether any data region touches the row.
func (m Model) rowSelected(row int) bool {
	for _, r := range m.sel.Regions {
		if !r.Primary.ColumnHeader && r.RowRange().Contains(row) {
			return true
		}
	}
	return false
}

// rowCacheKey hashes everything that feeds one row's rendered line: values,
// column layout, and the selection styling that touches the row.
func (m Model) rowCacheKey(row int, cols []visibleCol) uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d|%d|%d|", row, m.width, m.scrollCol)
	for _, vc := range cols {
		c := grid.Coord(row, vc.col)
		owner := m.sheet.MappedCell(c)
		fmt.Fprintf(d, "%d:%d:%d:", vc.col, vc.width, owner.Row)
		if owner.Row == row {
			d.WriteString(m.sheet.Value(row, vc.col))
		}
		d.WriteString("\x00")
	}
	fmt.Fprintf(d, "|%d|%v|%v", m.sel.Mode, m.rowSelected(row), m.sel.Primary)
	for _, r := range m.sel.Regions {
		if r.RowRange().Contains(row) {
			fmt.Fprintf(d, "|%s", r)
		}
	}
	if m.sel.Fill != nil && m.sel.Fill.RowRange().Contains(row) {
		fmt.Fprintf(d, "|fill:%s", *m.sel.Fill)
	}
	if h, ok := m.fillHandleCell(); ok && h.Row == row {
		fmt.Fprintf(d, "|handle:%d", h.Col)
	}
	fmt.Fprintf(d, "|%s", styles.GetCurrentThemeName())
	return d.Sum64()
}

// renderStatus draws the bottom status bar: sheet name, mode, cursor, and
// any pending toast.
func (m Model) renderStatus() string {
	left := fmt.Sprintf(" %s  %s", m.sheet.Name, m.sel.Mode)
	if p := m.sel.Primary; p.Row >= 0 || p.ColumnHeader {
		left += fmt.Sprintf("  %s", p)
	}
	if active, ok := m.sel.ActiveRegion(); ok && !active.IsSingleCell() {
		left += fmt.Sprintf("  %dx%d", active.RowRange().Len(), active.ColRange().Len())
	}

	style := styles.StatusBar
	if m.statusMsg != "" {
		left = " " + m.statusMsg
		if m.statusIsError {
			style = styles.StatusError
		}
	}

	right := "tessera " + m.currentVersion + " "
	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		left = ansi.Truncate(left, m.width-runewidth.StringWidth(right)-1, "…")
		gap = m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
		if gap < 0 {
			gap = 0
		}
	}
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

// padCell truncates or pads a value to exactly w screen cells. Width is
// measured ANSI-aware since the editor view carries escape sequences.
func padCell(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if gap := w - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
