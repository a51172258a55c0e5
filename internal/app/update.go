package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/tessera/internal/config"
	"github.com/wilbur182/tessera/internal/grid"
	"github.com/wilbur182/tessera/internal/grid/selection"
	"github.com/wilbur182/tessera/internal/keymap"
	"github.com/wilbur182/tessera/internal/mouse"
)

// Update routes terminal events into selection transitions and sheet edits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m = m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.FocusMsg:
		if next, ok := m.manager.HandleFocus(m.sel); ok {
			m = m.commit(next)
		}
		return m, nil

	case tickMsg:
		m = m.clearToast()
		return m, tickCmd()

	case copySelectionMsg:
		return m.copySelection()

	case saveSheetMsg:
		if m.store == nil {
			return m.showError("no store attached, nothing to save"), nil
		}
		return m, saveSheet(m.store, m.sheet)

	case sheetSavedMsg:
		if msg.err != nil {
			return m.showError(fmt.Sprintf("save failed: %v", msg.err)), nil
		}
		return m.showToast("sheet saved"), nil

	case jumpMsg:
		h := selection.Manager.HandleCtrlHome
		if msg.toEnd {
			h = selection.Manager.HandleCtrlEnd
		}
		if next, ok := h(m.manager, m.sel); ok {
			m = m.commit(next)
		}
		return m, nil

	case configReloadedMsg:
		cfg, err := config.LoadFrom(m.cfgPath)
		if err != nil {
			m = m.showError(fmt.Sprintf("config reload: %v", err))
		} else {
			m = m.applyConfig(cfg)
			m = m.showToast("config reloaded")
		}
		return m, watchConfig(m.watcher)
	}

	return m, nil
}

// updateKey dispatches a key event: the editor first when one is open, then
// registered commands, then the named grid transitions.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sel.Mode == selection.ModeEdit {
		return m.updateEditKey(msg)
	}

	if cmd := m.keymap.Handle(msg, m.activeContext); cmd != nil {
		return m, cmd
	}
	if m.keymap.HasPending() {
		return m, nil
	}

	key := keymap.KeyString(msg)
	if h, ok := gridKeyHandlers[key]; ok {
		next, changed := h(m.manager, m.sel)
		if !changed && m.sel.Mode == selection.ModeNone {
			// First grid key with nothing selected focuses the grid.
			next, changed = m.manager.HandleFocus(m.sel)
		}
		if changed {
			m = m.commit(next)
		}
		return m, nil
	}

	// A plain printable character begins editing, replacing the cell's
	// value with the typed character.
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		if next, ok := m.manager.HandleKeypress(m.sel); ok {
			m = m.commit(next)
			m = m.openEditor(string(msg.Runes))
		}
		return m, nil
	}
	if msg.Type == tea.KeySpace {
		if next, ok := m.manager.HandleKeypress(m.sel); ok {
			m = m.commit(next)
			m = m.openEditor(" ")
		}
		return m, nil
	}

	return m, nil
}

// updateEditKey runs the in-cell editor. Enter and Tab commit the value and
// then run the matching navigation transition; Esc discards.
func (m Model) updateEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keymap.KeyString(msg) {
	case "esc":
		if next, ok := m.manager.HandleCancel(m.sel); ok {
			m = m.commit(next)
		}
		return m, nil
	case "enter":
		m = m.commitCellValue()
		if next, ok := m.manager.HandleEnter(m.sel); ok {
			m = m.commit(next)
		}
		return m, nil
	case "shift+enter":
		m = m.commitCellValue()
		if next, ok := m.manager.HandleShiftEnter(m.sel); ok {
			m = m.commit(next)
		}
		return m, nil
	case "tab":
		m = m.commitCellValue()
		if next, ok := m.manager.HandleTab(m.sel); ok {
			m = m.commit(next)
		}
		return m, nil
	case "shift+tab":
		m = m.commitCellValue()
		if next, ok := m.manager.HandleShiftTab(m.sel); ok {
			m = m.commit(next)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// updateMouse classifies a pointer event against the hit map and drives the
// matching selection transition, drag, or scroll.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	act := m.mouse.Handle(msg)

	switch act.Type {
	case mouse.ActionPress:
		return m.mousePress(act), nil

	case mouse.ActionDoubleClick:
		if act.Region != nil && act.Region.Target.Kind == mouse.TargetCell {
			if next, ok := m.manager.HandleCellMouseDown(m.sel, act.Region.Target.Cell); ok {
				m = m.commit(next)
			}
			if next, ok := m.manager.HandleCellMouseUp(m.sel, true); ok {
				m = m.commit(next)
			}
			return m, nil
		}
		return m.mousePress(act), nil

	case mouse.ActionRightClick:
		if act.Region != nil && act.Region.Target.Kind == mouse.TargetCell {
			if next, ok := m.manager.HandleRightClick(m.sel, act.Region.Target.Cell); ok {
				m = m.commit(next)
			}
		}
		return m, nil

	case mouse.ActionDrag:
		return m.mouseDrag(act), nil

	case mouse.ActionRelease:
		return m.mouseRelease(act), nil

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		m.scrollRow += act.Delta
		return m.clampScroll(), nil

	case mouse.ActionScrollLeft:
		m.scrollCol--
		return m.clampScroll(), nil

	case mouse.ActionScrollRight:
		m.scrollCol++
		return m.clampScroll(), nil
	}

	return m, nil
}

// mousePress starts analysis of a left press: selection mouse-down on cells
// and headers, drag bookkeeping for fill, resize, and reorder targets.
func (m Model) mousePress(act mouse.Action) Model {
	if act.Region == nil {
		return m
	}
	t := act.Region.Target

	switch t.Kind {
	case mouse.TargetCell, mouse.TargetRowGutter:
		var next selection.State
		var ok bool
		switch {
		case act.Shift:
			next, ok = m.manager.HandleShiftCellMouseDown(m.sel, t.Cell)
		case act.Ctrl:
			next, ok = m.manager.HandleCtrlCellMouseDown(m.sel, t.Cell)
		default:
			next, ok = m.manager.HandleCellMouseDown(m.sel, t.Cell)
		}
		if ok {
			m = m.commit(next)
		}
		m.mouse.StartDrag(act.X, act.Y, act.Region, 0)
		m.dragKind = t.Kind
		return m

	case mouse.TargetColumnHeader:
		if next, ok := m.manager.HandleCellMouseDown(m.sel, t.Cell); ok {
			m = m.commit(next)
		}
		m.mouse.StartDrag(act.X, act.Y, act.Region, 0)
		m.dragKind = mouse.TargetColumnHeader
		m.dragCol = t.Col
		m.hoverCol = t.Col
		return m

	case mouse.TargetFillHandle:
		if next, ok := m.manager.HandleFillMouseDown(m.sel, t.Cell); ok {
			m = m.commit(next)
		}
		m.mouse.StartDrag(act.X, act.Y, act.Region, 0)
		m.dragKind = mouse.TargetFillHandle
		return m

	case mouse.TargetResizeGutter:
		m.mouse.StartDrag(act.X, act.Y, act.Region, m.sheet.Column(t.Col).Width)
		m.dragKind = mouse.TargetResizeGutter
		m.dragCol = t.Col
		return m

	case mouse.TargetScrollbar:
		return m.scrollTo(act.Y)
	}

	return m
}

// mouseDrag advances an in-progress drag: selection extension, fill
// projection, column resize, or reorder hover tracking.
func (m Model) mouseDrag(act mouse.Action) Model {
	switch m.dragKind {
	case mouse.TargetCell, mouse.TargetRowGutter, mouse.TargetFillHandle:
		if act.Region == nil {
			return m
		}
		t := act.Region.Target
		if t.Kind != mouse.TargetCell && t.Kind != mouse.TargetRowGutter && t.Kind != mouse.TargetFillHandle {
			return m
		}
		if next, ok := m.manager.HandleCellMouseEnter(m.sel, t.Cell); ok {
			m = m.commit(next)
		}
		return m

	case mouse.TargetResizeGutter:
		want := m.mouse.DragStartValue() + act.DragDX
		cur := m.sheet.Column(m.dragCol).Width
		if want != cur {
			if err := m.sheet.ResizeColumn(m.dragCol, want-cur); err == nil {
				m = m.clampScroll()
			}
		}
		return m

	case mouse.TargetColumnHeader:
		if act.Region != nil && act.Region.Target.Kind == mouse.TargetColumnHeader {
			m.hoverCol = act.Region.Target.Col
		}
		return m
	}

	return m
}

// mouseRelease finishes whatever the press started.
func (m Model) mouseRelease(act mouse.Action) Model {
	kind := m.dragKind
	m.dragKind = mouse.TargetNone

	switch kind {
	case mouse.TargetFillHandle:
		if next, ok := m.manager.HandleFillMouseUp(m.sel); ok {
			m = m.commit(next)
		}

	case mouse.TargetCell, mouse.TargetRowGutter:
		if next, ok := m.manager.HandleCellMouseUp(m.sel, false); ok {
			m = m.commit(next)
		}

	case mouse.TargetColumnHeader:
		from, to := m.dragCol, m.hoverCol
		if from >= 0 && to >= 0 && from != to {
			if err := m.sheet.MoveColumn(from, to); err == nil {
				m = m.showToast(fmt.Sprintf("moved column %q", m.sheet.Column(to).Title))
				m.sel = selection.DefaultState()
			}
		} else if next, ok := m.manager.HandleCellMouseUp(m.sel, false); ok {
			m = m.commit(next)
		}
	}

	m.dragCol = -1
	m.hoverCol = -1
	return m
}

// scrollTo jumps the viewport from a click on the scrollbar track.
func (m Model) scrollTo(y int) Model {
	track := m.visibleRows()
	if track < 1 {
		return m
	}
	pos := y - m.headerLines()
	if pos < 0 {
		pos = 0
	}
	m.scrollRow = pos * m.sheet.RowCount() / track
	return m.clampScroll()
}

// selectionTSV renders the active region as tab-separated values, one line
// per row. Merged cells contribute their value once, at the owner row.
func (m Model) selectionTSV() (string, bool) {
	active, ok := m.sel.ActiveRegion()
	if !ok || active.Primary.ColumnHeader {
		return "", false
	}

	rows := active.RowRange()
	cols := active.ColRange()
	var b strings.Builder
	for r := rows.Start; r <= rows.End; r++ {
		if r > rows.Start {
			b.WriteByte('\n')
		}
		for c := cols.Start; c <= cols.End; c++ {
			if c > cols.Start {
				b.WriteByte('\t')
			}
			owner := m.sheet.MappedCell(grid.Coord(r, c))
			if owner.Row == r {
				b.WriteString(m.sheet.Value(r, c))
			}
		}
	}
	return b.String(), true
}

// copySelection writes the active region to the system clipboard.
func (m Model) copySelection() (tea.Model, tea.Cmd) {
	tsv, ok := m.selectionTSV()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(tsv); err != nil {
		return m.showError(fmt.Sprintf("clipboard: %v", err)), nil
	}
	active, _ := m.sel.ActiveRegion()
	return m.showToast(fmt.Sprintf("copied %dx%d cells",
		active.RowRange().Len(), active.ColRange().Len())), nil
}
