// Package app hosts the grid inside a Bubble Tea program: it classifies
// terminal input into selection transitions, runs the cell editor, and
// renders the virtualized view.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/tessera/internal/config"
	"github.com/wilbur182/tessera/internal/grid"
	"github.com/wilbur182/tessera/internal/grid/selection"
	"github.com/wilbur182/tessera/internal/keymap"
	"github.com/wilbur182/tessera/internal/mouse"
	"github.com/wilbur182/tessera/internal/sheet"
	"github.com/wilbur182/tessera/internal/styles"
)

// Model is the root Bubble Tea model for the tessera grid.
type Model struct {
	// Configuration
	cfg     *config.Config
	cfgPath string

	// Data
	sheet *sheet.Sheet
	store *sheet.Store

	// Selection core
	manager selection.Manager
	sel     selection.State

	// Keymap
	keymap        *keymap.Registry
	activeContext string

	// Mouse
	mouse    *mouse.Handler
	dragKind mouse.TargetKind
	dragCol  int // header reorder: source column
	hoverCol int // header reorder: column currently under the pointer

	// Cell editor
	editor textinput.Model

	// Config live reload
	watcher *config.Watcher

	// Viewport
	width, height int
	scrollRow     int
	scrollCol     int
	ready         bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Per-row render cache, keyed by absolute row index.
	rowCache map[int]rowCacheEntry

	currentVersion string
}

type rowCacheEntry struct {
	key  uint64
	line string
}

// Options carries the optional collaborators New accepts.
type Options struct {
	Store   *sheet.Store    // nil when the sheet is not DB-backed
	Watcher *config.Watcher // nil when live reload is off
	CfgPath string
	Version string
}

// New creates a new application model. The selection mode comes from the
// config unless overridden by the caller beforehand.
func New(sh *sheet.Sheet, km *keymap.Registry, cfg *config.Config, opts Options) Model {
	sh.SetHeaderHidden(!cfg.Grid.HeaderVisible)

	mode := selection.ParseSelectionMode(cfg.Grid.SelectionMode)

	m := Model{
		cfg:            cfg,
		cfgPath:        opts.CfgPath,
		sheet:          sh,
		store:          opts.Store,
		manager:        selection.NewManager(mode, sh),
		sel:            selection.DefaultState(),
		keymap:         km,
		activeContext:  keymap.ContextGrid,
		mouse:          mouse.NewHandler(),
		watcher:        opts.Watcher,
		dragCol:        -1,
		hoverCol:       -1,
		rowCache:       make(map[int]rowCacheEntry),
		currentVersion: opts.Version,
	}
	registerGridCommands(km)
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}
	return m
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	if m.watcher != nil {
		cmds = append(cmds, watchConfig(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Selection returns the committed selection state.
func (m Model) Selection() selection.State { return m.sel }

// Sheet returns the sheet the grid renders.
func (m Model) Sheet() *sheet.Sheet { return m.sheet }

// commit replaces the committed selection state and reconciles everything
// that hangs off it: editor lifecycle and viewport scroll.
func (m Model) commit(next selection.State) Model {
	prev := m.sel
	m.sel = next

	entered := next.Mode == selection.ModeEdit && prev.Mode != selection.ModeEdit
	left := next.Mode != selection.ModeEdit && prev.Mode == selection.ModeEdit
	switch {
	case entered:
		m = m.openEditor(m.cellValue(next.Primary))
	case left:
		m.editor.Blur()
		m.activeContext = keymap.ContextGrid
	}

	m = m.ensureVisible(next.Primary)
	return m
}

// openEditor mounts the text input over the primary cell, seeded with value.
func (m Model) openEditor(value string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	m.editor = ti
	m.activeContext = keymap.ContextEdit
	return m
}

// cellValue reads the value under a coordinate; headers read the title.
func (m Model) cellValue(c grid.Coordinate) string {
	if c.Row < 0 || c.Col < 0 {
		return ""
	}
	if c.ColumnHeader {
		return m.sheet.Column(c.Col).Title
	}
	return m.sheet.Value(c.Row, c.Col)
}

// commitCellValue writes the editor's value into the primary cell.
func (m Model) commitCellValue() Model {
	p := m.sel.Primary
	if p.ColumnHeader || p.Row < 0 || p.Col < 0 {
		return m
	}
	if err := m.sheet.SetValue(p.Row, p.Col, m.editor.Value()); err != nil {
		m = m.showError(err.Error())
	}
	return m
}

// ensureVisible scrolls the viewport so the coordinate is on screen.
func (m Model) ensureVisible(c grid.Coordinate) Model {
	if c.Row < 0 && !c.ColumnHeader {
		return m
	}
	rows := m.visibleRows()
	if rows > 0 && !c.ColumnHeader {
		if c.Row < m.scrollRow {
			m.scrollRow = c.Row
		}
		if c.Row >= m.scrollRow+rows {
			m.scrollRow = c.Row - rows + 1
		}
	}
	if c.Col >= 0 {
		m = m.ensureColVisible(c.Col)
	}
	return m.clampScroll()
}

// ensureColVisible adjusts the horizontal scroll so the column fits.
func (m Model) ensureColVisible(col int) Model {
	if col < m.scrollCol {
		m.scrollCol = col
		return m
	}
	avail := m.gridWidth()
	for m.scrollCol < col {
		used := 0
		fits := false
		for c := m.scrollCol; c <= col && c < m.sheet.ColCount(); c++ {
			if m.sheet.Column(c).Hidden {
				continue
			}
			used += m.sheet.Column(c).Width + 1
			if c == col && used <= avail {
				fits = true
			}
		}
		if fits {
			break
		}
		m.scrollCol++
	}
	return m
}

// clampScroll keeps the scroll offsets inside the sheet.
func (m Model) clampScroll() Model {
	maxRow := m.sheet.RowCount() - m.visibleRows()
	if maxRow < 0 {
		maxRow = 0
	}
	if m.scrollRow > maxRow {
		m.scrollRow = maxRow
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
	maxCol := m.sheet.ColCount() - 1
	if m.scrollCol > maxCol {
		m.scrollCol = maxCol
	}
	if m.scrollCol < 0 {
		m.scrollCol = 0
	}
	return m
}

// ShowToast displays a temporary status message.
func (m Model) showToast(msg string) Model {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(3 * time.Second)
	m.statusIsError = false
	return m
}

func (m Model) showError(msg string) Model {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(5 * time.Second)
	m.statusIsError = true
	return m
}

// clearToast clears any expired toast message.
func (m Model) clearToast() Model {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
	return m
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type configReloadedMsg struct{}

// watchConfig blocks on the watcher and reports one reload event.
func watchConfig(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return configReloadedMsg{}
	}
}

type sheetSavedMsg struct{ err error }

// saveSheet persists the sheet to the store off the update loop.
func saveSheet(st *sheet.Store, sh *sheet.Sheet) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return sheetSavedMsg{err: st.Save(ctx, sh)}
	}
}

// applyConfig re-applies the reloadable parts of a freshly loaded config.
// A selection mode change swaps the manager and drops the committed state,
// since the old state may not satisfy the new mode's invariants.
func (m Model) applyConfig(cfg *config.Config) Model {
	modeChanged := cfg.Grid.SelectionMode != m.cfg.Grid.SelectionMode
	m.cfg = cfg
	styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)
	for key, cmdID := range cfg.Keymap.Overrides {
		m.keymap.SetUserOverride(key, cmdID)
	}
	m.sheet.SetHeaderHidden(!cfg.Grid.HeaderVisible)
	if modeChanged {
		mode := selection.ParseSelectionMode(cfg.Grid.SelectionMode)
		m.manager = selection.NewManager(mode, m.sheet)
		m.sel = selection.DefaultState()
	}
	m.rowCache = make(map[int]rowCacheEntry)
	return m
}
