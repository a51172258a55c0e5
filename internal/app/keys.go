package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wilbur182/tessera/internal/grid/selection"
	"github.com/wilbur182/tessera/internal/keymap"
)

// Messages produced by registered commands. The commands themselves only
// emit messages; Update owns the model mutation.
type (
	copySelectionMsg struct{}
	saveSheetMsg     struct{}
	jumpMsg          struct{ toEnd bool }
)

func msgCmd(msg tea.Msg) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return msg }
	}
}

// registerGridCommands installs the default commands and bindings. User
// overrides from config are layered on top by the caller.
func registerGridCommands(km *keymap.Registry) {
	commands := []keymap.Command{
		{ID: "app.quit", Name: "Quit", Context: keymap.ContextGlobal,
			Handler: func() tea.Cmd { return tea.Quit }},
		{ID: "grid.copy", Name: "Copy selection", Context: keymap.ContextGrid,
			Handler: msgCmd(copySelectionMsg{})},
		{ID: "grid.save", Name: "Save sheet", Context: keymap.ContextGrid,
			Handler: msgCmd(saveSheetMsg{})},
		{ID: "grid.top", Name: "Jump to first row", Context: keymap.ContextGrid,
			Handler: msgCmd(jumpMsg{})},
		{ID: "grid.bottom", Name: "Jump to last row", Context: keymap.ContextGrid,
			Handler: msgCmd(jumpMsg{toEnd: true})},
	}
	for _, c := range commands {
		km.RegisterCommand(c)
	}

	bindings := []keymap.Binding{
		{Key: "ctrl+q", Command: "app.quit", Context: keymap.ContextGlobal},
		{Key: "ctrl+c", Command: "grid.copy", Context: keymap.ContextGrid},
		{Key: "ctrl+s", Command: "grid.save", Context: keymap.ContextGrid},
		{Key: "g g", Command: "grid.top", Context: keymap.ContextGrid},
		{Key: "G", Command: "grid.bottom", Context: keymap.ContextGrid},
	}
	for _, b := range bindings {
		km.RegisterBinding(b)
	}
}

// transitionHandler is one named selection transition as a method expression.
type transitionHandler func(selection.Manager, selection.State) (selection.State, bool)

// gridKeyHandlers maps normalized key strings to selection transitions.
// Keys not listed here fall through to HandleKeypress when they carry runes.
var gridKeyHandlers = map[string]transitionHandler{
	"enter":       selection.Manager.HandleEnter,
	"shift+enter": selection.Manager.HandleShiftEnter,
	"tab":         selection.Manager.HandleTab,
	"shift+tab":   selection.Manager.HandleShiftTab,

	"home":            selection.Manager.HandleHome,
	"end":             selection.Manager.HandleEnd,
	"ctrl+home":       selection.Manager.HandleCtrlHome,
	"ctrl+end":        selection.Manager.HandleCtrlEnd,
	"shift+home":      selection.Manager.HandleShiftHome,
	"shift+end":       selection.Manager.HandleShiftEnd,
	"ctrl+shift+home": selection.Manager.HandleCtrlShiftHome,
	"ctrl+shift+end":  selection.Manager.HandleCtrlShiftEnd,

	"up":    selection.Manager.HandleUp,
	"down":  selection.Manager.HandleDown,
	"left":  selection.Manager.HandleLeft,
	"right": selection.Manager.HandleRight,

	"shift+up":    selection.Manager.HandleShiftUp,
	"shift+down":  selection.Manager.HandleShiftDown,
	"shift+left":  selection.Manager.HandleShiftLeft,
	"shift+right": selection.Manager.HandleShiftRight,

	"ctrl+up":    selection.Manager.HandleCtrlUp,
	"ctrl+down":  selection.Manager.HandleCtrlDown,
	"ctrl+left":  selection.Manager.HandleCtrlLeft,
	"ctrl+right": selection.Manager.HandleCtrlRight,

	"ctrl+shift+up":    selection.Manager.HandleCtrlShiftUp,
	"ctrl+shift+down":  selection.Manager.HandleCtrlShiftDown,
	"ctrl+shift+left":  selection.Manager.HandleCtrlShiftLeft,
	"ctrl+shift+right": selection.Manager.HandleCtrlShiftRight,

	"esc": selection.Manager.HandleCancel,
	"f2":  selection.Manager.HandleEdit,
}
