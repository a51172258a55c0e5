// Package config loads and persists tessera's JSON configuration and watches
// it for live edits.
package config

// Config is the root configuration structure.
type Config struct {
	Grid   GridConfig   `json:"grid"`
	UI     UIConfig     `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
}

// GridConfig configures grid behavior.
type GridConfig struct {
	// SelectionMode is one of none, single-cell, multi-cell, single-row,
	// multi-row.
	SelectionMode string `json:"selectionMode"`
	HeaderVisible bool   `json:"headerVisible"`
	// RowGutter shows the 1-based row numbers on the left.
	RowGutter bool `json:"rowGutter"`
}

// UIConfig configures appearance.
type UIConfig struct {
	Theme      ThemeConfig `json:"theme"`
	ShowStatus bool        `json:"showStatus"`
}

// ThemeConfig names the color theme and optional per-color overrides.
type ThemeConfig struct {
	Name      string            `json:"name"`
	Overrides map[string]string `json:"overrides"`
}

// KeymapConfig holds key binding overrides, key string -> command ID.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

var selectionModes = map[string]bool{
	"none":        true,
	"single-cell": true,
	"multi-cell":  true,
	"single-row":  true,
	"multi-row":   true,
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			SelectionMode: "multi-cell",
			HeaderVisible: true,
			RowGutter:     true,
		},
		UI: UIConfig{
			Theme: ThemeConfig{
				Name:      "default",
				Overrides: make(map[string]string),
			},
			ShowStatus: true,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate patches invalid values back to their defaults.
func (c *Config) Validate() error {
	if !selectionModes[c.Grid.SelectionMode] {
		c.Grid.SelectionMode = "multi-cell"
	}
	if c.UI.Theme.Name == "" {
		c.UI.Theme.Name = "default"
	}
	if c.UI.Theme.Overrides == nil {
		c.UI.Theme.Overrides = make(map[string]string)
	}
	if c.Keymap.Overrides == nil {
		c.Keymap.Overrides = make(map[string]string)
	}
	return nil
}
