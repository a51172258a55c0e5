// Package styles holds the theme registry and the lipgloss styles the grid
// renders with. Styles are package variables rebuilt whenever a theme is
// applied, so render code never constructs styles per frame.
package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects themeRegistry and the current-theme state.
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds the colors a grid theme defines.
type ColorPalette struct {
	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`

	// Background colors
	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`

	// Column header row
	HeaderFg string `json:"headerFg"`
	HeaderBg string `json:"headerBg"`

	// Selection
	SelectionFg string `json:"selectionFg"`
	SelectionBg string `json:"selectionBg"`
	PrimaryFg   string `json:"primaryFg"`
	PrimaryBg   string `json:"primaryBg"`

	// Pending fill strip while the fill handle drags
	FillPreviewBg string `json:"fillPreviewBg"`

	// Row-number gutter
	GutterFg string `json:"gutterFg"`
	GutterBg string `json:"gutterBg"`

	// Accents
	Accent       string `json:"accent"` // fill handle, resize indicator
	BorderNormal string `json:"borderNormal"`
	Error        string `json:"error"`
}

// Theme is a named palette.
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes.
var (
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			BgPrimary:     "#111827",
			BgSecondary:   "#1F2937",
			HeaderFg:      "#F9FAFB",
			HeaderBg:      "#374151",
			SelectionFg:   "#F9FAFB",
			SelectionBg:   "#3B3F6E",
			PrimaryFg:     "#111827",
			PrimaryBg:     "#7C3AED",
			FillPreviewBg: "#2A2E54",
			GutterFg:      "#6B7280",
			GutterBg:      "#1F2937",
			Accent:        "#F59E0B",
			BorderNormal:  "#374151",
			Error:         "#EF4444",
		},
	}

	NordTheme = Theme{
		Name:        "nord",
		DisplayName: "Nord",
		Colors: ColorPalette{
			TextPrimary:   "#ECEFF4",
			TextSecondary: "#D8DEE9",
			TextMuted:     "#4C566A",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			HeaderFg:      "#ECEFF4",
			HeaderBg:      "#434C5E",
			SelectionFg:   "#ECEFF4",
			SelectionBg:   "#4C566A",
			PrimaryFg:     "#2E3440",
			PrimaryBg:     "#88C0D0",
			FillPreviewBg: "#434C5E",
			GutterFg:      "#4C566A",
			GutterBg:      "#3B4252",
			Accent:        "#EBCB8B",
			BorderNormal:  "#434C5E",
			Error:         "#BF616A",
		},
	}

	SolarizedDarkTheme = Theme{
		Name:        "solarized-dark",
		DisplayName: "Solarized Dark",
		Colors: ColorPalette{
			TextPrimary:   "#93A1A1",
			TextSecondary: "#839496",
			TextMuted:     "#586E75",
			BgPrimary:     "#002B36",
			BgSecondary:   "#073642",
			HeaderFg:      "#FDF6E3",
			HeaderBg:      "#073642",
			SelectionFg:   "#FDF6E3",
			SelectionBg:   "#586E75",
			PrimaryFg:     "#002B36",
			PrimaryBg:     "#268BD2",
			FillPreviewBg: "#073642",
			GutterFg:      "#586E75",
			GutterBg:      "#073642",
			Accent:        "#B58900",
			BorderNormal:  "#586E75",
			Error:         "#DC322F",
		},
	}
)

var themeRegistry = map[string]Theme{
	"default":        DefaultTheme,
	"nord":           NordTheme,
	"solarized-dark": SolarizedDarkTheme,
}

var (
	currentTheme      = "default"
	currentThemeValue = DefaultTheme
)

// IsValidHexColor checks #RRGGBB or #RRGGBBAA.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks whether a theme name exists in the registry.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the default theme when unknown.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DefaultTheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentThemeValue
}

// GetCurrentThemeName returns the active theme's name.
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the registered theme names in sorted order.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds a custom theme to the registry.
func RegisterTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	themeRegistry[theme.Name] = theme
}

// ApplyTheme applies a theme by name, rebuilding every style variable.
func ApplyTheme(name string) {
	ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides applies a theme with per-color overrides from
// config. Invalid hex values are skipped.
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)
	for key, value := range overrides {
		applyOverride(&theme.Colors, key, value)
	}

	applyColors(theme)
	themeMu.Lock()
	currentTheme = name
	currentThemeValue = theme
	themeMu.Unlock()
}

func applyOverride(p *ColorPalette, key, value string) {
	if !IsValidHexColor(value) {
		return
	}
	switch key {
	case "textPrimary":
		p.TextPrimary = value
	case "textSecondary":
		p.TextSecondary = value
	case "textMuted":
		p.TextMuted = value
	case "bgPrimary":
		p.BgPrimary = value
	case "bgSecondary":
		p.BgSecondary = value
	case "headerFg":
		p.HeaderFg = value
	case "headerBg":
		p.HeaderBg = value
	case "selectionFg":
		p.SelectionFg = value
	case "selectionBg":
		p.SelectionBg = value
	case "primaryFg":
		p.PrimaryFg = value
	case "primaryBg":
		p.PrimaryBg = value
	case "fillPreviewBg":
		p.FillPreviewBg = value
	case "gutterFg":
		p.GutterFg = value
	case "gutterBg":
		p.GutterBg = value
	case "accent":
		p.Accent = value
	case "borderNormal":
		p.BorderNormal = value
	case "error":
		p.Error = value
	}
}

// Color variables, updated by applyColors.
var (
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	BgPrimary     lipgloss.Color
	BgSecondary   lipgloss.Color
	Accent        lipgloss.Color
	BorderNormal  lipgloss.Color
	ErrorColor    lipgloss.Color
)

// Style variables, rebuilt by rebuildStyles.
var (
	Header          lipgloss.Style
	HeaderSelected  lipgloss.Style
	Cell            lipgloss.Style
	CellSelected    lipgloss.Style
	CellPrimary     lipgloss.Style
	CellFillPreview lipgloss.Style
	Gutter          lipgloss.Style
	GutterSelected  lipgloss.Style
	Editor          lipgloss.Style
	StatusBar       lipgloss.Style
	StatusError     lipgloss.Style
	ScrollTrack     lipgloss.Style
	ScrollThumb     lipgloss.Style
)

func applyColors(theme Theme) {
	c := theme.Colors

	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	BgPrimary = lipgloss.Color(c.BgPrimary)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	Accent = lipgloss.Color(c.Accent)
	BorderNormal = lipgloss.Color(c.BorderNormal)
	ErrorColor = lipgloss.Color(c.Error)

	rebuildStyles(c)
}

func rebuildStyles(c ColorPalette) {
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.HeaderFg)).
		Background(lipgloss.Color(c.HeaderBg))

	HeaderSelected = Header.
		Background(lipgloss.Color(c.SelectionBg)).
		Foreground(lipgloss.Color(c.SelectionFg))

	Cell = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextPrimary)).
		Background(lipgloss.Color(c.BgPrimary))

	CellSelected = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.SelectionFg)).
		Background(lipgloss.Color(c.SelectionBg))

	CellPrimary = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.PrimaryFg)).
		Background(lipgloss.Color(c.PrimaryBg))

	CellFillPreview = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextSecondary)).
		Background(lipgloss.Color(c.FillPreviewBg))

	Gutter = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.GutterFg)).
		Background(lipgloss.Color(c.GutterBg))

	GutterSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.SelectionFg)).
		Background(lipgloss.Color(c.GutterBg))

	Editor = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextPrimary)).
		Background(lipgloss.Color(c.BgSecondary))

	StatusBar = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextSecondary)).
		Background(lipgloss.Color(c.BgSecondary))

	StatusError = StatusBar.Foreground(lipgloss.Color(c.Error))

	ScrollTrack = lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextMuted))
	ScrollThumb = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent))
}

func init() {
	ApplyTheme("default")
}
