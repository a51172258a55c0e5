package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wilbur182/tessera/internal/app"
	"github.com/wilbur182/tessera/internal/config"
	"github.com/wilbur182/tessera/internal/keymap"
	"github.com/wilbur182/tessera/internal/sheet"
	"github.com/wilbur182/tessera/internal/styles"
	"github.com/wilbur182/tessera/internal/version"
)

var (
	configPath   = flag.String("config", "", "path to config file")
	filePath     = flag.String("file", "", "sheet to open: .csv, or a sqlite .db/.sqlite file")
	sheetName    = flag.String("sheet", "", "sheet name inside a sqlite file (default: first)")
	modeFlag     = flag.String("mode", "", "selection mode: none, single-cell, multi-cell, single-row, multi-row")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("tessera version %s\n", version.Effective())
		os.Exit(0)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tessera requires an interactive terminal")
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *modeFlag != "" {
		cfg.Grid.SelectionMode = *modeFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			os.Exit(1)
		}
	}

	styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides)

	sh, store, err := openSheet(*filePath, *sheetName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open sheet: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	km := keymap.NewRegistry()
	for key, cmdID := range cfg.Keymap.Overrides {
		km.SetUserOverride(key, cmdID)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	watcher, err := config.NewWatcher(cfgPath)
	if err != nil {
		logger.Warn("config watcher unavailable", "err", err)
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	model := app.New(sh, km, cfg, app.Options{
		Store:   store,
		Watcher: watcher,
		CfgPath: cfgPath,
		Version: version.Effective(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// openSheet resolves the -file flag: CSV files load in memory, sqlite files
// go through the store, and no file yields a blank scratch sheet.
func openSheet(path, name string) (*sheet.Sheet, *sheet.Store, error) {
	if path == "" {
		return scratchSheet(), nil, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		sh, err := sheet.LoadCSVFile(path)
		return sh, nil, err

	case ".db", ".sqlite", ".sqlite3":
		store, err := sheet.OpenStore(path)
		if err != nil {
			return nil, nil, err
		}
		ctx := context.Background()
		if name == "" {
			names, err := store.Names(ctx)
			if err != nil {
				store.Close()
				return nil, nil, err
			}
			if len(names) == 0 {
				store.Close()
				return nil, nil, fmt.Errorf("%s holds no sheets", path)
			}
			name = names[0]
		}
		sh, err := store.Load(ctx, name)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		return sh, store, nil

	default:
		return nil, nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

// scratchSheet is the blank grid tessera opens without a -file.
func scratchSheet() *sheet.Sheet {
	cols := make([]sheet.Column, 8)
	for i := range cols {
		title := string(rune('A' + i))
		cols[i] = sheet.Column{
			Key:        strings.ToLower(title),
			Title:      title,
			Width:      10,
			Editable:   true,
			Selectable: true,
		}
	}
	sh := sheet.New("scratch", cols)
	for i := 0; i < 50; i++ {
		sh.AppendRow(nil)
	}
	return sh
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tessera [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal spreadsheet grid.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
