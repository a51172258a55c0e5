package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadCSV reads a sheet from CSV. The first record supplies the column
// titles; every column is editable and selectable, widths start at the title
// width. Ragged records are padded with empty cells.
func LoadCSV(name string, r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("load csv: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("load csv: header: %w", err)
	}

	columns := make([]Column, len(header))
	for i, title := range header {
		title = strings.TrimSpace(title)
		if title == "" {
			title = fmt.Sprintf("col%d", i+1)
		}
		columns[i] = Column{
			Key:        title,
			Title:      title,
			Width:      max(len(title), DefaultMinWidth),
			Editable:   true,
			Selectable: true,
		}
	}

	s := New(name, columns)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load csv: row %d: %w", s.RowCount()+2, err)
		}
		s.AppendRow(rec)
		for i, v := range rec {
			if i < len(s.columns) && len(v) > s.columns[i].Width {
				s.columns[i].Width = len(v)
			}
		}
	}
	return s, nil
}

// LoadCSVFile reads a sheet from a CSV file, naming it after the file.
func LoadCSVFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return LoadCSV(name, f)
}
