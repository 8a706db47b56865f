// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	lipgloss "github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v2"
)

// Options controls how rows are emitted.
type Options struct {
	// Format is one of text, json, yaml.
	Format string
	// Color enables styled text output.
	Color bool
	// Titles shows the header row in text output.
	Titles bool
}

// Spit renders titled rows to w in the requested format. Text output is a
// bordered table clamped to the terminal width when w is a terminal.
func Spit(w io.Writer, titles []string, rows [][]string, opts Options) error {
	switch opts.Format {
	case "", "text":
		return spitText(w, titles, rows, opts)
	case "json":
		return spitJSON(w, titles, rows)
	case "yaml":
		return spitYAML(w, titles, rows)
	}
	return fmt.Errorf("unsupported output format: %s", opts.Format)
}

func spitText(w io.Writer, titles []string, rows [][]string, opts Options) error {
	t := table.New().Border(lipgloss.NormalBorder()).Rows(rows...)

	if opts.Titles {
		t = t.Headers(titles...)
	}

	if opts.Color {
		headerStyle := lipgloss.NewStyle().Bold(true)
		t = t.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	}

	if width := terminalWidth(w); width > 0 {
		t = t.Width(width)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

func spitJSON(w io.Writer, titles []string, rows [][]string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rowMaps(titles, rows))
}

func spitYAML(w io.Writer, titles []string, rows [][]string) error {
	b, err := yaml.Marshal(rowMaps(titles, rows))
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// rowMaps zips each row with the titles so structured formats are
// self-describing. Short rows simply omit the trailing keys.
func rowMaps(titles []string, rows [][]string) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		m := map[string]string{}
		for i, v := range row {
			if i < len(titles) {
				m[titles[i]] = v
			} else {
				m[fmt.Sprintf("col%d", i)] = v
			}
		}
		out = append(out, m)
	}
	return out
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
