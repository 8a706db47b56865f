// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/staranto/geoctlgo/internal/catalog"
	"github.com/staranto/geoctlgo/internal/fetcher"
	"github.com/staranto/geoctlgo/internal/raster"
	"github.com/staranto/geoctlgo/internal/store"
	"github.com/staranto/geoctlgo/internal/stretch"
	csvtable "github.com/staranto/geoctlgo/internal/table"
	"github.com/staranto/geoctlgo/internal/vector"
)

// csvPreviewRows caps how many CSV rows are loaded into the preview table.
const csvPreviewRows = 25

// Deps wires the dashboard to its collaborators. The dashboard owns all
// session state and memoization; the packages it calls stay pure.
type Deps struct {
	Store      store.Store
	Bucket     string
	Catalog    catalog.Catalog
	GISPrefix  string
	TTL        time.Duration
	PurgeAge   time.Duration
	SessionDir string
}

// Run starts the full-screen dashboard and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	if deps.SessionDir == "" {
		return fmt.Errorf("no session directory configured")
	}
	if err := os.MkdirAll(deps.SessionDir, 0o755); err != nil { //nolint:mnd
		return &fetcher.FilesystemError{Path: deps.SessionDir, Err: err}
	}

	// Old session leftovers are someone else's bytes by now.
	if err := fetcher.Purge(deps.SessionDir, deps.PurgeAge); err != nil {
		log.WithError(err).Warn("session purge failed")
	}

	p := tea.NewProgram(newModel(ctx, deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type focusArea int

const (
	focusRegions focusArea = iota
	focusDatasets
)

type item struct {
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// regionsMsg delivers the ISO list fetched from the store.
type regionsMsg struct {
	isos []string
}

// previewMsg delivers a rendered preview for the selected dataset.
type previewMsg struct {
	text     string
	columns  []btable.Column
	rows     []btable.Row
	rangeKey string
	rng      *stretch.Range
}

type errMsg struct {
	err error
}

type model struct {
	ctx  context.Context
	deps Deps

	regions  list.Model
	datasets list.Model
	preview  btable.Model
	spin     spinner.Model

	focus       focusArea
	loading     bool
	hasTable    bool
	previewText string
	status      string

	// ranges memoizes computed display ranges for the process lifetime,
	// keyed by local path and method. Owned here, never by the core.
	ranges map[string]stretch.Range

	width  int
	height int
}

func newModel(ctx context.Context, deps Deps) model {
	delegate := list.NewDefaultDelegate()

	regions := list.New(nil, delegate, 0, 0)
	regions.Title = "Regions"
	regions.SetShowHelp(false)

	items := make([]list.Item, 0, len(deps.Catalog.Datasets()))
	for _, d := range deps.Catalog.Datasets() {
		items = append(items, item{title: d.Name, desc: d.Kind().String()})
	}
	datasets := list.New(items, delegate, 0, 0)
	datasets.Title = "Datasets"
	datasets.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		ctx:      ctx,
		deps:     deps,
		regions:  regions,
		datasets: datasets,
		spin:     sp,
		loading:  true,
		status:   "loading regions...",
		ranges:   map[string]stretch.Range{},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadRegions())
}

func (m model) loadRegions() tea.Cmd {
	return func() tea.Msg {
		prefix := m.deps.GISPrefix
		if prefix != "" && prefix[len(prefix)-1] != '/' {
			prefix += "/"
		}
		isos, err := m.deps.Store.ListCommonPrefixes(m.ctx, m.deps.Bucket, prefix)
		if err != nil {
			return errMsg{err}
		}
		return regionsMsg{isos: isos}
	}
}

// previewDest is the cache directory a dataset fetch lands in. CSVs get a
// dataset subdirectory since benefit files for different datasets share the
// region-named basename.
func (d Deps) previewDest(iso, name string, kind catalog.Kind) string {
	dest := filepath.Join(d.SessionDir, iso)
	if kind == catalog.KindCSV {
		dest = filepath.Join(dest, name)
	}
	return dest
}

// loadPreview fetches the selected dataset and builds its preview. memo, when
// non-nil, is a prior display range so the raster is not re-read.
func (m model) loadPreview(iso, name string, memo *stretch.Range) tea.Cmd {
	deps := m.deps
	ctx := m.ctx

	return func() tea.Msg {
		key, err := deps.Catalog.Resolve(name, iso)
		if err != nil {
			return errMsg{err}
		}

		kind := catalog.KindOf(key)
		destDir := deps.previewDest(iso, name, kind)

		localPath, err := fetcher.Fetch(ctx, deps.Store, deps.Bucket, key, destDir, fetcher.Options{TTL: deps.TTL})
		if err != nil {
			return errMsg{err}
		}

		switch kind {
		case catalog.KindCSV:
			return csvPreview(localPath)
		case catalog.KindRaster:
			return rasterPreview(localPath, memo)
		case catalog.KindVector:
			return vectorPreview(localPath)
		}
		return errMsg{fmt.Errorf("unsupported file type: %s", key)}
	}
}

func csvPreview(path string) tea.Msg {
	t, err := csvtable.Load(path, csvPreviewRows)
	if err != nil {
		return errMsg{err}
	}

	columns := make([]btable.Column, len(t.Header))
	for i, h := range t.Header {
		w := len(h)
		for _, row := range t.Rows {
			if i < len(row) && len(row[i]) > w {
				w = len(row[i])
			}
		}
		columns[i] = btable.Column{Title: h, Width: w}
	}

	rows := make([]btable.Row, len(t.Rows))
	for i, r := range t.Rows {
		row := make(btable.Row, len(columns))
		for j := range columns {
			if j < len(r) {
				row[j] = r[j]
			}
		}
		rows[i] = row
	}

	text := path
	if t.Truncated {
		text = fmt.Sprintf("%s (first %d rows)", path, csvPreviewRows)
	}
	return previewMsg{text: text, columns: columns, rows: rows}
}

func rasterPreview(path string, memo *stretch.Range) tea.Msg {
	if built, err := raster.EnsureOverviews(path, nil, 0); err != nil {
		log.WithError(err).Warnf("overview build failed for %s", path)
	} else if built {
		log.Infof("built overviews for %s", path)
	}

	rangeKey := path + "|std_dev"
	rng := memo
	if rng == nil {
		r, err := stretch.Compute(path, stretch.StdDev, stretch.DefaultParams())
		if err != nil {
			return errMsg{err}
		}
		rng = &r
	}

	var size string
	if fi, err := os.Stat(path); err == nil {
		size = humanize.IBytes(uint64(fi.Size()))
	}

	text := fmt.Sprintf("raster %s\nsize:  %s\nrange: [%.4g, %.4g] (std_dev)",
		path, size, rng.Min, rng.Max)
	return previewMsg{text: text, rangeKey: rangeKey, rng: rng}
}

func vectorPreview(path string) tea.Msg {
	s, err := vector.Summarize(path)
	if err != nil {
		return errMsg{err}
	}
	text := fmt.Sprintf("vector %s\nlayer:    %s\ntype:     %s\nfeatures: %d",
		path, s.LayerName, s.Type, s.FeatureCount)
	if len(s.GeometryTypes) > 0 {
		text += fmt.Sprintf("\ngeometry: %v", s.GeometryTypes)
	}
	return previewMsg{text: text}
}

func (m model) selectedRegion() string {
	if it, ok := m.regions.SelectedItem().(item); ok {
		return it.title
	}
	return ""
}

func (m model) selectedDataset() string {
	if it, ok := m.datasets.SelectedItem().(item); ok {
		return it.title
	}
	return ""
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == focusRegions {
				m.focus = focusDatasets
			} else {
				m.focus = focusRegions
			}
			return m, nil
		case "enter":
			return m.handleSelect()
		}

	case regionsMsg:
		items := make([]list.Item, len(msg.isos))
		for i, iso := range msg.isos {
			items[i] = item{title: iso}
		}
		m.regions.SetItems(items)
		m.loading = false
		m.status = fmt.Sprintf("%d regions", len(msg.isos))
		return m, nil

	case previewMsg:
		m.loading = false
		m.previewText = msg.text
		m.hasTable = len(msg.columns) > 0
		if m.hasTable {
			m.preview = btable.New(
				btable.WithColumns(msg.columns),
				btable.WithRows(msg.rows),
				btable.WithHeight(max(min(len(msg.rows)+1, m.height-8), 3)),
			)
		}
		if msg.rangeKey != "" && msg.rng != nil {
			m.ranges[msg.rangeKey] = *msg.rng
		}
		m.status = ""
		return m, nil

	case errMsg:
		m.loading = false
		m.status = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusRegions {
		m.regions, cmd = m.regions.Update(msg)
	} else {
		m.datasets, cmd = m.datasets.Update(msg)
	}
	return m, cmd
}

func (m model) handleSelect() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusRegions:
		// Changing region invalidates the dataset choice.
		m.datasets.Select(0)
		m.previewText = ""
		m.hasTable = false
		m.focus = focusDatasets
		m.status = fmt.Sprintf("region %s", m.selectedRegion())
		return m, nil

	case focusDatasets:
		iso := m.selectedRegion()
		name := m.selectedDataset()
		if iso == "" {
			m.status = "select a region first"
			return m, nil
		}
		m.loading = true
		m.status = fmt.Sprintf("loading %s for %s...", name, iso)

		var memo *stretch.Range
		if k, ok := memoKey(m.deps, iso, name); ok {
			if r, ok := m.ranges[k]; ok {
				memo = &r
			}
		}
		return m, tea.Batch(m.spin.Tick, m.loadPreview(iso, name, memo))
	}
	return m, nil
}

// memoKey fingerprints a raster preview by the local path its fetch lands at,
// so it matches the key rasterPreview stores under. Only rasters are
// memoized.
func memoKey(deps Deps, iso, name string) (string, bool) {
	key, err := deps.Catalog.Resolve(name, iso)
	if err != nil {
		return "", false
	}
	kind := catalog.KindOf(key)
	if kind != catalog.KindRaster {
		return "", false
	}
	return fetcher.LocalPath(deps.previewDest(iso, name, kind), key) + "|std_dev", true
}

func (m *model) layout() {
	leftWidth := m.width / 3
	listHeight := (m.height - 4) / 2
	m.regions.SetSize(leftWidth, listHeight)
	m.datasets.SetSize(leftWidth, listHeight)
}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, m.regions.View(), m.datasets.View())

	right := m.previewText
	if m.hasTable {
		right = m.previewText + "\n\n" + m.preview.View()
	}
	if right == "" {
		right = "select a region, then a dataset"
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(left),
		paneStyle.Width(max(m.width-m.width/3-6, 20)).Render(right),
	)

	status := m.status
	if m.loading {
		status = m.spin.View() + " " + status
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, statusStyle.Render(status))
}
