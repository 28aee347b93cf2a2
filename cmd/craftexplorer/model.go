package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SylphxAI/craft/cmd/craftexplorer/logger"
	"github.com/SylphxAI/craft/draft"
	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/craft"
	"github.com/SylphxAI/craft/pkg/value"
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	EditMode
	AppendMode
)

// row is one visible line of the document tree.
type row struct {
	path  []docpath.Segment
	label string
	kind  value.Kind
	depth int
}

// Model is the main application model
type Model struct {
	docPath string
	session *draft.Draft

	rows     []row
	cursor   int
	expanded map[string]bool

	keys KeyMap
	vp   viewport.Model

	inputMode InputMode
	input     textinput.Model
	editPath  []docpath.Segment

	showHelp  bool
	status    string
	statusErr bool

	width  int
	height int
	ready  bool
}

// NewModel loads the document and opens the draft session.
func NewModel(docPath string) (Model, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return Model{}, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := value.FromJSON(data)
	if err != nil {
		return Model{}, fmt.Errorf("failed to parse document: %w", err)
	}

	d, ok := craft.CreateDraft(doc).(*draft.Draft)
	if !ok {
		return Model{}, fmt.Errorf("document root must be an object or array")
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	m := Model{
		docPath:  docPath,
		session:  d,
		expanded: map[string]bool{},
		keys:     DefaultKeyMap(),
		input:    ti,
	}
	m.rebuildRows()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// pathKey joins segments into the expansion-state map key.
func pathKey(path []docpath.Segment) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = string(s)
	}
	return strings.Join(parts, "\x00")
}

// rebuildRows re-flattens the visible tree after any edit or
// expand/collapse change.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	m.appendRows(m.session, nil, 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) appendRows(d *draft.Draft, prefix []docpath.Segment, depth int) {
	switch d.Kind() {
	case value.KindRecord:
		for _, k := range d.Keys() {
			m.appendRow(d.Get(k), append(append([]docpath.Segment{}, prefix...), docpath.Segment(k)), k, depth)
		}
	case value.KindSequence:
		for i := 0; i < d.Len(); i++ {
			seg := docpath.Segment(fmt.Sprintf("%d", i))
			m.appendRow(d.At(i), append(append([]docpath.Segment{}, prefix...), seg), fmt.Sprintf("[%d]", i), depth)
		}
	}
}

func (m *Model) appendRow(v any, path []docpath.Segment, label string, depth int) {
	r := row{path: path, depth: depth}
	switch cv := v.(type) {
	case *draft.Draft:
		r.kind = cv.Kind()
		switch cv.Kind() {
		case value.KindRecord:
			r.label = fmt.Sprintf("%s: {…} %d field(s)", label, cv.Len())
		case value.KindSequence:
			r.label = fmt.Sprintf("%s: […] %d item(s)", label, cv.Len())
		}
		m.rows = append(m.rows, r)
		if m.expanded[pathKey(path)] {
			m.appendRows(cv, path, depth+1)
		}
	default:
		r.kind = value.KindOpaque
		r.label = fmt.Sprintf("%s: %s", label, previewValue(cv))
		m.rows = append(m.rows, r)
	}
}

// previewValue renders a leaf for the tree line.
func previewValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	s := string(data)
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}

// currentRow returns the row under the cursor, or nil.
func (m *Model) currentRow() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// writeSession finalizes the draft, writes the document and opens a
// fresh session over the result.
func (m *Model) writeSession() error {
	res, ops, _, err := craft.FinishDraftWithPatches(m.session)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(m.docPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	logger.Info("wrote document", "path", m.docPath, "patches", len(ops))

	d, ok := craft.CreateDraft(res).(*draft.Draft)
	if !ok {
		return fmt.Errorf("document root must be an object or array")
	}
	m.session = d
	m.rebuildRows()
	m.status = fmt.Sprintf("wrote %s (%d change(s))", m.docPath, len(ops))
	m.statusErr = false
	return nil
}
