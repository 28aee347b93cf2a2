package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SylphxAI/craft/cmd/craftexplorer/logger"
	"github.com/SylphxAI/craft/internal/docpath"
	"github.com/SylphxAI/craft/pkg/value"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - chromeHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		return m, nil

	case tea.KeyMsg:
		if m.inputMode != NormalMode {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

// chromeHeight is the lines taken by header, borders and status bar.
const chromeHeight = 6

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.session.Modified() {
			logger.Info("quitting with unwritten changes")
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.rows) - 1
		return m, nil

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Right):
		if r := m.currentRow(); r != nil && r.kind != value.KindOpaque {
			k := pathKey(r.path)
			m.expanded[k] = !m.expanded[k]
			m.rebuildRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if r := m.currentRow(); r != nil {
			k := pathKey(r.path)
			if r.kind != value.KindOpaque && m.expanded[k] {
				m.expanded[k] = false
				m.rebuildRows()
			} else if len(r.path) > 1 {
				// Move to the parent row.
				parent := pathKey(r.path[:len(r.path)-1])
				for i := range m.rows {
					if pathKey(m.rows[i].path) == parent {
						m.cursor = i
						break
					}
				}
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		r := m.currentRow()
		if r == nil || r.kind != value.KindOpaque {
			m.setStatus("only leaf values can be edited", true)
			return m, nil
		}
		cur, err := docpath.Get(m.session, r.path)
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.inputMode = EditMode
		m.editPath = r.path
		m.input.SetValue(marshalForEdit(cur))
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Append):
		r := m.currentRow()
		if r == nil || r.kind != value.KindSequence {
			m.setStatus("append targets a sequence row", true)
			return m, nil
		}
		m.inputMode = AppendMode
		m.editPath = r.path
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		r := m.currentRow()
		if r == nil {
			return m, nil
		}
		if err := docpath.Delete(m.session, r.path); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.rebuildRows()
		m.setStatus("deleted", false)
		return m, nil

	case key.Matches(msg, m.keys.Write):
		if err := m.writeSession(); err != nil {
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Esc):
		m.inputMode = NormalMode
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		v := parseInputValue(m.input.Value())
		var err error
		switch m.inputMode {
		case EditMode:
			err = docpath.Set(m.session, m.editPath, v)
		case AppendMode:
			err = docpath.Append(m.session, m.editPath, v)
		}
		m.inputMode = NormalMode
		m.input.Blur()
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.rebuildRows()
		m.setStatus("edited (unwritten)", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// marshalForEdit renders the current leaf value into the input box.
func marshalForEdit(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// parseInputValue interprets the typed text: JSON when it parses,
// otherwise a plain string.
func parseInputValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return value.FromAny(v)
}
