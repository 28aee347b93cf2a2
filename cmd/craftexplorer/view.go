package main

import (
	"fmt"
	"strings"

	"github.com/SylphxAI/craft/pkg/value"
)

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	m.vp.SetContent(m.treeView())
	m.scrollToCursor()
	b.WriteString(treeStyle.Width(m.width - 2).Render(m.vp.View()))
	b.WriteString("\n")

	if m.inputMode != NormalMode {
		label := "edit"
		if m.inputMode == AppendMode {
			label = "append"
		}
		b.WriteString(inputLabelStyle.Render(label+" > ") + m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	title := fmt.Sprintf("craftexplorer · %s", m.docPath)
	if m.session.Modified() {
		title += modifiedStyle.Render(" [modified]")
	}
	return headerStyle.Render(title)
}

func (m Model) treeView() string {
	if len(m.rows) == 0 {
		return statusStyle.Render("(empty document)")
	}
	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		indent := strings.Repeat("  ", r.depth)
		marker := "  "
		if r.kind != value.KindOpaque {
			if m.expanded[pathKey(r.path)] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		line := indent + marker + m.renderLabel(r)
		if i == m.cursor {
			line = selectedRowStyle.Render(indent + marker + r.label)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLabel(r row) string {
	idx := strings.Index(r.label, ":")
	if idx < 0 {
		return opaqueStyle.Render(r.label)
	}
	name := keyStyle.Render(r.label[:idx])
	rest := r.label[idx:]
	if r.kind != value.KindOpaque {
		return name + containerStyle.Render(rest)
	}
	return name + opaqueStyle.Render(rest)
}

func (m Model) statusView() string {
	if m.status == "" {
		return statusStyle.Render("e edit · a append · x delete · w write · ? help · q quit")
	}
	if m.statusErr {
		return statusErrStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

// scrollToCursor keeps the cursor line inside the viewport.
func (m Model) scrollToCursor() {
	if m.cursor < m.vp.YOffset {
		m.vp.SetYOffset(m.cursor)
	} else if m.cursor >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m Model) helpView() string {
	help := `craftexplorer

  ↑/k, ↓/j     move up/down
  →/l, enter   expand or collapse a container
  ←/h          collapse, or jump to parent
  home/g       go to top
  end/G        go to bottom

  e            edit the leaf value under the cursor
  a            append an item to the sequence under the cursor
  x            delete the entry under the cursor
  w            write changes to disk

  ?            close this help
  q            quit (unwritten changes are abandoned)

Values typed into the input line are parsed as JSON when possible,
otherwise stored as plain strings.`
	return helpStyle.Render(help)
}
