package ui

import (
	"strings"

	"github.com/atomicstack/ringmenu/internal/theme"
	"github.com/atomicstack/ringmenu/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	bannerNavigate = "Use arrow keys to navigate the menu (X to exit)"
	bannerHotkeys  = "You can also use the first letter of each menu to jump to it"
	headingGap     = " "
)

// RenderOptions controls frame layout. Zero Width or Height leaves that
// dimension unbounded.
type RenderOptions struct {
	Width  int
	Height int
	Styles *theme.Styles
	Footer string
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	indent        int
	raw           bool // text contains ANSI escapes; style wraps the whole line, truncation is ANSI-aware
}

// View implements tea.Model.
func (m *Model) View() string {
	footer := ""
	if m.showFooter {
		m.help.Width = m.width
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return Render(m.engine.Snapshot(), RenderOptions{
		Width:  m.width,
		Height: m.height,
		Styles: styles,
		Footer: footer,
	})
}

// Render draws one frame: banner, heading bar, the open sub-menu aligned under
// its heading, then the narration of the previous action.
func Render(snap state.Snapshot, opts RenderOptions) string {
	st := opts.Styles
	if st == nil {
		st = theme.Default()
	}
	lines := make([]styledLine, 0, 16)
	lines = append(lines,
		styledLine{text: bannerNavigate, style: st.Banner},
		styledLine{text: bannerHotkeys, style: st.Banner},
		styledLine{},
	)

	bar, offsets := headingBar(snap, st)
	lines = append(lines, styledLine{text: bar, raw: true})

	if snap.SubMenuOpen() {
		indent := 0
		if snap.Heading >= 0 && snap.Heading < len(offsets) {
			indent = offsets[snap.Heading]
		}
		for i, label := range snap.SubItems {
			lines = append(lines, itemLine(label, i == snap.SubItem, indent, st))
		}
	}

	if snap.Narration != "" {
		narrationStyle := st.Narration
		if snap.LastAction == state.ActionInvalid {
			narrationStyle = st.Invalid
		}
		lines = append(lines, styledLine{}, styledLine{text: snap.Narration, style: narrationStyle})
	}
	if opts.Footer != "" {
		lines = append(lines, styledLine{}, styledLine{text: opts.Footer, style: st.Footer, raw: true})
	}

	lines = limitHeight(lines, opts.Height, opts.Width)
	lines = applyWidth(lines, opts.Width)
	return renderLines(lines)
}

// headingBar renders every heading on one row and returns the column at which
// each heading starts.
func headingBar(snap state.Snapshot, st *theme.Styles) (string, []int) {
	parts := make([]string, 0, len(snap.Headings))
	offsets := make([]int, 0, len(snap.Headings))
	col := 0
	for i, label := range snap.Headings {
		text := " " + label + " "
		style := st.Heading
		if i == snap.Heading {
			text = "[" + label + "]"
			style = st.SelectedHeading
		}
		offsets = append(offsets, col)
		col += lipgloss.Width(text) + len(headingGap)
		if style != nil {
			text = style.Render(text)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, headingGap), offsets
}

func itemLine(label string, selected bool, indent int, st *theme.Styles) styledLine {
	lineStyle := st.Item
	indicatorStyle := st.ItemIndicator
	if selected {
		lineStyle = st.SelectedItem
		indicatorStyle = st.SelectedItemIndicator
	}
	return styledLine{
		text:          "▌ " + label + " ",
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
		indent:        indent,
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		avail := width - line.indent
		if avail < 1 {
			avail = 1
		}
		if line.raw {
			if lipgloss.Width(text) > avail {
				text = truncate.StringWithTail(text, uint(avail-1), "…")
			}
		} else {
			text = truncateText(text, avail)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		pad := strings.Repeat(" ", line.indent)
		if line.raw {
			if line.style != nil {
				text = line.style.Render(text)
			}
			out[i] = pad + text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = pad + text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
