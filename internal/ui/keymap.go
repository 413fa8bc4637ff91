package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/ringmenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Hotkey key.Binding
	Exit   key.Binding
	Quit   key.Binding
}

// newKeyMap builds bindings for the arrows plus one hotkey per heading
// initial.
func newKeyMap(headings []string) keyMap {
	hotkeys := hotkeyLetters(headings)
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev item")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "open/next item")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev menu")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next menu")),
		Hotkey: key.NewBinding(key.WithKeys(hotkeys...), key.WithHelp(strings.Join(hotkeys, "/"), "jump")),
		Exit:   key.NewBinding(key.WithKeys("x", "X"), key.WithHelp("x", "exit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func hotkeyLetters(headings []string) []string {
	seen := make(map[rune]struct{}, len(headings))
	letters := make([]string, 0, len(headings))
	for _, heading := range headings {
		runes := []rune(heading)
		if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
			continue
		}
		r := unicode.ToLower(runes[0])
		if r == 'x' {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		letters = append(letters, string(r))
	}
	return letters
}

// ShortHelp lists the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Hotkey, k.Exit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}

// eventForKey translates a Bubble Tea key press into an engine event.
// Keys without a binding become character events so the engine can decide
// between hotkey and invalid input.
func (k keyMap) eventForKey(msg tea.KeyMsg) state.Event {
	switch {
	case key.Matches(msg, k.Up):
		return state.Arrow(state.EventUp)
	case key.Matches(msg, k.Down):
		return state.Arrow(state.EventDown)
	case key.Matches(msg, k.Left):
		return state.Arrow(state.EventLeft)
	case key.Matches(msg, k.Right):
		return state.Arrow(state.EventRight)
	case key.Matches(msg, k.Quit):
		return state.Event{Kind: state.EventExit, Raw: msg.String()}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		return state.Rune(msg.Runes[0])
	}
	if msg.Type == tea.KeySpace {
		return state.Rune(' ')
	}
	return state.Event{Kind: state.EventInvalid, Raw: msg.String()}
}
