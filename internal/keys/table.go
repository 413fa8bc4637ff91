package keys

import (
	"fmt"
	"strings"

	"github.com/atomicstack/ringmenu/internal/ui/state"
)

// Table maps an arrow key sequence to directions. An arrow arrives as Prefix,
// then one of Separators when the table has any, then a direction byte.
type Table struct {
	Name       string
	Prefix     byte
	Separators []byte
	Up         byte
	Down       byte
	Left       byte
	Right      byte
}

var (
	// ANSI is the escape-sequence convention of POSIX terminals in raw mode.
	// 'O' covers application cursor mode.
	ANSI = Table{
		Name:       "ansi",
		Prefix:     0x1b,
		Separators: []byte{'[', 'O'},
		Up:         'A',
		Down:       'B',
		Right:      'C',
		Left:       'D',
	}
	// Conio is the getch convention of the Windows console: a 0xE0 prefix
	// followed by a scan code.
	Conio = Table{
		Name:   "conio",
		Prefix: 0xe0,
		Up:     72,
		Down:   80,
		Left:   75,
		Right:  77,
	}
)

// Default is used when no table is named. Raw mode from x/term turns on VT
// input on Windows consoles too, so arrows arrive as ANSI sequences on every
// platform. Conio is for byte sources that replay getch-style scan codes.
var Default = ANSI

// TableByName resolves a table by name. An empty name selects Default.
func TableByName(name string) (Table, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Default, nil
	case ANSI.Name:
		return ANSI, nil
	case Conio.Name:
		return Conio, nil
	}
	return Table{}, fmt.Errorf("unknown key table %q", name)
}

func (t Table) separator(b byte) bool {
	for _, sep := range t.Separators {
		if sep == b {
			return true
		}
	}
	return false
}

func (t Table) direction(b byte) (state.EventKind, bool) {
	switch b {
	case t.Up:
		return state.EventUp, true
	case t.Down:
		return state.EventDown, true
	case t.Left:
		return state.EventLeft, true
	case t.Right:
		return state.EventRight, true
	}
	return state.EventInvalid, false
}
