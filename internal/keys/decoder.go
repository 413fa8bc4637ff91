// Package keys turns raw terminal bytes into logical key events.
package keys

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/atomicstack/ringmenu/internal/logging/events"
	"github.com/atomicstack/ringmenu/internal/ui/state"
)

const ctrlC = 0x03

// Decoder reads one logical key per call from a byte stream.
type Decoder struct {
	r     io.ByteReader
	table Table
}

// NewDecoder decodes bytes from r using table.
func NewDecoder(r io.ByteReader, table Table) *Decoder {
	return &Decoder{r: r, table: table}
}

// Table returns the code table in use.
func (d *Decoder) Table() Table {
	return d.table
}

// Next blocks until a full key has been read. Read errors are returned as-is;
// malformed sequences are reported as EventInvalid, not as errors.
func (d *Decoder) Next() (state.Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return state.Event{}, err
	}
	if b == d.table.Prefix {
		return d.arrow(b)
	}
	if b == ctrlC {
		return state.Event{Kind: state.EventExit, Rune: ctrlC, Raw: state.Printable(ctrlC)}, nil
	}
	if b >= utf8.RuneSelf {
		return d.multibyte(b)
	}
	return state.Rune(rune(b)), nil
}

// multibyte completes a UTF-8 encoded rune whose leading byte is lead.
func (d *Decoder) multibyte(lead byte) (state.Event, error) {
	seq := []byte{lead}
	for n := utf8Len(lead); len(seq) < n; {
		b, err := d.r.ReadByte()
		if err != nil {
			return state.Event{}, err
		}
		if !utf8.RuneStart(b) {
			seq = append(seq, b)
			continue
		}
		// A new rune started early; leave it for the next call.
		if d.unread() {
			break
		}
		seq = append(seq, b)
		break
	}
	r, size := utf8.DecodeRune(seq)
	if r == utf8.RuneError && size <= 1 {
		return d.malformed(seq), nil
	}
	return state.Rune(r), nil
}

func utf8Len(lead byte) int {
	switch {
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	}
	return 1
}

// unread pushes the last byte back when the source supports it.
func (d *Decoder) unread() bool {
	s, ok := d.r.(io.ByteScanner)
	if !ok {
		return false
	}
	return s.UnreadByte() == nil
}

func (d *Decoder) arrow(prefix byte) (state.Event, error) {
	seq := []byte{prefix}
	b, err := d.r.ReadByte()
	if err != nil {
		return state.Event{}, err
	}
	if len(d.table.Separators) > 0 {
		if !d.table.separator(b) {
			// A lone prefix key. The byte after it is a key of its own.
			if d.unread() {
				return d.malformed(seq), nil
			}
			return d.malformed(append(seq, b)), nil
		}
		seq = append(seq, b)
		if b, err = d.r.ReadByte(); err != nil {
			return state.Event{}, err
		}
	}
	seq = append(seq, b)
	kind, ok := d.table.direction(b)
	if !ok {
		return d.malformed(seq), nil
	}
	return state.Arrow(kind), nil
}

func (d *Decoder) malformed(seq []byte) state.Event {
	events.Input.Malformed(d.table.Name, seq)
	raw := ""
	for _, b := range seq {
		if b >= utf8.RuneSelf {
			raw += fmt.Sprintf("\\x%02x", b)
			continue
		}
		raw += state.Printable(rune(b))
	}
	return state.Event{Kind: state.EventInvalid, Rune: rune(seq[0]), Raw: raw}
}
