package keys

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a non-terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Terminal reads raw, unechoed, unbuffered bytes from a terminal.
type Terminal struct {
	fd    int
	in    *bufio.Reader
	saved *term.State
}

// OpenTerminal switches f into raw mode. Callers must Restore it.
func OpenTerminal(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, in: bufio.NewReader(f), saved: saved}, nil
}

// ReadByte blocks for the next input byte.
func (t *Terminal) ReadByte() (byte, error) {
	return t.in.ReadByte()
}

// UnreadByte returns the last byte read to the input.
func (t *Terminal) UnreadByte() error {
	return t.in.UnreadByte()
}

// Restore returns the terminal to the mode it had before OpenTerminal.
func (t *Terminal) Restore() error {
	if t == nil || t.saved == nil {
		return nil
	}
	err := term.Restore(t.fd, t.saved)
	t.saved = nil
	return err
}
