//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTY is the controlling terminal as seen by the editor: a byte stream plus
// the ioctls for its line discipline and window size.
type TTY interface {
	io.ReadWriter

	IsTerminal() bool
	Termios() (*unix.Termios, error)
	SetTermios(t *unix.Termios) error
	Winsize() (*unix.Winsize, error)
}

type unixTTY struct {
	in  int
	out *os.File
}

// OpenTTY returns the TTY backed by the process's standard input and output.
// Whether standard input really is a terminal is checked on EnterRawMode.
func OpenTTY() TTY {
	return &unixTTY{in: int(os.Stdin.Fd()), out: os.Stdout}
}

func (t *unixTTY) IsTerminal() bool {
	return term.IsTerminal(t.in)
}

// Read goes straight to read(2) so a VTIME expiry shows up as (0, nil)
// instead of the io.EOF that *os.File would turn it into.
func (t *unixTTY) Read(p []byte) (int, error) {
	n, err := unix.Read(t.in, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func (t *unixTTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *unixTTY) Termios() (*unix.Termios, error) {
	return unix.IoctlGetTermios(t.in, ioctlReadTermios)
}

func (t *unixTTY) SetTermios(tio *unix.Termios) error {
	return unix.IoctlSetTermios(t.in, ioctlWriteTermios, tio)
}

func (t *unixTTY) Winsize() (*unix.Winsize, error) {
	return unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
}
