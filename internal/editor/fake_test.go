//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"bytes"
	"errors"

	"golang.org/x/sys/unix"
)

var errScriptDone = errors.New("fake tty: read script exhausted")

type readResult struct {
	b   byte
	n   int
	err error
}

func key(b byte) readResult { return readResult{b: b, n: 1} }
func timeout() readResult { return readResult{} }
func readErr(err error) readResult { return readResult{err: err} }

func script(s string) []readResult {
	rs := make([]readResult, 0, len(s))
	for i := 0; i < len(s); i++ {
		rs = append(rs, key(s[i]))
	}
	return rs
}

// fakeTTY is an in-memory terminal. Reads are served from a script, one
// result per call.
type fakeTTY struct {
	notTerminal bool

	termios    unix.Termios
	termiosErr error
	setErr     error
	setCalls   int

	ws    unix.Winsize
	wsErr error

	reads       []readResult
	panicOnRead bool

	out      bytes.Buffer
	writes   int
	writeErr error
}

func newFakeTTY(rows, cols uint16) *fakeTTY {
	f := &fakeTTY{ws: unix.Winsize{Row: rows, Col: cols}}
	f.termios.Iflag = unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON | unix.IGNPAR
	f.termios.Oflag = unix.OPOST | unix.ONLCR
	f.termios.Cflag = unix.CREAD | unix.CS7 | unix.PARENB
	f.termios.Lflag = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHOE
	f.termios.Cc[unix.VMIN] = 1
	f.termios.Cc[unix.VTIME] = 0
	f.termios.Cc[unix.VINTR] = 3
	return f
}

func (f *fakeTTY) Read(p []byte) (int, error) {
	if f.panicOnRead {
		panic("read exploded")
	}
	if len(f.reads) == 0 {
		return 0, errScriptDone
	}
	r := f.reads[0]
	f.reads = f.reads[1:]
	if r.n == 1 {
		p[0] = r.b
	}
	return r.n, r.err
}

func (f *fakeTTY) Write(p []byte) (int, error) {
	f.writes++
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.out.Write(p)
}

func (f *fakeTTY) IsTerminal() bool {
	return !f.notTerminal
}

func (f *fakeTTY) Termios() (*unix.Termios, error) {
	if f.termiosErr != nil {
		return nil, f.termiosErr
	}
	t := f.termios
	return &t, nil
}

func (f *fakeTTY) SetTermios(t *unix.Termios) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.termios = *t
	return nil
}

func (f *fakeTTY) Winsize() (*unix.Winsize, error) {
	if f.wsErr != nil {
		return nil, f.wsErr
	}
	ws := f.ws
	return &ws, nil
}
