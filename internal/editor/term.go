//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// readTimeout is VTIME in tenths of a second: a read with nothing pending
// returns empty after 100ms.
const readTimeout = 1

// RawMode is the handle returned by EnterRawMode. It owns the discipline the
// terminal had before raw mode and puts it back on Restore.
type RawMode struct {
	tty      TTY
	orig     unix.Termios
	log      logrus.FieldLogger
	restored bool
}

// EnterRawMode captures the terminal's current discipline and switches it to
// raw mode. The caller must Restore the returned handle on every exit path.
func EnterRawMode(tty TTY, log logrus.FieldLogger) (*RawMode, error) {
	if !tty.IsTerminal() {
		return nil, &Error{Kind: TerminalQuery, Op: "tcgetattr", Err: unix.ENOTTY}
	}
	orig, err := tty.Termios()
	if err != nil {
		return nil, &Error{Kind: TerminalQuery, Op: "tcgetattr", Err: err}
	}

	r := &RawMode{tty: tty, orig: *orig, log: log}
	raw := makeRaw(r.orig)
	if err := tty.SetTermios(&raw); err != nil {
		return nil, &Error{Kind: TerminalConfig, Op: "tcsetattr", Err: err}
	}

	log.WithFields(logrus.Fields{
		"iflag": r.orig.Iflag,
		"oflag": r.orig.Oflag,
		"cflag": r.orig.Cflag,
		"lflag": r.orig.Lflag,
	}).Debug("entered raw mode")
	return r, nil
}

// Restore reapplies the captured discipline. Only the first successful call
// touches the terminal.
func (r *RawMode) Restore() error {
	if r == nil || r.restored {
		return nil
	}
	orig := r.orig
	if err := r.tty.SetTermios(&orig); err != nil {
		return &Error{Kind: TerminalConfig, Op: "tcsetattr", Err: err}
	}
	r.restored = true
	r.log.Debug("restored terminal mode")
	return nil
}

// makeRaw derives the raw discipline from orig. orig is taken by value and
// left untouched.
func makeRaw(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeout
	return raw
}
