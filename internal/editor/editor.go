//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
)

// Editor is one editing session: the terminal it owns, the raw mode handle
// and the screen size found at startup.
type Editor struct {
	tty  TTY
	diag *termenv.Output
	log  logrus.FieldLogger

	raw        *RawMode
	screenRows int
	screenCols int
}

// New returns an editor for tty. Diagnostics for fatal errors go to diag.
func New(tty TTY, diag io.Writer, log logrus.FieldLogger) *Editor {
	return &Editor{
		tty:  tty,
		diag: termenv.NewOutput(diag),
		log:  log,
	}
}

// Init puts the terminal in raw mode and measures it. If it returns an error
// the terminal may already be raw; Close still restores it.
func (e *Editor) Init() error {
	raw, err := EnterRawMode(e.tty, e.log)
	if err != nil {
		return err
	}
	e.raw = raw

	rows, cols, err := WindowSize(e.tty, e.log)
	if err != nil {
		return err
	}
	e.screenRows, e.screenCols = rows, cols
	e.log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("session ready")
	return nil
}

// ProcessKey waits for one keypress and reports whether it ends the session.
func (e *Editor) ProcessKey() (quit bool, err error) {
	c, err := ReadKey(e.tty)
	if err != nil {
		return false, err
	}
	e.log.WithField("key", c).Debug("keypress")

	switch c {
	case QuitKey:
		return true, nil
	}
	return false, nil
}

// Close clears the screen and gives the terminal back its original mode.
func (e *Editor) Close() error {
	if err := ClearScreen(e.tty); err != nil {
		e.log.WithError(err).Warn("clear screen on exit")
	}
	return e.raw.Restore()
}

// Run drives the session until Ctrl-Q or a fatal error and returns the
// process exit code.
func (e *Editor) Run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("stack", string(debug.Stack())).Error("panic")
			code = e.die(fmt.Errorf("panic: %v", r))
		}
	}()

	if err := e.Init(); err != nil {
		return e.die(err)
	}
	for {
		if err := RefreshScreen(e.tty, e.screenRows); err != nil {
			return e.die(&Error{Kind: Output, Op: "write", Err: err})
		}
		quit, err := e.ProcessKey()
		if err != nil {
			return e.die(err)
		}
		if quit {
			break
		}
	}

	if err := e.Close(); err != nil {
		return e.die(err)
	}
	e.log.Debug("quit")
	return 0
}

// die is the one way out after a fatal error: wipe the screen, restore the
// terminal, then say what failed.
func (e *Editor) die(err error) int {
	e.log.WithError(err).Error("fatal")
	if cerr := e.Close(); cerr != nil {
		e.log.WithError(cerr).Error("restore terminal")
	}

	msg := e.diag.String(err.Error()).Foreground(e.diag.Color("1")).Bold()
	fmt.Fprintln(e.diag, msg)
	return 1
}
