//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// cursorReplyCap bounds the cursor position reply. One byte is held back, so
// at most cursorReplyCap-1 bytes are ever read.
const cursorReplyCap = 32

var errNoColumns = errors.New("window size reports zero columns")

// WindowSize returns the terminal's rows and columns. It trusts TIOCGWINSZ
// only when it reports a nonzero width; otherwise it pushes the cursor into
// the bottom-right corner and asks the terminal where it ended up.
func WindowSize(tty TTY, log logrus.FieldLogger) (rows, cols int, err error) {
	ws, err := tty.Winsize()
	if err == nil && ws.Col != 0 {
		log.WithFields(logrus.Fields{"rows": ws.Row, "cols": ws.Col}).Debug("window size from ioctl")
		return int(ws.Row), int(ws.Col), nil
	}
	if err == nil {
		err = errNoColumns
	}
	log.WithError(err).Debug("window size ioctl unusable, querying cursor position")

	if _, err := io.WriteString(tty, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, &Error{Kind: Geometry, Op: "getWindowSize", Err: err}
	}
	rows, cols, err = cursorPosition(tty)
	if err != nil {
		return 0, 0, err
	}
	log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("window size from cursor position")
	return rows, cols, nil
}

func cursorPosition(rw io.ReadWriter) (rows, cols int, err error) {
	if _, err := io.WriteString(rw, "\x1b[6n"); err != nil {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: err}
	}
	reply, err := readCursorReply(rw)
	if err != nil {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: err}
	}
	return parseCursorReply(reply)
}

// readCursorReply collects the reply up to, not including, the terminating
// 'R'. It gives up on the first empty read, or when the buffer is full, so a
// silent or chatty terminal can't hang startup. A failed read is returned.
func readCursorReply(r io.Reader) ([]byte, error) {
	buf := make([]byte, 0, cursorReplyCap)
	for len(buf) < cursorReplyCap-1 {
		b, ok, err := readByte(r)
		if err != nil {
			return buf, err
		}
		if !ok {
			break
		}
		if b == 'R' {
			break
		}
		buf = append(buf, b)
	}
	return buf, nil
}

// parseCursorReply parses "ESC [ rows ; cols" with the trailing 'R' already
// stripped. Each coordinate must fit a uint16, the same bound TIOCGWINSZ has.
func parseCursorReply(reply []byte) (rows, cols int, err error) {
	body, ok := bytes.CutPrefix(reply, []byte("\x1b["))
	if !ok {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: fmt.Errorf("malformed reply %q", reply)}
	}
	r, c, ok := bytes.Cut(body, []byte(";"))
	if !ok {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: fmt.Errorf("malformed reply %q", reply)}
	}
	r16, err := strconv.ParseUint(string(r), 10, 16)
	if err != nil {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: err}
	}
	c16, err := strconv.ParseUint(string(c), 10, 16)
	if err != nil {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: err}
	}
	rows, cols = int(r16), int(c16)
	if rows == 0 || cols == 0 {
		return 0, 0, &Error{Kind: Geometry, Op: "getCursorPosition", Err: fmt.Errorf("bad size %dx%d", rows, cols)}
	}
	return rows, cols, nil
}
