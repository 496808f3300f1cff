//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import "io"

const (
	seqClearScreen = "\x1b[2J"
	seqCursorHome  = "\x1b[H"
)

// appendBuf collects a frame so it reaches the terminal in a single write.
type appendBuf struct {
	b []byte
}

func (ab *appendBuf) add(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuf) flush(w io.Writer) error {
	_, err := w.Write(ab.b)
	return err
}

// drawRows draws a tilde on each of the rows. The last row gets no "\r\n" so
// the terminal doesn't scroll.
func drawRows(ab *appendBuf, rows int) {
	for y := 0; y < rows; y++ {
		ab.add("~")
		if y < rows-1 {
			ab.add("\r\n")
		}
	}
}

// RefreshScreen redraws the whole screen and parks the cursor at the top left.
func RefreshScreen(w io.Writer, rows int) error {
	var ab appendBuf
	ab.add(seqClearScreen)
	ab.add(seqCursorHome)
	drawRows(&ab, rows)
	ab.add(seqCursorHome)
	return ab.flush(w)
}

// ClearScreen wipes the display and homes the cursor.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, seqClearScreen+seqCursorHome)
	return err
}
