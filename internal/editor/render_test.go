//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestRefreshScreen(t *testing.T) {
	tty := newFakeTTY(3, 80)

	require.NoError(t, RefreshScreen(tty, 3))
	assert.Equal(t, "\x1b[2J\x1b[H~\r\n~\r\n~\x1b[H", tty.out.String())
	assert.Equal(t, 1, tty.writes, "a frame is a single write")
}

func TestRefreshScreenShape(t *testing.T) {
	for _, rows := range []int{1, 2, 24, 100} {
		tty := newFakeTTY(uint16(rows), 80)
		require.NoError(t, RefreshScreen(tty, rows))

		frame := tty.out.String()
		require.True(t, strings.HasPrefix(frame, seqClearScreen+seqCursorHome))
		require.True(t, strings.HasSuffix(frame, "~"+seqCursorHome))

		body := strings.TrimSuffix(strings.TrimPrefix(frame, seqClearScreen+seqCursorHome), seqCursorHome)
		assert.Equal(t, rows, strings.Count(body, "~"))
		assert.Equal(t, rows-1, strings.Count(body, "\r\n"))
		assert.Equal(t, rows, len(strings.Split(body, "\r\n")))
	}
}

func TestRefreshScreenWriteError(t *testing.T) {
	tty := newFakeTTY(3, 80)
	tty.writeErr = unix.EIO

	assert.ErrorIs(t, RefreshScreen(tty, 3), unix.EIO)
}

func TestClearScreen(t *testing.T) {
	tty := newFakeTTY(3, 80)

	require.NoError(t, ClearScreen(tty))
	assert.Equal(t, "\x1b[2J\x1b[H", tty.out.String())
}
