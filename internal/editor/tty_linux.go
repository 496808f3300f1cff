package editor

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// TCSETSF drains output and discards pending input, like TCSAFLUSH.
	ioctlWriteTermios = unix.TCSETSF
)
