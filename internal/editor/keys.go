//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// QuitKey is Ctrl-Q: the control form of a letter keeps only its low five bits.
const QuitKey byte = 'q' & 0x1f

// readByte makes one read attempt. ok is false when nothing arrived before
// the read timeout; err is only set for failures worth dying over.
func readByte(r io.Reader) (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := r.Read(buf[:])
	switch {
	case n == 1:
		return buf[0], true, nil
	case err == nil, retryable(err):
		return 0, false, nil
	default:
		return 0, false, err
	}
}

// retryable reports read errors that mean "no data yet". Some platforms
// report the VTIME expiry as EAGAIN instead of a zero-length read.
func retryable(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR)
}

// ReadKey blocks until a single byte is read from r.
func ReadKey(r io.Reader) (byte, error) {
	for {
		b, ok, err := readByte(r)
		if err != nil {
			return 0, &Error{Kind: Input, Op: "read", Err: err}
		}
		if ok {
			return b, nil
		}
	}
}
