//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package editor

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogEnv names the file debug logs are appended to. Stdout belongs to the
// screen, so without it nothing is logged.
const LogEnv = "TILDE_LOG"

// NewLogger builds the debug logger from the environment. On success the
// returned close func is never nil.
func NewLogger(getenv func(string) string) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	path := getenv(LogEnv)
	if path == "" {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		return log, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, f.Close, nil
}
