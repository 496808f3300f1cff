//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"fmt"
	"os"

	"github.com/islml/tilde/internal/editor"
)

func main() {
	log, closeLog, err := editor.NewLogger(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", editor.LogEnv, err)
		os.Exit(1)
	}

	code := editor.New(editor.OpenTTY(), os.Stderr, log).Run()
	closeLog()
	os.Exit(code)
}
