package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Serve builds the binary and runs the HTTP server with the local config.
// Stop it with Ctrl-C.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "serve")
}
