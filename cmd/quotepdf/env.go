package main

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
}

// DefaultEnv returns the process environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}
