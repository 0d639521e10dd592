package main

import (
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string
	WorkDir string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		WorkDir: wd,
	}
}
