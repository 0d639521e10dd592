package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/alnah/go-md2html"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if _, err := run(os.Args, DefaultEnv(), md2html.New()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
