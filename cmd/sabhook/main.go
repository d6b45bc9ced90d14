package main

import (
	"os"
)

func main() {
	cmd := newRootCommand()
	err := cmd.Execute()
	os.Exit(exitCode(err, os.Stderr))
}
