package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"sabhook/internal/logging"
)

// Exit codes reported to SABnzbd.
const (
	exitOK            = 0
	exitFailure       = 1
	exitConfiguration = 2
	exitInput         = 3
)

// cliError carries the process exit code for an error.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func (e *cliError) Unwrap() error { return e.err }

func configurationError(err error) error {
	return &cliError{code: exitConfiguration, err: err}
}

func inputError(format string, args ...any) error {
	return &cliError{code: exitInput, err: fmt.Errorf(format, args...)}
}

func deliveryError(err error) error {
	return &cliError{code: exitFailure, err: err}
}

// exitCode prints err to w and maps it to a process exit code.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return exitOK
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "ERROR: "+logging.RedactURL(err.Error()))
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitFailure
}
