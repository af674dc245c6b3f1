// Package shell runs external commands on behalf of the CLI.
// Every process getmein spawns goes through a Runner so callers can be
// exercised with a fake in tests.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
)

//go:generate moq -out runner_mock.go . Runner
type Runner interface {
	// Output runs the command and captures what it writes to stdout and stderr.
	Output(ctx context.Context, name string, args ...string) (Result, error)
	// Attached runs the command wired to the terminal, for interactive
	// programs such as ssh or a browser based login.
	Attached(ctx context.Context, name string, args ...string) error
	// LookPath searches for an executable named name in PATH.
	LookPath(name string) (string, error)
}

// Result holds the captured output of a finished command.
type Result struct {
	Stdout string
	Stderr string
}

// ExitError is returned when a command ran but exited with a non-zero status.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("command %s exited with status %d", CommandLine(e.Name, e.Args...), e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// ExitCode returns the status the command exited with.
func (e *ExitError) ExitCode() int { return e.Code }

// Exec is the Runner backed by os/exec.
type Exec struct {
	Logger *logrus.Entry
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Exec wired to the standard streams of the process.
func New(logger *logrus.Entry) *Exec {
	return &Exec{
		Logger: logger,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (e *Exec) Output(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := e.command(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		return res, wrapRunError(name, args, err, res.Stderr)
	}

	e.debug("command finished", logrus.Fields{
		"stdout_bytes": stdout.Len(),
		"stderr_bytes": stderr.Len(),
	})

	return res, nil
}

func (e *Exec) Attached(ctx context.Context, name string, args ...string) error {
	cmd := e.command(ctx, name, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return wrapRunError(name, args, err, "")
	}

	return nil
}

func (e *Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (e *Exec) command(ctx context.Context, name string, args ...string) *exec.Cmd {
	e.debug("Running command: "+CommandLine(name, args...), nil)

	// #nosec G204 - the binary and its arguments are composed by getmein itself.
	return exec.CommandContext(ctx, name, args...)
}

func (e *Exec) debug(msg string, fields logrus.Fields) {
	if e.Logger == nil {
		return
	}
	e.Logger.WithFields(fields).Debug(msg)
}

func wrapRunError(name string, args []string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		// A process killed by a signal reports -1, use the shell convention.
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			code = 128 + int(ws.Signal())
		}
		return &ExitError{
			Name:   name,
			Args:   args,
			Code:   code,
			Stderr: stderr,
		}
	}

	return fmt.Errorf("could not run %s: %w", name, err)
}

// CommandLine renders name and args the way a user would type them,
// quoting arguments that contain whitespace or quotes.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n'\"") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
