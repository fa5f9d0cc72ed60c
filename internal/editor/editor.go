// Package editor abstracts the external text editor.
package editor

import (
	"os"
	"os/exec"
)

// Editor opens a note file for interactive editing and blocks until
// the editor exits.
type Editor interface {
	Open(path string) error
}

// Exec launches the configured editor command attached to the
// terminal.
type Exec struct {
	Command string
}

// NewExec creates an Exec editor for the given command.
func NewExec(command string) *Exec {
	return &Exec{Command: command}
}

// Open runs the editor on path, inheriting stdin/stdout/stderr.
func (e *Exec) Open(path string) error {
	cmd := exec.Command(e.Command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
