// Package resolver abstracts interactive path selection behind a small
// capability interface so the processing pipeline never depends on how
// paths are chosen.
package resolver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	apperrors "sjcli/internal/errors"
)

// PathResolver resolves the input and output paths of one run.
// Implementations return "" (with a nil error) when nothing was chosen.
type PathResolver interface {
	// ResolveInput returns the path of the source file or directory.
	ResolveInput() (string, error)
	// ResolveOutput returns the report destination. defaultName is the
	// suggested file name; "" means the user cancelled the save.
	ResolveOutput(defaultName string) (string, error)
}

// PromptResolver asks for paths on an interactive terminal: prompts are
// written to out (stderr), answers read line-wise from in (stdin). It is
// the stand-in for the file dialogs a desktop environment would offer.
type PromptResolver struct {
	in          *bufio.Reader
	out         io.Writer
	interactive func() bool
}

// NewPromptResolver returns a resolver bound to the process's stdin/stderr.
func NewPromptResolver() *PromptResolver {
	return &PromptResolver{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stderr,
		interactive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// ResolveInput prompts for the source path. Without a terminal attached it
// fails with a MISSING_DEPENDENCY error instructing the caller to pass the
// path explicitly.
func (r *PromptResolver) ResolveInput() (string, error) {
	if !r.interactive() {
		return "", apperrors.NewMissingDependencyError(
			"no interactive terminal available; pass the input path with -in")
	}
	fmt.Fprint(r.out, "Select an Excel file (must start with 'Sales Journal for ') or a folder containing such files: ")
	return r.readLine()
}

// ResolveOutput prompts for the report destination. A blank answer accepts
// defaultName; a single "-" cancels the save (returned as "").
func (r *PromptResolver) ResolveOutput(defaultName string) (string, error) {
	if !r.interactive() {
		return "", apperrors.NewMissingDependencyError(
			"no interactive terminal available; pass the output path with -out")
	}
	fmt.Fprintf(r.out, "Save report as [%s] ('-' to cancel): ", defaultName)
	answer, err := r.readLine()
	if err != nil {
		return "", err
	}
	switch answer {
	case "":
		return defaultName, nil
	case "-":
		return "", nil
	}
	return answer, nil
}

func (r *PromptResolver) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read selection: %w", err)
	}
	return strings.TrimSpace(line), nil
}
