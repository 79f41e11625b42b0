// Package gitdiff lists the component source files changed against a base reference.
package gitdiff

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const DefaultBaseRef = "origin/main"

var componentExtensions = []string{".tsx", ".jsx"} //nolint:gochecknoglobals

// Executor runs a command in dir and returns its standard output.
type Executor interface {
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

type Lister struct {
	exec    Executor
	baseRef string
	dir     string
}

// New creates a Lister. An empty baseRef means DefaultBaseRef and an empty
// dir means the current directory.
func New(exec Executor, baseRef, dir string) *Lister {
	if baseRef == "" {
		baseRef = DefaultBaseRef
	}
	return &Lister{
		exec:    exec,
		baseRef: baseRef,
		dir:     dir,
	}
}

func (l *Lister) BaseRef() string {
	return l.baseRef
}

// ListChangedFiles returns the .tsx and .jsx files that differ from the base
// reference, in the order git prints them. Deleted files are excluded.
// Paths are relative to dir and files outside dir aren't listed.
// The error of the git command is returned as is; there is no retry.
func (l *Lister) ListChangedFiles(ctx context.Context) ([]string, error) {
	out, err := l.exec.Output(ctx, l.dir, "git", "diff", "--name-only", "--relative", "--diff-filter=d", l.baseRef)
	if err != nil {
		return nil, fmt.Errorf("list changed files: %w", logerr.WithFields(err, logrus.Fields{
			"base_ref": l.baseRef,
		}))
	}
	return filterComponentFiles(out)
}

func filterComponentFiles(out []byte) ([]string, error) {
	files := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		file := strings.TrimSpace(scanner.Text())
		if HasComponentExtension(file) {
			files = append(files, file)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read the output of git diff: %w", err)
	}
	return files, nil
}

// HasComponentExtension reports whether the path ends with .tsx or .jsx.
func HasComponentExtension(p string) bool {
	for _, ext := range componentExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

// CommandExecutor runs commands with os/exec.
type CommandExecutor struct{}

func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

func (e *CommandExecutor) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s: %w", name, logerr.WithFields(err, logrus.Fields{
				"stderr": strings.TrimSpace(string(exitErr.Stderr)),
			}))
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return out, nil
}
