// SPDX-License-Identifier: GPL-3.0-only

// Package nircmd shells out to the optional NirCmd helper utility. The
// helper offers an already-percent-scaled command surface for volume and
// brightness changes; its absence is a backend-selection signal for the
// caller, never an error by itself.
package nircmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when the helper executable cannot be located.
var ErrNotFound = errors.New("nircmd.exe not found")

const executableName = "nircmd.exe"

// fullScale is NirCmd's native volume unit for 100%.
const fullScale = 65535

// defaultTimeout bounds every helper invocation. An unresponsive helper must
// not hang the caller indefinitely.
const defaultTimeout = 3 * time.Second

// Locator probes for the helper executable on the search path, next to the
// running binary, and one directory above it. Lookup functions are
// injectable for tests.
type Locator struct {
	lookPath   func(file string) (string, error)
	executable func() (string, error)
	stat       func(name string) (os.FileInfo, error)
}

// LocatorOption is a functional option for configuring a Locator.
type LocatorOption func(*Locator)

// WithLookPath sets a custom search-path lookup for testing.
func WithLookPath(fn func(file string) (string, error)) LocatorOption {
	return func(l *Locator) {
		l.lookPath = fn
	}
}

// WithExecutable sets a custom own-binary resolver for testing.
func WithExecutable(fn func() (string, error)) LocatorOption {
	return func(l *Locator) {
		l.executable = fn
	}
}

// WithStat sets a custom file prober for testing.
func WithStat(fn func(name string) (os.FileInfo, error)) LocatorOption {
	return func(l *Locator) {
		l.stat = fn
	}
}

// NewLocator creates a helper locator.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		lookPath:   exec.LookPath,
		executable: os.Executable,
		stat:       os.Stat,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the helper path, or ErrNotFound when no candidate exists.
func (l *Locator) Locate() (string, error) {
	if path, err := l.lookPath(executableName); err == nil {
		return path, nil
	}
	exe, err := l.executable()
	if err != nil {
		return "", ErrNotFound
	}
	dir := filepath.Dir(exe)
	candidates := []string{
		filepath.Join(dir, executableName),
		filepath.Join(filepath.Dir(dir), executableName),
	}
	for _, candidate := range candidates {
		if _, err := l.stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

// Runner executes the helper and returns its combined output.
type Runner func(ctx context.Context, path string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, path string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, path, args...).CombinedOutput()
}

// Tool is one located helper executable together with its command surface.
type Tool struct {
	path    string
	timeout time.Duration
	run     Runner
}

// Option is a functional option for configuring a Tool.
type Option func(*Tool)

// WithTimeout overrides the per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *Tool) {
		t.timeout = d
	}
}

// WithRunner sets a custom process runner for testing.
func WithRunner(fn Runner) Option {
	return func(t *Tool) {
		t.run = fn
	}
}

// New wraps the helper executable at path.
func New(path string, opts ...Option) *Tool {
	t := &Tool{
		path:    path,
		timeout: defaultTimeout,
		run:     defaultRunner,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Path returns the location of the wrapped executable.
func (t *Tool) Path() string {
	return t.path
}

func (t *Tool) exec(args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	out, err := t.run(ctx, t.path, args...)
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("nircmd %s: %w", args[0], ctxErr)
	}
	if trimmed := strings.TrimSpace(string(out)); trimmed != "" {
		return fmt.Errorf("nircmd %s: %w (%s)", args[0], err, trimmed)
	}
	return fmt.Errorf("nircmd %s: %w", args[0], err)
}

// PercentToStep converts a caller-facing percent (or signed percent delta)
// to NirCmd's 0-65535 volume scale.
func PercentToStep(percent int) int {
	return percent * fullScale / 100
}

// SetVolume sets the master volume to percent of full scale.
func (t *Tool) SetVolume(percent int) error {
	return t.exec("setsysvolume", strconv.Itoa(PercentToStep(percent)))
}

// ChangeVolume adjusts the master volume by a signed percent delta.
func (t *Tool) ChangeVolume(delta int) error {
	return t.exec("changesysvolume", strconv.Itoa(PercentToStep(delta)))
}

// SetMuted mutes or unmutes the default output device, or the default
// microphone when mic is set.
func (t *Tool) SetMuted(mic, muted bool) error {
	flag := "0"
	if muted {
		flag = "1"
	}
	args := []string{"mutesysvolume", flag}
	if mic {
		args = append(args, "microphone")
	}
	return t.exec(args...)
}

// SetBrightness sets the display brightness to percent.
func (t *Tool) SetBrightness(percent int) error {
	return t.exec("setbrightness", strconv.Itoa(percent))
}
