// SPDX-License-Identifier: GPL-3.0-only

// Package wmibridge reaches display brightness through the WMI monitor
// classes via a short-lived PowerShell process. Brightness has no stable
// low-level interface comparable to the audio endpoint volume interface, so
// a scripting bridge is the native-path fallback for it.
package wmibridge

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrUnexpectedOutput is returned when the bridge produced output that does
// not parse as a brightness value. An empty result usually means no
// brightness-capable display is reported.
var ErrUnexpectedOutput = errors.New("unexpected brightness query output")

// defaultTimeout bounds every bridge invocation; PowerShell start-up is the
// dominant latency source.
const defaultTimeout = 4 * time.Second

const (
	shell = "powershell.exe"

	readCommand = "Get-CimInstance -Namespace root/WMI -ClassName WmiMonitorBrightness " +
		"| Select-Object -First 1 -ExpandProperty CurrentBrightness"

	writeCommand = "Get-CimInstance -Namespace root/WMI -ClassName WmiMonitorBrightnessMethods " +
		"| ForEach-Object { $_.WmiSetBrightness(1,%d) } | Out-Null"
)

// Runner executes the scripting shell and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func defaultRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Bridge issues WMI brightness queries and commands.
type Bridge struct {
	timeout time.Duration
	run     Runner
}

// Option is a functional option for configuring a Bridge.
type Option func(*Bridge)

// WithTimeout overrides the per-invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(b *Bridge) {
		b.timeout = d
	}
}

// WithRunner sets a custom process runner for testing.
func WithRunner(fn Runner) Option {
	return func(b *Bridge) {
		b.run = fn
	}
}

// New creates a Bridge.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		timeout: defaultTimeout,
		run:     defaultRunner,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bridge) query(command string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	out, err := b.run(ctx, shell, "-NoProfile", "-Command", command)
	if err == nil {
		return string(out), nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("brightness bridge: %w", ctxErr)
	}
	if trimmed := strings.TrimSpace(string(out)); trimmed != "" {
		return "", fmt.Errorf("brightness bridge: %w (%s)", err, trimmed)
	}
	return "", fmt.Errorf("brightness bridge: %w", err)
}

// Brightness reads the first reported display's brightness percent.
func (b *Bridge) Brightness() (int, error) {
	out, err := b.query(readCommand)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(out)
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnexpectedOutput, text)
	}
	return value, nil
}

// SetBrightness applies percent to every brightness-capable display.
func (b *Bridge) SetBrightness(percent int) error {
	_, err := b.query(fmt.Sprintf(writeCommand, percent))
	return err
}
