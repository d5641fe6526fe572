// SPDX-License-Identifier: GPL-3.0-only

// Package normalize is the single source of truth for the percent and delta
// range policy. Every public hardware-control operation routes its numeric
// input and output through these functions.
package normalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinPercent is the lowest caller-facing percent value.
	MinPercent = 0

	// MaxPercent is the highest caller-facing percent value.
	MaxPercent = 100

	// MinDelta is the largest downward relative adjustment.
	MinDelta = -100

	// MaxDelta is the largest upward relative adjustment.
	MaxDelta = 100
)

// ErrNotANumber is returned when a value cannot be interpreted as a finite
// number. NaN and infinities are rejected, not clamped.
var ErrNotANumber = errors.New("value is not a finite number")

// Percent interprets value as a number, rounds to the nearest integer and
// clamps the result to [0, 100]. Strings are parsed as decimal numbers.
func Percent(value any) (int, error) {
	f, err := toFloat(value)
	if err != nil {
		return 0, err
	}
	return clamp(int(math.Round(f)), MinPercent, MaxPercent), nil
}

// Delta interprets value as a signed relative adjustment clamped to
// [-100, 100]. A nil value yields fallback.
func Delta(value any, fallback int) (int, error) {
	if value == nil {
		return fallback, nil
	}
	f, err := toFloat(value)
	if err != nil {
		return 0, err
	}
	return clamp(int(math.Round(f)), MinDelta, MaxDelta), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toFloat(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, v)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotANumber, value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, f)
	}
	return f, nil
}
