package control

import "errors"

// ErrNonPositiveDelta is returned when a relative adjustment normalizes to
// zero or a negative value where a positive step is required.
var ErrNonPositiveDelta = errors.New("delta must normalize to a positive value")

// ErrNoAudioBackend is returned when an operation needs the native audio
// path but no backend was configured.
var ErrNoAudioBackend = errors.New("no audio backend configured")

// ErrRateLimited is returned when mutating calls exceed the rate limit.
var ErrRateLimited = errors.New("rate limit exceeded")
