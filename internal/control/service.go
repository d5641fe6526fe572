// SPDX-License-Identifier: GPL-3.0-only

// Package control arbitrates between the external helper utility, the
// native audio interfaces and the WMI scripting bridge, and exposes the
// percent-based operations the rest of the system calls.
//
// Backend precedence is deliberately asymmetric: read operations always use
// the native path (volume) or the bridge (brightness), while mutating
// operations prefer the helper when one is discoverable and fall back
// otherwise. The asymmetry mirrors the command surfaces the backends offer
// and is specified behavior, not an inconsistency.
package control

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/altavoz/hwctl/internal/coreaudio"
	"github.com/altavoz/hwctl/internal/nircmd"
	"github.com/altavoz/hwctl/internal/normalize"
	"github.com/altavoz/hwctl/internal/wmibridge"
)

// defaultDelta is the step applied when a relative adjustment is requested
// without an explicit amount.
const defaultDelta = 5

const (
	// rateLimitPerSecond is the maximum number of hardware mutations per second.
	rateLimitPerSecond = 20

	// rateLimitBurst is the maximum burst size for hardware mutations.
	rateLimitBurst = 5
)

// Service serializes every hardware operation behind a single lock and picks
// a backend per call. Construct one instance at process start; the zero
// value is not usable.
//
// Thread safety: all methods may be called from arbitrary goroutines. The
// lock covers the whole of each public operation, so a read never observes a
// half-applied mutation and two mutations never race. Hardware state has no
// merge semantics; last writer wins under full serialization.
type Service struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	audio   AudioBackend
	bridge  BrightnessBridge
	locate  HelperLocator
}

// Option is a functional option for configuring a Service.
type Option func(*Service)

// WithAudioBackend sets the native audio backend.
func WithAudioBackend(backend AudioBackend) Option {
	return func(s *Service) {
		s.audio = backend
	}
}

// WithBridge sets the brightness scripting bridge.
func WithBridge(bridge BrightnessBridge) Option {
	return func(s *Service) {
		s.bridge = bridge
	}
}

// WithHelperLocator sets a custom helper prober for testing.
func WithHelperLocator(locate HelperLocator) Option {
	return func(s *Service) {
		s.locate = locate
	}
}

// WithRateLimit overrides the mutation rate limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Service) {
		s.limiter = rate.NewLimiter(limit, burst)
	}
}

// New creates a Service. The audio backend must be supplied on platforms
// that have one; without it, native-path operations fail with
// ErrNoAudioBackend.
func New(opts ...Option) *Service {
	s := &Service{
		limiter: rate.NewLimiter(rateLimitPerSecond, rateLimitBurst),
		bridge:  wmibridge.New(),
		locate:  locateHelper,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// locateHelper probes for NirCmd. Probing happens on every call so that a
// helper installed or removed mid-session is picked up without a restart.
func locateHelper() (Helper, bool) {
	path, err := nircmd.NewLocator().Locate()
	if err != nil {
		return nil, false
	}
	return nircmd.New(path), true
}

// NormalizePercent validates and clamps a percent-like value. Re-exported
// so callers can validate input without invoking an operation.
func NormalizePercent(value any) (int, error) {
	return normalize.Percent(value)
}

// NormalizeDelta validates and clamps a delta-like value, substituting
// fallback for nil.
func NormalizeDelta(value any, fallback int) (int, error) {
	return normalize.Delta(value, fallback)
}

// GetVolume reads the default output volume. Reads always use the native
// interface path.
func (s *Service) GetVolume() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volumePercent(coreaudio.Render)
}

// SetVolume sets the default output volume and returns the applied percent.
func (s *Service) SetVolume(percent any) (int, error) {
	value, err := normalize.Percent(percent)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.limiter.Allow() {
		return 0, ErrRateLimited
	}

	if helper, ok := s.locate(); ok {
		if err := helper.SetVolume(value); err != nil {
			log.Error().Err(err).Int("percent", value).Msg("Helper failed to set volume")
			return 0, err
		}
		log.Debug().Int("percent", value).Msg("Set volume via helper")
		return value, nil
	}

	if s.audio == nil {
		return 0, ErrNoAudioBackend
	}
	if err := s.audio.SetVolumeScalar(coreaudio.Render, float32(value)/100); err != nil {
		log.Error().Err(err).Int("percent", value).Msg("Failed to set volume")
		return 0, err
	}
	log.Debug().Int("percent", value).Msg("Set volume")
	return value, nil
}

// VolumeUp raises the default output volume by delta percent (default 5)
// and returns the resulting percent.
func (s *Service) VolumeUp(delta any) (int, error) {
	return s.adjustVolume(delta, 1)
}

// VolumeDown lowers the default output volume by delta percent (default 5)
// and returns the resulting percent.
func (s *Service) VolumeDown(delta any) (int, error) {
	return s.adjustVolume(delta, -1)
}

func (s *Service) adjustVolume(delta any, direction int) (int, error) {
	step, err := normalize.Delta(delta, defaultDelta)
	if err != nil {
		return 0, err
	}
	if step <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveDelta, step)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.limiter.Allow() {
		return 0, ErrRateLimited
	}

	signed := step * direction
	if helper, ok := s.locate(); ok {
		if err := helper.ChangeVolume(signed); err != nil {
			log.Error().Err(err).Int("delta", signed).Msg("Helper failed to adjust volume")
			return 0, err
		}
		// The helper applies the change blindly; read back the result
		// through the native path.
		return s.volumePercent(coreaudio.Render)
	}

	if s.audio == nil {
		return 0, ErrNoAudioBackend
	}
	current, err := s.audio.VolumeScalar(coreaudio.Render)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read volume before adjustment")
		return 0, err
	}
	target := float64(current) + float64(signed)/100
	if target < 0 {
		target = 0
	}
	if target > 1 {
		target = 1
	}
	if err := s.audio.SetVolumeScalar(coreaudio.Render, float32(target)); err != nil {
		log.Error().Err(err).Int("delta", signed).Msg("Failed to adjust volume")
		return 0, err
	}
	result := int(math.Round(target * 100))
	log.Debug().Int("delta", signed).Int("percent", result).Msg("Adjusted volume")
	return result, nil
}

// VolumeMute mutes the default output device.
func (s *Service) VolumeMute() error {
	return s.setMuted(coreaudio.Render, true)
}

// VolumeUnmute unmutes the default output device.
func (s *Service) VolumeUnmute() error {
	return s.setMuted(coreaudio.Render, false)
}

// MicMute mutes the default input device.
func (s *Service) MicMute() error {
	return s.setMuted(coreaudio.Capture, true)
}

// MicUnmute unmutes the default input device.
func (s *Service) MicUnmute() error {
	return s.setMuted(coreaudio.Capture, false)
}

func (s *Service) setMuted(flow coreaudio.Flow, muted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.limiter.Allow() {
		return ErrRateLimited
	}

	if helper, ok := s.locate(); ok {
		if err := helper.SetMuted(flow == coreaudio.Capture, muted); err != nil {
			log.Error().Err(err).Stringer("flow", flow).Bool("muted", muted).Msg("Helper failed to change mute state")
			return err
		}
		return nil
	}

	if s.audio == nil {
		return ErrNoAudioBackend
	}
	if err := s.audio.SetMuted(flow, muted); err != nil {
		log.Error().Err(err).Stringer("flow", flow).Bool("muted", muted).Msg("Failed to change mute state")
		return err
	}
	log.Debug().Stringer("flow", flow).Bool("muted", muted).Msg("Changed mute state")
	return nil
}

// VolumeMuted reports whether the default output device is muted. Reads
// always use the native interface path.
func (s *Service) VolumeMuted() (bool, error) {
	return s.muted(coreaudio.Render)
}

// MicMuted reports whether the default input device is muted.
func (s *Service) MicMuted() (bool, error) {
	return s.muted(coreaudio.Capture)
}

func (s *Service) muted(flow coreaudio.Flow) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.audio == nil {
		return false, ErrNoAudioBackend
	}
	return s.audio.Muted(flow)
}

// GetBrightness reports the first display's brightness. A system that
// reports no brightness-capable display yields ok == false, which is a
// normal absent result, not an error.
func (s *Service) GetBrightness() (percent int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := s.bridge.Brightness()
	if err != nil {
		log.Debug().Err(err).Msg("Brightness unavailable")
		return 0, false
	}
	return value, true
}

// SetBrightness applies a display brightness percent and returns the value
// written.
func (s *Service) SetBrightness(percent any) (int, error) {
	value, err := normalize.Percent(percent)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.limiter.Allow() {
		return 0, ErrRateLimited
	}

	if err := s.applyBrightness(value); err != nil {
		return 0, err
	}
	return value, nil
}

// BrightnessUp raises the display brightness by delta percent (default 5)
// and returns the resulting percent.
func (s *Service) BrightnessUp(delta any) (int, error) {
	return s.adjustBrightness(delta, 1)
}

// BrightnessDown lowers the display brightness by delta percent (default 5)
// and returns the resulting percent.
func (s *Service) BrightnessDown(delta any) (int, error) {
	return s.adjustBrightness(delta, -1)
}

func (s *Service) adjustBrightness(delta any, direction int) (int, error) {
	step, err := normalize.Delta(delta, defaultDelta)
	if err != nil {
		return 0, err
	}
	if step <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveDelta, step)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.limiter.Allow() {
		return 0, ErrRateLimited
	}

	current, err := s.bridge.Brightness()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read brightness before adjustment")
		return 0, err
	}
	target := current + step*direction
	if target < normalize.MinPercent {
		target = normalize.MinPercent
	}
	if target > normalize.MaxPercent {
		target = normalize.MaxPercent
	}
	if err := s.applyBrightness(target); err != nil {
		return 0, err
	}
	return target, nil
}

func (s *Service) applyBrightness(value int) error {
	if helper, ok := s.locate(); ok {
		if err := helper.SetBrightness(value); err != nil {
			log.Error().Err(err).Int("percent", value).Msg("Helper failed to set brightness")
			return err
		}
		log.Debug().Int("percent", value).Msg("Set brightness via helper")
		return nil
	}
	if err := s.bridge.SetBrightness(value); err != nil {
		log.Error().Err(err).Int("percent", value).Msg("Failed to set brightness")
		return err
	}
	log.Debug().Int("percent", value).Msg("Set brightness")
	return nil
}

func (s *Service) volumePercent(flow coreaudio.Flow) (int, error) {
	if s.audio == nil {
		return 0, ErrNoAudioBackend
	}
	scalar, err := s.audio.VolumeScalar(flow)
	if err != nil {
		return 0, err
	}
	return int(math.Round(float64(scalar) * 100)), nil
}
