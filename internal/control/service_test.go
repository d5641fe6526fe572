// SPDX-License-Identifier: GPL-3.0-only

package control_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/altavoz/hwctl/internal/control"
	"github.com/altavoz/hwctl/internal/control/mocks"
	"github.com/altavoz/hwctl/internal/coreaudio"
	"github.com/altavoz/hwctl/internal/normalize"
)

// fakeAudio is an in-memory audio backend with per-flow volume and mute
// state, stands in for the native interface path.
type fakeAudio struct {
	mu     sync.Mutex
	volume map[coreaudio.Flow]float32
	muted  map[coreaudio.Flow]bool
}

func newFakeAudio(initial float32) *fakeAudio {
	return &fakeAudio{
		volume: map[coreaudio.Flow]float32{coreaudio.Render: initial, coreaudio.Capture: initial},
		muted:  map[coreaudio.Flow]bool{},
	}
}

func (f *fakeAudio) VolumeScalar(flow coreaudio.Flow) (float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.volume[flow], nil
}

func (f *fakeAudio) SetVolumeScalar(flow coreaudio.Flow, level float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volume[flow] = level
	return nil
}

func (f *fakeAudio) Muted(flow coreaudio.Flow) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted[flow], nil
}

func (f *fakeAudio) SetMuted(flow coreaudio.Flow, muted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted[flow] = muted
	return nil
}

func noHelper() (control.Helper, bool) {
	return nil, false
}

func withHelper(h control.Helper) control.HelperLocator {
	return func() (control.Helper, bool) {
		return h, true
	}
}

// newNativeService wires a service that has no helper and a generous rate
// limit, the configuration most property tests want.
func newNativeService(audio control.AudioBackend) *control.Service {
	return control.New(
		control.WithAudioBackend(audio),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)
}

func TestSetVolume_Idempotent(t *testing.T) {
	for _, percent := range []int{0, 1, 37, 50, 99, 100} {
		audio := newFakeAudio(0.5)
		svc := newNativeService(audio)

		first, err := svc.SetVolume(percent)
		require.NoError(t, err)
		second, err := svc.SetVolume(percent)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		got, err := svc.GetVolume()
		require.NoError(t, err)
		assert.Equal(t, percent, got, "setting %d%% twice must read back as one set", percent)
	}
}

func TestVolumeUpDown_RoundTrip(t *testing.T) {
	for _, delta := range []int{1, 5, 17, 50} {
		audio := newFakeAudio(0.40)
		svc := newNativeService(audio)

		before, err := svc.GetVolume()
		require.NoError(t, err)

		_, err = svc.VolumeUp(delta)
		require.NoError(t, err)
		after, err := svc.VolumeDown(delta)
		require.NoError(t, err)

		assert.InDelta(t, before, after, 1, "up %d then down %d must return within rounding tolerance", delta, delta)
	}
}

func TestVolumeUp_ClampsAtFullScale(t *testing.T) {
	svc := newNativeService(newFakeAudio(0.98))

	result, err := svc.VolumeUp(20)
	require.NoError(t, err)
	assert.Equal(t, 100, result)
}

func TestVolumeDown_ClampsAtZero(t *testing.T) {
	svc := newNativeService(newFakeAudio(0.03))

	result, err := svc.VolumeDown(20)
	require.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestVolumeUp_DefaultDelta(t *testing.T) {
	svc := newNativeService(newFakeAudio(0.40))

	result, err := svc.VolumeUp(nil)
	require.NoError(t, err)
	assert.Equal(t, 45, result)
}

func TestMuteIndependence(t *testing.T) {
	audio := newFakeAudio(0.63)
	svc := newNativeService(audio)

	before, err := svc.GetVolume()
	require.NoError(t, err)

	require.NoError(t, svc.VolumeMute())
	muted, err := svc.VolumeMuted()
	require.NoError(t, err)
	assert.True(t, muted)

	require.NoError(t, svc.VolumeUnmute())
	muted, err = svc.VolumeMuted()
	require.NoError(t, err)
	assert.False(t, muted)

	after, err := svc.GetVolume()
	require.NoError(t, err)
	assert.Equal(t, before, after, "mute and unmute must not disturb the volume level")
}

func TestMicMute_UsesCaptureFlow(t *testing.T) {
	audio := newFakeAudio(0.5)
	svc := newNativeService(audio)

	require.NoError(t, svc.MicMute())

	micMuted, err := svc.MicMuted()
	require.NoError(t, err)
	assert.True(t, micMuted)

	outMuted, err := svc.VolumeMuted()
	require.NoError(t, err)
	assert.False(t, outMuted, "muting the microphone must not touch the output device")
}

func TestVolumeAdjust_RejectsNonPositiveDelta(t *testing.T) {
	svc := newNativeService(newFakeAudio(0.5))

	_, err := svc.VolumeUp(0)
	assert.ErrorIs(t, err, control.ErrNonPositiveDelta)

	_, err = svc.VolumeDown(-5)
	assert.ErrorIs(t, err, control.ErrNonPositiveDelta)
}

func TestSetVolume_RejectsInvalidInput(t *testing.T) {
	svc := newNativeService(newFakeAudio(0.5))

	for _, value := range []any{"abc", struct{}{}, nil} {
		_, err := svc.SetVolume(value)
		assert.ErrorIs(t, err, normalize.ErrNotANumber)
	}
}

func TestSetVolume_NormalizesInput(t *testing.T) {
	svc := newNativeService(newFakeAudio(0.5))

	applied, err := svc.SetVolume("150")
	require.NoError(t, err)
	assert.Equal(t, 100, applied)

	applied, err = svc.SetVolume(33.6)
	require.NoError(t, err)
	assert.Equal(t, 34, applied)
}

func TestVolumeOps_FallBackToNativeWhenHelperAbsent(t *testing.T) {
	// Forcing helper discovery to report "not found" must leave every
	// mutating operation working through the native path.
	audio := newFakeAudio(0.20)
	svc := newNativeService(audio)

	applied, err := svc.SetVolume(70)
	require.NoError(t, err)
	assert.Equal(t, 70, applied)

	result, err := svc.VolumeUp(10)
	require.NoError(t, err)
	assert.Equal(t, 80, result)

	require.NoError(t, svc.VolumeMute())
	require.NoError(t, svc.VolumeUnmute())
	require.NoError(t, svc.MicMute())
	require.NoError(t, svc.MicUnmute())
}

func TestMutatingOps_PreferHelper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	helper := mocks.NewMockHelper(ctrl)
	helper.EXPECT().SetVolume(70).Return(nil)
	helper.EXPECT().SetMuted(false, true).Return(nil)
	helper.EXPECT().SetMuted(true, false).Return(nil)
	helper.EXPECT().SetBrightness(55).Return(nil)

	// No expectations on the audio backend for mutations: any write through
	// the native path fails the test.
	audio := mocks.NewMockAudioBackend(ctrl)

	svc := control.New(
		control.WithAudioBackend(audio),
		control.WithHelperLocator(withHelper(helper)),
		control.WithRateLimit(rate.Inf, 0),
	)

	_, err := svc.SetVolume(70)
	require.NoError(t, err)
	require.NoError(t, svc.VolumeMute())
	require.NoError(t, svc.MicUnmute())
	_, err = svc.SetBrightness(55)
	require.NoError(t, err)
}

func TestGetVolume_AlwaysNative(t *testing.T) {
	// Reads use the native path even when a helper is discoverable.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	helper := mocks.NewMockHelper(ctrl)

	svc := control.New(
		control.WithAudioBackend(newFakeAudio(0.42)),
		control.WithHelperLocator(withHelper(helper)),
		control.WithRateLimit(rate.Inf, 0),
	)

	got, err := svc.GetVolume()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestVolumeUp_HelperAppliesThenNativeReadsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	helper := mocks.NewMockHelper(ctrl)
	audio := newFakeAudio(0.45)
	helper.EXPECT().ChangeVolume(5).DoAndReturn(func(delta int) error {
		// The helper mutates hardware state out of band.
		return audio.SetVolumeScalar(coreaudio.Render, 0.50)
	})

	svc := control.New(
		control.WithAudioBackend(audio),
		control.WithHelperLocator(withHelper(helper)),
		control.WithRateLimit(rate.Inf, 0),
	)

	result, err := svc.VolumeUp(5)
	require.NoError(t, err)
	assert.Equal(t, 50, result)
}

func TestHelperFailure_Propagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("exit status 1")
	helper := mocks.NewMockHelper(ctrl)
	helper.EXPECT().SetVolume(30).Return(boom)

	svc := control.New(
		control.WithAudioBackend(newFakeAudio(0.5)),
		control.WithHelperLocator(withHelper(helper)),
		control.WithRateLimit(rate.Inf, 0),
	)

	_, err := svc.SetVolume(30)
	assert.ErrorIs(t, err, boom)
}

func TestNoAudioBackend(t *testing.T) {
	svc := control.New(
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	_, err := svc.GetVolume()
	assert.ErrorIs(t, err, control.ErrNoAudioBackend)

	_, err = svc.SetVolume(50)
	assert.ErrorIs(t, err, control.ErrNoAudioBackend)

	err = svc.MicMute()
	assert.ErrorIs(t, err, control.ErrNoAudioBackend)
}

func TestRateLimit(t *testing.T) {
	svc := control.New(
		control.WithAudioBackend(newFakeAudio(0.5)),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Limit(1), 1),
	)

	_, err := svc.SetVolume(10)
	require.NoError(t, err)

	_, err = svc.SetVolume(20)
	assert.ErrorIs(t, err, control.ErrRateLimited)

	// Reads are not rate limited.
	_, err = svc.GetVolume()
	assert.NoError(t, err)
}

func TestGetBrightness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bridge := mocks.NewMockBrightnessBridge(ctrl)
	bridge.EXPECT().Brightness().Return(65, nil)

	svc := control.New(
		control.WithBridge(bridge),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	value, ok := svc.GetBrightness()
	assert.True(t, ok)
	assert.Equal(t, 65, value)
}

func TestGetBrightness_AbsentWhenNoCapableDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bridge := mocks.NewMockBrightnessBridge(ctrl)
	bridge.EXPECT().Brightness().Return(0, errors.New("unexpected brightness query output"))

	svc := control.New(
		control.WithBridge(bridge),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	_, ok := svc.GetBrightness()
	assert.False(t, ok, "a system without a brightness-capable display reports absent, not an error")
}

func TestSetBrightness_UsesBridgeWhenHelperAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bridge := mocks.NewMockBrightnessBridge(ctrl)
	bridge.EXPECT().SetBrightness(80).Return(nil)

	svc := control.New(
		control.WithBridge(bridge),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	applied, err := svc.SetBrightness("80")
	require.NoError(t, err)
	assert.Equal(t, 80, applied)
}

func TestSetBrightness_RejectsInvalidInput(t *testing.T) {
	svc := control.New(
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	_, err := svc.SetBrightness("bright")
	assert.ErrorIs(t, err, normalize.ErrNotANumber)
}

func TestBrightnessUp_ClampsAtFullScale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bridge := mocks.NewMockBrightnessBridge(ctrl)
	bridge.EXPECT().Brightness().Return(95, nil)
	bridge.EXPECT().SetBrightness(100).Return(nil)

	svc := control.New(
		control.WithBridge(bridge),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	result, err := svc.BrightnessUp(20)
	require.NoError(t, err)
	assert.Equal(t, 100, result)
}

func TestBrightnessDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bridge := mocks.NewMockBrightnessBridge(ctrl)
	bridge.EXPECT().Brightness().Return(50, nil)
	bridge.EXPECT().SetBrightness(40).Return(nil)

	svc := control.New(
		control.WithBridge(bridge),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	result, err := svc.BrightnessDown(10)
	require.NoError(t, err)
	assert.Equal(t, 40, result)
}

func TestBrightnessAdjust_RejectsNonPositiveDelta(t *testing.T) {
	svc := control.New(
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	_, err := svc.BrightnessUp(0)
	assert.ErrorIs(t, err, control.ErrNonPositiveDelta)

	_, err = svc.BrightnessDown("-3")
	assert.ErrorIs(t, err, control.ErrNonPositiveDelta)
}

func TestNormalizePercent_Reexport(t *testing.T) {
	value, err := control.NormalizePercent("80")
	require.NoError(t, err)
	assert.Equal(t, 80, value)

	_, err = control.NormalizePercent("abc")
	assert.ErrorIs(t, err, normalize.ErrNotANumber)

	value, err = control.NormalizeDelta(nil, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

// overlapAudio flags any two backend calls whose critical sections overlap.
// The service's lock must make that impossible.
type overlapAudio struct {
	active   atomic.Int32
	overlaps atomic.Int32
	volume   atomic.Value // float32
	muted    atomic.Bool
}

func newOverlapAudio() *overlapAudio {
	o := &overlapAudio{}
	o.volume.Store(float32(0.5))
	return o
}

func (o *overlapAudio) enter() {
	if o.active.Add(1) != 1 {
		o.overlaps.Add(1)
	}
	time.Sleep(time.Millisecond)
}

func (o *overlapAudio) leave() {
	o.active.Add(-1)
}

func (o *overlapAudio) VolumeScalar(coreaudio.Flow) (float32, error) {
	o.enter()
	defer o.leave()
	return o.volume.Load().(float32), nil
}

func (o *overlapAudio) SetVolumeScalar(_ coreaudio.Flow, level float32) error {
	o.enter()
	defer o.leave()
	o.volume.Store(level)
	return nil
}

func (o *overlapAudio) Muted(coreaudio.Flow) (bool, error) {
	o.enter()
	defer o.leave()
	return o.muted.Load(), nil
}

func (o *overlapAudio) SetMuted(_ coreaudio.Flow, muted bool) error {
	o.enter()
	defer o.leave()
	o.muted.Store(muted)
	return nil
}

func TestSerialization(t *testing.T) {
	audio := newOverlapAudio()
	svc := control.New(
		control.WithAudioBackend(audio),
		control.WithHelperLocator(noHelper),
		control.WithRateLimit(rate.Inf, 0),
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				switch (n + j) % 4 {
				case 0:
					_, _ = svc.SetVolume(30 + n)
				case 1:
					_, _ = svc.GetVolume()
				case 2:
					_, _ = svc.VolumeUp(1)
				case 3:
					_ = svc.VolumeMute()
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, audio.overlaps.Load(), "no two critical sections may overlap")
}
