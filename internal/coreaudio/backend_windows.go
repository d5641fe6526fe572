// SPDX-License-Identifier: GPL-3.0-only

//go:build windows

package coreaudio

import (
	"fmt"
	"runtime"

	"github.com/moutend/go-wca/pkg/wca"
)

// Backend performs volume and mute operations against the default audio
// endpoints. It holds no state: the default device can change between calls
// (a USB headset plugging in), so every operation resolves it fresh.
type Backend struct{}

// New returns a Backend for the local machine's audio endpoints.
func New() Backend {
	return Backend{}
}

func flowValue(f Flow) uint32 {
	if f == Capture {
		return wca.ECapture
	}
	return wca.ERender
}

// withEndpointVolume runs fn against a freshly activated volume interface on
// the default endpoint for flow. The apartment is entered for the scope of
// the call and every handle acquired on the way in is released on every exit
// path, including error paths.
func withEndpointVolume(flow Flow, fn func(*IAudioEndpointVolume) error) error {
	// Apartments are per OS thread; keep the goroutine pinned for the scope.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	leave, err := enterApartment()
	if err != nil {
		return err
	}
	defer leave()

	var enumerator *wca.IMMDeviceEnumerator
	if err := wca.CoCreateInstance(CLSID_MMDeviceEnumerator, 0, wca.CLSCTX_ALL, IID_IMMDeviceEnumerator, &enumerator); err != nil {
		return fmt.Errorf("%w: create device enumerator: %v", ErrApartment, err)
	}
	defer enumerator.Release()

	var device *wca.IMMDevice
	if err := enumerator.GetDefaultAudioEndpoint(flowValue(flow), wca.EConsole, &device); err != nil {
		return fmt.Errorf("%w for %s flow: %v", ErrNoDevice, flow, err)
	}
	defer device.Release()

	var endpoint *IAudioEndpointVolume
	if err := device.Activate(IID_IAudioEndpointVolume, wca.CLSCTX_ALL, nil, &endpoint); err != nil {
		return fmt.Errorf("activate endpoint volume (%s): %w", flow, err)
	}
	defer endpoint.Release()

	return fn(endpoint)
}

// VolumeScalar reads the master volume of the default endpoint for flow in
// its native [0.0, 1.0] unit.
func (Backend) VolumeScalar(flow Flow) (float32, error) {
	var level float32
	err := withEndpointVolume(flow, func(v *IAudioEndpointVolume) error {
		return v.GetMasterVolumeLevelScalar(&level)
	})
	return level, err
}

// SetVolumeScalar writes the master volume of the default endpoint for flow.
// The level is clamped to [0.0, 1.0] before it reaches the interface.
func (Backend) SetVolumeScalar(flow Flow, level float32) error {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return withEndpointVolume(flow, func(v *IAudioEndpointVolume) error {
		return v.SetMasterVolumeLevelScalar(level, nil)
	})
}

// Muted reads the mute state of the default endpoint for flow.
func (Backend) Muted(flow Flow) (bool, error) {
	var muted bool
	err := withEndpointVolume(flow, func(v *IAudioEndpointVolume) error {
		return v.GetMute(&muted)
	})
	return muted, err
}

// SetMuted mutes or unmutes the default endpoint for flow.
func (Backend) SetMuted(flow Flow, muted bool) error {
	return withEndpointVolume(flow, func(v *IAudioEndpointVolume) error {
		return v.SetMute(muted, nil)
	})
}
