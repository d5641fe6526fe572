// Package coreaudio drives the default Windows audio endpoints through the
// Core Audio COM interfaces. Every operation resolves the endpoint fresh,
// activates the volume interface on it, performs the call and releases every
// handle it acquired before returning.
package coreaudio

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"
)

// Flow selects which default endpoint an operation resolves.
type Flow int

const (
	// Render is the default output device (speakers, headphones).
	Render Flow = iota

	// Capture is the default input device (microphone).
	Capture
)

// String implements fmt.Stringer.
func (f Flow) String() string {
	if f == Capture {
		return "capture"
	}
	return "render"
}

// Identifiers published by the OS for the endpoint enumerator and the volume
// control interface. The values are fixed by the platform contract and are
// never derived at runtime; a mismatch fails activation, it does not crash.
var (
	// CLSID_MMDeviceEnumerator identifies the multimedia device enumerator class.
	CLSID_MMDeviceEnumerator = ole.NewGUID("{BCDE0395-E52F-467C-8E3D-C4579291692E}")

	// IID_IMMDeviceEnumerator identifies the enumerator interface contract.
	IID_IMMDeviceEnumerator = ole.NewGUID("{A95664D2-9614-4F35-A746-DE8DB63617E6}")

	// IID_IAudioEndpointVolume identifies the per-endpoint volume interface.
	IID_IAudioEndpointVolume = ole.NewGUID("{5CDF2C82-841E-4546-9722-0CF74078229A}")
)

// ErrApartment is returned when the COM apartment could not be entered or
// the enumerator could not be created. The failure is fatal for the current
// operation only.
var ErrApartment = errors.New("COM apartment unavailable")

// ErrNoDevice is returned when no default endpoint exists for the requested
// flow, for example when no playback device is configured.
var ErrNoDevice = errors.New("no default audio endpoint")

// CallError reports a failed vtable invocation and carries the raw HRESULT
// for diagnostics.
type CallError struct {
	Call    string
	HResult uint32
}

// Error implements the error interface.
func (e *CallError) Error() string {
	return fmt.Sprintf("%s returned HRESULT %#08x", e.Call, e.HResult)
}
