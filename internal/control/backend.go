package control

//go:generate mockgen -source=backend.go -destination=mocks/backend_mock.go -package=mocks

import "github.com/altavoz/hwctl/internal/coreaudio"

// AudioBackend drives the default audio endpoints through the native
// interface path. Implementations resolve the endpoint fresh on every call.
type AudioBackend interface {
	// VolumeScalar reads the master volume in the endpoint's native
	// [0.0, 1.0] unit.
	VolumeScalar(flow coreaudio.Flow) (float32, error)

	// SetVolumeScalar writes the master volume in the endpoint's native
	// [0.0, 1.0] unit.
	SetVolumeScalar(flow coreaudio.Flow, level float32) error

	// Muted reads the endpoint's mute state.
	Muted(flow coreaudio.Flow) (bool, error)

	// SetMuted mutes or unmutes the endpoint.
	SetMuted(flow coreaudio.Flow, muted bool) error
}

// Helper is the command surface of the optional external helper utility.
type Helper interface {
	// SetVolume sets the master output volume to percent.
	SetVolume(percent int) error

	// ChangeVolume adjusts the master output volume by a signed percent delta.
	ChangeVolume(delta int) error

	// SetMuted mutes or unmutes the output device, or the microphone when
	// mic is set.
	SetMuted(mic, muted bool) error

	// SetBrightness sets the display brightness to percent.
	SetBrightness(percent int) error
}

// BrightnessBridge is the scripting fallback for display brightness.
type BrightnessBridge interface {
	// Brightness reads the first display's brightness percent.
	Brightness() (int, error)

	// SetBrightness applies percent to every brightness-capable display.
	SetBrightness(percent int) error
}

// HelperLocator probes for the helper utility. It is consulted fresh on
// every mutating call: the helper can be installed or removed mid-session,
// and its absence selects the fallback backend rather than failing.
type HelperLocator func() (Helper, bool)
