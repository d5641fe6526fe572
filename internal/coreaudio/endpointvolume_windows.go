//go:build windows

package coreaudio

import (
	"math"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// IAudioEndpointVolume controls the master volume of one audio endpoint.
// https://learn.microsoft.com/en-us/windows/win32/api/endpointvolume/nn-endpointvolume-iaudioendpointvolume
type IAudioEndpointVolume struct {
	ole.IUnknown
}

// IAudioEndpointVolumeVtbl fixes the method slots published for the
// interface. Order and count must match the platform contract exactly; a
// wrong slot is undefined behavior at the ABI boundary, so the layout is
// pinned by tests rather than checked at runtime.
type IAudioEndpointVolumeVtbl struct {
	ole.IUnknownVtbl
	RegisterControlChangeNotify   uintptr
	UnregisterControlChangeNotify uintptr
	GetChannelCount               uintptr
	SetMasterVolumeLevel          uintptr
	SetMasterVolumeLevelScalar    uintptr
	GetMasterVolumeLevel          uintptr
	GetMasterVolumeLevelScalar    uintptr
	SetChannelVolumeLevel         uintptr
	SetChannelVolumeLevelScalar   uintptr
	GetChannelVolumeLevel         uintptr
	GetChannelVolumeLevelScalar   uintptr
	SetMute                       uintptr
	GetMute                       uintptr
	GetVolumeStepInfo             uintptr
	VolumeStepUp                  uintptr
	VolumeStepDown                uintptr
	QueryHardwareSupport          uintptr
	GetVolumeRange                uintptr
}

// VTable returns the typed method table for the interface instance.
func (v *IAudioEndpointVolume) VTable() *IAudioEndpointVolumeVtbl {
	return (*IAudioEndpointVolumeVtbl)(unsafe.Pointer(v.RawVTable))
}

// invoke is the single place ABI-level dispatch happens: it calls one method
// slot with an explicit argument list and converts a failure HRESULT into a
// CallError.
func invoke(call string, slot uintptr, args ...uintptr) error {
	hr, _, _ := syscall.SyscallN(slot, args...)
	if hr != 0 {
		return &CallError{Call: call, HResult: uint32(hr)}
	}
	return nil
}

// GetMasterVolumeLevelScalar reads the master volume in the endpoint's
// native [0.0, 1.0] unit.
func (v *IAudioEndpointVolume) GetMasterVolumeLevelScalar(level *float32) error {
	return invoke("IAudioEndpointVolume::GetMasterVolumeLevelScalar",
		v.VTable().GetMasterVolumeLevelScalar,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(level)))
}

// SetMasterVolumeLevelScalar writes the master volume in the endpoint's
// native [0.0, 1.0] unit. The float crosses the boundary as its bit pattern.
func (v *IAudioEndpointVolume) SetMasterVolumeLevelScalar(level float32, eventContext *ole.GUID) error {
	return invoke("IAudioEndpointVolume::SetMasterVolumeLevelScalar",
		v.VTable().SetMasterVolumeLevelScalar,
		uintptr(unsafe.Pointer(v)),
		uintptr(math.Float32bits(level)),
		uintptr(unsafe.Pointer(eventContext)))
}

// SetMute mutes or unmutes the endpoint.
func (v *IAudioEndpointVolume) SetMute(mute bool, eventContext *ole.GUID) error {
	var flag uintptr
	if mute {
		flag = 1
	}
	return invoke("IAudioEndpointVolume::SetMute",
		v.VTable().SetMute,
		uintptr(unsafe.Pointer(v)),
		flag,
		uintptr(unsafe.Pointer(eventContext)))
}

// GetMute reads the endpoint's mute state.
func (v *IAudioEndpointVolume) GetMute(mute *bool) error {
	var raw int32
	if err := invoke("IAudioEndpointVolume::GetMute",
		v.VTable().GetMute,
		uintptr(unsafe.Pointer(v)),
		uintptr(unsafe.Pointer(&raw))); err != nil {
		return err
	}
	*mute = raw != 0
	return nil
}
