//go:build windows

package coreaudio

import (
	"errors"
	"fmt"

	"github.com/go-ole/go-ole"
)

const (
	// S_FALSE: the apartment was already entered on this thread. The call
	// still has to be balanced with CoUninitialize.
	hrAlreadyInitialized = 0x1

	// RPC_E_CHANGED_MODE: the thread is committed to a different threading
	// model. The existing apartment is reused and must not be torn down by us.
	hrChangedMode = 0x80010106
)

// enterApartment joins the apartment-threaded COM context on the current OS
// thread and returns the matching teardown. Only the call that performed the
// initialization uninitializes; callers must invoke leave on every exit path.
func enterApartment() (leave func(), err error) {
	err = ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err == nil {
		return ole.CoUninitialize, nil
	}
	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		switch oleErr.Code() {
		case hrAlreadyInitialized:
			return ole.CoUninitialize, nil
		case hrChangedMode:
			return func() {}, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrApartment, err)
}
