//go:build windows

package dxva2

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
	"golang.org/x/sys/windows"
)

// DeviceManager wraps an IDirect3DDeviceManager9
type DeviceManager struct {
	ptr   uintptr
	token uint32
}

var _ d3d.DeviceManager = &DeviceManager{}

// CreateDeviceManager creates a device manager with no device. ResetDevice must supply one before
// any handle can be opened.
func CreateDeviceManager() (*DeviceManager, error) {
	err := procDXVA2CreateDirect3DDeviceManager9.Find()
	if err != nil {
		return nil, errors.Wrap(err, "dxva2 is not available")
	}

	var token uint32
	var ptr uintptr
	ret, _, _ := procDXVA2CreateDirect3DDeviceManager9.Call(
		uintptr(unsafe.Pointer(&token)),
		uintptr(unsafe.Pointer(&ptr)),
	)
	if int32(ret) < 0 {
		return nil, errors.Wrap(HResult(ret), "DXVA2CreateDirect3DDeviceManager9 failed")
	}

	return &DeviceManager{ptr: ptr, token: token}, nil
}

// Wrap adopts a device manager created elsewhere. The wrapper takes its own reference.
func Wrap(ptr uintptr) *DeviceManager {
	if ptr == 0 {
		panic("attempted to wrap a nil device manager")
	}

	comAddRef(ptr)
	return &DeviceManager{ptr: ptr}
}

// Ptr returns the IDirect3DDeviceManager9 pointer, for handing to other components of a pipeline
func (m *DeviceManager) Ptr() uintptr {
	return m.ptr
}

// ResetDevice sets the IDirect3DDevice9 the manager shares. It is only valid on a manager created
// by CreateDeviceManager.
func (m *DeviceManager) ResetDevice(device uintptr) error {
	if device == 0 {
		return errors.New("attempted to reset a device manager to a nil device")
	}

	err := comCall(m.ptr, vtblResetDevice, device, uintptr(m.token))
	if err != nil {
		return errors.Wrap(err, "IDirect3DDeviceManager9::ResetDevice failed")
	}
	return nil
}

func (m *DeviceManager) OpenDeviceHandle() (d3d.Handle, error) {
	var handle uintptr
	err := comCall(m.ptr, vtblOpenDeviceHandle, uintptr(unsafe.Pointer(&handle)))
	if err != nil {
		return 0, errors.Wrap(err, "IDirect3DDeviceManager9::OpenDeviceHandle failed")
	}
	return d3d.Handle(handle), nil
}

func (m *DeviceManager) CloseDeviceHandle(handle d3d.Handle) error {
	err := comCall(m.ptr, vtblCloseDeviceHandle, uintptr(handle))
	if err != nil {
		return errors.Wrap(err, "IDirect3DDeviceManager9::CloseDeviceHandle failed")
	}
	return nil
}

// TestDevice reports an error if the device behind handle was lost or reset since it was opened
func (m *DeviceManager) TestDevice(handle d3d.Handle) error {
	return comCall(m.ptr, vtblTestDevice, uintptr(handle))
}

func (m *DeviceManager) GetVideoService(handle d3d.Handle, service d3d.ServiceID) (d3d.VideoService, error) {
	var iid *windows.GUID
	switch service {
	case d3d.ServiceDecoder:
		iid = &iidDecoderService
	case d3d.ServiceProcessor:
		iid = &iidProcessorService
	default:
		return nil, errors.Newf("unknown video service %s", service)
	}

	var ptr uintptr
	err := comCall(m.ptr, vtblGetVideoService, uintptr(handle), uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&ptr)))
	if err != nil {
		return nil, errors.Wrapf(err, "IDirect3DDeviceManager9::GetVideoService failed for %s", service)
	}

	return &VideoService{ptr: ptr}, nil
}

// Release drops the wrapper's reference to the device manager
func (m *DeviceManager) Release() uint32 {
	count := comRelease(m.ptr)
	m.ptr = 0
	return count
}
