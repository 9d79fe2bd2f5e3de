//go:build windows

package dxva2

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// HResult is a failing COM result code
type HResult uint32

func (h HResult) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(h))
}

// IUnknown
const (
	vtblAddRef  = 1
	vtblRelease = 2
)

// IDirect3DDeviceManager9
const (
	vtblResetDevice       = 3
	vtblOpenDeviceHandle  = 4
	vtblCloseDeviceHandle = 5
	vtblTestDevice        = 6
	vtblGetVideoService   = 9
)

// IDirectXVideoAccelerationService
const (
	vtblCreateSurface = 3
)

// IDirect3DSurface9
const (
	vtblGetDesc    = 12
	vtblLockRect   = 13
	vtblUnlockRect = 14
)

var (
	iidDecoderService   = windows.GUID{Data1: 0xfc51a551, Data2: 0xd5e7, Data3: 0x11d9, Data4: [8]byte{0xaf, 0x55, 0x00, 0x05, 0x4e, 0x43, 0xff, 0x02}}
	iidProcessorService = windows.GUID{Data1: 0xfc51a552, Data2: 0xd5e7, Data3: 0x11d9, Data4: [8]byte{0xaf, 0x55, 0x00, 0x05, 0x4e, 0x43, 0xff, 0x02}}
)

var (
	dxva2DLL = windows.NewLazySystemDLL("dxva2.dll")

	procDXVA2CreateDirect3DDeviceManager9 = dxva2DLL.NewProc("DXVA2CreateDirect3DDeviceManager9")
)

func vtblFn(obj uintptr, index int) uintptr {
	vtable := *(*uintptr)(unsafe.Pointer(obj))
	return *(*uintptr)(unsafe.Pointer(vtable + uintptr(index)*unsafe.Sizeof(uintptr(0))))
}

// comCall invokes the method at index in obj's vtable, passing obj as the receiver
func comCall(obj uintptr, index int, args ...uintptr) error {
	allArgs := make([]uintptr, 0, len(args)+1)
	allArgs = append(allArgs, obj)
	allArgs = append(allArgs, args...)

	ret, _, _ := syscall.SyscallN(vtblFn(obj, index), allArgs...)
	if int32(ret) < 0 {
		return HResult(ret)
	}
	return nil
}

func comAddRef(obj uintptr) uint32 {
	ret, _, _ := syscall.SyscallN(vtblFn(obj, vtblAddRef), obj)
	return uint32(ret)
}

func comRelease(obj uintptr) uint32 {
	if obj == 0 {
		return 0
	}
	ret, _, _ := syscall.SyscallN(vtblFn(obj, vtblRelease), obj)
	return uint32(ret)
}
