// Package d3d describes the pieces of the Direct3D/DXVA2 runtime that the surface allocator consumes:
// a device manager that leases device handles and hands out video services, video services that
// create surfaces in batches, and the surfaces themselves.
//
// Implementations live in subpackages: dxva2 binds the real COM interfaces on Windows, softdevice
// emulates them in host memory.
package d3d

import "unsafe"

//go:generate mockgen -source d3d.go -destination mocks/mocks.go -package mocks

// Handle is a lease on the graphics device obtained from a DeviceManager.
type Handle uintptr

// DeviceManager shares one graphics device between the components of a video pipeline.
type DeviceManager interface {
	// OpenDeviceHandle leases a handle on the device. Every handle returned must be passed back to
	// CloseDeviceHandle exactly once.
	OpenDeviceHandle() (Handle, error)
	CloseDeviceHandle(handle Handle) error
	// GetVideoService retrieves the video service identified by service, bound to the device behind
	// handle. The caller owns one reference to the returned service.
	GetVideoService(handle Handle, service ServiceID) (VideoService, error)
}

// VideoService creates surfaces usable by one class of video hardware.
type VideoService interface {
	// CreateSurface creates backBuffers+1 surfaces of the provided dimensions and format and writes
	// them to the front of surfaces, which must be at least that long. On error no surfaces are
	// created. The caller owns one reference to each created surface.
	CreateSurface(
		width, height int,
		backBuffers int,
		format Format,
		pool Pool,
		usage uint32,
		target RenderTarget,
		surfaces []Surface,
	) error
	// Release drops one reference to the service and returns the remaining count.
	Release() uint32
}

// Surface is one hardware-resident 2D pixel buffer.
type Surface interface {
	Desc() (SurfaceDesc, error)
	// LockRect maps the whole surface for CPU access. A surface may not be locked twice.
	LockRect(flags LockFlags) (LockedRect, error)
	UnlockRect() error
	// Release drops one reference to the surface and returns the remaining count.
	Release() uint32
}

type SurfaceDesc struct {
	Format Format
	Pool   Pool
	Usage  uint32
	Width  int
	Height int
}

// LockedRect is the CPU view of a locked surface. Bits points at the first byte of the first row
// and Pitch is the byte distance between row starts.
type LockedRect struct {
	Pitch int
	Bits  unsafe.Pointer
}
