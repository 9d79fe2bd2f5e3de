//go:build windows

package dxva2

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
)

// VideoService wraps an IDirectXVideoDecoderService or an IDirectXVideoProcessorService
type VideoService struct {
	ptr uintptr
}

var _ d3d.VideoService = &VideoService{}

func (s *VideoService) CreateSurface(
	width, height int,
	backBuffers int,
	format d3d.Format,
	pool d3d.Pool,
	usage uint32,
	target d3d.RenderTarget,
	surfaces []d3d.Surface,
) error {
	count := backBuffers + 1
	if backBuffers < 0 {
		return errors.Newf("back buffer count %d is negative", backBuffers)
	} else if len(surfaces) < count {
		return errors.Newf("%d surfaces requested but the output holds %d", count, len(surfaces))
	}

	ptrs := make([]uintptr, count)
	err := comCall(s.ptr, vtblCreateSurface,
		uintptr(width),
		uintptr(height),
		uintptr(backBuffers),
		uintptr(format),
		uintptr(pool),
		uintptr(usage),
		uintptr(target),
		uintptr(unsafe.Pointer(&ptrs[0])),
		0,
	)
	if err != nil {
		return errors.Wrapf(err, "IDirectXVideoAccelerationService::CreateSurface failed for %d %s surfaces", count, format)
	}

	for i, ptr := range ptrs {
		surfaces[i] = &Surface{ptr: ptr}
	}
	return nil
}

func (s *VideoService) Release() uint32 {
	count := comRelease(s.ptr)
	s.ptr = 0
	return count
}
