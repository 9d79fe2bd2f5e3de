//go:build windows

package dxva2

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
)

// Surface wraps an IDirect3DSurface9
type Surface struct {
	ptr uintptr
}

var _ d3d.Surface = &Surface{}

// D3DSURFACE_DESC
type surfaceDesc struct {
	Format             uint32
	Type               uint32
	Usage              uint32
	Pool               uint32
	MultiSampleType    uint32
	MultiSampleQuality uint32
	Width              uint32
	Height             uint32
}

// D3DLOCKED_RECT
type lockedRect struct {
	Pitch int32
	Bits  unsafe.Pointer
}

// Ptr returns the IDirect3DSurface9 pointer
func (s *Surface) Ptr() uintptr {
	return s.ptr
}

func (s *Surface) Desc() (d3d.SurfaceDesc, error) {
	var desc surfaceDesc
	err := comCall(s.ptr, vtblGetDesc, uintptr(unsafe.Pointer(&desc)))
	if err != nil {
		return d3d.SurfaceDesc{}, errors.Wrap(err, "IDirect3DSurface9::GetDesc failed")
	}

	return d3d.SurfaceDesc{
		Format: d3d.Format(desc.Format),
		Pool:   d3d.Pool(desc.Pool),
		Usage:  desc.Usage,
		Width:  int(desc.Width),
		Height: int(desc.Height),
	}, nil
}

func (s *Surface) LockRect(flags d3d.LockFlags) (d3d.LockedRect, error) {
	var locked lockedRect
	err := comCall(s.ptr, vtblLockRect, uintptr(unsafe.Pointer(&locked)), 0, uintptr(flags))
	if err != nil {
		return d3d.LockedRect{}, errors.Wrapf(err, "IDirect3DSurface9::LockRect failed with flags %s", flags)
	}

	return d3d.LockedRect{
		Pitch: int(locked.Pitch),
		Bits:  locked.Bits,
	}, nil
}

func (s *Surface) UnlockRect() error {
	err := comCall(s.ptr, vtblUnlockRect)
	if err != nil {
		return errors.Wrap(err, "IDirect3DSurface9::UnlockRect failed")
	}
	return nil
}

func (s *Surface) Release() uint32 {
	count := comRelease(s.ptr)
	s.ptr = 0
	return count
}
