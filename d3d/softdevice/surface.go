package softdevice

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
)

// Surface is an in-memory d3d.Surface. Its storage is one contiguous byte slice: the first plane's
// rows followed, for planar formats, by the chroma rows.
type Surface struct {
	manager *DeviceManager
	desc    d3d.SurfaceDesc
	target  d3d.RenderTarget

	pitch      int
	bits       []byte
	locked     bool
	lockFlags  d3d.LockFlags
	references uint32
}

var _ d3d.Surface = &Surface{}

func (s *Surface) Desc() (d3d.SurfaceDesc, error) {
	s.manager.mutex.Lock()
	defer s.manager.mutex.Unlock()

	if s.manager.FailDesc != nil {
		return d3d.SurfaceDesc{}, s.manager.FailDesc
	} else if s.references == 0 {
		return d3d.SurfaceDesc{}, errors.New("surface has been released")
	}

	return s.desc, nil
}

func (s *Surface) LockRect(flags d3d.LockFlags) (d3d.LockedRect, error) {
	s.manager.mutex.Lock()
	defer s.manager.mutex.Unlock()

	if s.manager.FailLock != nil {
		return d3d.LockedRect{}, s.manager.FailLock
	} else if s.references == 0 {
		return d3d.LockedRect{}, errors.New("surface has been released")
	} else if s.locked {
		return d3d.LockedRect{}, errors.New("surface is already locked")
	}

	s.locked = true
	s.lockFlags = flags
	return d3d.LockedRect{
		Pitch: s.pitch,
		Bits:  unsafe.Pointer(&s.bits[0]),
	}, nil
}

func (s *Surface) UnlockRect() error {
	s.manager.mutex.Lock()
	defer s.manager.mutex.Unlock()

	if !s.locked {
		return errors.New("surface is not locked")
	}

	s.locked = false
	s.lockFlags = 0
	return nil
}

func (s *Surface) Release() uint32 {
	s.manager.mutex.Lock()
	defer s.manager.mutex.Unlock()

	if s.references == 0 {
		return 0
	}

	s.references--
	if s.references == 0 {
		s.bits = nil
		s.manager.liveSurfaces--
	}
	return s.references
}

// Target is the render target the surface was created for
func (s *Surface) Target() d3d.RenderTarget {
	return s.target
}

// Locked reports whether the surface is currently locked, and with which flags
func (s *Surface) Locked() (bool, d3d.LockFlags) {
	s.manager.mutex.Lock()
	defer s.manager.mutex.Unlock()

	return s.locked, s.lockFlags
}

// Bytes exposes the surface's storage. The slice is nil once the surface has been released.
func (s *Surface) Bytes() []byte {
	return s.bits
}

// References is the surface's current reference count
func (s *Surface) References() uint32 {
	s.manager.mutex.Lock()
	defer s.manager.mutex.Unlock()

	return s.references
}
