package surface

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

func surfaceFromMemID(mid mfx.MemID) (d3d.Surface, mfx.Status, error) {
	if mid == nil {
		return nil, mfx.StatusInvalidHandle, errors.Wrap(mfx.ErrInvalidHandle, "mem id is nil")
	}

	surface, ok := mid.(d3d.Surface)
	if !ok || surface == nil {
		return nil, mfx.StatusInvalidHandle, errors.Wrapf(mfx.ErrInvalidHandle, "mem id of type %T is not a surface", mid)
	}

	return surface, mfx.StatusOK, nil
}

// LockFrame maps the surface behind mid for reading and fills data with the row pitch and the
// address of every plane or channel the surface's format carries.
func (a *Allocator) LockFrame(mid mfx.MemID, data *mfx.FrameData) (mfx.Status, error) {
	a.logger.Debug("Allocator::LockFrame")

	surface, res, err := surfaceFromMemID(mid)
	if err != nil {
		return res, err
	} else if data == nil {
		return mfx.StatusLockMemory, errors.Wrap(mfx.ErrLockMemory, "attempted to lock a frame into a nil frame descriptor")
	}

	desc, err := surface.Desc()
	if err != nil {
		a.logger.Debug("  Allocator::LockFrame FAILED", slog.Any("error", err))
		return mfx.StatusLockMemory, errors.Mark(errors.Wrap(err, "could not retrieve the surface description"), mfx.ErrLockMemory)
	}

	if !isLockableFormat(desc.Format) {
		return mfx.StatusLockMemory, errors.Wrapf(mfx.ErrLockMemory, "surfaces of format %s cannot be locked", desc.Format)
	}

	locked, err := surface.LockRect(d3d.LockReadOnly | d3d.LockNoSysLock)
	if err != nil {
		a.logger.Debug("  Allocator::LockFrame FAILED", slog.Any("error", err))
		return mfx.StatusLockMemory, errors.Mark(errors.Wrap(err, "could not lock the surface"), mfx.ErrLockMemory)
	}

	data.Clear()
	data.Pitch = locked.Pitch
	base := locked.Bits
	planeSize := desc.Height * locked.Pitch

	switch desc.Format {
	case d3d.FormatNV12:
		data.Y = base
		data.U = unsafe.Add(base, planeSize)
		data.V = unsafe.Add(data.U, 1)
	case d3d.FormatYV12:
		data.Y = base
		data.V = unsafe.Add(base, planeSize)
		data.U = unsafe.Add(data.V, planeSize/4)
	case d3d.FormatYUY2:
		data.Y = base
		data.U = unsafe.Add(base, 1)
		data.V = unsafe.Add(base, 3)
	case d3d.FormatR8G8B8:
		data.B = base
		data.G = unsafe.Add(base, 1)
		data.R = unsafe.Add(base, 2)
	case d3d.FormatA8R8G8B8:
		data.B = base
		data.G = unsafe.Add(base, 1)
		data.R = unsafe.Add(base, 2)
		data.A = unsafe.Add(base, 3)
	case d3d.FormatP8:
		data.Y = base
	}

	return mfx.StatusOK, nil
}

// UnlockFrame unmaps the surface behind mid. If data is non-nil, its pitch and every plane pointer
// are cleared so the mapping cannot be used after the unlock.
func (a *Allocator) UnlockFrame(mid mfx.MemID, data *mfx.FrameData) (mfx.Status, error) {
	a.logger.Debug("Allocator::UnlockFrame")

	surface, res, err := surfaceFromMemID(mid)
	if err != nil {
		return res, err
	}

	err = surface.UnlockRect()
	if err != nil {
		a.logger.Warn("failed to unlock surface", slog.Any("error", err))
	}

	if data != nil {
		data.Clear()
	}

	return mfx.StatusOK, nil
}

// GetFrameHDL returns the surface behind mid as the native handle. mid is not validated.
func (a *Allocator) GetFrameHDL(mid mfx.MemID, handle *mfx.HDL) (mfx.Status, error) {
	a.logger.Debug("Allocator::GetFrameHDL")

	if handle == nil {
		return mfx.StatusInvalidHandle, errors.Wrap(mfx.ErrInvalidHandle, "attempted to retrieve a frame handle into a nil handle")
	}

	*handle = mid
	return mfx.StatusOK, nil
}
