package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

// ReleaseResponse drops this allocator's reference on every surface in response, then clears the
// response. A response with no MemIDs is a no-op. If a MemID cannot be resolved to a surface,
// ReleaseResponse stops there: the surfaces before it have been released and the rest are leaked,
// since the batch has already been dropped from statistics. The leaked count is logged. A response
// must not be released twice.
func (a *Allocator) ReleaseResponse(response *mfx.FrameAllocResponse) (mfx.Status, error) {
	a.logger.Debug("Allocator::ReleaseResponse")

	if response == nil {
		return mfx.StatusNullPtr, errors.Wrap(mfx.ErrNullPtr, "attempted to release a nil response")
	}

	if response.MemIDs == nil {
		return mfx.StatusOK, nil
	}

	if response.NumFrameActual > len(response.MemIDs) {
		return mfx.StatusInvalidHandle, errors.Wrapf(mfx.ErrInvalidHandle,
			"response claims %d frames but carries %d mem ids", response.NumFrameActual, len(response.MemIDs))
	}

	a.mutex.Locked(func() {
		a.unregisterBatch(response.MemIDs)
	})

	for i := 0; i < response.NumFrameActual; i++ {
		if response.MemIDs[i] == nil {
			continue
		}

		var handle mfx.HDL
		res, err := a.GetFrameHDL(response.MemIDs[i], &handle)
		if err != nil {
			a.logStranded(response, i)
			return res, err
		}

		surface, ok := handle.(d3d.Surface)
		if !ok || surface == nil {
			a.logStranded(response, i)
			return mfx.StatusInvalidHandle, errors.Wrapf(mfx.ErrInvalidHandle, "mem id %d of type %T is not a surface", i, handle)
		}

		a.callbacks.Release(surface)
		surface.Release()
	}

	response.MemIDs = nil
	response.NumFrameActual = 0
	return mfx.StatusOK, nil
}

// logStranded reports the surfaces of response from index failed onward that were never released
func (a *Allocator) logStranded(response *mfx.FrameAllocResponse, failed int) int {
	stranded := 0
	for _, mid := range response.MemIDs[failed:response.NumFrameActual] {
		if mid != nil {
			stranded++
		}
	}

	a.logger.Warn("surface release stopped early",
		slog.Int("FailedAt", failed),
		slog.Int("Stranded", stranded))
	return stranded
}
