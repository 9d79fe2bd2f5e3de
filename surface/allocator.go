// Package surface allocates video frames as DXVA2 surfaces. Decoder render targets come from the
// device's video decoder service and, when a post-processing stage needs a layout the decoder
// service cannot provide, processor render targets come from the video processor service. Both
// services are acquired lazily and cached until Close.
package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/framealloc"
	"github.com/vkngwrapper/hwsurface/internal/utils"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

// Params configures an Allocator at Init.
type Params struct {
	// Manager is the device manager surfaces are allocated from. It must outlive the Allocator.
	Manager d3d.DeviceManager
}

func (p *Params) Kind() framealloc.AllocatorKind {
	return framealloc.KindD3D9
}

// Allocator is a frame allocator backed by DXVA2 surfaces. Alloc, Free and Close come from the
// embedded FrameAllocator, which calls back into AllocImpl and ReleaseResponse.
type Allocator struct {
	*framealloc.FrameAllocator

	logger    *slog.Logger
	callbacks *surfaceCallbacks
	mutex     utils.OptionalMutex

	manager   d3d.DeviceManager
	decoder   serviceEndpoint
	processor serviceEndpoint

	nextBatchID int
	batches     *swiss.Map[*mfx.MemID, *surfaceBatch]
}

var _ framealloc.Allocator = (*Allocator)(nil)
var _ framealloc.Impl = (*Allocator)(nil)

// Init supplies the device manager. params must be a *Params carrying a non-nil manager.
func (a *Allocator) Init(params framealloc.AllocatorParams) (mfx.Status, error) {
	a.logger.Debug("Allocator::Init")

	if params == nil {
		return mfx.StatusNotInitialized, errors.Wrap(mfx.ErrNotInitialized, "attempted to initialize with nil params")
	} else if params.Kind() != framealloc.KindD3D9 {
		return mfx.StatusNotInitialized, errors.Wrapf(mfx.ErrNotInitialized, "attempted to initialize with %s params", params.Kind())
	}

	d3dParams, ok := params.(*Params)
	if !ok || d3dParams == nil {
		return mfx.StatusNotInitialized, errors.Wrapf(mfx.ErrNotInitialized, "params of kind %s must be *surface.Params, got %T", params.Kind(), params)
	} else if d3dParams.Manager == nil {
		return mfx.StatusNotInitialized, errors.Wrap(mfx.ErrNotInitialized, "attempted to initialize with a nil device manager")
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.decoder.active() || a.processor.active() {
		return mfx.StatusUnsupported, errors.Wrap(mfx.ErrUnsupported, "attempted to initialize an allocator that still holds video services; Close it first")
	}

	a.manager = d3dParams.Manager
	return mfx.StatusOK, nil
}

// Close releases every response still registered with the allocator, then both cached video
// services and the device handles they were bound to. The device manager is retained: the
// allocator may be used again and will reacquire services on demand.
func (a *Allocator) Close() (mfx.Status, error) {
	a.logger.Debug("Allocator::Close")

	status, err := a.FrameAllocator.Close()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	for _, endpoint := range []*serviceEndpoint{&a.decoder, &a.processor} {
		releaseErr := endpoint.release(a.manager)
		if releaseErr != nil {
			a.logger.Error("failed to release video service", slog.String("Service", endpoint.id.String()), slog.Any("error", releaseErr))
			err = errors.CombineErrors(err, releaseErr)
			if status == mfx.StatusOK {
				status = mfx.StatusUnknown
			}
		}
	}

	return status, err
}
