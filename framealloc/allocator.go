// Package framealloc holds the hardware-independent half of a frame allocator: request validation
// shared by every implementation, and the bookkeeping that ties the responses an implementation
// produces to the Free and Close calls that eventually release them.
package framealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/hwsurface/internal/utils"
	"github.com/vkngwrapper/hwsurface/mfx"
	"github.com/vkngwrapper/hwsurface/surfutils"
	"golang.org/x/exp/slog"
)

// Impl is the implementation-specific half of an allocator.
type Impl interface {
	// CheckRequestType reports whether the implementation can serve the request at all
	CheckRequestType(request *mfx.FrameAllocRequest) (mfx.Status, error)
	// AllocImpl creates the frames for a validated request and fills response
	AllocImpl(request *mfx.FrameAllocRequest, response *mfx.FrameAllocResponse) (mfx.Status, error)
	// ReleaseResponse destroys every frame in a response produced by AllocImpl
	ReleaseResponse(response *mfx.FrameAllocResponse) (mfx.Status, error)
}

// Allocator is the contract a frame allocator exposes to a decode/encode/VPP pipeline.
type Allocator interface {
	Alloc(request *mfx.FrameAllocRequest, response *mfx.FrameAllocResponse) (mfx.Status, error)
	LockFrame(mid mfx.MemID, data *mfx.FrameData) (mfx.Status, error)
	UnlockFrame(mid mfx.MemID, data *mfx.FrameData) (mfx.Status, error)
	GetFrameHDL(mid mfx.MemID, handle *mfx.HDL) (mfx.Status, error)
	Free(response *mfx.FrameAllocResponse) (mfx.Status, error)
}

// FrameAllocator orchestrates Alloc, Free and Close on top of an Impl. Implementations embed it.
type FrameAllocator struct {
	logger *slog.Logger
	impl   Impl

	mutex     utils.OptionalRWMutex
	responses responseList
}

// New creates a FrameAllocator that delegates frame creation and destruction to impl. If useMutex
// is false, the caller must serialize every call into the allocator.
func New(logger *slog.Logger, impl Impl, useMutex bool) *FrameAllocator {
	if impl == nil {
		panic("attempted to create a frame allocator with a nil implementation")
	}

	return &FrameAllocator{
		logger: logger,
		impl:   impl,
		mutex:  utils.NewOptionalRWMutex(useMutex),
	}
}

// Alloc validates request, then either hands out an already-registered shared response (external
// decoder frames) or asks the implementation for a new batch and registers it.
func (a *FrameAllocator) Alloc(request *mfx.FrameAllocRequest, response *mfx.FrameAllocResponse) (mfx.Status, error) {
	a.logger.Debug("FrameAllocator::Alloc")

	if request == nil {
		return mfx.StatusMemoryAlloc, errors.Wrap(mfx.ErrMemoryAlloc, "attempted to allocate with a nil request")
	} else if response == nil {
		return mfx.StatusMemoryAlloc, errors.Wrap(mfx.ErrMemoryAlloc, "attempted to allocate into a nil response")
	} else if request.NumFrameSuggested <= 0 {
		return mfx.StatusMemoryAlloc, errors.Wrapf(mfx.ErrMemoryAlloc, "attempted to allocate %d frames", request.NumFrameSuggested)
	}

	res, err := a.impl.CheckRequestType(request)
	if err != nil {
		a.logger.Debug("  FrameAllocator::Alloc rejected request", slog.String("Status", res.String()), slog.Any("error", err))
		return mfx.StatusUnsupported, errors.Mark(err, mfx.ErrUnsupported)
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	shared := request.Type&mfx.MemTypeExternalFrame != 0 && request.Type&mfx.MemTypeFromDecode != 0
	if shared {
		existing := a.responses.findShared(request)
		if existing != nil {
			if request.NumFrameMin > existing.response.NumFrameActual {
				return mfx.StatusMemoryAlloc, errors.Wrapf(mfx.ErrMemoryAlloc,
					"request needs at least %d frames but the shared response holds %d", request.NumFrameMin, existing.response.NumFrameActual)
			}

			existing.refCount++
			*response = existing.response
			a.logger.Debug("  Reused shared response", slog.Int("RefCount", existing.refCount))
			return mfx.StatusOK, nil
		}
	}

	res, err = a.impl.AllocImpl(request, response)
	if err != nil {
		return res, err
	}

	item := &registeredResponse{
		response: *response,
		shared:   shared,
		refCount: 1,
	}
	if shared {
		item.cropW = request.Info.CropW
		item.cropH = request.Info.CropH
		item.from = request.Type & mfx.MemTypeFromMask
	}
	a.responses.push(item)
	surfutils.DebugValidate("response list", &a.responses)

	return res, nil
}

// Free releases a response returned by Alloc. Shared responses are only destroyed when the last
// request that received them frees them. The response is forgotten before its surfaces are
// released, so if the release fails partway the surfaces it had not reached yet are leaked: they
// no longer appear in statistics and no later Free or Close can reach them.
func (a *FrameAllocator) Free(response *mfx.FrameAllocResponse) (mfx.Status, error) {
	a.logger.Debug("FrameAllocator::Free")

	if response == nil {
		return mfx.StatusNullPtr, errors.Wrap(mfx.ErrNullPtr, "attempted to free a nil response")
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	item := a.responses.findBatch(response)
	if item == nil {
		return mfx.StatusInvalidHandle, errors.Wrap(mfx.ErrInvalidHandle, "attempted to free a response this allocator did not produce")
	}

	item.refCount--
	if item.refCount > 0 {
		a.logger.Debug("  Released shared response reference", slog.Int("RefCount", item.refCount))
		return mfx.StatusOK, nil
	}

	// Unregistered first: a partially released batch must not be released again
	a.responses.remove(item)
	surfutils.DebugValidate("response list", &a.responses)

	res, err := a.impl.ReleaseResponse(&item.response)
	if err != nil {
		a.logger.Warn("response release failed, remaining surfaces are leaked",
			slog.Int("Frames", item.response.NumFrameActual),
			slog.Any("error", err))
		return res, err
	}

	response.MemIDs = nil
	response.NumFrameActual = 0
	return res, nil
}

// Close releases every response that is still registered, regardless of reference counts.
func (a *FrameAllocator) Close() (mfx.Status, error) {
	a.logger.Debug("FrameAllocator::Close")

	a.mutex.Lock()
	defer a.mutex.Unlock()

	status := mfx.StatusOK
	var err error

	for !a.responses.IsEmpty() {
		item := a.responses.head
		a.responses.remove(item)

		res, releaseErr := a.impl.ReleaseResponse(&item.response)
		if releaseErr != nil {
			a.logger.Error("failed to release response during close", slog.Any("error", releaseErr))
			if status == mfx.StatusOK {
				status = res
			}
			err = errors.CombineErrors(err, releaseErr)
		}
	}

	return status, err
}

// ResponseCount returns the number of responses currently registered
func (a *FrameAllocator) ResponseCount() int {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.responses.count
}

func (a *FrameAllocator) Validate() error {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	return a.responses.Validate()
}

// PrintResponses writes one JSON object per registered response into json
func (a *FrameAllocator) PrintResponses(json *jwriter.ArrayState) {
	a.mutex.ReadLocked(func() {
		a.responses.PrintResponses(json)
	})
}
