package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/framealloc"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

// classifyRequest picks the video service a request is served from. Post-processing stages may need
// surfaces in a layout other than NV12 (color conversion), and internal post-processing frames
// must be processor render targets; the processor service creates those. Everything else is a
// decoder render target.
func classifyRequest(request *mfx.FrameAllocRequest) d3d.ServiceID {
	if request.Type&(mfx.MemTypeFromVPPIn|mfx.MemTypeFromVPPOut) != 0 &&
		(request.Info.FourCC != mfx.FourCCNV12 || request.Type&mfx.MemTypeInternalFrame != 0) {
		return d3d.ServiceProcessor
	}

	return d3d.ServiceDecoder
}

func (a *Allocator) endpointFor(service d3d.ServiceID) *serviceEndpoint {
	if service == d3d.ServiceProcessor {
		return &a.processor
	}
	return &a.decoder
}

// CheckRequestType accepts requests that pass the shared validation and ask for decoder or
// processor render targets.
func (a *Allocator) CheckRequestType(request *mfx.FrameAllocRequest) (mfx.Status, error) {
	a.logger.Debug("Allocator::CheckRequestType")

	res, err := framealloc.CheckRequestType(request)
	if err != nil {
		return res, err
	}

	if request.Type&(mfx.MemTypeDecoderTarget|mfx.MemTypeProcessorTarget) == 0 {
		return mfx.StatusUnsupported, errors.Wrapf(mfx.ErrUnsupported, "request type %s is not a video memory render target", request.Type)
	}

	return mfx.StatusOK, nil
}

// AllocImpl creates request.NumFrameSuggested surfaces with a single call to the selected video
// service and returns them, in order, as the response's MemIDs.
func (a *Allocator) AllocImpl(request *mfx.FrameAllocRequest, response *mfx.FrameAllocResponse) (mfx.Status, error) {
	a.logger.Debug("Allocator::AllocImpl")

	if request == nil {
		return mfx.StatusNullPtr, errors.Wrap(mfx.ErrNullPtr, "attempted to allocate with a nil request")
	} else if response == nil {
		return mfx.StatusNullPtr, errors.Wrap(mfx.ErrNullPtr, "attempted to allocate into a nil response")
	}

	format := ConvertFourCCToFormat(request.Info.FourCC)
	if format == d3d.FormatUnknown {
		return mfx.StatusUnsupported, errors.Wrapf(mfx.ErrUnsupported, "no surface format for fourcc %s", request.Info.FourCC)
	}

	count := request.NumFrameSuggested
	if count < 1 {
		return mfx.StatusMemoryAlloc, errors.Wrapf(mfx.ErrMemoryAlloc, "attempted to allocate %d surfaces", count)
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()

	endpoint := a.endpointFor(classifyRequest(request))
	service, res, err := endpoint.acquire(a.logger, a.manager)
	if err != nil {
		a.logger.Debug("  Allocator::AllocImpl FAILED", slog.Any("error", err))
		return res, err
	}

	// The service takes a back buffer count and creates one surface more than that
	surfaces := make([]d3d.Surface, count)
	err = service.CreateSurface(
		request.Info.Width,
		request.Info.Height,
		count-1,
		format,
		d3d.PoolDefault,
		0,
		endpoint.target,
		surfaces,
	)
	if err != nil {
		a.logger.Debug("  Allocator::AllocImpl FAILED", slog.Any("error", err))
		return mfx.StatusMemoryAlloc, errors.Mark(errors.Wrapf(err, "%s could not create %d surfaces", endpoint.id, count), mfx.ErrMemoryAlloc)
	}

	mids := make([]mfx.MemID, count)
	for i, surface := range surfaces {
		if surface == nil {
			releaseSurfaces(surfaces)
			return mfx.StatusMemoryAlloc, errors.Wrapf(mfx.ErrMemoryAlloc, "%s reported success but surface %d of %d is missing", endpoint.id, i, count)
		}
		mids[i] = surface
	}

	surfaceSize := estimateSurfaceSize(format, request.Info.Width, request.Info.Height)
	a.registerBatch(mids, endpoint.target, format, request.Info.Width, request.Info.Height, surfaceSize)
	a.callbacks.Create(endpoint.target, surfaces)

	a.logger.Debug("  Created surfaces",
		slog.String("Service", endpoint.id.String()),
		slog.String("Format", format.String()),
		slog.Int("Count", count),
		slog.String("Bytes", humanize.IBytes(uint64(count*surfaceSize))),
	)

	response.MemIDs = mids
	response.NumFrameActual = count
	return mfx.StatusOK, nil
}

func releaseSurfaces(surfaces []d3d.Surface) {
	for _, surface := range surfaces {
		if surface != nil {
			surface.Release()
		}
	}
}
