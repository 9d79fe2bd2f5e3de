package surface

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/framealloc"
	"github.com/vkngwrapper/hwsurface/internal/utils"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

var allocatorCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	allocatorCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return allocatorCreateFlagsMapping.FlagsToString(f)
}

const (
	// AllocatorCreateInternallySynchronized guards the allocator's cached services, its batch index
	// and its response registry with mutexes. Without it the allocator performs no locking, and the
	// consumer must guarantee that calls into one allocator are never concurrent.
	AllocatorCreateInternallySynchronized CreateFlags = 1 << iota
)

func init() {
	AllocatorCreateInternallySynchronized.Register("AllocatorCreateInternallySynchronized")
}

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// SurfaceCallbacks is an optional set of callbacks that will be executed when surfaces are
	// created or released by this allocator
	SurfaceCallbacks *SurfaceCallbackOptions
}

// New creates an Allocator. It cannot create surfaces until Init has supplied a device manager.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, options CreateOptions) *Allocator {
	useMutex := options.Flags&AllocatorCreateInternallySynchronized != 0

	allocator := &Allocator{
		logger: logger,
		mutex:  utils.NewOptionalMutex(useMutex),

		decoder: serviceEndpoint{
			id:     d3d.ServiceDecoder,
			target: d3d.RenderTargetDecoder,
		},
		processor: serviceEndpoint{
			id:     d3d.ServiceProcessor,
			target: d3d.RenderTargetProcessor,
		},

		batches: swiss.NewMap[*mfx.MemID, *surfaceBatch](16),
	}
	allocator.callbacks = &surfaceCallbacks{
		Callbacks: options.SurfaceCallbacks,
		Allocator: allocator,
	}
	allocator.FrameAllocator = framealloc.New(logger, allocator, useMutex)

	return allocator
}
