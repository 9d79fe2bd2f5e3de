package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

// serviceEndpoint caches one video service and the device handle it is bound to. Both are
// acquired together on first use and released together.
type serviceEndpoint struct {
	id     d3d.ServiceID
	target d3d.RenderTarget

	service d3d.VideoService
	handle  d3d.Handle
}

func (e *serviceEndpoint) active() bool {
	return e.service != nil
}

func (e *serviceEndpoint) acquire(logger *slog.Logger, manager d3d.DeviceManager) (d3d.VideoService, mfx.Status, error) {
	if e.service != nil {
		return e.service, mfx.StatusOK, nil
	}

	logger.Debug("  Acquiring video service", slog.String("Service", e.id.String()))

	device := openDeviceHandle(logger, manager)
	defer device.Close()

	if !device.Valid() {
		return nil, mfx.StatusMemoryAlloc, errors.Wrapf(mfx.ErrMemoryAlloc, "could not open a device handle for %s", e.id)
	}

	service, err := manager.GetVideoService(device.Handle(), e.id)
	if err != nil {
		return nil, mfx.StatusMemoryAlloc, errors.Mark(errors.Wrapf(err, "could not retrieve %s", e.id), mfx.ErrMemoryAlloc)
	} else if service == nil {
		return nil, mfx.StatusMemoryAlloc, errors.Wrapf(mfx.ErrMemoryAlloc, "device manager returned a nil %s", e.id)
	}

	e.service = service
	e.handle = device.Detach()
	return service, mfx.StatusOK, nil
}

func (e *serviceEndpoint) release(manager d3d.DeviceManager) error {
	if e.service == nil {
		return nil
	}

	e.service.Release()
	handle := e.handle

	e.service = nil
	e.handle = 0

	if manager == nil {
		return errors.Newf("%s is active but no device manager is available to close its handle", e.id)
	}
	return manager.CloseDeviceHandle(handle)
}
