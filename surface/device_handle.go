package surface

import (
	"github.com/vkngwrapper/hwsurface/d3d"
	"golang.org/x/exp/slog"
)

// deviceHandle is a scoped lease on a device handle. The lease is closed by Close unless Detach
// moved it to a longer-lived owner first. An empty deviceHandle (manager missing, or the manager
// refused to open a handle or returned the zero handle) owns nothing and every method on it is a no-op.
type deviceHandle struct {
	logger  *slog.Logger
	manager d3d.DeviceManager
	handle  d3d.Handle
}

func openDeviceHandle(logger *slog.Logger, manager d3d.DeviceManager) *deviceHandle {
	device := &deviceHandle{logger: logger}
	if manager == nil {
		return device
	}

	handle, err := manager.OpenDeviceHandle()
	if err != nil {
		logger.Debug("    OpenDeviceHandle FAILED", slog.Any("error", err))
		return device
	} else if handle == 0 {
		logger.Debug("    OpenDeviceHandle returned a null handle")
		return device
	}

	device.manager = manager
	device.handle = handle
	return device
}

func (h *deviceHandle) Valid() bool {
	return h.manager != nil && h.handle != 0
}

func (h *deviceHandle) Handle() d3d.Handle {
	return h.handle
}

// Detach gives up ownership of the handle without closing it
func (h *deviceHandle) Detach() d3d.Handle {
	handle := h.handle
	h.manager = nil
	h.handle = 0
	return handle
}

func (h *deviceHandle) Close() error {
	if h.manager == nil {
		return nil
	}

	manager := h.manager
	handle := h.Detach()

	err := manager.CloseDeviceHandle(handle)
	if err != nil {
		h.logger.Warn("failed to close device handle", slog.Any("error", err))
	}
	return err
}
