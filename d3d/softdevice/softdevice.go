// Package softdevice emulates a DXVA2 device manager in host memory. Surfaces are backed by Go byte
// slices laid out the way a driver would lay them out, so the surface allocator can be run and
// tested on machines without video hardware. Every acquisition is counted and every call can be
// made to fail.
package softdevice

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/surfutils"
)

const DefaultPitchAlignment = 64

type Options struct {
	// PitchAlignment is the byte alignment of every surface row. It must be a power of two. Zero
	// selects DefaultPitchAlignment.
	PitchAlignment uint
}

// DeviceManager is an in-memory d3d.DeviceManager.
//
// The Fail fields may be set at any time; while one is non-nil, the corresponding call returns it
// without side effects.
type DeviceManager struct {
	FailOpen    error
	FailService error
	FailCreate  error
	FailLock    error
	FailDesc    error

	mutex          sync.Mutex
	pitchAlignment uint

	nextHandle   d3d.Handle
	openHandles  map[d3d.Handle]struct{}
	openCount    int
	closeCount   int
	serviceCount map[d3d.ServiceID]int
	liveServices int
	liveSurfaces int
}

var _ d3d.DeviceManager = &DeviceManager{}

func New(options Options) (*DeviceManager, error) {
	alignment := options.PitchAlignment
	if alignment == 0 {
		alignment = DefaultPitchAlignment
	}

	err := surfutils.CheckPow2(alignment, "PitchAlignment")
	if err != nil {
		return nil, err
	}

	return &DeviceManager{
		pitchAlignment: alignment,
		nextHandle:     1,
		openHandles:    make(map[d3d.Handle]struct{}),
		serviceCount:   make(map[d3d.ServiceID]int),
	}, nil
}

func (m *DeviceManager) OpenDeviceHandle() (d3d.Handle, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.FailOpen != nil {
		return 0, m.FailOpen
	}

	handle := m.nextHandle
	m.nextHandle++
	m.openHandles[handle] = struct{}{}
	m.openCount++

	return handle, nil
}

func (m *DeviceManager) CloseDeviceHandle(handle d3d.Handle) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, open := m.openHandles[handle]
	if !open {
		return errors.Newf("device handle %d is not open", handle)
	}

	delete(m.openHandles, handle)
	m.closeCount++
	return nil
}

func (m *DeviceManager) GetVideoService(handle d3d.Handle, service d3d.ServiceID) (d3d.VideoService, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.FailService != nil {
		return nil, m.FailService
	}

	_, open := m.openHandles[handle]
	if !open {
		return nil, errors.Newf("device handle %d is not open", handle)
	}

	if service != d3d.ServiceDecoder && service != d3d.ServiceProcessor {
		return nil, errors.Newf("unknown video service %s", service)
	}

	m.serviceCount[service]++
	m.liveServices++

	return &videoService{
		manager:    m,
		id:         service,
		references: 1,
	}, nil
}

// OpenCount is the number of device handles opened so far
func (m *DeviceManager) OpenCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.openCount
}

// CloseCount is the number of device handles closed so far
func (m *DeviceManager) CloseCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.closeCount
}

// OpenHandles is the number of device handles currently open
func (m *DeviceManager) OpenHandles() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.openHandles)
}

// ServiceCount is the number of times the given video service has been retrieved
func (m *DeviceManager) ServiceCount(service d3d.ServiceID) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.serviceCount[service]
}

// LiveServices is the number of retrieved video services that still hold a reference
func (m *DeviceManager) LiveServices() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.liveServices
}

// LiveSurfaces is the number of created surfaces that still hold a reference
func (m *DeviceManager) LiveSurfaces() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.liveSurfaces
}
