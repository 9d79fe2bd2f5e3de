package surface

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/d3d/mocks"
	"github.com/vkngwrapper/hwsurface/mfx"
	"go.uber.org/mock/gomock"
)

func TestDeviceHandle_NilManager(t *testing.T) {
	device := openDeviceHandle(testLogger(), nil)
	require.False(t, device.Valid())
	require.Equal(t, d3d.Handle(0), device.Handle())
	require.NoError(t, device.Close())
}

func TestDeviceHandle_OpenFailureIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockDeviceManager(ctrl)
	manager.EXPECT().OpenDeviceHandle().Return(d3d.Handle(0), errors.New("device lost"))

	device := openDeviceHandle(testLogger(), manager)
	require.False(t, device.Valid())
	require.NoError(t, device.Close())
}

func TestDeviceHandle_NullHandleIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockDeviceManager(ctrl)
	manager.EXPECT().OpenDeviceHandle().Return(d3d.Handle(0), nil)

	device := openDeviceHandle(testLogger(), manager)
	require.False(t, device.Valid())
	require.Equal(t, d3d.Handle(0), device.Handle())
	require.NoError(t, device.Close())
}

func TestDeviceHandle_CloseOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockDeviceManager(ctrl)
	manager.EXPECT().OpenDeviceHandle().Return(d3d.Handle(3), nil)
	manager.EXPECT().CloseDeviceHandle(d3d.Handle(3)).Return(nil).Times(1)

	device := openDeviceHandle(testLogger(), manager)
	require.True(t, device.Valid())
	require.Equal(t, d3d.Handle(3), device.Handle())

	require.NoError(t, device.Close())
	require.False(t, device.Valid())
	require.NoError(t, device.Close())
}

func TestDeviceHandle_Detach(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockDeviceManager(ctrl)
	manager.EXPECT().OpenDeviceHandle().Return(d3d.Handle(5), nil)

	device := openDeviceHandle(testLogger(), manager)
	require.Equal(t, d3d.Handle(5), device.Detach())
	require.False(t, device.Valid())

	// Detached handles belong to the caller: Close must not touch them
	require.NoError(t, device.Close())
}

func TestDeviceHandle_CloseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockDeviceManager(ctrl)
	closeErr := errors.New("handle already closed")
	manager.EXPECT().OpenDeviceHandle().Return(d3d.Handle(9), nil)
	manager.EXPECT().CloseDeviceHandle(d3d.Handle(9)).Return(closeErr)

	device := openDeviceHandle(testLogger(), manager)
	require.ErrorIs(t, device.Close(), closeErr)
	require.False(t, device.Valid())
}

func TestServiceEndpoint_NullHandleFailsAcquire(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockDeviceManager(ctrl)
	manager.EXPECT().OpenDeviceHandle().Return(d3d.Handle(0), nil)

	endpoint := serviceEndpoint{id: d3d.ServiceDecoder, target: d3d.RenderTargetDecoder}
	service, res, err := endpoint.acquire(testLogger(), manager)
	require.Nil(t, service)
	require.Equal(t, mfx.StatusMemoryAlloc, res)
	require.ErrorIs(t, err, mfx.ErrMemoryAlloc)
	require.False(t, endpoint.active())
}
