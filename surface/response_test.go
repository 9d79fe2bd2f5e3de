package surface

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/hwsurface/d3d/mocks"
	"github.com/vkngwrapper/hwsurface/mfx"
	"go.uber.org/mock/gomock"
)

func TestReleaseResponse_NilResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	res, err := allocator.ReleaseResponse(nil)
	require.Equal(t, mfx.StatusNullPtr, res)
	require.True(t, errors.Is(err, mfx.ErrNullPtr))
}

func TestReleaseResponse_NilMemIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	response := mfx.FrameAllocResponse{NumFrameActual: 3}
	res, err := allocator.ReleaseResponse(&response)
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
}

func TestReleaseResponse_ReleasesEachSurfaceOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	first := mocks.NewMockSurface(ctrl)
	second := mocks.NewMockSurface(ctrl)
	first.EXPECT().Release().Return(uint32(0)).Times(1)
	second.EXPECT().Release().Return(uint32(0)).Times(1)

	response := mfx.FrameAllocResponse{
		MemIDs:         []mfx.MemID{first, nil, second},
		NumFrameActual: 3,
	}
	res, err := allocator.ReleaseResponse(&response)
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
	require.Nil(t, response.MemIDs)
	require.Equal(t, 0, response.NumFrameActual)
}

func TestReleaseResponse_PartialRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	first := mocks.NewMockSurface(ctrl)
	third := mocks.NewMockSurface(ctrl)
	first.EXPECT().Release().Return(uint32(0))

	response := mfx.FrameAllocResponse{
		MemIDs:         []mfx.MemID{first, "not a surface", third},
		NumFrameActual: 3,
	}
	res, err := allocator.ReleaseResponse(&response)
	require.Equal(t, mfx.StatusInvalidHandle, res)
	require.True(t, errors.Is(err, mfx.ErrInvalidHandle))
	require.Len(t, response.MemIDs, 3)
}

func TestReleaseResponse_CountExceedsMemIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	surface := mocks.NewMockSurface(ctrl)
	response := mfx.FrameAllocResponse{
		MemIDs:         []mfx.MemID{surface},
		NumFrameActual: 2,
	}
	res, err := allocator.ReleaseResponse(&response)
	require.Equal(t, mfx.StatusInvalidHandle, res)
	require.True(t, errors.Is(err, mfx.ErrInvalidHandle))
}

func TestReleaseResponse_OnlyNumFrameActual(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	released := mocks.NewMockSurface(ctrl)
	untouched := mocks.NewMockSurface(ctrl)
	released.EXPECT().Release().Return(uint32(0))

	response := mfx.FrameAllocResponse{
		MemIDs:         []mfx.MemID{released, untouched},
		NumFrameActual: 1,
	}
	_, err := allocator.ReleaseResponse(&response)
	require.NoError(t, err)
}

func TestReleaseResponse_StrandedCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, allocator := mockAllocator(ctrl)

	response := mfx.FrameAllocResponse{
		MemIDs: []mfx.MemID{
			mocks.NewMockSurface(ctrl),
			"not a surface",
			nil,
			mocks.NewMockSurface(ctrl),
			mocks.NewMockSurface(ctrl),
		},
		NumFrameActual: 4,
	}
	require.Equal(t, 2, allocator.logStranded(&response, 1))
	require.Equal(t, 0, allocator.logStranded(&response, 4))
}
