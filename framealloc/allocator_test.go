package framealloc

import (
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/hwsurface/mfx"
	"golang.org/x/exp/slog"
)

type fakeImpl struct {
	checkStatus   mfx.Status
	allocStatus   mfx.Status
	releaseStatus mfx.Status

	allocCalls int
	released   [][]mfx.MemID
	nextID     int
}

func (f *fakeImpl) CheckRequestType(request *mfx.FrameAllocRequest) (mfx.Status, error) {
	res, err := CheckRequestType(request)
	if err != nil {
		return res, err
	}
	return f.checkStatus, f.checkStatus.ToError()
}

func (f *fakeImpl) AllocImpl(request *mfx.FrameAllocRequest, response *mfx.FrameAllocResponse) (mfx.Status, error) {
	f.allocCalls++
	if f.allocStatus != mfx.StatusOK {
		return f.allocStatus, f.allocStatus.ToError()
	}

	mids := make([]mfx.MemID, request.NumFrameSuggested)
	for i := range mids {
		f.nextID++
		mids[i] = f.nextID
	}
	response.MemIDs = mids
	response.NumFrameActual = request.NumFrameSuggested
	return mfx.StatusOK, nil
}

func (f *fakeImpl) ReleaseResponse(response *mfx.FrameAllocResponse) (mfx.Status, error) {
	if f.releaseStatus != mfx.StatusOK {
		return f.releaseStatus, f.releaseStatus.ToError()
	}
	f.released = append(f.released, response.MemIDs)
	response.MemIDs = nil
	return mfx.StatusOK, nil
}

func readyFrameAllocator(t *testing.T) (*fakeImpl, *FrameAllocator) {
	impl := &fakeImpl{}
	logger := slog.New(slog.NewJSONHandler(io.Discard))
	allocator := New(logger, impl, true)
	require.NotNil(t, allocator)

	return impl, allocator
}

func TestCheckRequestType(t *testing.T) {
	res, err := CheckRequestType(nil)
	require.Equal(t, mfx.StatusNullPtr, res)
	require.True(t, errors.Is(err, mfx.ErrNullPtr))

	res, err = CheckRequestType(&mfx.FrameAllocRequest{Type: mfx.MemTypeDecoderTarget})
	require.Equal(t, mfx.StatusUnsupported, res)
	require.True(t, errors.Is(err, mfx.ErrUnsupported))

	res, err = CheckRequestType(&mfx.FrameAllocRequest{Type: mfx.MemTypeDecoderTarget | mfx.MemTypeFromVPPOut})
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
}

func TestAlloc_InvalidArguments(t *testing.T) {
	impl, allocator := readyFrameAllocator(t)

	res, err := allocator.Alloc(nil, &mfx.FrameAllocResponse{})
	require.Equal(t, mfx.StatusMemoryAlloc, res)
	require.Error(t, err)

	res, err = allocator.Alloc(&mfx.FrameAllocRequest{NumFrameSuggested: 1, Type: mfx.MemTypeFromDecode}, nil)
	require.Equal(t, mfx.StatusMemoryAlloc, res)
	require.Error(t, err)

	res, err = allocator.Alloc(&mfx.FrameAllocRequest{NumFrameSuggested: 0, Type: mfx.MemTypeFromDecode}, &mfx.FrameAllocResponse{})
	require.Equal(t, mfx.StatusMemoryAlloc, res)
	require.True(t, errors.Is(err, mfx.ErrMemoryAlloc))

	require.Equal(t, 0, impl.allocCalls)
}

func TestAlloc_RejectedByImpl(t *testing.T) {
	impl, allocator := readyFrameAllocator(t)
	impl.checkStatus = mfx.StatusInvalidHandle

	var response mfx.FrameAllocResponse
	res, err := allocator.Alloc(&mfx.FrameAllocRequest{NumFrameSuggested: 2, Type: mfx.MemTypeFromDecode}, &response)
	require.Equal(t, mfx.StatusUnsupported, res)
	require.True(t, errors.Is(err, mfx.ErrUnsupported))
	require.Equal(t, 0, impl.allocCalls)
	require.Equal(t, 0, allocator.ResponseCount())
}

func TestAlloc_ImplFailureIsNotRegistered(t *testing.T) {
	impl, allocator := readyFrameAllocator(t)
	impl.allocStatus = mfx.StatusMemoryAlloc

	var response mfx.FrameAllocResponse
	res, err := allocator.Alloc(&mfx.FrameAllocRequest{NumFrameSuggested: 2, Type: mfx.MemTypeFromDecode}, &response)
	require.Equal(t, mfx.StatusMemoryAlloc, res)
	require.Error(t, err)
	require.Equal(t, 0, allocator.ResponseCount())
}

func TestAllocFree_Internal(t *testing.T) {
	impl, allocator := readyFrameAllocator(t)

	request := mfx.FrameAllocRequest{NumFrameSuggested: 3, Type: mfx.MemTypeFromDecode | mfx.MemTypeInternalFrame}

	var first, second mfx.FrameAllocResponse
	res, err := allocator.Alloc(&request, &first)
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
	res, err = allocator.Alloc(&request, &second)
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)

	require.Equal(t, 2, impl.allocCalls)
	require.Equal(t, 2, allocator.ResponseCount())
	require.NoError(t, allocator.Validate())

	firstIDs := first.MemIDs
	res, err = allocator.Free(&first)
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
	require.Nil(t, first.MemIDs)
	require.Equal(t, 0, first.NumFrameActual)
	require.Equal(t, [][]mfx.MemID{firstIDs}, impl.released)
	require.Equal(t, 1, allocator.ResponseCount())

	// Freeing again no longer matches any registered batch
	res, err = allocator.Free(&mfx.FrameAllocResponse{MemIDs: firstIDs, NumFrameActual: 3})
	require.Equal(t, mfx.StatusInvalidHandle, res)
	require.True(t, errors.Is(err, mfx.ErrInvalidHandle))

	res, err = allocator.Free(nil)
	require.Equal(t, mfx.StatusNullPtr, res)
	require.Error(t, err)

	res, err = allocator.Close()
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
	require.Len(t, impl.released, 2)
	require.Equal(t, 0, allocator.ResponseCount())
}

func TestFree_ReleaseFailureForgetsResponse(t *testing.T) {
	impl, allocator := readyFrameAllocator(t)

	var response mfx.FrameAllocResponse
	_, err := allocator.Alloc(&mfx.FrameAllocRequest{NumFrameSuggested: 2, Type: mfx.MemTypeFromDecode | mfx.MemTypeInternalFrame}, &response)
	require.NoError(t, err)

	impl.releaseStatus = mfx.StatusInvalidHandle
	res, err := allocator.Free(&response)
	require.Equal(t, mfx.StatusInvalidHandle, res)
	require.True(t, errors.Is(err, mfx.ErrInvalidHandle))
	require.Equal(t, 0, allocator.ResponseCount())
	require.Len(t, response.MemIDs, 2)

	impl.releaseStatus = mfx.StatusOK
	res, err = allocator.Close()
	require.NoError(t, err)
	require.Equal(t, mfx.StatusOK, res)
	require.Empty(t, impl.released)
}

func TestAllocFree_SharedExternalDecoderFrames(t *testing.T) {
	impl, allocator := readyFrameAllocator(t)

	request := mfx.FrameAllocRequest{
		Info:              mfx.FrameInfo{CropW: 1920, CropH: 1080},
		NumFrameMin:       2,
		NumFrameSuggested: 4,
		Type:              mfx.MemTypeFromDecode | mfx.MemTypeExternalFrame | mfx.MemTypeDecoderTarget,
	}

	var first, second mfx.FrameAllocResponse
	_, err := allocator.Alloc(&request, &first)
	require.NoError(t, err)
	_, err = allocator.Alloc(&request, &second)
	require.NoError(t, err)

	require.Equal(t, 1, impl.allocCalls)
	require.Equal(t, 1, allocator.ResponseCount())
	require.Equal(t, first.MemIDs, second.MemIDs)

	greedy := request
	greedy.NumFrameMin = 5
	var third mfx.FrameAllocResponse
	res, err := allocator.Alloc(&greedy, &third)
	require.Equal(t, mfx.StatusMemoryAlloc, res)
	require.Error(t, err)

	otherSize := request
	otherSize.Info.CropW = 1280
	var fourth mfx.FrameAllocResponse
	_, err = allocator.Alloc(&otherSize, &fourth)
	require.NoError(t, err)
	require.Equal(t, 2, impl.allocCalls)

	_, err = allocator.Free(&first)
	require.NoError(t, err)
	require.Empty(t, impl.released)

	_, err = allocator.Free(&second)
	require.NoError(t, err)
	require.Len(t, impl.released, 1)
	require.Equal(t, 1, allocator.ResponseCount())
}

func TestPrintResponses(t *testing.T) {
	_, allocator := readyFrameAllocator(t)

	var response mfx.FrameAllocResponse
	_, err := allocator.Alloc(&mfx.FrameAllocRequest{NumFrameSuggested: 2, Type: mfx.MemTypeFromVPPIn}, &response)
	require.NoError(t, err)

	writer := jwriter.NewWriter()
	arr := writer.Array()
	allocator.PrintResponses(&arr)
	arr.End()

	require.NoError(t, writer.Error())
	require.JSONEq(t, `[{"Frames":2,"Shared":false}]`, string(writer.Bytes()))
}
