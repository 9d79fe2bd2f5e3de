package framealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/mfx"
)

// CheckRequestType performs the validation shared by every allocator implementation: the request
// must exist and must name the pipeline component it is for.
func CheckRequestType(request *mfx.FrameAllocRequest) (mfx.Status, error) {
	if request == nil {
		return mfx.StatusNullPtr, errors.Wrap(mfx.ErrNullPtr, "attempted to check a nil request")
	}

	if request.Type&mfx.MemTypeFromMask == 0 {
		return mfx.StatusUnsupported, errors.Wrapf(mfx.ErrUnsupported, "request type %s does not name a requesting component", request.Type)
	}

	return mfx.StatusOK, nil
}
