package framealloc

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/hwsurface/mfx"
)

type registeredResponse struct {
	response mfx.FrameAllocResponse

	// Shared responses are external decoder frames handed out to every matching request
	shared   bool
	refCount int
	cropW    int
	cropH    int
	from     mfx.MemType

	prev *registeredResponse
	next *registeredResponse
}

func (r *registeredResponse) matches(request *mfx.FrameAllocRequest) bool {
	return r.shared &&
		r.cropW == request.Info.CropW &&
		r.cropH == request.Info.CropH &&
		r.from == request.Type&mfx.MemTypeFromMask
}

func (r *registeredResponse) printParameters(json *jwriter.ObjectState) {
	json.Name("Frames").Int(r.response.NumFrameActual)
	json.Name("Shared").Bool(r.shared)
	if r.shared {
		json.Name("RefCount").Int(r.refCount)
		json.Name("CropW").Int(r.cropW)
		json.Name("CropH").Int(r.cropH)
		json.Name("Type").String(r.from.String())
	}
}

// sameBatch reports whether two responses refer to the same MemID array. Copies of a response
// share the array, so the address of the first element identifies the batch.
func sameBatch(a, b *mfx.FrameAllocResponse) bool {
	if len(a.MemIDs) == 0 || len(b.MemIDs) == 0 {
		return false
	}

	return &a.MemIDs[0] == &b.MemIDs[0]
}

type responseList struct {
	count int
	head  *registeredResponse
	tail  *registeredResponse
}

func (l *responseList) Validate() error {
	declaredCount := l.count
	actualCount := 0

	var prev *registeredResponse
	for item := l.head; item != nil; item = item.next {
		if item.prev != prev {
			return errors.New("response list back-link does not point at the previous entry")
		}
		if item.shared && item.refCount <= 0 {
			return errors.Errorf("shared response has non-positive reference count %d", item.refCount)
		}
		prev = item
		actualCount++
	}

	if prev != l.tail {
		return errors.New("response list tail does not point at the last entry")
	}

	if declaredCount != actualCount {
		return errors.Errorf("the listed number of responses (%d) does not match the actual number of responses (%d)", declaredCount, actualCount)
	}

	return nil
}

func (l *responseList) IsEmpty() bool {
	return l.count == 0
}

func (l *responseList) findShared(request *mfx.FrameAllocRequest) *registeredResponse {
	for item := l.head; item != nil; item = item.next {
		if item.matches(request) {
			return item
		}
	}

	return nil
}

func (l *responseList) findBatch(response *mfx.FrameAllocResponse) *registeredResponse {
	for item := l.head; item != nil; item = item.next {
		if sameBatch(&item.response, response) {
			return item
		}
	}

	return nil
}

func (l *responseList) PrintResponses(json *jwriter.ArrayState) {
	for item := l.head; item != nil; item = item.next {
		o := json.Object()
		item.printParameters(&o)
		o.End()
	}
}

func (l *responseList) push(item *registeredResponse) {
	if l.count == 0 {
		l.head = item
		l.tail = item
		l.count = 1
	} else {
		item.prev = l.tail
		l.tail.next = item

		l.tail = item
		l.count++
	}
}

func (l *responseList) remove(item *registeredResponse) {
	if l.count == 0 {
		panic("attempted to remove a response from an empty response list")
	}

	prev := item.prev
	next := item.next

	if prev != nil {
		prev.next = next
	} else {
		l.head = next
	}

	if next != nil {
		next.prev = prev
	} else {
		l.tail = prev
	}

	item.next = nil
	item.prev = nil

	l.count--
}
