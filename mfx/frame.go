package mfx

import "unsafe"

// MemID is an opaque reference to one allocated frame. The allocator that produced it is the
// only party that knows what it points at.
type MemID any

// HDL is a MemID reinterpreted as a native handle.
type HDL any

type FrameInfo struct {
	FourCC FourCC
	Width  int
	Height int
	CropW  int
	CropH  int
}

type FrameAllocRequest struct {
	Info              FrameInfo
	Type              MemType
	NumFrameMin       int
	NumFrameSuggested int
}

type FrameAllocResponse struct {
	MemIDs         []MemID
	NumFrameActual int
}

// FrameData describes a locked frame: the row pitch in bytes and the base pointer of each plane
// or channel. Which pointers are set depends on the frame's layout. The pointers are valid only
// until the frame is unlocked.
type FrameData struct {
	Pitch int

	Y unsafe.Pointer
	U unsafe.Pointer
	V unsafe.Pointer

	R unsafe.Pointer
	G unsafe.Pointer
	B unsafe.Pointer
	A unsafe.Pointer
}

// Clear zeroes the pitch and every plane pointer.
func (d *FrameData) Clear() {
	*d = FrameData{}
}
