package framealloc

import "fmt"

// AllocatorKind tags which allocator implementation an AllocatorParams value configures.
type AllocatorKind int

const (
	KindUnknown AllocatorKind = iota
	KindD3D9
)

func (k AllocatorKind) String() string {
	switch k {
	case KindUnknown:
		return "KindUnknown"
	case KindD3D9:
		return "KindD3D9"
	}
	return fmt.Sprintf("AllocatorKind(%d)", int(k))
}

// AllocatorParams is the implementation-specific configuration handed to an allocator's Init.
// Each implementation accepts only params of its own kind.
type AllocatorParams interface {
	Kind() AllocatorKind
}
