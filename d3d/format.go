package d3d

import "fmt"

// Format is a native surface format: either a small enumerated value or a four-character code.
type Format uint32

const (
	FormatUnknown  Format = 0
	FormatR8G8B8   Format = 20
	FormatA8R8G8B8 Format = 21
	FormatP8       Format = 41

	FormatYUY2 Format = 'Y' | 'U'<<8 | 'Y'<<16 | '2'<<24
	FormatNV12 Format = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	FormatYV12 Format = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
)

func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "FormatUnknown"
	case FormatR8G8B8:
		return "FormatR8G8B8"
	case FormatA8R8G8B8:
		return "FormatA8R8G8B8"
	case FormatP8:
		return "FormatP8"
	case FormatYUY2:
		return "FormatYUY2"
	case FormatNV12:
		return "FormatNV12"
	case FormatYV12:
		return "FormatYV12"
	}

	return fmt.Sprintf("Format(0x%08X)", uint32(f))
}
