package surface

import (
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
)

// ConvertFourCCToFormat maps a codec-level FourCC to the native surface format used to create it,
// or d3d.FormatUnknown if surfaces of that layout cannot be created.
func ConvertFourCCToFormat(fourcc mfx.FourCC) d3d.Format {
	switch fourcc {
	case mfx.FourCCNV12:
		return d3d.FormatNV12
	case mfx.FourCCYV12:
		return d3d.FormatYV12
	case mfx.FourCCYUY2:
		return d3d.FormatYUY2
	case mfx.FourCCRGB3:
		return d3d.FormatR8G8B8
	case mfx.FourCCRGB4:
		return d3d.FormatA8R8G8B8
	case mfx.FourCCP8:
		return d3d.FormatP8
	default:
		return d3d.FormatUnknown
	}
}

func isLockableFormat(format d3d.Format) bool {
	switch format {
	case d3d.FormatNV12, d3d.FormatYV12, d3d.FormatYUY2,
		d3d.FormatR8G8B8, d3d.FormatA8R8G8B8, d3d.FormatP8:
		return true
	}
	return false
}

// estimateSurfaceSize is the unpadded size of one surface, used for statistics only
func estimateSurfaceSize(format d3d.Format, width, height int) int {
	switch format {
	case d3d.FormatNV12, d3d.FormatYV12:
		return width * height * 3 / 2
	case d3d.FormatYUY2:
		return width * height * 2
	case d3d.FormatR8G8B8:
		return width * height * 3
	case d3d.FormatA8R8G8B8:
		return width * height * 4
	case d3d.FormatP8:
		return width * height
	}
	return 0
}
