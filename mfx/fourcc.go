package mfx

import "fmt"

// FourCC identifies a codec-level pixel layout.
type FourCC uint32

// MakeFourCC packs four characters into a FourCC, first character in the lowest byte.
func MakeFourCC(a, b, c, d byte) FourCC {
	return FourCC(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

const (
	// FourCCNV12 is planar 4:2:0 with an interleaved chroma plane
	FourCCNV12 FourCC = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	// FourCCYV12 is planar 4:2:0 with separate V and U planes
	FourCCYV12 FourCC = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
	// FourCCYUY2 is packed 4:2:2
	FourCCYUY2 FourCC = 'Y' | 'U'<<8 | 'Y'<<16 | '2'<<24
	// FourCCRGB3 is packed 24-bit BGR
	FourCCRGB3 FourCC = 'R' | 'G'<<8 | 'B'<<16 | '3'<<24
	// FourCCRGB4 is packed 32-bit BGRA
	FourCCRGB4 FourCC = 'R' | 'G'<<8 | 'B'<<16 | '4'<<24

	// FourCCP8 is the 8-bit palette layout. It is not a character code: it shares the numeric
	// value of the native palette surface format.
	FourCCP8 FourCC = 41
)

func (f FourCC) String() string {
	chars := [4]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
	for _, c := range chars {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08X", uint32(f))
		}
	}

	return string(chars[:])
}
