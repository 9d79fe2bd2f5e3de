package mfx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeFourCC(t *testing.T) {
	require.Equal(t, FourCCNV12, MakeFourCC('N', 'V', '1', '2'))
	require.Equal(t, FourCCYV12, MakeFourCC('Y', 'V', '1', '2'))
	require.Equal(t, FourCCYUY2, MakeFourCC('Y', 'U', 'Y', '2'))
	require.Equal(t, FourCCRGB3, MakeFourCC('R', 'G', 'B', '3'))
	require.Equal(t, FourCCRGB4, MakeFourCC('R', 'G', 'B', '4'))
	require.Equal(t, FourCC(0x3231564E), FourCCNV12)
}

func TestFourCC_String(t *testing.T) {
	require.Equal(t, "NV12", FourCCNV12.String())
	require.Equal(t, "RGB4", FourCCRGB4.String())
	require.Equal(t, "0x00000029", FourCCP8.String())
}

func TestMemType_String(t *testing.T) {
	str := (MemTypeDecoderTarget | MemTypeFromDecode).String()
	require.Contains(t, str, "MemTypeDecoderTarget")
	require.Contains(t, str, "MemTypeFromDecode")
	require.NotContains(t, str, "MemTypeFromEncode")
}
