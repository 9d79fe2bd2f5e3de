package mfx

import "github.com/vkngwrapper/core/v2/common"

// MemType classifies a frame allocation request: where the frames live and which pipeline
// component asked for them.
type MemType int32

var memTypeMapping = common.NewFlagStringMapping[MemType]()

func (f MemType) Register(str string) {
	memTypeMapping.Register(f, str)
}
func (f MemType) String() string {
	return memTypeMapping.FlagsToString(f)
}

const (
	// MemTypeInternalFrame marks frames the requesting component uses internally
	MemTypeInternalFrame MemType = 0x0001
	// MemTypeExternalFrame marks frames that are exchanged with the application
	MemTypeExternalFrame MemType = 0x0002
	// MemTypeOpaqueFrame marks frames whose memory type is chosen by the pipeline
	MemTypeOpaqueFrame MemType = 0x0004

	// MemTypeDecoderTarget requests video memory usable as a decoder render target
	MemTypeDecoderTarget MemType = 0x0010
	// MemTypeProcessorTarget requests video memory usable as a video processor render target
	MemTypeProcessorTarget MemType = 0x0020
	// MemTypeSystemMemory requests host memory
	MemTypeSystemMemory MemType = 0x0040

	MemTypeFromEncode MemType = 0x0100
	MemTypeFromDecode MemType = 0x0200
	MemTypeFromVPPIn  MemType = 0x0400
	MemTypeFromVPPOut MemType = 0x0800

	// MemTypeFromMask covers every "requested by" component flag
	MemTypeFromMask = MemTypeFromEncode | MemTypeFromDecode | MemTypeFromVPPIn | MemTypeFromVPPOut
)

func init() {
	MemTypeInternalFrame.Register("MemTypeInternalFrame")
	MemTypeExternalFrame.Register("MemTypeExternalFrame")
	MemTypeOpaqueFrame.Register("MemTypeOpaqueFrame")
	MemTypeDecoderTarget.Register("MemTypeDecoderTarget")
	MemTypeProcessorTarget.Register("MemTypeProcessorTarget")
	MemTypeSystemMemory.Register("MemTypeSystemMemory")
	MemTypeFromEncode.Register("MemTypeFromEncode")
	MemTypeFromDecode.Register("MemTypeFromDecode")
	MemTypeFromVPPIn.Register("MemTypeFromVPPIn")
	MemTypeFromVPPOut.Register("MemTypeFromVPPOut")
}
