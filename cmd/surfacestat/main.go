// surfacestat allocates a batch of frames from an emulated device, locks the first one and prints
// the allocator's statistics. It exercises the same code path a decode pipeline takes.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/vkngwrapper/hwsurface/d3d/softdevice"
	"github.com/vkngwrapper/hwsurface/mfx"
	"github.com/vkngwrapper/hwsurface/surface"
	"golang.org/x/exp/slog"
)

type levelFlag struct {
	level slog.Level
}

func (f *levelFlag) String() string {
	return f.level.String()
}

func (f *levelFlag) Set(value string) error {
	switch strings.ToLower(value) {
	case "debug":
		f.level = slog.LevelDebug
	case "info":
		f.level = slog.LevelInfo
	case "warn", "warning":
		f.level = slog.LevelWarn
	case "error":
		f.level = slog.LevelError
	default:
		return errors.Newf("unknown log level %q", value)
	}
	return nil
}

func (f *levelFlag) Type() string {
	return "level"
}

var fourccs = map[string]mfx.FourCC{
	"NV12": mfx.FourCCNV12,
	"YV12": mfx.FourCCYV12,
	"YUY2": mfx.FourCCYUY2,
	"RGB3": mfx.FourCCRGB3,
	"RGB4": mfx.FourCCRGB4,
	"P8":   mfx.FourCCP8,
}

var memTypes = map[string]mfx.MemType{
	"decode":  mfx.MemTypeExternalFrame | mfx.MemTypeDecoderTarget | mfx.MemTypeFromDecode,
	"vpp-in":  mfx.MemTypeExternalFrame | mfx.MemTypeProcessorTarget | mfx.MemTypeFromVPPIn,
	"vpp-out": mfx.MemTypeInternalFrame | mfx.MemTypeProcessorTarget | mfx.MemTypeFromVPPOut,
	"encode":  mfx.MemTypeExternalFrame | mfx.MemTypeDecoderTarget | mfx.MemTypeFromEncode,
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	logLevel := levelFlag{level: slog.LevelWarn}
	pflag.Var(&logLevel, "log-level", "Log level")
	width := pflag.Int("width", 1920, "frame width")
	height := pflag.Int("height", 1080, "frame height")
	count := pflag.Int("count", 4, "number of frames to allocate")
	fourccName := pflag.String("fourcc", "NV12", "frame layout: NV12, YV12, YUY2, RGB3, RGB4 or P8")
	memTypeName := pflag.String("type", "decode", "requesting component: decode, vpp-in, vpp-out or encode")
	pitchAlignment := pflag.Uint("pitch-alignment", softdevice.DefaultPitchAlignment, "row alignment of the emulated device")
	detailed := pflag.Bool("detailed", false, "list every batch and response")
	pflag.Parse()

	fourcc, ok := fourccs[strings.ToUpper(*fourccName)]
	if !ok {
		pflag.Usage()
		os.Exit(1)
	}
	memType, ok := memTypes[strings.ToLower(*memTypeName)]
	if !ok {
		pflag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.HandlerOptions{Level: logLevel.level}.NewTextHandler(os.Stderr))

	err := run(logger, *pitchAlignment, *detailed, &mfx.FrameAllocRequest{
		Info: mfx.FrameInfo{
			FourCC: fourcc,
			Width:  *width,
			Height: *height,
			CropW:  *width,
			CropH:  *height,
		},
		Type:              memType,
		NumFrameMin:       *count,
		NumFrameSuggested: *count,
	})
	if err != nil {
		logger.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, pitchAlignment uint, detailed bool, request *mfx.FrameAllocRequest) error {
	manager, err := softdevice.New(softdevice.Options{PitchAlignment: pitchAlignment})
	if err != nil {
		return err
	}

	allocator := surface.New(logger, surface.CreateOptions{})
	_, err = allocator.Init(&surface.Params{Manager: manager})
	if err != nil {
		return err
	}
	defer func() {
		_, closeErr := allocator.Close()
		if closeErr != nil {
			logger.Error("failed to close allocator", slog.Any("error", closeErr))
		}
	}()

	var response mfx.FrameAllocResponse
	_, err = allocator.Alloc(request, &response)
	if err != nil {
		return err
	}

	var data mfx.FrameData
	_, err = allocator.LockFrame(response.MemIDs[0], &data)
	if err != nil {
		return err
	}
	fmt.Printf("frame 0 pitch: %d\n", data.Pitch)
	_, err = allocator.UnlockFrame(response.MemIDs[0], &data)
	if err != nil {
		return err
	}

	fmt.Println(allocator.BuildStatsString(detailed))

	_, err = allocator.Free(&response)
	return err
}
