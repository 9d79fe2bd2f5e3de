package softdevice

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/surfutils"
)

type videoService struct {
	manager    *DeviceManager
	id         d3d.ServiceID
	references uint32
}

// layout returns the bytes per pixel of a format's first plane and the number of rows a surface
// of that format occupies. Chroma of 4:2:0 formats covers every second luma row, rounded up.
func layout(format d3d.Format, height int) (bytesPerPixel int, rows int, err error) {
	switch format {
	case d3d.FormatNV12, d3d.FormatYV12:
		return 1, height + surfutils.DivUp(height, 2), nil
	case d3d.FormatP8:
		return 1, height, nil
	case d3d.FormatYUY2:
		return 2, height, nil
	case d3d.FormatR8G8B8:
		return 3, height, nil
	case d3d.FormatA8R8G8B8:
		return 4, height, nil
	}

	return 0, 0, errors.Newf("surfaces of format %s are not supported", format)
}

func (s *videoService) CreateSurface(
	width, height int,
	backBuffers int,
	format d3d.Format,
	pool d3d.Pool,
	usage uint32,
	target d3d.RenderTarget,
	surfaces []d3d.Surface,
) error {
	m := s.manager
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if s.references == 0 {
		return errors.Newf("%s has been released", s.id)
	}

	if m.FailCreate != nil {
		return m.FailCreate
	}

	count := backBuffers + 1
	if count < 1 {
		return errors.Newf("back buffer count %d is negative", backBuffers)
	} else if len(surfaces) < count {
		return errors.Newf("%d surfaces requested but the output holds %d", count, len(surfaces))
	} else if width <= 0 || height <= 0 {
		return errors.Newf("invalid surface dimensions %dx%d", width, height)
	}

	bytesPerPixel, rows, err := layout(format, height)
	if err != nil {
		return err
	}
	pitch := surfutils.AlignUp(width*bytesPerPixel, int(m.pitchAlignment))

	for i := 0; i < count; i++ {
		surfaces[i] = &Surface{
			manager:    m,
			desc:       d3d.SurfaceDesc{Format: format, Pool: pool, Usage: usage, Width: width, Height: height},
			target:     target,
			pitch:      pitch,
			bits:       make([]byte, pitch*rows),
			references: 1,
		}
	}
	m.liveSurfaces += count

	return nil
}

func (s *videoService) Release() uint32 {
	m := s.manager
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if s.references == 0 {
		return 0
	}

	s.references--
	if s.references == 0 {
		m.liveServices--
	}
	return s.references
}
