package surfutils

import "math"

// Statistics counts the surfaces an allocator currently has outstanding. A batch is the set of
// surfaces produced by one allocation call.
type Statistics struct {
	BatchCount   int
	SurfaceCount int
	SurfaceBytes int
}

func (s *Statistics) Clear() {
	s.BatchCount = 0
	s.SurfaceCount = 0
	s.SurfaceBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BatchCount += other.BatchCount
	s.SurfaceCount += other.SurfaceCount
	s.SurfaceBytes += other.SurfaceBytes
}

type DetailedStatistics struct {
	Statistics
	BatchSizeMin   int
	BatchSizeMax   int
	SurfaceSizeMin int
	SurfaceSizeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.BatchSizeMin = math.MaxInt
	s.BatchSizeMax = 0
	s.SurfaceSizeMin = math.MaxInt
	s.SurfaceSizeMax = 0
}

// AddBatch records a batch of surfaceCount surfaces, each estimated at surfaceSize bytes
func (s *DetailedStatistics) AddBatch(surfaceCount int, surfaceSize int) {
	s.BatchCount++
	s.SurfaceCount += surfaceCount
	s.SurfaceBytes += surfaceCount * surfaceSize

	if surfaceCount < s.BatchSizeMin {
		s.BatchSizeMin = surfaceCount
	}

	if surfaceCount > s.BatchSizeMax {
		s.BatchSizeMax = surfaceCount
	}

	if surfaceSize < s.SurfaceSizeMin {
		s.SurfaceSizeMin = surfaceSize
	}

	if surfaceSize > s.SurfaceSizeMax {
		s.SurfaceSizeMax = surfaceSize
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)

	if other.BatchSizeMin < s.BatchSizeMin {
		s.BatchSizeMin = other.BatchSizeMin
	}

	if other.BatchSizeMax > s.BatchSizeMax {
		s.BatchSizeMax = other.BatchSizeMax
	}

	if other.SurfaceSizeMin < s.SurfaceSizeMin {
		s.SurfaceSizeMin = other.SurfaceSizeMin
	}

	if other.SurfaceSizeMax > s.SurfaceSizeMax {
		s.SurfaceSizeMax = other.SurfaceSizeMax
	}
}
