package surface

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
	"github.com/vkngwrapper/hwsurface/surfutils"
	"golang.org/x/exp/slices"
)

// AllocatorStatistics breaks an allocator's outstanding surfaces down by the video service that
// created them.
type AllocatorStatistics struct {
	Decoder   surfutils.DetailedStatistics
	Processor surfutils.DetailedStatistics
	Total     surfutils.DetailedStatistics
}

// CalculateStatistics populates stats with the batches and surfaces this allocator currently has
// outstanding. Surface sizes are estimated from format and dimensions and do not include driver
// padding.
func (a *Allocator) CalculateStatistics(stats *AllocatorStatistics) {
	stats.Decoder.Clear()
	stats.Processor.Clear()
	stats.Total.Clear()

	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.batches.Iter(func(_ *mfx.MemID, batch *surfaceBatch) bool {
		if batch.target == d3d.RenderTargetProcessor {
			stats.Processor.AddBatch(batch.count, batch.surfaceSize)
		} else {
			stats.Decoder.AddBatch(batch.count, batch.surfaceSize)
		}
		return false
	})

	stats.Total.AddDetailedStatistics(&stats.Decoder)
	stats.Total.AddDetailedStatistics(&stats.Processor)
}

func printStatistics(json *jwriter.ObjectState, stats *surfutils.DetailedStatistics) {
	json.Name("BatchCount").Int(stats.BatchCount)
	json.Name("SurfaceCount").Int(stats.SurfaceCount)
	json.Name("SurfaceBytes").Int(stats.SurfaceBytes)
	if stats.BatchCount > 0 {
		json.Name("BatchSizeMin").Int(stats.BatchSizeMin)
		json.Name("BatchSizeMax").Int(stats.BatchSizeMax)
		json.Name("SurfaceSizeMin").Int(stats.SurfaceSizeMin)
		json.Name("SurfaceSizeMax").Int(stats.SurfaceSizeMax)
	}
}

func (a *Allocator) sortedBatches() []*surfaceBatch {
	batches := make([]*surfaceBatch, 0, a.batches.Count())
	a.batches.Iter(func(_ *mfx.MemID, batch *surfaceBatch) bool {
		batches = append(batches, batch)
		return false
	})

	slices.SortFunc(batches, func(left, right *surfaceBatch) bool {
		return left.id < right.id
	})
	return batches
}

// BuildStatsString returns a JSON document describing the allocator's outstanding surfaces and its
// cached video services. With detailed set, every batch and every registered response is listed.
func (a *Allocator) BuildStatsString(detailed bool) string {
	var stats AllocatorStatistics
	a.CalculateStatistics(&stats)

	writer := jwriter.NewWriter()
	obj := writer.Object()

	total := obj.Name("Total").Object()
	printStatistics(&total, &stats.Total)
	total.End()

	a.mutex.Lock()
	services := obj.Name("Services").Object()
	for _, endpoint := range []*serviceEndpoint{&a.decoder, &a.processor} {
		service := services.Name(endpoint.id.String()).Object()
		service.Name("Active").Bool(endpoint.active())
		service.Name("Handle").Int(int(endpoint.handle))
		if endpoint.id == d3d.ServiceProcessor {
			printStatistics(&service, &stats.Processor)
		} else {
			printStatistics(&service, &stats.Decoder)
		}
		service.End()
	}
	services.End()

	var batches []*surfaceBatch
	if detailed {
		batches = a.sortedBatches()
	}
	a.mutex.Unlock()

	if detailed {
		batchArray := obj.Name("Batches").Array()
		for _, batch := range batches {
			batchObj := batchArray.Object()
			batch.printParameters(&batchObj)
			batchObj.End()
		}
		batchArray.End()

		// The base allocator takes its own lock
		responses := obj.Name("Responses").Array()
		a.PrintResponses(&responses)
		responses.End()
	}

	obj.End()
	return string(writer.Bytes())
}
