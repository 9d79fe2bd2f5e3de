package surface

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
	"github.com/vkngwrapper/hwsurface/surfutils"
)

// surfaceBatch records one successful CreateSurface call. Batches are keyed by the address of
// the first MemID in the response that carries them.
type surfaceBatch struct {
	id          int
	target      d3d.RenderTarget
	format      d3d.Format
	width       int
	height      int
	count       int
	surfaceSize int
}

func (b *surfaceBatch) Size() int {
	return b.count * b.surfaceSize
}

func (b *surfaceBatch) printParameters(json *jwriter.ObjectState) {
	json.Name("Id").Int(b.id)
	json.Name("Target").String(b.target.String())
	json.Name("Format").String(b.format.String())
	json.Name("Width").Int(b.width)
	json.Name("Height").Int(b.height)
	json.Name("Count").Int(b.count)
	json.Name("Size").Int(b.Size())
}

func batchKey(mids []mfx.MemID) *mfx.MemID {
	if len(mids) == 0 {
		return nil
	}
	return &mids[0]
}

func (a *Allocator) registerBatch(mids []mfx.MemID, target d3d.RenderTarget, format d3d.Format, width, height, surfaceSize int) {
	a.nextBatchID++
	a.batches.Put(batchKey(mids), &surfaceBatch{
		id:          a.nextBatchID,
		target:      target,
		format:      format,
		width:       width,
		height:      height,
		count:       len(mids),
		surfaceSize: surfaceSize,
	})
	surfutils.DebugValidate("surface batch registry", surfutils.ValidateFunc(a.validateBatches))
}

func (a *Allocator) unregisterBatch(mids []mfx.MemID) {
	key := batchKey(mids)
	if key == nil {
		return
	}
	a.batches.Delete(key)
	surfutils.DebugValidate("surface batch registry", surfutils.ValidateFunc(a.validateBatches))
}

// validateBatches checks that every registered batch is non-empty and carries a distinct id that
// registerBatch handed out. The caller holds the mutex.
func (a *Allocator) validateBatches() error {
	ids := swiss.NewMap[int, struct{}](uint32(a.batches.Count()))

	var err error
	a.batches.Iter(func(key *mfx.MemID, batch *surfaceBatch) bool {
		if key == nil {
			err = errors.Newf("batch %d is registered without a key", batch.id)
		} else if batch.count <= 0 {
			err = errors.Newf("batch %d holds %d surfaces", batch.id, batch.count)
		} else if batch.id <= 0 || batch.id > a.nextBatchID {
			err = errors.Newf("batch id %d was never issued (last issued %d)", batch.id, a.nextBatchID)
		} else if ids.Has(batch.id) {
			err = errors.Newf("batch id %d is registered twice", batch.id)
		}
		ids.Put(batch.id, struct{}{})
		return err != nil
	})

	return err
}
