package surface

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/hwsurface/d3d"
	"github.com/vkngwrapper/hwsurface/mfx"
)

func TestValidateBatches(t *testing.T) {
	allocator := New(testLogger(), CreateOptions{})
	require.NoError(t, allocator.validateBatches())

	first := []mfx.MemID{1, 2}
	second := []mfx.MemID{3}
	allocator.registerBatch(first, d3d.RenderTargetDecoder, d3d.FormatNV12, 64, 64, 6144)
	allocator.registerBatch(second, d3d.RenderTargetProcessor, d3d.FormatA8R8G8B8, 32, 32, 4096)
	require.NoError(t, allocator.validateBatches())

	batch, ok := allocator.batches.Get(batchKey(second))
	require.True(t, ok)

	batch.id = 1
	require.ErrorContains(t, allocator.validateBatches(), "registered twice")

	batch.id = 7
	require.ErrorContains(t, allocator.validateBatches(), "never issued")

	batch.id = 2
	batch.count = 0
	require.ErrorContains(t, allocator.validateBatches(), "holds 0 surfaces")

	allocator.unregisterBatch(second)
	allocator.unregisterBatch(first)
	require.NoError(t, allocator.validateBatches())
	require.Equal(t, 0, allocator.batches.Count())
}
