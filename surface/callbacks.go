package surface

import "github.com/vkngwrapper/hwsurface/d3d"

type CreateSurfacesCallback func(
	allocator *Allocator,
	target d3d.RenderTarget,
	surfaces []d3d.Surface,
	userData interface{},
)

type ReleaseSurfaceCallback func(
	allocator *Allocator,
	surface d3d.Surface,
	userData interface{},
)

type SurfaceCallbackOptions struct {
	Create   CreateSurfacesCallback
	Release  ReleaseSurfaceCallback
	UserData interface{}
}

type surfaceCallbacks struct {
	Callbacks *SurfaceCallbackOptions
	Allocator *Allocator
}

func (c *surfaceCallbacks) Create(target d3d.RenderTarget, surfaces []d3d.Surface) {
	if c.Callbacks != nil && c.Callbacks.Create != nil {
		c.Callbacks.Create(c.Allocator, target, surfaces, c.Callbacks.UserData)
	}
}

func (c *surfaceCallbacks) Release(surface d3d.Surface) {
	if c.Callbacks != nil && c.Callbacks.Release != nil {
		c.Callbacks.Release(c.Allocator, surface, c.Callbacks.UserData)
	}
}
