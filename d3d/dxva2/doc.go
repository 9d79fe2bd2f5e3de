// Package dxva2 binds the d3d interfaces to the DXVA2 and Direct3D 9 COM interfaces. It is only
// functional on Windows; on other platforms the package is empty.
//
// A DeviceManager wraps an IDirect3DDeviceManager9. Video services returned from it wrap
// IDirectXVideoDecoderService or IDirectXVideoProcessorService, and the surfaces they create wrap
// IDirect3DSurface9. Every wrapper owns exactly one COM reference, dropped by its Release method.
package dxva2
