package d3d

import (
	"fmt"

	"github.com/vkngwrapper/core/v2/common"
)

// ServiceID selects which video service GetVideoService returns.
type ServiceID int

const (
	ServiceDecoder ServiceID = iota
	ServiceProcessor
)

func (s ServiceID) String() string {
	switch s {
	case ServiceDecoder:
		return "ServiceDecoder"
	case ServiceProcessor:
		return "ServiceProcessor"
	}
	return fmt.Sprintf("ServiceID(%d)", int(s))
}

// Pool is the memory class a surface is created in.
type Pool uint32

const (
	PoolDefault Pool = 0
)

// RenderTarget tells a video service what the created surfaces will be rendered by.
type RenderTarget uint32

const (
	RenderTargetDecoder RenderTarget = iota
	RenderTargetProcessor
)

func (t RenderTarget) String() string {
	switch t {
	case RenderTargetDecoder:
		return "RenderTargetDecoder"
	case RenderTargetProcessor:
		return "RenderTargetProcessor"
	}
	return fmt.Sprintf("RenderTarget(%d)", uint32(t))
}

// LockFlags adjust how a surface is locked for CPU access.
type LockFlags int32

var lockFlagsMapping = common.NewFlagStringMapping[LockFlags]()

func (f LockFlags) Register(str string) {
	lockFlagsMapping.Register(f, str)
}
func (f LockFlags) String() string {
	return lockFlagsMapping.FlagsToString(f)
}

const (
	// LockReadOnly promises the CPU will not write through the locked pointer
	LockReadOnly LockFlags = 0x00000010
	// LockNoSysLock avoids taking the runtime-wide lock for the duration of the surface lock
	LockNoSysLock LockFlags = 0x00000800
)

func init() {
	LockReadOnly.Register("LockReadOnly")
	LockNoSysLock.Register("LockNoSysLock")
}
