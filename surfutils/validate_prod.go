//go:build !debug_hwsurface

package surfutils

func DebugValidate(name string, validatable Validatable) {}
