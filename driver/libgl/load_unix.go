// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

//go:build linux || freebsd

package libgl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

var libNames = []string{"libGL.so.1", "libGL.so", "libGLESv2.so.2"}

// Load opens the system GL library and resolves its entry points. A native
// context must already be current on the calling thread; extension entry
// points are resolved through glXGetProcAddressARB when plain dlsym
// misses them.
func Load() (*GL, error) {
	var lib uintptr
	var err error
	for _, name := range libNames {
		lib, err = purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err == nil {
			break
		}
	}
	if lib == 0 {
		return nil, fmt.Errorf("libgl: no GL library found: %w", err)
	}

	var getProcAddress func(*byte) uintptr
	if addr, err := purego.Dlsym(lib, "glXGetProcAddressARB"); err == nil && addr != 0 {
		purego.RegisterFunc(&getProcAddress, addr)
	}

	g := &GL{}
	g.bind(func(fptr any, name string) bool {
		addr, _ := purego.Dlsym(lib, name)
		if addr == 0 && getProcAddress != nil {
			b := append([]byte(name), 0)
			addr = getProcAddress(&b[0])
		}
		if addr == 0 {
			return false
		}
		purego.RegisterFunc(fptr, addr)
		return true
	})
	return g, checkBaseline(g)
}
