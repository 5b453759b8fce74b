// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package libgl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

const frameworkPath = "/System/Library/Frameworks/OpenGL.framework/OpenGL"

// Load opens the OpenGL framework and resolves its entry points. A native
// context must already be current on the calling thread.
func Load() (*GL, error) {
	lib, err := purego.Dlopen(frameworkPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("libgl: %w", err)
	}

	g := &GL{}
	g.bind(func(fptr any, name string) bool {
		addr, _ := purego.Dlsym(lib, name)
		if addr == 0 {
			return false
		}
		purego.RegisterFunc(fptr, addr)
		return true
	})
	return g, checkBaseline(g)
}
