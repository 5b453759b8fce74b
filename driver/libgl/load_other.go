// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

//go:build !linux && !freebsd && !darwin

package libgl

import (
	"fmt"
	"runtime"
)

// Load is unavailable on this platform.
func Load() (*GL, error) {
	return nil, fmt.Errorf("libgl: not supported on %s", runtime.GOOS)
}
