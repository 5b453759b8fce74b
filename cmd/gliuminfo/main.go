// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Command gliuminfo probes the system OpenGL driver and prints the
// capability table the safety layer would build over it. A native GL
// context must be current on the calling thread, which in practice means
// running it under a windowing harness; without one the load fails with
// the driver's error.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/driver/drivertest"
	"github.com/tdoylend/glium/driver/libgl"
)

func init() { runtime.LockOSThread() }

func main() {
	fake := flag.Bool("fake", false, "probe the in-memory test driver instead of the system one")
	showExt := flag.Bool("extensions", false, "list every extension string")
	flag.Parse()

	var drv driver.Driver
	if *fake {
		drv = drivertest.New()
	} else {
		gl, err := libgl.Load()
		if err != nil {
			log.Fatalf("gliuminfo: %v", err)
		}
		drv = gl
	}

	table, err := caps.Build(drv)
	if err != nil {
		log.Fatalf("gliuminfo: %v", err)
	}

	fmt.Printf("version:  %s\n", table.Version())
	fmt.Printf("vendor:   %s\n", table.Vendor())
	fmt.Printf("renderer: %s\n", table.Renderer())
	fmt.Println()

	fmt.Println("features:")
	for _, f := range []caps.Feature{
		caps.FeatureSamplerObjects,
		caps.FeatureBufferStorage,
		caps.FeatureTextureStorage,
		caps.FeatureComputeShader,
		caps.FeatureTimerQuery,
		caps.FeatureBufferReadback,
	} {
		fmt.Printf("  %-24s %v\n", f, table.Supports(f))
	}
	fmt.Println()

	fmt.Println("limits:")
	for _, l := range []caps.Limit{
		caps.MaxTextureSize,
		caps.MaxTextureUnits,
		caps.MaxVertexAttributes,
		caps.MaxColorAttachments,
		caps.MaxRenderbufferSize,
		caps.MaxStorageBufferBindings,
		caps.MaxComputeInvocations,
	} {
		fmt.Printf("  %-28s %d\n", l, table.Limit(l))
	}

	if *showExt {
		exts := append([]string(nil), table.Extensions()...)
		sort.Strings(exts)
		fmt.Printf("\nextensions (%d):\n", len(exts))
		for _, e := range exts {
			fmt.Printf("  %s\n", e)
		}
	}
}
