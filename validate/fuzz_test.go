// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package validate

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/driver/drivertest"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
)

// FuzzPrepare hammers the draw validator with arbitrary geometry
// parameters. Prepare must never panic and must reject bad input with one
// of its documented error types.
func FuzzPrepare(f *testing.F) {
	table, err := caps.Build(drivertest.New())
	if err != nil {
		f.Fatalf("caps.Build: %v", err)
	}

	f.Add(0, 4, 0, 16, 64, false)
	f.Add(0, 1, 56, 0, 64, false)
	f.Add(1, 4, 0, 16, 64, true)
	f.Add(-3, 7, 12, 5, 1, true)
	f.Add(0, 0, 0, 0, 0, false)

	f.Fuzz(func(t *testing.T, first, count, offset, stride, bufSize int, indexed bool) {
		if bufSize < 0 || bufSize > 1<<20 || offset < -1<<20 || offset > 1<<20 ||
			stride < -1<<10 || stride > 1<<10 {
			t.Skip()
		}
		reg := registry.New()
		cache := state.NewCache()
		prog := reg.Insert(registry.KindProgram, 1, registry.ProgramMeta{
			Attributes: []registry.ShaderAttribute{{Name: "p", Location: 0, Type: registry.TypeVec2}},
		})
		layout := reg.Insert(registry.KindVertexLayout, 2, registry.VertexLayoutMeta{
			Stride: stride,
			Attributes: []registry.VertexAttribute{
				{Location: 0, Format: gputypes.VertexFormatFloat32x2, Offset: offset, Buffer: 0},
			},
		})
		buf := reg.Insert(registry.KindBuffer, 3, registry.BufferMeta{Size: bufSize})

		req := &DrawRequest{
			Program: prog,
			Layout:  layout,
			Buffers: []registry.Handle{buf},
			Mode:    driver.Triangles,
			First:   first,
			Count:   count,
		}
		if indexed {
			idx := reg.Insert(registry.KindBuffer, 4, registry.BufferMeta{Size: 64})
			req.Index = &IndexSource{Buffer: idx, Format: gputypes.IndexFormatUint16}
		}

		_, err := Prepare(req, reg, cache, table)
		if err == nil {
			return
		}
		var (
			ihe *InvalidHandleError
			ame *AttributeMismatchError
			ire *IndexRangeError
		)
		if !errors.As(err, &ihe) && !errors.As(err, &ame) && !errors.As(err, &ire) {
			t.Fatalf("unexpected error type: %v", err)
		}
	})
}
