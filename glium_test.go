// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/driver/drivertest"
	"github.com/tdoylend/glium/state"
)

// harness is a ready context over the fake driver with a minimal draw
// setup: a vec2 position program, a matching layout, and a 64-byte vertex
// buffer (four 16-byte vertices). The call log is reset after setup.
type harness struct {
	fake    *drivertest.Fake
	ctx     *Context
	program Program
	layout  VertexLayout
	buffer  Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fake := drivertest.New()
	ctx, err := NewContext(fake, Options{})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	prog, err := ctx.AdoptProgram(ProgramDesc{
		DriverID: 77,
		Attributes: []ShaderAttribute{
			{Name: "position", Location: 0, Type: TypeVec2},
		},
		Uniforms: []ShaderUniform{
			{Name: "tint", Location: 0, Type: TypeVec4},
		},
	})
	if err != nil {
		t.Fatalf("AdoptProgram: %v", err)
	}
	layout, err := ctx.CreateVertexLayout(VertexLayoutDesc{
		Stride: 16,
		Attributes: []VertexAttributeDesc{
			{Location: 0, Format: gputypes.VertexFormatFloat32x2, Offset: 0, Buffer: 0},
		},
	})
	if err != nil {
		t.Fatalf("CreateVertexLayout: %v", err)
	}
	buf, err := ctx.CreateBuffer(BufferDesc{Size: 64})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	fake.ResetCalls()
	return &harness{fake: fake, ctx: ctx, program: prog, layout: layout, buffer: buf}
}

func (h *harness) draw() DrawCommand {
	return DrawCommand{
		Program: h.program,
		Layout:  h.layout,
		Buffers: []Buffer{h.buffer},
		Mode:    Triangles,
		First:   0,
		Count:   4,
	}
}

func TestDrawIssuesMinimalCalls(t *testing.T) {
	h := newHarness(t)
	if err := h.ctx.Draw(h.draw()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := h.fake.CallCount("DrawArrays"); got != 1 {
		t.Errorf("DrawArrays calls = %d, want 1", got)
	}
	if got := h.fake.CallCount("UseProgram"); got != 1 {
		t.Errorf("UseProgram calls = %d, want 1", got)
	}
	if got := h.fake.CallCount("VertexAttribPointer"); got != 1 {
		t.Errorf("VertexAttribPointer calls = %d, want 1", got)
	}
	call, ok := h.fake.LastCall("DrawArrays")
	if !ok {
		t.Fatal("no DrawArrays recorded")
	}
	if call.Args[0] != driver.Triangles.Enum() || call.Args[1] != 0 || call.Args[2] != 4 {
		t.Errorf("DrawArrays args = %v", call.Args)
	}
}

func TestRepeatDrawSuppressesBinds(t *testing.T) {
	h := newHarness(t)
	cmd := h.draw()
	if err := h.ctx.Draw(cmd); err != nil {
		t.Fatalf("first Draw: %v", err)
	}
	before := h.ctx.Stats()
	if err := h.ctx.Draw(cmd); err != nil {
		t.Fatalf("second Draw: %v", err)
	}
	after := h.ctx.Stats()

	if got := h.fake.CallCount("UseProgram"); got != 1 {
		t.Errorf("UseProgram calls across two draws = %d, want 1", got)
	}
	if got := h.fake.CallCount("VertexAttribPointer"); got != 1 {
		t.Errorf("VertexAttribPointer calls across two draws = %d, want 1", got)
	}
	if got := h.fake.CallCount("DrawArrays"); got != 2 {
		t.Errorf("DrawArrays calls = %d, want 2", got)
	}
	if after.BindsSuppressed <= before.BindsSuppressed {
		t.Errorf("BindsSuppressed did not grow: %d -> %d", before.BindsSuppressed, after.BindsSuppressed)
	}
	if after.DrawsIssued != 2 {
		t.Errorf("DrawsIssued = %d, want 2", after.DrawsIssued)
	}
}

func TestDrawRejectedBeforeDriverCalls(t *testing.T) {
	h := newHarness(t)
	// 16-byte attribute at offset 56 of a 64-byte buffer.
	layout, err := h.ctx.CreateVertexLayout(VertexLayoutDesc{
		Attributes: []VertexAttributeDesc{
			{Location: 0, Format: gputypes.VertexFormatFloat32x4, Offset: 56, Buffer: 0},
		},
	})
	if err != nil {
		t.Fatalf("CreateVertexLayout: %v", err)
	}
	prog, err := h.ctx.AdoptProgram(ProgramDesc{
		DriverID:   78,
		Attributes: []ShaderAttribute{{Name: "p", Location: 0, Type: TypeVec4}},
	})
	if err != nil {
		t.Fatalf("AdoptProgram: %v", err)
	}
	h.fake.ResetCalls()

	cmd := h.draw()
	cmd.Program = prog
	cmd.Layout = layout
	cmd.Count = 1
	err = h.ctx.Draw(cmd)
	var ame *AttributeMismatchError
	if !errors.As(err, &ame) {
		t.Fatalf("err = %v, want AttributeMismatchError", err)
	}
	if got := len(h.fake.Calls()); got != 0 {
		t.Errorf("rejected draw reached the driver: %d calls recorded", got)
	}
}

func TestDestroyedBufferHandleIsStale(t *testing.T) {
	h := newHarness(t)
	if err := h.buffer.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if got := h.fake.CallCount("DeleteBuffer"); got != 1 {
		t.Errorf("DeleteBuffer calls = %d, want 1", got)
	}
	// The array-buffer slot referenced the destroyed buffer; it must now
	// be known-unbound, not unknown.
	if cur, known := h.ctx.cache.Current(state.ArrayBuffer()); !known || !cur.IsZero() {
		t.Errorf("array-buffer slot after destroy: known=%v handle=%v", known, cur)
	}
	err := h.ctx.Draw(h.draw())
	var ihe *InvalidHandleError
	if !errors.As(err, &ihe) {
		t.Errorf("draw with destroyed buffer: err = %v, want InvalidHandleError", err)
	}
	if err := h.buffer.Destroy(); !errors.As(err, &ihe) {
		t.Errorf("double destroy: err = %v, want InvalidHandleError", err)
	}
}

func TestHandleNotReusedAfterDestroy(t *testing.T) {
	h := newHarness(t)
	old := h.buffer
	if err := old.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	// The registry slot is recycled; the stale handle still must not
	// resolve to the new buffer.
	fresh, err := h.ctx.CreateBuffer(BufferDesc{Size: 128})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if old.Size() != 0 {
		t.Errorf("stale handle resolved: size = %d", old.Size())
	}
	if fresh.Size() != 128 {
		t.Errorf("fresh buffer size = %d, want 128", fresh.Size())
	}
}

func TestDriverExecutionErrorInvalidatesState(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueError(driver.INVALID_OPERATION)
	err := h.ctx.Draw(h.draw())
	var dee *DriverExecutionError
	if !errors.As(err, &dee) {
		t.Fatalf("err = %v, want DriverExecutionError", err)
	}
	if dee.Code != driver.INVALID_OPERATION {
		t.Errorf("Code = %v", dee.Code)
	}
	// The touched slots are unknown again, so the next draw re-issues
	// the binds instead of trusting poisoned state.
	h.fake.ResetCalls()
	if err := h.ctx.Draw(h.draw()); err != nil {
		t.Fatalf("recovery draw: %v", err)
	}
	if got := h.fake.CallCount("UseProgram"); got != 1 {
		t.Errorf("UseProgram after execution error = %d, want 1 (re-issued)", got)
	}
}

func TestInvalidateCachedStateForcesReemission(t *testing.T) {
	h := newHarness(t)
	if err := h.ctx.Draw(h.draw()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	h.ctx.InvalidateCachedState()
	h.fake.ResetCalls()
	if err := h.ctx.Draw(h.draw()); err != nil {
		t.Fatalf("Draw after invalidate: %v", err)
	}
	if got := h.fake.CallCount("UseProgram"); got != 1 {
		t.Errorf("UseProgram after InvalidateCachedState = %d, want 1", got)
	}
}

func TestBufferWriteAndRead(t *testing.T) {
	h := newHarness(t)
	if err := h.buffer.Write(16, make([]byte, 32)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	call, ok := h.fake.LastCall("BufferSubData")
	if !ok {
		t.Fatal("no BufferSubData recorded")
	}
	if call.Args[1] != 16 {
		t.Errorf("BufferSubData offset = %v, want 16", call.Args[1])
	}

	if err := h.buffer.Write(48, make([]byte, 32)); !errors.Is(err, ErrBufferRange) {
		t.Errorf("out-of-range write: err = %v, want ErrBufferRange", err)
	}
	if err := h.buffer.Write(-1, make([]byte, 4)); !errors.Is(err, ErrBufferRange) {
		t.Errorf("negative offset: err = %v, want ErrBufferRange", err)
	}

	dst := make([]byte, 64)
	if err := h.buffer.Read(0, dst); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := h.fake.CallCount("GetBufferSubData"); got != 1 {
		t.Errorf("GetBufferSubData calls = %d, want 1", got)
	}
	if err := h.buffer.Read(60, make([]byte, 8)); !errors.Is(err, ErrBufferRange) {
		t.Errorf("out-of-range read: err = %v, want ErrBufferRange", err)
	}
}

func TestTextureUploadBounds(t *testing.T) {
	h := newHarness(t)
	tex, err := h.ctx.CreateTexture(TextureDesc{
		Width: 8, Height: 8, Format: gputypes.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if err := tex.Upload(0, 0, 0, 8, 8, make([]byte, 8*8*4)); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if got := h.fake.CallCount("TexSubImage2D"); got != 1 {
		t.Errorf("TexSubImage2D calls = %d, want 1", got)
	}
	if err := tex.Upload(0, 4, 4, 8, 8, make([]byte, 8*8*4)); !errors.Is(err, ErrTextureRegion) {
		t.Errorf("region overflow: err = %v, want ErrTextureRegion", err)
	}
	if err := tex.Upload(0, 0, 0, 8, 8, make([]byte, 10)); !errors.Is(err, ErrTextureRegion) {
		t.Errorf("short data: err = %v, want ErrTextureRegion", err)
	}
	if err := tex.Upload(1, 0, 0, 1, 1, make([]byte, 4)); !errors.Is(err, ErrTextureRegion) {
		t.Errorf("level out of range: err = %v, want ErrTextureRegion", err)
	}
}

func TestCreateFramebufferIncomplete(t *testing.T) {
	h := newHarness(t)
	color, err := h.ctx.CreateTexture(TextureDesc{
		Width: 64, Height: 64, Format: gputypes.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	h.fake.FramebufferStatus = driver.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	_, err = h.ctx.CreateFramebuffer(FramebufferDesc{
		Color: []Attachment{{Texture: &color}},
	})
	var fce *FramebufferCompatibilityError
	if !errors.As(err, &fce) {
		t.Fatalf("err = %v, want FramebufferCompatibilityError", err)
	}
	if got := h.fake.CallCount("DeleteFramebuffer"); got != 1 {
		t.Errorf("incomplete framebuffer not rolled back: DeleteFramebuffer calls = %d", got)
	}
}

func TestDrawToFramebuffer(t *testing.T) {
	h := newHarness(t)
	color, err := h.ctx.CreateTexture(TextureDesc{
		Width: 64, Height: 64, Format: gputypes.TextureFormatRGBA8Unorm,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	depth, err := h.ctx.CreateRenderbuffer(RenderbufferDesc{
		Width: 64, Height: 64, Format: gputypes.TextureFormatDepth24Plus,
	})
	if err != nil {
		t.Fatalf("CreateRenderbuffer: %v", err)
	}
	fb, err := h.ctx.CreateFramebuffer(FramebufferDesc{
		Color: []Attachment{{Texture: &color}},
		Depth: &Attachment{Renderbuffer: &depth},
	})
	if err != nil {
		t.Fatalf("CreateFramebuffer: %v", err)
	}

	cmd := h.draw()
	cmd.Framebuffer = &fb
	cmd.Depth = &DepthState{Compare: gputypes.CompareFunctionLess}
	if err := h.ctx.Draw(cmd); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := h.fake.CallCount("DepthFunc"); got != 1 {
		t.Errorf("DepthFunc calls = %d, want 1", got)
	}
	if got := h.fake.CallCount("Enable"); got == 0 {
		t.Error("depth test never enabled")
	}
}

func TestClear(t *testing.T) {
	h := newHarness(t)
	d := 1.0
	err := h.ctx.Clear(ClearCommand{
		Color: &[4]float32{0, 0, 0, 1},
		Depth: &d,
	})
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	call, ok := h.fake.LastCall("Clear")
	if !ok {
		t.Fatal("no Clear recorded")
	}
	want := driver.COLOR_BUFFER_BIT | driver.DEPTH_BUFFER_BIT
	if call.Args[0] != want {
		t.Errorf("Clear mask = %v, want %v", call.Args[0], want)
	}
}

func TestDispatch(t *testing.T) {
	h := newHarness(t)
	comp, err := h.ctx.AdoptProgram(ProgramDesc{DriverID: 99, Compute: true})
	if err != nil {
		t.Fatalf("AdoptProgram: %v", err)
	}
	storage, err := h.ctx.CreateBuffer(BufferDesc{Size: 4096})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	h.fake.ResetCalls()
	err = h.ctx.Dispatch(DispatchCommand{
		Program:        comp,
		Groups:         [3]uint32{8, 8, 1},
		StorageBuffers: []StorageSlot{{Index: 0, Buffer: storage}},
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	call, ok := h.fake.LastCall("DispatchCompute")
	if !ok {
		t.Fatal("no DispatchCompute recorded")
	}
	if call.Args[0] != uint32(8) || call.Args[2] != uint32(1) {
		t.Errorf("DispatchCompute args = %v", call.Args)
	}
	if got := h.fake.CallCount("BindBufferBase"); got != 1 {
		t.Errorf("BindBufferBase calls = %d, want 1", got)
	}
	if got := h.fake.CallCount("MemoryBarrier"); got != 1 {
		t.Errorf("MemoryBarrier calls = %d, want 1", got)
	}
}

func TestQueryLifecycle(t *testing.T) {
	h := newHarness(t)
	q, err := h.ctx.CreateQuery(QuerySamplesPassed)
	if err != nil {
		t.Fatalf("CreateQuery: %v", err)
	}
	if err := q.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	q2, err := h.ctx.CreateQuery(QuerySamplesPassed)
	if err != nil {
		t.Fatalf("CreateQuery: %v", err)
	}
	if err := q2.Begin(); !errors.Is(err, ErrQueryActive) {
		t.Errorf("second Begin: err = %v, want ErrQueryActive", err)
	}
	if err := q2.End(); !errors.Is(err, ErrQueryNotActive) {
		t.Errorf("End of inactive query: err = %v, want ErrQueryNotActive", err)
	}
	if err := q.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	h.fake.QueryValue = 1234
	v, ok, err := q.Result(false)
	if err != nil || !ok || v != 1234 {
		t.Errorf("Result = (%d, %v, %v), want (1234, true, nil)", v, ok, err)
	}
}

func TestQueryBeginDriverErrorReleasesSlot(t *testing.T) {
	h := newHarness(t)
	q, err := h.ctx.CreateQuery(QuerySamplesPassed)
	if err != nil {
		t.Fatalf("CreateQuery: %v", err)
	}
	h.fake.QueueError(driver.INVALID_OPERATION)
	var dee *DriverExecutionError
	if err := q.Begin(); !errors.As(err, &dee) {
		t.Fatalf("Begin with driver error: err = %v, want DriverExecutionError", err)
	}
	// The driver never started the query, so the slot must not claim one.
	if err := q.Begin(); err != nil {
		t.Errorf("retry Begin: %v", err)
	}
	if err := q.End(); err != nil {
		t.Errorf("End: %v", err)
	}
}

func TestQueryEndDriverErrorReleasesSlot(t *testing.T) {
	h := newHarness(t)
	q, err := h.ctx.CreateQuery(QuerySamplesPassed)
	if err != nil {
		t.Fatalf("CreateQuery: %v", err)
	}
	if err := q.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	h.fake.QueueError(driver.INVALID_OPERATION)
	var dee *DriverExecutionError
	if err := q.End(); !errors.As(err, &dee) {
		t.Fatalf("End with driver error: err = %v, want DriverExecutionError", err)
	}
	// The slot is unknown, not stuck on the old query: a fresh Begin must
	// not be refused, and a repeated End must not reach the driver again.
	if err := q.End(); !errors.Is(err, ErrQueryNotActive) {
		t.Errorf("repeated End: err = %v, want ErrQueryNotActive", err)
	}
	if err := q.Begin(); err != nil {
		t.Errorf("Begin after failed End: %v", err)
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	h := newHarness(t)
	if _, err := h.ctx.CreateTexture(TextureDesc{Width: 4, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm}); err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	live := h.ctx.Stats().LiveResources
	if live == 0 {
		t.Fatal("no live resources before Close")
	}
	if err := h.ctx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	deletes := h.fake.CallCount("DeleteBuffer") + h.fake.CallCount("DeleteTexture") +
		h.fake.CallCount("DeleteProgram") + h.fake.CallCount("DeleteVertexArray")
	if deletes != live {
		t.Errorf("driver deletes = %d, want %d", deletes, live)
	}
	if err := h.ctx.Draw(h.draw()); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Draw after Close: err = %v, want ErrContextClosed", err)
	}
	if _, err := h.ctx.CreateBuffer(BufferDesc{Size: 4}); !errors.Is(err, ErrContextClosed) {
		t.Errorf("CreateBuffer after Close: err = %v, want ErrContextClosed", err)
	}
	if err := h.ctx.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestConcurrentUsePanics(t *testing.T) {
	h := newHarness(t)
	h.ctx.enter()
	defer h.ctx.leave()
	defer func() {
		if recover() == nil {
			t.Error("re-entry did not panic")
		}
	}()
	h.ctx.Stats()
}

func TestBufferSizeTakesGuard(t *testing.T) {
	h := newHarness(t)
	h.ctx.enter()
	defer h.ctx.leave()
	defer func() {
		if recover() == nil {
			t.Error("Size during concurrent use did not panic")
		}
	}()
	h.buffer.Size()
}

func TestAllocationFailureRollsBack(t *testing.T) {
	h := newHarness(t)
	h.fake.QueueError(driver.OUT_OF_MEMORY)
	_, err := h.ctx.CreateBuffer(BufferDesc{Size: 1 << 20})
	var dae *DriverAllocationError
	if !errors.As(err, &dae) {
		t.Fatalf("err = %v, want DriverAllocationError", err)
	}
	if dae.Code != driver.OUT_OF_MEMORY {
		t.Errorf("Code = %v", dae.Code)
	}
	if got := h.fake.CallCount("DeleteBuffer"); got != 1 {
		t.Errorf("failed allocation not rolled back: DeleteBuffer calls = %d", got)
	}
	if got := h.ctx.Stats().LiveResources; got != 3 {
		t.Errorf("LiveResources = %d, want the 3 harness resources", got)
	}
}

func TestBadDescriptors(t *testing.T) {
	h := newHarness(t)
	if _, err := h.ctx.CreateBuffer(BufferDesc{}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("empty buffer: err = %v", err)
	}
	if _, err := h.ctx.CreateBuffer(BufferDesc{Size: 8, Data: make([]byte, 4)}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("size/data mismatch: err = %v", err)
	}
	if _, err := h.ctx.CreateTexture(TextureDesc{Width: 0, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("zero-width texture: err = %v", err)
	}
	if _, err := h.ctx.CreateTexture(TextureDesc{Width: 1 << 20, Height: 4, Format: gputypes.TextureFormatRGBA8Unorm}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("oversized texture: err = %v", err)
	}
	if _, err := h.ctx.AdoptProgram(ProgramDesc{}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("zero program id: err = %v", err)
	}
}

func TestIndexedDraw(t *testing.T) {
	h := newHarness(t)
	idx, err := h.ctx.CreateBuffer(BufferDesc{Size: 6})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	h.fake.ResetCalls()
	cmd := h.draw()
	cmd.Index = &IndexBinding{Buffer: idx, Format: gputypes.IndexFormatUint16}
	cmd.Count = 3
	if err := h.ctx.Draw(cmd); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	call, ok := h.fake.LastCall("DrawElements")
	if !ok {
		t.Fatal("no DrawElements recorded")
	}
	if call.Args[1] != 3 || call.Args[2] != driver.UNSIGNED_SHORT {
		t.Errorf("DrawElements args = %v", call.Args)
	}
	if got := h.fake.CallCount("DrawArrays"); got != 0 {
		t.Errorf("indexed draw issued DrawArrays %d times", got)
	}
}

func BenchmarkWarmDraw(b *testing.B) {
	fake := drivertest.New()
	ctx, err := NewContext(fake, Options{})
	if err != nil {
		b.Fatalf("NewContext: %v", err)
	}
	prog, _ := ctx.AdoptProgram(ProgramDesc{
		DriverID:   77,
		Attributes: []ShaderAttribute{{Name: "position", Location: 0, Type: TypeVec2}},
	})
	layout, _ := ctx.CreateVertexLayout(VertexLayoutDesc{
		Stride: 16,
		Attributes: []VertexAttributeDesc{
			{Location: 0, Format: gputypes.VertexFormatFloat32x2, Offset: 0, Buffer: 0},
		},
	})
	buf, _ := ctx.CreateBuffer(BufferDesc{Size: 1 << 16})
	cmd := DrawCommand{
		Program: prog,
		Layout:  layout,
		Buffers: []Buffer{buf},
		Mode:    Triangles,
		Count:   3,
	}
	if err := ctx.Draw(cmd); err != nil {
		b.Fatalf("warmup draw: %v", err)
	}
	fake.ResetCalls()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Trim the fake's call log so the benchmark measures the draw
		// path, not slice growth.
		if i%1024 == 0 {
			fake.ResetCalls()
		}
		if err := ctx.Draw(cmd); err != nil {
			b.Fatal(err)
		}
	}
}
