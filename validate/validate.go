// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

// Package validate checks draw and dispatch requests against the handle
// registry, the capability table, and the cached context state, and turns
// an accepted request into the minimal list of driver transitions plus the
// final call parameters. Validation is pure: no driver calls, no cache
// mutation. The emitter applies the result.
package validate

import (
	"errors"
	"fmt"

	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
)

var (
	// ErrComputeProgram is returned when a draw request names a
	// compute-only program.
	ErrComputeProgram = errors.New("validate: program is compute-only and cannot draw")

	// ErrNotComputeProgram is returned when a dispatch request names a
	// program without a compute stage.
	ErrNotComputeProgram = errors.New("validate: program has no compute stage and cannot dispatch")

	// ErrUnknownBlendFactor is returned for a blend factor the layer
	// cannot express to the driver.
	ErrUnknownBlendFactor = errors.New("validate: unrecognized blend factor")

	// ErrUnknownCompareFunction is returned for a depth comparison the
	// layer cannot express to the driver.
	ErrUnknownCompareFunction = errors.New("validate: unrecognized depth compare function")
)

// resolve looks a handle up and insists on a kind. A miss is always a
// caller defect (zero, destroyed, or stale handle).
func resolve(reg *registry.Registry, h registry.Handle, want registry.Kind) (*registry.Record, error) {
	rec, ok := reg.Lookup(h)
	if !ok {
		return nil, &InvalidHandleError{Handle: h, Want: want}
	}
	if rec.Kind != want {
		return nil, &InvalidHandleError{Handle: h, Want: want, Got: rec.Kind}
	}
	return rec, nil
}

func layoutAttr(m registry.VertexLayoutMeta, location int) (registry.VertexAttribute, bool) {
	for _, a := range m.Attributes {
		if a.Location == location {
			return a, true
		}
	}
	return registry.VertexAttribute{}, false
}

// Prepare validates req and builds the driver work it requires. Checks run
// in a fixed order and stop at the first failure: handle resolution,
// attribute compatibility, index range, uniforms, framebuffer
// compatibility. On success the returned transitions contain only state
// changes the cache does not already reflect.
func Prepare(req *DrawRequest, reg *registry.Registry, cache *state.Cache, table *caps.Table) (*PreparedDraw, error) {
	// Handle resolution.
	progRec, err := resolve(reg, req.Program, registry.KindProgram)
	if err != nil {
		return nil, err
	}
	prog := progRec.Meta.(registry.ProgramMeta)
	if prog.Compute {
		return nil, ErrComputeProgram
	}

	layoutRec, err := resolve(reg, req.Layout, registry.KindVertexLayout)
	if err != nil {
		return nil, err
	}
	layout := layoutRec.Meta.(registry.VertexLayoutMeta)

	bufRecs := make([]*registry.Record, len(req.Buffers))
	bufMetas := make([]registry.BufferMeta, len(req.Buffers))
	for i, h := range req.Buffers {
		rec, err := resolve(reg, h, registry.KindBuffer)
		if err != nil {
			return nil, err
		}
		bufRecs[i] = rec
		bufMetas[i] = rec.Meta.(registry.BufferMeta)
	}

	var (
		idxRec    *registry.Record
		idxMeta   registry.BufferMeta
		idxHandle registry.Handle
	)
	if req.Index != nil {
		idxHandle = req.Index.Buffer
		idxRec, err = resolve(reg, idxHandle, registry.KindBuffer)
		if err != nil {
			return nil, err
		}
		idxMeta = idxRec.Meta.(registry.BufferMeta)
	}

	maxUnits := table.Limit(caps.MaxTextureUnits)
	texRecs := make([]*registry.Record, len(req.Textures))
	samplerRecs := make([]*registry.Record, len(req.Textures))
	for i, tb := range req.Textures {
		if tb.Unit < 0 || tb.Unit >= maxUnits {
			return nil, &UniformTypeError{Reason: fmt.Sprintf("texture unit %d out of range [0,%d)", tb.Unit, maxUnits)}
		}
		texRecs[i], err = resolve(reg, tb.Texture, registry.KindTexture)
		if err != nil {
			return nil, err
		}
		if !tb.Sampler.IsZero() {
			samplerRecs[i], err = resolve(reg, tb.Sampler, registry.KindSampler)
			if err != nil {
				return nil, err
			}
		}
	}

	var fbRec *registry.Record
	if !req.Framebuffer.IsZero() {
		fbRec, err = resolve(reg, req.Framebuffer, registry.KindFramebuffer)
		if err != nil {
			return nil, err
		}
	}

	// Attribute compatibility and vertex-source bounds.
	if req.First < 0 || req.Count < 0 {
		return nil, &IndexRangeError{Reason: fmt.Sprintf("negative range first=%d count=%d", req.First, req.Count)}
	}
	stride := layout.EffectiveStride(VertexFormatSize)
	maxVertex := -1
	if req.Index == nil && req.Count > 0 {
		maxVertex = req.First + req.Count - 1
	}
	// minVertices is the smallest vertex count any source can supply,
	// the ceiling on what an index may address.
	minVertices := -1
	for _, la := range layout.Attributes {
		fi, ok := vertexFormats[la.Format]
		if !ok {
			return nil, &AttributeMismatchError{Location: la.Location, Reason: "unrecognized vertex format"}
		}
		if la.Offset < 0 {
			return nil, &AttributeMismatchError{Location: la.Location, Reason: "negative offset"}
		}
		if la.Buffer < 0 || la.Buffer >= len(req.Buffers) {
			return nil, &AttributeMismatchError{Location: la.Location, Reason: fmt.Sprintf("vertex source %d not supplied (%d sources in request)", la.Buffer, len(req.Buffers))}
		}
		size := bufMetas[la.Buffer].Size
		if la.Offset+fi.size > size {
			return nil, &AttributeMismatchError{Location: la.Location, Reason: fmt.Sprintf("%d bytes at offset %d exceed the %d-byte source buffer", fi.size, la.Offset, size)}
		}
		if maxVertex >= 0 {
			need := la.Offset + maxVertex*stride + fi.size
			if need > size {
				return nil, &AttributeMismatchError{Location: la.Location, Reason: fmt.Sprintf("vertices [%d,%d] need %d bytes, source buffer holds %d", req.First, maxVertex, need, size)}
			}
		}
		if stride > 0 {
			avail := (size-la.Offset-fi.size)/stride + 1
			if minVertices < 0 || avail < minVertices {
				minVertices = avail
			}
		}
	}
	for _, sa := range prog.Attributes {
		la, ok := layoutAttr(layout, sa.Location)
		if !ok {
			return nil, &AttributeMismatchError{Attribute: sa.Name, Location: sa.Location, Reason: "layout provides no attribute at this location"}
		}
		if !compatible(vertexFormats[la.Format], sa.Type) {
			return nil, &AttributeMismatchError{Attribute: sa.Name, Location: sa.Location, Reason: fmt.Sprintf("vertex format %v cannot feed a %v input", la.Format, sa.Type)}
		}
	}

	// Index range.
	var ifi indexFormatInfo
	if req.Index != nil {
		var ok bool
		ifi, ok = indexFormats[req.Index.Format]
		if !ok {
			return nil, &IndexRangeError{Reason: "unrecognized index format"}
		}
		if req.Index.Offset < 0 {
			return nil, &IndexRangeError{Reason: "negative index buffer offset"}
		}
		need := req.Index.Offset + (req.First+req.Count)*ifi.size
		if need > idxMeta.Size {
			return nil, &IndexRangeError{Reason: fmt.Sprintf("indices [%d,%d) need %d bytes, index buffer holds %d", req.First, req.First+req.Count, need, idxMeta.Size)}
		}
		if int64(minVertices) > ifi.maxValue+1 {
			return nil, &IndexRangeError{Reason: fmt.Sprintf("vertex sources hold %d vertices, index type addresses at most %d", minVertices, ifi.maxValue+1)}
		}
	}

	// Uniforms.
	units := make(map[int]bool, len(req.Textures))
	for _, tb := range req.Textures {
		units[tb.Unit] = true
	}
	uploads, err := checkUniforms(prog, req.Uniforms, units)
	if err != nil {
		return nil, err
	}

	// Framebuffer compatibility. Re-checked per draw: attachments may
	// have been destroyed since the framebuffer was built.
	if fbRec != nil {
		if err := CheckFramebufferAttachments(reg, fbRec.Meta.(registry.FramebufferMeta)); err != nil {
			return nil, err
		}
	}

	// Fixed-function enum mapping.
	var srcF, dstF, depthFn driver.Enum
	if b := req.State.Blend; b != nil {
		var okS, okD bool
		srcF, okS = blendFactors[b.Src]
		dstF, okD = blendFactors[b.Dst]
		if !okS || !okD {
			return nil, ErrUnknownBlendFactor
		}
	}
	if d := req.State.Depth; d != nil {
		var ok bool
		depthFn, ok = compareFuncs[d.Compare]
		if !ok {
			return nil, ErrUnknownCompareFunction
		}
	}

	// Transition building: only state the cache does not already hold.
	var trs []state.Transition
	suppressed := 0
	bind := func(t state.Target, h registry.Handle, id uint32) {
		if cur, known := cache.Current(t); known && cur == h {
			suppressed++
			return
		}
		trs = append(trs, state.Transition{Kind: state.TransitionBind, Target: t, Handle: h, DriverID: id})
	}

	var fbID uint32
	if fbRec != nil {
		fbID = fbRec.DriverID
	}
	bind(state.DrawFramebuffer(), req.Framebuffer, fbID)
	bind(state.Program(), req.Program, progRec.DriverID)

	desired := state.VertexConfig{
		Buffers: append([]registry.Handle(nil), req.Buffers...),
		Index:   idxHandle,
	}
	if cfg, ok := cache.VertexConfig(req.Layout); ok && cfg.Equal(desired) {
		// The VAO already holds these sources; a rebind suffices.
		bind(state.VertexArray(), req.Layout, layoutRec.DriverID)
	} else {
		attrs := make([]state.AttributePointer, len(layout.Attributes))
		var last registry.Handle
		for i, la := range layout.Attributes {
			fi := vertexFormats[la.Format]
			attrs[i] = state.AttributePointer{
				Location:   la.Location,
				Components: fi.components,
				Type:       fi.typ,
				Normalized: fi.normalized,
				Integer:    fi.integer,
				Offset:     la.Offset,
				BufferID:   bufRecs[la.Buffer].DriverID,
			}
			last = req.Buffers[la.Buffer]
		}
		var idxID uint32
		if idxRec != nil {
			idxID = idxRec.DriverID
		}
		trs = append(trs, state.Transition{Kind: state.TransitionVertexPointers, Vertex: &state.VertexTransition{
			Layout:     req.Layout,
			LayoutID:   layoutRec.DriverID,
			Stride:     stride,
			Attrs:      attrs,
			Config:     desired,
			IndexID:    idxID,
			LastBuffer: last,
		}})
	}

	for i, tb := range req.Textures {
		bind(state.TextureUnit(tb.Unit), tb.Texture, texRecs[i].DriverID)
		var sid uint32
		if samplerRecs[i] != nil {
			sid = samplerRecs[i].DriverID
		}
		// A zero sampler handle must displace any lingering sampler
		// object so the texture's own parameters apply.
		bind(state.SamplerUnit(tb.Unit), tb.Sampler, sid)
	}

	feature := func(f state.Feature, want bool) {
		if on, known := cache.FeatureState(f); known && on == want {
			return
		}
		k := state.TransitionDisable
		if want {
			k = state.TransitionEnable
		}
		trs = append(trs, state.Transition{Kind: k, Feature: f})
	}
	feature(state.FeatureBlend, req.State.Blend != nil)
	if req.State.Blend != nil {
		if s, d, known := cache.BlendFunc(); !known || s != srcF || d != dstF {
			trs = append(trs, state.Transition{Kind: state.TransitionBlendFunc, SrcFactor: srcF, DstFactor: dstF})
		}
	}
	feature(state.FeatureDepthTest, req.State.Depth != nil)
	if req.State.Depth != nil {
		if fn, known := cache.DepthFunc(); !known || fn != depthFn {
			trs = append(trs, state.Transition{Kind: state.TransitionDepthFunc, DepthFn: depthFn})
		}
	}
	if vp := req.State.Viewport; vp != nil {
		if cur, known := cache.Viewport(); !known || cur != *vp {
			trs = append(trs, state.Transition{Kind: state.TransitionViewport, Viewport: *vp})
		}
	}

	call := DrawCall{Mode: req.Mode.Enum(), First: req.First, Count: req.Count}
	if req.Index != nil {
		call.Indexed = true
		call.IndexType = ifi.typ
		call.IndexOffset = req.Index.Offset + req.First*ifi.size
	}
	return &PreparedDraw{Transitions: trs, Uniforms: uploads, Call: call, Suppressed: suppressed}, nil
}

// PrepareDispatch validates a compute dispatch and builds its driver work.
func PrepareDispatch(req *DispatchRequest, reg *registry.Registry, cache *state.Cache, table *caps.Table) (*PreparedDispatch, error) {
	if err := table.Require(caps.FeatureComputeShader, "Dispatch"); err != nil {
		return nil, err
	}

	progRec, err := resolve(reg, req.Program, registry.KindProgram)
	if err != nil {
		return nil, err
	}
	prog := progRec.Meta.(registry.ProgramMeta)
	if !prog.Compute {
		return nil, ErrNotComputeProgram
	}

	maxBindings := table.Limit(caps.MaxStorageBufferBindings)
	storageRecs := make([]*registry.Record, len(req.StorageBuffers))
	for i, sb := range req.StorageBuffers {
		if sb.Index < 0 || sb.Index >= maxBindings {
			return nil, &IndexRangeError{Reason: fmt.Sprintf("storage binding %d out of range [0,%d)", sb.Index, maxBindings)}
		}
		storageRecs[i], err = resolve(reg, sb.Buffer, registry.KindBuffer)
		if err != nil {
			return nil, err
		}
	}

	// Dispatch carries no texture bindings, so no sampler uniform can be
	// satisfied.
	uploads, err := checkUniforms(prog, req.Uniforms, nil)
	if err != nil {
		return nil, err
	}

	var trs []state.Transition
	suppressed := 0
	bind := func(t state.Target, h registry.Handle, id uint32) {
		if cur, known := cache.Current(t); known && cur == h {
			suppressed++
			return
		}
		trs = append(trs, state.Transition{Kind: state.TransitionBind, Target: t, Handle: h, DriverID: id})
	}
	bind(state.Program(), req.Program, progRec.DriverID)
	for i, sb := range req.StorageBuffers {
		bind(state.StorageBufferBase(sb.Index), sb.Buffer, storageRecs[i].DriverID)
	}

	return &PreparedDispatch{Transitions: trs, Uniforms: uploads, Groups: req.Groups, Suppressed: suppressed}, nil
}

func checkUniforms(prog registry.ProgramMeta, bindings []UniformBinding, units map[int]bool) ([]UniformUpload, error) {
	uploads := make([]UniformUpload, 0, len(bindings))
	for _, ub := range bindings {
		u, ok := prog.Uniform(ub.Name)
		if !ok {
			return nil, &UniformTypeError{Name: ub.Name, Reason: "not declared by the program"}
		}
		if got := ub.Value.Type(); got != u.Type {
			return nil, &UniformTypeError{Name: ub.Name, Want: u.Type, Got: got}
		}
		if u.Type == registry.TypeSampler2D {
			unit := int(ub.Value.Int())
			if !units[unit] {
				return nil, &UniformTypeError{Name: ub.Name, Reason: fmt.Sprintf("samples texture unit %d, which carries no texture binding", unit)}
			}
		}
		uploads = append(uploads, UniformUpload{Location: u.Location, Value: ub.Value})
	}
	return uploads, nil
}

// CheckLayout validates a vertex layout at creation time: known formats,
// unique in-range locations, and offsets consistent with the declared
// stride. Source buffer indices are checked per draw, when the sources are
// known.
func CheckLayout(meta registry.VertexLayoutMeta, maxAttributes int) error {
	if meta.Stride < 0 {
		return &AttributeMismatchError{Reason: "negative stride"}
	}
	seen := make(map[int]bool, len(meta.Attributes))
	for _, a := range meta.Attributes {
		if a.Location < 0 || (maxAttributes > 0 && a.Location >= maxAttributes) {
			return &AttributeMismatchError{Location: a.Location, Reason: fmt.Sprintf("location out of range [0,%d)", maxAttributes)}
		}
		if seen[a.Location] {
			return &AttributeMismatchError{Location: a.Location, Reason: "duplicate attribute location"}
		}
		seen[a.Location] = true
		fi, ok := vertexFormats[a.Format]
		if !ok {
			return &AttributeMismatchError{Location: a.Location, Reason: "unrecognized vertex format"}
		}
		if a.Offset < 0 {
			return &AttributeMismatchError{Location: a.Location, Reason: "negative offset"}
		}
		if a.Buffer < 0 {
			return &AttributeMismatchError{Location: a.Location, Reason: "negative vertex source index"}
		}
		if meta.Stride > 0 && a.Offset+fi.size > meta.Stride {
			return &AttributeMismatchError{Location: a.Location, Reason: fmt.Sprintf("%d bytes at offset %d extend past the %d-byte stride", fi.size, a.Offset, meta.Stride)}
		}
	}
	return nil
}

// CheckFramebufferAttachments validates that a framebuffer's attachments
// are live, correctly classed, and dimension-matched. Used both at
// framebuffer creation and again per draw.
func CheckFramebufferAttachments(reg *registry.Registry, meta registry.FramebufferMeta) error {
	if len(meta.Color) == 0 && meta.Depth.IsZero() {
		return &FramebufferCompatibilityError{Reason: "no attachments"}
	}
	for i, h := range meta.Color {
		w, ht, depth, err := attachmentInfo(reg, h)
		if err != nil {
			return err
		}
		if depth {
			return &FramebufferCompatibilityError{Reason: fmt.Sprintf("color attachment %d has a depth format", i)}
		}
		if w != meta.Width || ht != meta.Height {
			return &FramebufferCompatibilityError{Reason: fmt.Sprintf("color attachment %d is %dx%d, framebuffer is %dx%d", i, w, ht, meta.Width, meta.Height)}
		}
	}
	if !meta.Depth.IsZero() {
		w, ht, depth, err := attachmentInfo(reg, meta.Depth)
		if err != nil {
			return err
		}
		if !depth {
			return &FramebufferCompatibilityError{Reason: "depth attachment has a color format"}
		}
		if w != meta.Width || ht != meta.Height {
			return &FramebufferCompatibilityError{Reason: fmt.Sprintf("depth attachment is %dx%d, framebuffer is %dx%d", w, ht, meta.Width, meta.Height)}
		}
	}
	return nil
}

// attachmentInfo resolves a framebuffer attachment, which may be a texture
// or a renderbuffer.
func attachmentInfo(reg *registry.Registry, h registry.Handle) (w, ht int, depth bool, err error) {
	rec, ok := reg.Lookup(h)
	if !ok {
		return 0, 0, false, &InvalidHandleError{Handle: h, Want: registry.KindTexture}
	}
	switch m := rec.Meta.(type) {
	case registry.TextureMeta:
		return m.Width, m.Height, IsDepthFormat(m.Format), nil
	case registry.RenderbufferMeta:
		return m.Width, m.Height, IsDepthFormat(m.Format), nil
	}
	return 0, 0, false, &InvalidHandleError{Handle: h, Want: registry.KindTexture, Got: rec.Kind}
}
