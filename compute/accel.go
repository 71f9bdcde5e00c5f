// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compute

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/cpmech/maxwell2d/grid"
	"github.com/cpmech/maxwell2d/render"
)

//go:embed shaders/update_e.wgsl
var shaderUpdateE string

//go:embed shaders/update_h.wgsl
var shaderUpdateH string

//go:embed shaders/visualize_te1.wgsl
var shaderVisTE1 string

//go:embed shaders/visualize_te2.wgsl
var shaderVisTE2 string

//go:embed shaders/boundaries.wgsl
var shaderBoundaries string

// paramsUniformSize and rangeUniformSize are the byte layouts
// update_E.wgsl/update_H.wgsl's Params and both visualize_TE_*.wgsl
// Range structs expect: every field is a 4-byte scalar, packed in
// declaration order with no padding.
const (
	paramsUniformSize = 20 // width, height, dt, dx, dy
	rangeUniformSize  = 8  // two f32 fields
)

// Accel is the data-parallel accelerator backend: the five compute
// kernels sharing one WebGPU device and queue. Host mirrors
// (the Grid's own slices) are the source of truth: every kernel begins
// by uploading them and ends by downloading the planes it wrote.
type Accel struct {
	instance hal.Instance
	adapter  hal.Adapter
	device   hal.Device
	queue    hal.Queue

	shaderE, shaderH, shaderV1, shaderV2, shaderB hal.ShaderModule
	pipeE, pipeH, pipeV1, pipeV2, pipeB           hal.ComputePipeline
	layoutE, layoutH, layoutV1, layoutV2, layoutB hal.BindGroupLayout
	bgE, bgH, bgV1, bgV2, bgB                     hal.BindGroup

	bufEpsilon, bufMu, bufSigma hal.Buffer
	bufEz, bufHx, bufHy         hal.Buffer
	bufImage, bufMask           hal.Buffer
	bufParams, bufRangeV1       hal.Buffer
	bufRangeV2                  hal.Buffer

	w, h int
}

// NewAccel runs the fallible accelerator-initialization chain in
// order: platform discovery, device discovery, context
// creation, queue creation, kernel-source load, program build, bind
// group layout + pipeline layout + kernel object creation, buffer
// allocation, bind group creation. Any failed step returns
// immediately, annotated with the step name, so Select can fall back to
// the CPU backend and log a warning without aborting the run.
func NewAccel(w, h int) (*Accel, error) {
	a := &Accel{w: w, h: h}

	instance, err := hal.CreateInstance(&hal.InstanceDescriptor{})
	if err != nil {
		return nil, fmt.Errorf("platform discovery: %w", err)
	}
	a.instance = instance

	adapter, err := instance.RequestAdapter(&hal.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("device discovery: %w", err)
	}
	a.adapter = adapter

	device, err := adapter.RequestDevice(&hal.DeviceDescriptor{Label: "maxwell2d"})
	if err != nil {
		return nil, fmt.Errorf("context creation: %w", err)
	}
	a.device = device

	queue := device.GetQueue()
	if queue == nil {
		return nil, fmt.Errorf("queue creation: device returned no queue")
	}
	a.queue = queue

	for name, src := range map[string]string{
		"update_E": shaderUpdateE, "update_H": shaderUpdateH,
		"visualize_TE_1": shaderVisTE1, "visualize_TE_2": shaderVisTE2,
		"draw_material_boundaries": shaderBoundaries,
	} {
		if err := naga.ValidateWGSL(src); err != nil {
			return nil, fmt.Errorf("kernel-source load (%s): %w", name, err)
		}
	}

	if a.shaderE, err = a.buildModule("update_E", shaderUpdateE); err != nil {
		return nil, err
	}
	if a.shaderH, err = a.buildModule("update_H", shaderUpdateH); err != nil {
		return nil, err
	}
	if a.shaderV1, err = a.buildModule("visualize_TE_1", shaderVisTE1); err != nil {
		return nil, err
	}
	if a.shaderV2, err = a.buildModule("visualize_TE_2", shaderVisTE2); err != nil {
		return nil, err
	}
	if a.shaderB, err = a.buildModule("draw_material_boundaries", shaderBoundaries); err != nil {
		return nil, err
	}

	if a.pipeE, a.layoutE, err = a.buildKernel("update_E", a.shaderE, []gputypes.BindGroupLayoutEntry{
		uniformEntry(0, paramsUniformSize),
		storageEntry(1, true),  // epsilon
		storageEntry(2, true),  // sigma
		storageEntry(3, true),  // hx
		storageEntry(4, true),  // hy
		storageEntry(5, false), // ez
	}); err != nil {
		return nil, err
	}
	if a.pipeH, a.layoutH, err = a.buildKernel("update_H", a.shaderH, []gputypes.BindGroupLayoutEntry{
		uniformEntry(0, paramsUniformSize),
		storageEntry(1, true),  // mu
		storageEntry(2, true),  // ez
		storageEntry(3, false), // hx
		storageEntry(4, false), // hy
	}); err != nil {
		return nil, err
	}
	if a.pipeV1, a.layoutV1, err = a.buildKernel("visualize_TE_1", a.shaderV1, []gputypes.BindGroupLayoutEntry{
		uniformEntry(0, rangeUniformSize),
		storageEntry(1, true),  // ez
		storageEntry(2, false), // image
	}); err != nil {
		return nil, err
	}
	if a.pipeV2, a.layoutV2, err = a.buildKernel("visualize_TE_2", a.shaderV2, []gputypes.BindGroupLayoutEntry{
		uniformEntry(0, rangeUniformSize),
		storageEntry(1, true),  // ez
		storageEntry(2, true),  // hx
		storageEntry(3, true),  // hy
		storageEntry(4, false), // image
	}); err != nil {
		return nil, err
	}
	if a.pipeB, a.layoutB, err = a.buildKernel("draw_material_boundaries", a.shaderB, []gputypes.BindGroupLayoutEntry{
		storageEntry(0, true),  // mask
		storageEntry(1, false), // image
	}); err != nil {
		return nil, err
	}

	if err := a.allocBuffers(); err != nil {
		return nil, fmt.Errorf("buffer allocation: %w", err)
	}

	if err := a.uploadConstantUniforms(); err != nil {
		return nil, fmt.Errorf("buffer allocation: %w", err)
	}

	if err := a.buildBindGroups(); err != nil {
		return nil, fmt.Errorf("bind group creation: %w", err)
	}

	return a, nil
}

func (a *Accel) buildModule(label, src string) (hal.ShaderModule, error) {
	mod, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{WGSL: src},
	})
	if err != nil {
		return nil, fmt.Errorf("program build (%s): %w", label, err)
	}
	return mod, nil
}

// buildKernel creates the bind group layout a kernel's @group(0)
// declarations require, wraps it in a pipeline layout, and builds the
// compute pipeline against that layout. The bind group layout is kept
// so buildBindGroups can later bind the real buffers to it.
func (a *Accel) buildKernel(label string, mod hal.ShaderModule, entries []gputypes.BindGroupLayoutEntry) (hal.ComputePipeline, hal.BindGroupLayout, error) {
	layout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   label + "_layout",
		Entries: entries,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("bind group layout (%s): %w", label, err)
	}
	pl, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            label + "_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{layout},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline layout (%s): %w", label, err)
	}
	pipe, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:   label,
		Layout:  pl,
		Compute: hal.ComputeState{Module: mod, EntryPoint: "main"},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("kernel object creation (%s): %w", label, err)
	}
	return pipe, layout, nil
}

func uniformEntry(binding uint32, size uint64) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: size,
		},
	}
}

func storageEntry(binding uint32, readOnly bool) gputypes.BindGroupLayoutEntry {
	t := gputypes.BufferBindingTypeStorage
	if readOnly {
		t = gputypes.BufferBindingTypeReadOnlyStorage
	}
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer:     &gputypes.BufferBindingLayout{Type: t},
	}
}

func (a *Accel) allocBuffers() error {
	n := uint64(a.w * a.h * 4)
	rw := gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst | gputypes.BufferUsageCopySrc
	specs := []struct {
		dst   *hal.Buffer
		size  uint64
		usage gputypes.BufferUsage
	}{
		{&a.bufEpsilon, n, rw},
		{&a.bufMu, n, rw},
		{&a.bufSigma, n, rw},
		{&a.bufEz, n, rw},
		{&a.bufHx, n, rw},
		{&a.bufHy, n, rw},
		{&a.bufImage, 3 * n, rw},
		{&a.bufMask, n, rw},
		{&a.bufParams, paramsUniformSize, gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst},
		{&a.bufRangeV1, rangeUniformSize, gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst},
		{&a.bufRangeV2, rangeUniformSize, gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst},
	}
	for _, s := range specs {
		buf, err := a.device.CreateBuffer(&hal.BufferDescriptor{Size: s.size, Usage: s.usage})
		if err != nil {
			return err
		}
		*s.dst = buf
	}
	return nil
}

// uploadConstantUniforms writes the Params and Range uniforms once.
// grid.New always uses unit cell spacing, so dt/dx/dy are a pure
// function of w and h and never change for the lifetime of this
// device; the visualization ranges are compile-time constants of the
// render package.
func (a *Accel) uploadConstantUniforms() error {
	dx, dy := 1.0, 1.0
	dt := grid.MaxStableDt(dx, dy)
	a.queue.WriteBuffer(a.bufParams, 0, packParamsUniform(a.w, a.h, dt, dx, dy))

	ezMin, ezMax := render.TE1Range()
	a.queue.WriteBuffer(a.bufRangeV1, 0, packRangeUniform(ezMin, ezMax))

	maxField, minField := render.TE2Range()
	a.queue.WriteBuffer(a.bufRangeV2, 0, packRangeUniform(maxField, minField))
	return nil
}

func packParamsUniform(w, h int, dt, dx, dy float64) []byte {
	buf := make([]byte, paramsUniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(w))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(float32(dt)))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(float32(dx)))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(float32(dy)))
	return buf
}

func packRangeUniform(first, second float32) []byte {
	buf := make([]byte, rangeUniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(first))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(second))
	return buf
}

// buildBindGroups binds every kernel's real buffers to the layout
// buildKernel created for it. Buffers are allocated once and never
// reallocated, so these bind groups are valid for the device's entire
// lifetime.
func (a *Accel) buildBindGroups() error {
	n := uint64(a.w * a.h * 4)
	imgSize := 3 * n
	var err error

	if a.bgE, err = a.newBindGroup("update_E_bind", a.layoutE, []gputypes.BindGroupEntry{
		bufEntry(0, a.bufParams, paramsUniformSize),
		bufEntry(1, a.bufEpsilon, n),
		bufEntry(2, a.bufSigma, n),
		bufEntry(3, a.bufHx, n),
		bufEntry(4, a.bufHy, n),
		bufEntry(5, a.bufEz, n),
	}); err != nil {
		return err
	}
	if a.bgH, err = a.newBindGroup("update_H_bind", a.layoutH, []gputypes.BindGroupEntry{
		bufEntry(0, a.bufParams, paramsUniformSize),
		bufEntry(1, a.bufMu, n),
		bufEntry(2, a.bufEz, n),
		bufEntry(3, a.bufHx, n),
		bufEntry(4, a.bufHy, n),
	}); err != nil {
		return err
	}
	if a.bgV1, err = a.newBindGroup("visualize_TE_1_bind", a.layoutV1, []gputypes.BindGroupEntry{
		bufEntry(0, a.bufRangeV1, rangeUniformSize),
		bufEntry(1, a.bufEz, n),
		bufEntry(2, a.bufImage, imgSize),
	}); err != nil {
		return err
	}
	if a.bgV2, err = a.newBindGroup("visualize_TE_2_bind", a.layoutV2, []gputypes.BindGroupEntry{
		bufEntry(0, a.bufRangeV2, rangeUniformSize),
		bufEntry(1, a.bufEz, n),
		bufEntry(2, a.bufHx, n),
		bufEntry(3, a.bufHy, n),
		bufEntry(4, a.bufImage, imgSize),
	}); err != nil {
		return err
	}
	if a.bgB, err = a.newBindGroup("draw_material_boundaries_bind", a.layoutB, []gputypes.BindGroupEntry{
		bufEntry(0, a.bufMask, n),
		bufEntry(1, a.bufImage, imgSize),
	}); err != nil {
		return err
	}
	return nil
}

func (a *Accel) newBindGroup(label string, layout hal.BindGroupLayout, entries []gputypes.BindGroupEntry) (hal.BindGroup, error) {
	bg, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   label,
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("bind group (%s): %w", label, err)
	}
	return bg, nil
}

func bufEntry(binding uint32, buf hal.Buffer, size uint64) gputypes.BindGroupEntry {
	return gputypes.BindGroupEntry{
		Binding:  binding,
		Resource: gputypes.BufferBinding{Buffer: buf.NativeHandle(), Offset: 0, Size: size},
	}
}

func (a *Accel) Name() string { return "accel" }

// StepE uploads epsilon/sigma/hx/hy/ez, dispatches update_E over the
// full grid (the kernel's own bounds check skips the outer ring), waits,
// and downloads ez.
func (a *Accel) StepE(g *grid.Grid) {
	a.upload(a.bufEpsilon, g.Epsilon)
	a.upload(a.bufSigma, g.Sigma)
	a.upload(a.bufHx, g.Hx)
	a.upload(a.bufHy, g.Hy)
	a.upload(a.bufEz, g.Ez)
	a.dispatch2D(a.pipeE, a.bgE, g.W, g.H)
	a.download(a.bufEz, g.Ez)
}

// StepH uploads mu/ez/hx/hy, dispatches update_H over the full grid,
// and downloads hx/hy.
func (a *Accel) StepH(g *grid.Grid) {
	a.upload(a.bufMu, g.Mu)
	a.upload(a.bufEz, g.Ez)
	a.upload(a.bufHx, g.Hx)
	a.upload(a.bufHy, g.Hy)
	a.dispatch2D(a.pipeH, a.bgH, g.W, g.H)
	a.download(a.bufHx, g.Hx)
	a.download(a.bufHy, g.Hy)
}

// Render dispatches the chosen visualize_TE_* kernel, optionally followed
// by draw_material_boundaries, and downloads the image plane. The three
// supplemental visualizations (TELin, TESqr2, TELog) have no GPU kernel
// and fall back to the shared host implementation, a transparent
// fallback applied at finer grain than a whole backend switch.
func (a *Accel) Render(g *grid.Grid, vis render.VisID, overlay bool, mask []float32) {
	n := g.W * g.H
	switch vis {
	case render.TE1:
		a.upload(a.bufEz, g.Ez)
		a.dispatch1D(a.pipeV1, a.bgV1, n)
	case render.TE2:
		a.upload(a.bufEz, g.Ez)
		a.upload(a.bufHx, g.Hx)
		a.upload(a.bufHy, g.Hy)
		a.dispatch1D(a.pipeV2, a.bgV2, n)
	default:
		render.Compute(g, vis, overlay, mask)
		return
	}
	if overlay {
		a.upload(a.bufMask, mask)
		a.dispatch1D(a.pipeB, a.bgB, n)
	}
	a.download(a.bufImage, g.Image)
}

// Close releases accelerator-owned device resources.
func (a *Accel) Close() {
	if a.device == nil {
		return
	}
	for _, p := range []hal.ComputePipeline{a.pipeE, a.pipeH, a.pipeV1, a.pipeV2, a.pipeB} {
		a.device.DestroyComputePipeline(p)
	}
	for _, m := range []hal.ShaderModule{a.shaderE, a.shaderH, a.shaderV1, a.shaderV2, a.shaderB} {
		a.device.DestroyShaderModule(m)
	}
	for _, b := range []hal.Buffer{
		a.bufEpsilon, a.bufMu, a.bufSigma, a.bufEz, a.bufHx, a.bufHy, a.bufImage, a.bufMask,
		a.bufParams, a.bufRangeV1, a.bufRangeV2,
	} {
		a.device.DestroyBuffer(b)
	}
}

func (a *Accel) upload(buf hal.Buffer, data []float32) {
	a.queue.WriteBuffer(buf, 0, float32sToBytes(data))
}

func (a *Accel) download(buf hal.Buffer, out []float32) {
	a.queue.ReadBuffer(buf, 0, float32sToBytes(out))
}

// dispatch2D covers an (w, h) domain with the 8x8 workgroup size
// update_E.wgsl and update_H.wgsl declare.
func (a *Accel) dispatch2D(pipe hal.ComputePipeline, bg hal.BindGroup, w, h int) {
	a.dispatch(pipe, bg, uint32((w+7)/8), uint32((h+7)/8), 1)
}

// dispatch1D covers a flat n-element domain with the 64-wide
// workgroup size visualize_TE_1.wgsl, visualize_TE_2.wgsl and
// boundaries.wgsl declare.
func (a *Accel) dispatch1D(pipe hal.ComputePipeline, bg hal.BindGroup, n int) {
	a.dispatch(pipe, bg, uint32((n+63)/64), 1, 1)
}

func (a *Accel) dispatch(pipe hal.ComputePipeline, bg hal.BindGroup, x, y, z uint32) {
	encoder := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{})
	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{})
	pass.SetPipeline(pipe)
	pass.SetBindGroup(0, bg, nil)
	pass.DispatchWorkgroups(x, y, z)
	pass.End()
	cmd := encoder.Finish(&hal.CommandBufferDescriptor{})
	a.queue.Submit([]hal.CommandBuffer{cmd})
}

// float32sToBytes reinterprets a float32 plane as the little-endian byte
// slice the device buffers expect, without an intermediate copy loop
// per element.
func float32sToBytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}
