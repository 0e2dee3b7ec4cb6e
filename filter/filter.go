// SPDX-License-Identifier: Unlicense OR MIT

// Package filter implements the base of real-time GPU video filters: a
// shader program drawing one textured triangle per call from a camera
// surface, a two-plane preview buffer, or a regular 2D texture.
//
// A Filter is created with its shader sources and render type, then
// initialized, drawn and destroyed on the goroutine that owns the GL
// context. Uniform values may be set from any goroutine; they are
// queued and take effect at the start of the next Draw.
package filter

import (
	"fmt"
	"log/slog"

	"hike.wiki/camera/internal/gl"
)

// RenderType selects the texture target and sampler uniforms a filter
// draws with.
type RenderType uint8

const (
	// ExternalSurfaceTexture samples a camera surface bound to
	// TEXTURE_EXTERNAL_OES through texSampler.
	ExternalSurfaceTexture RenderType = iota
	// PreviewPlaneBuffer samples a luminance and a chrominance plane
	// through luminanceTexture and chrominanceTexture.
	PreviewPlaneBuffer
	// Sampler2D samples a TEXTURE_2D through texSampler.
	Sampler2D
)

// Shader interface names.
const (
	AttribPosition     = "a_position"
	AttribTexCoord     = "a_texcoord"
	UniformSampler     = "texSampler"
	UniformLuminance   = "luminanceTexture"
	UniformChrominance = "chrominanceTexture"
)

const (
	maxSamplers = 2

	floatSize = 4
	// Vertex layout: 3 position floats followed by 2 texcoord floats.
	positionSize   = 3
	texCoordSize   = 2
	vertexStride   = (positionSize + texCoordSize) * floatSize
	texCoordOffset = positionSize * floatSize

	// Each draw is a single triangle.
	indexCount = 3
)

func (t RenderType) String() string {
	switch t {
	case ExternalSurfaceTexture:
		return "ExternalSurfaceTexture"
	case PreviewPlaneBuffer:
		return "PreviewPlaneBuffer"
	case Sampler2D:
		return "Sampler2D"
	default:
		return fmt.Sprintf("RenderType(%d)", uint8(t))
	}
}

// Samplers returns the names of the sampler uniforms, in texture unit
// order.
func (t RenderType) Samplers() []string {
	if t == PreviewPlaneBuffer {
		return []string{UniformLuminance, UniformChrominance}
	}
	return []string{UniformSampler}
}

// target returns the texture target input textures are bound to.
func (t RenderType) target() gl.Enum {
	if t == ExternalSurfaceTexture {
		return gl.TEXTURE_EXTERNAL_OES
	}
	return gl.TEXTURE_2D
}

// Hooks are the extension points of a Filter. Any of them may be nil.
// They run on the GL goroutine with the context current.
type Hooks struct {
	// Init runs at the end of Init, after the program is linked and
	// the standard locations are resolved.
	Init func(flt *Filter, f gl.Functions)
	// PreDraw runs after the textures and vertex layout are bound and
	// before the draw call, with the program in use.
	PreDraw func(flt *Filter, f gl.Functions)
	// Destroy runs at the end of Destroy, after the program is deleted.
	Destroy func(flt *Filter, f gl.Functions)
}

type lifecycle uint8

const (
	constructed lifecycle = iota
	initialized
	destroyed
)

// Filter is a shader program drawing textured geometry supplied by the
// caller. Init, Draw and Destroy must be called from the goroutine
// owning the GL context; the uniform setters may be called from any
// goroutine.
type Filter struct {
	typ      RenderType
	vertSrc  string
	fragSrc  string
	hooks    Hooks
	state    lifecycle
	prog     gl.Program
	position gl.Attrib
	texCoord gl.Attrib
	samplers []gl.Uniform
	queue    Queue
}

// New returns a filter drawing with the given shader sources. No GL
// calls are made until Init.
func New(typ RenderType, vertexSrc, fragmentSrc string, h Hooks) *Filter {
	return &Filter{
		typ:     typ,
		vertSrc: vertexSrc,
		fragSrc: fragmentSrc,
		hooks:   h,
	}
}

// NewPassthrough returns a filter that draws its input unchanged. typ
// must be Sampler2D or ExternalSurfaceTexture.
func NewPassthrough(typ RenderType, h Hooks) *Filter {
	switch typ {
	case Sampler2D:
		return New(typ, PassthroughVertexShader, PassthroughFragmentShader, h)
	case ExternalSurfaceTexture:
		return New(typ, PassthroughVertexShader, ExternalFragmentShader, h)
	default:
		panic(fmt.Errorf("filter: no passthrough shader for %v", typ))
	}
}

// RenderType returns the render type the filter was created with.
func (flt *Filter) RenderType() RenderType {
	return flt.typ
}

// Program returns the linked program, or the zero Program before Init
// and after Destroy.
func (flt *Filter) Program() gl.Program {
	return flt.prog
}

// Initialized reports whether Init succeeded and Destroy has not been
// called.
func (flt *Filter) Initialized() bool {
	return flt.state == initialized
}

// Attribs returns the locations of a_position and a_texcoord.
func (flt *Filter) Attribs() (position, texCoord gl.Attrib) {
	return flt.position, flt.texCoord
}

// Samplers returns the sampler uniform locations resolved by Init, in
// texture unit order.
func (flt *Filter) Samplers() []gl.Uniform {
	return append([]gl.Uniform(nil), flt.samplers...)
}

// UniformLocation looks up a uniform of the filter's program. It must
// be called on the GL goroutine after Init.
func (flt *Filter) UniformLocation(f gl.Functions, name string) gl.Uniform {
	return f.GetUniformLocation(flt.prog, name)
}

// Init compiles the program, resolves its attribute and sampler
// locations and runs the Init hook. Init must be called exactly once,
// with the GL context current. A compile or link failure is returned as
// a *gl.CompileError and leaves the filter uninitialized.
func (flt *Filter) Init(f gl.Functions) error {
	log := Logger()
	if flt.state == destroyed {
		return fmt.Errorf("filter: %v: Init after Destroy", flt.typ)
	}
	if flt.state == initialized {
		log.Warn("filter initialized twice; previous program leaked", "type", flt.typ, "program", flt.prog.V)
	}
	prog, err := gl.CreateProgram(f, flt.vertSrc, flt.fragSrc)
	if err != nil {
		return fmt.Errorf("filter: %v: %w", flt.typ, err)
	}
	flt.prog = prog
	flt.position = flt.attribLocation(f, AttribPosition)
	flt.texCoord = flt.attribLocation(f, AttribTexCoord)
	names := flt.typ.Samplers()
	flt.samplers = make([]gl.Uniform, len(names))
	for i, name := range names {
		flt.samplers[i] = f.GetUniformLocation(prog, name)
	}
	flt.state = initialized
	log.Debug("filter initialized", "type", flt.typ, "program", prog.V, slog.Any("samplers", flt.samplers))
	if flt.hooks.Init != nil {
		flt.hooks.Init(flt, f)
	}
	return nil
}

func (flt *Filter) attribLocation(f gl.Functions, name string) gl.Attrib {
	loc := f.GetAttribLocation(flt.prog, name)
	if loc < 0 {
		Logger().Warn("attribute not found", "type", flt.typ, "name", name)
	}
	return gl.Attrib(loc)
}

// Destroy deletes the program and discards pending commands. Draws
// after Destroy do nothing. Calling Destroy more than once has no
// effect.
func (flt *Filter) Destroy(f gl.Functions) {
	if flt.state == destroyed {
		return
	}
	flt.state = destroyed
	if flt.prog.Valid() {
		f.DeleteProgram(flt.prog)
	}
	Logger().Debug("filter destroyed", "type", flt.typ, "program", flt.prog.V)
	flt.prog = gl.Program{}
	flt.queue.Reset()
	if flt.hooks.Destroy != nil {
		flt.hooks.Destroy(flt, f)
	}
}

// Draw executes the pending commands and draws one triangle from vbo
// and ibo sampling textures. The number of textures must match the
// render type: two for PreviewPlaneBuffer, one otherwise. Before Init
// only the pending commands run; after Destroy Draw does nothing.
//
// The textures and buffers are borrowed for the duration of the call.
func (flt *Filter) Draw(f gl.Functions, textures []gl.Texture, vbo, ibo gl.Buffer) {
	if flt.state == destroyed {
		return
	}
	var s drawState
	s.useProgram(f, flt.prog)
	flt.queue.Drain(f)
	if flt.state != initialized {
		s.useProgram(f, gl.Program{})
		return
	}
	target := flt.typ.target()
	for i, tex := range textures {
		s.activeTexture(f, gl.TEXTURE0+gl.Enum(i))
		s.bindTexture(f, target, tex)
		// A texture count above the render type's sampler count panics
		// here, after the extra texture is bound.
		f.Uniform1i(flt.samplers[i], i)
	}
	s.setVertexAttribArray(f, 0, flt.position, true)
	s.setVertexAttribArray(f, 1, flt.texCoord, true)
	s.bindBuffer(f, gl.ARRAY_BUFFER, vbo)
	f.VertexAttribPointer(flt.position, positionSize, gl.FLOAT, false, vertexStride, 0)
	f.VertexAttribPointer(flt.texCoord, texCoordSize, gl.FLOAT, true, vertexStride, texCoordOffset)

	if flt.hooks.PreDraw != nil {
		flt.hooks.PreDraw(flt, f)
	}
	s.bindBuffer(f, gl.ELEMENT_ARRAY_BUFFER, ibo)
	f.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_SHORT, 0)

	s.setVertexAttribArray(f, 1, flt.texCoord, false)
	s.setVertexAttribArray(f, 0, flt.position, false)
	f.Finish()
	s.useProgram(f, gl.Program{})
}

// Enqueue defers c to the start of the next Draw.
func (flt *Filter) Enqueue(c Command) {
	flt.queue.Enqueue(c)
}

// Pending returns the commands waiting for the next Draw.
func (flt *Filter) Pending() []Command {
	return flt.queue.Pending()
}

// RunOnDraw defers fn to the start of the next Draw. Functions still
// pending when the filter is destroyed are discarded without running,
// so fn must not be the only release of a resource.
func (flt *Filter) RunOnDraw(name string, fn func(f gl.Functions)) {
	flt.queue.Enqueue(Func{Name: name, Fn: fn})
}

// SetInteger sets an int or sampler uniform on the next Draw.
func (flt *Filter) SetInteger(loc gl.Uniform, v int) {
	flt.queue.Enqueue(SetInt{Loc: loc, V: v})
}

// SetFloat sets a float uniform on the next Draw.
func (flt *Filter) SetFloat(loc gl.Uniform, v float32) {
	flt.queue.Enqueue(SetFloat{Loc: loc, V: v})
}

// SetFloatVec2 sets a vec2 uniform on the next Draw.
func (flt *Filter) SetFloatVec2(loc gl.Uniform, v [2]float32) {
	flt.queue.Enqueue(SetVec2{Loc: loc, V: v})
}

// SetFloatVec3 sets a vec3 uniform on the next Draw.
func (flt *Filter) SetFloatVec3(loc gl.Uniform, v [3]float32) {
	flt.queue.Enqueue(SetVec3{Loc: loc, V: v})
}

// SetFloatVec4 sets a vec4 uniform on the next Draw.
func (flt *Filter) SetFloatVec4(loc gl.Uniform, v [4]float32) {
	flt.queue.Enqueue(SetVec4{Loc: loc, V: v})
}

// SetFloatArray sets a float[] uniform to a copy of v.
func (flt *Filter) SetFloatArray(loc gl.Uniform, v []float32) {
	flt.queue.Enqueue(SetFloatArray{Loc: loc, V: append([]float32(nil), v...)})
}
