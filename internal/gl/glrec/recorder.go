// SPDX-License-Identifier: Unlicense OR MIT

// Package glrec implements gl.Functions by recording calls instead of
// issuing them to a GPU. Object creation, shader compilation and
// program linking are simulated well enough to drive a filter through
// its whole lifecycle in tests.
package glrec

import (
	"fmt"
	"strings"

	"hike.wiki/camera/internal/gl"
)

// Call is a recorded GL call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder records GL calls. The zero value is ready to use and every
// compile and link succeeds.
type Recorder struct {
	// FailCompile makes compilation of the given shader stage fail.
	FailCompile gl.Enum
	// FailLink makes LinkProgram fail.
	FailLink bool
	// InfoLog is returned for failed shaders and programs.
	InfoLog string
	// Missing lists attribute and uniform names that resolve to -1.
	Missing []string
	// MaxTextureSize is reported for MAX_TEXTURE_SIZE; 0 means 4096.
	MaxTextureSize int

	calls    []Call
	nextObj  uint
	shaders  map[gl.Shader]gl.Enum
	live     map[gl.Shader]bool
	programs map[gl.Program]bool
	attribs  map[string]int
	uniforms map[string]int
}

// Calls returns the recorded calls, in order.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Names returns the names of the recorded calls, in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Strings returns the recorded calls formatted as Name(args...).
func (r *Recorder) Strings() []string {
	s := make([]string, len(r.calls))
	for i, c := range r.calls {
		s[i] = c.String()
	}
	return s
}

// Reset discards the recorded calls. Simulated objects are kept.
func (r *Recorder) Reset() {
	r.calls = nil
}

// LiveShaders returns the number of shader objects created and not yet
// deleted.
func (r *Recorder) LiveShaders() int {
	return len(r.live)
}

// LivePrograms returns the number of program objects created and not
// yet deleted.
func (r *Recorder) LivePrograms() int {
	return len(r.programs)
}

func (r *Recorder) record(name string, args ...interface{}) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) newObject() uint {
	r.nextObj++
	return r.nextObj
}

func (r *Recorder) missing(name string) bool {
	for _, m := range r.Missing {
		if m == name {
			return true
		}
	}
	return false
}

func (r *Recorder) ActiveTexture(texture gl.Enum) {
	r.record("ActiveTexture", texture)
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p.V, s.V)
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.record("BindBuffer", target, b.V)
}

func (r *Recorder) BindTexture(target gl.Enum, t gl.Texture) {
	r.record("BindTexture", target, t.V)
}

func (r *Recorder) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	r.record("BufferData", target, len(src), usage)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s.V)
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	b := gl.Buffer{V: r.newObject()}
	r.record("CreateBuffer")
	return b
}

func (r *Recorder) CreateProgram() gl.Program {
	p := gl.Program{V: r.newObject()}
	if r.programs == nil {
		r.programs = make(map[gl.Program]bool)
	}
	r.programs[p] = true
	r.record("CreateProgram")
	return p
}

func (r *Recorder) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{V: r.newObject()}
	if r.shaders == nil {
		r.shaders = make(map[gl.Shader]gl.Enum)
		r.live = make(map[gl.Shader]bool)
	}
	r.shaders[s] = ty
	r.live[s] = true
	r.record("CreateShader", ty)
	return s
}

func (r *Recorder) CreateTexture() gl.Texture {
	t := gl.Texture{V: r.newObject()}
	r.record("CreateTexture")
	return t
}

func (r *Recorder) DeleteBuffer(v gl.Buffer) {
	r.record("DeleteBuffer", v.V)
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	delete(r.programs, p)
	r.record("DeleteProgram", p.V)
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	delete(r.live, s)
	r.record("DeleteShader", s.V)
}

func (r *Recorder) DeleteTexture(v gl.Texture) {
	r.record("DeleteTexture", v.V)
}

func (r *Recorder) DisableVertexAttribArray(a gl.Attrib) {
	r.record("DisableVertexAttribArray", a)
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	r.record("DrawElements", mode, count, ty, offset)
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) Finish() {
	r.record("Finish")
}

// GetAttribLocation assigns locations 0, 1, ... in order of first
// lookup.
func (r *Recorder) GetAttribLocation(p gl.Program, name string) int {
	r.record("GetAttribLocation", p.V, name)
	if r.missing(name) {
		return -1
	}
	if r.attribs == nil {
		r.attribs = make(map[string]int)
	}
	loc, ok := r.attribs[name]
	if !ok {
		loc = len(r.attribs)
		r.attribs[name] = loc
	}
	return loc
}

func (r *Recorder) GetError() gl.Enum {
	return gl.NO_ERROR
}

func (r *Recorder) GetInteger(pname gl.Enum) int {
	if pname == gl.MAX_TEXTURE_SIZE {
		if r.MaxTextureSize == 0 {
			return 4096
		}
		return r.MaxTextureSize
	}
	return 0
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS && r.FailLink {
		return gl.FALSE
	}
	return gl.TRUE
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	return r.InfoLog
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS && r.FailCompile != 0 && r.shaders[s] == r.FailCompile {
		return gl.FALSE
	}
	return gl.TRUE
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	return r.InfoLog
}

func (r *Recorder) GetString(pname gl.Enum) string {
	switch pname {
	case gl.VERSION:
		return "OpenGL ES 2.0 glrec"
	case gl.RENDERER:
		return "glrec"
	}
	return ""
}

// GetUniformLocation assigns locations 0, 1, ... in order of first
// lookup.
func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.record("GetUniformLocation", p.V, name)
	if r.missing(name) {
		return gl.Uniform{V: -1}
	}
	if r.uniforms == nil {
		r.uniforms = make(map[string]int)
	}
	loc, ok := r.uniforms[name]
	if !ok {
		loc = len(r.uniforms)
		r.uniforms[name] = loc
	}
	return gl.Uniform{V: loc}
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p.V)
}

func (r *Recorder) PixelStorei(pname gl.Enum, param int32) {
	r.record("PixelStorei", pname, param)
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.record("ShaderSource", s.V)
}

func (r *Recorder) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	r.record("TexImage2D", target, level, internalFormat, width, height, format, ty, len(data))
}

func (r *Recorder) TexParameteri(target, pname gl.Enum, param int) {
	r.record("TexParameteri", target, pname, param)
}

func (r *Recorder) Uniform1f(dst gl.Uniform, v float32) {
	r.record("Uniform1f", dst.V, v)
}

func (r *Recorder) Uniform1fv(dst gl.Uniform, v []float32) {
	r.record("Uniform1fv", dst.V, append([]float32(nil), v...))
}

func (r *Recorder) Uniform1i(dst gl.Uniform, v int) {
	r.record("Uniform1i", dst.V, v)
}

func (r *Recorder) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	r.record("Uniform2f", dst.V, v0, v1)
}

func (r *Recorder) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	r.record("Uniform3f", dst.V, v0, v1, v2)
}

func (r *Recorder) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	r.record("Uniform4f", dst.V, v0, v1, v2, v3)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record("UseProgram", p.V)
}

func (r *Recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

var _ gl.Functions = (*Recorder)(nil)
