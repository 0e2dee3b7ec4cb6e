// SPDX-License-Identifier: Unlicense OR MIT

// Package gogl implements gl.Functions on top of the go-gl OpenGL ES
// 2.0 bindings. Init must be called with the target context current.
package gogl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.1/gles2"

	"hike.wiki/camera/internal/gl"
)

type Functions struct {
	// Query cache.
	ints [100]int32
}

// New loads the GL entry points of the current context.
func New() (*Functions, error) {
	if err := gles2.Init(); err != nil {
		return nil, err
	}
	return new(Functions), nil
}

func (f *Functions) ActiveTexture(texture gl.Enum) {
	gles2.ActiveTexture(uint32(texture))
}

func (f *Functions) AttachShader(p gl.Program, s gl.Shader) {
	gles2.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindBuffer(target gl.Enum, b gl.Buffer) {
	gles2.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	gles2.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	var p unsafe.Pointer
	if len(src) > 0 {
		p = gles2.Ptr(src)
	}
	gles2.BufferData(uint32(target), len(src), p, uint32(usage))
}

func (f *Functions) Clear(mask gl.Enum) {
	gles2.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gles2.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s gl.Shader) {
	gles2.CompileShader(uint32(s.V))
}

func (f *Functions) CreateBuffer() gl.Buffer {
	var buf uint32
	gles2.GenBuffers(1, &buf)
	return gl.Buffer{V: uint(buf)}
}

func (f *Functions) CreateProgram() gl.Program {
	return gl.Program{V: uint(gles2.CreateProgram())}
}

func (f *Functions) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{V: uint(gles2.CreateShader(uint32(ty)))}
}

func (f *Functions) CreateTexture() gl.Texture {
	var t uint32
	gles2.GenTextures(1, &t)
	return gl.Texture{V: uint(t)}
}

func (f *Functions) DeleteBuffer(v gl.Buffer) {
	buf := uint32(v.V)
	gles2.DeleteBuffers(1, &buf)
}

func (f *Functions) DeleteProgram(p gl.Program) {
	gles2.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteShader(s gl.Shader) {
	gles2.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteTexture(v gl.Texture) {
	t := uint32(v.V)
	gles2.DeleteTextures(1, &t)
}

func (f *Functions) DisableVertexAttribArray(a gl.Attrib) {
	gles2.DisableVertexAttribArray(uint32(a))
}

func (f *Functions) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	gles2.DrawElements(uint32(mode), int32(count), uint32(ty), unsafe.Pointer(uintptr(offset)))
}

func (f *Functions) EnableVertexAttribArray(a gl.Attrib) {
	gles2.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) Finish() {
	gles2.Finish()
}

func (f *Functions) GetAttribLocation(p gl.Program, name string) int {
	return int(gles2.GetAttribLocation(uint32(p.V), gles2.Str(name+"\x00")))
}

func (f *Functions) GetError() gl.Enum {
	return gl.Enum(gles2.GetError())
}

func (f *Functions) GetInteger(pname gl.Enum) int {
	gles2.GetIntegerv(uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetProgrami(p gl.Program, pname gl.Enum) int {
	gles2.GetProgramiv(uint32(p.V), uint32(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetProgramInfoLog(p gl.Program) string {
	var logLength int32
	gles2.GetProgramiv(uint32(p.V), gles2.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gles2.GetProgramInfoLog(uint32(p.V), logLength, nil, gles2.Str(log))
	return log[:logLength]
}

func (f *Functions) GetShaderi(s gl.Shader, pname gl.Enum) int {
	var i int32
	gles2.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *Functions) GetShaderInfoLog(s gl.Shader) string {
	var logLength int32
	gles2.GetShaderiv(uint32(s.V), gles2.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gles2.GetShaderInfoLog(uint32(s.V), logLength, nil, gles2.Str(log))
	return log[:logLength]
}

func (f *Functions) GetString(pname gl.Enum) string {
	return gles2.GoStr(gles2.GetString(uint32(pname)))
}

func (f *Functions) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{V: int(gles2.GetUniformLocation(uint32(p.V), gles2.Str(name+"\x00")))}
}

func (f *Functions) LinkProgram(p gl.Program) {
	gles2.LinkProgram(uint32(p.V))
}

func (f *Functions) PixelStorei(pname gl.Enum, param int32) {
	gles2.PixelStorei(uint32(pname), param)
}

func (f *Functions) ShaderSource(s gl.Shader, src string) {
	csources, free := gles2.Strs(src + "\x00")
	gles2.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format, ty gl.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gles2.Ptr(data)
	}
	gles2.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	gles2.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) Uniform1f(dst gl.Uniform, v float32) {
	gles2.Uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform1fv(dst gl.Uniform, v []float32) {
	if len(v) == 0 {
		return
	}
	gles2.Uniform1fv(int32(dst.V), int32(len(v)), &v[0])
}

func (f *Functions) Uniform1i(dst gl.Uniform, v int) {
	gles2.Uniform1i(int32(dst.V), int32(v))
}

func (f *Functions) Uniform2f(dst gl.Uniform, v0, v1 float32) {
	gles2.Uniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	gles2.Uniform3f(int32(dst.V), v0, v1, v2)
}

func (f *Functions) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	gles2.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) UseProgram(p gl.Program) {
	gles2.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	gles2.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), unsafe.Pointer(uintptr(offset)))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gles2.Viewport(int32(x), int32(y), int32(width), int32(height))
}

var _ gl.Functions = (*Functions)(nil)
