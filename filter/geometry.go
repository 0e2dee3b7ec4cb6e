// SPDX-License-Identifier: Unlicense OR MIT

package filter

import (
	"encoding/binary"
	"math"

	"hike.wiki/camera/internal/gl"
)

// Vertex is one record of the interleaved vertex layout a Filter draws
// from.
type Vertex struct {
	X, Y, Z float32
	U, V    float32
}

// FullScreenQuad covers clip space with the texture upright: the
// bottom left vertex samples (0, 0).
var FullScreenQuad = [4]Vertex{
	{X: -1, Y: -1, U: 0, V: 0},
	{X: 1, Y: -1, U: 1, V: 0},
	{X: -1, Y: 1, U: 0, V: 1},
	{X: 1, Y: 1, U: 1, V: 1},
}

// QuadHalves are the index triples of the two triangles of
// FullScreenQuad.
var QuadHalves = [2][indexCount]uint16{
	{0, 1, 2},
	{2, 1, 3},
}

// EncodeVertices returns the buffer contents for vs.
func EncodeVertices(vs []Vertex) []byte {
	data := make([]byte, 0, len(vs)*vertexStride)
	for _, v := range vs {
		for _, c := range [...]float32{v.X, v.Y, v.Z, v.U, v.V} {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(c))
		}
	}
	return data
}

// EncodeIndices returns the buffer contents for indices.
func EncodeIndices(indices []uint16) []byte {
	data := make([]byte, 0, len(indices)*2)
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}
	return data
}

// Quad holds the buffers of FullScreenQuad: one vertex buffer and one
// index buffer per triangle. A Filter draws a single triangle per call,
// so drawing the quad takes one Draw per half.
type Quad struct {
	Vertices gl.Buffer
	Halves   [2]gl.Buffer
}

// NewQuad uploads FullScreenQuad. The caller owns the buffers and must
// release them with Release.
func NewQuad(f gl.Functions) Quad {
	var q Quad
	q.Vertices = f.CreateBuffer()
	f.BindBuffer(gl.ARRAY_BUFFER, q.Vertices)
	f.BufferData(gl.ARRAY_BUFFER, EncodeVertices(FullScreenQuad[:]), gl.STATIC_DRAW)
	for i, half := range QuadHalves {
		q.Halves[i] = f.CreateBuffer()
		f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, q.Halves[i])
		f.BufferData(gl.ELEMENT_ARRAY_BUFFER, EncodeIndices(half[:]), gl.STATIC_DRAW)
	}
	f.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
	f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.Buffer{})
	return q
}

// Draw draws both halves of the quad with flt.
func (q Quad) Draw(flt *Filter, f gl.Functions, textures []gl.Texture) {
	for _, ibo := range q.Halves {
		flt.Draw(f, textures, q.Vertices, ibo)
	}
}

// Release deletes the quad's buffers.
func (q Quad) Release(f gl.Functions) {
	for _, ibo := range q.Halves {
		f.DeleteBuffer(ibo)
	}
	f.DeleteBuffer(q.Vertices)
}
