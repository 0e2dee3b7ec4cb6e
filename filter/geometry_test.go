// SPDX-License-Identifier: Unlicense OR MIT

package filter

import (
	"encoding/binary"
	"math"
	"testing"

	"hike.wiki/camera/internal/gl"
	"hike.wiki/camera/internal/gl/glrec"
)

func TestEncodeVertices(t *testing.T) {
	data := EncodeVertices([]Vertex{{X: 1, Y: 2, Z: 3, U: 0.5, V: 0.25}})
	if len(data) != vertexStride {
		t.Fatalf("got %d bytes, expected %d", len(data), vertexStride)
	}
	want := []float32{1, 2, 3, 0.5, 0.25}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*floatSize:]))
		if got != w {
			t.Errorf("component %d: got %v, expected %v", i, got, w)
		}
	}
	if u := math.Float32frombits(binary.LittleEndian.Uint32(data[texCoordOffset:])); u != 0.5 {
		t.Errorf("texcoord offset holds %v", u)
	}
}

func TestEncodeIndices(t *testing.T) {
	data := EncodeIndices(QuadHalves[1][:])
	if len(data) != indexCount*2 {
		t.Fatalf("got %d bytes", len(data))
	}
	for i, w := range QuadHalves[1] {
		if got := binary.LittleEndian.Uint16(data[i*2:]); got != w {
			t.Errorf("index %d: got %d, expected %d", i, got, w)
		}
	}
}

func TestQuad(t *testing.T) {
	r := new(glrec.Recorder)
	flt := NewPassthrough(Sampler2D, Hooks{})
	if err := flt.Init(r); err != nil {
		t.Fatal(err)
	}
	q := NewQuad(r)
	r.Reset()
	q.Draw(flt, r, []gl.Texture{{V: 50}})
	var ibos []uint
	draws := 0
	for _, c := range r.Calls() {
		switch c.Name {
		case "BindBuffer":
			if c.Args[0].(gl.Enum) == gl.ELEMENT_ARRAY_BUFFER {
				ibos = append(ibos, c.Args[1].(uint))
			}
		case "DrawElements":
			draws++
		}
	}
	if draws != 2 {
		t.Errorf("got %d draws, expected 2", draws)
	}
	if len(ibos) != 2 || ibos[0] != q.Halves[0].V || ibos[1] != q.Halves[1].V {
		t.Errorf("got index buffers %v, expected %v", ibos, q.Halves)
	}
	r.Reset()
	q.Release(r)
	if n := len(r.Calls()); n != 3 {
		t.Errorf("Release made %d calls, expected 3", n)
	}
}
