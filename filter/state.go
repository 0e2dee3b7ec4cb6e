// SPDX-License-Identifier: Unlicense OR MIT

package filter

import "hike.wiki/camera/internal/gl"

// drawState tracks the GL state a draw establishes. Every method issues
// the GL call and records its effect, so that a draw is a sequence of
// explicit transitions from the zero state instead of edits to ambient
// driver state. It lives on the stack of a single Draw; the handles it
// holds are borrowed from the caller.
type drawState struct {
	prog     gl.Program
	texUnits struct {
		active gl.Enum
		binds  [maxSamplers]textureBinding
	}
	arrayBuf gl.Buffer
	elemBuf  gl.Buffer
	attribs  [2]struct {
		loc     gl.Attrib
		enabled bool
	}
}

type textureBinding struct {
	target gl.Enum
	tex    gl.Texture
}

func (s *drawState) useProgram(f gl.Functions, p gl.Program) {
	f.UseProgram(p)
	s.prog = p
}

func (s *drawState) activeTexture(f gl.Functions, unit gl.Enum) {
	f.ActiveTexture(unit)
	s.texUnits.active = unit
}

// bindTexture binds t to the active unit.
func (s *drawState) bindTexture(f gl.Functions, target gl.Enum, t gl.Texture) {
	f.BindTexture(target, t)
	if i := int(s.texUnits.active - gl.TEXTURE0); i >= 0 && i < len(s.texUnits.binds) {
		s.texUnits.binds[i] = textureBinding{target: target, tex: t}
	}
}

func (s *drawState) bindBuffer(f gl.Functions, target gl.Enum, b gl.Buffer) {
	f.BindBuffer(target, b)
	switch target {
	case gl.ARRAY_BUFFER:
		s.arrayBuf = b
	case gl.ELEMENT_ARRAY_BUFFER:
		s.elemBuf = b
	}
}

func (s *drawState) setVertexAttribArray(f gl.Functions, idx int, loc gl.Attrib, enabled bool) {
	if enabled {
		f.EnableVertexAttribArray(loc)
	} else {
		f.DisableVertexAttribArray(loc)
	}
	a := &s.attribs[idx]
	a.loc = loc
	a.enabled = enabled
}
