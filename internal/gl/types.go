// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Buffer  struct{ V uint }
	Program struct{ V uint }
	Shader  struct{ V uint }
	Texture struct{ V uint }
	Uniform struct{ V int }
)

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}
