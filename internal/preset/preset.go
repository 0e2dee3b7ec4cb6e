// SPDX-License-Identifier: Unlicense OR MIT

// Package preset parses TOML files of uniform values for filters and
// drives animated uniforms from producer goroutines.
package preset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/pelletier/go-toml/v2"

	"hike.wiki/camera/filter"
	"hike.wiki/camera/internal/gl"
)

// Preset lists uniform values applied to a filter after Init.
type Preset struct {
	Uniforms   []Uniform   `toml:"uniform"`
	Animations []Animation `toml:"animate"`
}

// Uniform is a fixed uniform value. Exactly one value field is set.
type Uniform struct {
	Name   string    `toml:"name"`
	Int    *int      `toml:"int"`
	Float  *float32  `toml:"float"`
	Vec2   []float32 `toml:"vec2"`
	Vec3   []float32 `toml:"vec3"`
	Vec4   []float32 `toml:"vec4"`
	Floats []float32 `toml:"floats"`
}

// Animation oscillates a float uniform between Min and Max with the
// given period in seconds.
type Animation struct {
	Name   string  `toml:"name"`
	Min    float32 `toml:"min"`
	Max    float32 `toml:"max"`
	Period float64 `toml:"period"`
}

// Parse decodes and validates a preset. Unknown keys are errors.
func Parse(r io.Reader) (*Preset, error) {
	p := new(Preset)
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(p); err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	for i, u := range p.Uniforms {
		if u.Name == "" {
			return nil, fmt.Errorf("preset: uniform %d: missing name", i)
		}
		if err := u.validate(); err != nil {
			return nil, fmt.Errorf("preset: uniform %s: %w", u.Name, err)
		}
	}
	for i, a := range p.Animations {
		if a.Name == "" {
			return nil, fmt.Errorf("preset: animation %d: missing name", i)
		}
		if a.Period <= 0 {
			return nil, fmt.Errorf("preset: animation %s: period must be positive", a.Name)
		}
	}
	return p, nil
}

func (u Uniform) validate() error {
	n := 0
	if u.Int != nil {
		n++
	}
	if u.Float != nil {
		n++
	}
	for _, v := range []struct {
		vals []float32
		want int
	}{{u.Vec2, 2}, {u.Vec3, 3}, {u.Vec4, 4}, {u.Floats, -1}} {
		if v.vals == nil {
			continue
		}
		n++
		if v.want > 0 && len(v.vals) != v.want {
			return fmt.Errorf("got %d components, expected %d", len(v.vals), v.want)
		}
	}
	if n != 1 {
		return errors.New("exactly one value must be set")
	}
	return nil
}

// Enqueue queues the uniform write on flt.
func (u Uniform) Enqueue(flt *filter.Filter, loc gl.Uniform) {
	switch {
	case u.Int != nil:
		flt.SetInteger(loc, *u.Int)
	case u.Float != nil:
		flt.SetFloat(loc, *u.Float)
	case u.Vec2 != nil:
		flt.SetFloatVec2(loc, [2]float32{u.Vec2[0], u.Vec2[1]})
	case u.Vec3 != nil:
		flt.SetFloatVec3(loc, [3]float32{u.Vec3[0], u.Vec3[1], u.Vec3[2]})
	case u.Vec4 != nil:
		flt.SetFloatVec4(loc, [4]float32{u.Vec4[0], u.Vec4[1], u.Vec4[2], u.Vec4[3]})
	case u.Floats != nil:
		flt.SetFloatArray(loc, u.Floats)
	}
}

// Value returns the animated value at elapsed time t.
func (a Animation) Value(t time.Duration) float32 {
	phase := 2 * math.Pi * t.Seconds() / a.Period
	k := float32(0.5 - 0.5*math.Cos(phase))
	return a.Min + (a.Max-a.Min)*k
}

// Run updates the uniform at loc every interval until ctx is done. It
// only enqueues commands and may run on any goroutine.
func (a Animation) Run(ctx context.Context, flt *filter.Filter, loc gl.Uniform, interval time.Duration) error {
	start := time.Now()
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tick.C:
			flt.SetFloat(loc, a.Value(now.Sub(start)))
		}
	}
}
