// SPDX-License-Identifier: Unlicense OR MIT

package filter

import (
	"fmt"
	"sync"

	"hike.wiki/camera/internal/gl"
)

// Command is a GPU state change deferred to the goroutine that owns the
// GL context. Values are captured when the command is created.
type Command interface {
	Exec(f gl.Functions)
	fmt.Stringer
}

type (
	// SetInt writes an int or sampler uniform.
	SetInt struct {
		Loc gl.Uniform
		V   int
	}
	// SetFloat writes a float uniform.
	SetFloat struct {
		Loc gl.Uniform
		V   float32
	}
	// SetVec2 writes a vec2 uniform.
	SetVec2 struct {
		Loc gl.Uniform
		V   [2]float32
	}
	// SetVec3 writes a vec3 uniform.
	SetVec3 struct {
		Loc gl.Uniform
		V   [3]float32
	}
	// SetVec4 writes a vec4 uniform.
	SetVec4 struct {
		Loc gl.Uniform
		V   [4]float32
	}
	// SetFloatArray writes a float[] uniform. V must not be modified
	// after the command is enqueued; the Filter setters copy it.
	SetFloatArray struct {
		Loc gl.Uniform
		V   []float32
	}
	// Func runs an arbitrary state change. A Func still queued when
	// its filter is destroyed is dropped without running.
	Func struct {
		Name string
		Fn   func(f gl.Functions)
	}
)

func (c SetInt) Exec(f gl.Functions)        { f.Uniform1i(c.Loc, c.V) }
func (c SetFloat) Exec(f gl.Functions)      { f.Uniform1f(c.Loc, c.V) }
func (c SetVec2) Exec(f gl.Functions)       { f.Uniform2f(c.Loc, c.V[0], c.V[1]) }
func (c SetVec3) Exec(f gl.Functions)       { f.Uniform3f(c.Loc, c.V[0], c.V[1], c.V[2]) }
func (c SetVec4) Exec(f gl.Functions)       { f.Uniform4f(c.Loc, c.V[0], c.V[1], c.V[2], c.V[3]) }
func (c SetFloatArray) Exec(f gl.Functions) { f.Uniform1fv(c.Loc, c.V) }
func (c Func) Exec(f gl.Functions)          { c.Fn(f) }

func (c SetInt) String() string        { return fmt.Sprintf("SetInt(%d, %d)", c.Loc.V, c.V) }
func (c SetFloat) String() string      { return fmt.Sprintf("SetFloat(%d, %g)", c.Loc.V, c.V) }
func (c SetVec2) String() string       { return fmt.Sprintf("SetVec2(%d, %v)", c.Loc.V, c.V) }
func (c SetVec3) String() string       { return fmt.Sprintf("SetVec3(%d, %v)", c.Loc.V, c.V) }
func (c SetVec4) String() string       { return fmt.Sprintf("SetVec4(%d, %v)", c.Loc.V, c.V) }
func (c SetFloatArray) String() string { return fmt.Sprintf("SetFloatArray(%d, %v)", c.Loc.V, c.V) }

func (c Func) String() string {
	if c.Name == "" {
		return "Func"
	}
	return "Func(" + c.Name + ")"
}

// Queue is a FIFO of deferred commands. Enqueue may be called from any
// goroutine; Drain only from the goroutine owning the GL context.
type Queue struct {
	mu      sync.Mutex
	pending []Command
}

// Enqueue appends c to the queue.
func (q *Queue) Enqueue(c Command) {
	q.mu.Lock()
	q.pending = append(q.pending, c)
	q.mu.Unlock()
}

// Drain executes queued commands in order until the queue is empty and
// returns the number executed. Commands enqueued while draining,
// including by the commands themselves, run in the same call.
func (q *Queue) Drain(f gl.Functions) int {
	n := 0
	for {
		q.mu.Lock()
		cmds := q.pending
		q.pending = nil
		q.mu.Unlock()
		if len(cmds) == 0 {
			return n
		}
		for i, c := range cmds {
			c.Exec(f)
			// Release the reference for the collector.
			cmds[i] = nil
		}
		n += len(cmds)
	}
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Pending returns a snapshot of the pending commands, oldest first.
func (q *Queue) Pending() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Command(nil), q.pending...)
}

// Reset discards all pending commands.
func (q *Queue) Reset() {
	q.mu.Lock()
	q.pending = nil
	q.mu.Unlock()
}
