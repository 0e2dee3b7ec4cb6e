// SPDX-License-Identifier: Unlicense OR MIT

package filter

import (
	"reflect"
	"sync"
	"testing"

	"hike.wiki/camera/internal/gl"
	"hike.wiki/camera/internal/gl/glrec"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Enqueue(SetInt{Loc: gl.Uniform{V: 1}, V: 7})
	q.Enqueue(SetFloat{Loc: gl.Uniform{V: 2}, V: 1.5})
	q.Enqueue(SetVec2{Loc: gl.Uniform{V: 3}, V: [2]float32{1, 2}})
	q.Enqueue(SetVec3{Loc: gl.Uniform{V: 4}, V: [3]float32{1, 2, 3}})
	q.Enqueue(SetVec4{Loc: gl.Uniform{V: 5}, V: [4]float32{1, 2, 3, 4}})
	q.Enqueue(SetFloatArray{Loc: gl.Uniform{V: 6}, V: []float32{0.5, 0.25}})
	if q.Len() != 6 {
		t.Fatalf("got %d pending, expected 6", q.Len())
	}
	r := new(glrec.Recorder)
	if n := q.Drain(r); n != 6 {
		t.Errorf("drained %d commands, expected 6", n)
	}
	want := []string{
		"Uniform1i(1, 7)",
		"Uniform1f(2, 1.5)",
		"Uniform2f(3, 1, 2)",
		"Uniform3f(4, 1, 2, 3)",
		"Uniform4f(5, 1, 2, 3, 4)",
		"Uniform1fv(6, [0.5 0.25])",
	}
	if got := r.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}
	if q.Len() != 0 {
		t.Errorf("%d commands left", q.Len())
	}
	r.Reset()
	if n := q.Drain(r); n != 0 || len(r.Calls()) != 0 {
		t.Errorf("empty drain executed %d commands", n)
	}
}

func TestQueueEnqueueWhileDraining(t *testing.T) {
	var q Queue
	r := new(glrec.Recorder)
	q.Enqueue(Func{Name: "outer", Fn: func(f gl.Functions) {
		f.Finish()
		q.Enqueue(SetInt{Loc: gl.Uniform{V: 9}, V: 1})
	}})
	q.Enqueue(SetInt{Loc: gl.Uniform{V: 8}, V: 1})
	if n := q.Drain(r); n != 3 {
		t.Errorf("drained %d commands, expected 3", n)
	}
	want := []string{"Finish()", "Uniform1i(8, 1)", "Uniform1i(9, 1)"}
	if got := r.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}
}

func TestQueueConcurrentEnqueue(t *testing.T) {
	const producers, perProducer = 8, 200
	var q Queue
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(SetInt{Loc: gl.Uniform{V: p}, V: i})
			}
		}(p)
	}
	r := new(glrec.Recorder)
	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		total += q.Drain(r)
	}
	if total != producers*perProducer {
		t.Fatalf("executed %d commands, expected %d", total, producers*perProducer)
	}
	// Commands of each producer keep their order.
	next := make([]int, producers)
	for _, c := range r.Calls() {
		p, v := c.Args[0].(int), c.Args[1].(int)
		if v != next[p] {
			t.Fatalf("producer %d: got value %d, expected %d", p, v, next[p])
		}
		next[p]++
	}
}

func TestSetFloatArrayCopies(t *testing.T) {
	flt := NewPassthrough(Sampler2D, Hooks{})
	v := []float32{1, 2, 3}
	flt.SetFloatArray(gl.Uniform{V: 1}, v)
	v[0] = 100
	pending := flt.Pending()
	if len(pending) != 1 {
		t.Fatalf("got %d pending commands, expected 1", len(pending))
	}
	if got := pending[0].String(); got != "SetFloatArray(1, [1 2 3])" {
		t.Errorf("got %s", got)
	}
}

func TestCommandStrings(t *testing.T) {
	flt := NewPassthrough(Sampler2D, Hooks{})
	flt.SetInteger(gl.Uniform{V: 1}, 2)
	flt.SetFloat(gl.Uniform{V: 2}, 0.5)
	flt.SetFloatVec2(gl.Uniform{V: 3}, [2]float32{1, 2})
	flt.SetFloatVec3(gl.Uniform{V: 4}, [3]float32{1, 2, 3})
	flt.SetFloatVec4(gl.Uniform{V: 5}, [4]float32{1, 2, 3, 4})
	flt.RunOnDraw("mode", func(gl.Functions) {})
	flt.Enqueue(Func{Fn: func(gl.Functions) {}})
	var got []string
	for _, c := range flt.Pending() {
		got = append(got, c.String())
	}
	want := []string{
		"SetInt(1, 2)",
		"SetFloat(2, 0.5)",
		"SetVec2(3, [1 2])",
		"SetVec3(4, [1 2 3])",
		"SetVec4(5, [1 2 3 4])",
		"Func(mode)",
		"Func",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}
}
