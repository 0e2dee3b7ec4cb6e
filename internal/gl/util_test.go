// SPDX-License-Identifier: Unlicense OR MIT

package gl_test

import (
	"errors"
	"strings"
	"testing"

	"hike.wiki/camera/internal/gl"
	"hike.wiki/camera/internal/gl/glrec"
)

func TestCreateProgram(t *testing.T) {
	r := new(glrec.Recorder)
	prog, err := gl.CreateProgram(r, "vs", "fs")
	if err != nil {
		t.Fatal(err)
	}
	if !prog.Valid() {
		t.Fatal("invalid program")
	}
	if n := r.LiveShaders(); n != 0 {
		t.Errorf("%d shaders leaked", n)
	}
	if n := r.LivePrograms(); n != 1 {
		t.Errorf("got %d live programs, expected 1", n)
	}
}

func TestCreateProgramFailures(t *testing.T) {
	tests := []struct {
		name  string
		rec   *glrec.Recorder
		stage gl.Enum
	}{
		{"vertex", &glrec.Recorder{FailCompile: gl.VERTEX_SHADER, InfoLog: "bad vertex "}, gl.VERTEX_SHADER},
		{"fragment", &glrec.Recorder{FailCompile: gl.FRAGMENT_SHADER, InfoLog: "bad fragment"}, gl.FRAGMENT_SHADER},
		{"link", &glrec.Recorder{FailLink: true, InfoLog: "\nbad link\n"}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prog, err := gl.CreateProgram(test.rec, "vs", "fs")
			if prog.Valid() {
				t.Error("got a valid program on failure")
			}
			var cerr *gl.CompileError
			if !errors.As(err, &cerr) {
				t.Fatalf("got error %v, expected a *gl.CompileError", err)
			}
			if cerr.Stage != test.stage {
				t.Errorf("got stage %#x, expected %#x", cerr.Stage, test.stage)
			}
			if !strings.HasPrefix(cerr.Log, "bad ") || strings.TrimSpace(cerr.Log) != cerr.Log {
				t.Errorf("got log %q", cerr.Log)
			}
			if n := test.rec.LiveShaders(); n != 0 {
				t.Errorf("%d shaders leaked", n)
			}
			if n := test.rec.LivePrograms(); n != 0 {
				t.Errorf("%d programs leaked", n)
			}
		})
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &gl.CompileError{Stage: gl.FRAGMENT_SHADER, Log: "0:1: syntax error"}
	if got := err.Error(); got != "fragment shader compilation failed: 0:1: syntax error" {
		t.Errorf("got %q", got)
	}
	err = &gl.CompileError{Log: "missing main"}
	if got := err.Error(); got != "program link failed: missing main" {
		t.Errorf("got %q", got)
	}
}

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		ver  [2]int
		gles bool
	}{
		{"OpenGL ES 3.2 Mesa 23.0", [2]int{3, 2}, true},
		{"WebGL 1.0", [2]int{2, 0}, true},
		{"4.6 Core", [2]int{4, 6}, false},
	}
	for _, test := range tests {
		ver, gles, err := gl.ParseGLVersion(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if ver != test.ver || gles != test.gles {
			t.Errorf("%q: got %v %v, expected %v %v", test.in, ver, gles, test.ver, test.gles)
		}
	}
	if _, _, err := gl.ParseGLVersion("garbage"); err == nil {
		t.Error("parsed garbage")
	}
}
