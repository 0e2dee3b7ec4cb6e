// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
	"strings"
)

// CompileError is returned when a shader stage fails to compile or
// the program fails to link. Log holds the driver's info log.
type CompileError struct {
	// Stage is VERTEX_SHADER, FRAGMENT_SHADER or 0 for a link failure.
	Stage Enum
	Log   string
}

func (e *CompileError) Error() string {
	switch e.Stage {
	case VERTEX_SHADER:
		return fmt.Sprintf("vertex shader compilation failed: %s", e.Log)
	case FRAGMENT_SHADER:
		return fmt.Sprintf("fragment shader compilation failed: %s", e.Log)
	default:
		return fmt.Sprintf("program link failed: %s", e.Log)
	}
}

// CreateProgram compiles and links a program from vertex and fragment
// shader sources. The shader objects are deleted before CreateProgram
// returns, whether or not it succeeds.
func CreateProgram(ctx Functions, vsSrc, fsSrc string) (Program, error) {
	vs, err := createShader(ctx, VERTEX_SHADER, vsSrc)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(vs)
	fs, err := createShader(ctx, FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(fs)
	prog := ctx.CreateProgram()
	if !prog.Valid() {
		return Program{}, errors.New("glCreateProgram failed")
	}
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	ctx.LinkProgram(prog)
	if ctx.GetProgrami(prog, LINK_STATUS) == 0 {
		log := ctx.GetProgramInfoLog(prog)
		ctx.DeleteProgram(prog)
		return Program{}, &CompileError{Log: strings.TrimSpace(log)}
	}
	return prog, nil
}

func createShader(ctx Functions, typ Enum, src string) (Shader, error) {
	sh := ctx.CreateShader(typ)
	if !sh.Valid() {
		return Shader{}, errors.New("glCreateShader failed")
	}
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if ctx.GetShaderi(sh, COMPILE_STATUS) == 0 {
		log := ctx.GetShaderInfoLog(sh)
		ctx.DeleteShader(sh)
		return Shader{}, &CompileError{Stage: typ, Log: strings.TrimSpace(log)}
	}
	return sh, nil
}

// ParseGLVersion parses the major and minor version from a GL_VERSION
// string, and whether it describes an OpenGL ES context.
func ParseGLVersion(glVer string) (version [2]int, gles bool, err error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &ver[0], &ver[1]); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1
		ver[0]++
		return ver, true, nil
	} else if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, false, nil
	}
	return ver, false, fmt.Errorf("failed to parse OpenGL version (%s)", glVer)
}
