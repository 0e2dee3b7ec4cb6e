// SPDX-License-Identifier: Unlicense OR MIT

// Command filterview draws an image through a GPU filter in a window.
//
// Usage:
//
//	filterview -image photo.jpg [-frag effect.frag] [-preset effect.toml]
//
// The preset file sets uniforms of the fragment shader, either to fixed
// values or animated by background goroutines:
//
//	[[uniform]]
//	name = "u_tint"
//	vec3 = [1.0, 0.9, 0.8]
//
//	[[animate]]
//	name = "u_mix"
//	min = 0.0
//	max = 1.0
//	period = 2.0
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/sync/errgroup"

	"hike.wiki/camera/filter"
	"hike.wiki/camera/internal/gl"
	"hike.wiki/camera/internal/gl/gogl"
	"hike.wiki/camera/internal/preset"
	"hike.wiki/camera/internal/teximage"
)

var (
	imagePath  = flag.String("image", "", "image to filter (png, jpeg, gif, bmp, tiff or webp)")
	vertPath   = flag.String("vert", "", "vertex shader file (default passthrough)")
	fragPath   = flag.String("frag", "", "fragment shader file (default passthrough)")
	presetPath = flag.String("preset", "", "TOML file of uniform values")
	width      = flag.Int("width", 800, "window width")
	height     = flag.Int("height", 600, "window height")
	verbose    = flag.Bool("v", false, "verbose output")
)

// animationInterval is how often animated uniforms are updated.
const animationInterval = 16 * time.Millisecond

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: filterview -image <file> [flags]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	filter.SetLogger(logger)
	if err := run(logger); err != nil {
		log.Fatal(err)
	}
}

func run(logger *slog.Logger) error {
	vs, fs, err := loadShaders(*vertPath, *fragPath)
	if err != nil {
		return err
	}
	var p *preset.Preset
	if *presetPath != "" {
		file, err := os.Open(*presetPath)
		if err != nil {
			return err
		}
		p, err = preset.Parse(file)
		file.Close()
		if err != nil {
			return err
		}
	}
	img, err := loadImage(*imagePath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	window, err := glfw.CreateWindow(*width, *height, "filterview", nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	f, err := gogl.New()
	if err != nil {
		return err
	}
	glVer := f.GetString(gl.VERSION)
	if ver, gles, err := gl.ParseGLVersion(glVer); err == nil {
		logger.Info("context", "version", ver, "gles", gles, "renderer", f.GetString(gl.RENDERER))
	} else {
		logger.Warn("context", "err", err)
	}

	tex := teximage.Upload(f, teximage.Fit(img, f.GetInteger(gl.MAX_TEXTURE_SIZE)))
	defer f.DeleteTexture(tex)
	quad := filter.NewQuad(f)
	defer quad.Release(f)

	flt := filter.New(filter.Sampler2D, vs, fs, filter.Hooks{})
	if err := flt.Init(f); err != nil {
		return err
	}
	defer flt.Destroy(f)

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	if p != nil {
		for _, u := range p.Uniforms {
			loc := flt.UniformLocation(f, u.Name)
			if !loc.Valid() {
				logger.Warn("uniform not found", "name", u.Name)
				continue
			}
			u.Enqueue(flt, loc)
		}
		for _, a := range p.Animations {
			a := a
			loc := flt.UniformLocation(f, a.Name)
			if !loc.Valid() {
				logger.Warn("uniform not found", "name", a.Name)
				continue
			}
			g.Go(func() error {
				return a.Run(gctx, flt, loc, animationInterval)
			})
		}
	}

	textures := []gl.Texture{tex}
	for !window.ShouldClose() {
		glfw.PollEvents()
		w, h := window.GetFramebufferSize()
		f.Viewport(0, 0, w, h)
		f.ClearColor(0, 0, 0, 1)
		f.Clear(gl.COLOR_BUFFER_BIT)
		quad.Draw(flt, f, textures)
		window.SwapBuffers()
	}
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func loadShaders(vertPath, fragPath string) (vs, fs string, err error) {
	vs, fs = filter.PassthroughVertexShader, filter.PassthroughFragmentShader
	if vertPath != "" {
		src, err := os.ReadFile(vertPath)
		if err != nil {
			return "", "", err
		}
		vs = string(src)
	}
	if fragPath != "" {
		src, err := os.ReadFile(fragPath)
		if err != nil {
			return "", "", err
		}
		fs = string(src)
	}
	return vs, fs, nil
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return teximage.Decode(file)
}
