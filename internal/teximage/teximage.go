// SPDX-License-Identifier: Unlicense OR MIT

// Package teximage decodes images and uploads them as 2D textures for
// Sampler2D filters.
package teximage

import (
	"fmt"
	"image"
	"io"

	// Image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"

	"hike.wiki/camera/internal/gl"
)

// Decode decodes an image in any of the registered formats.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("teximage: %w", err)
	}
	return img, nil
}

// Fit converts img to RGBA with its origin at (0, 0), scaling it down
// to fit in a limit by limit square if it is larger. A limit of 0
// disables scaling.
func Fit(img image.Image, limit int) *image.RGBA {
	b := img.Bounds()
	sz := b.Size()
	if limit > 0 && (sz.X > limit || sz.Y > limit) {
		if sz.X >= sz.Y {
			sz = image.Pt(limit, sz.Y*limit/sz.X)
		} else {
			sz = image.Pt(sz.X*limit/sz.Y, limit)
		}
		if sz.X == 0 {
			sz.X = 1
		}
		if sz.Y == 0 {
			sz.Y = 1
		}
		dst := image.NewRGBA(image.Rectangle{Max: sz})
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		return dst
	}
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*sz.X {
		return rgba
	}
	dst := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Upload creates a TEXTURE_2D holding img. The caller owns the texture
// and releases it with DeleteTexture.
func Upload(f gl.Functions, img *image.RGBA) gl.Texture {
	sz := img.Bounds().Size()
	tex := f.CreateTexture()
	f.BindTexture(gl.TEXTURE_2D, tex)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	f.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	f.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, sz.X, sz.Y, gl.RGBA, gl.UNSIGNED_BYTE, packed(img))
	f.BindTexture(gl.TEXTURE_2D, gl.Texture{})
	return tex
}

// packed returns the pixels of img without row padding.
func packed(img *image.RGBA) []byte {
	sz := img.Bounds().Size()
	rowLen := 4 * sz.X
	start := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)
	if img.Stride == rowLen {
		return img.Pix[start : start+rowLen*sz.Y]
	}
	pix := make([]byte, 0, rowLen*sz.Y)
	for y := 0; y < sz.Y; y++ {
		off := start + y*img.Stride
		pix = append(pix, img.Pix[off:off+rowLen]...)
	}
	return pix
}
