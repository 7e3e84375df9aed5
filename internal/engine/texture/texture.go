// Package texture decodes images and uploads them as 2D textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/learnopengl/internal/engine/gfx"
)

// Options controls decoding and sampling.
type Options struct {
	// FlipY puts the first image row at the bottom, where OpenGL expects it.
	FlipY     bool
	Wrap      int32
	MinFilter int32
	MagFilter int32
	// MaxSize scales larger images down to fit; 0 disables scaling.
	MaxSize int
}

// DefaultOptions returns repeat wrapping with trilinear minification.
func DefaultOptions() Options {
	return Options{
		FlipY:     true,
		Wrap:      gfx.Repeat,
		MinFilter: gfx.LinearMipmapLinear,
		MagFilter: gfx.Linear,
	}
}

// Decode decodes an image file. name is only used to recognize TGA files.
func Decode(data []byte, name string, opts Options) (*image.RGBA, error) {
	var (
		img image.Image
		err error
	)
	if strings.EqualFold(path.Ext(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ToRGBA(img, opts), nil
}

// ToRGBA converts img to a tightly packed RGBA image at the origin,
// scaled and flipped according to opts.
func ToRGBA(img image.Image, opts Options) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if opts.MaxSize > 0 && (w > opts.MaxSize || h > opts.MaxSize) {
		if w >= h {
			w, h = opts.MaxSize, max(1, h*opts.MaxSize/w)
		} else {
			w, h = max(1, w*opts.MaxSize/h), opts.MaxSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	if opts.FlipY {
		flipRows(dst)
	}
	return dst
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Checkerboard returns a size x size image of alternating cells.
func Checkerboard(size, cell int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Texture is one 2D texture object.
type Texture struct {
	dev    gfx.Textures
	id     uint32
	width  int
	height int
}

// Upload creates a texture from img. img must start at the origin.
func Upload(dev gfx.Textures, img *image.RGBA, opts Options) *Texture {
	b := img.Bounds()
	t := &Texture{dev: dev, width: b.Dx(), height: b.Dy()}

	t.id = dev.GenTexture()
	dev.ActiveTexture(0)
	dev.BindTexture(t.id)
	dev.TexParameteri(gfx.TextureWrapS, opts.Wrap)
	dev.TexParameteri(gfx.TextureWrapT, opts.Wrap)
	dev.TexParameteri(gfx.TextureMinFilter, opts.MinFilter)
	dev.TexParameteri(gfx.TextureMagFilter, opts.MagFilter)
	dev.TexImage2D(int32(t.width), int32(t.height), img.Pix)
	if opts.MinFilter == gfx.LinearMipmapLinear {
		dev.GenerateMipmap()
	}
	return t
}

// Load reads, decodes and uploads the image at name in fsys.
func Load(dev gfx.Textures, fsys fs.FS, name string, opts Options) (*Texture, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	img, err := Decode(data, name, opts)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	return Upload(dev, img, opts), nil
}

// ID returns the texture name.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// Bind binds the texture to a texture unit.
func (t *Texture) Bind(unit int) {
	t.dev.ActiveTexture(unit)
	t.dev.BindTexture(t.id)
}

// Delete releases the texture. It is safe to call more than once, and on nil.
func (t *Texture) Delete() {
	if t != nil && t.id != 0 {
		t.dev.DeleteTexture(t.id)
		t.id = 0
	}
}
