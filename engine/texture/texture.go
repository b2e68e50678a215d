// Package texture resolves named planet maps into shared, immutable texture
// handles. Handles are reference counted by a Cache and may be resolved
// asynchronously through a Resolver.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/Carmen-Shannon/oxy-globe/common"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// texture is the implementation of the Texture interface.
type texture struct {
	name    string
	pixels  []byte
	width   uint32
	height  uint32
	sampler common.SamplerStagingData
}

// Texture defines a decoded, immutable RGBA image shared between materials.
// Materials reference textures but never own them; lifetime is governed by the Cache.
type Texture interface {
	// Name returns the identifier the texture was resolved from (e.g. "earth-diffuse").
	//
	// Returns:
	//   - string: the texture name
	Name() string

	// Width returns the texture width in pixels.
	//
	// Returns:
	//   - uint32: width in pixels
	Width() uint32

	// Height returns the texture height in pixels.
	//
	// Returns:
	//   - uint32: height in pixels
	Height() uint32

	// Pixels returns the row-major RGBA pixel data, 4 bytes per pixel.
	// The slice is shared and must not be modified.
	//
	// Returns:
	//   - []byte: the pixel data
	Pixels() []byte

	// StagingData returns the pixel data packaged for GPU upload.
	//
	// Returns:
	//   - common.TextureStagingData: pixels with dimensions
	StagingData() common.TextureStagingData

	// Sampler returns the sampler configuration the texture should be bound with.
	//
	// Returns:
	//   - common.SamplerStagingData: the sampler parameters
	Sampler() common.SamplerStagingData
}

var _ Texture = &texture{}

// NewTexture creates a Texture from options. Without WithPixels or WithImage the
// texture is a single opaque white pixel.
//
// Parameters:
//   - name: the texture identifier
//   - options: functional options to configure the texture
//
// Returns:
//   - Texture: the newly created texture
func NewTexture(name string, options ...TextureBuilderOption) Texture {
	t := &texture{
		name:    name,
		pixels:  []byte{255, 255, 255, 255},
		width:   1,
		height:  1,
		sampler: common.EquirectangularSampler(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Decode reads a PNG, JPEG, TIFF, BMP or WebP image and converts it to an RGBA texture.
//
// Parameters:
//   - name: the texture identifier
//   - r: the encoded image stream
//   - options: functional options applied after decoding (e.g. WithSampler)
//
// Returns:
//   - Texture: the decoded texture
//   - error: error if the stream is not a supported image
func Decode(name string, r io.Reader, options ...TextureBuilderOption) (Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", name, err)
	}
	return NewTexture(name, append([]TextureBuilderOption{WithImage(img)}, options...)...), nil
}

// DecodeBytes is Decode over an in-memory encoded image.
//
// Parameters:
//   - name: the texture identifier
//   - data: the encoded image bytes
//   - options: functional options applied after decoding
//
// Returns:
//   - Texture: the decoded texture
//   - error: error if the bytes are not a supported image
func DecodeBytes(name string, data []byte, options ...TextureBuilderOption) (Texture, error) {
	return Decode(name, bytes.NewReader(data), options...)
}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Width() uint32 {
	return t.width
}

func (t *texture) Height() uint32 {
	return t.height
}

func (t *texture) Pixels() []byte {
	return t.pixels
}

func (t *texture) StagingData() common.TextureStagingData {
	return common.TextureStagingData{Pixels: t.pixels, Width: t.width, Height: t.height}
}

func (t *texture) Sampler() common.SamplerStagingData {
	return t.sampler
}

// toRGBA converts any image to tightly packed RGBA pixels.
func toRGBA(img image.Image) ([]byte, uint32, uint32) {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Stride == 4*bounds.Dx() {
		return rgba.Pix, uint32(bounds.Dx()), uint32(bounds.Dy())
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, uint32(bounds.Dx()), uint32(bounds.Dy())
}
