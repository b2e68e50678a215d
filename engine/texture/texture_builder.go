package texture

import (
	"image"

	"github.com/Carmen-Shannon/oxy-globe/common"
)

// TextureBuilderOption is a functional option for configuring a texture during construction.
type TextureBuilderOption func(*texture)

// WithPixels sets raw RGBA pixel data. The slice is retained, not copied.
// Data whose length does not match width*height*4 is ignored.
//
// Parameters:
//   - pixels: row-major RGBA bytes
//   - width: width in pixels
//   - height: height in pixels
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithPixels(pixels []byte, width, height uint32) TextureBuilderOption {
	return func(t *texture) {
		if width == 0 || height == 0 || uint64(len(pixels)) != uint64(width)*uint64(height)*4 {
			return
		}
		t.pixels = pixels
		t.width = width
		t.height = height
	}
}

// WithImage converts an image to RGBA and uses it as the texture content.
//
// Parameters:
//   - img: the source image
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithImage(img image.Image) TextureBuilderOption {
	return func(t *texture) {
		if img == nil || img.Bounds().Empty() {
			return
		}
		t.pixels, t.width, t.height = toRGBA(img)
	}
}

// WithSampler overrides the default equirectangular sampler.
//
// Parameters:
//   - sampler: the sampler parameters to bind the texture with
//
// Returns:
//   - TextureBuilderOption: option function to apply
func WithSampler(sampler common.SamplerStagingData) TextureBuilderOption {
	return func(t *texture) {
		t.sampler = sampler
	}
}
