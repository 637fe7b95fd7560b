package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	// StandardSize is the edge length of the standard rendition box.
	StandardSize = 400
	// ThumbnailSize is the edge length of the thumbnail rendition box.
	ThumbnailSize = 50

	// ContentType is the encoding every rendition is stored with.
	ContentType = "image/png"
)

// Renditions holds the three encoded variants derived from one submitted photo.
type Renditions struct {
	Original  []byte
	Standard  []byte
	Thumbnail []byte
}

// optimized matches the compression setting used for the resized renditions.
var optimized = png.Encoder{CompressionLevel: png.BestCompression}

// Render decodes arbitrary-format image bytes and produces the three PNG
// renditions: the original at unchanged dimensions, a 400x400 standard and a
// sharpened 50x50 thumbnail. Resizing stretches to the exact target box; the
// aspect ratio is not preserved. A decode failure returns an error before any
// pixel work happens.
func Render(data []byte) (*Renditions, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	rgb := flatten(src)

	var original bytes.Buffer
	if err := png.Encode(&original, rgb); err != nil {
		return nil, fmt.Errorf("encode original: %w", err)
	}

	var standard bytes.Buffer
	if err := optimized.Encode(&standard, stretch(rgb, StandardSize, StandardSize)); err != nil {
		return nil, fmt.Errorf("encode standard: %w", err)
	}

	var thumbnail bytes.Buffer
	if err := optimized.Encode(&thumbnail, sharpen(stretch(rgb, ThumbnailSize, ThumbnailSize))); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return &Renditions{
		Original:  original.Bytes(),
		Standard:  standard.Bytes(),
		Thumbnail: thumbnail.Bytes(),
	}, nil
}

// flatten redraws the source into an opaque NRGBA image so alpha and palette
// modes come out as plain RGB.
func flatten(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xFF
	}
	return dst
}

// stretch resizes to exactly w x h with a Catmull-Rom filter.
func stretch(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// sharpenKernel is a 3x3 edge-enhancement kernel, divisor 16.
var sharpenKernel = [9]int32{
	-2, -2, -2,
	-2, 32, -2,
	-2, -2, -2,
}

// sharpen runs a single fixed-kernel pass over the interior pixels to bring
// back detail lost at thumbnail scale. Border pixels keep their source values.
func sharpen(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(b)
	copy(dst.Pix, src.Pix)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			for c := 0; c < 3; c++ {
				var sum int32
				k := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						sum += sharpenKernel[k] * int32(src.Pix[(y+dy)*src.Stride+(x+dx)*4+c])
						k++
					}
				}
				v := sum / 16
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				dst.Pix[y*dst.Stride+x*4+c] = uint8(v)
			}
			dst.Pix[y*dst.Stride+x*4+3] = 0xFF
		}
	}
	return dst
}
