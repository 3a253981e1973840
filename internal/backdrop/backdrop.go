// Package backdrop loads the image the points are picked over and reduces it
// to one gray level per canvas cell.
package backdrop

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// Backdrop is a grayscale copy of the source image
type Backdrop struct {
	Path   string
	Format string
	gray   *image.Gray
}

// Load decodes a BMP, PNG, JPEG or TIFF file
func Load(path string) (*Backdrop, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := FromImage(img)
	b.Path = path
	b.Format = format
	return b, nil
}

// FromImage converts img to gray, rebased to the origin
func FromImage(img image.Image) *Backdrop {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
	return &Backdrop{gray: gray}
}

// Width returns the image width in pixels
func (b *Backdrop) Width() int {
	return b.gray.Bounds().Dx()
}

// Height returns the image height in pixels
func (b *Backdrop) Height() int {
	return b.gray.Bounds().Dy()
}

// Sample resamples the image to cols x rows; each output pixel is the gray
// level of one canvas cell.
func (b *Backdrop) Sample(cols, rows int) *image.Gray {
	if cols <= 0 || rows <= 0 {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewGray(image.Rect(0, 0, cols, rows))
	if b.Width() == 0 || b.Height() == 0 {
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), b.gray, b.gray.Bounds(), xdraw.Src, nil)
	return dst
}
