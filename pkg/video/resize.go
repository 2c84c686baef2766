package video

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultEdge is the square edge length the API expects.
const DefaultEdge = 768

// ResizeSquare scales a square image to edge x edge pixels. Non-square
// input is rejected; the API distorts anything else.
func ResizeSquare(src image.Image, edge int) (image.Image, error) {
	bounds := src.Bounds()
	if bounds.Dx() != bounds.Dy() {
		return nil, fmt.Errorf("video: image is %dx%d, must be square",
			bounds.Dx(), bounds.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, edge, edge))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	return dst, nil
}
