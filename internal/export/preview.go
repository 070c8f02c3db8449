package export

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/fdcomp/grid"
)

// goldenAngle spreads consecutive path ids around the hue wheel.
const goldenAngle = 137.50776405003785

// background is drawn for unreached cells.
var background = color.NRGBA{A: 0}

// LabelColor returns the preview colour of a path id. Id 0 is transparent.
func LabelColor(id uint32) color.NRGBA {
	if id == 0 {
		return background
	}
	hue := math.Mod(float64(id)*goldenAngle, 360)
	r, g, b := colorful.Hsv(hue, 0.65, 0.95).RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Preview renders labels one pixel per cell, then enlarges the image by
// scale with nearest-neighbour sampling so cell edges stay sharp.
func Preview(labels *grid.Grid[uint32], scale int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, labels.Cols, labels.Rows))
	for i, id := range labels.Data {
		c := labels.Coordinate(i)
		img.SetNRGBA(c.Col, c.Row, LabelColor(id))
	}
	if scale <= 1 {
		return img
	}

	return imaging.Resize(img, labels.Cols*scale, labels.Rows*scale, imaging.NearestNeighbor)
}

// EncodePreview writes the preview as PNG.
func EncodePreview(w io.Writer, labels *grid.Grid[uint32], scale int) error {
	return imaging.Encode(w, Preview(labels, scale), imaging.PNG)
}

// SavePreview writes the preview to path; the format follows the extension.
func SavePreview(path string, labels *grid.Grid[uint32], scale int) error {
	return imaging.Save(Preview(labels, scale), path)
}
