package geodesy

import (
	"errors"
	"fmt"
	"math"
)

// ErrTransformLength indicates a coefficient slice that is not exactly 6 long.
var ErrTransformLength = errors.New("geodesy: affine transform needs exactly 6 coefficients")

// Affine is a 6-coefficient raster-to-geographic transform.
type Affine [6]float64

// NewAffine validates and copies a coefficient slice.
func NewAffine(coeffs []float64) (Affine, error) {
	var a Affine
	if len(coeffs) != len(a) {
		return a, fmt.Errorf("%w: got %d", ErrTransformLength, len(coeffs))
	}
	copy(a[:], coeffs)

	return a, nil
}

// LonLatDegrees returns the geographic position of (row,col) in degrees.
func (a Affine) LonLatDegrees(row, col int) (lon, lat float64) {
	r, c := float64(row), float64(col)

	return c*a[0] + r*a[1] + a[2], c*a[3] + r*a[4] + a[5]
}

// LonLat returns the geographic position of (row,col) in radians.
func (a Affine) LonLat(row, col int) (lon, lat float64) {
	lon, lat = a.LonLatDegrees(row, col)

	return lon * degToRad, lat * degToRad
}

const degToRad = math.Pi / 180
