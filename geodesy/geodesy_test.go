package geodesy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdcomp/geodesy"
)

var formulas = []geodesy.Formula{geodesy.Vincenty, geodesy.Cosine, geodesy.S2}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// TestNewAffine_Length rejects anything but 6 coefficients.
func TestNewAffine_Length(t *testing.T) {
	for _, n := range []int{0, 5, 7} {
		_, err := geodesy.NewAffine(make([]float64, n))
		assert.ErrorIs(t, err, geodesy.ErrTransformLength, "len=%d", n)
	}
	a, err := geodesy.NewAffine([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, geodesy.Affine{1, 2, 3, 4, 5, 6}, a)
}

// TestLonLat checks coefficient order and the degree→radian conversion.
func TestLonLat(t *testing.T) {
	a := geodesy.Affine{0.5, 0, 10, 0, -0.5, 50}

	lon, lat := a.LonLatDegrees(2, 4)
	assert.Equal(t, 12.0, lon)
	assert.Equal(t, 49.0, lat)

	lonR, latR := a.LonLat(2, 4)
	assert.InDelta(t, rad(12), lonR, 1e-15)
	assert.InDelta(t, rad(49), latR, 1e-15)

	// shear terms: row feeds lon through a1, col feeds lat through a3
	s := geodesy.Affine{0, 1, 0, 1, 0, 0}
	lon, lat = s.LonLatDegrees(3, 7)
	assert.Equal(t, 3.0, lon)
	assert.Equal(t, 7.0, lat)
}

// TestDistance_EquatorDegree checks one degree of longitude on the equator.
func TestDistance_EquatorDegree(t *testing.T) {
	for _, f := range formulas {
		d := f.Distance(0, 0, rad(1), 0)
		assert.Equal(t, uint32(111194), d, "formula %s", f)
	}
}

// TestDistance_Identity verifies d(a,a) == 0 for all formulas.
func TestDistance_Identity(t *testing.T) {
	pts := [][2]float64{{0, 0}, {rad(37.6), rad(55.75)}, {rad(-70.1), rad(-33.4)}, {rad(179.9), rad(89.9)}}
	for _, f := range formulas {
		for _, p := range pts {
			assert.Zero(t, f.Distance(p[0], p[1], p[0], p[1]), "formula %s at %v", f, p)
		}
	}
}

// TestDistance_Symmetry verifies d(a,b) == d(b,a) exactly.
func TestDistance_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{rad(-60.0), rad(-10.0), rad(-60.0083), rad(-10.0083)},
		{rad(37.6), rad(55.75), rad(30.3), rad(59.95)},
		{rad(10), rad(0), rad(10), rad(0.0001)},
		{rad(-179.5), rad(12), rad(179.5), rad(12)},
	}
	for _, f := range formulas {
		for _, p := range pairs {
			ab := f.Distance(p[0], p[1], p[2], p[3])
			ba := f.Distance(p[2], p[3], p[0], p[1])
			assert.Equal(t, ab, ba, "formula %s pair %v", f, p)
			assert.Positive(t, ab)
		}
	}
}

// TestDistance_FormulasAgree checks the formulations against each other on
// a ~630 km arc, where all three are well conditioned.
func TestDistance_FormulasAgree(t *testing.T) {
	lon1, lat1, lon2, lat2 := rad(37.6), rad(55.75), rad(30.3), rad(59.95)
	v := float64(geodesy.VincentyDistance(lon1, lat1, lon2, lat2))
	c := float64(geodesy.CosineDistance(lon1, lat1, lon2, lat2))
	s := float64(geodesy.S2.Distance(lon1, lat1, lon2, lat2))

	assert.InDelta(t, v, c, 1)
	assert.InDelta(t, v, s, 1)
	assert.InDelta(t, 633000, v, 10000)
}

// TestFormula_Names covers String and ParseFormula.
func TestFormula_Names(t *testing.T) {
	for _, f := range formulas {
		got, err := geodesy.ParseFormula(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := geodesy.ParseFormula(" Cosine ")
	require.NoError(t, err)
	assert.Equal(t, geodesy.Cosine, got)

	_, err = geodesy.ParseFormula("flat-earth")
	assert.Error(t, err)
	assert.Equal(t, "formula(9)", geodesy.Formula(9).String())
}
