package geodesy

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadius is the mean Earth radius in metres.
const EarthRadius = 6371000.0

// Formula selects a great-circle distance formulation.
type Formula int

const (
	// Vincenty is the atan2 form, accurate for short and long arcs.
	Vincenty Formula = iota
	// Cosine is the spherical law of cosines.
	Cosine
	// S2 is the haversine distance from github.com/golang/geo/s2.
	S2
)

var formulaNames = map[Formula]string{
	Vincenty: "vincenty",
	Cosine:   "cosine",
	S2:       "s2",
}

// String returns the lower-case formula name.
func (f Formula) String() string {
	if s, ok := formulaNames[f]; ok {
		return s
	}

	return fmt.Sprintf("formula(%d)", int(f))
}

// ParseFormula resolves a formula name, case-insensitively.
func ParseFormula(name string) (Formula, error) {
	for f, s := range formulaNames {
		if strings.EqualFold(s, strings.TrimSpace(name)) {
			return f, nil
		}
	}

	return Vincenty, fmt.Errorf("geodesy: unknown distance formula %q", name)
}

// Distance returns the whole-metre great-circle distance between two
// lon/lat points given in radians. The result is symmetric in its
// arguments and zero for identical points.
func (f Formula) Distance(lon1, lat1, lon2, lat2 float64) uint32 {
	if lon1 == lon2 && lat1 == lat2 {
		return 0
	}
	// canonical argument order keeps d(a,b) and d(b,a) bit-identical
	if lon2 < lon1 || (lon2 == lon1 && lat2 < lat1) {
		lon1, lat1, lon2, lat2 = lon2, lat2, lon1, lat1
	}

	var sigma float64
	switch f {
	case Cosine:
		sigma = cosineAngle(lon1, lat1, lon2, lat2)
	case S2:
		a := s2.LatLng{Lat: s1.Angle(lat1), Lng: s1.Angle(lon1)}
		b := s2.LatLng{Lat: s1.Angle(lat2), Lng: s1.Angle(lon2)}
		sigma = a.Distance(b).Radians()
	default:
		sigma = vincentyAngle(lon1, lat1, lon2, lat2)
	}

	return uint32(EarthRadius * sigma)
}

// CosineDistance is Cosine.Distance.
func CosineDistance(lon1, lat1, lon2, lat2 float64) uint32 {
	return Cosine.Distance(lon1, lat1, lon2, lat2)
}

// VincentyDistance is Vincenty.Distance.
func VincentyDistance(lon1, lat1, lon2, lat2 float64) uint32 {
	return Vincenty.Distance(lon1, lat1, lon2, lat2)
}

func cosineAngle(lon1, lat1, lon2, lat2 float64) float64 {
	x := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	// rounding can push x just past ±1, where Acos is NaN
	x = math.Max(-1, math.Min(1, x))

	return math.Acos(x)
}

func vincentyAngle(lon1, lat1, lon2, lat2 float64) float64 {
	dLon := lon2 - lon1
	sinLat1, cosLat1 := math.Sincos(lat1)
	sinLat2, cosLat2 := math.Sincos(lat2)
	x := sinLat1*sinLat2 + cosLat1*cosLat2*math.Cos(dLon)
	y1 := cosLat2 * math.Sin(dLon)
	y2 := cosLat1*sinLat2 - sinLat1*cosLat2*math.Cos(dLon)

	return math.Atan2(math.Sqrt(y1*y1+y2*y2), x)
}
