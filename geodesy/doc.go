// Package geodesy maps raster cells to geographic coordinates and measures
// great-circle distances between them.
//
// An Affine holds the six coefficients of a north-up (or sheared) raster
// transform in the order
//
//	lon = col*a0 + row*a1 + a2
//	lat = col*a3 + row*a4 + a5
//
// with results in degrees; LonLat returns radians, ready for the distance
// formulas.
//
// Three interchangeable spherical formulas are provided, all on a sphere
// of radius EarthRadius and all truncated to whole metres:
//
//   - Cosine:   spherical law of cosines; cheap, loses precision for very
//     short arcs.
//   - Vincenty: atan2 form of the Vincenty special case; stable at every
//     scale. This is the default.
//   - S2:       haversine as implemented by github.com/golang/geo/s2.
package geodesy
