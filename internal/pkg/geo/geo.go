package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean Earth radius in kilometers
const earthRadiusKm = 6371.0

// Distance calculates the great-circle distance between two points in
// kilometers using the haversine formula. It is symmetric and zero for
// identical points.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180.0
	rLng1 := lng1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLng2 := lng2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLng := rLng2 - rLng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Within reports whether the distance between two points is at most radiusKm.
// The comparison is non-strict.
func Within(lat1, lng1, lat2, lng2, radiusKm float64) bool {
	return Distance(lat1, lng1, lat2, lng2) <= radiusKm
}

// CellPrecision is the geohash precision used for presence bucketing. Five
// characters give cells of roughly 4.9 x 4.9 km, so a cell plus its neighbors
// always covers a 1 km service radius.
const CellPrecision = 5

// CellSpanKm is the minimum edge length of a CellPrecision geohash cell.
// A radius query at most this large is fully covered by a cell plus its
// neighbors.
const CellSpanKm = 4.9

// Cell returns the geohash bucket for a location.
func Cell(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, CellPrecision)
}

// CoveringCells returns the geohash cell containing the location together
// with its eight neighbors. Any point within CellPrecision's cell size of the
// location falls in one of these cells.
func CoveringCells(lat, lng float64) []string {
	center := Cell(lat, lng)
	return append([]string{center}, geohash.Neighbors(center)...)
}
