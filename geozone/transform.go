package geozone

import (
	"math"

	"github.com/kenchrcum/udcore-go/result"
)

// ConvertDatum shifts a geodetic (lat, long, height) coordinate from one
// datum to another via a Helmert 7-parameter transform in the geocentric
// frame. A transform between two non-WGS84 datums is decomposed through
// WGS 84.
func ConvertDatum(latLong Double3, currentDatum, newDatum int) Double3 {
	oldLatLong := latLong
	oldDatum := currentDatum

	if currentDatum != DatumWGS84 && newDatum != DatumWGS84 {
		oldLatLong = ConvertDatum(oldLatLong, currentDatum, DatumWGS84)
		oldDatum = DatumWGS84
	}

	oldDesc, ok := datumByIndex(oldDatum)
	if !ok {
		return latLong
	}
	newDesc, ok := datumByIndex(newDatum)
	if !ok {
		return latLong
	}

	var transform Helmert7
	if newDatum == DatumWGS84 {
		transform = oldDesc.Helmert
	} else {
		// Converting away from WGS 84 uses the negated parameters.
		h := newDesc.Helmert
		transform = Helmert7{-h.Tx, -h.Ty, -h.Tz, -h.Rx, -h.Ry, -h.Rz, -h.ScalePPM}
	}

	geocentric := latLongToGeocentric(oldLatLong, Ellipsoids[oldDesc.Ellipsoid])
	transformed := applyHelmert(geocentric, transform)
	return geocentricToLatLong(transformed, Ellipsoids[newDesc.Ellipsoid])
}

// FindSRID maps a geodetic coordinate to the WGS 84 UTM zone containing
// it and returns 32600+zone for the northern hemisphere or 32700+zone for
// the southern. Coordinates in another datum are normalised to WGS 84
// first. Longitudes outside zone 1..60 return NotFound.
func FindSRID(latLong Double3, datum int) (int, error) {
	lat := latLong.X
	lon := latLong.Y

	if datum != DatumWGS84 {
		fixed := ConvertDatum(Double3{lat, lon, 0}, datum, DatumWGS84)
		lat = fixed.X
		lon = fixed.Y
	}

	zone := int(math.Floor(lon+186.0) / 6.0)
	if zone < 1 || zone > 60 {
		return 0, result.New(result.NotFound)
	}
	if lat >= 0 {
		return zone + 32600, nil
	}
	return zone + 32700, nil
}

// TransformPoint reprojects a point from one zone to another.
func TransformPoint(point Double3, sourceZone, destZone *Zone) Double3 {
	if sourceZone.SRID == destZone.SRID {
		return point
	}
	latLong := sourceZone.CartesianToLatLong(point, sourceZone.Datum)
	if sourceZone.Datum != destZone.Datum {
		latLong = ConvertDatum(latLong, sourceZone.Datum, destZone.Datum)
	}
	return destZone.LatLongToCartesian(latLong, destZone.Datum)
}

// Double4x4 is a column-major 4x4 matrix: elements 0..3 are the X axis,
// 4..7 the Y axis, 8..11 the Z axis and 12..15 the translation.
type Double4x4 [16]float64

func (m *Double4x4) axis(i int) Double3 {
	return Double3{m[i*4], m[i*4+1], m[i*4+2]}
}

func (m *Double4x4) setAxis(i int, v Double3, w float64) {
	m[i*4], m[i*4+1], m[i*4+2], m[i*4+3] = v.X, v.Y, v.Z, w
}

func add3(a, b Double3) Double3      { return Double3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func sub3(a, b Double3) Double3      { return Double3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func scale3(a Double3, s float64) Double3 { return Double3{a.X * s, a.Y * s, a.Z * s} }
func length3(a Double3) float64      { return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z) }
func normalize3(a Double3) Double3   { return scale3(a, 1/length3(a)) }

func cross3(a, b Double3) Double3 {
	return Double3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// TransformMatrix reprojects a local frame: the origin and the tips of
// the unit basis vectors are transformed individually, then the basis is
// re-orthonormalised using the transformed Z axis as the reference, which
// preserves scale and rotation as faithfully as possible under
// non-conformal projections.
func TransformMatrix(matrix Double4x4, sourceZone, destZone *Zone) Double4x4 {
	if sourceZone.SRID == destZone.SRID {
		return matrix
	}

	scaleX := length3(matrix.axis(0))
	scaleY := length3(matrix.axis(1))
	scaleZ := length3(matrix.axis(2))
	origin := matrix.axis(3)

	llO := sourceZone.CartesianToLatLong(origin, sourceZone.Datum)
	llX := sourceZone.CartesianToLatLong(add3(origin, normalize3(matrix.axis(0))), sourceZone.Datum)
	llY := sourceZone.CartesianToLatLong(add3(origin, normalize3(matrix.axis(1))), sourceZone.Datum)
	llZ := sourceZone.CartesianToLatLong(add3(origin, normalize3(matrix.axis(2))), sourceZone.Datum)

	czO := destZone.LatLongToCartesian(llO, sourceZone.Datum)
	czX := sub3(destZone.LatLongToCartesian(llX, sourceZone.Datum), czO)
	czY := sub3(destZone.LatLongToCartesian(llY, sourceZone.Datum), czO)
	czZ := sub3(destZone.LatLongToCartesian(llZ, sourceZone.Datum), czO)

	// Orthonormalise with Z as the reference axis.
	czY = cross3(czZ, czX)
	czX = cross3(czY, czZ)

	var out Double4x4
	out.setAxis(0, scale3(normalize3(czX), scaleX), 0)
	out.setAxis(1, scale3(normalize3(czY), scaleY), 0)
	out.setAxis(2, scale3(normalize3(czZ), scaleZ), 0)
	out.setAxis(3, czO, 1)
	return out
}
