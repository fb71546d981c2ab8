// Package geozone implements the geodetic engine: ellipsoid and datum
// reference tables, the supported map projections, WKT1 parsing and
// emission, SRID lookup and Helmert datum conversion.
package geozone

import "math"

// Ellipsoid indices. Order matters: the datum table references
// ellipsoids by index.
const (
	EllipsoidWGS84 = iota // EPSG:7030
	EllipsoidAiry1830
	EllipsoidAiryModified
	EllipsoidBessel1841
	EllipsoidBesselModified
	EllipsoidClarke1866
	EllipsoidClarke1880IGN
	EllipsoidGRS80
	EllipsoidIntl1924
	EllipsoidWGS72
	EllipsoidCGCS2000
	EllipsoidClarke1858
	EllipsoidClarke1880FOOT
	EllipsoidKrassowsky1940
	EllipsoidEverest1930M
	EllipsoidMars
	EllipsoidMoon
	EllipsoidIAG1975
	EllipsoidEverest1830
	EllipsoidGRS67
	EllipsoidANS
	EllipsoidINS

	ellipsoidCount
)

// EllipsoidInfo describes a reference ellipsoid by its semi-major axis in
// metres and its flattening.
type EllipsoidInfo struct {
	Name          string
	SemiMajorAxis float64
	Flattening    float64
	AuthorityEPSG int
}

// SemiMinorAxis returns b = a(1-f).
func (e EllipsoidInfo) SemiMinorAxis() float64 {
	return e.SemiMajorAxis * (1 - e.Flattening)
}

// EccentricitySquared returns e2 = f(2-f).
func (e EllipsoidInfo) EccentricitySquared() float64 {
	return e.Flattening * (2 - e.Flattening)
}

// Eccentricity returns sqrt(f(2-f)).
func (e EllipsoidInfo) Eccentricity() float64 {
	return math.Sqrt(e.EccentricitySquared())
}

// ThirdFlattening returns n = f/(2-f).
func (e EllipsoidInfo) ThirdFlattening() float64 {
	return e.Flattening / (2 - e.Flattening)
}

// Ellipsoids is the standard ellipsoid table, indexed by the Ellipsoid*
// constants.
var Ellipsoids = [ellipsoidCount]EllipsoidInfo{
	EllipsoidWGS84:          {"WGS 84", 6378137.000, 1.0 / 298.257223563, 7030},
	EllipsoidAiry1830:       {"Airy 1830", 6377563.396, 1.0 / 299.3249646, 7001},
	EllipsoidAiryModified:   {"Airy Modified 1849", 6377340.189, 1.0 / 299.3249646, 7002},
	EllipsoidBessel1841:     {"Bessel 1841", 6377397.155, 1.0 / 299.1528128, 7004},
	EllipsoidBesselModified: {"Bessel Modified", 6377492.018, 1.0 / 299.1528128, 7005},
	EllipsoidClarke1866:     {"Clarke 1866", 6378206.400, 1.0 / 294.978698214, 7008},
	EllipsoidClarke1880IGN:  {"Clarke 1880 (IGN)", 6378249.200, 1.0 / 293.466021294, 7011},
	EllipsoidGRS80:          {"GRS 1980", 6378137.000, 1.0 / 298.257222101, 7019},
	EllipsoidIntl1924:       {"International 1924", 6378388.000, 1.0 / 297.00, 7022},
	EllipsoidWGS72:          {"WGS 72", 6378135.000, 1.0 / 298.26, 7043},
	EllipsoidCGCS2000:       {"CGCS2000", 6378137.000, 1.0 / 298.257222101, 1024},
	EllipsoidClarke1858:     {"Clarke 1858", 6378293.64520876, 1.0 / 294.260676369, 7007},
	EllipsoidClarke1880FOOT: {"Clarke 1880 (international foot)", 6378306.369, 1.0 / 293.466307656, 7055},
	EllipsoidKrassowsky1940: {"Krassowsky 1940", 6378245.000, 1.0 / 298.3, 7024},
	EllipsoidEverest1930M:   {"Everest 1830 Modified", 6377304.063, 1.0 / 300.8017, 7018},
	EllipsoidMars:           {"Mars_2000_IAU_IAG", 3396190.000, 1.0 / 169.894447224, 49900},
	EllipsoidMoon:           {"Moon_2000_IAU_IAG", 1737400.000, 0.0, 39064},
	EllipsoidIAG1975:        {"IAG 1975", 6378140.000, 1.0 / 298.257, 7049},
	EllipsoidEverest1830:    {"Everest 1830 (1967 Definition)", 6377298.556, 1.0 / 300.8017, 7016},
	EllipsoidGRS67:          {"GRS 1967", 6378160.000, 1.0 / 298.247167427, 7036},
	EllipsoidANS:            {"Australian National Spheroid", 6378160, 1.0 / 298.25, 7003},
	EllipsoidINS:            {"Indonesian National Spheroid", 6378160, 1.0 / 298.247, 7021},
}
