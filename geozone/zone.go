package geozone

import (
	"fmt"
	"math"
	"strings"

	"github.com/kenchrcum/udcore-go/result"
)

// ProjectionType enumerates the supported map projections.
type ProjectionType int

const (
	ProjectionUnknown ProjectionType = iota

	ProjectionECEF
	ProjectionLongLat
	ProjectionLatLong

	ProjectionTransverseMercator
	ProjectionLambertConformalConic2SP
	ProjectionWebMercator

	ProjectionCassiniSoldner
	ProjectionCassiniSoldnerHyperbolic

	ProjectionStereographicObliqueNEquatorial
	ProjectionStereographicPolarVB

	ProjectionMercator

	ProjectionKrovak
	ProjectionKrovakNorthOrientated

	ProjectionHotineObliqueMercatorVA
	ProjectionHotineObliqueMercatorVB

	ProjectionAlbersEqualArea
	ProjectionEquidistantCylindrical

	projectionCount
)

// Double3 is a geodetic or cartesian triple. For geodetic values X is
// latitude and Y is longitude, both in degrees, with Z the ellipsoidal
// height in metres.
type Double3 struct {
	X, Y, Z float64
}

// Double2 is a (lat, long) pair in degrees.
type Double2 struct {
	X, Y float64
}

// Zone fully parameterizes a coordinate reference system: a datum, a
// projection and that projection's parameters, plus the derived ellipsoid
// quantities and Krueger series coefficients that the projection math
// consumes. Angular fields are stored in degrees; linear fields are in
// the zone's unit (UnitMetreScale relates that unit to metres).
type Zone struct {
	Datum           int
	Projection      ProjectionType
	LatLongBoundMin Double2
	LatLongBoundMax Double2
	Meridian        float64
	Parallel        float64 // parallel of origin for Transverse Mercator
	LatProjCentre   float64 // latitude of projection centre (Krovak, Hotine, Albers)
	CoLatConeAxis   float64 // co-latitude of the cone axis (Krovak) / azimuth (Hotine)
	Flattening      float64
	SemiMajorAxis   float64
	SemiMinorAxis   float64
	ThirdFlattening float64
	Eccentricity    float64
	EccentricitySq  float64
	Radius          float64
	ScaleFactor     float64
	N               [10]float64
	Alpha           [9]float64
	Beta            [9]float64
	FirstParallel   float64
	SecondParallel  float64
	FalseNorthing   float64
	FalseEasting    float64
	UnitMetreScale  float64 // 1.0 for metres, 0.3048006096012192 for US survey feet
	ZoneNumber      int
	SRID            int
	DatumShortName  string
	DatumName       string
	ZoneName        string
	DisplayName     string
	Helmert         Helmert7

	knownDatum   bool
	datumSRID    int
	toWGS84      bool
	axisInfo     bool
	zoneSpheroid int
}

// setSpheroid derives every ellipsoid-dependent quantity from the zone's
// datum (or its already-populated SemiMajorAxis/Flattening pair), the
// Krueger alpha/beta series to the ninth power of the third flattening,
// the rectifying radius, and the meridional arc to the latitude of
// origin used by Transverse Mercator zones.
func (z *Zone) setSpheroid() {
	if z.SemiMajorAxis == 0 && z.Flattening == 0 {
		desc, ok := datumByIndex(z.Datum)
		if ok {
			z.knownDatum = z.Datum < datumCount
			ell := Ellipsoids[desc.Ellipsoid]
			z.SemiMajorAxis = ell.SemiMajorAxis / z.UnitMetreScale
			z.Flattening = ell.Flattening
		}
	}

	// A TOWGS84 block parsed out of WKT takes precedence over the datum
	// table (the table entry is a placeholder until the dynamic datum is
	// registered).
	if !z.toWGS84 {
		if desc, ok := datumByIndex(z.Datum); ok {
			z.Helmert = desc.Helmert
		}
	}

	z.SemiMinorAxis = z.SemiMajorAxis * (1 - z.Flattening)
	z.ThirdFlattening = z.Flattening / (2 - z.Flattening)
	z.EccentricitySq = z.Flattening * (2 - z.Flattening)
	z.Eccentricity = math.Sqrt(z.EccentricitySq)
	z.N[0] = 1.0
	for i := 1; i < len(z.N); i++ {
		z.N[i] = z.ThirdFlattening * z.N[i-1]
	}
	n := &z.N

	// Cross-reference https://geographiclib.sourceforge.io/html/transversemercator.html
	z.Alpha[0] = 1.0/2.0*n[1] - 2.0/3.0*n[2] + 5.0/16.0*n[3] + 41.0/180.0*n[4] - 127.0/288.0*n[5] + 7891.0/37800.0*n[6] + 72161.0/387072.0*n[7] - 18975107.0/50803200.0*n[8] + 60193001.0/290304000.0*n[9]
	z.Alpha[1] = 13.0/48.0*n[2] - 3.0/5.0*n[3] + 557.0/1440.0*n[4] + 281.0/630.0*n[5] - 1983433.0/1935360.0*n[6] + 13769.0/28800.0*n[7] + 148003883.0/174182400.0*n[8] - 705286231.0/465696000.0*n[9]
	z.Alpha[2] = 61.0/240.0*n[3] - 103.0/140.0*n[4] + 15061.0/26880.0*n[5] + 167603.0/181440.0*n[6] - 67102379.0/29030400.0*n[7] + 79682431.0/79833600.0*n[8] + 6304945039.0/2128896000.0*n[9]
	z.Alpha[3] = 49561.0/161280.0*n[4] - 179.0/168.0*n[5] + 6601661.0/7257600.0*n[6] + 97445.0/49896.0*n[7] - 40176129013.0/7664025600.0*n[8] + 138471097.0/66528000.0*n[9]
	z.Alpha[4] = 34729.0/80640.0*n[5] - 3418889.0/1995840.0*n[6] + 14644087.0/9123840.0*n[7] + 2605413599.0/622702080.0*n[8] - 31015475399.0/2583060480.0*n[9]
	z.Alpha[5] = 212378941.0/319334400.0*n[6] - 30705481.0/10378368.0*n[7] + 175214326799.0/58118860800.0*n[8] + 870492877.0/96096000.0*n[9]
	z.Alpha[6] = 1522256789.0/1383782400.0*n[7] - 16759934899.0/3113510400.0*n[8] + 1315149374443.0/221405184000.0*n[9]
	z.Alpha[7] = 1424729850961.0/743921418240.0*n[8] - 256783708069.0/25204608000.0*n[9]
	z.Alpha[8] = 21091646195357.0 / 6080126976000.0 * n[9]

	z.Beta[0] = -1.0/2.0*n[1] + 2.0/3.0*n[2] - 37.0/96.0*n[3] + 1.0/360.0*n[4] + 81.0/512.0*n[5] - 96199.0/604800.0*n[6] + 5406467.0/38707200.0*n[7] - 7944359.0/67737600.0*n[8] + 7378753979.0/97542144000.0*n[9]
	z.Beta[1] = -1.0/48.0*n[2] - 1.0/15.0*n[3] + 437.0/1440.0*n[4] - 46.0/105.0*n[5] + 1118711.0/3870720.0*n[6] - 51841.0/1209600.0*n[7] - 24749483.0/348364800.0*n[8] + 115295683.0/1397088000.0*n[9]
	z.Beta[2] = -17.0/480.0*n[3] + 37.0/840.0*n[4] + 209.0/4480.0*n[5] - 5569.0/90720.0*n[6] - 9261899.0/58060800.0*n[7] + 6457463.0/17740800.0*n[8] - 2473691167.0/9289728000.0*n[9]
	z.Beta[3] = -4397.0/161280.0*n[4] + 11.0/504.0*n[5] + 830251.0/7257600.0*n[6] - 466511.0/2494800.0*n[7] - 324154477.0/7664025600.0*n[8] + 937932223.0/3891888000.0*n[9]
	z.Beta[4] = -4583.0/161280.0*n[5] + 108847.0/3991680.0*n[6] + 8005831.0/63866880.0*n[7] - 22894433.0/124540416.0*n[8] - 112731569449.0/557941063680.0*n[9]
	z.Beta[5] = -20648693.0/638668800.0*n[6] + 16363163.0/518918400.0*n[7] + 2204645983.0/12915302400.0*n[8] - 4543317553.0/18162144000.0*n[9]
	z.Beta[6] = -219941297.0/5535129600.0*n[7] + 497323811.0/12454041600.0*n[8] + 79431132943.0/332107776000.0*n[9]
	z.Beta[7] = -191773887257.0/3719607091200.0*n[8] + 17822319343.0/336825216000.0*n[9]
	z.Beta[8] = -11025641854267.0 / 158083301376000.0 * n[9]

	z.Radius = z.SemiMajorAxis / (1 + n[1]) * (1.0 + 1.0/4.0*n[2] + 1.0/64.0*n[4] + 1.0/256.0*n[6] + 25.0/16384.0*n[8])

	if z.FirstParallel == 0 && z.SecondParallel == 0 && z.Parallel != 0 {
		// Latitude of origin for Transverse Mercator: the meridional
		// arc from the equator, via the same alpha series.
		l0 := z.Parallel * degToRad
		q0 := math.Asinh(math.Tan(l0)) - z.Eccentricity*math.Atanh(z.Eccentricity*math.Sin(l0))
		b0 := math.Atan(math.Sinh(q0))

		u := b0
		for i := 0; i < len(z.Alpha); i++ {
			j := float64(i+1) * 2.0
			u += z.Alpha[i] * math.Sin(j*b0)
		}
		z.FirstParallel = u * z.Radius
	}
}

// metreScaleSpheroidMaths finishes off derived quantities once
// UnitMetreScale, SemiMajorAxis and Flattening are all known, used by the
// WKT path where those arrive in arbitrary order.
func (z *Zone) metreScaleSpheroidMaths() {
	z.SemiMajorAxis /= z.UnitMetreScale
	a := z.SemiMajorAxis
	b := a * (1 - z.Flattening)
	z.SemiMinorAxis = b
	z.Eccentricity = math.Sqrt(a*a-b*b) / a
	z.EccentricitySq = z.Eccentricity * z.Eccentricity
	z.ThirdFlattening = (a - b) / (a + b)
	z.setSpheroid()
}

// UpdateSpheroidInfo recomputes every derived field after the caller has
// mutated the zone's primary parameters.
func (z *Zone) UpdateSpheroidInfo() error {
	if z.Datum < 0 || z.Datum >= datumCount {
		return result.New(result.Failure)
	}
	z.setSpheroid()
	z.DatumName = Datums[z.Datum].DatumName
	z.DatumShortName = Datums[z.Datum].ShortName
	z.updateDisplayName()
	return nil
}

func (z *Zone) updateDisplayName() {
	desc, ok := datumByIndex(z.Datum)
	if !ok {
		return
	}
	switch {
	case strings.HasPrefix(z.ZoneName, desc.ShortName):
		z.DisplayName = z.ZoneName
	case z.Projection == ProjectionECEF:
		z.DisplayName = desc.ShortName + " / ECEF"
	case z.Projection == ProjectionLatLong:
		z.DisplayName = desc.ShortName + " / LatLong"
	case z.Projection == ProjectionLongLat:
		z.DisplayName = desc.ShortName + " / LongLat"
	default:
		z.DisplayName = desc.ShortName + " / " + z.ZoneName
	}
}

func (z *Zone) setUTMZoneBounds(northernHemisphere bool) {
	if northernHemisphere {
		z.LatLongBoundMin.X = 0
		z.LatLongBoundMax.X = 84
	} else {
		z.LatLongBoundMin.X = -80
		z.LatLongBoundMax.X = 0
	}
	z.LatLongBoundMin.Y = z.Meridian - 3
	z.LatLongBoundMax.Y = z.Meridian + 3
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX"}

// jprcsRegions holds per-zone (meridian, latitude of origin) for the
// Japan Plane Rectangular coordinate systems I..XIX.
var jprcsRegions = [19]Double2{
	{129.5, 33.0},
	{131.0, 33.0},
	{132.0 + 1.0/6.0, 36.0},
	{133.5, 33.0},
	{134.0 + 1.0/3.0, 36.0},
	{136.0, 36.0},
	{137.0 + 1.0/6.0, 36.0},
	{138.5, 36.0},
	{139.0 + 5.0/6.0, 36.0},
	{140.0 + 5.0/6.0, 40.0},
	{140.25, 44.0},
	{142.25, 44.0},
	{144.25, 44.0},
	{142.0, 26.0},
	{127.5, 26.0},
	{124.0, 26.0},
	{131.0, 26.0},
	{136.0, 20.0},
	{154.0, 26.0},
}

// cgcsRegions holds the lat/long validity bounds of the CGCS2000 3-degree
// Gauss-Krueger zones (SRID 4534..4554) as {minLong, minLat, maxLong, maxLat}.
var cgcsRegions = [21][4]float64{
	{73.62, 35.81, 76.5, 40.65},
	{76.5, 31.03, 79.5, 41.83},
	{79.5, 29.95, 82.51, 45.88},
	{82.5, 28.26, 85.5, 47.23},
	{85.5, 27.8, 88.5, 49.18},
	{88.49, 27.32, 91.51, 48.42},
	{91.5, 27.71, 94.5, 45.13},
	{94.5, 28.23, 97.51, 44.5},
	{97.5, 21.43, 100.5, 42.76},
	{100.5, 21.13, 103.5, 42.69},
	{103.5, 22.5, 106.5, 42.21},
	{106.5, 18.19, 109.5, 42.47},
	{109.5, 18.11, 112.5, 45.11},
	{112.5, 21.52, 115.5, 45.45},
	{115.5, 22.6, 118.5, 49.88},
	{118.5, 24.43, 121.5, 53.33},
	{121.5, 28.22, 124.5, 53.56},
	{124.5, 40.19, 127.5, 53.2},
	{127.5, 41.37, 130.5, 50.25},
	{130.5, 42.42, 133.5, 48.88},
	{133.5, 45.85, 134.77, 48.4},
}

// SetFromSRID populates the zone from a spatial reference identifier.
// Contiguous families (UTM, MGA, JPRCS, Gauss-Krueger, France CC) are
// computed from the code; the remainder are individually tabled. SRID 0
// is the "not geolocated" sentinel. Codes in neither group fall through
// to the dynamic registry loaded by LoadZonesFromJSON, and a miss there
// returns NotFound.
func (z *Zone) SetFromSRID(srid int) error {
	*z = Zone{}
	z.UnitMetreScale = 1.0 // default to metres, only a few zones are in feet

	switch {
	case srid == 0:
		z.DisplayName = "Not Geolocated"

	case srid >= 32601 && srid <= 32660:
		// WGS 84 northern hemisphere
		z.Datum = DatumWGS84
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 32600
		z.ZoneName = fmt.Sprintf("UTM zone %dN", z.ZoneNumber)
		z.Meridian = float64(z.ZoneNumber*6 - 183)
		z.FalseEasting = 500000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.setUTMZoneBounds(true)

	case srid >= 32701 && srid <= 32760:
		// WGS 84 southern hemisphere
		z.Datum = DatumWGS84
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 32700
		z.ZoneName = fmt.Sprintf("UTM zone %dS", z.ZoneNumber)
		z.Meridian = float64(z.ZoneNumber*6 - 183)
		z.FalseNorthing = 10000000
		z.FalseEasting = 500000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.setUTMZoneBounds(false)

	case srid >= 31284 && srid <= 31287:
		z.Datum = DatumMGI
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = 1618
		z.ScaleFactor = 1
		var suffix string
		switch srid {
		case 31284:
			suffix = "M28"
			z.Meridian = 10.33333333333333
			z.FalseEasting = 150000
		case 31285:
			suffix = "M31"
			z.Meridian = 13.33333333333333
			z.FalseEasting = 450000
		case 31286:
			suffix = "M34"
			z.Meridian = 16.33333333333333
			z.FalseEasting = 750000
		case 31287:
			suffix = "Lambert"
			z.Meridian = 13.33333333333333
			z.FirstParallel = 49
			z.SecondParallel = 46
			z.FalseEasting = 400000
			z.FalseNorthing = 400000
			z.Projection = ProjectionLambertConformalConic2SP
			z.Parallel = 47.5
		}
		z.ZoneName = "Austria " + suffix
		z.setSpheroid()
		z.setUTMZoneBounds(true)

	case srid >= 31254 && srid <= 31259:
		z.Datum = DatumMGI
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = 1618
		z.ScaleFactor = 1
		z.FalseNorthing = -5000000
		z.Meridian = 10.33333333333333
		var suffix string
		switch srid {
		case 31254:
			suffix = "GK West"
		case 31255:
			z.Meridian = 13.33333333333333
			suffix = "GK Central"
		case 31256:
			z.Meridian = 16.33333333333333
			suffix = "GK East"
		case 31257:
			z.FalseEasting = 150000
			suffix = "GK M28"
		case 31258:
			z.FalseEasting = 450000
			z.Meridian = 13.33333333333333
			suffix = "GK M31"
		case 31259:
			z.FalseEasting = 750000
			z.Meridian = 16.33333333333333
			suffix = "GK M34"
		}
		z.ZoneName = "Austria " + suffix
		z.setSpheroid()
		z.setUTMZoneBounds(true)

	case srid >= 4534 && srid <= 4554:
		// CGCS2000 3-degree Gauss-Krueger
		z.Datum = DatumCGCS2000
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 4534
		z.Meridian = float64(75 + z.ZoneNumber*3)
		z.ZoneName = fmt.Sprintf("3-degree Gauss-Kruger CM %dE", 75+z.ZoneNumber*3)
		z.FalseEasting = 500000
		z.ScaleFactor = 1
		z.setSpheroid()
		r := cgcsRegions[z.ZoneNumber]
		z.LatLongBoundMin = Double2{r[0], r[1]}
		z.LatLongBoundMax = Double2{r[2], r[3]}

	case srid >= 26901 && srid <= 26923:
		// NAD83 northern hemisphere
		z.Datum = DatumNAD83
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 26900
		z.ZoneName = fmt.Sprintf("UTM zone %dN", z.ZoneNumber)
		z.Meridian = float64(z.ZoneNumber*6 - 183)
		z.FalseEasting = 500000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.setUTMZoneBounds(true)

	case srid >= 25828 && srid <= 25838:
		// ETRS89 / UTM zones
		z.Datum = DatumETRS89
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 25800
		if srid == 25838 {
			z.ZoneName = fmt.Sprintf("UTM zone %dN (deprecated)", z.ZoneNumber)
		} else {
			z.ZoneName = fmt.Sprintf("UTM zone %dN", z.ZoneNumber)
		}
		z.Meridian = float64(z.ZoneNumber*6 - 183)
		z.FalseEasting = 500000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.setUTMZoneBounds(true)

	case srid >= 28348 && srid <= 28356:
		// GDA94 southern hemisphere (MGA)
		z.Datum = DatumGDA94
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 28300
		z.ZoneName = fmt.Sprintf("MGA zone %d", z.ZoneNumber)
		z.Meridian = float64(z.ZoneNumber*6 - 183)
		z.FalseNorthing = 10000000
		z.FalseEasting = 500000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.setUTMZoneBounds(false)

	case srid >= 7846 && srid <= 7859:
		// GDA2020 southern hemisphere (MGA)
		z.Datum = DatumGDA2020
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 7800
		z.ZoneName = fmt.Sprintf("MGA zone %d", z.ZoneNumber)
		z.Meridian = float64(z.ZoneNumber*6 - 183)
		z.FalseNorthing = 10000000
		z.FalseEasting = 500000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.setUTMZoneBounds(false)

	case (srid >= 2443 && srid <= 2461) || (srid >= 6669 && srid <= 6687):
		// Japan Plane Rectangular CS I..XIX, JGD2000 and JGD2011
		if srid <= 2461 {
			z.Datum = DatumJGD2000
			z.ZoneNumber = srid - 2443
		} else {
			z.Datum = DatumJGD2011
			z.ZoneNumber = srid - 6669
		}
		z.Projection = ProjectionTransverseMercator
		z.ZoneName = "Japan Plane Rectangular CS " + romanNumerals[z.ZoneNumber]
		z.Meridian = jprcsRegions[z.ZoneNumber].X
		z.Parallel = jprcsRegions[z.ZoneNumber].Y
		z.ScaleFactor = 0.9999
		z.setSpheroid()
		z.setUTMZoneBounds(true)

	case (srid >= 3942 && srid <= 3950) || (srid >= 9842 && srid <= 9850):
		// France conic conformal zones
		if srid >= 9842 {
			z.Datum = DatumRGF93v2b
			z.ZoneNumber = srid - 9842
			z.ZoneName = fmt.Sprintf("CC%d", srid-9800)
		} else {
			z.Datum = DatumRGF93
			z.ZoneNumber = srid - 3942
			z.ZoneName = fmt.Sprintf("CC%d", srid-3900)
		}
		z.Projection = ProjectionLambertConformalConic2SP
		z.Meridian = 3.0
		z.Parallel = float64(42 + z.ZoneNumber)
		z.FirstParallel = z.Parallel - 0.75
		z.SecondParallel = z.Parallel + 0.75
		z.FalseNorthing = float64(1200000 + 1000000*z.ZoneNumber)
		z.FalseEasting = 1700000
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{z.Parallel - 1.0, -2.0}
		z.LatLongBoundMax = Double2{z.Parallel + 1.0, 10.0}

	case srid >= 5682 && srid <= 5685:
		// DB_REF 3-degree Gauss-Krueger, zones start at 2
		z.Datum = DatumDBREF
		z.Projection = ProjectionTransverseMercator
		z.ZoneNumber = srid - 5680
		z.ZoneName = fmt.Sprintf("3-degree Gauss-Kruger zone %d (E-N)", z.ZoneNumber)
		z.Meridian = 3.0 * float64(z.ZoneNumber)
		z.FalseEasting = float64(500000 + 1000000*z.ZoneNumber)
		z.ScaleFactor = 1.0
		z.setSpheroid()

	default:
		if err := z.setFromUnorderedSRID(srid); err != nil {
			return err
		}
	}

	z.SRID = srid
	z.knownDatum = true

	if srid != 0 {
		if desc, ok := datumByIndex(z.Datum); ok {
			z.DatumName = desc.DatumName
			z.DatumShortName = desc.ShortName
		}
		z.updateDisplayName()
	}
	return nil
}

// setFromUnorderedSRID handles the individually-named codes that don't
// belong to a contiguous family, then falls back to the dynamic registry.
func (z *Zone) setFromUnorderedSRID(srid int) error {
	switch srid {
	case 84: // CRS:84 LongLat; there is no EPSG LongLat code
		z.Datum = DatumWGS84
		z.Projection = ProjectionLongLat
		z.ScaleFactor = 0.0174532925199433
		z.UnitMetreScale = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-90, -180}
		z.LatLongBoundMax = Double2{90, 180}
	case 2154: // RGF93 / Lambert-93
		z.Datum = DatumRGF93
		z.Projection = ProjectionLambertConformalConic2SP
		z.ZoneName = "Lambert-93"
		z.Meridian = 3
		z.Parallel = 46.5
		z.FirstParallel = 49
		z.SecondParallel = 44
		z.FalseNorthing = 6600000
		z.FalseEasting = 700000
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{41.18, -9.62}
		z.LatLongBoundMax = Double2{51.54, 10.30}
	case 9794: // RGF93 v2b / Lambert-93
		z.Datum = DatumRGF93v2b
		z.Projection = ProjectionLambertConformalConic2SP
		z.ZoneName = "Lambert-93"
		z.Meridian = 3
		z.Parallel = 46.5
		z.FirstParallel = 49
		z.SecondParallel = 44
		z.FalseNorthing = 6600000
		z.FalseEasting = 700000
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{41.18, -9.62}
		z.LatLongBoundMax = Double2{51.54, 10.30}
	case 2193: // NZGD2000 / New Zealand Transverse Mercator
		z.Datum = DatumNZGD2000
		z.Projection = ProjectionTransverseMercator
		z.ZoneName = "New Zealand Transverse Mercator 2000"
		z.Meridian = 173
		z.FalseNorthing = 10000000
		z.FalseEasting = 1600000
		z.ScaleFactor = 0.9996
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-47.4, 166.33}
		z.LatLongBoundMax = Double2{-34, 178.6}
	case 2230: // NAD83 / California zone 6 (ftUS)
		z.Datum = DatumNAD83
		z.Projection = ProjectionLambertConformalConic2SP
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "California zone 6 (ftUS)"
		z.Meridian = -116.25
		z.Parallel = 32.0 + 1.0/6.0
		z.FirstParallel = 33.0 + 53.0/60.0
		z.SecondParallel = 32.0 + 47.0/60.0
		z.FalseNorthing = 1640416.667
		z.FalseEasting = 6561666.667
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{23.81, -172.54}
		z.LatLongBoundMax = Double2{86.46, -47.74}
	case 2238: // NAD83 / Florida North (ftUS)
		z.Datum = DatumNAD83
		z.Projection = ProjectionLambertConformalConic2SP
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "Florida North (ftUS)"
		z.Meridian = -84.5
		z.Parallel = 29.0
		z.FirstParallel = 30.75
		z.SecondParallel = 29.0 + 175.0/300.0
		z.FalseEasting = 1968500.0
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{29.28, -87.64}
		z.LatLongBoundMax = Double2{31.0, -82.05}
	case 2248: // NAD83 / Maryland (ftUS)
		z.Datum = DatumNAD83
		z.Projection = ProjectionLambertConformalConic2SP
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "Maryland (ftUS)"
		z.Meridian = -77.0
		z.Parallel = 37.0 + 2.0/3.0
		z.FirstParallel = 39.45
		z.SecondParallel = 38.3
		z.FalseEasting = 1312333.333
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{37.88, -79.49}
		z.LatLongBoundMax = Double2{39.72, -74.98}
	case 2250: // NAD83 / Massachusetts Island (ftUS)
		z.Datum = DatumNAD83
		z.Projection = ProjectionLambertConformalConic2SP
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "Massachusetts Island (ftUS)"
		z.Meridian = -70.5
		z.Parallel = 41.0
		z.FirstParallel = 41.0 + 145.0/300.0
		z.SecondParallel = 41.0 + 85.0/300.0
		z.FalseEasting = 1640416.667
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{41.2, -70.87}
		z.LatLongBoundMax = Double2{41.51, -69.9}
	case 2285: // NAD83 / Washington North (ftUS)
		z.Datum = DatumNAD83
		z.Projection = ProjectionLambertConformalConic2SP
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "Washington North (ftUS)"
		z.Meridian = -120 - 25.0/30.0
		z.Parallel = 47.0
		z.FirstParallel = 48.0 + 22.0/30.0
		z.SecondParallel = 47.5
		z.FalseEasting = 1640416.667
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{47.08, -124.75}
		z.LatLongBoundMax = Double2{49.0, -117.03}
	case 2326: // Hong Kong 1980 Grid System
		z.Datum = DatumHK1980
		z.Projection = ProjectionTransverseMercator
		z.ZoneName = "Hong Kong 1980 Grid System"
		z.Meridian = 114.1785555555556
		z.Parallel = 22.31213333333334
		z.FalseNorthing = 819069.8
		z.FalseEasting = 836694.05
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{22.13, 113.76}
		z.LatLongBoundMax = Double2{22.58, 114.51}
	case 2771: // NAD83(HARN) / California zone 6
		z.Datum = DatumNAD83HARN
		z.Projection = ProjectionLambertConformalConic2SP
		z.ZoneName = "California zone 6"
		z.Meridian = -116.25
		z.Parallel = 32.0 + 1.0/6.0
		z.FirstParallel = 33.0 + 265.0/300.0
		z.SecondParallel = 32.0 + 235.0/300.0
		z.FalseNorthing = 500000.0
		z.FalseEasting = 2000000.0
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{32.51, -118.14}
		z.LatLongBoundMax = Double2{34.08, -114.43}
	case 3032: // WGS 84 / Australian Antarctic Polar Stereographic
		z.Datum = DatumWGS84
		z.Projection = ProjectionStereographicPolarVB
		z.ZoneName = "Australian Antarctic Polar Stereographic"
		z.Meridian = 70.0
		z.Parallel = -71.0
		z.FalseEasting = 6000000.0
		z.FalseNorthing = 6000000.0
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{45.0, -90.0}
		z.LatLongBoundMax = Double2{160.0, -60.0}
	case 3112: // GDA94 / Geoscience Australia Lambert
		z.Datum = DatumGDA94
		z.Projection = ProjectionLambertConformalConic2SP
		z.ZoneName = "Geoscience Australia Lambert"
		z.Meridian = 134
		z.FirstParallel = -18
		z.SecondParallel = -36
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-60.56, 93.41}
		z.LatLongBoundMax = Double2{-8.47, 173.35}
	case 3113: // GDA94 / BCSG02
		z.Datum = DatumGDA94
		z.Projection = ProjectionTransverseMercator
		z.ZoneName = "BCSG02"
		z.Meridian = 153
		z.Parallel = -28
		z.FalseNorthing = 100000
		z.FalseEasting = 50000
		z.ScaleFactor = 0.99999
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-60.56, 93.41}
		z.LatLongBoundMax = Double2{-8.47, 173.35}
	case 3139: // Vanua Levu 1915 (hyperbolic Cassini-Soldner)
		z.Datum = DatumVanuaLevu1915
		z.Projection = ProjectionCassiniSoldnerHyperbolic
		z.ZoneName = "Vanua Levu 1915"
		z.Meridian = 179 + 1.0/3.0
		z.Parallel = -16.25
		z.FalseNorthing = 1662888.5
		z.FalseEasting = 1251331.8
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 0.201168 // link unit
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-179.5, -17.05}
		z.LatLongBoundMax = Double2{178.25, -16.0}
	case 3174: // NAD83 / Great Lakes Albers
		z.Datum = DatumNAD83
		z.Projection = ProjectionAlbersEqualArea
		z.ZoneName = "Great Lakes Albers"
		z.Meridian = -84.455955
		z.LatProjCentre = 45.568977
		z.FirstParallel = 42.122774
		z.SecondParallel = 49.01518
		z.FalseEasting = 1000000
		z.FalseNorthing = 1000000
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{40.4, -93.21}
		z.LatLongBoundMax = Double2{50.74, -74.50}
	case 3414: // SVY21 / Singapore TM
		z.Datum = DatumSVY21
		z.Projection = ProjectionTransverseMercator
		z.ZoneName = "Singapore TM"
		z.Meridian = 103 + 5.0/6.0
		z.Parallel = 1 + 11.0/30.0
		z.FalseNorthing = 38744.572
		z.FalseEasting = 28001.642
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{1.12, 103.62}
		z.LatLongBoundMax = Double2{1.46, 104.16}
	case 3433: // NAD83 / Arkansas North (ftUS)
		z.Datum = DatumNAD83
		z.Projection = ProjectionLambertConformalConic2SP
		z.Parallel = 34.33333333333334
		z.FirstParallel = 36.2 + 1.0/30.0
		z.SecondParallel = 34.9 + 1.0/30.0
		z.Meridian = -92
		z.FalseEasting = 1312333.3333
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "Arkansas North (ftUS)"
		z.setSpheroid()
		z.LatLongBoundMin = Double2{34.67, -94.62}
		z.LatLongBoundMax = Double2{36.5, -89.64}
	case 3857: // Web Mercator
		z.Datum = DatumWGS84
		z.Projection = ProjectionWebMercator
		z.ZoneName = "Pseudo-Mercator"
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-85, -180}
		z.LatLongBoundMax = Double2{95, 180}
	case 4087: // WGS 84 / World Equidistant Cylindrical
		z.Datum = DatumWGS84
		z.Projection = ProjectionEquidistantCylindrical
		z.ZoneName = "World Equidistant Cylindrical"
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-85, -180}
		z.LatLongBoundMax = Double2{95, 180}
	case 4326: // WGS 84 LatLong
		z.Datum = DatumWGS84
		z.Projection = ProjectionLatLong
		z.ScaleFactor = 0.0174532925199433
		z.UnitMetreScale = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-90, -180}
		z.LatLongBoundMax = Double2{90, 180}
	case 4328: // WGS 84 ECEF (deprecated code)
		z.Datum = DatumWGS84
		z.Projection = ProjectionECEF
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-90, -180}
		z.LatLongBoundMax = Double2{90, 180}
	case 4936: // ETRS89 ECEF
		z.Datum = DatumETRS89
		z.Projection = ProjectionECEF
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{34.5, -10.67}
		z.LatLongBoundMax = Double2{71.05, 31.55}
	case 4978: // WGS 84 ECEF
		z.Datum = DatumWGS84
		z.Projection = ProjectionECEF
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-90, -180}
		z.LatLongBoundMax = Double2{90, 180}
	case 6411: // NAD83(2011) / Arkansas North (ftUS)
		z.Datum = DatumNAD832011
		z.Projection = ProjectionLambertConformalConic2SP
		z.Parallel = 34.33333333333334
		z.FirstParallel = 36.2 + 1.0/30.0
		z.SecondParallel = 34.9 + 1.0/30.0
		z.Meridian = -92
		z.FalseEasting = 1312333.3333
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 0.3048006096012192
		z.ZoneName = "Arkansas North (ftUS)"
		z.setSpheroid()
		z.LatLongBoundMin = Double2{34.67, -94.62}
		z.LatLongBoundMax = Double2{36.5, -89.64}
	case 7845: // GDA2020 / Geoscience Australia Lambert
		z.Datum = DatumGDA2020
		z.Projection = ProjectionLambertConformalConic2SP
		z.ZoneName = "GA LCC"
		z.Meridian = 134
		z.FirstParallel = -18
		z.SecondParallel = -36
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-43.7, 112.85}
		z.LatLongBoundMax = Double2{-9.86, 153.69}
	case 8353: // S-JTSK [JTSK03] / Krovak East North
		z.Datum = DatumSJTSK03
		z.Projection = ProjectionKrovakNorthOrientated
		z.ZoneName = "JTSK03"
		z.LatProjCentre = 49.5000000000003
		z.CoLatConeAxis = 30.2881397527781
		z.Meridian = 24.8333333333336
		z.Parallel = 78.5
		z.ScaleFactor = 0.9999
		z.setSpheroid()
		z.LatLongBoundMin = Double2{1.13, 103.59}
		z.LatLongBoundMax = Double2{1.47, 104.07}
	case 8705: // Mars planetocentric / ECEF
		z.Datum = DatumMarsPCPF
		z.Projection = ProjectionECEF
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 1.0
		z.setSpheroid()
	case 19920: // Singapore Grid
		z.Datum = DatumSingaporeGrid
		z.Projection = ProjectionCassiniSoldner
		z.ZoneName = "Singapore Grid"
		z.Meridian = 103.853002222
		z.Parallel = 1.287646667
		z.FalseNorthing = 30000
		z.FalseEasting = 30000
		z.ScaleFactor = 1.0
		z.setSpheroid()
		z.LatLongBoundMin = Double2{1.13, 103.59}
		z.LatLongBoundMax = Double2{1.47, 104.07}
	case 27700: // OSGB 1936 / British National Grid
		z.Datum = DatumOSGB36
		z.Projection = ProjectionTransverseMercator
		z.ZoneName = "British National Grid"
		z.Meridian = -2
		z.Parallel = 49.0
		z.FalseNorthing = -100000
		z.FalseEasting = 400000
		z.ScaleFactor = 0.9996012717
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-7.56, 49.96}
		z.LatLongBoundMax = Double2{1.78, 60.84}
	case 28992: // Amersfoort / RD New (oblique stereographic)
		z.Datum = DatumAmersfoort
		z.Projection = ProjectionStereographicObliqueNEquatorial
		z.ZoneName = "Amersfoort"
		z.Meridian = 5.3876388888888888
		z.Parallel = 52.156160555555556
		z.FalseNorthing = 463000
		z.FalseEasting = 155000
		z.ScaleFactor = 0.9999079
		z.setSpheroid()
		z.LatLongBoundMin = Double2{3.37, 50.75}
		z.LatLongBoundMax = Double2{7.21, 53.47}
	case 29873: // Timbalai 1948 / RSO Borneo (Hotine oblique Mercator variant B)
		z.Datum = DatumTimbalai1948
		z.Projection = ProjectionHotineObliqueMercatorVB
		z.ZoneName = "Timbalai 1948"
		z.Meridian = 115.0
		z.Parallel = 53.13010236111111
		z.CoLatConeAxis = 53.31582047222222
		z.LatProjCentre = 4.0
		z.FalseNorthing = 442857.65
		z.FalseEasting = 590476.87
		z.ScaleFactor = 0.99984
		z.setSpheroid()
		z.LatLongBoundMin = Double2{0.85, 109.55}
		z.LatLongBoundMax = Double2{7.35, 119.26}
	case 30101: // Moon planetocentric / ECEF
		z.Datum = DatumMoonPCPF
		z.Projection = ProjectionECEF
		z.ZoneNumber = 30101
		z.ScaleFactor = 1
		z.setSpheroid()
	case 30175: // Moon 2000 Mercator
		z.Datum = DatumMoonMerc
		z.Projection = ProjectionMercator
		z.ZoneName = "Moon 2000 Mercator"
		z.ZoneNumber = 30175
		z.ScaleFactor = 1.0
		z.setSpheroid()
	case 30200: // Trinidad 1903 (Cassini-Soldner, Clarke's link unit)
		z.Datum = DatumTrinidad1903
		z.Projection = ProjectionCassiniSoldner
		z.ZoneName = "Trinidad 1903"
		z.Meridian = -61.0 - 1.0/3.0
		z.Parallel = 10.441 + 2.0/(3.0*1000.0)
		z.FalseNorthing = 325000
		z.FalseEasting = 430000
		z.ScaleFactor = 1.0
		z.UnitMetreScale = 0.201166195164
		z.setSpheroid()
		z.LatLongBoundMin = Double2{-62.08, 9.82}
		z.LatLongBoundMax = Double2{-58.53, 11.68}
	case 31700: // Dealul Piscului 1970 / Stereo 70
		z.Datum = DatumDealul1970
		z.Projection = ProjectionStereographicObliqueNEquatorial
		z.ZoneName = "Dealul Piscului 1970"
		z.Meridian = 25.0
		z.Parallel = 46.0
		z.FalseNorthing = 500000
		z.FalseEasting = 500000
		z.ScaleFactor = 0.99975
		z.setSpheroid()
		z.LatLongBoundMin = Double2{43.62, 20.26}
		z.LatLongBoundMax = Double2{48.26, 31.5}
	case 49975: // Mars 2000 Mercator
		z.Datum = DatumMarsMerc
		z.Projection = ProjectionMercator
		z.ZoneName = "Mars 2000 Mercator"
		z.ZoneNumber = 49975
		z.ScaleFactor = 1.0
		z.setSpheroid()
	default:
		zone, ok := lookupInternalZone(srid)
		if !ok {
			return result.New(result.NotFound)
		}
		*z = zone
	}
	return nil
}
