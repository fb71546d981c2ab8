package geozone

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kenchrcum/udcore-go/internal/debug"
	"github.com/kenchrcum/udcore-go/result"
)

// wktNode is one bracketed element of a WKT1 document: a tag, the leading
// quoted name (when present) and the remaining values, which may be
// numbers, bare words or nested nodes.
type wktNode struct {
	Tag    string
	Name   string
	Values []wktValue
}

type wktValue struct {
	node  *wktNode
	str   string
	num   float64
	isNum bool
}

func (v wktValue) number() float64 {
	if v.isNum {
		return v.num
	}
	n, _ := strconv.ParseFloat(v.str, 64)
	return n
}

// child returns the first nested node with the given tag.
func (n *wktNode) child(tag string) *wktNode {
	for _, v := range n.Values {
		if v.node != nil && v.node.Tag == tag {
			return v.node
		}
	}
	return nil
}

type wktParser struct {
	s   string
	pos int
}

func (p *wktParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *wktParser) parseNode() (*wktNode, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == '[' || c == ',' || c == ']' || c == ' ' || c == '\n' || c == '\r' || c == '\t' {
			break
		}
		p.pos++
	}
	tag := p.s[start:p.pos]
	if tag == "" {
		return nil, result.New(result.ParseError)
	}
	node := &wktNode{Tag: tag}

	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != '[' {
		return node, nil
	}
	p.pos++ // consume '['
	for {
		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil, result.New(result.ParseError)
		}
		if p.s[p.pos] == ']' {
			p.pos++
			return node, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		// The first quoted string names the node.
		if v.node == nil && !v.isNum && node.Name == "" && len(node.Values) == 0 && v.quoted {
			node.Name = v.str
		} else {
			node.Values = append(node.Values, wktValue{node: v.node, str: v.str, num: v.num, isNum: v.isNum})
		}
		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == ',' {
			p.pos++
		}
	}
}

type parsedValue struct {
	node   *wktNode
	str    string
	num    float64
	isNum  bool
	quoted bool
}

func (p *wktParser) parseValue() (parsedValue, error) {
	p.skipSpace()
	c := p.s[p.pos]
	if c == '"' {
		p.pos++
		start := p.pos
		for p.pos < len(p.s) && p.s[p.pos] != '"' {
			p.pos++
		}
		if p.pos >= len(p.s) {
			return parsedValue{}, result.New(result.ParseError)
		}
		str := p.s[start:p.pos]
		p.pos++
		return parsedValue{str: str, quoted: true}, nil
	}
	if c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
		start := p.pos
		for p.pos < len(p.s) {
			c := p.s[p.pos]
			if c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' || (c >= '0' && c <= '9') {
				p.pos++
			} else {
				break
			}
		}
		n, err := strconv.ParseFloat(p.s[start:p.pos], 64)
		if err != nil {
			return parsedValue{}, result.New(result.ParseError)
		}
		return parsedValue{num: n, isNum: true}, nil
	}

	// A bare word, or a nested node when followed by '['.
	save := p.pos
	node, err := p.parseNode()
	if err != nil {
		return parsedValue{}, err
	}
	if len(node.Values) == 0 && node.Name == "" {
		// Plain token such as EAST, NORTH, X, Y.
		return parsedValue{str: p.s[save:p.pos]}, nil
	}
	return parsedValue{node: node}, nil
}

// walkWKT populates the zone from a parsed WKT tree, depth first,
// mirroring the tagged-node semantics of WKT1.
func (z *Zone) walkWKT(node *wktNode) {
	switch node.Tag {
	case "PARAMETER":
		val := 0.0
		if len(node.Values) > 0 {
			val = node.Values[0].number()
		}
		switch node.Name {
		case "false_easting", "False_Easting":
			z.FalseEasting = val
		case "false_northing", "False_Northing":
			z.FalseNorthing = val
		case "scale_factor":
			z.ScaleFactor = val
		case "central_meridian", "Central_Meridian", "longitude_of_center":
			z.Meridian = val
		case "latitude_of_origin", "rectified_grid_angle":
			z.Parallel = val
		case "standard_parallel_1", "Standard_Parallel_1":
			z.FirstParallel = val
		case "standard_parallel_2":
			z.SecondParallel = val
		case "colatitude_cone_axis", "azimuth":
			z.CoLatConeAxis = val
		case "latitude_projection_centre", "latitude_of_center":
			z.LatProjCentre = val
		default:
			debug.Printf("unknown PARAMETER: %s", node.Name)
		}

	case "UNIT":
		if z.UnitMetreScale == 0 && unitNameIsLinear(node.Name) {
			if len(node.Values) > 0 {
				z.UnitMetreScale = node.Values[0].number()
			}
			if z.SemiMajorAxis != 0 {
				z.metreScaleSpheroidMaths()
			}
		}

	case "PROJCS":
		if z.Projection == ProjectionUnknown {
			z.Projection = ProjectionTransverseMercator // overridden by PROJECTION later
		}
		// Some zone names arrive as "shortname / longname".
		if i := strings.Index(node.Name, "/ "); i >= 0 {
			z.ZoneName = node.Name[i+2:]
		} else {
			z.ZoneName = node.Name
		}
		if auth := node.child("AUTHORITY"); auth != nil && len(auth.Values) > 0 {
			z.SRID = int(auth.Values[0].number())
		}

	case "GEOGCS":
		if z.Projection == ProjectionUnknown {
			z.Projection = ProjectionLatLong
			z.UnitMetreScale = 1.0
			for _, v := range node.Values {
				if v.node == nil {
					continue
				}
				switch v.node.Tag {
				case "UNIT":
					if len(v.node.Values) > 0 {
						z.ScaleFactor = v.node.Values[0].number()
					}
				case "AUTHORITY":
					if len(v.node.Values) > 0 {
						z.SRID = int(v.node.Values[0].number())
					}
				case "AXIS":
					if v.node.Name == "Lat" && len(v.node.Values) > 0 && v.node.Values[0].str == "Y" {
						z.Projection = ProjectionLongLat
					}
				}
			}
		}
		z.matchDatumName(node.Name)

	case "GEOCCS":
		if z.Projection == ProjectionUnknown {
			z.Projection = ProjectionECEF
			z.ScaleFactor = 1.0
			for _, v := range node.Values {
				if v.node == nil {
					continue
				}
				switch v.node.Tag {
				case "UNIT":
					if len(v.node.Values) > 0 {
						z.UnitMetreScale = v.node.Values[0].number()
					}
				case "AUTHORITY":
					if len(v.node.Values) > 0 {
						z.SRID = int(v.node.Values[0].number())
					}
				}
			}
		}
		z.matchDatumName(node.Name)

	case "DATUM":
		z.DatumName = node.Name

	case "PROJECTION":
		z.matchProjectionName(node.Name)

	case "SPHEROID":
		if len(node.Values) >= 2 {
			z.SemiMajorAxis = node.Values[0].number()
			invF := node.Values[1].number()
			if invF == 0 {
				z.Flattening = 0
			} else {
				z.Flattening = 1.0 / invF
			}
			if z.UnitMetreScale != 0 {
				z.metreScaleSpheroidMaths()
			}
		}
		if auth := node.child("AUTHORITY"); auth != nil && len(auth.Values) > 0 {
			epsg := int(auth.Values[0].number())
			z.datumSRID = epsg
			for i := range Ellipsoids {
				if Ellipsoids[i].AuthorityEPSG == epsg {
					z.zoneSpheroid = i
				}
			}
		}

	case "TOWGS84":
		if !z.knownDatum && len(node.Values) >= 7 {
			z.Helmert = Helmert7{
				node.Values[0].number(), node.Values[1].number(), node.Values[2].number(),
				node.Values[3].number(), node.Values[4].number(), node.Values[5].number(),
				node.Values[6].number(),
			}
			z.toWGS84 = true
		}

	case "AXIS":
		z.axisInfo = true
	}

	for _, v := range node.Values {
		if v.node != nil {
			z.walkWKT(v.node)
		}
	}
}

func unitNameIsLinear(name string) bool {
	for _, s := range []string{"foot", "feet", "ft", "metre", "link", "Clarke's link"} {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func (z *Zone) matchDatumName(name string) {
	for i := 0; i < datumCount; i++ {
		if Datums[i].FullName == name {
			z.knownDatum = true
			z.Datum = i
			z.DatumShortName = Datums[i].ShortName
			return
		}
	}
	if alias, ok := datumAliases[name]; ok {
		z.knownDatum = true
		z.Datum = alias
		z.DatumShortName = Datums[alias].ShortName
		return
	}
	z.DatumShortName = name
	debug.Printf("unknown datum: %s", name)
}

func (z *Zone) matchProjectionName(name string) {
	type projDefault struct {
		projection ProjectionType
		scale      float64
	}
	// Ordered: more specific names first.
	candidates := []struct {
		substr string
		def    projDefault
	}{
		{"Mercator_1SP", projDefault{ProjectionWebMercator, 1.0}},
		{"Transverse_Mercator", projDefault{ProjectionTransverseMercator, 0.9996}},
		{"Lambert", projDefault{ProjectionLambertConformalConic2SP, 1.0}},
		{"Hyperbolic_Cassini_Soldner", projDefault{ProjectionCassiniSoldnerHyperbolic, 1.0}},
		{"Cassini_Soldner", projDefault{ProjectionCassiniSoldner, 1.0}},
		{"Oblique_Stereographic", projDefault{ProjectionStereographicObliqueNEquatorial, 1.0}},
		{"Polar_Stereographic", projDefault{ProjectionStereographicPolarVB, 1.0}},
		{"Krovak (North Orientated)", projDefault{ProjectionKrovakNorthOrientated, 0.9999}},
		{"Krovak", projDefault{ProjectionKrovak, 0.999}},
		{"Hotine_Oblique_Mercator_Azimuth_Center", projDefault{ProjectionHotineObliqueMercatorVB, 1.0}},
		{"Hotine_Oblique_Mercator", projDefault{ProjectionHotineObliqueMercatorVA, 1.0}},
		{"Mercator", projDefault{ProjectionMercator, 1.0}},
		{"Albers_Conic_Equal_Area", projDefault{ProjectionAlbersEqualArea, 1.0}},
		{"Equirectangular", projDefault{ProjectionEquidistantCylindrical, 1.0}},
	}
	for _, c := range candidates {
		if strings.Contains(name, c.substr) {
			z.Projection = c.def.projection
			if z.ScaleFactor == 0 {
				z.ScaleFactor = c.def.scale
			}
			return
		}
	}
	debug.Printf("unsupported projection: %s", name)
}

// SetFromWKT populates the zone from a WKT1 string. Datums the static
// table doesn't recognise are appended to the process-wide dynamic datum
// registry, with their TOWGS84 parameters, so SetFromSRID can later
// resolve zones that reference them.
func (z *Zone) SetFromWKT(wkt string) error {
	*z = Zone{}

	p := &wktParser{s: wkt}
	root, err := p.parseNode()
	if err != nil {
		return err
	}

	z.zoneSpheroid = ellipsoidCount
	z.walkWKT(root)

	// Unknown datum but recognised spheroid: register a dynamic datum so
	// the zone stays usable for Helmert conversion.
	if !z.knownDatum && z.zoneSpheroid != ellipsoidCount {
		registryMu.Lock()
		internalDatums = append(internalDatums, DatumDescriptor{
			FullName:       z.DatumName,
			ShortName:      z.DatumShortName,
			DatumName:      z.DatumName,
			Ellipsoid:      z.zoneSpheroid,
			Helmert:        z.Helmert,
			EPSG:           z.SRID,
			Authority:      z.datumSRID,
			ExportAxisInfo: z.axisInfo,
			ExportToWGS84:  z.toWGS84,
		})
		z.Datum = datumCount + len(internalDatums) - 1
		registryMu.Unlock()
	}

	supportedDatum := z.zoneSpheroid != ellipsoidCount
	z.zoneSpheroid = 0
	z.datumSRID = 0
	z.axisInfo = false

	z.updateDisplayName()

	if z.ScaleFactor != 0 && z.DatumShortName != "" && z.SemiMajorAxis != 0 && z.SRID != 0 && supportedDatum {
		return nil
	}
	return result.New(result.Failure)
}

// trimDouble formats v with at most prec decimal places, trimming
// trailing zeros the way the WKT emitter's round-trips expect.
func trimDouble(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// GetWellKnownText emits the zone as WKT1 with EPSG authority codes,
// using per-datum numeric precision chosen to produce byte-stable
// round-trips for the well-known SRIDs.
func (z *Zone) GetWellKnownText() (string, error) {
	if z.SRID == 0 {
		return "", result.New(result.InvalidParameter)
	}

	desc, ok := datumByIndex(z.Datum)
	if !ok {
		return "", result.New(result.InvalidParameter)
	}
	ellipsoid := Ellipsoids[desc.Ellipsoid]

	falseOriginPrecision := 3
	if z.Datum == DatumNAD83 || z.Datum == DatumNAD832011 {
		falseOriginPrecision = 4
	}
	parallelPrecision := 14
	if z.Datum == DatumSVY21 {
		parallelPrecision = 15
	}
	meridianPrecision := 13
	if z.Datum == DatumMGI {
		meridianPrecision = 14
	}
	const scalePrecision = 10

	var toWGS84 string
	if desc.ExportToWGS84 {
		decimalPlaces := 3
		switch z.Datum {
		case DatumHK1980:
			decimalPlaces = 7
		case DatumMGI:
			decimalPlaces = 4
		}
		h := desc.Helmert
		toWGS84 = fmt.Sprintf(",\nTOWGS84[%s,%s,%s,%s,%s,%s,%s]",
			trimDouble(h.Tx, 3), trimDouble(h.Ty, 3), trimDouble(h.Tz, 3),
			trimDouble(h.Rx, decimalPlaces), trimDouble(h.Ry, decimalPlaces),
			trimDouble(h.Rz, decimalPlaces), trimDouble(h.ScalePPM, decimalPlaces))
	}

	invFlattening := "0.0"
	if ellipsoid.Flattening != 0 {
		invFlattening = trimDouble(1.0/ellipsoid.Flattening, 9)
	}
	spheroid := fmt.Sprintf("SPHEROID[%q,%s,%s,\nAUTHORITY[\"EPSG\",\"%d\"]]",
		ellipsoid.Name, trimDouble(ellipsoid.SemiMajorAxis, 8), invFlattening, ellipsoid.AuthorityEPSG)
	datum := fmt.Sprintf("DATUM[%q,\n%s%s,\nAUTHORITY[\"EPSG\",\"%d\"]", desc.DatumName, spheroid, toWGS84, desc.Authority)

	var geogcs string
	switch {
	case z.Projection == ProjectionECEF && z.Datum == DatumMarsPCPF:
		geogcs = fmt.Sprintf("GEOCCS[%q,\n%s],\nPRIMEM[\"AIRY-0\",0],\nUNIT[\"metre\",1,\nAUTHORITY[\"EPSG\",\"9001\"]]", desc.FullName, datum)
	case z.Projection == ProjectionECEF:
		geogcs = fmt.Sprintf("GEOCCS[%q,\n%s],\nPRIMEM[\"Greenwich\",0,\nAUTHORITY[\"EPSG\",\"8901\"]],\nUNIT[\"metre\",1,\nAUTHORITY[\"EPSG\",\"9001\"]]", desc.FullName, datum)
	case z.Projection == ProjectionLongLat:
		// ISO 6709 has no long-lat order, so the axes are spelled out.
		geogcs = fmt.Sprintf("GEOGCS[%q,\n%s],\nPRIMEM[\"Greenwich\",0,\nAUTHORITY[\"EPSG\",\"8901\"]],\nUNIT[\"degree\",0.0174532925199433,\nAUTHORITY[\"EPSG\",\"9122\"]],\nAXIS[\"Lon\",X],\nAXIS[\"Lat\",Y],\nAUTHORITY[\"CRS\",\"%d\"]]", desc.FullName, datum, z.SRID)
	default:
		geogcs = fmt.Sprintf("GEOGCS[%q,\n%s],\nPRIMEM[\"Greenwich\",0,\nAUTHORITY[\"EPSG\",\"8901\"]],\nUNIT[\"degree\",0.0174532925199433,\nAUTHORITY[\"EPSG\",\"9122\"]],\nAUTHORITY[\"EPSG\",\"%d\"]]", desc.FullName, datum, desc.EPSG)
	}

	// Only degree, metres, US survey feet, Clarke's link and link are
	// handled; each has a fixed authority code.
	var unit string
	switch {
	case z.ScaleFactor == 0.0174532925199433:
		unit = "UNIT[\"degree\",0.0174532925199433,\nAUTHORITY[\"EPSG\",\"9122\"]]"
	case z.UnitMetreScale == 1.0:
		unit = "UNIT[\"metre\",1,\nAUTHORITY[\"EPSG\",\"9001\"]]"
	case z.UnitMetreScale == 0.3048006096012192:
		unit = "UNIT[\"US survey foot\",0.3048006096012192,\nAUTHORITY[\"EPSG\",\"9003\"]]"
	case z.UnitMetreScale == 0.201166195164:
		unit = "UNIT[\"Clarke's link\",0.201166195164,\nAUTHORITY[\"EPSG\",\"9039\"]]"
	case z.UnitMetreScale == 0.201168:
		unit = "UNIT[\"link\",0.201168,\nAUTHORITY[\"EPSG\",\"9098\"]]"
	default:
		unit = fmt.Sprintf("UNIT[\"unknown\",%s]", trimDouble(z.UnitMetreScale, 16))
	}

	var projection string
	switch z.Projection {
	case ProjectionTransverseMercator:
		projection = fmt.Sprintf("PROJECTION[\"Transverse_Mercator\"],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionLambertConformalConic2SP:
		projection = fmt.Sprintf("PROJECTION[\"Lambert_Conformal_Conic_2SP\"],\nPARAMETER[\"standard_parallel_1\",%s],\nPARAMETER[\"standard_parallel_2\",%s],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.FirstParallel, parallelPrecision), trimDouble(z.SecondParallel, parallelPrecision), trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionWebMercator:
		projection = fmt.Sprintf("PROJECTION[\"Mercator_1SP\"],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionCassiniSoldner:
		projection = fmt.Sprintf("PROJECTION[\"Cassini_Soldner\"],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionCassiniSoldnerHyperbolic:
		projection = fmt.Sprintf("PROJECTION[\"Hyperbolic_Cassini_Soldner\"],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionStereographicObliqueNEquatorial:
		projection = fmt.Sprintf("PROJECTION[\"Oblique_Stereographic\"],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionMercator:
		projection = fmt.Sprintf("PROJECTION[\"Mercator\"],\nPARAMETER[\"False_Easting\",%s],\nPARAMETER[\"False_Northing\",%s],\nPARAMETER[\"Central_Meridian\",%s],\nPARAMETER[\"Standard_Parallel_1\",%s],\n%s",
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision),
			trimDouble(z.Meridian, meridianPrecision), trimDouble(z.FirstParallel, parallelPrecision), unit)
	case ProjectionStereographicPolarVB:
		projection = fmt.Sprintf("PROJECTION[\"Polar_Stereographic\"],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionKrovak, ProjectionKrovakNorthOrientated:
		name := "Krovak"
		if z.Projection == ProjectionKrovakNorthOrientated {
			name = "Krovak (North Orientated)"
		}
		projection = fmt.Sprintf("PROJECTION[%q],\nPARAMETER[\"latitude_projection_centre\",%s],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"colatitude_cone_axis\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			name, trimDouble(z.LatProjCentre, parallelPrecision), trimDouble(z.Parallel, parallelPrecision), trimDouble(z.CoLatConeAxis, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionHotineObliqueMercatorVA, ProjectionHotineObliqueMercatorVB:
		name := "Hotine_Oblique_Mercator"
		if z.Projection == ProjectionHotineObliqueMercatorVB {
			name = "Hotine_Oblique_Mercator_Azimuth_Center"
		}
		projection = fmt.Sprintf("PROJECTION[%q],\nPARAMETER[\"latitude_of_center\",%s],\nPARAMETER[\"longitude_of_center\",%s],\nPARAMETER[\"azimuth\",%s],\nPARAMETER[\"rectified_grid_angle\",%s],\nPARAMETER[\"scale_factor\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			name, trimDouble(z.LatProjCentre, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.CoLatConeAxis, parallelPrecision), trimDouble(z.Parallel, parallelPrecision), trimDouble(z.ScaleFactor, scalePrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionAlbersEqualArea:
		projection = fmt.Sprintf("PROJECTION[\"Albers_Conic_Equal_Area\"],\nPARAMETER[\"latitude_of_center\",%s],\nPARAMETER[\"longitude_of_center\",%s],\nPARAMETER[\"standard_parallel_1\",%s],\nPARAMETER[\"standard_parallel_2\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.LatProjCentre, parallelPrecision), trimDouble(z.Meridian, meridianPrecision), trimDouble(z.FirstParallel, parallelPrecision), trimDouble(z.SecondParallel, parallelPrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	case ProjectionEquidistantCylindrical:
		projection = fmt.Sprintf("PROJECTION[\"Equirectangular\"],\nPARAMETER[\"latitude_of_origin\",%s],\nPARAMETER[\"central_meridian\",%s],\nPARAMETER[\"false_easting\",%s],\nPARAMETER[\"false_northing\",%s],\n%s",
			trimDouble(z.Parallel, parallelPrecision), trimDouble(z.Meridian, meridianPrecision),
			trimDouble(z.FalseEasting, falseOriginPrecision), trimDouble(z.FalseNorthing, falseOriginPrecision), unit)
	}

	if desc.ExportAxisInfo {
		// Transverse Mercator zones carry one axis style, Lambert
		// another; GDA LCC (3112 and 7845) follows the TM style.
		switch {
		case z.Projection == ProjectionTransverseMercator || z.SRID == 3112 || z.SRID == 7845:
			projection += ",\nAXIS[\"Easting\",EAST],\nAXIS[\"Northing\",NORTH]"
		case z.Projection == ProjectionECEF:
			projection = "AXIS[\"Geocentric X\",OTHER],\nAXIS[\"Geocentric Y\",OTHER],\nAXIS[\"Geocentric Z\",NORTH]"
		case z.Projection == ProjectionLambertConformalConic2SP || z.Projection == ProjectionWebMercator || z.Projection == ProjectionCassiniSoldner || z.Projection == ProjectionStereographicObliqueNEquatorial:
			projection += ",\nAXIS[\"X\",EAST],\nAXIS[\"Y\",NORTH]"
		case z.Projection == ProjectionKrovak:
			projection += ",\nAXIS[\"latitude(Lat)\",north],AXIS[\"longitude(Lon)\",east]"
		case z.Projection == ProjectionKrovakNorthOrientated:
			projection += ",\nAXIS[\"Easting(X)\",east],AXIS[\"Northing(Y)\",north]"
		}
	}

	switch {
	case z.Projection == ProjectionECEF:
		return fmt.Sprintf("%s,\n%s,\nAUTHORITY[\"EPSG\",\"%d\"]]", geogcs, projection, z.SRID), nil
	case z.Projection == ProjectionLatLong || z.Projection == ProjectionLongLat:
		return geogcs, nil
	case strings.HasPrefix(z.ZoneName, desc.ShortName):
		return fmt.Sprintf("PROJCS[%q,\n%s,\n%s,\nAUTHORITY[\"EPSG\",\"%d\"]]", z.ZoneName, geogcs, projection, z.SRID), nil
	default:
		return fmt.Sprintf("PROJCS[\"%s / %s\",\n%s,\n%s,\nAUTHORITY[\"EPSG\",\"%d\"]]", desc.ShortName, z.ZoneName, geogcs, projection, z.SRID), nil
	}
}
