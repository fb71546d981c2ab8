package geozone

import "math"

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
	halfPi   = math.Pi / 2.0
)

// latLongToGeocentric converts a geodetic (lat, long in degrees, height in
// metres) coordinate into geocentric XYZ on the given ellipsoid.
func latLongToGeocentric(latLong Double3, ellipsoid EllipsoidInfo) Double3 {
	lat := latLong.X * degToRad
	lon := latLong.Y * degToRad
	h := latLong.Z

	eSq := ellipsoid.EccentricitySquared()
	v := ellipsoid.SemiMajorAxis / math.Sqrt(1-eSq*math.Sin(lat)*math.Sin(lat))

	return Double3{
		X: (v + h) * math.Cos(lat) * math.Cos(lon),
		Y: (v + h) * math.Cos(lat) * math.Sin(lon),
		Z: (v*(1-eSq) + h) * math.Sin(lat),
	}
}

// geocentricToLatLong is the inverse of latLongToGeocentric, iterating the
// latitude to a fixed point.
func geocentricToLatLong(geocentric Double3, ellipsoid EllipsoidInfo) Double3 {
	semiMinorAxis := ellipsoid.SemiMinorAxis()
	eSq := ellipsoid.EccentricitySquared()
	e3 := eSq / (1 - eSq)
	p := math.Hypot(geocentric.X, geocentric.Y)
	q := math.Atan2(geocentric.Z*ellipsoid.SemiMajorAxis, p*semiMinorAxis)

	sinQ := math.Sin(q)
	cosQ := math.Cos(q)

	lat := math.Atan2(geocentric.Z+e3*semiMinorAxis*sinQ*sinQ*sinQ, p-eSq*ellipsoid.SemiMajorAxis*cosQ*cosQ*cosQ)
	lon := math.Atan2(geocentric.Y, geocentric.X)

	v := ellipsoid.SemiMajorAxis / math.Sqrt(1-eSq*math.Sin(lat)*math.Sin(lat))
	h := p/math.Cos(lat) - v

	lat2, lat2Tmp := 0.0, lat
	for i := 0; i < 64 && lat2 != lat2Tmp && !math.IsInf(lat2, 0); i++ {
		lat2 = lat2Tmp
		lat2Tmp = math.Atan((geocentric.Z + eSq*v*math.Sin(lat2)) / p)
	}

	return Double3{X: lat2 * radToDeg, Y: lon * radToDeg, Z: h}
}

// applyHelmert applies a 7-parameter position-vector transform in the
// geocentric frame.
func applyHelmert(geocentric Double3, t Helmert7) Double3 {
	rx := (t.Rx / 3600.0) * degToRad
	ry := (t.Ry / 3600.0) * degToRad
	rz := (t.Rz / 3600.0) * degToRad
	ds := t.ScalePPM/1000000.0 + 1.0

	return Double3{
		X: t.Tx + (ds*geocentric.X - geocentric.Y*rz + geocentric.Z*ry),
		Y: t.Ty + (geocentric.X*rz + ds*geocentric.Y - geocentric.Z*rx),
		Z: t.Tz + (-geocentric.X*ry + geocentric.Y*rx + ds*geocentric.Z),
	}
}

// Newton step recovering geodetic latitude from conformal latitude, used
// by the Transverse Mercator inverse.
func lccLatConverge(t, td, e float64) float64 {
	s := math.Sinh(e * math.Atanh(e*t/math.Sqrt(1+t*t)))
	fn := t*math.Sqrt(1+s*s) - s*math.Sqrt(1+t*t) - td
	fd := (math.Sqrt(1+s*s)*math.Sqrt(1+t*t) - s*t) * ((1 - e*e) * math.Sqrt(1+t*t)) / (1 + (1-e*e)*t*t)
	return fn / fd
}

func lccMeridional(phi, e float64) float64 {
	d := e * math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-d*d)
}

func lccConformal(phi, e float64) float64 {
	d := e * math.Sin(phi)
	return math.Tan(math.Pi/4.0-phi/2.0) / math.Pow((1-d)/(1+d), e/2.0)
}

// meridianArcDistance evaluates Helmert's series for the meridional arc
// from the equator to phi, normalised by the semi-major axis.
func meridianArcDistance(phi float64, n *[10]float64) float64 {
	return (1 - n[1]) * (1 - n[2]) * (phi*(82575360.0+185794560.0*n[2]+290304000.0*n[4]+395136000.0*n[6]+500094000.0*n[8]) +
		math.Sin(2.0*phi)*(-123863040.0*n[1]-232243200.0*n[3]-338688000.0*n[5]-444528000.0*n[7]-550103400.0*n[9]) +
		math.Sin(4.0*phi)*(77414400.0*n[2]+135475200.0*n[4]+190512000.0*n[6]+244490400.0*n[8]) +
		math.Sin(6.0*phi)*(-60211200.0*n[3]-101606400.0*n[5]-139708800.0*n[7]-176576400.0*n[9]) +
		math.Sin(8.0*phi)*(50803200.0*n[4]+83825280.0*n[6]+113513400.0*n[8]) +
		math.Sin(10.0*phi)*(-44706816.0*n[5]-72648576.0*n[7]-97297200.0*n[9]) +
		math.Sin(12.0*phi)*(40360320.0*n[6]+64864800.0*n[8]) +
		math.Sin(14.0*phi)*(-37065600.0*n[7]-59073300.0*n[9]) +
		math.Sin(16.0*phi)*(34459425.0*n[8]) +
		math.Sin(18.0*phi)*(-32332300.0*n[9])) / 82575360.0
}

// delambreCoefficients returns the first Delambre coefficient A0 for the
// rectifying latitude.
func delambreCoefficients(e float64) float64 {
	return 1.0 - 1.0/4.0*math.Pow(e, 2) - 3.0/64.0*math.Pow(e, 4) - 5.0/256.0*math.Pow(e, 6) -
		175.0/16384.0*math.Pow(e, 8) - 441.0/65536.0*math.Pow(e, 10) -
		4851.0/1048576.0*math.Pow(e, 12) - 14157.0/4194304.0*math.Pow(e, 14)
}

// latMeridianSameNorthing is the reverted Helmert series recovering the
// footpoint latitude from the rectifying latitude mu.
func latMeridianSameNorthing(mu, e float64) float64 {
	return mu +
		(3.0/2.0*e-27.0/32.0*math.Pow(e, 3))*math.Sin(2*mu) +
		(21.0/16.0*math.Pow(e, 2)-55.0/32.0*math.Pow(e, 4))*math.Sin(4*mu) +
		151.0/96.0*math.Pow(e, 3)*math.Sin(6*mu) +
		1097.0/512.0*math.Pow(e, 4)*math.Sin(8*mu)
}

// chiToPhi applies the standard series recovering geodetic latitude from
// conformal latitude chi.
func chiToPhi(chi, eSq float64) float64 {
	return chi + (eSq/2.0+5.0*math.Pow(eSq, 2)/24.0+math.Pow(eSq, 3)/12.0+13.0*math.Pow(eSq, 4)/360.0)*math.Sin(2.0*chi) +
		(7.0*math.Pow(eSq, 2)/48.0+29.0*math.Pow(eSq, 3)/240.0+811.0*math.Pow(eSq, 4)/11520.0)*math.Sin(4.0*chi) +
		(7.0*math.Pow(eSq, 3)/120.0+81.0*math.Pow(eSq, 4)/1120.0)*math.Sin(6.0*chi) +
		(4279.0*math.Pow(eSq, 4)/161280.0)*math.Sin(8.0*chi)
}

// LatLongToCartesian projects a geodetic coordinate, expressed in the
// given datum, into this zone's coordinate system. Datum conversion is
// applied first when the input datum differs from the zone's.
func (z *Zone) LatLongToCartesian(latLong Double3, datum int) Double3 {
	e := z.Eccentricity
	phi := latLong.X
	omega := latLong.Y
	height := latLong.Z

	if datum != z.Datum {
		converted := ConvertDatum(Double3{phi, omega, height}, datum, z.Datum)
		phi, omega, height = converted.X, converted.Y, converted.Z
	}

	switch z.Projection {
	case ProjectionECEF:
		desc, _ := datumByIndex(z.Datum)
		return latLongToGeocentric(Double3{phi, omega, height}, Ellipsoids[desc.Ellipsoid])

	case ProjectionLatLong:
		return Double3{phi, omega, height}

	case ProjectionLongLat:
		return Double3{omega, phi, height}

	case ProjectionTransverseMercator:
		phi *= degToRad
		omegaR := (omega - z.Meridian) * degToRad

		sigma := math.Sinh(e * math.Atanh(e*math.Tan(phi)/math.Sqrt(1+math.Pow(math.Tan(phi), 2))))
		tanConformalPhi := math.Tan(phi)*math.Sqrt(1+sigma*sigma) - sigma*math.Sqrt(1+math.Pow(math.Tan(phi), 2))

		v := math.Asinh(math.Sin(omegaR) / math.Sqrt(tanConformalPhi*tanConformalPhi+math.Pow(math.Cos(omegaR), 2)))
		u := math.Atan2(tanConformalPhi, math.Cos(omegaR))

		eta0 := v
		xi0 := u
		for i := 0; i < len(z.Alpha); i++ {
			j := float64(i+1) * 2.0
			eta0 += z.Alpha[i] * math.Cos(j*u) * math.Sinh(j*v)
			xi0 += z.Alpha[i] * math.Sin(j*u) * math.Cosh(j*v)
		}
		eta0 *= z.Radius
		xi0 *= z.Radius

		return Double3{z.ScaleFactor*eta0 + z.FalseEasting, z.ScaleFactor*(xi0-z.FirstParallel) + z.FalseNorthing, height}

	case ProjectionLambertConformalConic2SP:
		phi *= degToRad
		omegaR := (omega - z.Meridian) * degToRad

		phi0 := z.Parallel * degToRad
		phi1 := z.FirstParallel * degToRad
		phi2 := z.SecondParallel * degToRad
		m1 := lccMeridional(phi1, e)
		m2 := lccMeridional(phi2, e)
		t := lccConformal(phi, e)
		tOrigin := lccConformal(phi0, e)
		t1 := lccConformal(phi1, e)
		t2 := lccConformal(phi2, e)
		n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
		f := m1 / (n * math.Pow(t1, n))
		p0 := z.SemiMajorAxis * f * math.Pow(tOrigin, n)
		p := z.SemiMajorAxis * f * math.Pow(t, n)

		return Double3{p*math.Sin(n*omegaR) + z.FalseEasting, p0 - p*math.Cos(n*omegaR) + z.FalseNorthing, height}

	case ProjectionWebMercator:
		phi *= degToRad
		omegaR := (omega - z.Meridian) * degToRad

		x := z.SemiMajorAxis * omegaR
		y := z.SemiMajorAxis * math.Log(math.Tan(math.Pi/4.0+phi/2.0))
		return Double3{x + z.FalseEasting, y + z.FalseNorthing, height}

	case ProjectionCassiniSoldner, ProjectionCassiniSoldnerHyperbolic:
		phi *= degToRad
		a := (omega - z.Meridian) * degToRad * math.Cos(phi)
		t := math.Pow(math.Tan(phi), 2)
		c := z.EccentricitySq * math.Pow(math.Cos(phi), 2) / (1 - z.EccentricitySq)
		nu := z.SemiMajorAxis / math.Sqrt(1-z.EccentricitySq*math.Pow(math.Sin(phi), 2))

		m := z.SemiMajorAxis * meridianArcDistance(phi, &z.N)
		m0 := z.SemiMajorAxis * meridianArcDistance(z.Parallel*degToRad, &z.N)

		x := m - m0 + nu*math.Tan(phi)*(a*a/2.0+(5.0-t+6.0*c)*math.Pow(a, 4)/24.0)

		easting := z.FalseEasting + nu*(a-t*math.Pow(a, 3)/6.0-(8.0-t+8.0*c)*t*math.Pow(a, 5)/120.0)
		northing := z.FalseNorthing + x
		if z.Projection == ProjectionCassiniSoldnerHyperbolic {
			rho := z.SemiMajorAxis * (1 - z.EccentricitySq) / math.Pow(1-z.EccentricitySq*math.Pow(math.Sin(phi), 2), 1.5)
			northing -= math.Pow(x, 3) / (6 * rho * nu)
		}
		return Double3{easting, northing, height}

	case ProjectionStereographicObliqueNEquatorial:
		eSq := z.EccentricitySq
		a := z.SemiMajorAxis
		phi *= degToRad

		phi0 := z.Parallel * degToRad
		rho0 := a * (1.0 - eSq) / math.Pow(1.0-eSq*math.Pow(math.Sin(phi0), 2), 1.5)
		nu0 := a / math.Sqrt(1.0-eSq*math.Pow(math.Sin(phi0), 2))

		s1 := (1.0 + math.Sin(phi0)) / (1.0 - math.Sin(phi0))
		s2 := (1.0 - e*math.Sin(phi0)) / (1.0 + e*math.Sin(phi0))

		r := math.Sqrt(rho0 * nu0)
		n := math.Sqrt(1.0 + eSq*math.Pow(math.Cos(phi0), 4)/(1.0-eSq))

		w1 := math.Pow(s1*math.Pow(s2, e), n)
		sinChi0 := (w1 - 1.0) / (w1 + 1.0)
		c := (n + math.Sin(phi0)) * (1.0 - sinChi0) / ((n - math.Sin(phi0)) * (1.0 + sinChi0))
		w2 := c * w1
		chi0 := math.Asin((w2 - 1.0) / (w2 + 1.0))
		lambda0 := z.Meridian * degToRad

		lambda := n*(omega*degToRad-lambda0) + lambda0
		sa := (1.0 + math.Sin(phi)) / (1.0 - math.Sin(phi))
		sb := (1.0 - e*math.Sin(phi)) / (1.0 + e*math.Sin(phi))
		w := c * math.Pow(sa*math.Pow(sb, e), n)
		chi := math.Asin((w - 1.0) / (w + 1.0))

		b := 1.0 + math.Sin(chi)*math.Sin(chi0) + math.Cos(chi)*math.Cos(chi0)*math.Cos(lambda-lambda0)

		easting := z.FalseEasting + 2*r*z.ScaleFactor*math.Cos(chi)*math.Sin(lambda-lambda0)/b
		northing := z.FalseNorthing + 2*r*z.ScaleFactor*(math.Sin(chi)*math.Cos(chi0)-math.Cos(chi)*math.Sin(chi0)*math.Cos(lambda-lambda0))/b
		return Double3{easting, northing, height}

	case ProjectionMercator:
		phi *= degToRad
		phiStd := z.FirstParallel * degToRad

		k0 := math.Cos(phiStd) / math.Sqrt(1-z.EccentricitySq*math.Pow(math.Sin(phiStd), 2))
		easting := z.FalseEasting + z.SemiMajorAxis*k0*(omega-z.Meridian)*degToRad
		northing := z.FalseNorthing + z.SemiMajorAxis*k0*math.Log(math.Tan(math.Pi/4.0+phi/2.0)*math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2.0))
		return Double3{easting, northing, height}

	case ProjectionStereographicPolarVB:
		isNorthPole := z.Parallel > 0
		phi *= degToRad
		phiF := z.Parallel * degToRad
		theta := (omega - z.Meridian) * degToRad

		tF := math.Tan(math.Pi/4.0+phiF/2.0) / math.Pow((1+e*math.Sin(phiF))/(1-e*math.Sin(phiF)), e/2.0)
		mF := math.Cos(phiF) / math.Sqrt(1-z.EccentricitySq*math.Pow(math.Sin(phiF), 2))
		k0 := mF * math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)) / (2.0 * tF)

		t := math.Tan(math.Pi/4.0+phi/2.0) / math.Pow((1+e*math.Sin(phi))/(1-e*math.Sin(phi)), e/2.0)
		if isNorthPole {
			t = math.Tan(math.Pi/4.0-phi/2.0) / math.Pow((1+e*math.Sin(phi))/(1-e*math.Sin(phi)), e/2.0)
		}

		rho := 2.0 * z.SemiMajorAxis * k0 * t / math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e))
		easting := rho*math.Sin(theta) + z.FalseEasting
		northing := z.FalseNorthing + rho*math.Cos(theta)
		if isNorthPole {
			northing = z.FalseNorthing - rho*math.Cos(theta)
		}
		return Double3{easting, northing, height}

	case ProjectionKrovak, ProjectionKrovakNorthOrientated:
		phiC := z.LatProjCentre * degToRad
		alphaC := z.CoLatConeAxis * degToRad
		phiP := z.Parallel * degToRad
		kP := z.ScaleFactor
		lambda0 := z.Meridian * degToRad
		phi *= degToRad

		a := z.SemiMajorAxis
		eSq := z.EccentricitySq

		bigA := a * math.Sqrt(1-eSq) / (1 - eSq*math.Pow(math.Sin(phiC), 2))
		bigB := math.Sqrt(1 + eSq*math.Pow(math.Cos(phiC), 4)/(1-eSq))
		gamma0 := math.Asin(math.Sin(phiC) / bigB)
		t0 := math.Tan(math.Pi/4.0+gamma0/2.0) * math.Pow((1+e*math.Sin(phiC))/(1-e*math.Sin(phiC)), e*bigB/2.0) / math.Pow(math.Tan(math.Pi/4.0+phiC/2.0), bigB)
		n := math.Sin(phiP)
		r0 := kP * bigA / math.Tan(phiP)

		u := 2.0 * (math.Atan(t0*math.Pow(math.Tan(phi/2+math.Pi/4.0), bigB)/math.Pow((1+e*math.Sin(phi))/(1-e*math.Sin(phi)), e*bigB/2.0)) - math.Pi/4.0)
		v := bigB * (lambda0 - omega*degToRad)
		t := math.Asin(math.Cos(alphaC)*math.Sin(u) + math.Sin(alphaC)*math.Cos(u)*math.Cos(v))
		d := math.Asin(math.Cos(u) * math.Sin(v) / math.Cos(t))
		theta := n * d
		r := r0 * math.Pow(math.Tan(math.Pi/4.0+phiP/2.0), n) / math.Pow(math.Tan(t/2.0+math.Pi/4.0), n)
		xp := r * math.Cos(theta)
		yp := r * math.Sin(theta)

		w := yp + z.FalseEasting
		s := xp + z.FalseNorthing
		if z.Projection == ProjectionKrovakNorthOrientated {
			return Double3{-s, -w, height}
		}
		return Double3{s, w, height}

	case ProjectionHotineObliqueMercatorVA, ProjectionHotineObliqueMercatorVB:
		phi *= degToRad

		a := z.SemiMajorAxis
		eSq := z.EccentricitySq

		alphaC := z.CoLatConeAxis * degToRad
		phiC := z.LatProjCentre * degToRad
		lambdaC := z.Meridian * degToRad
		gammaC := z.Parallel * degToRad

		bigB := math.Sqrt(1 + eSq*math.Pow(math.Cos(phiC), 4)/(1-eSq))
		bigA := a * bigB * z.ScaleFactor * math.Sqrt(1-eSq) / (1 - eSq*math.Pow(math.Sin(phiC), 2))
		t0 := math.Tan(math.Pi/4.0-phiC/2.0) / math.Pow((1-e*math.Sin(phiC))/(1+e*math.Sin(phiC)), e/2.0)
		d := bigB * math.Sqrt(1-eSq) / (math.Cos(phiC) * math.Sqrt(1-eSq*math.Pow(math.Sin(phiC), 2)))
		dSq := d * d
		if d < 1.0 {
			dSq = 1.0
		}
		sign := 1.0
		if phiC < 0 {
			sign = -1.0
		}
		f := d + math.Sqrt(dSq-1)*sign
		h := f * math.Pow(t0, bigB)
		g := (f - 1.0/f) / 2.0
		gamma0 := math.Asin(math.Sin(alphaC) / d)
		lambda0 := lambdaC - math.Asin(g*math.Tan(gamma0))/bigB

		var uC float64
		if z.CoLatConeAxis == 90 {
			uC = bigA * (lambdaC - lambda0)
		} else {
			uC = (bigA / bigB) * math.Atan2(math.Sqrt(d*d-1), math.Cos(alphaC)) * sign
		}

		t := math.Tan(math.Pi/4.0-phi/2.0) / math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2.0)
		q := h / math.Pow(t, bigB)
		s := (q - 1/q) / 2
		bigT := (q + 1/q) / 2.0
		v := math.Sin(bigB * (omega*degToRad - lambda0))
		bigU := (-v*math.Cos(gamma0) + s*math.Sin(gamma0)) / bigT
		vv := bigA * math.Log((1-bigU)/(1+bigU)) / (2 * bigB)

		u := bigA * math.Atan2(s*math.Cos(gamma0)+v*math.Sin(gamma0), math.Cos(bigB*(omega*degToRad-lambda0))) / bigB

		if z.Projection == ProjectionHotineObliqueMercatorVB {
			u -= math.Abs(uC) * sign
			if z.CoLatConeAxis == 90 {
				signLambda := 1.0
				if lambdaC-omega*degToRad < 0 {
					signLambda = -1.0
				}
				if omega*degToRad == lambdaC {
					u = 0
				} else {
					u = bigA*math.Atan2(s*math.Cos(gamma0)+v*math.Sin(gamma0), math.Cos(bigB*(omega*degToRad-lambda0)))/bigB - math.Abs(uC)*sign*signLambda
				}
			}
		}
		easting := vv*math.Cos(gammaC) + u*math.Sin(gammaC) + z.FalseEasting
		northing := u*math.Cos(gammaC) - vv*math.Sin(gammaC) + z.FalseNorthing
		return Double3{easting, northing, height}

	case ProjectionAlbersEqualArea:
		phi *= degToRad
		omegaR := -omega * degToRad // west axis
		phi0 := z.LatProjCentre * degToRad
		lambda0 := z.Meridian * degToRad
		a := z.SemiMajorAxis
		eSq := z.EccentricitySq

		qFn := func(p float64) float64 {
			return (1 - eSq) * (math.Sin(p)/(1-eSq*math.Pow(math.Sin(p), 2)) - (1/(2*e))*math.Log((1-e*math.Sin(p))/(1+e*math.Sin(p))))
		}
		mFn := func(p float64) float64 {
			return math.Cos(p) / math.Sqrt(1-eSq*math.Pow(math.Sin(p), 2))
		}

		alpha := qFn(phi)
		alpha0 := qFn(phi0)
		alpha1 := qFn(z.FirstParallel * degToRad)
		alpha2 := qFn(z.SecondParallel * degToRad)
		m1 := mFn(z.FirstParallel * degToRad)
		m2 := mFn(z.SecondParallel * degToRad)

		n := (m1*m1 - m2*m2) / (alpha2 - alpha1)
		c := m1*m1 + n*alpha1

		rho := a * math.Sqrt(c-n*alpha) / n
		rho0 := a * math.Sqrt(c-n*alpha0) / n
		theta := n * (omegaR - lambda0)

		return Double3{z.FalseEasting + rho*math.Sin(theta), z.FalseNorthing + rho0 - rho*math.Cos(theta), height}

	case ProjectionEquidistantCylindrical:
		a := z.SemiMajorAxis
		phi *= degToRad
		eSq := z.EccentricitySq

		m := a * ((1-(1.0/4.0)*eSq-(3.0/64.0)*math.Pow(eSq, 2)-(5.0/256.0)*math.Pow(eSq, 3)-(175.0/16384.0)*math.Pow(eSq, 4)-(441.0/65536.0)*math.Pow(eSq, 5)-(4851.0/1048576.0)*math.Pow(eSq, 6)-(14157.0/4194304.0)*math.Pow(eSq, 7))*phi +
			(-(3.0/8.0)*eSq-(3.0/32.0)*math.Pow(eSq, 2)-(45.0/1024.0)*math.Pow(eSq, 3)-(105.0/4096.0)*math.Pow(eSq, 4)-(2205.0/131072.0)*math.Pow(eSq, 5)-(6237.0/524288.0)*math.Pow(eSq, 6)-(297297.0/33554432.0)*math.Pow(eSq, 7))*math.Sin(2*phi) +
			((15.0/256.0)*math.Pow(eSq, 2)+(45.0/1024.0)*math.Pow(eSq, 3)+(525.0/16384.0)*math.Pow(eSq, 4)+(1575.0/65536.0)*math.Pow(eSq, 5)+(155925.0/8388608.0)*math.Pow(eSq, 6)+(495495.0/33554432.0)*math.Pow(eSq, 7))*math.Sin(4*phi) +
			(-(35.0/3072.0)*math.Pow(eSq, 3)-(175.0/12288.0)*math.Pow(eSq, 4)-(3675.0/262144.0)*math.Pow(eSq, 5)-(13475.0/1048576.0)*math.Pow(eSq, 6)-(385385.0/33554432.0)*math.Pow(eSq, 7))*math.Sin(6*phi) +
			((315.0/131072.0)*math.Pow(eSq, 4)+(2205.0/524288.0)*math.Pow(eSq, 5)+(43659.0/8388608.0)*math.Pow(eSq, 6)+(189189.0/33554432.0)*math.Pow(eSq, 7))*math.Sin(8*phi) +
			(-(693.0/1310720.0)*math.Pow(eSq, 5)-(6237.0/5242880.0)*math.Pow(eSq, 6)-(297297.0/167772160.0)*math.Pow(eSq, 7))*math.Sin(10*phi) +
			((1001.0/8388608.0)*math.Pow(eSq, 6)+(11011.0/33554432.0)*math.Pow(eSq, 7))*math.Sin(12*phi) +
			(-(6435.0/234881024.0)*math.Pow(eSq, 7))*math.Sin(14*phi))

		phiStd := z.Parallel * degToRad
		v1 := a / math.Sqrt(1-eSq*math.Pow(math.Sin(phiStd), 2))

		easting := z.FalseEasting + v1*math.Cos(phiStd)*(omega-z.Meridian)*degToRad
		northing := z.FalseNorthing + m
		return Double3{easting, northing, height}
	}

	return Double3{} // unsupported projection
}

// CartesianToLatLong unprojects a position in this zone's coordinate
// system back to a geodetic coordinate in the given datum.
func (z *Zone) CartesianToLatLong(position Double3, datum int) Double3 {
	var latLong Double3
	e := z.Eccentricity

	switch z.Projection {
	case ProjectionECEF:
		desc, _ := datumByIndex(z.Datum)
		latLong = geocentricToLatLong(position, Ellipsoids[desc.Ellipsoid])

	case ProjectionLatLong:
		latLong = position

	case ProjectionLongLat:
		latLong = Double3{position.Y, position.X, position.Z}

	case ProjectionTransverseMercator:
		eta := (position.X - z.FalseEasting) / (z.Radius * z.ScaleFactor)
		xi := (z.FirstParallel*z.ScaleFactor + position.Y - z.FalseNorthing) / (z.Radius * z.ScaleFactor)

		eta0 := eta
		xi0 := xi
		for i := 0; i < len(z.Beta); i++ {
			j := float64(i+1) * 2.0
			xi0 += z.Beta[i] * math.Sin(j*xi) * math.Cosh(j*eta)
			eta0 += z.Beta[i] * math.Cos(j*xi) * math.Sinh(j*eta)
		}

		tanConformalPhi := math.Sin(xi0) / math.Sqrt(math.Pow(math.Sinh(eta0), 2)+math.Pow(math.Cos(xi0), 2))
		omega := math.Atan2(math.Sinh(eta0), math.Cos(xi0))
		t := tanConformalPhi
		for i := 0; i < 5; i++ {
			t -= lccLatConverge(t, tanConformalPhi, e)
		}

		latLong.X = math.Atan(t) * radToDeg
		latLong.Y = z.Meridian + omega*radToDeg
		latLong.Z = position.Z

	case ProjectionLambertConformalConic2SP:
		y := position.Y - z.FalseNorthing
		x := position.X - z.FalseEasting
		phi0 := z.Parallel * degToRad
		phi1 := z.FirstParallel * degToRad
		phi2 := z.SecondParallel * degToRad
		m1 := lccMeridional(phi1, e)
		m2 := lccMeridional(phi2, e)
		tOrigin := lccConformal(phi0, e)
		t1 := lccConformal(phi1, e)
		t2 := lccConformal(phi2, e)
		n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
		f := m1 / (n * math.Pow(t1, n))
		p0 := z.SemiMajorAxis * f * math.Pow(tOrigin, n)
		p := math.Hypot(x, p0-y) // r' in the EPSG guidance, same sign as n
		if n < 0 {
			p = -p
		}

		theta := math.Atan(x / (p0 - y))
		t := math.Pow(p/(z.SemiMajorAxis*f), 1/n)
		phi := halfPi - 2.0*math.Atan(t)
		for i := 0; i < 5; i++ {
			phi = halfPi - 2*math.Atan(t*math.Pow((1-e*math.Sin(phi))/(1+e*math.Sin(phi)), e/2.0))
		}

		latLong.X = phi * radToDeg
		latLong.Y = theta/n*radToDeg + z.Meridian
		latLong.Z = position.Z

	case ProjectionWebMercator:
		y := position.Y - z.FalseNorthing
		x := position.X - z.FalseEasting

		phi := halfPi - 2*math.Atan(math.Exp(-y/z.SemiMajorAxis))
		omega := x / z.SemiMajorAxis

		latLong.X = phi * radToDeg
		latLong.Y = omega*radToDeg + z.Meridian
		latLong.Z = position.Z

	case ProjectionCassiniSoldner:
		a := z.SemiMajorAxis
		lmESq := 1 - z.EccentricitySq

		m0 := a * meridianArcDistance(z.Parallel*degToRad, &z.N)
		m1 := m0 + (position.Y - z.FalseNorthing)
		mu1 := m1 / (a * delambreCoefficients(z.Eccentricity))
		e1 := (1 - math.Sqrt(lmESq)) / (1 + math.Sqrt(lmESq))
		phi1 := latMeridianSameNorthing(mu1, e1)

		nu1 := a / math.Sqrt(1.0-z.EccentricitySq*math.Pow(math.Sin(phi1), 2))
		rho1 := a * lmESq / math.Pow(1.0-z.EccentricitySq*math.Pow(math.Sin(phi1), 2), 1.5)

		t1 := math.Pow(math.Tan(phi1), 2)
		d := (position.X - z.FalseEasting) / nu1

		latLong.X = (phi1 - (nu1*math.Tan(phi1)/rho1)*(d*d/2.0-(1.0+3.0*t1)*math.Pow(d, 4)/24.0)) * radToDeg
		latLong.Y = (z.Meridian*degToRad + (d-t1*math.Pow(d, 3)/3.0+(1.0+3.0*t1)*t1*math.Pow(d, 5)/15.0)/math.Cos(phi1)) * radToDeg
		latLong.Z = position.Z

	case ProjectionCassiniSoldnerHyperbolic:
		phi0 := z.Parallel * degToRad
		lambda0 := z.Meridian * degToRad
		a := z.SemiMajorAxis
		nmFN := position.Y - z.FalseNorthing
		lmESq := 1 - z.EccentricitySq

		m0 := a * meridianArcDistance(phi0, &z.N)
		phi1p := phi0 + nmFN/315320.0
		rho1p := a * lmESq / math.Pow(1-z.EccentricitySq*math.Pow(math.Sin(phi1p), 2), 1.5)
		nu1p := a / math.Sqrt(1-z.EccentricitySq*math.Pow(math.Sin(phi1p), 2))
		qp := math.Pow(nmFN, 3) / (6 * rho1p * nu1p)
		q := math.Pow(nmFN+qp, 3) / (6 * rho1p * nu1p)
		m1 := m0 + nmFN + q
		mu1 := m1 / (a * delambreCoefficients(z.Eccentricity))
		e1 := (1 - math.Sqrt(lmESq)) / (1 + math.Sqrt(lmESq))
		phi1 := latMeridianSameNorthing(mu1, e1)

		nu1 := a / math.Sqrt(1-z.EccentricitySq*math.Pow(math.Sin(phi1), 2))
		rho1 := a * lmESq / math.Pow(1-z.EccentricitySq*math.Pow(math.Sin(phi1), 2), 1.5)

		t1 := math.Pow(math.Tan(phi1), 2)
		d := (position.X - z.FalseEasting) / nu1

		latLong.X = (phi1 - (nu1*math.Tan(phi1)/rho1)*(d*d/2-(1+3*t1)*math.Pow(d, 4)/24)) * radToDeg
		latLong.Y = (lambda0 + (d-t1*math.Pow(d, 3)/3+(1+3*t1)*t1*math.Pow(d, 5)/15)/math.Cos(phi1)) * radToDeg
		latLong.Z = position.Z

	case ProjectionStereographicObliqueNEquatorial:
		eSq := z.EccentricitySq
		a := z.SemiMajorAxis

		phi0 := z.Parallel * degToRad
		rho0 := a * (1.0 - eSq) / math.Pow(1.0-eSq*math.Pow(math.Sin(phi0), 2), 1.5)
		nu0 := a / math.Sqrt(1.0-eSq*math.Pow(math.Sin(phi0), 2))

		s1 := (1.0 + math.Sin(phi0)) / (1.0 - math.Sin(phi0))
		s2 := (1.0 - e*math.Sin(phi0)) / (1.0 + e*math.Sin(phi0))

		r := math.Sqrt(rho0 * nu0)
		n := math.Sqrt(1.0 + eSq*math.Pow(math.Cos(phi0), 4)/(1.0-eSq))

		w1 := math.Pow(s1*math.Pow(s2, e), n)
		sinChi0 := (w1 - 1.0) / (w1 + 1.0)
		c := (n + math.Sin(phi0)) * (1.0 - sinChi0) / ((n - math.Sin(phi0)) * (1.0 + sinChi0))
		w2 := c * w1
		chi0 := math.Asin((w2 - 1.0) / (w2 + 1.0))

		g := 2 * r * z.ScaleFactor * math.Tan(math.Pi/4.0-chi0/2.0)
		h := 4*r*z.ScaleFactor*math.Tan(chi0) + g
		i := math.Atan2(position.X-z.FalseEasting, h+(position.Y-z.FalseNorthing))
		j := math.Atan2(position.X-z.FalseEasting, g-(position.Y-z.FalseNorthing)) - i

		chi := chi0 + 2*math.Atan(((position.Y-z.FalseNorthing)-(position.X-z.FalseEasting)*math.Tan(j/2.0))/(2.0*r*z.ScaleFactor))
		lambda := j + 2*i + z.Meridian*degToRad

		psi := 0.5 * math.Log((1+math.Sin(chi))/(c*(1-math.Sin(chi)))) / n

		phi := 0.0
		phiTmp := 2*math.Atan(math.Exp(psi)) - halfPi
		for math.Abs(phi-phiTmp) > 1e-14 && !math.IsNaN(phi) {
			phi = phiTmp
			psiI := math.Log(math.Tan(phiTmp/2.0+math.Pi/4.0) * math.Pow((1-e*math.Sin(phiTmp))/(1+e*math.Sin(phiTmp)), e/2.0))
			phiTmp = phi - (psiI-psi)*math.Cos(phi)*(1-eSq*math.Pow(math.Sin(phi), 2))/(1-eSq)
		}

		latLong.X = phi * radToDeg
		latLong.Y = ((lambda-z.Meridian*degToRad)/n + z.Meridian*degToRad) * radToDeg
		latLong.Z = position.Z

	case ProjectionMercator:
		eSq := z.EccentricitySq
		phiStd := z.FirstParallel * degToRad
		k0 := math.Cos(phiStd) / math.Sqrt(1-eSq*math.Pow(math.Sin(phiStd), 2))
		t := math.Exp((z.FalseNorthing - position.Y) / (z.SemiMajorAxis * k0))
		chi := halfPi - 2.0*math.Atan(t)
		phi := chiToPhi(chi, eSq)

		latLong.X = phi * radToDeg
		latLong.Y = (position.X-z.FalseEasting)/(z.SemiMajorAxis*k0)*radToDeg + z.Meridian
		latLong.Z = position.Z

	case ProjectionStereographicPolarVB:
		isNorthPole := z.Parallel > 0
		eSq := z.EccentricitySq
		phiF := z.Parallel * degToRad

		tF := math.Tan(math.Pi/4.0+phiF/2.0) / math.Pow((1+e*math.Sin(phiF))/(1-e*math.Sin(phiF)), e/2.0)
		mF := math.Cos(phiF) / math.Sqrt(1-eSq*math.Pow(math.Sin(phiF), 2))
		k0 := mF * math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)) / (2.0 * tF)
		rhoP := math.Hypot(position.X-z.FalseEasting, position.Y-z.FalseNorthing)
		tP := rhoP * math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e)) / (2.0 * z.SemiMajorAxis * k0)

		chi := 2.0*math.Atan(tP) - halfPi
		if isNorthPole {
			chi = -chi
		}
		latLong.X = chiToPhi(chi, eSq) * radToDeg
		if position.X == z.FalseEasting {
			latLong.Y = z.Meridian
		} else if isNorthPole {
			latLong.Y = z.Meridian + math.Atan2(z.FalseEasting-position.X, z.FalseNorthing-position.Y)*radToDeg
		} else {
			latLong.Y = z.Meridian + math.Atan2(position.X-z.FalseEasting, position.Y-z.FalseNorthing)*radToDeg
		}
		latLong.Z = position.Z

	case ProjectionKrovak, ProjectionKrovakNorthOrientated:
		southing := position.X
		westing := position.Y
		if z.Projection == ProjectionKrovakNorthOrientated {
			southing = -southing
			westing = -westing
		}

		phiC := z.LatProjCentre * degToRad
		alphaC := z.CoLatConeAxis * degToRad
		phiP := z.Parallel * degToRad
		kP := z.ScaleFactor

		a := z.SemiMajorAxis
		eSq := z.EccentricitySq

		bigA := a * math.Sqrt(1-eSq) / (1 - eSq*math.Pow(math.Sin(phiC), 2))
		bigB := math.Sqrt(1 + eSq*math.Pow(math.Cos(phiC), 4)/(1-eSq))
		gamma0 := math.Asin(math.Sin(phiC) / bigB)
		t0 := math.Tan(math.Pi/4.0+gamma0/2.0) * math.Pow((1+e*math.Sin(phiC))/(1-e*math.Sin(phiC)), e*bigB/2.0) / math.Pow(math.Tan(math.Pi/4.0+phiC/2.0), bigB)
		n := math.Sin(phiP)
		r0 := kP * bigA / math.Tan(phiP)

		xpp := southing - z.FalseNorthing
		ypp := westing - z.FalseEasting

		rP := math.Hypot(xpp, ypp)
		thetaP := math.Atan2(ypp, xpp)
		dp := thetaP / math.Sin(phiP)
		tp := 2 * (math.Atan(math.Pow(r0/rP, 1.0/n)*math.Tan(math.Pi/4.0+phiP/2.0)) - math.Pi/4.0)
		up := math.Asin(math.Cos(alphaC)*math.Sin(tp) - math.Sin(alphaC)*math.Cos(tp)*math.Cos(dp))
		vp := math.Asin(math.Cos(tp) * math.Sin(dp) / math.Cos(up))

		phi := up
		phiTmp := 2 * (math.Atan(math.Pow(t0, -1.0/bigB)*math.Pow(math.Tan(up/2.0+math.Pi/4.0), 1.0/bigB)*math.Pow((1.0+e*math.Sin(phi))/(1.0-e*math.Sin(phi)), e/2.0)) - math.Pi/4.0)
		for math.Abs(phi-phiTmp) > 1e-14 && !math.IsNaN(phi) {
			phi = phiTmp
			phiTmp = 2 * (math.Atan(math.Pow(t0, -1.0/bigB)*math.Pow(math.Tan(up/2.0+math.Pi/4.0), 1.0/bigB)*math.Pow((1.0+e*math.Sin(phi))/(1.0-e*math.Sin(phi)), e/2.0)) - math.Pi/4.0)
		}

		latLong.X = phi * radToDeg
		latLong.Y = (z.Meridian*degToRad - vp/bigB) * radToDeg
		latLong.Z = position.Z

	case ProjectionHotineObliqueMercatorVA, ProjectionHotineObliqueMercatorVB:
		a := z.SemiMajorAxis
		eSq := z.EccentricitySq

		alphaC := z.CoLatConeAxis * degToRad
		phiC := z.LatProjCentre * degToRad
		lambdaC := z.Meridian * degToRad
		gammaC := z.Parallel * degToRad

		bigB := math.Sqrt(1 + eSq*math.Pow(math.Cos(phiC), 4)/(1-eSq))
		bigA := a * bigB * z.ScaleFactor * math.Sqrt(1-eSq) / (1 - eSq*math.Pow(math.Sin(phiC), 2))
		t0 := math.Tan(math.Pi/4.0-phiC/2.0) / math.Pow((1-e*math.Sin(phiC))/(1+e*math.Sin(phiC)), e/2.0)
		d := bigB * math.Sqrt(1-eSq) / (math.Cos(phiC) * math.Sqrt(1-eSq*math.Pow(math.Sin(phiC), 2)))
		dSq := d * d
		if d < 1.0 {
			dSq = 1.0
		}
		sign := 1.0
		if phiC < 0 {
			sign = -1.0
		}
		f := d + math.Sqrt(dSq-1)*sign
		h := f * math.Pow(t0, bigB)
		g := (f - 1.0/f) / 2.0
		gamma0 := math.Asin(math.Sin(alphaC) / d)
		lambda0 := lambdaC - math.Asin(g*math.Tan(gamma0))/bigB

		var uC float64
		if z.CoLatConeAxis == 90 {
			uC = bigA * (lambdaC - lambda0)
		} else {
			uC = (bigA / bigB) * math.Atan2(math.Sqrt(d*d-1), math.Cos(alphaC)) * sign
		}

		vP := (position.X-z.FalseEasting)*math.Cos(gammaC) - (position.Y-z.FalseNorthing)*math.Sin(gammaC)
		uP := (position.Y-z.FalseNorthing)*math.Cos(gammaC) + (position.X-z.FalseEasting)*math.Sin(gammaC)
		if z.Projection == ProjectionHotineObliqueMercatorVB {
			uP += math.Abs(uC) * sign
		}

		qp := math.Exp(-(bigB * vP / bigA))
		sp := (qp - 1/qp) / 2.0
		tp := (qp + 1/qp) / 2.0
		vp := math.Sin(bigB * uP / bigA)
		up := (vp*math.Cos(gamma0) + sp*math.Sin(gamma0)) / tp
		tP := math.Pow(h/math.Sqrt((1+up)/(1-up)), 1/bigB)
		chi := halfPi - 2.0*math.Atan(tP)

		latLong.X = chiToPhi(chi, eSq) * radToDeg
		latLong.Y = (lambda0 - math.Atan2(sp*math.Cos(gamma0)-vp*math.Sin(gamma0), math.Cos(bigB*uP/bigA))/bigB) * radToDeg
		latLong.Z = position.Z

	case ProjectionAlbersEqualArea:
		a := z.SemiMajorAxis
		eSq := z.EccentricitySq
		phi0 := z.LatProjCentre * degToRad

		qFn := func(p float64) float64 {
			return (1 - eSq) * (math.Sin(p)/(1-eSq*math.Pow(math.Sin(p), 2)) - (1/(2*e))*math.Log((1-e*math.Sin(p))/(1+e*math.Sin(p))))
		}
		mFn := func(p float64) float64 {
			return math.Cos(p) / math.Sqrt(1-eSq*math.Pow(math.Sin(p), 2))
		}

		alpha0 := qFn(phi0)
		alpha1 := qFn(z.FirstParallel * degToRad)
		alpha2 := qFn(z.SecondParallel * degToRad)
		m1 := mFn(z.FirstParallel * degToRad)
		m2 := mFn(z.SecondParallel * degToRad)
		n := (m1*m1 - m2*m2) / (alpha2 - alpha1)
		c := m1*m1 + n*alpha1

		rho0 := a * math.Sqrt(c-n*alpha0) / n
		var theta float64
		if n > 0 {
			theta = math.Atan2(position.X-z.FalseEasting, rho0-(position.Y-z.FalseNorthing))
		} else {
			theta = math.Atan2(-(position.X - z.FalseEasting), -(rho0 - (position.Y - z.FalseNorthing)))
		}

		rhoP := math.Hypot(position.X-z.FalseEasting, rho0-(position.Y-z.FalseNorthing))
		alphaP := (c - rhoP*rhoP*n*n/(a*a)) / n
		betaP := math.Asin(alphaP / (1 - ((1-eSq)/(2*e))*math.Log((1-e)/(1+e))))

		phi := betaP +
			(eSq/3.0+31*math.Pow(e, 4)/180+517*math.Pow(e, 6)/5040)*math.Sin(2*betaP) +
			(23*math.Pow(e, 4)/360+251*math.Pow(e, 6)/3780)*math.Sin(4*betaP) +
			(761*math.Pow(e, 6)/45360)*math.Sin(6*betaP)
		lambda := z.Meridian*degToRad + theta/n

		latLong.X = phi * radToDeg
		latLong.Y = -lambda * radToDeg // west axis
		latLong.Z = position.Z

	case ProjectionEquidistantCylindrical:
		a := z.SemiMajorAxis
		eSq := z.EccentricitySq
		x := position.X - z.FalseEasting
		y := position.Y - z.FalseNorthing
		phiStd := z.Parallel * degToRad

		mu := y / (a * delambreCoefficients(z.Eccentricity))
		eta := (1 - math.Sqrt(1-eSq)) / (1 + math.Sqrt(1-eSq))

		lambda := z.Meridian*degToRad + x*math.Sqrt(1.0-eSq*math.Pow(math.Sin(phiStd), 2))/(a*math.Cos(phiStd))
		phi := mu + ((3.0/2.0)*eta-(27.0/32.0)*math.Pow(eta, 3)+(269.0/512.0)*math.Pow(eta, 5)-(6607.0/24576.0)*math.Pow(eta, 7))*math.Sin(2*mu) +
			((21.0/16.0)*math.Pow(eta, 2)-(55.0/32.0)*math.Pow(eta, 4)+(6759.0/4096.0)*math.Pow(eta, 6))*math.Sin(4*mu) +
			((151.0/96.0)*math.Pow(eta, 3)-(417.0/128.0)*math.Pow(eta, 5)+(87963.0/20480.0)*math.Pow(eta, 7))*math.Sin(6*mu) +
			((1097.0/512.0)*math.Pow(eta, 4)-(15543.0/2560.0)*math.Pow(eta, 6))*math.Sin(8*mu) +
			((8011.0/2560.0)*math.Pow(eta, 5)-(69119.0/6144.0)*math.Pow(eta, 7))*math.Sin(10*mu) +
			((293393.0/61440.0)*math.Pow(eta, 6))*math.Sin(12*mu) +
			((6845701.0/860160.0)*math.Pow(eta, 7))*math.Sin(14*mu)

		latLong.X = phi * radToDeg
		latLong.Y = lambda * radToDeg
		latLong.Z = position.Z
	}

	if datum != z.Datum {
		latLong = ConvertDatum(latLong, z.Datum, datum)
	}
	return latLong
}
