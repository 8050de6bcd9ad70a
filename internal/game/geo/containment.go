package geo

import "math"

// AngleBetween returns the angle in radians between vectors a and b,
// in [0, π]. Returns 0 if either vector is zero.
func AngleBetween(a, b Vec2) float64 {
	la := a.Len()
	lb := b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := a.Dot(b) / (la * lb)
	// Clamp against float drift before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// angleEpsilon absorbs acos drift so the angular edge stays inclusive:
// a point exactly on the cone boundary must count as inside.
const angleEpsilon = 1e-9

// InCone reports whether point p lies inside the cone rooted at origin,
// opening around facing, with the given range and half-angle (radians).
// Both the range and angle boundaries are inclusive. The origin itself
// is never inside its own cone.
func InCone(origin, facing, p Vec2, maxRange, halfAngle float64) bool {
	to := p.Sub(origin)
	if to.IsZero() {
		return false
	}
	if to.Len() > maxRange {
		return false
	}
	return AngleBetween(facing, to) <= halfAngle+angleEpsilon
}

// RayProject projects point p onto the ray from origin along dir.
// Returns the distance along the ray and the perpendicular distance
// from the ray line. A negative along value means p is behind origin.
// dir does not need to be normalized; a zero dir yields (0, dist).
func RayProject(origin, dir, p Vec2) (along, perp float64) {
	to := p.Sub(origin)
	d := dir.Normalize()
	if d.IsZero() {
		return 0, to.Len()
	}
	along = to.Dot(d)
	closest := d.Scale(along)
	perp = to.Sub(closest).Len()
	return along, perp
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
