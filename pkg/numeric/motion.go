package numeric

import "math"

// MoveTowards moves v towards target by at most maxDelta without overshooting.
//
// A maxDelta <= 0 returns v unchanged. When the remaining distance is zero or
// fits within maxDelta, target itself is returned so callers land exactly.
func (v Vec2) MoveTowards(target Vec2, maxDelta float64) Vec2 {
	if maxDelta <= 0 {
		return v
	}

	dx := target.X - v.X
	dy := target.Y - v.Y

	sqrDist := dx*dx + dy*dy
	if sqrDist == 0 || sqrDist <= maxDelta*maxDelta {
		return target
	}

	scale := maxDelta / math.Sqrt(sqrDist)
	return Vec2{v.X + dx*scale, v.Y + dy*scale}
}

// MoveTowards moves v towards target by at most maxDelta without overshooting.
func (v Vec3) MoveTowards(target Vec3, maxDelta float64) Vec3 {
	if maxDelta <= 0 {
		return v
	}

	dx := target.X - v.X
	dy := target.Y - v.Y
	dz := target.Z - v.Z

	sqrDist := dx*dx + dy*dy + dz*dz
	if sqrDist == 0 || sqrDist <= maxDelta*maxDelta {
		return target
	}

	scale := maxDelta / math.Sqrt(sqrDist)
	return Vec3{v.X + dx*scale, v.Y + dy*scale, v.Z + dz*scale}
}
