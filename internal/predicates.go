package internal

import (
	"math"
	"math/big"
	"sync"
)

// Orientation and in-circle predicates. Both are evaluated in floating point
// first, with a static error bound on the result. When the determinant is too
// close to zero for the bound to guarantee its sign, it is evaluated again
// exactly using rationals. Every finite float64 is an exact rational, so the
// fallback is never wrong, only slower.

type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

type CircleOrientation int

const (
	Outside CircleOrientation = iota - 1
	On
	Inside
)

func (o CircleOrientation) String() string {
	switch o {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "on"
	}
}

var (
	exactInitOnce sync.Once
	// Largest power of two such that 1 + epsilon == 1 in floating point.
	epsilon      float64
	ccwErrBoundA float64
	iccErrBoundA float64
)

// Compute the machine epsilon and the error bounds that depend on it. Safe to
// call any number of times from any goroutine.
func exactInit() {
	exactInitOnce.Do(func() {
		half := 0.5
		check := 1.0
		lastCheck := 0.0
		epsilon = 1.0
		for {
			lastCheck = check
			epsilon *= half
			check = 1.0 + epsilon
			if check == 1.0 || check == lastCheck {
				break
			}
		}
		ccwErrBoundA = (3.0 + 16.0*epsilon) * epsilon
		iccErrBoundA = (10.0 + 96.0*epsilon) * epsilon
	})
}

// Orientation of the triangle a, b, c. CounterClockwise means c lies to the
// left of the directed line a→b.
func Orient2D(a, b, c Vertex) Orientation {
	exactInit()

	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return orientationOfSign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return orientationOfSign(det)
		}
		detSum = -detLeft - detRight
	default:
		return orientationOfSign(det)
	}

	errBound := ccwErrBoundA * detSum
	if det >= errBound || -det >= errBound {
		return orientationOfSign(det)
	}
	return orientationOfSign(float64(orient2DExact(a, b, c)))
}

func orient2DExact(a, b, c Vertex) int {
	ax, ay := rat(a.X), rat(a.Y)
	bx, by := rat(b.X), rat(b.Y)
	cx, cy := rat(c.X), rat(c.Y)

	acx := new(big.Rat).Sub(ax, cx)
	bcy := new(big.Rat).Sub(by, cy)
	acy := new(big.Rat).Sub(ay, cy)
	bcx := new(big.Rat).Sub(bx, cx)

	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	return left.Cmp(right)
}

func orientationOfSign(det float64) Orientation {
	switch {
	case det > 0:
		return CounterClockwise
	case det < 0:
		return Clockwise
	}
	return Collinear
}

// Where d lies relative to the circumcircle of the counterclockwise triangle t.
// Only meaningful for triangles without ghost vertices.
func Incircle(t Triangle, d Vertex) CircleOrientation {
	p := t.Points()
	return IncircleVertices(p[0], p[1], p[2], d)
}

// Where d lies relative to the circle through a, b and c, which must be given
// in counterclockwise order.
func IncircleVertices(a, b, c, d Vertex) CircleOrientation {
	exactInit()

	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	aLift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	bLift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	cLift := cdx*cdx + cdy*cdy

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift
	errBound := iccErrBoundA * permanent
	if det > errBound || -det > errBound {
		return circleOrientationOfSign(det)
	}
	return circleOrientationOfSign(float64(incircleExact(a, b, c, d)))
}

func incircleExact(a, b, c, d Vertex) int {
	dx, dy := rat(d.X), rat(d.Y)
	sub := func(x, y float64) (*big.Rat, *big.Rat) {
		return new(big.Rat).Sub(rat(x), dx), new(big.Rat).Sub(rat(y), dy)
	}
	adx, ady := sub(a.X, a.Y)
	bdx, bdy := sub(b.X, b.Y)
	cdx, cdy := sub(c.X, c.Y)

	cross := func(px, py, qx, qy *big.Rat) *big.Rat {
		l := new(big.Rat).Mul(px, qy)
		return l.Sub(l, new(big.Rat).Mul(qx, py))
	}
	lift := func(x, y *big.Rat) *big.Rat {
		l := new(big.Rat).Mul(x, x)
		return l.Add(l, new(big.Rat).Mul(y, y))
	}

	det := new(big.Rat).Mul(lift(adx, ady), cross(bdx, bdy, cdx, cdy))
	det.Add(det, new(big.Rat).Mul(lift(bdx, bdy), cross(cdx, cdy, adx, ady)))
	det.Add(det, new(big.Rat).Mul(lift(cdx, cdy), cross(adx, ady, bdx, bdy)))
	return det.Sign()
}

func circleOrientationOfSign(det float64) CircleOrientation {
	switch {
	case det > 0:
		return Inside
	case det < 0:
		return Outside
	}
	return On
}

func rat(f float64) *big.Rat {
	return new(big.Rat).SetFloat64(f)
}
