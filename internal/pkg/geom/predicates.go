package geom

import "math/big"

// Relative error bound for the orientation determinant, (3 + 16*eps)*eps
// with eps = 2^-53, per Shewchuk's adaptive-precision predicates.
const orientErrBound = 3.3306690738754716e-16

// Orient2D returns the sign of the cross product (b-a) x (c-a): +1 when the
// triple a, b, c winds counter-clockwise, -1 when clockwise, 0 when exactly
// collinear. The fast floating-point evaluation is accepted only when its
// magnitude clears the error bound; results inside the uncertainty band are
// re-evaluated exactly, so near-collinear inputs never report a wrong sign.
func Orient2D(a, b, c Point) int {
	detLeft := (a[0] - c[0]) * (b[1] - c[1])
	detRight := (a[1] - c[1]) * (b[0] - c[0])
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sign(det)
		}
		detSum = -detLeft - detRight
	default:
		// detLeft == 0: det is just -detRight, computed exactly.
		return sign(det)
	}

	if det >= orientErrBound*detSum || -det >= orientErrBound*detSum {
		return sign(det)
	}
	return orient2DExact(a, b, c)
}

// orient2DExact evaluates the determinant in exact rational arithmetic.
// Every float64 converts to a big.Rat without loss, and the additions and
// multiplications below are exact, so the sign is always correct.
func orient2DExact(a, b, c Point) int {
	ax := new(big.Rat).SetFloat64(a[0])
	ay := new(big.Rat).SetFloat64(a[1])
	bx := new(big.Rat).SetFloat64(b[0])
	by := new(big.Rat).SetFloat64(b[1])
	cx := new(big.Rat).SetFloat64(c[0])
	cy := new(big.Rat).SetFloat64(c[1])

	acx := new(big.Rat).Sub(ax, cx)
	acy := new(big.Rat).Sub(ay, cy)
	bcx := new(big.Rat).Sub(bx, cx)
	bcy := new(big.Rat).Sub(by, cy)

	det := new(big.Rat).Sub(
		new(big.Rat).Mul(acx, bcy),
		new(big.Rat).Mul(acy, bcx),
	)
	return det.Sign()
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
