package mathx

import "errors"

// ErrZeroDenominator is returned for rationals with denominator zero.
var ErrZeroDenominator = errors.New("mathx: zero denominator")

//snip:ratio
//snip:include gcd
// Ratio is an exact rational number kept irreducible with a positive
// denominator.
type Ratio struct {
	num int64
	den int64
}

//snip:ratio
//snip:include gcd
// NewRatio returns num/den in normalized form.
func NewRatio(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, ErrZeroDenominator
	}
	g := Gcd(num, den)
	num /= g
	den /= g
	if den < 0 {
		num, den = -num, -den
	}
	return Ratio{num: num, den: den}, nil
}

//snip:ratio
// RatioFromInt returns n as a rational.
func RatioFromInt(n int64) Ratio {
	return Ratio{num: n, den: 1}
}

//snip:ratio
// Num returns the normalized numerator.
func (r Ratio) Num() int64 {
	return r.num
}

//snip:ratio
// Den returns the normalized denominator.
func (r Ratio) Den() int64 {
	return r.den
}

//snip:ratio
// Inverse returns 1/r, or an error when r is zero.
func (r Ratio) Inverse() (Ratio, error) {
	return NewRatio(r.den, r.num)
}

//snip:ratio
// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, den: r.den}
}

//snip:ratio
// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	res, _ := NewRatio(r.num*o.den+o.num*r.den, r.den*o.den)
	return res
}

//snip:ratio
// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	return r.Add(o.Neg())
}

//snip:ratio
// Mul returns r * o.
func (r Ratio) Mul(o Ratio) Ratio {
	res, _ := NewRatio(r.num*o.num, r.den*o.den)
	return res
}

//snip:ratio
// Div returns r / o, or an error when o is zero.
func (r Ratio) Div(o Ratio) (Ratio, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Ratio{}, err
	}
	return r.Mul(inv), nil
}

//snip:ratio
// Cmp compares r and o, returning -1, 0 or 1. Cross multiplication over a
// shared gcd keeps the products small.
func (r Ratio) Cmp(o Ratio) int {
	g := Gcd(r.den, o.den)
	lhs := o.den / g * r.num
	rhs := r.den / g * o.num
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}
