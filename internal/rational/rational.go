// Package rational implements the calculator's exact-rational numeric
// kernel: an arbitrary-precision signed fraction that stays normalized
// (denominator positive, gcd(numerator, denominator) = 1) after every
// operation.
package rational

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Rational is an arbitrary-precision exact fraction. The zero value is
// not valid; use New, NewInt, FromFloat or FromString.
type Rational struct {
	r big.Rat
}

// New builds num/den, failing if den is zero. The result is reduced.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("rational: zero denominator")
	}
	var out Rational
	out.r.SetFrac64(num, den)
	return out, nil
}

// NewInt builds the integer n as a rational with denominator 1.
func NewInt(n int64) Rational {
	var out Rational
	out.r.SetInt64(n)
	return out
}

// FromFloat extracts the exact rational value of an IEEE-754 double.
// Because float64 is itself a binary fraction, this conversion is exact:
// it does not round, it reproduces the float's own value precisely.
func FromFloat(f float64) (Rational, error) {
	var out Rational
	if out.r.SetFloat64(f) == nil {
		return Rational{}, fmt.Errorf("rational: %v is not a finite number", f)
	}
	return out, nil
}

// FromString parses a decimal literal ("1.5", "-0.25") into the exact
// rational value of its nearest float64, so "1.5" is exactly 3/2 but
// "0.1" is not 1/10. It does not accept fraction syntax ("3/4"); the
// tokenizer is responsible for splitting fraction literals before
// calling into the numeric kernel (see internal/lexer).
func FromString(s string) (Rational, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("rational: bad decimal literal %q", s)
	}
	return FromFloat(f)
}

// Add returns a+b.
func Add(a, b Rational) Rational {
	var out Rational
	out.r.Add(&a.r, &b.r)
	return out
}

// Sub returns a-b.
func Sub(a, b Rational) Rational {
	var out Rational
	out.r.Sub(&a.r, &b.r)
	return out
}

// Mul returns a*b.
func Mul(a, b Rational) Rational {
	var out Rational
	out.r.Mul(&a.r, &b.r)
	return out
}

// Div returns a/b, failing if b is zero.
func Div(a, b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, fmt.Errorf("rational: division by zero")
	}
	var out Rational
	out.r.Quo(&a.r, &b.r)
	return out, nil
}

// Rem returns the remainder of floored division of a by b, failing
// if b is zero. Both operands need not be integral; the remainder is
// a - b*floor(a/b), so it takes the sign of b.
func Rem(a, b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, fmt.Errorf("rational: division by zero")
	}
	q := new(big.Rat).Quo(&a.r, &b.r)
	fq := floorRat(q)
	var out Rational
	out.r.Sub(&a.r, out.r.Mul(&b.r, fq))
	return out, nil
}

// Neg returns -a.
func Neg(a Rational) Rational {
	var out Rational
	out.r.Neg(&a.r)
	return out
}

// Inv returns 1/a, failing if a is zero.
func Inv(a Rational) (Rational, error) {
	if a.IsZero() {
		return Rational{}, fmt.Errorf("rational: division by zero")
	}
	var out Rational
	out.r.Inv(&a.r)
	return out, nil
}

// IsZero reports whether a is exactly zero.
func (a Rational) IsZero() bool {
	return a.r.Sign() == 0
}

// IsInteger reports whether a has denominator 1.
func (a Rational) IsInteger() bool {
	return a.r.IsInt()
}

// Sign returns -1, 0, or 1 according to the sign of a.
func (a Rational) Sign() int {
	return a.r.Sign()
}

// Equal reports whether a == b.
func Equal(a, b Rational) bool {
	return a.r.Cmp(&b.r) == 0
}

// Compare returns -1, 0, or 1 as a<b, a==b, a>b.
func Compare(a, b Rational) int {
	return a.r.Cmp(&b.r)
}

// Float64 converts a to the nearest float64, for transcendental
// fallbacks (see internal/builtins/transcendental.go). This is the
// single documented lossy conversion in the numeric kernel.
func (a Rational) Float64() float64 {
	f, _ := a.r.Float64()
	return f
}

// Floor returns the greatest integral Rational <= a.
func Floor(a Rational) Rational {
	var out Rational
	out.r.Set(floorRat(&a.r))
	return out
}

// Ceil returns the least integral Rational >= a.
func Ceil(a Rational) Rational {
	f := floorRat(&a.r)
	if f.Cmp(&a.r) == 0 {
		var out Rational
		out.r.Set(f)
		return out
	}
	var out Rational
	out.r.Add(f, big.NewRat(1, 1))
	return out
}

// Round returns the nearest integral Rational, rounding halves away
// from zero.
func Round(a Rational) Rational {
	if a.Sign() >= 0 {
		half := Add(a, mustRat(1, 2))
		return Floor(half)
	}
	half := Sub(a, mustRat(1, 2))
	return Ceil(half)
}

func mustRat(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err) // cannot happen: den is a literal non-zero constant
	}
	return r
}

// floorRat computes floor(q) via Euclidean division of the numerator by
// the denominator, per the spec's resolution of the round/floor/ceiling
// open question (spec.md §9).
func floorRat(q *big.Rat) *big.Rat {
	num := q.Num()
	den := q.Denom()
	quot := new(big.Int)
	rem := new(big.Int)
	quot.QuoRem(num, den, rem)
	if rem.Sign() != 0 && (rem.Sign() < 0) != (den.Sign() < 0) {
		quot.Sub(quot, big.NewInt(1))
	}
	return new(big.Rat).SetInt(quot)
}

// String renders a in canonical "p/q" form, or "p" when the
// denominator is 1. Denominators are always positive by construction.
func (a Rational) String() string {
	if a.r.IsInt() {
		return a.r.Num().String()
	}
	return a.r.RatString()
}

// Num and Denom expose the normalized numerator/denominator, e.g. for
// matrix bounds checks that need an int index.
func (a Rational) Num() *big.Int   { return a.r.Num() }
func (a Rational) Denom() *big.Int { return a.r.Denom() }

// Int64 returns a as an int64, failing if a is not integral or does
// not fit. Used by range-list, matrix indices, pow exponents and
// odd?/even?.
func (a Rational) Int64() (int64, error) {
	if !a.IsInteger() {
		return 0, fmt.Errorf("rational: %s is not an integer", a.String())
	}
	if !a.r.Num().IsInt64() {
		return 0, fmt.Errorf("rational: %s overflows int64", a.String())
	}
	return a.r.Num().Int64(), nil
}

// ParseFraction parses an "intA/intB" literal, as recognized by the
// tokenizer's number grammar (spec.md §4.1): at most one '/', no '.'.
func ParseFraction(word string) (Rational, error) {
	idx := strings.IndexByte(word, '/')
	if idx <= 0 || idx == len(word)-1 {
		return Rational{}, fmt.Errorf("rational: malformed fraction %q", word)
	}
	numStr, denStr := word[:idx], word[idx+1:]
	if strings.IndexByte(denStr, '/') != -1 {
		return Rational{}, fmt.Errorf("rational: malformed fraction %q", word)
	}
	num, ok := new(big.Int).SetString(numStr, 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: malformed fraction %q", word)
	}
	den, ok := new(big.Int).SetString(denStr, 10)
	if !ok {
		return Rational{}, fmt.Errorf("rational: malformed fraction %q", word)
	}
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("rational: division by zero")
	}
	var out Rational
	out.r.SetFrac(num, den)
	return out, nil
}
