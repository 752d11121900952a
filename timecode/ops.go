package timecode

import "github.com/pkg/errors"

// Operand is a value that can stand in for a frame count on the
// right-hand side of timecode arithmetic. The set is closed: a plain
// frame count, a timecode string, or another Timecode.
type Operand interface{ operand() }

// Frames is a plain frame-count operand.
type Frames int64

// Text is a timecode-string operand. It is parsed at the left
// operand's frame rate.
type Text string

func (Frames) operand()   {}
func (Text) operand()     {}
func (Timecode) operand() {}

// coerce converts op to a frame count. A Timecode contributes its own
// total and its rate is ignored: frame counts are what get combined,
// not durations at a rate.
func (t Timecode) coerce(op Operand) (int64, error) {
	switch v := op.(type) {
	case Frames:
		return int64(v), nil
	case Text:
		return parse(string(v), t.fps)
	case Timecode:
		return v.total, nil
	}
	return 0, errors.Wrapf(ErrOperandType, "operand %T", op)
}

// Add returns a new timecode at t's rate, advanced by op.
func (t Timecode) Add(op Operand) (Timecode, error) {
	n, err := t.coerce(op)
	if err != nil {
		return Timecode{}, err
	}
	return Timecode{total: t.total + n, fps: t.fps}, nil
}

// Sub returns a new timecode at t's rate, moved back by op.
func (t Timecode) Sub(op Operand) (Timecode, error) {
	n, err := t.coerce(op)
	if err != nil {
		return Timecode{}, err
	}
	return Timecode{total: t.total - n, fps: t.fps}, nil
}

// Mul scales the frame count. Only a plain count is a valid scale
// factor; a timecode or string multiplier is rejected.
func (t Timecode) Mul(op Operand) (Timecode, error) {
	n, ok := op.(Frames)
	if !ok {
		return Timecode{}, errors.Wrapf(ErrOperandType, "cannot multiply a timecode by %T", op)
	}
	return Timecode{total: t.total * int64(n), fps: t.fps}, nil
}

// Div divides the frame count by a count or string divisor, flooring,
// and returns a new timecode at t's rate. A Timecode divisor is a
// ratio of two durations rather than a timecode; that case is Ratio.
func (t Timecode) Div(op Operand) (Timecode, error) {
	if _, ok := op.(Timecode); ok {
		return Timecode{}, errors.Wrap(ErrOperandType, "a timecode divisor yields a plain ratio, use Ratio")
	}
	n, err := t.coerce(op)
	if err != nil {
		return Timecode{}, err
	}
	if n == 0 {
		return Timecode{}, ErrDivisionByZero
	}
	return Timecode{total: floorDiv(t.total, n), fps: t.fps}, nil
}

// Ratio returns how many whole times o fits into t. Both sides are
// frame counts, so the result is dimensionless.
func (t Timecode) Ratio(o Timecode) (int64, error) {
	if o.total == 0 {
		return 0, ErrDivisionByZero
	}
	return floorDiv(t.total, o.total), nil
}

// Mod returns the remainder of t's frame count modulo o's, as a new
// timecode at t's rate.
func (t Timecode) Mod(o Timecode) (Timecode, error) {
	if o.total == 0 {
		return Timecode{}, ErrDivisionByZero
	}
	return Timecode{total: floorMod(t.total, o.total), fps: t.fps}, nil
}

// ModOp is Mod over the operand union. Unlike the other operators,
// counts and strings are not valid modulus operands and are rejected.
func (t Timecode) ModOp(op Operand) (Timecode, error) {
	o, ok := op.(Timecode)
	if !ok {
		return Timecode{}, errors.Wrapf(ErrOperandType, "cannot take a timecode modulo %T", op)
	}
	return t.Mod(o)
}

// Comparisons order by total frame count alone. The rate is display
// metadata: two timecodes at different rates with equal counts are
// the same instant in frames and compare equal.

// Equal reports whether t and o hold the same frame count.
func (t Timecode) Equal(o Timecode) bool { return t.total == o.total }

// Before reports whether t's frame count is below o's.
func (t Timecode) Before(o Timecode) bool { return t.total < o.total }

// After reports whether t's frame count is above o's.
func (t Timecode) After(o Timecode) bool { return t.total > o.total }

// Compare returns -1 when t is before o, +1 when after, 0 when equal.
func (t Timecode) Compare(o Timecode) int {
	switch {
	case t.total < o.total:
		return -1
	case t.total > o.total:
		return +1
	}
	return 0
}

// floorDiv rounds the quotient toward negative infinity, matching the
// decomposition arithmetic in component.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 { return a - floorDiv(a, b)*b }
