package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultFPS is the frame rate assumed when none is given.
const DefaultFPS = 24

var (
	// ErrFormat is returned when a timecode string has a field that
	// is not a number, or more than four fields.
	ErrFormat = errors.New("malformed timecode string")

	// ErrOperandType is returned when an operand is outside the set
	// accepted by the operator.
	ErrOperandType = errors.New("unsupported operand type")

	// ErrDivisionByZero is returned when a divisor coerces to a frame
	// count of zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Timecode is an instant in a media stream, stored as an absolute
// frame count at a frame rate. The count is the single source of
// truth; the hours, minutes, seconds, and frames fields are views
// decomposed from it on every read.
//
// The frame rate must be positive. It is not validated, matching the
// rest of the field setters, which accept any value and let the next
// read carry the consequences.
type Timecode struct {
	total int64
	fps   float64
}

// New parses tc at the given rate. A string with fewer than four
// fields fills in from the least significant end, so "04:03:22" is
// 4 minutes, 3 seconds, 22 frames. Fields are not bounds-checked:
// a frames field of 90 at 24 fps simply contributes 90 to the total.
func New(tc string, fps float64) (Timecode, error) {
	total, err := parse(tc, fps)
	if err != nil {
		return Timecode{}, err
	}
	return Timecode{total: total, fps: fps}, nil
}

// FromFrames returns the timecode n frames from zero. At 24 fps,
// frame 1010 is "00:00:42:02". A count of zero is honored as given.
func FromFrames(n int64, fps float64) Timecode {
	return Timecode{total: n, fps: fps}
}

// Default returns one hour at 24 fps, the conventional first frame
// of a reel.
func Default() Timecode {
	return Timecode{total: DefaultFPS * 3600, fps: DefaultFPS}
}

// parse converts a timecode string to a frame count. The rightmost
// field is always frames, then seconds, minutes, hours.
func parse(tc string, fps float64) (int64, error) {
	weights := []float64{1, fps, fps * 60, fps * 3600}
	fields := strings.Split(tc, ":")
	if len(fields) > len(weights) {
		return 0, errors.Wrapf(ErrFormat, "timecode %q has %d fields", tc, len(fields))
	}
	var total float64
	for i := range fields {
		field := fields[len(fields)-1-i]
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrFormat, "timecode %q: field %q is not a number", tc, field)
		}
		total += float64(v) * weights[i]
	}
	return int64(total), nil
}

// component whittles the total down by each base in order and returns
// the last quotient along with the leftover frames. Bases
// [fph, fpm, fps] yield the seconds quotient and the frames leftover;
// [fph, fpm] yield minutes. Division floors, so a negative total
// borrows from the most significant field and every other field reads
// back non-negative.
func (t Timecode) component(bases ...float64) (int64, float64) {
	left := float64(t.total)
	var q float64
	for _, b := range bases {
		q = math.Floor(left / b)
		left -= q * b
	}
	return int64(q), left
}

// Hours returns the hours portion of the timecode.
func (t Timecode) Hours() int64 {
	h, _ := t.component(t.FramesPerHour())
	return h
}

// Minutes returns the minutes portion of the timecode.
func (t Timecode) Minutes() int64 {
	m, _ := t.component(t.FramesPerHour(), t.FramesPerMinute())
	return m
}

// Seconds returns the seconds portion of the timecode.
func (t Timecode) Seconds() int64 {
	s, _ := t.component(t.FramesPerHour(), t.FramesPerMinute(), t.fps)
	return s
}

// Frames returns the frames portion of the timecode.
func (t Timecode) Frames() int64 {
	_, f := t.component(t.FramesPerHour(), t.FramesPerMinute(), t.fps)
	return int64(f)
}

// TotalFrames returns the absolute frame count, the rate-independent
// identity of the timecode.
func (t Timecode) TotalFrames() int64 { return t.total }

// FPS returns the frame rate.
func (t Timecode) FPS() float64 { return t.fps }

// FramesPerMinute returns the frame rate in the minute base.
func (t Timecode) FramesPerMinute() float64 { return t.fps * 60 }

// FramesPerHour returns the frame rate in the hour base.
func (t Timecode) FramesPerHour() float64 { return t.fps * 3600 }

// SetFrames replaces the frames portion. The write adjusts the total
// by the field's weighted delta only; if the new value exceeds the
// rate, the overflow shows up in seconds on the next read.
func (t *Timecode) SetFrames(f int64) {
	t.total += f - t.Frames()
}

// SetSeconds replaces the seconds portion.
func (t *Timecode) SetSeconds(s int64) {
	t.total += int64(float64(s-t.Seconds()) * t.fps)
}

// SetMinutes replaces the minutes portion. Values over 59 carry into
// hours on the next read, so setting minutes to 70 on 00:00:05:04
// reads back as 01:10:05:04.
func (t *Timecode) SetMinutes(m int64) {
	t.total += int64(float64(m-t.Minutes()) * t.FramesPerMinute())
}

// SetHours replaces the hours portion.
func (t *Timecode) SetHours(h int64) {
	t.total += int64(float64(h-t.Hours()) * t.FramesPerHour())
}

// SetTotalFrames replaces the absolute frame count.
func (t *Timecode) SetTotalFrames(n int64) { t.total = n }

// SetTimecode re-reads the string form at the current rate.
func (t *Timecode) SetTimecode(tc string) error {
	total, err := parse(tc, t.fps)
	if err != nil {
		return err
	}
	t.total = total
	return nil
}

// SetFPS changes the frame rate only. The total frame count stays
// fixed; the HH:MM:SS:FF view shifts to the new rate.
func (t *Timecode) SetFPS(fps float64) { t.fps = fps }

// SetFramesPerMinute back-computes the frame rate from its
// minute-base view, leaving the total frame count fixed.
func (t *Timecode) SetFramesPerMinute(fpm float64) { t.fps = fpm / 60 }

// SetFramesPerHour back-computes the frame rate from its hour-base
// view, leaving the total frame count fixed.
func (t *Timecode) SetFramesPerHour(fph float64) { t.fps = fph / 3600 }

// String renders the timecode as HH:MM:SS:FF. Fields are zero-padded
// to a minimum of two digits; hours may grow wider.
func (t Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", t.Hours(), t.Minutes(), t.Seconds(), t.Frames())
}

// GoString renders the constructor form, e.g.
//
// 	timecode.New("01:00:00:00", 24)
func (t Timecode) GoString() string {
	return fmt.Sprintf("timecode.New(%q, %g)", t.String(), t.fps)
}

// Display renders the long form, e.g.
//
// 	<Timecode: 01:00:00:00 @ 24 fps>
func (t Timecode) Display() string {
	return fmt.Sprintf("<Timecode: %s @ %g fps>", t.String(), t.fps)
}
