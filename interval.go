package openfigi

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// maxDateSpan is the widest expiration/maturity window the API accepts when
// both bounds of a date interval are set.
const maxDateSpan = 365 * 24 * time.Hour

// Date is a calendar day. It serializes to YYYY-MM-DD on the wire.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Day returns a Date pointer suitable as an interval bound.
func Day(year int, month time.Month, day int) *Date {
	d := NewDate(year, month, day)
	return &d
}

// Number returns a float64 pointer suitable as an interval bound.
func Number(v float64) *float64 {
	return &v
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	t, err := time.Parse(`"`+time.DateOnly+`"`, string(data))
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}
	d.Time = t
	return nil
}

// NumberInterval is a numeric range [a, b] where a, b are numbers or null.
// At least one bound must be a number. When both are numbers, a <= b.
// [a, null] means [a, ∞) and [null, b] means (-∞, b].
type NumberInterval [2]*float64

// NewNumberInterval validates the pair of bounds and returns the interval.
func NewNumberInterval(low, high *float64) (NumberInterval, error) {
	i := NumberInterval{low, high}
	if err := i.Validate(); err != nil {
		return NumberInterval{}, err
	}
	return i, nil
}

func (i NumberInterval) Validate() error {
	return checkBounds(i[0], i[1])
}

// DateInterval is a date range [a, b] where a, b are dates or null.
// At least one bound must be a date. When both are dates, they must be no
// more than a year apart. [a, null] means [a, a + 1Y] and [null, b] means
// [b - 1Y, b].
type DateInterval [2]*Date

// NewDateInterval validates the pair of bounds and returns the interval.
func NewDateInterval(low, high *Date) (DateInterval, error) {
	i := DateInterval{low, high}
	if err := i.Validate(); err != nil {
		return DateInterval{}, err
	}
	return i, nil
}

func (i DateInterval) Validate() error {
	if i[0] == nil && i[1] == nil {
		return errors.New("at least one bound must be set")
	}
	if i[0] != nil && i[1] != nil && i[1].Sub(i[0].Time) > maxDateSpan {
		return fmt.Errorf("bounds must be no more than a year apart: %s to %s",
			i[0].Format(time.DateOnly), i[1].Format(time.DateOnly))
	}
	return nil
}

// checkBounds rejects the [null, null] pair and, when both bounds are set,
// enforces ascending order.
func checkBounds[T constraints.Ordered](low, high *T) error {
	if low == nil && high == nil {
		return errors.New("at least one bound must be set")
	}
	if low != nil && high != nil && *low > *high {
		return fmt.Errorf("bounds must be in ascending order: %v > %v", *low, *high)
	}
	return nil
}
