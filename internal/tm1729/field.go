package tm1729

import (
	"errors"
	"fmt"
	"strings"
)

// Field identifies one element of the display.
type Field int

const (
	Signal Field = iota
	Bell
	Hour
	Minute
	Score
	Battery
	Temp1
	Temp2
	Humidity
	CO2
)

var fieldNames = map[Field]string{
	Signal:   "signal",
	Bell:     "bell",
	Hour:     "hour",
	Minute:   "minute",
	Score:    "score",
	Battery:  "battery",
	Temp1:    "temp1",
	Temp2:    "temp2",
	Humidity: "humidity",
	CO2:      "co2",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField looks up a field by its name, ignoring case.
func ParseField(name string) (Field, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, fn := range fieldNames {
		if fn == n {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Fields lists every supported field in display order.
func Fields() []Field {
	return []Field{Signal, Bell, Hour, Minute, Score, Battery, Temp1, Temp2, Humidity, CO2}
}

// Range returns the inclusive bounds accepted for f.
func Range(f Field) (min, max int, err error) {
	d, ok := descriptors[f]
	if !ok {
		return 0, 0, &UnknownFieldError{Field: f}
	}
	return d.min, d.max, nil
}

var (
	ErrRange        = errors.New("value out of range")
	ErrUnknownField = errors.New("unknown field")
)

// RangeError is returned when a value falls outside the bounds of its field.
// The display is left untouched.
type RangeError struct {
	Field    Field
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("tm1729: %v value %d outside %d..%d", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// UnknownFieldError is returned for a field without a descriptor. The display
// is left untouched.
type UnknownFieldError struct {
	Field Field
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("tm1729: unknown field %v", e.Field)
}

func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
