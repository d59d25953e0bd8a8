package tm1729

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tt := []struct {
		input    string
		expected Field
	}{
		{"signal", Signal},
		{"Bell", Bell},
		{"HOUR", Hour},
		{" minute ", Minute},
		{"score", Score},
		{"battery", Battery},
		{"temp1", Temp1},
		{"temp2", Temp2},
		{"humidity", Humidity},
		{"co2", CO2},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			f, err := ParseField(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestParseFieldUnknown(t *testing.T) {
	_, err := ParseField("pressure")
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Contains(t, err.Error(), "pressure")
}

func TestFieldStringRoundTrip(t *testing.T) {
	for _, f := range Fields() {
		p, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, p)
	}
	assert.Equal(t, "field(42)", Field(42).String())
}

func TestRange(t *testing.T) {
	min, max, err := Range(Temp2)
	require.NoError(t, err)
	assert.Equal(t, -9, min)
	assert.Equal(t, 99, max)

	_, _, err = Range(Field(-1))
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestErrorMessages(t *testing.T) {
	err := &RangeError{Field: Hour, Value: 24, Min: 0, Max: 23}
	assert.Equal(t, "tm1729: hour value 24 outside 0..23", err.Error())

	u := &UnknownFieldError{Field: Field(12)}
	assert.Equal(t, "tm1729: unknown field field(12)", u.Error())
}
