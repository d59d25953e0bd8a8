package tm1729

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMemoryHoldsDefault(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, defaultPattern, m.Snapshot())
	assert.Len(t, m.Bytes(), MemorySize)
}

func TestMemoryClearFill(t *testing.T) {
	m := NewMemory()

	m.Fill()
	for i, b := range m.Bytes() {
		assert.Equal(t, byte(0xFF), b, "byte %d", i)
	}

	m.Clear()
	for i, b := range m.Bytes() {
		assert.Equal(t, byte(0x00), b, "byte %d", i)
	}

	m.LoadDefault()
	assert.Equal(t, defaultPattern, m.Snapshot())
}

func TestMemoryBytesIsLive(t *testing.T) {
	m := NewMemory()
	m.Bytes()[3] = 0x42
	assert.Equal(t, byte(0x42), m.Snapshot()[3])
}

func TestMemorySet(t *testing.T) {
	tt := []struct {
		name   string
		before byte
		mask   byte
		bits   byte
		after  byte
	}{
		{"replace masked bits", 0xFF, 0x0F, 0x05, 0xF5},
		{"keep unmasked bits", 0x80, 0x7F, 0x5F, 0xDF},
		{"ignore bits outside mask", 0x00, 0x70, 0xFF, 0x70},
		{"clear masked bits", 0xFF, 0xE0, 0x00, 0x1F},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := &Memory{}
			m.buf[5] = tc.before
			m.set(5, tc.mask, tc.bits)
			assert.Equal(t, tc.after, m.buf[5])
		})
	}
}

func TestMemoryOr(t *testing.T) {
	m := &Memory{}
	m.buf[1] = 0x7F
	m.or(1, 0x50)
	assert.Equal(t, byte(0x7F), m.buf[1])

	m.buf[2] = 0x80
	m.or(2, 0x20)
	assert.Equal(t, byte(0xA0), m.buf[2])
}
