package tm1729

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAUsesLowSevenBits(t *testing.T) {
	for i, p := range tableA {
		assert.Zero(t, p&0x80, "entry %d", i)
	}
}

func TestTableBLeavesBitThreeUnused(t *testing.T) {
	for i, p := range tableB {
		assert.Zero(t, p&0x08, "entry %d", i)
	}
}

func TestDigitLookups(t *testing.T) {
	assert.Equal(t, byte(0x5F), digitA(0))
	assert.Equal(t, byte(0x7D), digitA(9))
	assert.Equal(t, byte(0xF5), digitB(0))
	assert.Equal(t, byte(0xB7), digitB(9))
	assert.Equal(t, byte(0x20), tableA[blank])
	assert.Equal(t, byte(0x02), tableB[blank])
}
