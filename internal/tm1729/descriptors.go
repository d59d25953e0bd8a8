package tm1729

// span is a set of bits in one memory byte owned by a field.
type span struct {
	index int
	mask  byte
}

type descriptor struct {
	min, max int
	spans    []span
	encode   func(m *Memory, v int)
}

var descriptors = map[Field]descriptor{
	Signal: tiered(
		[]span{{9, 0xE0}, {13, 0x80}, {12, 0x80}},
		[][]byte{
			{0x00, 0x00, 0x00},
			{0x20, 0x00, 0x00},
			{0x60, 0x00, 0x00},
			{0xE0, 0x00, 0x00},
			{0xE0, 0x80, 0x00},
			{0xE0, 0x80, 0x80},
		},
	),
	Bell: tiered(
		[]span{{10, 0x80}},
		[][]byte{{0x00}, {0x80}},
	),
	Hour:   split(9, 23),
	Minute: split(11, 59),
	Score:  split(13, 99),
	Battery: tiered(
		[]span{{4, 0x80}, {15, 0x0D}},
		[][]byte{
			{0x00, 0x00},
			{0x80, 0x00},
			{0x80, 0x08},
			{0x80, 0x09},
			{0x80, 0x0D},
		},
	),
	Temp1:    pair(8, 7, -9, 99),
	Temp2:    pair(6, 5, -9, 99),
	Humidity: pair(4, 3, 0, 99),
	CO2: {
		min:   0,
		max:   999,
		spans: []span{{2, 0x7F}, {1, 0x7F}, {0, 0x7F}},
		encode: func(m *Memory, v int) {
			// hundreds and tens are merged onto whatever is already lit
			m.or(2, digitA(v/100))
			m.or(1, digitA(v/10%10))
			m.set(0, 0x7F, digitA(v%10))
		},
	},
}

// tiered maps each level, starting at zero, to the bits of every span.
func tiered(spans []span, levels [][]byte) descriptor {
	return descriptor{
		min:   0,
		max:   len(levels) - 1,
		spans: spans,
		encode: func(m *Memory, v int) {
			for i, s := range spans {
				m.set(s.index, s.mask, levels[v][i])
			}
		},
	}
}

// split encodes two table B digits over the three bytes starting at base.
func split(base, max int) descriptor {
	return descriptor{
		min:   0,
		max:   max,
		spans: []span{{base, 0x0F}, {base + 1, 0x7F}, {base + 2, 0x70}},
		encode: func(m *Memory, v int) {
			hi, lo := digitB(v/10), digitB(v%10)
			m.set(base, 0x0F, hi>>4)
			m.set(base+1, 0x7F, (hi&0x07)<<4|lo>>4)
			m.set(base+2, 0x70, (lo&0x07)<<4)
		},
	}
}

// pair encodes two table A digits, keeping bit 7 of both bytes. Negative
// values show a dash in the tens position and the magnitude in the units.
func pair(tens, units, min, max int) descriptor {
	return descriptor{
		min:   min,
		max:   max,
		spans: []span{{tens, 0x7F}, {units, 0x7F}},
		encode: func(m *Memory, v int) {
			var t, u byte
			if v < 0 {
				t, u = tableA[blank], digitA(-v)
			} else {
				t, u = digitA(v/10), digitA(v%10)
			}
			m.set(tens, 0x7F, t)
			m.set(units, 0x7F, u)
		},
	}
}
