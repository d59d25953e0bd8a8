package tm1729

// blank is the table index of the dash pattern. Digit n lives at index n+1.
const blank = 0

// tableA holds digits wired to the low seven bits of a single byte.
var tableA = [11]byte{
	0x20, // -
	0x5F, // 0
	0x50, // 1
	0x6B, // 2
	0x79, // 3
	0x74, // 4
	0x3D, // 5
	0x3F, // 6
	0x58, // 7
	0x7F, // 8
	0x7D, // 9
}

// tableB holds digits whose segments straddle two bytes: the top nibble lands
// in the low nibble of one byte and the low three bits in bits 4-6 of the next.
var tableB = [11]byte{
	0x02, // -
	0xF5, // 0
	0x05, // 1
	0xD3, // 2
	0x97, // 3
	0x27, // 4
	0xB6, // 5
	0xF6, // 6
	0x15, // 7
	0xF7, // 8
	0xB7, // 9
}

func digitA(n int) byte {
	return tableA[n+1]
}

func digitB(n int) byte {
	return tableB[n+1]
}
