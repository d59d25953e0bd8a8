package tm1729

// MemorySize is the number of segment bytes written on every data transfer.
const MemorySize = 26

var defaultPattern = [MemorySize]byte{
	0x80, 0x00, 0x00, 0x80, 0x00, 0x80, 0x80, 0x80, 0x00, 0x10,
	0x00, 0x80, 0x00, 0x00, 0x80, 0x82, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// Memory is the segment state of the whole display. A byte may hold bits of
// several fields, so field writes only touch the bits their mask owns.
type Memory struct {
	buf [MemorySize]byte
}

// NewMemory returns a memory holding the startup pattern.
func NewMemory() *Memory {
	m := &Memory{}
	m.LoadDefault()
	return m
}

// Bytes returns the live buffer.
func (m *Memory) Bytes() []byte {
	return m.buf[:]
}

func (m *Memory) Snapshot() [MemorySize]byte {
	return m.buf
}

func (m *Memory) Clear() {
	for i := range m.buf {
		m.buf[i] = 0x00
	}
}

func (m *Memory) Fill() {
	for i := range m.buf {
		m.buf[i] = 0xFF
	}
}

func (m *Memory) LoadDefault() {
	m.buf = defaultPattern
}

// set replaces the bits of byte i selected by mask with bits, keeping the rest.
func (m *Memory) set(i int, mask, bits byte) {
	m.buf[i] = m.buf[i]&^mask | bits&mask
}

// or merges bits into byte i without clearing anything first.
func (m *Memory) or(i int, bits byte) {
	m.buf[i] |= bits
}
