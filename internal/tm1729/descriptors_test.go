package tm1729

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryFieldHasDescriptor(t *testing.T) {
	for _, f := range Fields() {
		_, ok := descriptors[f]
		assert.True(t, ok, "%v", f)
	}
	assert.Len(t, descriptors, len(Fields()))
}

func TestDescriptorMasksAreDisjoint(t *testing.T) {
	var owner [MemorySize][8]string

	for _, f := range Fields() {
		for _, s := range descriptors[f].spans {
			require.True(t, s.index >= 0 && s.index < MemorySize, "%v index %d", f, s.index)
			for bit := 0; bit < 8; bit++ {
				if s.mask&(1<<bit) == 0 {
					continue
				}
				assert.Empty(t, owner[s.index][bit], "%v and %s share byte %d bit %d", f, owner[s.index][bit], s.index, bit)
				owner[s.index][bit] = f.String()
			}
		}
	}
}

// Encoding any valid value may only change bits the field declares.
func TestEncodeStaysInsideMask(t *testing.T) {
	starts := map[string]func(m *Memory){
		"cleared": (*Memory).Clear,
		"filled":  (*Memory).Fill,
		"default": (*Memory).LoadDefault,
	}

	for _, f := range Fields() {
		d := descriptors[f]
		var owned [MemorySize]byte
		for _, s := range d.spans {
			owned[s.index] |= s.mask
		}

		for name, start := range starts {
			t.Run(f.String()+"/"+name, func(t *testing.T) {
				for v := d.min; v <= d.max; v++ {
					m := &Memory{}
					start(m)
					before := m.Snapshot()
					d.encode(m, v)
					after := m.Snapshot()

					for i := range before {
						if before[i]&^owned[i] != after[i]&^owned[i] {
							t.Fatalf("value %d changed byte %d outside mask: %02x -> %02x", v, i, before[i], after[i])
						}
					}
				}
			})
		}
	}
}
