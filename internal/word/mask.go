package word

import "math/bits"

// Alphabet is the number of letters a mask can hold.
const Alphabet = 26

// Mask is a set of letters a-z, bit 0 for 'a' through bit 25 for 'z'.
type Mask uint32

// MaskOf returns the letter mask of w. It returns false if w contains any
// character outside a-z.
func MaskOf(w string) (Mask, bool) {
	var m Mask
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			return 0, false
		}
		m |= 1 << (c - 'a')
	}
	return m, true
}

// Len returns the number of distinct letters in the mask.
func (m Mask) Len() int {
	return bits.OnesCount32(uint32(m))
}

// Has reports whether letter (0 for 'a') is in the mask.
func (m Mask) Has(letter int) bool {
	return m&(1<<letter) != 0
}

// Overlaps reports whether m and other share any letter.
func (m Mask) Overlaps(other Mask) bool {
	return m&other != 0
}

// Letters returns the letter indexes present in the mask in ascending order.
func (m Mask) Letters() []int {
	letters := make([]int, 0, m.Len())
	for v := uint32(m); v != 0; v &= v - 1 {
		letters = append(letters, bits.TrailingZeros32(v))
	}
	return letters
}

// String returns the letters of the mask in alphabetical order.
func (m Mask) String() string {
	b := make([]byte, 0, m.Len())
	for _, l := range m.Letters() {
		b = append(b, byte('a'+l))
	}
	return string(b)
}
