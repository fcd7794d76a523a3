package search

import "math/bits"

// wordSet is a fixed-size bitset over word indexes.
type wordSet []uint64

func newWordSet(n int) wordSet {
	return make(wordSet, (n+63)/64)
}

func (s wordSet) set(i int) {
	s[i/64] |= 1 << (i % 64)
}

func (s wordSet) clear(i int) {
	s[i/64] &^= 1 << (i % 64)
}

func (s wordSet) has(i int) bool {
	return s[i/64]&(1<<(i%64)) != 0
}

// union adds every member of other to s. Both sets must be the same size.
func (s wordSet) union(other wordSet) {
	for i := range s {
		s[i] |= other[i]
	}
}

// nextClear returns the first index >= from that is not in s, or n if none
// is below n.
func (s wordSet) nextClear(from, n int) int {
	for i := from; i < n; {
		w := ^s[i/64] >> (i % 64)
		if w == 0 {
			i = (i/64 + 1) * 64
			continue
		}
		i += bits.TrailingZeros64(w)
		if i < n {
			return i
		}
		break
	}
	return n
}

// appendMembers appends the members of s in ascending order to dst.
func (s wordSet) appendMembers(dst []int) []int {
	for wi, w := range s {
		for ; w != 0; w &= w - 1 {
			dst = append(dst, wi*64+bits.TrailingZeros64(w))
		}
	}
	return dst
}
