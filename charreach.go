package mcclellan

import "math/bits"

// CaseClear masks off the ASCII case bit (0x20); `b &^ CaseClear` clears it,
// matching the CASE_CLEAR convention used throughout the acceleration
// analyzer when folding a byte to its uppercase form for a caseless check.
const CaseClear byte = 0x20

// CharReach is a dense set over the 256 raw byte values, used to describe
// which bytes cause a state to "escape" (leave) itself. It is the Go
// equivalent of a fixed-width std::bitset<256>.
type CharReach [4]uint64

// Set adds b to the set.
func (c *CharReach) Set(b byte) {
	c[b>>6] |= 1 << (b & 63)
}

// Test reports whether b is in the set.
func (c *CharReach) Test(b byte) bool {
	return c[b>>6]&(1<<(b&63)) != 0
}

// Count returns the number of bytes in the set.
func (c *CharReach) Count() int {
	n := 0
	for _, w := range c {
		n += bits.OnesCount64(w)
	}
	return n
}

// None reports whether the set is empty.
func (c *CharReach) None() bool {
	return c[0] == 0 && c[1] == 0 && c[2] == 0 && c[3] == 0
}

// FindFirst returns the lowest byte value in the set, or 256 if the set is
// empty.
func (c *CharReach) FindFirst() int {
	for w := 0; w < 4; w++ {
		if c[w] != 0 {
			return w*64 + bits.TrailingZeros64(c[w])
		}
	}
	return 256
}

// Bytes returns the sorted slice of bytes in the set.
func (c *CharReach) Bytes() []byte {
	out := make([]byte, 0, c.Count())
	for w := 0; w < 4; w++ {
		word := c[w]
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			out = append(out, byte(w*64+bit))
			word &^= 1 << bit
		}
	}
	return out
}

// IsCaselessChar reports whether the set contains exactly the two bytes
// that are the upper- and lower-case forms of the same ASCII letter, the
// precondition for a caseless vermicelli scan.
func (c *CharReach) IsCaselessChar() bool {
	if c.Count() != 2 {
		return false
	}
	bs := c.Bytes()
	a, b := bs[0], bs[1]
	return (a^b) == CaseClear && isASCIIAlpha(a) && isASCIIAlpha(b)
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
