package mcclellan

import "math/bits"

// AlphaShift returns the bit-shift used to index packed transition rows:
// successor j of state with implementation index s lives at
// (s << AlphaShift) + j. Every packed transition table therefore reserves
// 1<<AlphaShift columns per row even though only ImplAlphaSize of them are
// ever read, leaving padding slots that must be present but unreferenced.
func (r *RawDFA) AlphaShift() uint8 {
	return alphaShiftFor(r.ImplAlphaSize())
}

func alphaShiftFor(implAlphaSize uint16) uint8 {
	if implAlphaSize < 2 {
		return 1
	}
	// Smallest k with 2^k >= implAlphaSize, i.e. the bit length of
	// implAlphaSize-1.
	return uint8(bits.Len16(implAlphaSize - 1))
}
