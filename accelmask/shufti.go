// Package accelmask synthesizes the lookup masks consumed by the
// shufti and truffle scanning kernels. Every function here is pure: a
// character class in, mask bytes out. The kernels themselves (and the
// CPU-feature dispatch that picks between their SSSE3/AVX2/scalar forms)
// live with the runtime, not here.
package accelmask

// ShuftiBuildMasks builds the nibble-indexed mask pair for a single-byte
// shufti scan over chars. A byte c is in the class iff
// lo[c&0xf] & hi[c>>4] != 0.
//
// Bytes sharing a high nibble form a group; groups with identical
// low-nibble sets share one of the eight available mask bits. Returns
// ok=false when the class needs more than eight distinct groups, in which
// case the caller should fall back to truffle.
func ShuftiBuildMasks(chars []byte) (lo, hi [16]byte, ok bool) {
	var loSets [16]uint16
	for _, c := range chars {
		loSets[c>>4] |= 1 << (c & 0xf)
	}

	// bucketOf maps a distinct low-nibble set to its assigned mask bit.
	bucketOf := make(map[uint16]uint8)
	for h := 0; h < 16; h++ {
		set := loSets[h]
		if set == 0 {
			continue
		}
		b, seen := bucketOf[set]
		if !seen {
			if len(bucketOf) >= 8 {
				return lo, hi, false
			}
			b = uint8(len(bucketOf))
			bucketOf[set] = b
		}
		hi[h] |= 1 << b
		for l := 0; l < 16; l++ {
			if set&(1<<l) != 0 {
				lo[l] |= 1 << b
			}
		}
	}

	return lo, hi, true
}

// ShuftiBuildDoubleMasks builds the two mask pairs for a double-shufti
// scan: a position matches iff its byte matches the first pair and the
// following byte matches the second. onechar entries are single-byte
// escapes that must match regardless of the following byte; each gets a
// bucket whose second-byte mask accepts everything. twochar entries each
// occupy their own bucket, so the pair match is exact.
//
// The caller guarantees len(onechar)+len(twochar) <= 8.
func ShuftiBuildDoubleMasks(onechar []byte, twochar [][2]byte) (lo1, hi1, lo2, hi2 [16]byte) {
	bucket := uint8(0)

	for _, c := range onechar {
		lo1[c&0xf] |= 1 << bucket
		hi1[c>>4] |= 1 << bucket
		for n := 0; n < 16; n++ {
			lo2[n] |= 1 << bucket
			hi2[n] |= 1 << bucket
		}
		bucket++
	}

	for _, p := range twochar {
		lo1[p[0]&0xf] |= 1 << bucket
		hi1[p[0]>>4] |= 1 << bucket
		lo2[p[1]&0xf] |= 1 << bucket
		hi2[p[1]>>4] |= 1 << bucket
		bucket++
	}

	return lo1, hi1, lo2, hi2
}
