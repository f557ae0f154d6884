package mcclellan

import (
	"sort"

	"github.com/coregx/mcclellan/accelmask"
)

func buildShuftiMasks(cr CharReach) (lo, hi [16]byte, ok bool) {
	return accelmask.ShuftiBuildMasks(cr.Bytes())
}

func buildDoubleMasks(single CharReach, pairs map[pairKey]struct{}) (lo1, hi1, lo2, hi2 [16]byte) {
	ps := make([][2]byte, 0, len(pairs))
	for p := range pairs {
		ps = append(ps, [2]byte{p.first, p.second})
	}
	// Map iteration order is random; the mask bytes must not be.
	sort.Slice(ps, func(i, j int) bool {
		if ps[i][0] != ps[j][0] {
			return ps[i][0] < ps[j][0]
		}
		return ps[i][1] < ps[j][1]
	})
	return accelmask.ShuftiBuildDoubleMasks(single.Bytes(), ps)
}

func buildTruffleMasks(cr CharReach) (mask1, mask2 [16]byte) {
	return accelmask.TruffleBuildMasks(cr.Bytes())
}
