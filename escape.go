package mcclellan

// pairKey packs two escape bytes into a map key for the capped outs2 set.
type pairKey struct{ first, second byte }

// escapeInfo holds the escape sets of one state: the bytes that cause it
// to leave itself (outs), and the two-byte sequences whose second hop also
// diverges from the state's own transition on that second byte
// (outs2/outs2Single/outs2Broken).
type escapeInfo struct {
	outs       CharReach
	outs2      map[pairKey]struct{}
	outs2Single CharReach
	outs2Broken bool
}

// findEscapeStrings computes the escape sets for thisID. A first byte
// whose second-byte divergence set exceeds eight entries is promoted to
// outs2Single; more than eight surviving pairs in total breaks the
// two-byte sets entirely.
func findEscapeStrings(info *dfaInfo, thisID StateID) *escapeInfo {
	out := &escapeInfo{outs2: make(map[pairKey]struct{})}

	raw := info.state(thisID)
	remap := info.raw.AlphaRemap

	for i := 0; i < 256; i++ {
		nextOnI := raw.Next[remap[i]]
		if nextOnI == thisID {
			continue
		}
		out.outs.Set(byte(i))

		rawNext := info.state(nextOnI)
		if len(rawNext.Reports) > 0 && info.raw.Kind.GeneratesCallbacks() {
			out.outs2Broken = true
		}

		local := make(map[pairKey]struct{})
		if !out.outs2Broken {
			for j := 0; j < 256; j++ {
				rj := remap[j]
				if rawNext.Next[rj] == raw.Next[rj] {
					continue
				}
				local[pairKey{byte(i), byte(j)}] = struct{}{}
			}
		}

		if len(local) > 8 {
			out.outs2Single.Set(byte(i))
		} else {
			for k := range local {
				out.outs2[k] = struct{}{}
			}
		}

		if len(out.outs2) > 8 {
			out.outs2Broken = true
		}
	}

	return out
}
