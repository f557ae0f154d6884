package mcclellan

// AccelType enumerates the acceleration primitives buildAccel can
// synthesize.
type AccelType uint8

const (
	AccelNone AccelType = iota
	AccelRedTape
	AccelVerm
	AccelVermNocase
	AccelDverm
	AccelDvermNocase
	AccelShufti
	AccelDshufti
	AccelTruffle
)

// String names the primitive.
func (t AccelType) String() string {
	switch t {
	case AccelNone:
		return "NONE"
	case AccelRedTape:
		return "RED_TAPE"
	case AccelVerm:
		return "VERM"
	case AccelVermNocase:
		return "VERM_NOCASE"
	case AccelDverm:
		return "DVERM"
	case AccelDvermNocase:
		return "DVERM_NOCASE"
	case AccelShufti:
		return "SHUFTI"
	case AccelDshufti:
		return "DSHUFTI"
	case AccelTruffle:
		return "TRUFFLE"
	default:
		return "UNKNOWN"
	}
}

// AccelAux is the tagged acceleration record buildAccel produces for one
// state. Go has no tagged union, so every variant's fields live side by
// side; Type selects which are meaningful (see image.go's putAccelAux for
// the packed wire form).
type AccelAux struct {
	Type AccelType

	// VERM / VERM_NOCASE / DVERM / DVERM_NOCASE
	C1, C2 byte

	// SHUFTI
	Lo, Hi [16]byte

	// DSHUFTI
	Lo1, Hi1, Lo2, Hi2 [16]byte

	// TRUFFLE
	Mask1, Mask2 [16]byte
}

const (
	accelMaxStopChar         = 160
	accelMaxFloatingStopChar = 192
)

// isAccel decides whether thisID is eligible for acceleration at all.
// The dead state is never accelerable; a
// callback-generating DFA can't accelerate a reporting state (the scan
// must stop to raise the callback); the budget is wider for the
// start-of-data-stream proxy, since it is the hottest state in the DFA.
func isAccel(raw *RawDFA, sdsOrProxy, thisID StateID) bool {
	if thisID == DeadStateID {
		return false
	}

	st := &raw.States[thisID]
	if raw.Kind.GeneratesCallbacks() && len(st.Reports) > 0 {
		return false
	}

	singleLimit := accelMaxStopChar
	if thisID == sdsOrProxy {
		singleLimit = accelMaxFloatingStopChar
	}

	var out CharReach
	remap := raw.AlphaRemap
	for i := 0; i < 256; i++ {
		if st.Next[remap[i]] != thisID {
			out.Set(byte(i))
		}
	}

	return out.Count() <= singleLimit
}

// hasSelfLoop reports whether s has any non-TOP transition back to itself.
func hasSelfLoop(raw *RawDFA, s StateID) bool {
	topRemap := raw.AlphaRemap[0xFF]
	next := raw.States[s].Next
	for i, succ := range next {
		if uint16(i) != topRemap && succ == s {
			return true
		}
	}
	return false
}

// FindSDSProxy locates the start-of-data-stream proxy: the state the
// scanner is expected to spend the most time in during the high-fanout
// prefix of a search, which earns a looser acceleration budget.
//
// If StartFloating is set, it is definitionally the proxy. Otherwise this
// walks outward, breadth-first, from StartAnchored looking for a
// self-looping neighbor. If the walk exhausts the reachable graph without
// finding one, it returns DeadStateID, which silently reverts every
// state's acceleration budget to the tighter limit for the whole DFA: no
// hot loop exists for the looser budget to serve.
func FindSDSProxy(raw *RawDFA) StateID {
	if raw.StartFloating != DeadStateID {
		return raw.StartFloating
	}

	s := raw.StartAnchored
	if hasSelfLoop(raw, s) {
		return s
	}

	topRemap := raw.AlphaRemap[0xFF]
	seen := map[StateID]struct{}{s: {}}

	for {
		next := raw.States[s].Next
		for i, t := range next {
			if uint16(i) == topRemap || t == DeadStateID {
				continue
			}
			if hasSelfLoop(raw, t) {
				return t
			}
		}

		var nextBasis StateID
		found := false
		for i, tt := range next {
			if uint16(i) == topRemap || tt == DeadStateID {
				continue
			}
			if _, ok := seen[tt]; ok {
				continue
			}
			nextBasis = tt
			found = true
			break
		}

		if !found {
			return DeadStateID
		}

		s = nextBasis
		seen[s] = struct{}{}
	}
}

// populateAccelerationInfo marks every eligible state accelerable and
// returns the count marked. A no-op when Grey.AccelerateDFA is off.
func populateAccelerationInfo(info *dfaInfo, grey Grey) uint32 {
	if !grey.AccelerateDFA {
		return 0
	}

	sdsProxy := FindSDSProxy(info.raw)

	var count uint32
	for i := 0; i < info.size(); i++ {
		if isAccel(info.raw, sdsProxy, StateID(i)) {
			count++
			info.state(StateID(i)).accelerable = true
		}
	}
	return count
}

// buildAccel synthesizes the single acceleration primitive for thisID.
// The double-byte primitives are tried first: skipping on a two-byte
// sequence is strictly stronger than skipping on its first byte alone.
func buildAccel(info *dfaInfo, thisID StateID) AccelAux {
	out := findEscapeStrings(info, thisID)

	if !out.outs2Broken && out.outs2Single.None() && len(out.outs2) == 1 {
		var p pairKey
		for k := range out.outs2 {
			p = k
		}
		return AccelAux{Type: AccelDverm, C1: p.first, C2: p.second}
	}

	if !out.outs2Broken && out.outs2Single.None() && (len(out.outs2) == 2 || len(out.outs2) == 4) {
		ok := true
		var firstC, secondC byte
		first := true
		for p := range out.outs2 {
			fc := p.first &^ CaseClear
			sc := p.second &^ CaseClear
			if first {
				firstC, secondC = fc, sc
				first = false
				continue
			}
			if fc != firstC || sc != secondC {
				ok = false
				break
			}
		}
		if ok {
			return AccelAux{Type: AccelDvermNocase, C1: firstC, C2: secondC}
		}
	}

	if !out.outs2Broken &&
		out.outs2Single.Count()+len(out.outs2) <= 8 &&
		out.outs2Single.Count() < len(out.outs2) &&
		out.outs2Single.Count() <= 2 &&
		len(out.outs2) > 0 {
		lo1, hi1, lo2, hi2 := buildDoubleMasks(out.outs2Single, out.outs2)
		return AccelAux{Type: AccelDshufti, Lo1: lo1, Hi1: hi1, Lo2: lo2, Hi2: hi2}
	}

	if out.outs.None() {
		return AccelAux{Type: AccelRedTape}
	}

	if out.outs.Count() == 1 {
		return AccelAux{Type: AccelVerm, C1: byte(out.outs.FindFirst())}
	}

	if out.outs.Count() == 2 && out.outs.IsCaselessChar() {
		return AccelAux{Type: AccelVermNocase, C1: byte(out.outs.FindFirst()) &^ CaseClear}
	}

	if out.outs.Count() > accelMaxFloatingStopChar {
		return AccelAux{Type: AccelNone}
	}

	if lo, hi, ok := buildShuftiMasks(out.outs); ok {
		return AccelAux{Type: AccelShufti, Lo: lo, Hi: hi}
	}

	mask1, mask2 := buildTruffleMasks(out.outs)
	return AccelAux{Type: AccelTruffle, Mask1: mask1, Mask2: mask2}
}
