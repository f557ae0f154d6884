package mcclellan

// Test DFA constructors. All of them follow the package conventions: raw
// index 0 is the dead state, the last remapped symbol is TOP, and byte
// 0xFF is the TOP convention byte (so data-byte tests iterate 0..254).

// loopDFA builds a two-state DFA: state 1 loops on every byte except the
// given escape bytes, which all transition to the dead state.
func loopDFA(esc ...byte) *RawDFA {
	var remap [256]uint16
	for i := range remap {
		remap[i] = 1
	}
	for _, b := range esc {
		remap[b] = 0
	}
	remap[0xFF] = 2

	return &RawDFA{
		States: []RawState{
			{Next: []StateID{0, 0, 0}},
			{Next: []StateID{0, 1, 1}},
		},
		AlphaRemap:    remap,
		AlphaSize:     3,
		StartAnchored: 1,
	}
}

// escBytes returns the byte values 0..n-1, used to drive a state's escape
// count to an exact budget boundary.
func escBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// matchAnyADFA is the classic two-state "have we seen an 'a' yet"
// automaton: state 1 self-loops on everything and reports on 'a' having
// been reached.
func matchAnyADFA() *RawDFA {
	var remap [256]uint16
	for i := range remap {
		remap[i] = 1
	}
	remap['a'] = 0
	remap[0xFF] = 2

	return &RawDFA{
		States: []RawState{
			{Next: []StateID{0, 0, 0}},
			{Next: []StateID{1, 1, 1}, Reports: []ReportID{7}},
		},
		AlphaRemap:    remap,
		AlphaSize:     3,
		StartAnchored: 1,
		StartFloating: 1,
	}
}

// shermanDFA builds a six-state DFA over an eight-class alphabet where
// state 3's transition row agrees with state 2's on all but one symbol, so
// the Sherman selector compresses state 3 against state 2 with a
// single-override record. State 3 carries a daddy hint pointing at state 2
// the way the upstream construction would provide one.
func shermanDFA() *RawDFA {
	var remap [256]uint16
	for i := 0; i < 255; i++ {
		remap[i] = uint16(i & 7)
	}
	remap[0xFF] = 8

	raw := &RawDFA{
		States: []RawState{
			{Next: []StateID{0, 0, 0, 0, 0, 0, 0, 0, 0}},
			{Next: []StateID{2, 3, 0, 0, 0, 0, 0, 0, 0}},
			{Next: []StateID{4, 4, 4, 4, 4, 4, 4, 4, 0}},
			{Next: []StateID{4, 4, 4, 4, 4, 5, 4, 4, 0}},
			{Next: []StateID{4, 4, 4, 4, 4, 4, 4, 4, 0}},
			{Next: []StateID{5, 5, 5, 5, 5, 5, 5, 5, 0}},
		},
		AlphaRemap:    remap,
		AlphaSize:     9,
		StartAnchored: 1,
	}
	raw.States[3].Daddy = 2
	return raw
}

// runDaddySelection runs the Sherman selector over every state in input
// order, exactly as Compile does.
func runDaddySelection(raw *RawDFA, grey Grey, using8bit bool) *dfaInfo {
	info := newDFAInfo(raw)
	cyclic := isCyclicNear(raw, raw.StartAnchored)
	for i := 0; i < info.size(); i++ {
		findBetterDaddy(info, StateID(i), using8bit, cyclic, grey)
	}
	return info
}
