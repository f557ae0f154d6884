package mcclellan

import "sort"

const maxShermanSelfLoop = 20

// isCyclicNear reports whether any state directly reachable from root has
// a successor that loops back to root or to itself, the crude "is this
// neighborhood hot" check that widens the Sherman veto window around the
// anchored start.
func isCyclicNear(raw *RawDFA, root StateID) bool {
	alphaSize := raw.ImplAlphaSize()
	rootState := &raw.States[root]
	for s := uint16(0); s < alphaSize; s++ {
		succID := rootState.Next[s]
		if succID == DeadStateID {
			continue
		}
		succ := &raw.States[succID]
		for t := uint16(0); t < alphaSize; t++ {
			if succ.Next[t] == root || succ.Next[t] == succID {
				return true
			}
		}
	}
	return false
}

func addIfEarlier(dest map[StateID]struct{}, candidate, max StateID) {
	if candidate < max {
		dest[candidate] = struct{}{}
	}
}

func addSuccessors(dest map[StateID]struct{}, source *RawState, alphaSize uint16, currID StateID) {
	for s := uint16(0); s < alphaSize; s++ {
		addIfEarlier(dest, source.Next[s], currID)
	}
}

// findBetterDaddy chooses the donor state currID's transition row should be
// diffed against and, if the resulting Sherman record would be profitable
// and safe, marks currID as a Sherman state.
//
// This assumes raw.States is in breadth-first order from StartAnchored:
// both veto windows below ban a contiguous *index* range under that
// assumption, and degrade silently (not incorrectly, just less
// effectively) if the assumption doesn't hold.
func findBetterDaddy(info *dfaInfo, currID StateID, using8Bit bool, anyCyclicNearAnchored bool, grey Grey) {
	if !grey.AllowShermanStates {
		return
	}

	raw := info.raw
	alphaSize := info.implAlphaSize

	width := uint16(2)
	if using8Bit {
		width = 1
	}

	if raw.StartAnchored != DeadStateID && anyCyclicNearAnchored &&
		currID < StateID(alphaSize)*3 {
		return
	}

	if raw.StartFloating != DeadStateID &&
		currID >= raw.StartFloating &&
		currID < raw.StartFloating+StateID(alphaSize)*3 {
		return
	}

	fullStateSize := width * alphaSize
	maxListLen := uint16(maxShermanListLen)
	if candidate := (fullStateSize - 2) / (width + 1); candidate < maxListLen {
		maxListLen = candidate
	}

	curr := info.state(currID)

	hinted := make(map[StateID]struct{})
	addIfEarlier(hinted, DeadStateID, currID)
	addIfEarlier(hinted, raw.StartAnchored, currID)
	addIfEarlier(hinted, raw.StartFloating, currID)

	myDaddy := curr.Daddy
	if myDaddy != DeadStateID {
		addIfEarlier(hinted, myDaddy, currID)
		addSuccessors(hinted, info.state(myDaddy), alphaSize, currID)
		myGranddaddy := info.state(myDaddy).Daddy
		if myGranddaddy != DeadStateID {
			addIfEarlier(hinted, myGranddaddy, currID)
			addSuccessors(hinted, info.state(myGranddaddy), alphaSize, currID)
		}
	}

	candidates := make([]StateID, 0, len(hinted))
	for c := range hinted {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	var bestScore uint16
	var bestDaddy StateID

	for _, donor := range candidates {
		if info.isSherman(donor) {
			continue
		}
		donorState := info.state(donor)
		var score uint16
		for s := uint16(0); s < alphaSize; s++ {
			if curr.Next[s] == donorState.Next[s] {
				score++
			}
		}

		if score > bestScore || (score == bestScore && donor < bestDaddy) {
			bestDaddy = donor
			bestScore = score
			if score == alphaSize {
				break
			}
		}
	}

	curr.Daddy = bestDaddy
	curr.daddytaken = bestScore

	if bestScore+maxListLen < alphaSize {
		return
	}

	if info.isSherman(curr.Daddy) {
		return
	}

	var selfLoopWidth uint32
	for i := 0; i < 256; i++ {
		if curr.Next[raw.AlphaRemap[i]] == currID {
			selfLoopWidth++
		}
	}

	if selfLoopWidth > maxShermanSelfLoop {
		return
	}

	curr.shermanState = true
}
