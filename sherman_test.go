package mcclellan

import "testing"

func TestFindBetterDaddyMarksSherman(t *testing.T) {
	raw := shermanDFA()
	if isCyclicNear(raw, raw.StartAnchored) {
		t.Fatal("test DFA should not be cyclic near the anchored start")
	}

	info := runDaddySelection(raw, DefaultGrey(), false)

	if !info.isSherman(3) {
		t.Fatal("state 3 should be a Sherman state")
	}
	if got := raw.States[3].Daddy; got != 2 {
		t.Errorf("state 3 daddy = %d, want 2", got)
	}
	if got := raw.States[3].daddytaken; got != 7 {
		t.Errorf("state 3 daddytaken = %d, want 7", got)
	}

	for _, id := range []StateID{0, 1, 2, 4, 5} {
		if info.isSherman(id) {
			t.Errorf("state %d should not be a Sherman state", id)
		}
	}
}

func TestFindBetterDaddyFloatingVeto(t *testing.T) {
	// A state inside the window of 3*alphabet states past the floating
	// start is assumed hot (BFS ordering) and never compressed.
	raw := shermanDFA()
	raw.StartFloating = 3

	info := runDaddySelection(raw, DefaultGrey(), false)

	if info.isSherman(3) {
		t.Error("state 3 is inside the floating-start veto window, should stay normal")
	}
}

func TestFindBetterDaddyAnchoredVeto(t *testing.T) {
	// Make state 2 loop back to itself so the neighborhood of the anchored
	// start looks cyclic; every state below 3*alphabet is then banned.
	raw := shermanDFA()
	raw.States[2].Next[7] = 2
	raw.States[3].Next[7] = 2 // keep the rows one symbol apart

	if !isCyclicNear(raw, raw.StartAnchored) {
		t.Fatal("expected a cycle near the anchored start")
	}

	info := runDaddySelection(raw, DefaultGrey(), false)

	if info.isSherman(3) {
		t.Error("state 3 is inside the anchored-start veto window, should stay normal")
	}
}

func TestFindBetterDaddyDisabled(t *testing.T) {
	raw := shermanDFA()
	grey := DefaultGrey()
	grey.AllowShermanStates = false

	info := runDaddySelection(raw, grey, false)

	for i := 0; i < info.size(); i++ {
		if info.isSherman(StateID(i)) {
			t.Errorf("state %d marked Sherman with AllowShermanStates off", i)
		}
	}
}

func TestFindBetterDaddySelfLoopVeto(t *testing.T) {
	// State 3's row matches state 2 on all but one symbol, but if state 3
	// self-loops over most of the raw byte space it stays normal: the hot
	// loop must not pay the Sherman double indirection.
	raw := shermanDFA()
	raw.States[1].Next[1] = 0 // keep state 3 out of the start neighborhood
	for s := 0; s < 8; s++ {
		raw.States[2].Next[s] = 3
		raw.States[3].Next[s] = 3
	}
	raw.States[3].Next[5] = 5

	if isCyclicNear(raw, raw.StartAnchored) {
		t.Fatal("test DFA should not be cyclic near the anchored start")
	}

	info := runDaddySelection(raw, DefaultGrey(), false)

	if info.isSherman(3) {
		t.Error("state 3 self-loops on most of the alphabet, should stay normal")
	}
}
