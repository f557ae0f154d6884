package mcclellan

// dfaInfo wraps a RawDFA with the derived quantities the compiler threads
// through every stage.
type dfaInfo struct {
	raw           *RawDFA
	implAlphaSize uint16
}

func newDFAInfo(raw *RawDFA) *dfaInfo {
	return &dfaInfo{raw: raw, implAlphaSize: raw.ImplAlphaSize()}
}

func (info *dfaInfo) size() int { return len(info.raw.States) }

func (info *dfaInfo) alphaShift() uint8 { return alphaShiftFor(info.implAlphaSize) }

func (info *dfaInfo) implID(id StateID) StateID { return info.raw.States[id].ImplID }

func (info *dfaInfo) isSherman(id StateID) bool { return info.raw.States[id].shermanState }

func (info *dfaInfo) isAccel(id StateID) bool { return info.raw.States[id].accelerable }

func (info *dfaInfo) state(id StateID) *RawState { return &info.raw.States[id] }

// Stats reports compile-time diagnostics about the just-produced Image.
// These are not part of the byte-exact wire format; they exist purely for
// callers that want visibility into how effective the Sherman and
// acceleration passes were.
type Stats struct {
	// StateCount is the number of states in the compiled image, including
	// the dead state.
	StateCount int

	// ShermanCount is the number of states compressed against a daddy.
	ShermanCount int

	// AccelCount is the number of states with a synthesized acceleration
	// primitive.
	AccelCount int

	// DaddyHitRatio is the fraction of (state, symbol) transitions across
	// the whole DFA that coincided with the state's chosen daddy, whether
	// or not that state ultimately became Sherman. States the selector
	// skips (Sherman disabled, or inside a veto window) count as zero hits.
	DaddyHitRatio float64
}

// Compile turns raw into a compact byte-exact image per the CompileContext
// toggles. On success it returns the owned Image; raw's Daddy and ImplID
// fields are mutated in place as a side effect, and if cc.Streaming is
// false its states' EOD report sets are pruned of reports already raised
// as ordinary accepts.
//
// If accelOut is non-nil, the raw StateID of every state the analyzer
// marked accelerable is inserted into it.
func Compile(raw *RawDFA, cc CompileContext, accelOut map[StateID]struct{}) (*Image, Stats, error) {
	var stats Stats

	if err := raw.Validate(); err != nil {
		return nil, stats, err
	}
	if len(raw.States) > (1 << 16) {
		return nil, stats, ErrTooManyStates
	}

	info := newDFAInfo(raw)
	using8Bit := cc.Grey.AllowMcClellan8 && info.size() <= 256

	if !cc.Streaming {
		raw.StripExtraEodReports()
	}

	hasEodReports := raw.HasEodReports()
	anyCyclicNearAnchored := isCyclicNear(raw, raw.StartAnchored)

	var totalDaddy uint64
	for i := 0; i < info.size(); i++ {
		findBetterDaddy(info, StateID(i), using8Bit, anyCyclicNearAnchored, cc.Grey)
		totalDaddy += uint64(info.state(StateID(i)).daddytaken)
	}

	var img *Image
	var err error
	if using8Bit {
		img, err = mcclellanCompile8(info, cc)
	} else {
		img, err = mcclellanCompile16(info, cc)
	}
	if err != nil {
		return nil, stats, err
	}

	if hasEodReports {
		img.setFlag(img.flagsOffset(), nfaAcceptsEOD)
	}

	for i := 0; i < info.size(); i++ {
		if !using8Bit && info.isSherman(StateID(i)) {
			stats.ShermanCount++
		}
		if info.isAccel(StateID(i)) {
			stats.AccelCount++
			if accelOut != nil {
				accelOut[StateID(i)] = struct{}{}
			}
		}
	}
	stats.StateCount = info.size()
	totalTransitions := uint64(info.size()) * uint64(info.implAlphaSize)
	if totalTransitions > 0 {
		stats.DaddyHitRatio = float64(totalDaddy) / float64(totalTransitions)
	}

	return img, stats, nil
}
