package mcclellan

// allocateFSN16 assigns dense implementation indices for the 16-bit packed
// layout: the dead state keeps 0, non-Sherman states are numbered from 1 in
// input order, then Sherman states continue from shermanLimit. Returns the
// first Sherman index (the number of real transition rows in the image).
//
// Fails with a StateOverflow error if the state count exceeds 2^16 or the
// highest assigned index collides with the ACCEPT/ACCEL flag bits.
func allocateFSN16(info *dfaInfo) (uint16, error) {
	info.state(DeadStateID).ImplID = 0

	if info.size() > (1 << 16) {
		return 0, ErrTooManyStates
	}

	var norm, sherm []StateID
	for i := 1; i < info.size(); i++ {
		if info.isSherman(StateID(i)) {
			sherm = append(sherm, StateID(i))
		} else {
			norm = append(norm, StateID(i))
		}
	}

	next := StateID(1)
	for _, s := range norm {
		info.state(s).ImplID = next
		next++
	}

	shermanLimit := next
	for _, s := range sherm {
		info.state(s).ImplID = next
		next++
	}

	if uint32(next-1) != uint32(next-1)&uint32(stateMask16) {
		return 0, ErrStateOverflow
	}

	return uint16(shermanLimit), nil
}

// allocateFSN8 assigns dense implementation indices for the 8-bit packed
// layout, partitioning non-dead states into three contiguous zones: plain
// normals, accelerable-but-not-accepting, then accept-bearing. The returned
// boundaries are the first index of the accel zone and of the accept zone;
// the runtime compares a state index against them instead of checking flag
// bits (the 8-bit layout reserves none).
//
// The caller guarantees info.size() <= 256, so allocation cannot fail.
func allocateFSN8(info *dfaInfo) (accelLimit, acceptLimit uint16) {
	info.state(DeadStateID).ImplID = 0

	var norm, accel, accept []StateID
	for i := 1; i < info.size(); i++ {
		id := StateID(i)
		switch {
		case len(info.state(id).Reports) > 0:
			accept = append(accept, id)
		case info.isAccel(id):
			accel = append(accel, id)
		default:
			norm = append(norm, id)
		}
	}

	j := StateID(1)
	for _, s := range norm {
		info.state(s).ImplID = j
		j++
	}
	accelLimit = uint16(j)
	for _, s := range accel {
		info.state(s).ImplID = j
		j++
	}
	acceptLimit = uint16(j)
	for _, s := range accept {
		info.state(s).ImplID = j
		j++
	}

	return accelLimit, acceptLimit
}
