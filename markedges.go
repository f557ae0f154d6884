package mcclellan

// markEdges16 ORs ACCEPT_FLAG/ACCEL_FLAG into every stored successor of a
// 16-bit image, normal rows and Sherman override lists alike, per the
// target state's aux record. This is the only flag-stamping pass; the
// 8-bit layout never runs it.
func markEdges16(im *Image, info *dfaInfo) {
	alphaShift := info.alphaShift()
	alphaSize := uint32(info.implAlphaSize)
	shermanLimit := im.getU32(nfaHeaderSize + mcShermanLimitOff)
	tranBase := uint32(nfaHeaderSize + mcHeader16Size)

	markOne := func(off uint32) {
		succ := im.getU16(off)
		target := uint32(succ)
		if im.auxAccept(target) != 0 {
			succ |= accept16Flag
		}
		if im.auxAccelOffset(target) != 0 {
			succ |= accel16Flag
		}
		im.putU16(off, succ)
	}

	for i := uint32(0); i < shermanLimit; i++ {
		for j := uint32(0); j < alphaSize; j++ {
			markOne(tranBase + (i<<alphaShift+j)*2)
		}
	}

	shermanOffset := im.getU32(nfaHeaderSize + mcShermanOffsetOff)
	stateCount := im.getU32(nfaHeaderSize + mcStateCountOff)
	for j := shermanLimit; j < stateCount; j++ {
		recOff := shermanOffset + (j-shermanLimit)*shermanFixedSize
		length := uint32(im.getU8(recOff + shermanLenOff))
		succOff := recOff + shermanCharsOff + length
		for k := uint32(0); k < length; k++ {
			markOne(succOff + k*2)
		}
	}
}
