package mcclellan

import "encoding/binary"

// FromBytes wraps a previously compiled image so its headers can be
// inspected and its transitions decoded. The buffer is not copied; the
// caller must not mutate it while the Image is in use.
func FromBytes(b []byte) (*Image, error) {
	if len(b) < nfaHeaderSize+mcCommonSize {
		return nil, &CompileError{
			Kind:    InvalidConfig,
			Message: "mcclellan: buffer too short for an image header",
		}
	}
	im := &Image{buf: b}
	im.Type = NFAType(binary.LittleEndian.Uint32(b[nfaTypeOff:]))
	if im.Type != MCClellanNFA8 && im.Type != MCClellanNFA16 {
		return nil, &CompileError{
			Kind:    InvalidConfig,
			Message: "mcclellan: buffer is not a mcclellan image",
		}
	}
	if uint32(len(b)) != im.getU32(nfaLengthOff) {
		return nil, &CompileError{
			Kind:    InvalidConfig,
			Message: "mcclellan: image length field disagrees with buffer size",
		}
	}
	return im, nil
}

// ShermanLimit returns the first Sherman implementation index of a 16-bit
// image: states below it have a materialized transition row, states at or
// above it decode through a Sherman record. Zero for an 8-bit image.
func (im *Image) ShermanLimit() uint32 {
	if im.Type != MCClellanNFA16 {
		return 0
	}
	return im.getU32(nfaHeaderSize + mcShermanLimitOff)
}

// AccelLimit8 and AcceptLimit8 return the zone boundaries of an 8-bit
// image: implementation indices below AccelLimit8 are plain states,
// [AccelLimit8, AcceptLimit8) are accelerable non-accepting states, and
// indices at or above AcceptLimit8 bear reports. Both are zero for a
// 16-bit image.
func (im *Image) AccelLimit8() uint32 {
	if im.Type != MCClellanNFA8 {
		return 0
	}
	return im.getU32(nfaHeaderSize + mcAccelLimit8Off)
}

func (im *Image) AcceptLimit8() uint32 {
	if im.Type != MCClellanNFA8 {
		return 0
	}
	return im.getU32(nfaHeaderSize + mcAcceptLimit8Off)
}

// AlphaShift returns the row shift used to index the packed transition
// table.
func (im *Image) AlphaShift() uint32 {
	return im.getU32(nfaHeaderSize + mcAlphaShiftOff)
}

// AccelEntries returns the synthesized acceleration record for every
// implementation index that has one. Used by tests and cmd/mcclellandump;
// the scanning runtime reads the records through the aux table directly.
func (im *Image) AccelEntries() map[uint32]AccelAux {
	out := make(map[uint32]AccelAux)
	for j := uint32(0); j < im.StateCount(); j++ {
		if off := im.auxAccelOffset(j); off != 0 {
			out[j] = im.AccelAuxAt(off)
		}
	}
	return out
}

// Step decodes one transition: from the state with the given
// implementation index, on raw input byte b, it returns the successor's
// implementation index with the ACCEPT/ACCEL flag bits stripped.
//
// Step is a reference decoder for testing and inspection, not a scanning
// engine: it takes no acceleration fast paths, handles no EOD semantics,
// and dispatches no callbacks. Those belong to the runtime interpreter
// this package deliberately does not contain.
func (im *Image) Step(state uint32, b byte) uint32 {
	sym := uint32(im.getU8(nfaHeaderSize + mcRemapOff + uint32(b)))
	shift := im.AlphaShift()

	if im.Type == MCClellanNFA8 {
		tranBase := uint32(nfaHeaderSize + mcHeader8Size)
		return uint32(im.getU8(tranBase + state<<shift + sym))
	}

	state &= uint32(stateMask16)
	shermanLimit := im.ShermanLimit()
	shermanOffset := im.getU32(nfaHeaderSize + mcShermanOffsetOff)

	for state >= shermanLimit {
		recOff := shermanOffset + (state-shermanLimit)*shermanFixedSize
		length := uint32(im.getU8(recOff + shermanLenOff))
		for k := uint32(0); k < length; k++ {
			if uint32(im.getU8(recOff+shermanCharsOff+k)) == sym {
				succ := im.getU16(recOff + shermanCharsOff + length + k*2)
				return uint32(succ & stateMask16)
			}
		}
		state = uint32(im.getU16(recOff+shermanDaddyOff) & stateMask16)
	}

	tranBase := uint32(nfaHeaderSize + mcHeader16Size)
	succ := im.getU16(tranBase + (state<<shift+sym)*2)
	return uint32(succ & stateMask16)
}
