package dissect

import "encoding/binary"

const (
	mplsLabelMask  uint32 = 0xFFFFF000
	mplsLabelShift        = 12
	mplsTCMask     uint32 = 0x00000E00
	mplsTCShift           = 9
	mplsSMask      uint32 = 0x00000100
	mplsSShift            = 8
	mplsTTLMask    uint32 = 0x000000FF
)

// parseMPLS dissects the outermost MPLS label stack entry at st.nhoff.
// It never continues dissection past the label stack: the generic
// dissector has no reliable way to know what the payload
// of an MPLS label is without deeper protocol-specific heuristics, so
// it always terminates here: with OUT_GOOD, or with OUT_BAD if the
// first label entry is truncated.
func parseMPLS(st *state) verdict {
	if !st.desc.Uses(KEY_MPLS_ENTROPY) && !st.desc.Uses(KEY_MPLS) {
		return VERDICT_OUT_GOOD
	}

	b, ok := st.win.Peek(st.nhoff, 4)
	if !ok {
		return VERDICT_OUT_BAD
	}

	entry := binary.BigEndian.Uint32(b)
	label := (entry & mplsLabelMask) >> mplsLabelShift

	if label == MPLS_LABEL_ENTROPY {
		if st.desc.Uses(KEY_MPLS_ENTROPY) {
			if b2, ok := st.win.Peek(st.nhoff+4, 4); ok {
				entry2 := binary.BigEndian.Uint32(b2)
				setKey(st.desc, st.base, KEY_MPLS_ENTROPY, MPLSEntropy{KeyID: entry2 & mplsLabelMask})
			}
		}
		return VERDICT_OUT_GOOD
	}

	if st.desc.Uses(KEY_MPLS) {
		setKey(st.desc, st.base, KEY_MPLS, MPLS{
			Label: label,
			TC:    uint8((entry & mplsTCMask) >> mplsTCShift),
			BOS:   uint8((entry & mplsSMask) >> mplsSShift),
			TTL:   uint8(entry & mplsTTLMask),
		})
	}

	return VERDICT_OUT_GOOD
}
