package dissect

import "encoding/binary"

const ip6FragOffsetMask uint16 = 0xFFF8

// parseFrag6 dissects an IPv6 fragment extension header at st.nhoff.
// Unlike the other extension headers, a fragment header always marks
// IS_FRAGMENT and, for anything but the first fragment, terminates
// dissection outright -- there is no L4 header to find past a
// non-initial fragment.
func parseFrag6(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 8)
	if !ok {
		return VERDICT_OUT_BAD
	}

	st.control.Flags |= FLAG_IS_FRAGMENT
	st.ipProto = b[0]
	st.nhoff += 8

	fragOff := binary.BigEndian.Uint16(b[2:4])
	if fragOff&ip6FragOffsetMask == 0 {
		st.control.Flags |= FLAG_FIRST_FRAG
		if st.flags&PARSE_1ST_FRAG != 0 {
			return VERDICT_IPPROTO_AGAIN
		}
	}

	return VERDICT_OUT_GOOD
}
