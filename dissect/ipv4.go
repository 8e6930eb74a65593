package dissect

import "encoding/binary"

const (
	ipFlagMF     uint16 = 0x2000
	ipOffsetMask uint16 = 0x1FFF
)

// parseIPv4 dissects an IPv4 header at st.nhoff.
func parseIPv4(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 20)
	if !ok {
		return VERDICT_OUT_BAD
	}

	ihl := int(b[0]&0x0F) * 4
	if ihl < 20 {
		return VERDICT_OUT_BAD
	}
	if _, ok := st.win.Peek(st.nhoff, ihl); !ok {
		return VERDICT_OUT_BAD
	}

	st.ipProto = b[9]
	st.control.AddrType = KEY_IPV4_ADDRS

	if st.desc.Uses(KEY_IPV4_ADDRS) {
		var a IPv4Addrs
		copy(a.Src[:], b[12:16])
		copy(a.Dst[:], b[16:20])
		setKey(st.desc, st.base, KEY_IPV4_ADDRS, a)
	}

	st.nhoff += ihl

	fragOff := binary.BigEndian.Uint16(b[6:8])
	if fragOff&(ipFlagMF|ipOffsetMask) != 0 {
		st.control.Flags |= FLAG_IS_FRAGMENT
		if fragOff&ipOffsetMask != 0 {
			// not the first fragment: nothing past L3 is dissectable.
			return VERDICT_OUT_GOOD
		}
		st.control.Flags |= FLAG_FIRST_FRAG
		if st.flags&PARSE_1ST_FRAG == 0 {
			return VERDICT_OUT_GOOD
		}
	}

	if st.desc.Uses(KEY_IP) {
		setKey(st.desc, st.base, KEY_IP, IP{TOS: b[1], TTL: b[8]})
	}

	if st.flags&STOP_AT_L3 != 0 {
		return VERDICT_OUT_GOOD
	}
	return VERDICT_CONTINUE
}
