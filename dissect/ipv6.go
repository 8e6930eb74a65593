package dissect

import "encoding/binary"

// parseIPv6 dissects an IPv6 fixed header at st.nhoff.
func parseIPv6(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 40)
	if !ok {
		return VERDICT_OUT_BAD
	}

	st.ipProto = b[6]
	st.control.AddrType = KEY_IPV6_ADDRS

	if st.desc.Uses(KEY_IPV6_ADDRS) {
		var a IPv6Addrs
		copy(a.Src[:], b[8:24])
		copy(a.Dst[:], b[24:40])
		setKey(st.desc, st.base, KEY_IPV6_ADDRS, a)
	}

	st.nhoff += 40

	flowLabel := binary.BigEndian.Uint32(b[0:4]) & 0x000FFFFF
	if flowLabel != 0 {
		if st.flags&STOP_AT_FLOW_LABEL != 0 {
			return VERDICT_OUT_GOOD
		}
		if st.desc.Uses(KEY_FLOW_LABEL) {
			setKey(st.desc, st.base, KEY_FLOW_LABEL, FlowLabel{Label: flowLabel})
		}
	}

	if st.desc.Uses(KEY_IP) {
		tos := (b[0]&0x0F)<<4 | b[1]>>4
		setKey(st.desc, st.base, KEY_IP, IP{TOS: tos, TTL: b[7]})
	}

	if st.flags&STOP_AT_L3 != 0 {
		return VERDICT_OUT_GOOD
	}
	return VERDICT_CONTINUE
}
