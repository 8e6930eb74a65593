package dissect

import "encoding/binary"

// parseGRE dissects a GRE header at st.nhoff, following version-0 and
// version-1 (PPTP) framing rules, optionally unwrapping a transparent
// Ethernet bridging (TEB) payload or a PPTP PPP header underneath.
// GRE routing extensions and any version beyond 1 are left alone:
// dissection simply stops there.
func parseGRE(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 4)
	if !ok {
		return VERDICT_OUT_BAD
	}

	hdrFlags := binary.BigEndian.Uint16(b[0:2])
	proto := binary.BigEndian.Uint16(b[2:4])

	if hdrFlags&GRE_ROUTING != 0 {
		return VERDICT_OUT_GOOD
	}

	ver := hdrFlags & GRE_VERSION
	if ver > 1 {
		return VERDICT_OUT_GOOD
	}

	if ver != 0 {
		// version 1 must be PPTP: PPP payload with a key field present.
		if proto != GRE_PROTO_PPP || hdrFlags&GRE_KEY == 0 {
			return VERDICT_OUT_GOOD
		}
	}

	offset := 4 // sizeof gre_base_hdr

	if hdrFlags&GRE_CSUM != 0 {
		offset += 4 // checksum(2) + reserved1(2)
	}

	if hdrFlags&GRE_KEY != 0 {
		kb, ok := st.win.Peek(st.nhoff+offset, 4)
		if !ok {
			return VERDICT_OUT_BAD
		}
		if st.desc.Uses(KEY_GRE_KEYID) {
			keyid := binary.BigEndian.Uint32(kb)
			if ver != 0 {
				keyid &= GRE_PPTP_KEY_MASK
			}
			setKey(st.desc, st.base, KEY_GRE_KEYID, GREKeyID{KeyID: keyid})
		}
		offset += 4
	}

	if hdrFlags&GRE_SEQ != 0 {
		offset += 4
	}

	if ver == 0 {
		if proto == ETH_P_TEB {
			eb, ok := st.win.Peek(st.nhoff+offset, 14)
			if !ok {
				return VERDICT_OUT_BAD
			}
			proto = binary.BigEndian.Uint16(eb[12:14])
			offset += 14
		}
	} else {
		// version 1, PPTP: an optional ack field, then a 4-byte PPP header.
		if hdrFlags&GRE_ACK != 0 {
			offset += 4
		}

		pb, ok := st.win.Peek(st.nhoff+offset, PPP_HDRLEN)
		if !ok {
			return VERDICT_OUT_BAD
		}
		offset += PPP_HDRLEN
		switch binary.BigEndian.Uint16(pb[2:4]) {
		case PPP_IP:
			proto = ETH_P_IP
		case PPP_IPV6:
			proto = ETH_P_IPV6
		default:
			// unrecognized PPP payload: leave proto untouched rather
			// than aborting -- the L2 switch will fail on it if it
			// truly can't continue.
		}
	}

	// crossing GRE is an encapsulation boundary
	st.control.Flags |= FLAG_ENCAPSULATION
	st.proto = proto
	st.nhoff += offset
	if st.flags&STOP_AT_ENCAP != 0 {
		return VERDICT_OUT_GOOD
	}
	return VERDICT_PROTO_AGAIN
}
