package dissect

import "encoding/binary"

// parseARP dissects an Ethernet/IPv4 ARP or RARP packet. Only the
// Ethernet-hardware, IPv4-protocol, request/reply shape is understood;
// anything else (other hardware or protocol types, unknown opcodes)
// is rejected outright.
func parseARP(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 28)
	if !ok {
		return VERDICT_OUT_BAD
	}

	hrd := binary.BigEndian.Uint16(b[0:2])
	pro := binary.BigEndian.Uint16(b[2:4])
	hln := b[4]
	pln := b[5]
	op := binary.BigEndian.Uint16(b[6:8])

	if hrd != ARPHRD_ETHER || pro != ETH_P_IP || hln != 6 || pln != 4 {
		return VERDICT_OUT_BAD
	}
	if op != ARPOP_REQUEST && op != ARPOP_REPLY {
		return VERDICT_OUT_BAD
	}

	if st.desc.Uses(KEY_ARP) {
		var a ARP
		copy(a.SHA[:], b[8:14])
		copy(a.SIP[:], b[14:18])
		copy(a.THA[:], b[18:24])
		copy(a.TIP[:], b[24:28])
		a.Op = byte(op)
		setKey(st.desc, st.base, KEY_ARP, a)
	}

	return VERDICT_OUT_GOOD
}
