package dissect

import "encoding/binary"

// parsePPPoE dissects a PPPoE session header and the PPP protocol field
// right after it. Only IP and IPv6 payloads are
// continued into; anything else ends dissection with a bad verdict,
// since PPPoE always carries exactly one PPP-framed payload.
func parsePPPoE(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, int(PPPOE_SES_HLEN))
	if !ok {
		return VERDICT_OUT_BAD
	}

	ppp := binary.BigEndian.Uint16(b[6:8])
	st.nhoff += int(PPPOE_SES_HLEN)

	switch ppp {
	case PPP_IP:
		st.proto = ETH_P_IP
	case PPP_IPV6:
		st.proto = ETH_P_IPV6
	default:
		return VERDICT_OUT_BAD
	}

	return VERDICT_PROTO_AGAIN
}
