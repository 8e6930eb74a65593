package dissect

import "encoding/binary"

const (
	vlanVIDMask   uint16 = 0x0FFF
	vlanPrioShift        = 13
)

// parseVLAN dissects a single 802.1Q/802.1ad tag at st.nhoff. Only the
// outermost tag is ever recorded in the VLAN key:
// st.skipVLAN latches after the first tag, and every subsequent tag
// (QinQ) is skipped over -- consumed to reach the real payload
// EtherType, but not written.
func parseVLAN(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 4)
	if !ok {
		return VERDICT_OUT_BAD
	}

	tci := binary.BigEndian.Uint16(b[0:2])
	st.proto = binary.BigEndian.Uint16(b[2:4])
	st.nhoff += 4

	if st.skipVLAN {
		return VERDICT_PROTO_AGAIN
	}
	st.skipVLAN = true

	if st.desc.Uses(KEY_VLAN) {
		setKey(st.desc, st.base, KEY_VLAN, VLAN{
			ID:       tci & vlanVIDMask,
			Priority: uint8(tci >> vlanPrioShift),
		})
	}

	return VERDICT_PROTO_AGAIN
}
