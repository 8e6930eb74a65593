package dissect

import "encoding/binary"

// parseTIPC dissects a TIPC basic header's source-node identity. TIPC
// is never a tunnel in this dissector's model: it always terminates
// dissection, successfully, right here.
func parseTIPC(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 16)
	if !ok {
		return VERDICT_OUT_BAD
	}

	if st.desc.Uses(KEY_TIPC_ADDRS) {
		var a TIPCAddrs
		binary.BigEndian.PutUint32(a.SrcNode[:], binary.BigEndian.Uint32(b[12:16]))
		setKey(st.desc, st.base, KEY_TIPC_ADDRS, a)
		st.control.AddrType = KEY_TIPC_ADDRS
	}

	return VERDICT_OUT_GOOD
}
