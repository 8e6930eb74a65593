package dissect

import "encoding/binary"

// parseTCPFlags records the TCP header's reserved+flag bits. It never
// changes the verdict: a malformed or absent TCP header just means
// the key stays unset.
func parseTCPFlags(st *state) {
	if !st.desc.Uses(KEY_TCP) {
		return
	}

	b, ok := st.win.Peek(st.nhoff, 20)
	if !ok {
		return
	}

	dataOffset := int(b[12]>>4) * 4
	if dataOffset < 20 {
		return
	}

	flags := binary.BigEndian.Uint16(b[12:14]) & 0x0FFF
	setKey(st.desc, st.base, KEY_TCP, TCP{Flags: flags})
}

// writePorts records the L4 source/destination ports for the transport
// protocols that carry them in the first four bytes of their header.
// Called once per ip_proto loop iteration at the driver's current
// cursor, skipped entirely for non-initial fragments.
func writePorts(st *state) {
	switch st.ipProto {
	case IPPROTO_TCP, IPPROTO_UDP, IPPROTO_UDPLITE, IPPROTO_SCTP, IPPROTO_DCCP:
	default:
		return
	}

	b, ok := st.win.Peek(st.nhoff, 4)
	if !ok {
		return
	}

	setKey(st.desc, st.base, KEY_PORTS, Ports{
		Src: binary.BigEndian.Uint16(b[0:2]),
		Dst: binary.BigEndian.Uint16(b[2:4]),
	})
}

// writeICMP records the type+code pair found at the current cursor,
// packed as type<<8|code so a caller can range-match on type with a
// single comparison. Called whenever the ICMP key is requested,
// regardless of ip_proto -- the driver only calls this from the
// ip_proto loop, so a non-ICMP packet just gets two bytes of whatever
// its transport header starts with, matching the kernel's own
// unconditional read.
func writeICMP(st *state) {
	b, ok := st.win.Peek(st.nhoff, 2)
	if !ok {
		return
	}

	setKey(st.desc, st.base, KEY_ICMP, ICMP{TypeCode: uint16(b[0])<<8 | uint16(b[1])})
}
