package dissect

import "encoding/binary"

// ============================================================================
// Wire builders -- minimal, deliberately redundant with the production
// parsers: they encode the same layout by hand so a bug in one isn't
// hidden by the other.
// ============================================================================

func ethHeader(dst, src [6]byte, etype uint16) []byte {
	b := make([]byte, 14)
	copy(b[0:6], dst[:])
	copy(b[6:12], src[:])
	binary.BigEndian.PutUint16(b[12:14], etype)
	return b
}

func ipv4Header(src, dst [4]byte, proto byte, totalLen uint16, fragOff uint16, ttl, tos byte) []byte {
	b := make([]byte, 20)
	b[0] = 0x45 // version 4, IHL 5
	b[1] = tos
	binary.BigEndian.PutUint16(b[2:4], totalLen)
	binary.BigEndian.PutUint16(b[6:8], fragOff)
	b[8] = ttl
	b[9] = proto
	copy(b[12:16], src[:])
	copy(b[16:20], dst[:])
	return b
}

func ipv6Header(src, dst [16]byte, next byte, flowLabel uint32, hopLimit byte) []byte {
	b := make([]byte, 40)
	word0 := uint32(6)<<28 | (flowLabel & 0x000FFFFF)
	binary.BigEndian.PutUint32(b[0:4], word0)
	b[6] = next
	b[7] = hopLimit
	copy(b[8:24], src[:])
	copy(b[24:40], dst[:])
	return b
}

func udpHeader(src, dst uint16) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint16(b[0:2], src)
	binary.BigEndian.PutUint16(b[2:4], dst)
	return b
}

func tcpHeader(src, dst uint16, flags uint16) []byte {
	b := make([]byte, 20)
	binary.BigEndian.PutUint16(b[0:2], src)
	binary.BigEndian.PutUint16(b[2:4], dst)
	binary.BigEndian.PutUint16(b[12:14], 5<<12|flags&0x0FFF)
	return b
}

func vlanTag(prio uint8, id uint16, inner uint16) []byte {
	b := make([]byte, 4)
	tci := uint16(prio&0x7)<<13 | (id & 0x0FFF)
	binary.BigEndian.PutUint16(b[0:2], tci)
	binary.BigEndian.PutUint16(b[2:4], inner)
	return b
}

func mplsEntry(label uint32, tc, bos, ttl uint8) []byte {
	b := make([]byte, 4)
	entry := (label<<mplsLabelShift)&mplsLabelMask | uint32(tc)<<mplsTCShift&mplsTCMask | uint32(bos)<<mplsSShift&mplsSMask | uint32(ttl)&mplsTTLMask
	binary.BigEndian.PutUint32(b, entry)
	return b
}

func greHeader(flags, proto uint16) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], flags)
	binary.BigEndian.PutUint16(b[2:4], proto)
	return b
}

func join(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func fullKeys() *Descriptor {
	d, err := NewDescriptor(DefaultKeys(
		KEY_IPV4_ADDRS, KEY_IPV6_ADDRS, KEY_TIPC_ADDRS, KEY_PORTS, KEY_ICMP,
		KEY_ETH_ADDRS, KEY_TCP, KEY_IP, KEY_VLAN, KEY_FLOW_LABEL, KEY_GRE_KEYID,
		KEY_ENC_KEYID, KEY_MPLS_ENTROPY, KEY_MPLS, KEY_ARP,
	))
	if err != nil {
		panic(err)
	}
	return d
}
