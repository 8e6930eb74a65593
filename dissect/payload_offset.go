package dissect

// Fixed transport-header sizes used by PayloadOffset when it cannot be
// bothered to look past the minimum fixed header (options/extensions
// are not its concern).
const (
	tcpHdrLen   = 20
	udpHdrLen   = 8
	icmpHdrLen  = 8
	icmp6HdrLen = 8
	igmpHdrLen  = 8
	dccpHdrLen  = 12
	sctpHdrLen  = 12
)

// PayloadOffset returns the best-effort byte offset to the transport
// payload for a previously-dissected FlowKeys: the
// eBPF-style "cut here to hand only headers to userspace" cursor.
// frame/hlen must be the same window Dissect was given. A non-initial
// fragment's payload offset is just its transport-header offset,
// unrefined -- there is no L4 header at that offset to skip past.
func PayloadOffset(fk *FlowKeys, frame []byte, hlen int) uint32 {
	poff := uint32(fk.Control.ThOff)
	win := NewWindow(frame, hlen)

	if fk.Control.Flags&FLAG_IS_FRAGMENT != 0 && fk.Control.Flags&FLAG_FIRST_FRAG == 0 {
		return poff
	}

	switch fk.Basic.IPProto {
	case IPPROTO_TCP:
		doff, ok := win.Byte(int(poff) + 12)
		if !ok {
			return poff
		}
		hdrLen := uint32(doff>>4) * 4
		if hdrLen < tcpHdrLen {
			hdrLen = tcpHdrLen
		}
		poff += hdrLen
	case IPPROTO_UDP, IPPROTO_UDPLITE:
		poff += udpHdrLen
	case IPPROTO_ICMP:
		poff += icmpHdrLen
	case IPPROTO_ICMPV6:
		poff += icmp6HdrLen
	case IPPROTO_IGMP:
		poff += igmpHdrLen
	case IPPROTO_DCCP:
		poff += dccpHdrLen
	case IPPROTO_SCTP:
		poff += sctpHdrLen
	}

	return poff
}
