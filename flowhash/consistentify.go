package flowhash

import (
	"bytes"

	"github.com/flowdissect/flowdissect/dissect"
)

// consistentify swaps src/dst (address and port) so that hashing a flow
// in either direction produces the same input bytes, hence the same
// hash. Only IPv4 and IPv6 address variants are
// reordered; TIPC and unset address types pass through untouched,
// matching the kernel.
func consistentify(fk *dissect.FlowKeys) {
	switch fk.Control.AddrType {
	case dissect.KEY_IPV4_ADDRS:
		diff := int64(be32(fk.IPv4.Dst)) - int64(be32(fk.IPv4.Src))
		if diff < 0 || (diff == 0 && fk.Ports.Dst < fk.Ports.Src) {
			fk.IPv4.Src, fk.IPv4.Dst = fk.IPv4.Dst, fk.IPv4.Src
			fk.Ports.Src, fk.Ports.Dst = fk.Ports.Dst, fk.Ports.Src
		}
	case dissect.KEY_IPV6_ADDRS:
		diff := bytes.Compare(fk.IPv6.Dst[:], fk.IPv6.Src[:])
		if diff < 0 || (diff == 0 && fk.Ports.Dst < fk.Ports.Src) {
			fk.IPv6.Src, fk.IPv6.Dst = fk.IPv6.Dst, fk.IPv6.Src
			fk.Ports.Src, fk.Ports.Dst = fk.Ports.Dst, fk.Ports.Src
		}
	}
}

func be32(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
