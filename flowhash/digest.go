package flowhash

import (
	"encoding/binary"

	"github.com/flowdissect/flowdissect/dissect"
)

// Digest is a fixed-size, cheap-to-compare flow fingerprint for
// high-volume per-packet tables (eg. RPS flow-table dedup) where
// carrying a full FlowKeys around is wasteful.
type Digest [16]byte

// MakeDigest packs keys' n_proto/ip_proto/ports/IPv4 addresses into a
// Digest. It always reads the IPv4 address fields, even for an IPv6 or
// non-IP flow -- matching the kernel's make_flow_keys_digest, which
// has the same narrowing; callers that need a digest meaningful for
// IPv6 flows should not rely on this helper.
func MakeDigest(keys *dissect.FlowKeys) Digest {
	var d Digest
	binary.BigEndian.PutUint16(d[0:2], keys.Basic.NProto)
	d[2] = keys.Basic.IPProto
	// d[3] is reserved padding, always zero.
	binary.BigEndian.PutUint16(d[4:6], keys.Ports.Src)
	binary.BigEndian.PutUint16(d[6:8], keys.Ports.Dst)
	copy(d[8:12], keys.IPv4.Src[:])
	copy(d[12:16], keys.IPv4.Dst[:])
	return d
}
