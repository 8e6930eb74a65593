package flowhash

import (
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/flowdissect/flowdissect/dissect"
)

// hashWindow serializes the hashable subset of a FlowKeys into a
// self-contained byte buffer: everything that
// identifies the flow (basic protocol numbers, IPv6 flow label, VLAN,
// GRE/encapsulation key ids, ports, ICMP type/code, TCP flags, IP
// ToS/TTL, and the active address variant), and nothing that is purely
// bookkeeping (ThOff, AddrType itself, Flags). The Eth, ARP, MPLS and
// MPLS entropy keys are not included.
func hashWindow(fk *dissect.FlowKeys) []byte {
	buf := make([]byte, 0, 24+32)

	var hdr [24]byte
	binary.BigEndian.PutUint16(hdr[0:2], fk.Basic.NProto)
	hdr[2] = fk.Basic.IPProto
	binary.BigEndian.PutUint32(hdr[4:8], fk.FlowLabel.Label)
	binary.BigEndian.PutUint16(hdr[8:10], (fk.VLAN.ID&0x0FFF)|uint16(fk.VLAN.Priority)<<12)
	binary.BigEndian.PutUint32(hdr[12:16], fk.GREKeyID.KeyID|fk.ENCKeyID.KeyID)
	binary.BigEndian.PutUint16(hdr[16:18], fk.Ports.Src)
	binary.BigEndian.PutUint16(hdr[18:20], fk.Ports.Dst)
	binary.BigEndian.PutUint16(hdr[20:22], fk.ICMP.TypeCode)
	binary.BigEndian.PutUint16(hdr[22:24], fk.TCP.Flags)
	buf = append(buf, hdr[:]...)
	buf = append(buf, fk.IP.TOS, fk.IP.TTL)

	switch fk.Control.AddrType {
	case dissect.KEY_IPV4_ADDRS:
		buf = append(buf, fk.IPv4.Src[:]...)
		buf = append(buf, fk.IPv4.Dst[:]...)
	case dissect.KEY_IPV6_ADDRS:
		buf = append(buf, fk.IPv6.Src[:]...)
		buf = append(buf, fk.IPv6.Dst[:]...)
	case dissect.KEY_TIPC_ADDRS:
		buf = append(buf, fk.TIPC.SrcNode[:]...)
	}

	return buf
}

func siphashWith(key Key, data []byte) uint32 {
	k0 := binary.LittleEndian.Uint64(key[0:8])
	k1 := binary.LittleEndian.Uint64(key[8:16])
	full := siphash.Hash(k0, k1, data)
	h := uint32(full)
	if h == 0 {
		h = 1
	}
	return h
}

// FromKeys hashes a dissected FlowKeys with the process-wide secret,
// after consistentifying it so either direction of the same flow
// produces the same value. keys is read, never mutated.
func FromKeys(keys *dissect.FlowKeys) uint32 {
	return FromKeysPerturb(keys, processSecret())
}

// FromKeysPerturb is FromKeys with a caller-supplied key instead of the
// process-wide secret, for callers that need a hash space independent
// of (or a deliberate superset across) other consumers ("perturbed"
// hashing).
func FromKeysPerturb(keys *dissect.FlowKeys, key Key) uint32 {
	kk := *keys
	consistentify(&kk)
	return siphashWith(key, hashWindow(&kk))
}

// Frame dissects frame with desc and returns its flow hash in one call,
// using the process-wide secret. ok is false if dissection itself
// failed; Control/Basic (and hence the hash) are still populated on
// that path, matching Dissect's own contract.
func Frame(desc *dissect.Descriptor, frame []byte, proto uint16, nhoff, hlen uint16, flags dissect.Flags) (hash uint32, ok bool) {
	var fk dissect.FlowKeys
	ok = dissect.Dissect(desc, &fk, frame, proto, nhoff, hlen, flags)
	return FromKeys(&fk), ok
}

// symmetricDescriptor is built once at package init: CONTROL, BASIC, IPV4_ADDRS,
// IPV6_ADDRS, PORTS only -- the reduced key set the kernel uses for
// __skb_get_hash_symmetric, since RX steering only needs L3/L4 address
// information to stay stable across a tunnel's two directions.
var symmetricDescriptor = func() *dissect.Descriptor {
	d, err := dissect.NewDescriptor(dissect.DefaultKeys(
		dissect.KEY_IPV4_ADDRS, dissect.KEY_IPV6_ADDRS, dissect.KEY_PORTS))
	if err != nil {
		panic("flowhash: building the symmetric descriptor: " + err.Error())
	}
	return d
}()

// FrameSymmetric is Frame restricted to the symmetric key set and
// STOP_AT_FLOW_LABEL, so a flow hashes identically regardless of which
// endpoint captured it.
func FrameSymmetric(frame []byte, proto uint16, nhoff, hlen uint16) (hash uint32, ok bool) {
	var fk dissect.FlowKeys
	ok = dissect.Dissect(symmetricDescriptor, &fk, frame, proto, nhoff, hlen, dissect.STOP_AT_FLOW_LABEL)
	return FromKeys(&fk), ok
}
