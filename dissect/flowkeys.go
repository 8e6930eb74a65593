package dissect

import (
	"net"
	"unsafe"
)

// ControlFlags are bits inside Control.Flags.
type ControlFlags uint8

const (
	FLAG_IS_FRAGMENT ControlFlags = 1 << iota
	FLAG_FIRST_FRAG
	FLAG_ENCAPSULATION
)

// Control carries dissection metadata that every call fills in,
// success or failure: the transport-header offset, the address variant
// that is live, and fragmentation/encapsulation flags.
type Control struct {
	ThOff    uint16
	AddrType AddrType
	Flags    ControlFlags
}

// Basic carries the outermost network protocol reached and its
// payload protocol code.
type Basic struct {
	NProto  uint16 // network byte order EtherType
	IPProto uint8
}

// IPv4Addrs is the address-key variant for IPv4 traffic.
type IPv4Addrs struct {
	Src, Dst [4]byte
}

// IPv6Addrs is the address-key variant for IPv6 traffic.
type IPv6Addrs struct {
	Src, Dst [16]byte
}

// TIPCAddrs is the address-key variant for TIPC traffic.
type TIPCAddrs struct {
	SrcNode [4]byte
}

// Ports carries the L4 source/destination ports in network byte order.
type Ports struct {
	Src, Dst uint16
}

// ICMP carries the ICMP/ICMPv6 type+code as a single big-endian pair.
type ICMP struct {
	TypeCode uint16
}

// EthAddrs carries the outer Ethernet source/destination MAC addresses.
type EthAddrs struct {
	Dst, Src [6]byte
}

// TCP carries the TCP header's 12 reserved+flag bits, masked to 0x0FFF.
type TCP struct {
	Flags uint16
}

// IP carries the IPv4 TOS / IPv6 DSCP+ECN byte and the TTL/hop-limit.
type IP struct {
	TOS byte
	TTL byte
}

// VLAN carries a 12-bit VLAN id and 3-bit priority.
type VLAN struct {
	ID       uint16 // 0..4095
	Priority uint8  // 0..7
}

// FlowLabel carries the IPv6 20-bit flow label.
type FlowLabel struct {
	Label uint32
}

// GREKeyID carries the GRE key field (masked for PPTP).
type GREKeyID struct {
	KeyID uint32
}

// ENCKeyID carries an externally-supplied encapsulation key id; this
// dissector never writes it (it is populated by callers that hash
// tunnel-decapsulated frames and want the outer key mixed into the
// hash, eg. VXLAN/Geneve front-ends layered on top of this package).
type ENCKeyID struct {
	KeyID uint32
}

// MPLSEntropy carries the 32-bit entropy label, when present.
type MPLSEntropy struct {
	KeyID uint32
}

// MPLS carries the outermost MPLS label stack entry, decoded.
type MPLS struct {
	Label uint32 // 20 bits
	TC    uint8  // 3 bits
	BOS   uint8  // 1 bit
	TTL   uint8
}

// ARP carries the fields of an ARP/RARP request or reply.
type ARP struct {
	Op       byte // low byte of the opcode
	SHA, THA [6]byte
	SIP, TIP [4]byte
}

// FlowKeys is the caller-owned target aggregate: Dissect writes into
// whichever of these fields the Descriptor marks as present, and
// leaves the rest at their zero value. Callers must zero FlowKeys
// before a call; its lifetime is scoped to a single Dissect call.
type FlowKeys struct {
	Control Control
	Basic   Basic

	IPv4 IPv4Addrs
	IPv6 IPv6Addrs
	TIPC TIPCAddrs

	Ports Ports
	ICMP  ICMP
	Eth   EthAddrs
	TCP   TCP
	IP    IP

	VLAN        VLAN
	FlowLabel   FlowLabel
	GREKeyID    GREKeyID
	ENCKeyID    ENCKeyID
	MPLSEntropy MPLSEntropy
	MPLS        MPLS
	ARP         ARP
}

// fieldOffset maps each KeyId to the byte offset of its field inside
// FlowKeys, computed once from the struct layout itself -- the Go
// equivalent of the kernel's offsetof() table
// (flow_keys_dissector_keys in flow_dissector.c).
var fieldOffset = func() [key_max]uint32 {
	var fk FlowKeys
	base := uintptr(unsafe.Pointer(&fk))
	off := func(p unsafe.Pointer) uint32 {
		return uint32(uintptr(p) - base)
	}
	var t [key_max]uint32
	t[KEY_CONTROL] = off(unsafe.Pointer(&fk.Control))
	t[KEY_BASIC] = off(unsafe.Pointer(&fk.Basic))
	t[KEY_IPV4_ADDRS] = off(unsafe.Pointer(&fk.IPv4))
	t[KEY_IPV6_ADDRS] = off(unsafe.Pointer(&fk.IPv6))
	t[KEY_TIPC_ADDRS] = off(unsafe.Pointer(&fk.TIPC))
	t[KEY_PORTS] = off(unsafe.Pointer(&fk.Ports))
	t[KEY_ICMP] = off(unsafe.Pointer(&fk.ICMP))
	t[KEY_ETH_ADDRS] = off(unsafe.Pointer(&fk.Eth))
	t[KEY_TCP] = off(unsafe.Pointer(&fk.TCP))
	t[KEY_IP] = off(unsafe.Pointer(&fk.IP))
	t[KEY_VLAN] = off(unsafe.Pointer(&fk.VLAN))
	t[KEY_FLOW_LABEL] = off(unsafe.Pointer(&fk.FlowLabel))
	t[KEY_GRE_KEYID] = off(unsafe.Pointer(&fk.GREKeyID))
	t[KEY_ENC_KEYID] = off(unsafe.Pointer(&fk.ENCKeyID))
	t[KEY_MPLS_ENTROPY] = off(unsafe.Pointer(&fk.MPLSEntropy))
	t[KEY_MPLS] = off(unsafe.Pointer(&fk.MPLS))
	t[KEY_ARP] = off(unsafe.Pointer(&fk.ARP))
	return t
}()

// DefaultKeys returns a KeyEntry table placing each of wanted (plus the
// mandatory CONTROL/BASIC) at its natural offset inside a top-level
// FlowKeys struct. This is the common case: a caller who dissects
// straight into a *FlowKeys, not into a field embedded inside some
// larger aggregate of its own.
func DefaultKeys(wanted ...KeyId) []KeyEntry {
	set := map[KeyId]bool{KEY_CONTROL: true, KEY_BASIC: true}
	for _, k := range wanted {
		set[k] = true
	}
	entries := make([]KeyEntry, 0, len(set))
	for k := range set {
		entries = append(entries, KeyEntry{Key: k, Offset: fieldOffset[k]})
	}
	return entries
}

// HardwareAddr renders a 6-byte MAC array as a net.HardwareAddr.
func HardwareAddr(b [6]byte) net.HardwareAddr {
	return net.HardwareAddr(b[:])
}
