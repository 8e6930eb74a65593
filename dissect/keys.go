package dissect

import (
	"fmt"
	"unsafe"
)

// KeyId identifies a header field group a caller may want extracted.
//
// The enum is closed: CONTROL and BASIC are mandatory in every
// Descriptor, the rest are optional and selected per caller.
type KeyId uint8

//go:generate go run github.com/dmarkham/enumer -type=KeyId -trimprefix KEY_
const (
	KEY_CONTROL KeyId = iota
	KEY_BASIC
	KEY_IPV4_ADDRS
	KEY_IPV6_ADDRS
	KEY_TIPC_ADDRS
	KEY_PORTS
	KEY_ICMP
	KEY_ETH_ADDRS
	KEY_TCP
	KEY_IP
	KEY_VLAN
	KEY_FLOW_LABEL
	KEY_GRE_KEYID
	KEY_ENC_KEYID
	KEY_MPLS_ENTROPY
	KEY_MPLS
	KEY_ARP

	key_max // sentinel, not a real key id
)

// AddrType identifies which address-key variant is live in a FlowKeys
// aggregate. It reuses KeyId values for IPV4_ADDRS / IPV6_ADDRS /
// TIPC_ADDRS, and zero means "no address variant set".
type AddrType = KeyId

// Descriptor is the immutable, init-time table mapping key ids to
// offsets inside a caller's FlowKeys aggregate. Built once by
// NewDescriptor and read-only thereafter; safe for concurrent use by
// any number of Dissect calls.
type Descriptor struct {
	usedKeys uint32          // bitmask, bit i set iff offset[i] is registered
	offset   [key_max]uint16 // byte offset into the caller's target struct
}

// KeyEntry pairs a key id with its byte offset inside the caller's
// target struct, eg. KeyEntry{KEY_PORTS, uint32(unsafe.Offsetof(fk.Ports))}.
// Offset is uint32 here so NewDescriptor can reject an out-of-range
// value instead of silently truncating it; the Descriptor itself packs
// validated offsets into uint16, per the 16-bit cap invariant.
type KeyEntry struct {
	Key    KeyId
	Offset uint32
}

// NewDescriptor builds a Descriptor from keys. It fails hard (returns a
// non-nil error) on any invariant violation, matching the init-time
// BUG_ON semantics of the kernel: duplicate key id, offset overflow
// (offsets are stored as uint16, so callers must keep them <= 65535),
// or a missing mandatory key (CONTROL, BASIC).
func NewDescriptor(keys []KeyEntry) (*Descriptor, error) {
	d := &Descriptor{}

	for _, k := range keys {
		if k.Key >= key_max {
			return nil, fmt.Errorf("%w: key id %d", ErrKeyMissing, k.Key)
		}
		if k.Offset > 0xFFFF {
			return nil, fmt.Errorf("%w: key %s offset %d", ErrOffset, k.Key, k.Offset)
		}
		if d.uses(k.Key) {
			return nil, fmt.Errorf("%w: %s", ErrKeyDupe, k.Key)
		}
		d.set(k.Key)
		d.offset[k.Key] = uint16(k.Offset)
	}

	if !d.uses(KEY_CONTROL) {
		return nil, fmt.Errorf("%w: %s", ErrKeyMissing, KEY_CONTROL)
	}
	if !d.uses(KEY_BASIC) {
		return nil, fmt.Errorf("%w: %s", ErrKeyMissing, KEY_BASIC)
	}

	return d, nil
}

func (d *Descriptor) set(k KeyId) {
	d.usedKeys |= 1 << uint(k)
}

// uses reports whether key id k has a registered offset.
func (d *Descriptor) uses(k KeyId) bool {
	return d.usedKeys&(1<<uint(k)) != 0
}

// Uses reports whether key id k has a registered offset.
func (d *Descriptor) Uses(k KeyId) bool {
	return d != nil && d.uses(k)
}

// targetFor returns a pointer to the key-k field inside the struct
// starting at base, iff the Descriptor marks k as present: a single
// indexed load plus add, no vtable, no map lookup, on the hot path --
// just `base + offset[key_id]`.
func targetFor(d *Descriptor, base unsafe.Pointer, k KeyId) (p unsafe.Pointer, ok bool) {
	if !d.uses(k) {
		return nil, false
	}
	return unsafe.Add(base, d.offset[k]), true
}

// setKey writes v into the key-k field of the struct at base, iff k is
// registered in d. It is the caller's responsibility to pass a T that
// matches the field type actually stored at that offset (FlowKeys'
// layout, or a caller aggregate built with matching field types at the
// registered offsets).
func setKey[T any](d *Descriptor, base unsafe.Pointer, k KeyId, v T) {
	if p, ok := targetFor(d, base, k); ok {
		*(*T)(p) = v
	}
}
