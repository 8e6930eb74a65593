package dissect

import (
	"unsafe"

	"github.com/rs/zerolog"
)

// Flags control optional driver behavior, bitwise-ORed.
type Flags uint8

const (
	// PARSE_1ST_FRAG continues into L4 for the first fragment of a
	// fragmented datagram (MF=1, offset=0, or the IPv6 fragment header
	// equivalent).
	PARSE_1ST_FRAG Flags = 1 << iota
	// STOP_AT_L3 stops dissection right after recording L3 addresses.
	STOP_AT_L3
	// STOP_AT_FLOW_LABEL stops dissection after a nonzero IPv6 flow label.
	STOP_AT_FLOW_LABEL
	// STOP_AT_ENCAP stops dissection at the first encapsulation boundary.
	STOP_AT_ENCAP
)

// maxHeaders is the hard bound on stacked headers per frame.
const maxHeaders = 15

// state is the Dissection Driver's mutable working set: the cursor,
// the current L2/L3 protocol codes, the header-count budget, and the
// per-call skip_vlan latch. It is never retained past a single Dissect
// call.
type state struct {
	desc   *Descriptor
	base   unsafe.Pointer // &FlowKeys, passed to setKey/targetFor
	win    Window
	flags  Flags
	log    *zerolog.Logger

	control *Control
	basic   *Basic

	proto    uint16
	ipProto  uint8
	nhoff    int
	numHdrs  int
	skipVLAN bool
}

// allowAnotherHeader implements the >15-header conservative termination
// rule: each attempted restart of either loop consumes one unit of
// budget; once exhausted, further restarts are treated as success.
func (st *state) allowAnotherHeader() bool {
	st.numHdrs++
	return st.numHdrs <= maxHeaders
}

func (st *state) logger() *zerolog.Logger {
	if st.log != nil {
		return st.log
	}
	nop := zerolog.Nop()
	return &nop
}

// Dissect walks frame starting at nhoff with outer protocol proto,
// writing every key desc marks as present into target. hlen bounds how
// much of frame may be read (the "validated prefix"); frame may be
// longer (eg. it includes payload beyond hlen). Returns true on a
// clean stop, false if a parser hit truncated or malformed input --
// either way target.Control/target.Basic are always populated.
func Dissect(desc *Descriptor, target *FlowKeys, frame []byte, proto uint16, nhoff, hlen uint16, flags Flags) bool {
	st := &state{
		desc:  desc,
		base:  unsafe.Pointer(target),
		win:   NewWindow(frame, int(hlen)),
		flags: flags,
		proto: proto,
		nhoff: int(nhoff),
	}

	// CONTROL and BASIC are guaranteed present by NewDescriptor.
	if p, ok := targetFor(desc, st.base, KEY_CONTROL); ok {
		st.control = (*Control)(p)
	}
	if p, ok := targetFor(desc, st.base, KEY_BASIC); ok {
		st.basic = (*Basic)(p)
	}

	if desc.Uses(KEY_ETH_ADDRS) {
		if b, ok := st.win.Peek(0, 12); ok {
			var ea EthAddrs
			copy(ea.Dst[:], b[0:6])
			copy(ea.Src[:], b[6:12])
			setKey(desc, st.base, KEY_ETH_ADDRS, ea)
		}
	}

	ok := dissectLoop(st)

	// Finalization runs on every path, success or failure.
	thoff := st.nhoff
	if thoff > st.win.Len() {
		thoff = st.win.Len()
	}
	st.control.ThOff = uint16(thoff)
	st.basic.NProto = st.proto
	st.basic.IPProto = st.ipProto

	return ok
}

// dissectLoop runs the interleaved L2 (proto) / L3+L4 (ip_proto) state
// machine. It returns the overall success boolean; callers still must
// run Dissect's finalization step.
func dissectLoop(st *state) bool {
outer:
	for {
		v := dissectProto(st)
		switch v {
		case VERDICT_OUT_GOOD:
			return true
		case VERDICT_OUT_BAD:
			return false
		case VERDICT_PROTO_AGAIN:
			if st.allowAnotherHeader() {
				continue outer
			}
			return true
		}

		// VERDICT_CONTINUE or VERDICT_IPPROTO_AGAIN: fall into the
		// L3/L4 loop, same as the kernel falling through from the
		// proto switch into the ip_proto_again label.
		for {
			v := dissectIPProto(st)

			laterFrag := st.control.Flags&FLAG_IS_FRAGMENT != 0 && st.control.Flags&FLAG_FIRST_FRAG == 0
			if desc := st.desc; desc.Uses(KEY_PORTS) && !laterFrag {
				writePorts(st)
			}
			if st.desc.Uses(KEY_ICMP) {
				writeICMP(st)
			}

			switch v {
			case VERDICT_OUT_BAD:
				return false
			case VERDICT_PROTO_AGAIN:
				if st.allowAnotherHeader() {
					continue outer
				}
				return true
			case VERDICT_IPPROTO_AGAIN:
				if st.allowAnotherHeader() {
					continue
				}
				return true
			default: // VERDICT_OUT_GOOD, VERDICT_CONTINUE
				return true
			}
		}
	}
}

// dissectProto runs the L2 switch on st.proto.
func dissectProto(st *state) verdict {
	switch st.proto {
	case ETH_P_IP:
		return parseIPv4(st)
	case ETH_P_IPV6:
		return parseIPv6(st)
	case ETH_P_8021Q, ETH_P_8021AD:
		return parseVLAN(st)
	case ETH_P_PPP_SES:
		return parsePPPoE(st)
	case ETH_P_TIPC:
		return parseTIPC(st)
	case ETH_P_MPLS_UC, ETH_P_MPLS_MC:
		return parseMPLS(st)
	case ETH_P_FCOE:
		return parseFCoE(st)
	case ETH_P_ARP, ETH_P_RARP:
		return parseARP(st)
	case ETH_P_BATMAN:
		return parseBatadv(st)
	default:
		return VERDICT_OUT_BAD
	}
}

// dissectIPProto runs the L3/L4 switch on st.ipProto.
func dissectIPProto(st *state) verdict {
	switch st.ipProto {
	case IPPROTO_GRE:
		return parseGRE(st)
	case NEXTHDR_HOP, NEXTHDR_ROUTING, NEXTHDR_DEST:
		if st.proto != ETH_P_IPV6 {
			return VERDICT_CONTINUE
		}
		return parseExt6(st)
	case NEXTHDR_FRAGMENT:
		if st.proto != ETH_P_IPV6 {
			return VERDICT_CONTINUE
		}
		return parseFrag6(st)
	case IPPROTO_IPIP:
		return parseIPIP(st, ETH_P_IP)
	case IPPROTO_IPV6:
		return parseIPIP(st, ETH_P_IPV6)
	case IPPROTO_MPLS:
		st.proto = ETH_P_MPLS_UC
		return VERDICT_PROTO_AGAIN
	case IPPROTO_TCP:
		parseTCPFlags(st)
		return VERDICT_CONTINUE
	default:
		return VERDICT_CONTINUE
	}
}
