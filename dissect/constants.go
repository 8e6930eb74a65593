package dissect

// EtherType values the driver's L2 switch recognizes, network byte
// order values stored host-endian here (comparisons are done against
// the proto field after it has been byte-swapped once on read).
const (
	ETH_P_IP       uint16 = 0x0800
	ETH_P_ARP      uint16 = 0x0806
	ETH_P_RARP     uint16 = 0x8035
	ETH_P_8021Q    uint16 = 0x8100
	ETH_P_IPV6     uint16 = 0x86DD
	ETH_P_PPP_SES  uint16 = 0x8864
	ETH_P_MPLS_UC  uint16 = 0x8847
	ETH_P_MPLS_MC  uint16 = 0x8848
	ETH_P_8021AD   uint16 = 0x88A8
	ETH_P_BATMAN   uint16 = 0x4305
	ETH_P_TIPC     uint16 = 0x88CA
	ETH_P_FCOE     uint16 = 0x8906
	ETH_P_TEB      uint16 = 0x6558
)

// IP protocol numbers the driver's L3/L4 switch recognizes.
const (
	IPPROTO_ICMP     uint8 = 1
	IPPROTO_IGMP     uint8 = 2
	IPPROTO_TCP      uint8 = 6
	IPPROTO_UDP      uint8 = 17
	IPPROTO_IPV6     uint8 = 41
	IPPROTO_GRE      uint8 = 47
	IPPROTO_ICMPV6   uint8 = 58
	IPPROTO_IPIP     uint8 = 4
	IPPROTO_DCCP     uint8 = 33
	IPPROTO_SCTP     uint8 = 132
	IPPROTO_UDPLITE  uint8 = 136
	IPPROTO_MPLS     uint8 = 137

	// IPv6 extension header "next header" values
	NEXTHDR_HOP      uint8 = 0
	NEXTHDR_ROUTING  uint8 = 43
	NEXTHDR_FRAGMENT uint8 = 44
	NEXTHDR_DEST     uint8 = 60
)

// PPP protocol numbers, as carried inside PPPoE session frames and GRE/PPTP.
const (
	PPP_IP      uint16 = 0x0021
	PPP_IPV6    uint16 = 0x0057
	PPP_HDRLEN  int    = 4 // address(1) + control(1) + protocol(2)
)

// GRE header flag bits (network byte order, upper bits of the 16-bit
// flags+version field).
const (
	GRE_CSUM    uint16 = 0x8000
	GRE_ROUTING uint16 = 0x4000
	GRE_KEY     uint16 = 0x2000
	GRE_SEQ     uint16 = 0x1000
	GRE_ACK     uint16 = 0x0080 // version-1 (PPTP) only
	GRE_VERSION uint16 = 0x0007

	GRE_PROTO_PPP     uint16 = 0x880B
	GRE_PPTP_KEY_MASK uint32 = 0xFFFF
)

// ARP/RARP opcodes and hardware/protocol type constants.
const (
	ARPHRD_ETHER uint16 = 1
	ARPOP_REQUEST uint16 = 1
	ARPOP_REPLY   uint16 = 2
)

// batman-adv constants (unicast packet type only -- the only variant
// this dissector continues through).
const (
	BATADV_COMPAT_VERSION uint8 = 15
	BATADV_UNICAST        uint8 = 4
)

// MPLS reserved label values.
const (
	MPLS_LABEL_ENTROPY uint32 = 13 // reserved "Entropy Label Indicator"
)

// PPPoE / FCoE fixed header lengths.
const (
	PPPOE_SES_HLEN uint16 = 8
	FCOE_HEADER_LEN int = 14 // FC frame header fields read before the payload
)
