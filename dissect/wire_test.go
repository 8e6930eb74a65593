// Protocol-level dissection tests, one scenario per supported header.
package dissect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	macA = [6]byte{0x02, 0, 0, 0, 0, 0x01}
	macB = [6]byte{0x02, 0, 0, 0, 0, 0x02}
	ipA  = [4]byte{10, 0, 0, 1}
	ipB  = [4]byte{10, 0, 0, 2}
	ip6A = [16]byte{0x20, 0x01, 0xdb, 8}
	ip6B = [16]byte{0x20, 0x01, 0xdb, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
)

func TestIPv4_TCP(t *testing.T) {
	desc := fullKeys()

	frame := join(
		ethHeader(macB, macA, ETH_P_IP),
		ipv4Header(ipA, ipB, IPPROTO_TCP, 40, 0, 64, 0x10),
		tcpHeader(1234, 80, 0x002), // SYN
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_IP, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.Equal(t, ipA, fk.IPv4.Src)
	require.Equal(t, ipB, fk.IPv4.Dst)
	require.Equal(t, KeyId(KEY_IPV4_ADDRS), fk.Control.AddrType)
	require.EqualValues(t, 64, fk.IP.TTL)
	require.EqualValues(t, 0x10, fk.IP.TOS)
	require.EqualValues(t, uint16(1234), fk.Ports.Src)
	require.EqualValues(t, uint16(80), fk.Ports.Dst)
	require.EqualValues(t, 0x002, fk.TCP.Flags)
	require.EqualValues(t, IPPROTO_TCP, fk.Basic.IPProto)
	require.EqualValues(t, ETH_P_IP, fk.Basic.NProto)
}

func TestIPv4_FragmentsSkipL4(t *testing.T) {
	desc := fullKeys()

	// non-initial fragment (offset != 0): dissection must stop at L3
	frame := join(
		ethHeader(macB, macA, ETH_P_IP),
		ipv4Header(ipA, ipB, IPPROTO_UDP, 1500, 100, 64, 0),
		udpHeader(1, 2),
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_IP, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.NotZero(t, fk.Control.Flags&FLAG_IS_FRAGMENT)
	require.Zero(t, fk.Control.Flags&FLAG_FIRST_FRAG)
	require.Zero(t, fk.Ports.Src) // never reached

	// first fragment without PARSE_1ST_FRAG: also stops
	frame2 := join(
		ethHeader(macB, macA, ETH_P_IP),
		ipv4Header(ipA, ipB, IPPROTO_UDP, 1500, 0x2000, 64, 0), // MF set, offset 0
		udpHeader(1, 2),
	)
	var fk2 FlowKeys
	ok = Dissect(desc, &fk2, frame2, ETH_P_IP, 14, uint16(len(frame2)), 0)
	require.True(t, ok)
	require.NotZero(t, fk2.Control.Flags&FLAG_FIRST_FRAG)
	require.Zero(t, fk2.Ports.Src)

	// first fragment with PARSE_1ST_FRAG: L4 is dissected
	var fk3 FlowKeys
	ok = Dissect(desc, &fk3, frame2, ETH_P_IP, 14, uint16(len(frame2)), PARSE_1ST_FRAG)
	require.True(t, ok)
	require.EqualValues(t, 1, fk3.Ports.Src)
}

func TestIPv6_FlowLabelAndStop(t *testing.T) {
	desc := fullKeys()

	frame := join(
		ethHeader(macB, macA, ETH_P_IPV6),
		ipv6Header(ip6A, ip6B, IPPROTO_UDP, 0xABCDE, 5),
		udpHeader(10, 20),
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_IPV6, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.EqualValues(t, 0xABCDE, fk.FlowLabel.Label)
	require.EqualValues(t, 10, fk.Ports.Src)

	// STOP_AT_FLOW_LABEL halts right after the flow label is observed
	var fk2 FlowKeys
	ok = Dissect(desc, &fk2, frame, ETH_P_IPV6, 14, uint16(len(frame)), STOP_AT_FLOW_LABEL)
	require.True(t, ok)
	require.Zero(t, fk2.Ports.Src)
}

func TestVLAN_OnlyOutermostRecorded(t *testing.T) {
	desc := fullKeys()

	inner := join(
		ipv4Header(ipA, ipB, IPPROTO_UDP, 28, 0, 64, 0),
		udpHeader(1, 2),
	)
	frame := join(
		ethHeader(macB, macA, ETH_P_8021Q),
		vlanTag(3, 100, ETH_P_8021Q), // outer tag, carries another VLAN tag
		vlanTag(5, 200, ETH_P_IP),    // inner (QinQ) tag, not recorded
		inner,
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_8021Q, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.EqualValues(t, 100, fk.VLAN.ID)
	require.EqualValues(t, 3, fk.VLAN.Priority)
	require.Equal(t, ipA, fk.IPv4.Src)
}

func TestMPLS_EntropyLabel(t *testing.T) {
	desc := fullKeys()

	frame := join(
		ethHeader(macB, macA, ETH_P_MPLS_UC),
		mplsEntry(MPLS_LABEL_ENTROPY, 0, 0, 32), // entropy indicator, not BOS
		mplsEntry(0xABCDE, 0, 1, 16),             // the actual entropy value
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_MPLS_UC, 14, uint16(len(frame)), 0)
	require.True(t, ok) // MPLS always terminates with OUT_GOOD
	require.EqualValues(t, 0xABCDE<<mplsLabelShift, fk.MPLSEntropy.KeyID)
}

func TestMPLS_PlainLabel(t *testing.T) {
	desc := fullKeys()

	frame := join(
		ethHeader(macB, macA, ETH_P_MPLS_UC),
		mplsEntry(12345, 3, 1, 200),
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_MPLS_UC, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.EqualValues(t, 12345, fk.MPLS.Label)
	require.EqualValues(t, 3, fk.MPLS.TC)
	require.EqualValues(t, 1, fk.MPLS.BOS)
	require.EqualValues(t, 200, fk.MPLS.TTL)
}

func TestGRE_TEB(t *testing.T) {
	desc := fullKeys()

	innerEth := ethHeader(macA, macB, ETH_P_IP)
	innerIP := ipv4Header(ipA, ipB, IPPROTO_UDP, 28, 0, 64, 0)
	frame := join(
		ethHeader(macB, macA, ETH_P_IP),
		ipv4Header(ipB, ipA, IPPROTO_GRE, 100, 0, 64, 0),
		greHeader(0, ETH_P_TEB),
		innerEth,
		innerIP,
		udpHeader(5, 6),
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_IP, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.True(t, fk.Control.Flags&FLAG_ENCAPSULATION != 0) // crossing GRE sets ENCAPSULATION
	require.Equal(t, ipA, fk.IPv4.Src)
	require.EqualValues(t, 5, fk.Ports.Src)
}

func TestGRE_KeyID(t *testing.T) {
	desc := fullKeys()

	var keyBuf [4]byte
	keyBuf[0], keyBuf[1], keyBuf[2], keyBuf[3] = 0, 0, 0x12, 0x34

	frame := join(
		ethHeader(macB, macA, ETH_P_IP),
		ipv4Header(ipB, ipA, IPPROTO_GRE, 100, 0, 64, 0),
		greHeader(GRE_KEY, ETH_P_IP),
		keyBuf[:],
		ipv4Header(ipA, ipB, IPPROTO_UDP, 28, 0, 64, 0),
		udpHeader(7, 8),
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_IP, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.EqualValues(t, 0x1234, fk.GREKeyID.KeyID)
	require.EqualValues(t, 7, fk.Ports.Src)
}

func TestIPIP_Encapsulation(t *testing.T) {
	desc := fullKeys()

	frame := join(
		ethHeader(macB, macA, ETH_P_IP),
		ipv4Header(ipB, ipA, IPPROTO_IPIP, 48, 0, 64, 0),
		ipv4Header(ipA, ipB, IPPROTO_TCP, 40, 0, 64, 0),
		tcpHeader(1, 2, 0),
	)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_IP, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.NotZero(t, fk.Control.Flags&FLAG_ENCAPSULATION)
	require.Equal(t, ipA, fk.IPv4.Src) // innermost addresses win
}

func TestARP_Request(t *testing.T) {
	desc := fullKeys()

	arp := make([]byte, 28)
	arp[0], arp[1] = 0, 1 // ARPHRD_ETHER
	arp[2], arp[3] = 0x08, 0x00
	arp[4], arp[5] = 6, 4
	arp[6], arp[7] = 0, 1 // ARPOP_REQUEST
	copy(arp[8:14], macA[:])
	copy(arp[14:18], ipA[:])
	copy(arp[24:28], ipB[:])

	frame := join(ethHeader([6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, macA, ETH_P_ARP), arp)

	var fk FlowKeys
	ok := Dissect(desc, &fk, frame, ETH_P_ARP, 14, uint16(len(frame)), 0)
	require.True(t, ok)
	require.Equal(t, ipA, fk.ARP.SIP)
	require.Equal(t, ipB, fk.ARP.TIP)
	require.EqualValues(t, 1, fk.ARP.Op)
}

func TestTruncatedHeaders(t *testing.T) {
	desc := fullKeys()

	cases := []struct {
		name  string
		proto uint16
		frame []byte
	}{
		{"short ipv4", ETH_P_IP, join(ethHeader(macB, macA, ETH_P_IP), []byte{0x45, 0, 0, 1})},
		{"short ipv6", ETH_P_IPV6, join(ethHeader(macB, macA, ETH_P_IPV6), make([]byte, 10))},
		{"short vlan", ETH_P_8021Q, join(ethHeader(macB, macA, ETH_P_8021Q), []byte{0, 1})},
		{"short arp", ETH_P_ARP, join(ethHeader(macB, macA, ETH_P_ARP), make([]byte, 8))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var fk FlowKeys
			ok := Dissect(desc, &fk, c.frame, c.proto, 14, uint16(len(c.frame)), 0)
			require.False(t, ok)
			// finalization still ran
			require.EqualValues(t, c.proto, fk.Basic.NProto)
		})
	}
}
