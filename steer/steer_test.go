package steer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func ethHeader(etype uint16) []byte {
	b := make([]byte, 14)
	binary.BigEndian.PutUint16(b[12:14], etype)
	return b
}

func ipv4UDPFrame(src, dst [4]byte, srcPort, dstPort uint16) []byte {
	eth := ethHeader(0x0800)
	ip := make([]byte, 20)
	ip[0] = 0x45
	binary.BigEndian.PutUint16(ip[2:4], 28)
	ip[8] = 64
	ip[9] = 17 // UDP
	copy(ip[12:16], src[:])
	copy(ip[16:20], dst[:])
	udp := make([]byte, 8)
	binary.BigEndian.PutUint16(udp[0:2], srcPort)
	binary.BigEndian.PutUint16(udp[2:4], dstPort)
	return append(append(eth, ip...), udp...)
}

func TestQueue_Deterministic(t *testing.T) {
	s := New(8)
	frame := ipv4UDPFrame([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 1111, 80)

	q1, ok1 := s.Queue(frame, 0x0800, 14, uint16(len(frame)))
	q2, ok2 := s.Queue(frame, 0x0800, 14, uint16(len(frame)))
	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, q1, q2)
	require.Less(t, q1, uint32(8))
}

func TestQueue_SymmetricAcrossDirection(t *testing.T) {
	s := New(8)
	fwd := ipv4UDPFrame([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 1111, 80)
	rev := ipv4UDPFrame([4]byte{10, 0, 0, 2}, [4]byte{10, 0, 0, 1}, 80, 1111)

	qFwd, _ := s.Queue(fwd, 0x0800, 14, uint16(len(fwd)))
	qRev, _ := s.Queue(rev, 0x0800, 14, uint16(len(rev)))
	require.Equal(t, qFwd, qRev)
}

func TestQueue_CountsAccumulate(t *testing.T) {
	s := New(4)
	frame := ipv4UDPFrame([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 1, 2)

	for i := 0; i < 5; i++ {
		s.Queue(frame, 0x0800, 14, uint16(len(frame)))
	}

	require.EqualValues(t, 5, s.Total())
	q, _ := s.Queue(frame, 0x0800, 14, uint16(len(frame)))
	require.EqualValues(t, 6, s.Count(q))
}

func TestNew_ZeroQueuesClampedToOne(t *testing.T) {
	s := New(0)
	require.EqualValues(t, 1, s.NumQueues)
}

func TestCheckImbalance_NoPanicOnEmpty(t *testing.T) {
	s := New(4)
	s.CheckImbalance(0, 0.5) // no traffic yet: must be a no-op, not a panic
}
