// Package steer simulates RSS-style receive-queue steering: it hashes
// each frame with flowhash and assigns it to one of a fixed number of
// queues, the same way a NIC would distribute flows across its RX
// rings using a stable, direction-independent hash. It also tracks
// per-queue load so a caller can detect a skewed distribution.
package steer

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/flowdissect/flowdissect/flowhash"
)

// Steerer assigns frames to one of NumQueues receive queues by flow
// hash, and counts packets landed on each queue. Safe for concurrent
// use by multiple dissecting goroutines.
type Steerer struct {
	NumQueues uint32

	counts *xsync.MapOf[uint32, *counter]

	// Logger receives a warning whenever a frame fails to dissect
	// cleanly; nil disables logging. LimitImbalance, if non-nil, rate-
	// limits a separate warning for when one queue runs far ahead of
	// the mean.
	Logger         *zerolog.Logger
	LimitImbalance *rate.Limiter
}

type counter struct {
	n atomic.Int64
}

// New builds a Steerer that hashes into numQueues queues using the
// symmetric key set (CONTROL, BASIC, IPV4_ADDRS, IPV6_ADDRS, PORTS).
// A numQueues of 0 is treated as 1.
func New(numQueues uint32) *Steerer {
	if numQueues == 0 {
		numQueues = 1
	}
	return &Steerer{
		NumQueues: numQueues,
		counts:    xsync.NewMapOf[uint32, *counter](),
	}
}

func (s *Steerer) logger() *zerolog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

// Queue hashes frame (STOP_AT_FLOW_LABEL, symmetric key set) and
// returns which of s.NumQueues queues it lands on, bumping that
// queue's counter. ok mirrors Dissect's own success/failure signal;
// a failed dissection is still assigned a queue (partial FlowKeys
// still hash deterministically), but is logged at warn level.
func (s *Steerer) Queue(frame []byte, proto uint16, nhoff, hlen uint16) (queue uint32, ok bool) {
	hash, ok := flowhash.FrameSymmetric(frame, proto, nhoff, hlen)
	if !ok {
		s.logger().Warn().
			Uint16("proto", proto).
			Int("frame_len", len(frame)).
			Msg("steer: dissection did not complete cleanly")
	}

	queue = hash % s.NumQueues
	c, _ := s.counts.LoadOrCompute(queue, func() *counter { return &counter{} })
	c.n.Add(1)

	return queue, ok
}

// Count returns the number of frames steered to queue so far.
func (s *Steerer) Count(queue uint32) int64 {
	c, ok := s.counts.Load(queue)
	if !ok {
		return 0
	}
	return c.n.Load()
}

// Total returns the number of frames steered across every queue.
func (s *Steerer) Total() int64 {
	var total int64
	s.counts.Range(func(_ uint32, c *counter) bool {
		total += c.n.Load()
		return true
	})
	return total
}

// CheckImbalance logs (rate-limited, via LimitImbalance) a warning if
// queue's share of traffic exceeds threshold (eg. 0.5 for "more than
// half of all traffic on one queue") -- the kind of check a caller
// would run periodically to catch a degenerate hash distribution.
func (s *Steerer) CheckImbalance(queue uint32, threshold float64) {
	total := s.Total()
	if total == 0 {
		return
	}
	share := float64(s.Count(queue)) / float64(total)
	if share <= threshold {
		return
	}
	if s.LimitImbalance != nil && !s.LimitImbalance.Allow() {
		return
	}
	s.logger().Warn().
		Uint32("queue", queue).
		Float64("share", share).
		Msg("steer: queue receiving disproportionate share of traffic")
}
