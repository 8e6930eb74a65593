package dissect

// verdict is returned by each per-protocol parser and consumed by the
// driver loop in place of a labeled-goto switch.
type verdict uint8

//go:generate go run github.com/dmarkham/enumer -type=verdict -trimprefix VERDICT_
const (
	// VERDICT_CONTINUE lets the outer switch proceed to the next stage.
	VERDICT_CONTINUE verdict = iota
	// VERDICT_PROTO_AGAIN restarts the L2 switch on the (updated) proto.
	VERDICT_PROTO_AGAIN
	// VERDICT_IPPROTO_AGAIN restarts the L3/L4 switch on the (updated) ip_proto.
	VERDICT_IPPROTO_AGAIN
	// VERDICT_OUT_GOOD stops dissection successfully.
	VERDICT_OUT_GOOD
	// VERDICT_OUT_BAD stops dissection with failure.
	VERDICT_OUT_BAD
)
