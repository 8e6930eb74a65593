package dissect

// Window is the bounded read primitive every parser goes through: it
// never lets the driver see a byte outside the frame's validated
// prefix. Only a header_pointer(offset, len) capability is required of
// the caller; here that capability is a validated-length byte slice,
// which is the natural Go shape for "caller already has the frame
// contiguous in memory" (the common case for any packet capture or
// eBPF-perf-ring consumer).
type Window struct {
	frame []byte
	hlen  int // validated prefix length; may be < len(frame)
}

// NewWindow returns a Window over frame, with the validated prefix
// capped at hlen bytes (hlen may exceed len(frame); it is clamped).
func NewWindow(frame []byte, hlen int) Window {
	if hlen > len(frame) || hlen < 0 {
		hlen = len(frame)
	}
	return Window{frame: frame, hlen: hlen}
}

// Len returns the validated prefix length.
func (w Window) Len() int {
	return w.hlen
}

// Peek returns a read-only view of w.frame[offset:offset+length], or
// (nil, false) if that range falls outside the validated prefix. The
// returned slice must not be retained past the dissection call, and
// must never be written to.
func (w Window) Peek(offset, length int) ([]byte, bool) {
	if offset < 0 || length < 0 {
		return nil, false
	}
	end := offset + length
	if end < offset || end > w.hlen {
		return nil, false
	}
	return w.frame[offset:end], true
}

// Byte is a convenience helper for Peek(offset, 1).
func (w Window) Byte(offset int) (byte, bool) {
	b, ok := w.Peek(offset, 1)
	if !ok {
		return 0, false
	}
	return b[0], true
}
