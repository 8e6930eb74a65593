package dissect

// parseIPIP handles IP-in-IP and IPv6-in-IP encapsulation: the inner
// header starts exactly where the outer one ended,
// so nhoff is left untouched; only proto changes and the
// ENCAPSULATION flag is raised.
func parseIPIP(st *state, innerProto uint16) verdict {
	st.proto = innerProto
	st.control.Flags |= FLAG_ENCAPSULATION

	if st.flags&STOP_AT_ENCAP != 0 {
		return VERDICT_OUT_GOOD
	}
	return VERDICT_PROTO_AGAIN
}
