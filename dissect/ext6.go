package dissect

// parseExt6 dissects a hop-by-hop, routing, or destination-options IPv6
// extension header at st.nhoff, and advances past it.
// Only the next-header and length fields are read; the caller is
// assumed to have already checked st.proto == ETH_P_IPV6.
func parseExt6(st *state) verdict {
	b, ok := st.win.Peek(st.nhoff, 2)
	if !ok {
		return VERDICT_OUT_BAD
	}

	st.ipProto = b[0]
	st.nhoff += (int(b[1]) + 1) << 3

	return VERDICT_IPPROTO_AGAIN
}
