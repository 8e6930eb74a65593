package dissect

// parseFCoE dissects nothing beyond skipping the fixed FCoE encapsulation
// header: the Fibre Channel frame underneath carries
// no flow-identifying fields this dissector understands, so it simply
// stops here, successfully.
func parseFCoE(st *state) verdict {
	if _, ok := st.win.Peek(st.nhoff, FCOE_HEADER_LEN); !ok {
		return VERDICT_OUT_BAD
	}
	st.nhoff += FCOE_HEADER_LEN
	return VERDICT_OUT_GOOD
}
