package disasm

// walkResult is what a completed DFA walk hands back to Decode: the
// terminal's raw mode and kind, the byte that reached it (needed to resolve
// +R registers and condition codes), and whether it was a +R terminal.
type walkResult struct {
	mode    EncodingMode
	kind    Kind
	trigger byte
	plusR   bool
}

// walkDFA runs §4.4's opcode DFA starting from firstByte, the byte
// scanPrefixes already returned, rooted at start (entryState, or
// sixteenBitState when the 0x66 pre-dispatch in Decode selected the
// word-sized sub-table). It consumes exactly the bytes the walk itself
// needs (RX-DIG dispatch peeks the ModR/M byte without consuming it, since
// the interpreter still needs to read it in full).
func walkDFA(c *Cursor, firstByte byte, start int) (walkResult, Result) {
	state := start
	b := firstByte

	for {
		word := table.get(state, b)
		if word == 0 {
			return walkResult{}, UnknownOpcode
		}
		if word.isTerminal() {
			return walkResult{
				mode:    word.mode(),
				kind:    word.kind(),
				trigger: b,
				plusR:   word.isPlusR(),
			}, OK
		}
		if word.isRXDig() {
			peek, ok := c.PeekU8()
			if !ok {
				return walkResult{}, OutOfSpace
			}
			state = word.nextState()
			b = peek >> 3 & 7
			continue
		}
		nb, ok := c.ReadU8()
		if !ok {
			return walkResult{}, OutOfSpace
		}
		state = word.nextState()
		b = nb
	}
}
