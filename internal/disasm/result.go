package disasm

// Result is the closed set of outcomes a decode can report. The decoder
// never panics and never retries; Result plus Instruction.Length is the
// entire contract between a decode call and its caller.
type Result int

const (
	// OK - the instruction was decoded successfully; every Instruction
	// field is populated per its invariants.
	OK Result = iota
	// OutOfSpace - a read would have consumed more bytes than remained in
	// the input. Instruction.Length reports how many bytes were consumed
	// before the short read was attempted.
	OutOfSpace
	// UnknownOpcode - the DFA reached a zero cell: either a genuinely
	// illegal encoding or one outside the supported subset (three-byte
	// escapes, VEX/EVEX, some MMX/x87 forms).
	UnknownOpcode
	// InvalidRX - retained for API stability with an earlier decoder that
	// rejected a non-zero ModR/M rx field on certain opcode-extension
	// forms (e.g. multi-byte NOP). The table-driven DFA here cannot
	// distinguish this from UnknownOpcode and never produces it.
	InvalidRX
)

func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case OutOfSpace:
		return "OUT_OF_SPACE"
	case UnknownOpcode:
		return "UNKNOWN_OPCODE"
	case InvalidRX:
		return "INVALID_RX"
	default:
		return "UNKNOWN_RESULT"
	}
}

// Error satisfies the error interface so CLI-layer code can fold a Result
// into a normal Go error at the point it needs to report failure; the
// decoder itself never deals in error values.
func (r Result) Error() string {
	return r.String()
}
