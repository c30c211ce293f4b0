package disasm

// MemOperand is the decoded [base+index*scale+disp] (or RIP-relative) form
// of a ModR/M+SIB addressing computation.
//
// When Instruction.Flags has UseRIPMem set, Base and Index are both RegNone,
// Scale is 1, and Disp holds the raw disp32 the caller adds to RIP (the
// address of the *next* instruction, i.e. start address + Instruction.Length).
type MemOperand struct {
	Base  RegSlot
	Index RegSlot
	Scale byte // one of 1, 2, 4, 8
	Disp  int32
}

// Instruction is the structured result of decoding one x86-64 instruction.
// On a non-OK Result only Length is meaningful.
type Instruction struct {
	Kind      Kind     // instruction-kind index into the descriptor table
	DataType  DataType // primary operand data type
	DataType2 DataType // secondary data type, valid iff Flags has TwoDataTypes
	Segment   Segment  // segment override in effect, or SegNone
	Flags     Flags
	Length    int // total bytes consumed, including every prefix and the opcode

	// Reg holds up to four register-slot operands. Which slots are
	// meaningful depends on the encoding mode: most forms use Reg[0] and
	// Reg[1]; Reg[2]/Reg[3] are reserved for forms this decoder's
	// supported subset never produces but which the slot layout in the
	// source format otherwise allows for.
	Reg [4]RegSlot

	Imm int32  // signed 32-bit immediate, valid iff Flags has Immediate
	Abs uint64 // 64-bit absolute immediate, valid iff Flags has Absolute

	Mem MemOperand // valid iff Flags has UseMemOp
}

// Kind identifies an instruction's mnemonic (and, for condition-code
// bearing families, which of the sixteen conditions) by indexing descs.
type Kind int

// Segment is a segment-override prefix, or SegNone when none was seen.
type Segment int

const (
	SegNone Segment = iota
	SegCS
	SegSS
	SegDS
	SegES
	SegFS
	SegGS
)

func (s Segment) String() string {
	switch s {
	case SegCS:
		return "cs"
	case SegSS:
		return "ss"
	case SegDS:
		return "ds"
	case SegES:
		return "es"
	case SegFS:
		return "fs"
	case SegGS:
		return "gs"
	default:
		return ""
	}
}
