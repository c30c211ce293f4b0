// Package x86_64 is the public decoding API: a thin, re-exporting façade
// over internal/disasm's prefix scanner, opcode DFA, and encoding-mode
// interpreter, plus the register catalog and Intel-syntax pretty-printer
// that turn a decoded record into text.
package x86_64

import (
	"io"

	"github.com/keurnel/x64disasm/internal/disasm"
)

// Re-exported so callers never need to import internal/disasm directly.
type (
	Instruction = disasm.Instruction
	MemOperand  = disasm.MemOperand
	Kind        = disasm.Kind
	Result      = disasm.Result
	Flags       = disasm.Flags
	DataType    = disasm.DataType
	Segment     = disasm.Segment
	RegSlot     = disasm.RegSlot
)

const (
	OK            = disasm.OK
	OutOfSpace    = disasm.OutOfSpace
	UnknownOpcode = disasm.UnknownOpcode
	InvalidRX     = disasm.InvalidRX
)

const (
	RegNone   = disasm.RegNone
	RegAHBase = disasm.RegAHBase
)

const (
	XMMREG       = disasm.XMMREG
	UseMemOp     = disasm.UseMemOp
	UseRIPMem    = disasm.UseRIPMem
	Lock         = disasm.Lock
	Immediate    = disasm.Immediate
	Absolute     = disasm.Absolute
	Direction    = disasm.Direction
	TwoDataTypes = disasm.TwoDataTypes
)

// Decode reads one instruction from the front of code. On a non-OK Result
// only Length is meaningful; the caller advances by that many bytes (even
// on OutOfSpace, to see how far the attempt got) before deciding whether to
// retry with more input or abort.
func Decode(code []byte) (Instruction, Result) {
	return disasm.Decode(code)
}

// DumpDFA writes a line-per-transition trace of the opcode DFA to w. A
// debugging aid, not part of the decode contract.
func DumpDFA(w io.Writer) {
	disasm.DumpDFA(w)
}
