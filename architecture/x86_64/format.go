package x86_64

import (
	"fmt"
	"strings"

	"github.com/keurnel/x64disasm/internal/disasm"
)

// Format renders one decoded instruction in Intel-ish syntax: a 16-hex
// address column, the raw bytes (wrapped at six per line), the mnemonic
// (lock-prefixed when Flags has Lock) left-justified to 12 columns, and a
// comma-separated operand list. Memory operands carry their width keyword
// (and segment override, if any); this is a lossy, one-way rendering (zero
// displacements are elided, for one).
func Format(addr uint64, raw []byte, inst Instruction) string {
	mnemonic := inst.Kind.Name()
	if inst.Flags.Has(Lock) {
		mnemonic = "lock " + mnemonic
	}
	operands := strings.Join(operandStrings(inst), ", ")

	lines := formatByteLines(raw)
	var b strings.Builder
	fmt.Fprintf(&b, "%016x:  %-18s  %-12s%s", addr, lines[0], mnemonic, operands)
	blank := strings.Repeat(" ", 16)
	for _, extra := range lines[1:] {
		fmt.Fprintf(&b, "\n%s:  %-18s", blank, extra)
	}
	return b.String()
}

const bytesPerLine = 6

func formatByteLines(raw []byte) []string {
	if len(raw) == 0 {
		return []string{""}
	}
	var lines []string
	for i := 0; i < len(raw); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(raw) {
			end = len(raw)
		}
		lines = append(lines, hexBytes(raw[i:end]))
	}
	return lines
}

func hexBytes(raw []byte) string {
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// operandStrings recovers Intel-order operand text from a decoded
// Instruction. Reg[0]/Reg[1] (or the memory operand, whichever occupies the
// "rm" slot) are ordered the same way decode.go filled them: Direction
// already puts the destination at index 0, so iterating slots in order
// reproduces Intel's dest-first convention without re-deriving direction
// from the encoding mode.
func operandStrings(inst Instruction) []string {
	useXMM := inst.Flags.Has(XMMREG)

	rmSlot, regSlot := 0, 1
	if inst.Flags.Has(Direction) {
		rmSlot, regSlot = 1, 0
	}

	var widths [4]DataType
	for i := range widths {
		widths[i] = inst.DataType
	}
	if inst.Flags.Has(TwoDataTypes) {
		widths[rmSlot] = inst.DataType2
		widths[regSlot] = inst.DataType
	}

	var ops []string
	for i := 0; i < len(inst.Reg); i++ {
		if inst.Flags.Has(UseMemOp) && i == rmSlot {
			ops = append(ops, formatMemOperand(inst, widths[i]))
			continue
		}
		if inst.Reg[i] == RegNone {
			continue
		}
		ops = append(ops, regName(inst.Reg[i], useXMM, widths[i]))
	}

	if inst.Flags.Has(Immediate) {
		ops = append(ops, formatImmediate(inst.Kind, inst.Imm))
	}
	if inst.Flags.Has(Absolute) {
		ops = append(ops, fmt.Sprintf("0x%x", inst.Abs))
	}
	return ops
}

// isRelativeBranch reports whether k's immediate is a signed displacement
// from the next instruction (printed as a signed decimal offset) rather
// than a literal value (printed as hex) — e.g. PUSH imm32 shares an
// encoding mode with JMP rel32 but is not relative.
func isRelativeBranch(k Kind) bool {
	switch k {
	case disasm.KindCALL, disasm.KindJMP, disasm.KindJMPShort:
		return true
	}
	return k >= disasm.KindJccBase && k < disasm.KindJccBase+16
}

func formatImmediate(k Kind, imm int32) string {
	if isRelativeBranch(k) {
		if imm >= 0 {
			return fmt.Sprintf("+%d", imm)
		}
		return fmt.Sprintf("%d", imm)
	}
	if imm < 0 {
		return fmt.Sprintf("-0x%x", -int64(imm))
	}
	return fmt.Sprintf("0x%x", imm)
}

func regName(slot RegSlot, useXMM bool, dt DataType) string {
	if slot == RegNone {
		return ""
	}
	if slot.IsHighByte() {
		return highByteNames[slot-RegAHBase]
	}
	idx := byte(slot)
	if useXMM {
		return xmmNames[idx]
	}
	switch dt {
	case disasm.BYTE:
		return gpr8Names[idx]
	case disasm.WORD:
		return gpr16Names[idx]
	case disasm.QWORD:
		return gpr64Names[idx]
	default:
		return gpr32Names[idx]
	}
}

func formatMemOperand(inst Instruction, dt DataType) string {
	addr := formatMemAddr(inst.Mem, inst.Flags.Has(UseRIPMem))
	seg := ""
	if inst.Segment != disasm.SegNone {
		seg = inst.Segment.String() + ":"
	}
	return dt.String() + " ptr " + seg + addr
}

func formatMemAddr(mem MemOperand, rip bool) string {
	if rip {
		return "[rip " + signedHex(mem.Disp) + "]"
	}

	var parts []string
	if mem.Base != RegNone {
		parts = append(parts, gpr64Names[mem.Base])
	}
	if mem.Index != RegNone {
		parts = append(parts, fmt.Sprintf("%s*%d", gpr64Names[mem.Index], mem.Scale))
	}
	body := strings.Join(parts, "+")

	switch {
	case mem.Disp != 0 && body == "":
		body = strings.TrimPrefix(strings.TrimPrefix(signedHex(mem.Disp), "+ "), "- ")
		if mem.Disp < 0 {
			body = "-" + body
		}
	case mem.Disp != 0:
		body += " " + signedHex(mem.Disp)
	case body == "":
		body = "0x0"
	}
	return "[" + body + "]"
}

// signedHex renders a displacement as "+ 0x10" or "- 0x10", matching the
// "[rip + 0x10]" shape the worked examples use.
func signedHex(disp int32) string {
	if disp < 0 {
		return fmt.Sprintf("- 0x%x", -int64(disp))
	}
	return fmt.Sprintf("+ 0x%x", disp)
}
