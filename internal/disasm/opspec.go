package disasm

// table is the single opcode DFA, built once at init time from the
// declarative opcode list below: a flat, declarative catalog keyed by
// opcode byte path.
var table = newStateTable()

func init() {
	buildOneByteALU()
	buildMOVForms()
	buildStackForms()
	buildUnaryGroups()
	buildShiftGroups()
	buildImmediateGroup()
	buildControlFlow()
	buildMisc()
	buildTwoByteEscape()
	buildSixteenBitForms()
}

// leaf names the Kind and EncodingMode an RX-DIG group's /digit value
// resolves to.
type leaf struct {
	kind Kind
	mode EncodingMode
}

// term registers a plain, single-byte terminal at state for opcode byte b.
func term(state int, b byte, kind Kind, mode EncodingMode) {
	table.set(state, b, makeTerminal(kind, mode))
}

// termPlusR registers eight consecutive terminals, base..base+7, flagged
// +R: the opcode's low 3 bits (extended by REX.B as bit 3) name the register operand
// instead of a ModR/M byte.
func termPlusR(state int, base byte, kind Kind, mode EncodingMode) {
	for i := byte(0); i < 8; i++ {
		table.set(state, base+i, makeTerminal(kind, mode)|dfaWord(bitPlusR))
	}
}

// termCC16 registers sixteen consecutive terminals, base..base+15, one per
// condition code. They all carry the family's base Kind; resolveKind
// recovers the actual condition from the trigger byte's low nibble once a
// decode reaches this terminal.
func termCC16(state int, base byte, kind Kind, mode EncodingMode) {
	for i := byte(0); i < 16; i++ {
		table.set(state, base+i, makeTerminal(kind, mode))
	}
}

// rxGroup allocates a fresh RX-DIG state reachable from (state, opcode) and
// populates it from leaves, keyed by /digit value 0-7. A /digit absent from
// leaves is left a hard error (UnknownOpcode).
func rxGroup(state int, opcode byte, leaves map[byte]leaf) {
	rxState := table.allocState()
	table.set(state, opcode, dfaWord(bitRXDig)|dfaWord(rxState))
	for rx, l := range leaves {
		table.set(rxState, rx, makeTerminal(l.kind, l.mode))
	}
}

// escapeState allocates (or reuses) the two-byte opcode state reachable
// from state via first, returning its state id. Passing sixteenBitState
// builds a word-sized two-byte-escape sub-table (e.g. for 66 0F B6/BE),
// independent of the default entryState one.
func escapeState(state int, first byte) int {
	if w := table.get(state, first); w != 0 {
		return w.nextState()
	}
	s := table.allocState()
	table.set(state, first, dfaWord(s))
	return s
}

// aluFamily registers one arithmetic/logic mnemonic's six classic forms,
// starting at the x86 convention's base opcode byte: rm8,r8 / rm32,r32 /
// r8,rm8 / r32,rm32 / AL,imm8 / eAX,imm32. The 32-bit forms widen to 64-bit
// under REX.W via widenMap, not a second table entry.
func aluFamily(base byte, kind Kind) {
	term(entryState, base+0x00, kind, ModeRM8Reg8)
	term(entryState, base+0x01, kind, ModeRM32Reg32)
	term(entryState, base+0x02, kind, ModeReg8RM8)
	term(entryState, base+0x03, kind, ModeReg32RM32)
	term(entryState, base+0x04, kind, ModeRegALImm)
	term(entryState, base+0x05, kind, ModeRegEAXImm)
}

func buildOneByteALU() {
	aluFamily(0x00, KindADD)
	aluFamily(0x08, KindOR)
	aluFamily(0x10, KindADC)
	aluFamily(0x18, KindSBB)
	aluFamily(0x20, KindAND)
	aluFamily(0x28, KindSUB)
	aluFamily(0x30, KindXOR)
	aluFamily(0x38, KindCMP)

	term(entryState, 0x84, KindTEST, ModeRM8Reg8)
	term(entryState, 0x85, KindTEST, ModeRM32Reg32)
	term(entryState, 0xA8, KindTEST, ModeRegALImm)
	term(entryState, 0xA9, KindTEST, ModeRegEAXImm)

	term(entryState, 0x86, KindXCHG, ModeRM8Reg8)
	term(entryState, 0x87, KindXCHG, ModeRM32Reg32)
}

func buildMOVForms() {
	term(entryState, 0x88, KindMOV, ModeRM8Reg8)
	term(entryState, 0x89, KindMOV, ModeRM32Reg32)
	term(entryState, 0x8A, KindMOV, ModeReg8RM8)
	term(entryState, 0x8B, KindMOV, ModeReg32RM32)
	term(entryState, 0x8D, KindLEA, ModeReg32Mem)
	termPlusR(entryState, 0xB0, KindMOV, ModeReg8Imm)
	termPlusR(entryState, 0xB8, KindMOV, ModeReg32Imm)

	// MOVSXD always writes a 64-bit destination; real assemblers always
	// pair it with REX.W, so it needs no widenMap entry.
	term(entryState, 0x63, KindMOVSXD, ModeReg64RM32)
}

func buildStackForms() {
	termPlusR(entryState, 0x50, KindPUSH, ModeReg64)
	termPlusR(entryState, 0x58, KindPOP, ModeReg64)
	term(entryState, 0x68, KindPUSHImm, ModeImm32Near)
	term(entryState, 0x6A, KindPUSHImm, ModeImmShort)
}

func buildUnaryGroups() {
	rxGroup(entryState, 0xFE, map[byte]leaf{
		0: {KindINC, ModeRM8},
		1: {KindDEC, ModeRM8},
	})
	// rx 3/5 (call/jmp far) are non-goals; rx 2/4/6
	// below are always 64-bit regardless of REX.W, matching real hardware's
	// default 64-bit operand size for indirect branches.
	rxGroup(entryState, 0xFF, map[byte]leaf{
		0: {KindINC, ModeRM32},
		1: {KindDEC, ModeRM32},
		2: {KindCALLRM, ModeRM64},
		4: {KindJMPRM, ModeRM64},
		6: {KindPUSH, ModeRM64},
	})
	rxGroup(entryState, 0xF6, map[byte]leaf{
		0: {KindTEST, ModeRM8Imm},
		1: {KindTEST, ModeRM8Imm},
		2: {KindNOT, ModeRM8},
		3: {KindNEG, ModeRM8},
		4: {KindMUL, ModeRM8},
		5: {KindIMUL, ModeRM8},
		6: {KindDIV, ModeRM8},
		7: {KindIDIV, ModeRM8},
	})
	rxGroup(entryState, 0xF7, map[byte]leaf{
		0: {KindTEST, ModeRM32Imm32},
		1: {KindTEST, ModeRM32Imm32},
		2: {KindNOT, ModeRM32},
		3: {KindNEG, ModeRM32},
		4: {KindMUL, ModeRM32},
		5: {KindIMUL, ModeRM32},
		6: {KindDIV, ModeRM32},
		7: {KindIDIV, ModeRM32},
	})
}

// shiftKind maps a shift/rotate group's /digit to its mnemonic. /6 is the
// undocumented SHL alias and is folded into SHL rather than left an error.
func shiftKind(rx byte) Kind {
	switch rx {
	case 0:
		return KindROL
	case 1:
		return KindROR
	case 2:
		return KindRCL
	case 3:
		return KindRCR
	case 5:
		return KindSHR
	case 7:
		return KindSAR
	default: // 4, 6
		return KindSHL
	}
}

func shiftGroup(state int, opcode byte, mode EncodingMode) {
	leaves := make(map[byte]leaf, 8)
	for rx := byte(0); rx < 8; rx++ {
		leaves[rx] = leaf{shiftKind(rx), mode}
	}
	rxGroup(state, opcode, leaves)
}

func buildShiftGroups() {
	shiftGroup(entryState, 0xC0, ModeRM8Imm)
	shiftGroup(entryState, 0xC1, ModeRM32Imm8)
	shiftGroup(entryState, 0xD0, ModeRM8Unity)
	shiftGroup(entryState, 0xD1, ModeRM32Unity)
	shiftGroup(entryState, 0xD2, ModeRM8RegCL)
	shiftGroup(entryState, 0xD3, ModeRM32RegCL)
}

// aluKind maps the 80/81/83 immediate group's /digit to its mnemonic, same
// order as the classic one-byte ALU bases (ADD OR ADC SBB AND SUB XOR CMP).
func aluKind(rx byte) Kind {
	switch rx {
	case 0:
		return KindADD
	case 1:
		return KindOR
	case 2:
		return KindADC
	case 3:
		return KindSBB
	case 4:
		return KindAND
	case 5:
		return KindSUB
	case 6:
		return KindXOR
	default: // 7
		return KindCMP
	}
}

func immGroup(state int, opcode byte, mode EncodingMode) {
	leaves := make(map[byte]leaf, 8)
	for rx := byte(0); rx < 8; rx++ {
		leaves[rx] = leaf{aluKind(rx), mode}
	}
	rxGroup(state, opcode, leaves)
}

func buildImmediateGroup() {
	immGroup(entryState, 0x80, ModeRM8Imm)
	immGroup(entryState, 0x81, ModeRM32Imm32)
	immGroup(entryState, 0x83, ModeRM32Imm8)
}

func buildControlFlow() {
	term(entryState, 0xE8, KindCALL, ModeImm32Near)
	term(entryState, 0xE9, KindJMP, ModeImm32Near)
	term(entryState, 0xEB, KindJMPShort, ModeImmShort)
	termCC16(entryState, 0x70, KindJccBase, ModeImmShort)
	term(entryState, 0xC3, KindRET, ModeVoid)
	term(entryState, 0xC2, KindRETImm16, ModeImm16Only)
	term(entryState, 0xC9, KindLEAVE, ModeVoid)
}

func buildMisc() {
	term(entryState, 0x90, KindNOP, ModeVoid)
	term(entryState, 0xF4, KindHLT, ModeVoid)
	term(entryState, 0xFA, KindCLI, ModeVoid)
	term(entryState, 0xFB, KindSTI, ModeVoid)
	term(entryState, 0xF8, KindCLC, ModeVoid)
	term(entryState, 0xF9, KindSTC, ModeVoid)
	term(entryState, 0xF5, KindCMC, ModeVoid)
}

// buildTwoByteEscape covers every supported 0x0F-prefixed opcode: the
// multi-byte NOP, SYSCALL/SYSRET, CPUID, MOVZX/MOVSX, the three 16-wide
// condition-code families, and the SSE surface named in
// original_source/src/disx86.h's X86_InstType enum: scalar/packed float
// moves, packed-integer moves (MOVDQU/MOVDQA), packed-integer arithmetic
// (PADD*/PSRLD), and the float-arithmetic families (ADD/MUL/SUB/DIV/SQRT/
// RSQRT/AND/OR/XOR/UCOMI). Each family's mnemonic is resolved from legacy
// prefixes by resolveSSEKind, not by separate DFA terminals per prefix.
//
// CVTxx2xx (gpr<->xmm conversions) and MOVD/MOVQ are not wired: they move
// between the GPR and XMM register files in the same instruction, but
// RegSlot/Flags.XMMREG names a register file for the whole instruction, not
// per operand slot, so a mixed-file operand pair can't be represented
// without restructuring that flag into a per-slot tag - out of scope for
// this pass. CMPSS/CMPPS (xmm, xmm/m128, imm8 predicate) are also omitted:
// every existing EncodingMode tops out at two register/memory operands plus
// one immediate, and CMP's three-operand shape doesn't fit that either.
// twoByteEscape is the 0x0F lead byte that starts every two-byte opcode
// form (MOVZX/MOVSX, the condition-code families, the SSE surface).
const twoByteEscape = 0x0F

func buildTwoByteEscape() {
	esc := escapeState(entryState, twoByteEscape)

	term(esc, 0x1F, KindNOP, ModeRM32)
	term(esc, 0x05, KindSYSCALL, ModeVoid)
	term(esc, 0x07, KindSYSRET, ModeVoid)
	term(esc, 0xA2, KindCPUID, ModeVoid)

	term(esc, 0xB6, KindMOVZX, ModeReg32RM8)
	term(esc, 0xB7, KindMOVZX, ModeReg32RM16)
	term(esc, 0xBE, KindMOVSX, ModeReg32RM8)
	term(esc, 0xBF, KindMOVSX, ModeReg32RM16)

	termCC16(esc, 0x80, KindJccBase, ModeImm32Near)
	termCC16(esc, 0x40, KindCMOVccBase, ModeReg32RM32)
	termCC16(esc, 0x90, KindSETccBase, ModeRM8)

	term(esc, 0x10, kindSSEMoveLoad, ModeXMMRegXMMRM128)
	term(esc, 0x11, kindSSEMoveStore, ModeXMMRM128XMMReg)
	term(esc, 0x28, kindSSEMoveAlignedLoad, ModeXMMRegXMMRM128)
	term(esc, 0x29, kindSSEMoveAlignedStore, ModeXMMRM128XMMReg)

	term(esc, 0x6F, kindSSEIntMoveLoad, ModeXMMRegXMMRM128Fixed)
	term(esc, 0x7F, kindSSEIntMoveStore, ModeXMMRM128XMMRegFixed)

	term(esc, 0xFC, KindPADDB, ModeXMMRegXMMRM128PByte)
	term(esc, 0xFD, KindPADDW, ModeXMMRegXMMRM128PWord)
	term(esc, 0xFE, KindPADDD, ModeXMMRegXMMRM128PDWord)
	term(esc, 0xD4, KindPADDQ, ModeXMMRegXMMRM128PQWord)
	term(esc, 0xD2, KindPSRLD, ModeXMMRegXMMRM128PDWord)

	term(esc, 0x58, kindSSEAdd, ModeXMMRegXMMRM128)
	term(esc, 0x59, kindSSEMul, ModeXMMRegXMMRM128)
	term(esc, 0x5C, kindSSESub, ModeXMMRegXMMRM128)
	term(esc, 0x5E, kindSSEDiv, ModeXMMRegXMMRM128)
	term(esc, 0x51, kindSSESqrt, ModeXMMRegXMMRM128)
	term(esc, 0x52, kindSSERsqrt, ModeXMMRegXMMRM128)
	term(esc, 0x54, kindSSEAnd, ModeXMMRegXMMRM128)
	term(esc, 0x56, kindSSEOr, ModeXMMRegXMMRM128)
	term(esc, 0x57, kindSSEXor, ModeXMMRegXMMRM128)
	term(esc, 0x2E, kindSSEUcomi, ModeXMMRegXMMRM128)
}

// sixteenBitState is a separate DFA root reachable only through decode.go's
// walkOpcode, tried first when the 0x66 operand-size prefix is present and
// REX.W is not. This mirrors original_source/src/disx86.c:217-223's own
// dispatch, which redirects into an addr16 sub-table and falls back to the
// default entry point if that sub-table has no terminal for the current
// opcode - the redirect-with-fallback walkOpcode implements by retrying the
// walk from entryState on an UnknownOpcode result.
var sixteenBitState int

// buildSixteenBitForms registers the word-sized counterparts of the general-
// purpose ALU/MOV/shift/unary/immediate groups: the byte-sized forms are
// unaffected by 0x66 and the 32/64-bit forms are already reachable from
// entryState, so only the opcodes whose word-sized operands the 32-bit
// terminal would otherwise swallow need a terminal here.
func buildSixteenBitForms() {
	sixteenBitState = table.allocState()
	s16 := sixteenBitState

	aluFamily16(s16, 0x00, KindADD)
	aluFamily16(s16, 0x08, KindOR)
	aluFamily16(s16, 0x10, KindADC)
	aluFamily16(s16, 0x18, KindSBB)
	aluFamily16(s16, 0x20, KindAND)
	aluFamily16(s16, 0x28, KindSUB)
	aluFamily16(s16, 0x30, KindXOR)
	aluFamily16(s16, 0x38, KindCMP)

	term(s16, 0x85, KindTEST, ModeRM16Reg16)
	term(s16, 0xA9, KindTEST, ModeRegAXImm)
	term(s16, 0x87, KindXCHG, ModeRM16Reg16)

	term(s16, 0x89, KindMOV, ModeRM16Reg16)
	term(s16, 0x8B, KindMOV, ModeReg16RM16)
	term(s16, 0x8D, KindLEA, ModeReg16Mem)
	termPlusR(s16, 0xB8, KindMOV, ModeReg16Imm)

	termPlusR(s16, 0x50, KindPUSH, ModeReg16)
	termPlusR(s16, 0x58, KindPOP, ModeReg16)

	// rx 2/4/6 of 0xFF (indirect call/jmp, push) keep their default 64-bit forms
	// under 0x66 on real hardware, so only INC/DEC get a word-sized leaf.
	rxGroup(s16, 0xFF, map[byte]leaf{
		0: {KindINC, ModeRM16},
		1: {KindDEC, ModeRM16},
	})
	rxGroup(s16, 0xF7, map[byte]leaf{
		0: {KindTEST, ModeRM16Imm},
		1: {KindTEST, ModeRM16Imm},
		2: {KindNOT, ModeRM16},
		3: {KindNEG, ModeRM16},
		4: {KindMUL, ModeRM16},
		5: {KindIMUL, ModeRM16},
		6: {KindDIV, ModeRM16},
		7: {KindIDIV, ModeRM16},
	})

	shiftGroup(s16, 0xC1, ModeRM16Imm8)
	shiftGroup(s16, 0xD1, ModeRM16Unity)
	shiftGroup(s16, 0xD3, ModeRM16RegCL)

	immGroup(s16, 0x81, ModeRM16Imm)
	immGroup(s16, 0x83, ModeRM16Imm8)

	esc16 := escapeState(s16, twoByteEscape)
	term(esc16, 0xB6, KindMOVZX, ModeReg16RM8)
	term(esc16, 0xBE, KindMOVSX, ModeReg16RM8)
}

// aluFamily16 registers the word-sized half of aluFamily's six classic
// forms: the byte-sized AL,imm8/r8,rm8/rm8,r8 trio is unaffected by the
// operand-size prefix, so only rm16,r16 / r16,rm16 / AX,imm16 need a
// counterpart here.
func aluFamily16(state int, base byte, kind Kind) {
	term(state, base+0x01, kind, ModeRM16Reg16)
	term(state, base+0x03, kind, ModeReg16RM16)
	term(state, base+0x05, kind, ModeRegAXImm)
}
