package disasm

// EncodingMode is the closed set of operand shapes a DFA terminal leaf can
// carry. It drives both passes of the encoding-mode interpreter: pass A
// decides structure (ModR/M? direction? xmm? implicit operand? immediate
// width?), pass B derives the data type(s).
type EncodingMode int

const (
	ModeVoid EncodingMode = iota // no operands

	ModeImmShort  // signed-8 relative offset (short jcc/jmp)
	ModeImm32Near // signed-32 relative offset (near jcc/jmp/call)
	ModeImm64Near // present for API symmetry; this decoder never emits it
	ModeImm16Only // bare imm16, no ModR/M, no implicit register (RET imm16)

	ModeReg8Imm // r8, imm8 (iff not +R)

	ModeRM8Imm   // r/m8, imm8 (register or memory form, /digit extension)
	ModeRM8Imm8  // r/m8, imm8, identical shape to ModeRM8Imm for a distinct opcode group
	ModeMemImm8  // r/m8, imm8, memory-only variant of the /digit immediate group
	ModeMemImm32 // r/m32, imm32, memory-only variant

	ModeRM32Imm8  // r/m32, imm8 (sign-extended)
	ModeRM32Imm32 // r/m32, imm32
	ModeRM64Imm8  // r/m64, imm8 (sign-extended)
	ModeRM64Imm32 // r/m64, imm32 (sign-extended to 64)
	ModeRM64Imm   // r/m64, imm (variable width per opcode, sign-extended)
	ModeRM16Imm   // r/m16, imm16

	ModeReg8  // single r8 (iff not +R)
	ModeReg16 // single r16 (iff not +R)
	ModeReg32 // single r32 (iff not +R)
	ModeReg64 // single r64 (iff not +R)

	ModeRM8  // single r/m8
	ModeRM16 // single r/m16
	ModeRM32 // single r/m32
	ModeRM64 // single r/m64

	ModeRM8Unity  // r/m8, 1  (shift-by-1 forms)
	ModeRM16Unity // r/m16, 1
	ModeRM32Unity // r/m32, 1
	ModeRM64Unity // r/m64, 1

	ModeRM8RegCL  // r/m8, CL  (shift-by-CL forms)
	ModeRM16RegCL // r/m16, CL
	ModeRM32RegCL // r/m32, CL
	ModeRM64RegCL // r/m64, CL

	ModeRM8Reg8   // r/m8, r8   left-written (dest is r/m side)
	ModeRM16Reg16 // r/m16, r16 left-written
	ModeRM32Reg32 // r/m32, r32 left-written
	ModeRM64Reg64 // r/m64, r64 left-written
	ModeRM64XMMReg // r/m64, xmm (MOVQ xmm->gpr style, left-written)

	ModeReg8RM8   // r8, r/m8   right-written (dest is reg side)
	ModeReg16RM16 // r16, r/m16 right-written
	ModeReg32RM32 // r32, r/m32 right-written
	ModeReg64RM64 // r64, r/m64 right-written
	ModeReg32Mem  // r32, m      right-written, memory-only (LEA-style)
	ModeReg64Mem  // r64, m      right-written, memory-only

	ModeRegALImm  // implicit AL, imm8
	ModeRegAXImm  // implicit AX, imm16
	ModeRegEAXImm // implicit EAX, imm32
	ModeRegRAXImm // implicit RAX, imm32 (sign-extended to 64)

	ModeRegEAXSByteDWord // implicit EAX, sign-extended imm8
	ModeRegRAXSByteDWord // implicit RAX, sign-extended imm8

	ModeReg32Imm // r32(+R), imm32
	ModeReg64Imm // r64(+R), imm64

	ModeReg32RM8  // r32, r/m8,  zero/sign extend, TWO_DATA_TYPES
	ModeReg32RM16 // r32, r/m16, zero/sign extend, TWO_DATA_TYPES
	ModeReg64RM8  // r64, r/m8,  zero/sign extend, TWO_DATA_TYPES
	ModeReg64RM16 // r64, r/m16, zero/sign extend, TWO_DATA_TYPES
	ModeReg64RM32 // r64, r/m32, sign extend (MOVSXD), TWO_DATA_TYPES

	ModeXMMRegImm // xmm, imm8

	ModeMemXMMReg    // m, xmm    left-written (store)
	ModeXMMRegMem    // xmm, m    right-written (load)
	ModeXMMRMXMMReg  // xmm/m, xmm left-written
	ModeXMMRegXMMRM  // xmm, xmm/m right-written
	ModeXMMRegXMMRM128 // xmm, xmm/m128 right-written, always-128-bit variant
	ModeXMMRM128XMMReg // xmm/m128, xmm left-written, always-128-bit variant

	// Fixed-data-type 128-bit SSE shapes: unlike ModeXMMRegXMMRM128 (whose
	// data type is resolved from REP/REPNE/66 by resolveWidth's wXMM case),
	// these name an operand whose type the opcode itself fixes regardless of
	// prefixes - MOVDQU/MOVDQA's generic 128-bit integer data, and the
	// PADD/PSRLD packed-integer element widths.
	ModeXMMRegXMMRM128Fixed  // xmm, xmm/m128 right-written, fixed xmmword type (MOVDQU/MOVDQA load)
	ModeXMMRM128XMMRegFixed  // xmm/m128, xmm left-written, fixed xmmword type (MOVDQU/MOVDQA store)
	ModeXMMRegXMMRM128PByte  // xmm, xmm/m128 right-written, fixed packed-byte type (PADDB)
	ModeXMMRegXMMRM128PWord  // xmm, xmm/m128 right-written, fixed packed-word type (PADDW)
	ModeXMMRegXMMRM128PDWord // xmm, xmm/m128 right-written, fixed packed-dword type (PADDD, PSRLD)
	ModeXMMRegXMMRM128PQWord // xmm, xmm/m128 right-written, fixed packed-qword type (PADDQ)

	// Word-sized general-purpose shapes reachable only via the 0x66
	// pre-dispatch in decode.go's walkOpcode (§4.4); their byte/dword/qword
	// counterparts already exist above.
	ModeReg16Imm // r16(+R), imm16
	ModeReg16Mem // r16, m    right-written, memory-only (LEA, 16-bit form)
	ModeRM16Imm8 // r/m16, imm8 (sign-extended)
	ModeReg16RM8 // r16, r/m8, zero/sign extend, TWO_DATA_TYPES (MOVZX/MOVSX, 16-bit dest)
)
