package disasm

// immWidth selects how many bytes (if any) the immediate reader consumes
// for a given encoding mode, per §4.8.
type immWidth int

const (
	immNone  immWidth = 0
	immUnity immWidth = -1
	imm8     immWidth = 8
	imm16    immWidth = 16
	imm32    immWidth = 32
	imm64    immWidth = 64
)

// widthKind names the plain-integer width a mode resolves to in pass B,
// before the REP/REPNE/66-driven SSE selection is applied.
type widthKind int

const (
	wNone widthKind = iota
	w8
	w16
	w32
	w64
	wXMM // resolved to one of SSE_SS/SSE_SD/SSE_PS/SSE_PD by prefix

	// Fixed-type widths for the opcodes whose data type the opcode itself
	// names, not the legacy prefixes (MOVDQU/MOVDQA, PADD*, PSRLD).
	wXMMFixed // always XMMWORD
	wPByte    // always PBYTE
	wPWord    // always PWORD
	wPDWord   // always PDWORD
	wPQWord   // always PQWORD
)

// modeInfo is the structural (pass A) description of one EncodingMode,
// tabulated once at init instead of switched on ad hoc at decode time.
type modeInfo struct {
	usesModRM    bool
	direction    bool
	usesXMM      bool
	singleOper   bool // clear Reg[1] once slots are filled
	regFromRX    bool // rx names a register (false: rx is an opcode extension)
	implicitRAX  bool // no ModR/M, no +R: slot0 <- RAX-family register
	implicitCL   bool // shift-by-CL: slot1 <- CL (see §9 open question)
	imm          immWidth
	width        widthKind
	width2       widthKind // set only for TWO_DATA_TYPES (sign/zero-extend) modes
	isPlusR      bool      // opcode's low 3 bits select the register (no ModR/M)
}

var modeTable = buildModeTable()

func buildModeTable() map[EncodingMode]modeInfo {
	t := make(map[EncodingMode]modeInfo)

	t[ModeVoid] = modeInfo{}
	t[ModeImmShort] = modeInfo{imm: imm8}
	t[ModeImm32Near] = modeInfo{imm: imm32}
	t[ModeImm64Near] = modeInfo{imm: imm64}
	t[ModeImm16Only] = modeInfo{imm: imm16}

	t[ModeReg8Imm] = modeInfo{isPlusR: true, imm: imm8, width: w8}
	t[ModeReg32Imm] = modeInfo{isPlusR: true, imm: imm32, width: w32}
	t[ModeReg64Imm] = modeInfo{isPlusR: true, imm: imm64, width: w64}

	t[ModeRM8Imm] = modeInfo{usesModRM: true, singleOper: true, imm: imm8, width: w8}
	t[ModeRM8Imm8] = modeInfo{usesModRM: true, singleOper: true, imm: imm8, width: w8}
	t[ModeMemImm8] = modeInfo{usesModRM: true, singleOper: true, imm: imm8, width: w8}
	t[ModeMemImm32] = modeInfo{usesModRM: true, singleOper: true, imm: imm32, width: w32}
	t[ModeRM32Imm8] = modeInfo{usesModRM: true, singleOper: true, imm: imm8, width: w32}
	t[ModeRM32Imm32] = modeInfo{usesModRM: true, singleOper: true, imm: imm32, width: w32}
	t[ModeRM64Imm8] = modeInfo{usesModRM: true, singleOper: true, imm: imm8, width: w64}
	t[ModeRM64Imm32] = modeInfo{usesModRM: true, singleOper: true, imm: imm32, width: w64}
	t[ModeRM64Imm] = modeInfo{usesModRM: true, singleOper: true, imm: imm32, width: w64}
	t[ModeRM16Imm] = modeInfo{usesModRM: true, singleOper: true, imm: imm16, width: w16}

	t[ModeReg8] = modeInfo{isPlusR: true, singleOper: true, width: w8}
	t[ModeReg16] = modeInfo{isPlusR: true, singleOper: true, width: w16}
	t[ModeReg32] = modeInfo{isPlusR: true, singleOper: true, width: w32}
	t[ModeReg64] = modeInfo{isPlusR: true, singleOper: true, width: w64}

	t[ModeRM8] = modeInfo{usesModRM: true, singleOper: true, width: w8}
	t[ModeRM16] = modeInfo{usesModRM: true, singleOper: true, width: w16}
	t[ModeRM32] = modeInfo{usesModRM: true, singleOper: true, width: w32}
	t[ModeRM64] = modeInfo{usesModRM: true, singleOper: true, width: w64}

	t[ModeRM8Unity] = modeInfo{usesModRM: true, singleOper: true, imm: immUnity, width: w8}
	t[ModeRM16Unity] = modeInfo{usesModRM: true, singleOper: true, imm: immUnity, width: w16}
	t[ModeRM32Unity] = modeInfo{usesModRM: true, singleOper: true, imm: immUnity, width: w32}
	t[ModeRM64Unity] = modeInfo{usesModRM: true, singleOper: true, imm: immUnity, width: w64}

	t[ModeRM8RegCL] = modeInfo{usesModRM: true, implicitCL: true, width: w8}
	t[ModeRM16RegCL] = modeInfo{usesModRM: true, implicitCL: true, width: w16}
	t[ModeRM32RegCL] = modeInfo{usesModRM: true, implicitCL: true, width: w32}
	t[ModeRM64RegCL] = modeInfo{usesModRM: true, implicitCL: true, width: w64}

	t[ModeRM8Reg8] = modeInfo{usesModRM: true, regFromRX: true, width: w8}
	t[ModeRM16Reg16] = modeInfo{usesModRM: true, regFromRX: true, width: w16}
	t[ModeRM32Reg32] = modeInfo{usesModRM: true, regFromRX: true, width: w32}
	t[ModeRM64Reg64] = modeInfo{usesModRM: true, regFromRX: true, width: w64}
	t[ModeRM64XMMReg] = modeInfo{usesModRM: true, regFromRX: true, usesXMM: true, width: w64}

	t[ModeReg8RM8] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w8}
	t[ModeReg16RM16] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w16}
	t[ModeReg32RM32] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w32}
	t[ModeReg64RM64] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w64}
	t[ModeReg32Mem] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w32}
	t[ModeReg64Mem] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w64}

	t[ModeRegALImm] = modeInfo{implicitRAX: true, imm: imm8, width: w8}
	t[ModeRegAXImm] = modeInfo{implicitRAX: true, imm: imm16, width: w16}
	t[ModeRegEAXImm] = modeInfo{implicitRAX: true, imm: imm32, width: w32}
	t[ModeRegRAXImm] = modeInfo{implicitRAX: true, imm: imm32, width: w64}
	t[ModeRegEAXSByteDWord] = modeInfo{implicitRAX: true, imm: imm8, width: w32}
	t[ModeRegRAXSByteDWord] = modeInfo{implicitRAX: true, imm: imm8, width: w64}

	t[ModeReg32RM8] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w32, width2: w8}
	t[ModeReg32RM16] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w32, width2: w16}
	t[ModeReg64RM8] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w64, width2: w8}
	t[ModeReg64RM16] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w64, width2: w16}
	t[ModeReg64RM32] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w64, width2: w32}

	t[ModeXMMRegImm] = modeInfo{usesModRM: true, singleOper: true, regFromRX: true, usesXMM: true, imm: imm8, width: wXMM}

	t[ModeMemXMMReg] = modeInfo{usesModRM: true, regFromRX: true, usesXMM: true, width: wXMM}
	t[ModeXMMRegMem] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wXMM}
	t[ModeXMMRMXMMReg] = modeInfo{usesModRM: true, regFromRX: true, usesXMM: true, width: wXMM}
	t[ModeXMMRegXMMRM] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wXMM}
	t[ModeXMMRegXMMRM128] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wXMM}
	t[ModeXMMRM128XMMReg] = modeInfo{usesModRM: true, regFromRX: true, usesXMM: true, width: wXMM}

	t[ModeXMMRegXMMRM128Fixed] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wXMMFixed}
	t[ModeXMMRM128XMMRegFixed] = modeInfo{usesModRM: true, regFromRX: true, usesXMM: true, width: wXMMFixed}
	t[ModeXMMRegXMMRM128PByte] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wPByte}
	t[ModeXMMRegXMMRM128PWord] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wPWord}
	t[ModeXMMRegXMMRM128PDWord] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wPDWord}
	t[ModeXMMRegXMMRM128PQWord] = modeInfo{usesModRM: true, direction: true, regFromRX: true, usesXMM: true, width: wPQWord}

	t[ModeReg16Imm] = modeInfo{isPlusR: true, imm: imm16, width: w16}
	t[ModeReg16Mem] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w16}
	t[ModeRM16Imm8] = modeInfo{usesModRM: true, singleOper: true, imm: imm8, width: w16}
	t[ModeReg16RM8] = modeInfo{usesModRM: true, direction: true, regFromRX: true, width: w16, width2: w8}

	return t
}

// resolveWidth implements pass B's width-to-DataType mapping, including the
// xmm scalar/packed selection driven by REP/REPNE/66 (§4.5).
func resolveWidth(w widthKind, ps prefixState) DataType {
	switch w {
	case w8:
		return BYTE
	case w16:
		return WORD
	case w32:
		return DWORD
	case w64:
		return QWORD
	case wXMM:
		switch {
		case ps.rep:
			return SSE_SS
		case ps.repne:
			return SSE_SD
		case ps.opSize:
			return SSE_PD
		default:
			return SSE_PS
		}
	case wXMMFixed:
		return XMMWORD
	case wPByte:
		return PBYTE
	case wPWord:
		return PWORD
	case wPDWord:
		return PDWORD
	case wPQWord:
		return PQWORD
	default:
		return NONE
	}
}

// widenMap promotes a mode's generic (32-bit) GPR shape to its 64-bit
// counterpart. This stands in for the generator's literal "pre-dispatch via
// a constant REX.W byte" mechanism (§4.4): the DFA only ever builds the
// 32-bit terminal, and REX.W promotes it here, once, right after the walk.
// Unlike 0x66, REX.W changes operand width rather than just data-type
// naming, so it earns a structural rewrite instead of a pass-B-only switch.
var widenMap = map[EncodingMode]EncodingMode{
	ModeRM32Reg32:        ModeRM64Reg64,
	ModeReg32RM32:        ModeReg64RM64,
	ModeRM32Imm32:        ModeRM64Imm32,
	ModeRM32Imm8:         ModeRM64Imm8,
	ModeRM32:             ModeRM64,
	ModeRM32Unity:        ModeRM64Unity,
	ModeRM32RegCL:        ModeRM64RegCL,
	ModeReg32Imm:         ModeReg64Imm,
	ModeRegEAXImm:        ModeRegRAXImm,
	ModeRegEAXSByteDWord: ModeRegRAXSByteDWord,
	ModeReg32Mem:         ModeReg64Mem,
	ModeReg32RM8:         ModeReg64RM8,
	ModeReg32RM16:        ModeReg64RM16,
}

func widen(m EncodingMode, rexW bool) EncodingMode {
	if !rexW {
		return m
	}
	if m2, ok := widenMap[m]; ok {
		return m2
	}
	return m
}
