package disasm

// Desc is one entry of the instruction descriptor table, indexed by Kind.
type Desc struct {
	Name  string
	HasCC bool // true only on the base entry of a condition-code family
}

// Fixed, non-condition-code instruction kinds.
const (
	KindInvalid Kind = iota
	KindNOP
	KindENDBR64
	KindRET
	KindRETImm16
	KindLEAVE
	KindCALL
	KindCALLRM
	KindJMP
	KindJMPShort
	KindJMPRM
	KindPUSH
	KindPUSHImm
	KindPOP
	KindMOV
	KindMOVZX
	KindMOVSX
	KindMOVSXD
	KindLEA
	KindXCHG
	KindADD
	KindOR
	KindADC
	KindSBB
	KindAND
	KindSUB
	KindXOR
	KindCMP
	KindTEST
	KindNOT
	KindNEG
	KindMUL
	KindIMUL
	KindDIV
	KindIDIV
	KindINC
	KindDEC
	KindSHL
	KindSHR
	KindSAR
	KindROL
	KindROR
	KindRCL
	KindRCR
	KindCPUID
	KindSYSCALL
	KindSYSRET
	KindHLT
	KindCLI
	KindSTI
	KindCLC
	KindSTC
	KindCMC
	KindMOVSS
	KindMOVSD
	KindMOVUPS
	KindMOVUPD
	KindMOVAPS
	KindMOVAPD

	// Packed-integer SSE, grounded on original_source/src/disx86.h's
	// X86_INST_SSE_MOVDQU/MOVDQA/MOVDQ/PADD/PSRLD entries.
	KindMOVDQU
	KindMOVDQA
	KindPADDB
	KindPADDW
	KindPADDD
	KindPADDQ
	KindPSRLD

	// Float-arithmetic SSE families, grounded on disx86.h's
	// X86_INST_SSE_ADD/MUL/SUB/DIV/CMP/UCOMI/CVT/SQRT/RSQRT/AND/OR/XOR
	// entries; each resolves from the raw marker below the same way the
	// existing MOVSS/MOVSD/MOVUPS/MOVUPD family does.
	KindADDSS
	KindADDSD
	KindADDPS
	KindADDPD
	KindMULSS
	KindMULSD
	KindMULPS
	KindMULPD
	KindSUBSS
	KindSUBSD
	KindSUBPS
	KindSUBPD
	KindDIVSS
	KindDIVSD
	KindDIVPS
	KindDIVPD
	KindSQRTSS
	KindSQRTSD
	KindSQRTPS
	KindSQRTPD
	KindRSQRTSS
	KindRSQRTPS
	KindANDPS
	KindANDPD
	KindORPS
	KindORPD
	KindXORPS
	KindXORPD
	KindUCOMISS
	KindUCOMISD

	// kindSSEMoveLoad/Store and kindSSEMoveAlignedLoad/Store are raw DFA
	// terminal markers, never returned from Decode: resolveSSEKind rewrites
	// them into one of the MOVxx kinds above once the legacy prefixes are
	// known (§4.5's "prefix affects naming, not ModR/M structure" rule
	// applied to the 0F 10/11 and 0F 28/29 opcode pairs).
	kindSSEMoveLoad
	kindSSEMoveStore
	kindSSEMoveAlignedLoad
	kindSSEMoveAlignedStore

	// kindSSEIntMoveLoad/Store apply the same prefix-resolution rule to the
	// 0F 6F/7F opcode pair (MOVDQU under F3, MOVDQA under 66).
	kindSSEIntMoveLoad
	kindSSEIntMoveStore

	// Raw markers for the float-arithmetic families: one marker per shared
	// opcode, resolved into the SS/SD/PS/PD (or PS/PD, or SS/PS) variant by
	// sseFourWay/sseTwoWayAligned (or, for RSQRT, the REP check inline) in
	// resolveSSEKind.
	kindSSEAdd
	kindSSEMul
	kindSSESub
	kindSSEDiv
	kindSSESqrt
	kindSSERsqrt
	kindSSEAnd
	kindSSEOr
	kindSSEXor
	kindSSEUcomi

	kindFixedCount
)

// Condition-code families each reserve a 16-wide block, one slot per
// condition, starting on a multiple of 16 so the "base + (opcode & 0xF)"
// resolution rule in resolveKind can't collide with the fixed kinds above.
const (
	KindJccBase    Kind = 16 * ((kindFixedCount + 15) / 16)
	KindCMOVccBase Kind = KindJccBase + 16
	KindSETccBase  Kind = KindCMOVccBase + 16

	kindCount = int(KindSETccBase) + 16
)

// ccNames holds, in trigger-nibble order (0=O 1=NO 2=B 3=AE 4=E 5=NE 6=BE
// 7=A 8=S 9=NS 10=P 11=NP 12=L 13=GE 14=LE 15=G), the suffix shared by
// Jcc/CMOVcc/SETcc per the x86 condition-code encoding.
var ccNames = [16]string{
	"o", "no", "b", "ae", "e", "ne", "be", "a",
	"s", "ns", "p", "np", "l", "ge", "le", "g",
}

var descs = buildDescs()

func buildDescs() []Desc {
	d := make([]Desc, kindCount)

	set := func(k Kind, name string) { d[k] = Desc{Name: name} }

	set(KindNOP, "nop")
	set(KindENDBR64, "endbr64")
	set(KindRET, "ret")
	set(KindRETImm16, "ret")
	set(KindLEAVE, "leave")
	set(KindCALL, "call")
	set(KindCALLRM, "call")
	set(KindJMP, "jmp")
	set(KindJMPShort, "jmp")
	set(KindJMPRM, "jmp")
	set(KindPUSH, "push")
	set(KindPUSHImm, "push")
	set(KindPOP, "pop")
	set(KindMOV, "mov")
	set(KindMOVZX, "movzx")
	set(KindMOVSX, "movsx")
	set(KindMOVSXD, "movsxd")
	set(KindLEA, "lea")
	set(KindXCHG, "xchg")
	set(KindADD, "add")
	set(KindOR, "or")
	set(KindADC, "adc")
	set(KindSBB, "sbb")
	set(KindAND, "and")
	set(KindSUB, "sub")
	set(KindXOR, "xor")
	set(KindCMP, "cmp")
	set(KindTEST, "test")
	set(KindNOT, "not")
	set(KindNEG, "neg")
	set(KindMUL, "mul")
	set(KindIMUL, "imul")
	set(KindDIV, "div")
	set(KindIDIV, "idiv")
	set(KindINC, "inc")
	set(KindDEC, "dec")
	set(KindSHL, "shl")
	set(KindSHR, "shr")
	set(KindSAR, "sar")
	set(KindROL, "rol")
	set(KindROR, "ror")
	set(KindRCL, "rcl")
	set(KindRCR, "rcr")
	set(KindCPUID, "cpuid")
	set(KindSYSCALL, "syscall")
	set(KindSYSRET, "sysret")
	set(KindHLT, "hlt")
	set(KindCLI, "cli")
	set(KindSTI, "sti")
	set(KindCLC, "clc")
	set(KindSTC, "stc")
	set(KindCMC, "cmc")
	set(KindMOVSS, "movss")
	set(KindMOVSD, "movsd")
	set(KindMOVUPS, "movups")
	set(KindMOVUPD, "movupd")
	set(KindMOVAPS, "movaps")
	set(KindMOVAPD, "movapd")
	set(KindMOVDQU, "movdqu")
	set(KindMOVDQA, "movdqa")
	set(KindPADDB, "paddb")
	set(KindPADDW, "paddw")
	set(KindPADDD, "paddd")
	set(KindPADDQ, "paddq")
	set(KindPSRLD, "psrld")
	set(KindADDSS, "addss")
	set(KindADDSD, "addsd")
	set(KindADDPS, "addps")
	set(KindADDPD, "addpd")
	set(KindMULSS, "mulss")
	set(KindMULSD, "mulsd")
	set(KindMULPS, "mulps")
	set(KindMULPD, "mulpd")
	set(KindSUBSS, "subss")
	set(KindSUBSD, "subsd")
	set(KindSUBPS, "subps")
	set(KindSUBPD, "subpd")
	set(KindDIVSS, "divss")
	set(KindDIVSD, "divsd")
	set(KindDIVPS, "divps")
	set(KindDIVPD, "divpd")
	set(KindSQRTSS, "sqrtss")
	set(KindSQRTSD, "sqrtsd")
	set(KindSQRTPS, "sqrtps")
	set(KindSQRTPD, "sqrtpd")
	set(KindRSQRTSS, "rsqrtss")
	set(KindRSQRTPS, "rsqrtps")
	set(KindANDPS, "andps")
	set(KindANDPD, "andpd")
	set(KindORPS, "orps")
	set(KindORPD, "orpd")
	set(KindXORPS, "xorps")
	set(KindXORPD, "xorpd")
	set(KindUCOMISS, "ucomiss")
	set(KindUCOMISD, "ucomisd")

	d[KindJccBase] = Desc{Name: "j" + ccNames[0], HasCC: true}
	d[KindCMOVccBase] = Desc{Name: "cmov" + ccNames[0], HasCC: true}
	d[KindSETccBase] = Desc{Name: "set" + ccNames[0], HasCC: true}
	for i := 1; i < 16; i++ {
		d[KindJccBase+Kind(i)] = Desc{Name: "j" + ccNames[i]}
		d[KindCMOVccBase+Kind(i)] = Desc{Name: "cmov" + ccNames[i]}
		d[KindSETccBase+Kind(i)] = Desc{Name: "set" + ccNames[i]}
	}

	return d
}

// resolveKind applies the "base + (trigger_byte & 0x0F)" rule for
// condition-code families; for every other kind it is the identity.
func resolveKind(raw Kind, triggerByte byte) Kind {
	if int(raw) < len(descs) && descs[raw].HasCC {
		return raw + Kind(triggerByte&0x0F)
	}
	return raw
}

// resolveSSEKind rewrites a raw kindSSE* marker into the mnemonic its legacy
// prefixes select. The unaligned pair (0F 10/11) distinguishes all four of
// SS/SD/PS/PD; the aligned pair (0F 28/29) and the float-arithmetic families
// below follow the same §4.5 rule, each with the prefix combinations real
// hardware actually defines for that family.
func resolveSSEKind(raw Kind, ps prefixState) Kind {
	switch raw {
	case kindSSEMoveLoad, kindSSEMoveStore:
		return sseFourWay(ps, KindMOVSS, KindMOVSD, KindMOVUPS, KindMOVUPD)
	case kindSSEMoveAlignedLoad, kindSSEMoveAlignedStore:
		return sseTwoWayAligned(ps, KindMOVAPS, KindMOVAPD)
	case kindSSEIntMoveLoad, kindSSEIntMoveStore:
		// Real hardware requires F3 for MOVDQU and 66 for MOVDQA; a
		// prefixless 0F 6F/7F is the legacy MMX MOVQ, out of scope (see
		// DESIGN.md), so the lenient default below is MOVDQU.
		if ps.opSize {
			return KindMOVDQA
		}
		return KindMOVDQU
	case kindSSEAdd:
		return sseFourWay(ps, KindADDSS, KindADDSD, KindADDPS, KindADDPD)
	case kindSSEMul:
		return sseFourWay(ps, KindMULSS, KindMULSD, KindMULPS, KindMULPD)
	case kindSSESub:
		return sseFourWay(ps, KindSUBSS, KindSUBSD, KindSUBPS, KindSUBPD)
	case kindSSEDiv:
		return sseFourWay(ps, KindDIVSS, KindDIVSD, KindDIVPS, KindDIVPD)
	case kindSSESqrt:
		return sseFourWay(ps, KindSQRTSS, KindSQRTSD, KindSQRTPS, KindSQRTPD)
	case kindSSERsqrt:
		// Real hardware defines only the SS/PS forms (no SD/PD).
		if ps.rep {
			return KindRSQRTSS
		}
		return KindRSQRTPS
	case kindSSEAnd:
		return sseTwoWayAligned(ps, KindANDPS, KindANDPD)
	case kindSSEOr:
		return sseTwoWayAligned(ps, KindORPS, KindORPD)
	case kindSSEXor:
		return sseTwoWayAligned(ps, KindXORPS, KindXORPD)
	case kindSSEUcomi:
		return sseTwoWayAligned(ps, KindUCOMISS, KindUCOMISD)
	default:
		return raw
	}
}

// sseFourWay applies §4.5's rep/repne/66/none priority to select one of a
// family's four prefix-named variants.
func sseFourWay(ps prefixState, ss, sd, packedSingle, packedDouble Kind) Kind {
	switch {
	case ps.rep:
		return ss
	case ps.repne:
		return sd
	case ps.opSize:
		return packedDouble
	default:
		return packedSingle
	}
}

// sseTwoWayAligned selects between a family's single- and double-precision
// packed forms by the 66 prefix alone, matching the families (MOVAPS/
// MOVAPD, ANDPS/ANDPD, UCOMISS/UCOMISD, ...) that define no scalar variant.
func sseTwoWayAligned(ps prefixState, singlePrecision, doublePrecision Kind) Kind {
	if ps.opSize {
		return doublePrecision
	}
	return singlePrecision
}

// Name returns the mnemonic for an already-resolved Kind.
func (k Kind) Name() string {
	if int(k) < 0 || int(k) >= len(descs) {
		return "?"
	}
	return descs[k].Name
}
