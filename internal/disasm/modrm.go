package disasm

// modrm is the decomposed fields of a ModR/M byte.
type modrm struct {
	mod byte // 0-3
	rx  byte // 0-7, the reg/opcode-extension field
	rm  byte // 0-7
}

func decodeModRM(b byte) modrm {
	return modrm{mod: b >> 6 & 3, rx: b >> 3 & 7, rm: b & 7}
}

// rmResult is what the memory-operand parser produces: either a direct
// register (reg valid, mem untouched) or a memory operand (mem valid, reg
// is RegNone).
type rmResult struct {
	reg RegSlot
	mem MemOperand
	// isMem distinguishes "direct register, encoding value 0 (RAX)" from
	// "memory operand with base RegNone" - both leave reg == RegSlot(0)
	// and RegNone respectively, so the flag is carried separately instead
	// of overloading RegNone.
	isMem bool
	// rip marks the no-SIB, mod=0, rm=5 form: RIP-relative addressing. The
	// SIB-encoded "no base" form (base=5, mod=0) also leaves mem.Base ==
	// RegNone but is an absolute disp32, not RIP-relative, so this can't be
	// recovered from MemOperand alone.
	rip bool
}

// resolveRM implements §4.6: given an already-decoded ModR/M and the active
// REX, it consumes whatever SIB and displacement bytes the addressing mode
// requires and returns either a direct GPR or a memory operand.
func resolveRM(c *Cursor, m modrm, rx rex) (rmResult, Result) {
	if m.mod == 3 {
		return rmResult{reg: GPR(rx.b<<3 | m.rm)}, OK
	}

	if m.rm == 4 {
		sibByte, ok := c.ReadU8()
		if !ok {
			return rmResult{}, OutOfSpace
		}
		scale := byte(1) << (sibByte >> 6 & 3)
		index := sibByte >> 3 & 7
		base := sibByte & 7

		indexReg := RegNone
		if index != 4 {
			indexReg = GPR(rx.x<<3 | index)
		}

		baseReg := RegNone
		mod := m.mod
		if base == 5 && mod == 0 {
			mod = 2 // promote to disp32, base stays NONE
		} else {
			baseReg = GPR(rx.b<<3 | base)
		}

		mem := MemOperand{Base: baseReg, Index: indexReg, Scale: scale}
		if err := readDisp(c, mod, &mem); err != OK {
			return rmResult{}, err
		}
		return rmResult{mem: mem, isMem: true}, OK
	}

	if m.rm == 5 && m.mod == 0 {
		disp, ok := c.ReadU32LE()
		if !ok {
			return rmResult{}, OutOfSpace
		}
		return rmResult{
			mem:   MemOperand{Base: RegNone, Index: RegNone, Scale: 1, Disp: int32(disp)},
			isMem: true,
			rip:   true,
		}, OK
	}

	mem := MemOperand{Base: GPR(rx.b<<3 | m.rm), Index: RegNone, Scale: 1}
	if err := readDisp(c, m.mod, &mem); err != OK {
		return rmResult{}, err
	}
	return rmResult{mem: mem, isMem: true}, OK
}

// readDisp reads the displacement (if any) implied by mod and stores it in
// mem.Disp. mod==0 means no displacement (zero), mod==1 an 8-bit signed
// displacement, mod==2 a 32-bit signed displacement.
func readDisp(c *Cursor, mod byte, mem *MemOperand) Result {
	switch mod {
	case 1:
		b, ok := c.ReadU8()
		if !ok {
			return OutOfSpace
		}
		mem.Disp = int32(int8(b))
	case 2:
		v, ok := c.ReadU32LE()
		if !ok {
			return OutOfSpace
		}
		mem.Disp = int32(v)
	}
	return OK
}
