package disasm

// Decode reads one instruction from the front of code, following §4: scan
// legacy prefixes, walk the opcode DFA, resolve the encoding mode's
// structure and data type(s), then parse ModR/M/SIB/displacement and the
// immediate (if any). It never reads past len(code).
func Decode(code []byte) (Instruction, Result) {
	if raw, ok := matchENDBR64(code); ok {
		return Instruction{Kind: KindENDBR64, Length: len(raw)}, OK
	}

	c := NewCursor(code)

	ps, firstByte, ok := scanPrefixes(&c)
	if !ok {
		return Instruction{Length: c.Pos()}, OutOfSpace
	}

	wr, res := walkOpcode(&c, ps, firstByte)
	if res != OK {
		return Instruction{Length: c.Pos()}, res
	}

	mode := widen(wr.mode, ps.rex.w == 1)
	info, known := modeTable[mode]
	if !known {
		return Instruction{Length: c.Pos()}, UnknownOpcode
	}

	inst := Instruction{
		Kind:    finalKind(wr.kind, wr.trigger, ps),
		Segment: ps.segment,
		Reg:     [4]RegSlot{RegNone, RegNone, RegNone, RegNone},
	}
	if ps.lock {
		inst.Flags |= Lock
	}
	if info.usesXMM {
		inst.Flags |= XMMREG
	}
	if info.direction {
		inst.Flags |= Direction
	}

	switch {
	case info.isPlusR:
		idx := ps.rex.b<<3 | (wr.trigger & 7)
		inst.Reg[0] = gprOrHighByte(idx, info.width, ps.rex.present)

	case info.implicitRAX:
		inst.Reg[0] = GPR(0)

	case info.usesModRM:
		mb, rok := c.ReadU8()
		if !rok {
			return Instruction{Length: c.Pos()}, OutOfSpace
		}
		m := decodeModRM(mb)
		rm, rmErr := resolveRM(&c, m, ps.rex)
		if rmErr != OK {
			return Instruction{Length: c.Pos()}, rmErr
		}

		rmSlot, regSlot := 0, 1
		if info.direction {
			rmSlot, regSlot = 1, 0
		}

		if rm.isMem {
			inst.Mem = rm.mem
			inst.Flags |= UseMemOp
			if rm.rip {
				inst.Flags |= UseRIPMem
			}
		} else {
			inst.Reg[rmSlot] = gprOrHighByte(byte(rm.reg), info.width, ps.rex.present)
		}

		switch {
		case info.implicitCL:
			inst.Reg[regSlot] = GPR(1)
		case info.regFromRX:
			rxIdx := ps.rex.r<<3 | m.rx
			inst.Reg[regSlot] = gprOrHighByte(rxIdx, info.width, ps.rex.present)
		}
	}

	if info.singleOper {
		inst.Reg[1] = RegNone
	}

	if info.imm != immNone {
		raw, rok := readImmediate(&c, info.imm)
		if !rok {
			return Instruction{Length: c.Pos()}, OutOfSpace
		}
		if info.imm == imm64 {
			inst.Abs = uint64(raw)
			inst.Flags |= Absolute
		} else {
			inst.Imm = int32(raw)
			inst.Flags |= Immediate
		}
	}

	inst.DataType = resolveWidth(info.width, ps)
	if info.width2 != wNone {
		inst.DataType2 = resolveWidth(info.width2, ps)
		inst.Flags |= TwoDataTypes
	}

	inst.Length = c.Pos()
	return inst, OK
}

// gprOrHighByte applies the legacy high-byte promotion: at BYTE width with
// no REX prefix present, register indices 4-7 name AH/CH/DH/BH instead of
// SPL/BPL/SIL/DIL.
func gprOrHighByte(index byte, w widthKind, rexPresent bool) RegSlot {
	if w == w8 && !rexPresent && index >= 4 && index <= 7 {
		return HighByte(index - 4)
	}
	return GPR(index)
}

// walkOpcode implements §4.4's pre-dispatch: when the 0x66 operand-size
// prefix is present (and REX.W, which takes priority on real hardware, is
// not), the walk is tried first against the word-sized sub-table built by
// buildSixteenBitForms, exactly the redirect original_source/src/disx86.c:
// 217-223 performs into its own addr16 sub-table. If that walk dead-ends in
// UnknownOpcode - the same firstByte reached via 0x66 but carrying no
// word-sized form, e.g. a 66-prefixed SSE opcode such as 66 0F 10 (movupd),
// whose 0x66 selects a packed-double variant rather than an operand-width
// override (§4.5) - the walk is retried from entryState exactly as the
// original's "if dfa[val+op]==0, neglect the prefix" rule does, with the
// cursor rewound to just past firstByte so the retry reads the same bytes.
func walkOpcode(c *Cursor, ps prefixState, firstByte byte) (walkResult, Result) {
	if ps.opSize && ps.rex.w == 0 {
		consumedBefore := c.Pos()
		wr, res := walkDFA(c, firstByte, sixteenBitState)
		if res != UnknownOpcode {
			return wr, res
		}
		c.Rewind(c.Pos() - consumedBefore)
	}
	return walkDFA(c, firstByte, entryState)
}

// finalKind resolves a raw DFA terminal Kind into the mnemonic Decode
// actually returns: condition-code families resolve from the trigger byte,
// the SSE move markers resolve from the legacy prefixes.
func finalKind(raw Kind, trigger byte, ps prefixState) Kind {
	switch raw {
	case kindSSEMoveLoad, kindSSEMoveStore, kindSSEMoveAlignedLoad, kindSSEMoveAlignedStore,
		kindSSEIntMoveLoad, kindSSEIntMoveStore,
		kindSSEAdd, kindSSEMul, kindSSESub, kindSSEDiv, kindSSESqrt, kindSSERsqrt,
		kindSSEAnd, kindSSEOr, kindSSEXor, kindSSEUcomi:
		return resolveSSEKind(raw, ps)
	default:
		return resolveKind(raw, trigger)
	}
}

var endbr64Bytes = [...]byte{0xF3, 0x0F, 0x1E, 0xFA}

// matchENDBR64 implements §4.9's short-circuit: ENDBR64 bypasses the DFA
// entirely rather than threading the REP prefix through the 0F escape
// state for the sake of one opcode.
func matchENDBR64(code []byte) ([]byte, bool) {
	if len(code) < len(endbr64Bytes) {
		return nil, false
	}
	for i, b := range endbr64Bytes {
		if code[i] != b {
			return nil, false
		}
	}
	return code[:len(endbr64Bytes)], true
}

// readImmediate implements §4.8: the UNITY width reads nothing and yields
// the constant 1; every other width sign-extends into a 64-bit value for
// the caller to narrow.
func readImmediate(c *Cursor, w immWidth) (int64, bool) {
	switch w {
	case immNone:
		return 0, true
	case immUnity:
		return 1, true
	case imm8:
		b, ok := c.ReadU8()
		if !ok {
			return 0, false
		}
		return int64(int8(b)), true
	case imm16:
		v, ok := c.ReadU16LE()
		if !ok {
			return 0, false
		}
		return int64(int16(v)), true
	case imm32:
		v, ok := c.ReadU32LE()
		if !ok {
			return 0, false
		}
		return int64(int32(v)), true
	case imm64:
		v, ok := c.ReadU64LE()
		if !ok {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, true
	}
}
