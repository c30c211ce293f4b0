package disasm

// RegSlot is a packed register reference: 0-15 name one of the sixteen GPRs
// (or, when Instruction.Flags has XMMREG set, one of sixteen XMM
// registers); 16-19 name the legacy high-byte forms AH/CH/DH/BH, legal only
// at BYTE width with no REX prefix present. RegNone marks an empty slot.
type RegSlot byte

const (
	// RegNone - no register occupies this slot.
	RegNone RegSlot = 0xFF

	// RegAHBase - AH/CH/DH/BH are encoded as RegAHBase + (index-4), i.e.
	// 16=AH, 17=CH, 18=DH, 19=BH.
	RegAHBase RegSlot = 16
)

// IsHighByte reports whether the slot names one of AH/CH/DH/BH.
func (r RegSlot) IsHighByte() bool {
	return r >= RegAHBase && r <= RegAHBase+3
}

// GPR constructs a RegSlot from a 4-bit (REX-extended) register index.
func GPR(index byte) RegSlot {
	return RegSlot(index)
}

// HighByte promotes a 2-bit low-register index (0..3, i.e. the original
// 4..7 minus 4) to its high-byte RegSlot.
func HighByte(index byte) RegSlot {
	return RegAHBase + RegSlot(index)
}
