package disasm

// Legacy prefix byte values recognised by the scanner, named the same way
// the assembler side of this lineage names its encoder-facing counterparts.
const (
	prefixLock        byte = 0xF0
	prefixRepNE       byte = 0xF2
	prefixRep         byte = 0xF3
	prefixCS          byte = 0x2E
	prefixSS          byte = 0x36
	prefixDS          byte = 0x3E
	prefixES          byte = 0x26
	prefixFS          byte = 0x64
	prefixGS          byte = 0x65
	prefixOperandSize byte = 0x66
	prefixAddressSize byte = 0x67
	rexLow            byte = 0x40
	rexHigh           byte = 0x4F
)

// rex decomposes a REX prefix byte into its four promotion bits.
type rex struct {
	present bool
	w, r, x, b byte // each 0 or 1
}

func decodeREX(b byte) rex {
	return rex{
		present: true,
		w:       (b >> 3) & 1,
		r:       (b >> 2) & 1,
		x:       (b >> 1) & 1,
		b:       b & 1,
	}
}

// prefixState accumulates every legacy prefix seen before the opcode.
// Subsequent prefixes of the same kind overwrite earlier ones, matching
// real hardware (and the invariant tests in decode_test.go and prefix_test.go).
type prefixState struct {
	segment   Segment
	rex       rex
	lock      bool
	opSize    bool // 0x66 seen
	addrSize  bool // 0x67 seen; recognised but does not change addressing
	rep       bool // 0xF3 seen
	repne     bool // 0xF2 seen
}

// scanPrefixes consumes the legacy-prefix run and returns the accumulated
// state plus the first non-prefix byte, which the caller treats as the
// initial opcode byte. ok is false on a short read.
func scanPrefixes(c *Cursor) (st prefixState, opcode byte, ok bool) {
	for {
		b, readOK := c.PeekU8()
		if !readOK {
			return st, 0, false
		}

		switch {
		case b >= rexLow && b <= rexHigh:
			st.rex = decodeREX(b)
		case b == prefixOperandSize:
			st.opSize = true
		case b == prefixAddressSize:
			st.addrSize = true
		case b == prefixLock:
			st.lock = true
		case b == prefixRepNE:
			st.repne = true
		case b == prefixRep:
			st.rep = true
		case b == prefixCS:
			st.segment = SegCS
		case b == prefixSS:
			st.segment = SegSS
		case b == prefixDS:
			st.segment = SegDS
		case b == prefixES:
			st.segment = SegES
		case b == prefixFS:
			st.segment = SegFS
		case b == prefixGS:
			st.segment = SegGS
		default:
			c.Advance(1)
			return st, b, true
		}
		c.Advance(1)
	}
}
