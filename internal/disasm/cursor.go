package disasm

// Cursor is a forward-consuming view over an instruction's byte slice. It
// never allocates and never looks past the end of the slice; every read
// checks the remaining length first and returns ok=false instead of
// panicking.
type Cursor struct {
	code []byte
	pos  int
}

// NewCursor returns a Cursor positioned at the start of code.
func NewCursor(code []byte) Cursor {
	return Cursor{code: code}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.code) - c.pos
}

// PeekU8 returns the next byte without consuming it. ok is false when the
// cursor is exhausted.
func (c *Cursor) PeekU8() (b byte, ok bool) {
	if c.Remaining() < 1 {
		return 0, false
	}
	return c.code[c.pos], true
}

// ReadU8 consumes and returns the next byte.
func (c *Cursor) ReadU8() (b byte, ok bool) {
	b, ok = c.PeekU8()
	if ok {
		c.pos++
	}
	return b, ok
}

// ReadU16LE consumes two bytes and returns them as a little-endian uint16.
func (c *Cursor) ReadU16LE() (v uint16, ok bool) {
	if c.Remaining() < 2 {
		return 0, false
	}
	v = uint16(c.code[c.pos]) | uint16(c.code[c.pos+1])<<8
	c.pos += 2
	return v, true
}

// ReadU32LE consumes four bytes and returns them as a little-endian uint32.
func (c *Cursor) ReadU32LE() (v uint32, ok bool) {
	if c.Remaining() < 4 {
		return 0, false
	}
	v = uint32(c.code[c.pos]) | uint32(c.code[c.pos+1])<<8 |
		uint32(c.code[c.pos+2])<<16 | uint32(c.code[c.pos+3])<<24
	c.pos += 4
	return v, true
}

// ReadU64LE consumes eight bytes and returns them as a little-endian uint64.
func (c *Cursor) ReadU64LE() (v uint64, ok bool) {
	if c.Remaining() < 8 {
		return 0, false
	}
	lo, _ := c.ReadU32LE()
	hi, _ := c.ReadU32LE()
	return uint64(lo) | uint64(hi)<<32, true
}

// Advance consumes n bytes, used after a peek has already inspected them.
func (c *Cursor) Advance(n int) {
	c.pos += n
}

// Rewind gives back n bytes already consumed. Used by decode.go's
// walkOpcode to retry a failed 0x66 pre-dispatch walk from entryState
// against the same bytes; also exercised directly in cursor_test.go.
func (c *Cursor) Rewind(n int) {
	c.pos -= n
}
