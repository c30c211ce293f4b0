package disasm

import "testing"

func TestCursorReads(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09})

	b, ok := c.ReadU8()
	if !ok || b != 0x01 {
		t.Fatalf("ReadU8 = %#x, %v", b, ok)
	}

	v16, ok := c.ReadU16LE()
	if !ok || v16 != 0x0302 {
		t.Fatalf("ReadU16LE = %#x, %v", v16, ok)
	}

	v32, ok := c.ReadU32LE()
	if !ok || v32 != 0x07060504 {
		t.Fatalf("ReadU32LE = %#x, %v", v32, ok)
	}

	if c.Remaining() != 2 {
		t.Fatalf("Remaining = %d, want 2", c.Remaining())
	}

	if _, ok := c.ReadU32LE(); ok {
		t.Fatalf("ReadU32LE on 2 remaining bytes should fail")
	}

	if c.Pos() != 7 {
		t.Fatalf("a failed read must not advance pos: Pos() = %d, want 7", c.Pos())
	}
}

func TestCursorReadU64LE(t *testing.T) {
	c := NewCursor([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	v, ok := c.ReadU64LE()
	if !ok || v != 1 {
		t.Fatalf("ReadU64LE = %#x, %v", v, ok)
	}
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0xAA, 0xBB})
	b, ok := c.PeekU8()
	if !ok || b != 0xAA {
		t.Fatalf("PeekU8 = %#x, %v", b, ok)
	}
	if c.Pos() != 0 {
		t.Fatalf("PeekU8 must not advance: Pos() = %d", c.Pos())
	}
}

func TestCursorRewind(t *testing.T) {
	c := NewCursor([]byte{0x11, 0x22})
	c.ReadU8()
	c.ReadU8()
	c.Rewind(1)
	if c.Pos() != 1 {
		t.Fatalf("Pos() after rewind = %d, want 1", c.Pos())
	}
	b, ok := c.ReadU8()
	if !ok || b != 0x22 {
		t.Fatalf("ReadU8 after rewind = %#x, %v", b, ok)
	}
}

func TestCursorEmptyInput(t *testing.T) {
	c := NewCursor(nil)
	if _, ok := c.ReadU8(); ok {
		t.Fatal("ReadU8 on empty input should fail")
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", c.Remaining())
	}
}
