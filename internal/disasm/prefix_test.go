package disasm

import "testing"

func TestScanPrefixesNone(t *testing.T) {
	c := NewCursor([]byte{0x90})
	st, op, ok := scanPrefixes(&c)
	if !ok {
		t.Fatal("scanPrefixes() ok = false, want true")
	}
	if op != 0x90 {
		t.Errorf("opcode = %#x, want 0x90", op)
	}
	if st.rex.present || st.lock || st.opSize || st.rep || st.repne {
		t.Errorf("prefixState = %+v, want all flags clear", st)
	}
}

func TestScanPrefixesREX(t *testing.T) {
	c := NewCursor([]byte{0x4D, 0x01, 0xD8}) // REX.WRB
	st, op, ok := scanPrefixes(&c)
	if !ok {
		t.Fatal("scanPrefixes() ok = false, want true")
	}
	if op != 0x01 {
		t.Errorf("opcode = %#x, want 0x01", op)
	}
	if !st.rex.present || st.rex.w != 1 || st.rex.r != 1 || st.rex.b != 1 || st.rex.x != 0 {
		t.Errorf("rex = %+v, want present W=1 R=1 X=0 B=1", st.rex)
	}
}

func TestScanPrefixesLockAndOperandSize(t *testing.T) {
	c := NewCursor([]byte{0xF0, 0x66, 0x01, 0xD8})
	st, op, ok := scanPrefixes(&c)
	if !ok {
		t.Fatal("scanPrefixes() ok = false, want true")
	}
	if op != 0x01 {
		t.Errorf("opcode = %#x, want 0x01", op)
	}
	if !st.lock || !st.opSize {
		t.Errorf("prefixState = %+v, want lock and opSize both set", st)
	}
}

func TestScanPrefixesSegmentOverride(t *testing.T) {
	tests := []struct {
		b    byte
		want Segment
	}{
		{prefixCS, SegCS},
		{prefixSS, SegSS},
		{prefixDS, SegDS},
		{prefixES, SegES},
		{prefixFS, SegFS},
		{prefixGS, SegGS},
	}
	for _, tt := range tests {
		c := NewCursor([]byte{tt.b, 0x90})
		st, _, ok := scanPrefixes(&c)
		if !ok {
			t.Fatalf("scanPrefixes(%#x) ok = false", tt.b)
		}
		if st.segment != tt.want {
			t.Errorf("scanPrefixes(%#x) segment = %v, want %v", tt.b, st.segment, tt.want)
		}
	}
}

func TestScanPrefixesLastSegmentWins(t *testing.T) {
	c := NewCursor([]byte{prefixFS, prefixGS, 0x90})
	st, _, ok := scanPrefixes(&c)
	if !ok {
		t.Fatal("scanPrefixes() ok = false, want true")
	}
	if st.segment != SegGS {
		t.Errorf("segment = %v, want SegGS (last segment prefix wins)", st.segment)
	}
}

func TestScanPrefixesRepAndRepneIndependent(t *testing.T) {
	// REP and REPNE are tracked as two independent booleans, matching
	// original_source/src/disx86.c's prefix scan: neither clears the other.
	c := NewCursor([]byte{prefixRep, prefixRepNE, 0x90})
	st, _, ok := scanPrefixes(&c)
	if !ok {
		t.Fatal("scanPrefixes() ok = false, want true")
	}
	if !st.rep || !st.repne {
		t.Errorf("prefixState = %+v, want both rep and repne set", st)
	}
}

func TestScanPrefixesRepeatedREXLastWins(t *testing.T) {
	c := NewCursor([]byte{0x44, 0x48, 0x01, 0xD8}) // REX.R then REX.W
	st, _, ok := scanPrefixes(&c)
	if !ok {
		t.Fatal("scanPrefixes() ok = false, want true")
	}
	if st.rex.w != 1 || st.rex.r != 0 {
		t.Errorf("rex = %+v, want only the last REX byte's bits (W=1, R=0)", st.rex)
	}
}

func TestScanPrefixesOutOfSpace(t *testing.T) {
	c := NewCursor([]byte{0x66, 0xF0}) // only prefixes, no opcode byte follows
	_, _, ok := scanPrefixes(&c)
	if ok {
		t.Fatal("scanPrefixes() ok = true, want false (no opcode byte)")
	}
}

func TestDecodeREX(t *testing.T) {
	r := decodeREX(0x4F) // W=1 R=1 X=1 B=1
	if !r.present || r.w != 1 || r.r != 1 || r.x != 1 || r.b != 1 {
		t.Errorf("decodeREX(0x4F) = %+v, want all bits set", r)
	}
	r0 := decodeREX(0x40)
	if !r0.present || r0.w != 0 || r0.r != 0 || r0.x != 0 || r0.b != 0 {
		t.Errorf("decodeREX(0x40) = %+v, want present with all bits clear", r0)
	}
}
