package x86_64

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveFilePath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "code.bin")
	if err := os.WriteFile(existing, []byte{0x90, 0xc3}, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no args", args: nil, wantErr: "no input file provided"},
		{name: "empty path", args: []string{""}, wantErr: "input file path is empty"},
		{name: "missing file", args: []string{"does-not-exist.bin"}, wantErr: "does not exist"},
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	rel, err := filepath.Rel(cwd, existing)
	if err != nil {
		t.Fatalf("failed to compute relative path: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resolveFilePath(tc.args)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error to contain %q, got: %v", tc.wantErr, err)
			}
		})
	}

	t.Run("existing file resolves to absolute path", func(t *testing.T) {
		got, err := resolveFilePath([]string{rel})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != existing {
			t.Errorf("resolveFilePath(%q) = %q, want %q", rel, got, existing)
		}
	})
}

func TestDisassembleAll(t *testing.T) {
	// nop; ret; endbr64
	code := []byte{0x90, 0xc3, 0xf3, 0x0f, 0x1e, 0xfa}

	var buf bytes.Buffer
	if err := disassembleAll(&buf, code, 0x1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"nop", "ret", "endbr64", "0000000000001000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestDisassembleAllStopsOnUnknownOpcode(t *testing.T) {
	// An undefined two-byte opcode (0x0F 0xFF is not in the
	// supported two-byte escape subset).
	code := []byte{0x0f, 0xff}

	var buf bytes.Buffer
	err := disassembleAll(&buf, code, 0)
	if err == nil {
		t.Fatal("expected an error for an unknown opcode, got nil")
	}
	if !strings.Contains(err.Error(), "UNKNOWN_OPCODE") {
		t.Errorf("expected error to mention UNKNOWN_OPCODE, got: %v", err)
	}
}

func TestLocateTextSectionRejectsNonELF(t *testing.T) {
	_, _, err := locateTextSection([]byte("not an elf file"))
	if err == nil {
		t.Fatal("expected an error for non-ELF input, got nil")
	}
	if !strings.Contains(err.Error(), "not a valid ELF file") {
		t.Errorf("expected error to mention invalid ELF, got: %v", err)
	}
}

func TestLoadCodeRawMode(t *testing.T) {
	disassembleRaw = true
	disassembleBase = 0x4000
	defer func() {
		disassembleRaw = false
		disassembleBase = 0
	}()

	raw := []byte{0x90, 0xc3}
	code, base, err := loadCode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base != 0x4000 {
		t.Errorf("base = %#x, want %#x", base, 0x4000)
	}
	if !bytes.Equal(code, raw) {
		t.Errorf("code = %v, want %v", code, raw)
	}
}
