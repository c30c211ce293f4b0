package x86_64

import (
	"bytes"
	"debug/elf"
	"fmt"
)

// locateTextSection implements the container-reader collaborator spec.md §1
// classifies as out of the decoder core's scope: "a byte slice of
// executable code plus its base virtual address." It opens raw as an
// ELF64 object and returns its .text section's bytes and virtual address.
// Callers that already have a raw code blob (no container) should pass
// --raw instead of going through this path.
func locateTextSection(raw []byte) (code []byte, base uint64, err error) {
	f, err := elf.NewFile(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, fmt.Errorf("not a valid ELF file, pass -b/--raw for raw binary input: %w", err)
	}
	defer f.Close()

	if f.Class != elf.ELFCLASS64 {
		return nil, 0, fmt.Errorf("only ELF64 objects are supported, got %s", f.Class)
	}

	sec := f.Section(".text")
	if sec == nil {
		return nil, 0, fmt.Errorf("no .text section found in ELF file")
	}

	data, err := sec.Data()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read .text section: %w", err)
	}

	return data, sec.Addr, nil
}
