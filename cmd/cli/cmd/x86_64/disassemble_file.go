package x86_64

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	x64 "github.com/keurnel/x64disasm/architecture/x86_64"
	"github.com/spf13/cobra"
)

var (
	disassembleRaw  bool
	disassembleBase uint64
)

// DisassembleFileCmd is the external interface spec.md §6 documents: a file
// path plus a -b/--raw flag meaning "raw binary, skip container parsing."
// It never touches the decoder's internals directly - it locates the code
// bytes (via an ELF64 .text section or --raw), then walks them through the
// public x86_64 package one instruction at a time.
var DisassembleFileCmd = &cobra.Command{
	Use:     "disassemble-file <binary-file>",
	GroupID: "file-operations",
	Short:   "Disassemble x86_64 machine code into Intel-syntax text.",
	Long: `Disassemble x86_64 machine code into Intel-syntax text.

By default the input is parsed as an ELF64 object and its .text section is
located automatically. Pass --raw to treat the entire file as code instead,
in which case --base sets the virtual address of the first byte.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDisassembleFile(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	DisassembleFileCmd.Flags().BoolVarP(&disassembleRaw, "raw", "b", false,
		"treat the input as raw binary code, skipping container parsing")
	DisassembleFileCmd.Flags().Uint64Var(&disassembleBase, "base", 0,
		"virtual load address of the first byte (raw mode only; ignored for ELF input)")
}

// runDisassembleFile orchestrates the full CLI pipeline: resolve the file,
// load the code bytes and base address, then print one decoded instruction
// per line until the input is exhausted or a decode fails.
func runDisassembleFile(cmd *cobra.Command, args []string) error {
	fullPath, err := resolveFilePath(args)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	code, base, err := loadCode(raw)
	if err != nil {
		return err
	}

	return disassembleAll(cmd.OutOrStdout(), code, base)
}

// loadCode resolves the code bytes and base virtual address per the --raw
// flag: raw mode trusts the whole file plus --base, container mode defers
// to the ELF .text locator.
func loadCode(raw []byte) (code []byte, base uint64, err error) {
	if disassembleRaw {
		return raw, disassembleBase, nil
	}
	return locateTextSection(raw)
}

// resolveFilePath validates the CLI arguments and returns the absolute path
// to the input file.
func resolveFilePath(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no input file provided")
	}
	if args[0] == "" {
		return "", fmt.Errorf("input file path is empty")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := filepath.Join(cwd, args[0])
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}

// disassembleAll walks code one instruction at a time, writing each to w in
// Format's Intel-ish text form, until the input is exhausted or a decode
// fails. On failure it reports the offset and the bytes that defeated the
// decoder, matching spec.md §7's "most callers terminate with a diagnostic
// printing the offending bytes."
func disassembleAll(w io.Writer, code []byte, base uint64) error {
	offset := 0
	for offset < len(code) {
		inst, res := x64.Decode(code[offset:])
		if res != x64.OK {
			end := min(offset+16, len(code))
			return fmt.Errorf("decode failed at offset 0x%x (%s): %s",
				offset, res, hex.EncodeToString(code[offset:end]))
		}

		addr := base + uint64(offset)
		fmt.Fprintln(w, x64.Format(addr, code[offset:offset+inst.Length], inst))
		offset += inst.Length
	}
	return nil
}
