package disasm

import (
	"fmt"
	"io"
)

// DumpDFA prints every reachable state/byte transition of the opcode DFA to
// w, one line per non-zero cell. Not behavior-critical: a debugging aid for
// inspecting the table opspec.go builds, not part of the decode path.
func DumpDFA(w io.Writer) {
	states := len(table.cells) / dfaStateBytes
	for s := 0; s < states; s++ {
		for b := 0; b < dfaStateBytes; b++ {
			word := table.get(s, byte(b))
			if word == 0 {
				continue
			}
			switch {
			case word.isTerminal():
				fmt.Fprintf(w, "state %d, byte 0x%02X: terminal kind=%s mode=%d plusR=%v\n",
					s, b, word.kind().Name(), word.mode(), word.isPlusR())
			case word.isRXDig():
				fmt.Fprintf(w, "state %d, byte 0x%02X: rx-dig -> state %d\n", s, b, word.nextState())
			default:
				fmt.Fprintf(w, "state %d, byte 0x%02X: -> state %d\n", s, b, word.nextState())
			}
		}
	}
}
