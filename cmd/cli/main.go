package main

import "github.com/keurnel/x64disasm/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
