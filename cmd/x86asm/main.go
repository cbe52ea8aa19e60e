package main

import "github.com/ferrocore/x86asm/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
