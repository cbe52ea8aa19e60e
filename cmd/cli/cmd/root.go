package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "x86asm",
	Short: "x86-64 machine code emitter",
	Long:  `x86asm encodes x86-64 instructions directly to machine code, without an assembly-language front end.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	rootCmd.AddCommand(x8664Cmd)
}
