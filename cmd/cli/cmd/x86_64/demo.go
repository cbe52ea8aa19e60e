// Package x8664 holds the x86_64 architecture's cobra subcommands: small,
// self-contained demonstrations of the encoder, the label/branch engine,
// and the ELF object-file writer.
package x8664

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ferrocore/x86asm/architecture/x86_64"
	"github.com/ferrocore/x86asm/internal/diagnostics"
)

// demoScenario is one canonical encode/resolve/shorten run, named so the
// command's output can be searched against the encoding table it exercises.
type demoScenario struct {
	name string
	run  func(b *x86_64.Buffer)
}

var demoScenarios = []demoScenario{
	{
		name: "mov-add-ret",
		run: func(b *x86_64.Buffer) {
			b.EmitMOV(x86_64.RAX, x86_64.RBX)
			b.EmitADD(x86_64.RAX, x86_64.RBX)
			b.EmitRET()
		},
	},
	{
		name: "forward-jmp-shortens",
		run: func(b *x86_64.Buffer) {
			l := b.NewLabel()
			b.EmitJmp(l)
			b.EmitNOPN(3)
			must(b.DefineLabel(l))
			b.EmitRET()
		},
	},
	{
		name: "conditional-jump-over-mov",
		run: func(b *x86_64.Buffer) {
			b.EmitCMP(x86_64.RAX, x86_64.RBX)
			l := b.NewLabel()
			must(b.EmitJcc(x86_64.Jg, l))
			b.EmitMOV(x86_64.RAX, x86_64.RBX)
			must(b.DefineLabel(l))
			b.EmitRET()
		},
	},
	{
		name: "far-jmp-stays-long",
		run: func(b *x86_64.Buffer) {
			l := b.NewLabel()
			b.EmitJmp(l)
			b.EmitNOPN(200)
			must(b.DefineLabel(l))
			b.EmitRET()
		},
	},
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// DemoCmd runs every canonical scenario end to end (encode, resolve,
// shorten) and prints the resulting bytes.
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run canonical encode/resolve/shorten scenarios and print their bytes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, scenario := range demoScenarios {
			ctx := diagnostics.New()
			b := x86_64.NewBuffer().WithDiagnostics(ctx)

			ctx.SetPhase("encode")
			scenario.run(b)

			ctx.SetPhase("resolve")
			if err := b.ResolveAll(); err != nil {
				return fmt.Errorf("%s: resolve: %w", scenario.name, err)
			}

			ctx.SetPhase("shorten")
			if err := b.Shorten(); err != nil {
				return fmt.Errorf("%s: shorten: %w", scenario.name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%-28s %3d bytes  %s\n", scenario.name, b.Len(), b.FormatHex())
		}
		return nil
	},
}
