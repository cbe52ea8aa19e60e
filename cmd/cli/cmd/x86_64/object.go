package x8664

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ferrocore/x86asm/architecture/x86_64"
	"github.com/ferrocore/x86asm/internal/diagnostics"
	"github.com/ferrocore/x86asm/internal/objectfile"
)

var objectOut string

// buildDemoObject assembles a single ".text" section: a "main" function
// that calls an external, as-yet-undefined symbol ("puts") and returns.
// The call site is left as a relocation rather than a resolved branch,
// the same way a compiler emits a call to a function defined in another
// translation unit.
func buildDemoObject() ([]byte, error) {
	ctx := diagnostics.New()
	b := x86_64.NewBuffer().WithDiagnostics(ctx)

	ctx.SetPhase("encode")
	b.EmitMOV(x86_64.RDI, x86_64.RAX)

	callSite := b.Len()
	b.EmitCallImm32(0) // patched by the .rela.text entry below

	b.EmitRET()

	obj := objectfile.Object{
		Sections: []objectfile.Section{
			objectfile.NewProgbitsSection(".text", b.Bytes(), 16, objectfile.ShfAlloc|objectfile.ShfExecinstr),
		},
		Symbols: []objectfile.Symbol{
			{Name: "main", Binding: objectfile.BindGlobal, Type: objectfile.TypeFunc, Section: 1, Value: 0, Size: uint64(b.Len())},
			{Name: "puts", Binding: objectfile.BindGlobal, Type: objectfile.TypeFunc, Section: 0},
		},
		Relocations: map[string][]objectfile.Relocation{
			".text": {
				// symbol index 2: the null symbol occupies index 0, "main"
				// occupies 1, so "puts" is 2.
				{Offset: uint64(callSite + 1), SymbolIndex: 2, Type: objectfile.RelX8664PC32, Addend: -4},
			},
		},
	}

	return obj.Write()
}

// ObjectCmd assembles the package's canonical relocatable-object
// demonstration and writes it to disk as a relocatable ELF64 object file.
var ObjectCmd = &cobra.Command{
	Use:   "object",
	Short: "Assemble a small relocatable ELF64 object file and write it to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		bytes, err := buildDemoObject()
		if err != nil {
			return fmt.Errorf("build object: %w", err)
		}
		if err := os.WriteFile(objectOut, bytes, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", objectOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(bytes), objectOut)
		return nil
	},
}

func init() {
	ObjectCmd.Flags().StringVarP(&objectOut, "out", "o", "out.o", "output path for the object file")
}
