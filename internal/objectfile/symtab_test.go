package objectfile_test

import (
	"testing"

	"github.com/ferrocore/x86asm/internal/objectfile"
)

func TestEncodeSymbolTableIncludesNullSymbol(t *testing.T) {
	strtab := objectfile.NewStringTable()
	out := objectfile.EncodeSymbolTable(nil, strtab)
	if got, want := len(out), 24; got != want {
		t.Fatalf("len(out) = %d, want %d (just the null symbol)", got, want)
	}
}

func TestEncodeSymbolTableAddsNamesToStringTable(t *testing.T) {
	strtab := objectfile.NewStringTable()
	symbols := []objectfile.Symbol{
		{Name: "foo", Binding: objectfile.BindGlobal, Type: objectfile.TypeFunc},
		{Name: "bar", Binding: objectfile.BindLocal, Type: objectfile.TypeObject},
	}
	out := objectfile.EncodeSymbolTable(symbols, strtab)
	if got, want := len(out), 24*3; got != want {
		t.Fatalf("len(out) = %d, want %d", got, want)
	}
	if strtab.Len() <= 1 {
		t.Errorf("expected the string table to grow past its leading null byte")
	}
}
