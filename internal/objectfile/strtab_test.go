package objectfile_test

import (
	"testing"

	"github.com/ferrocore/x86asm/internal/objectfile"
)

func TestStringTableLeadingNull(t *testing.T) {
	tab := objectfile.NewStringTable()
	if got, want := tab.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := tab.Bytes()[0], byte(0); got != want {
		t.Errorf("Bytes()[0] = %d, want %d", got, want)
	}
}

func TestStringTableAddDeduplicates(t *testing.T) {
	tab := objectfile.NewStringTable()
	first := tab.Add("main")
	second := tab.Add("main")
	if first != second {
		t.Errorf("Add(\"main\") twice returned different offsets: %d, %d", first, second)
	}
	if first == 0 {
		t.Errorf("Add(\"main\") returned offset 0, want a non-zero offset")
	}
}

func TestStringTableEmptyNameResolvesToZero(t *testing.T) {
	tab := objectfile.NewStringTable()
	if got := tab.Add(""); got != 0 {
		t.Errorf("Add(\"\") = %d, want 0", got)
	}
}
