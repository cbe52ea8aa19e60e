package diagnostics_test

import (
	"testing"

	"github.com/ferrocore/x86asm/internal/diagnostics"
)

func TestContextRecordsEntriesInOrder(t *testing.T) {
	ctx := diagnostics.New()
	ctx.SetPhase("encode")
	ctx.Trace(diagnostics.At(0), "emit MOV")
	ctx.SetPhase("resolve")
	ctx.Error(diagnostics.At(12), "undefined label 3")

	entries := ctx.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Phase() != "encode" || entries[1].Phase() != "resolve" {
		t.Errorf("phases = %q, %q, want encode, resolve", entries[0].Phase(), entries[1].Phase())
	}
}

func TestContextHasErrors(t *testing.T) {
	ctx := diagnostics.New()
	if ctx.HasErrors() {
		t.Fatalf("HasErrors() = true on empty context")
	}

	ctx.Warning(diagnostics.At(4), "shortening reached the iteration cap")
	if ctx.HasErrors() {
		t.Fatalf("HasErrors() = true after only a warning")
	}

	ctx.Error(diagnostics.At(4), "duplicate label definition")
	if !ctx.HasErrors() {
		t.Fatalf("HasErrors() = false after an error was recorded")
	}
}

func TestContextFiltersBySeverity(t *testing.T) {
	ctx := diagnostics.New()
	ctx.Info(diagnostics.At(0), "buffer created")
	ctx.Warning(diagnostics.At(1), "warn 1")
	ctx.Warning(diagnostics.At(2), "warn 2")
	ctx.Error(diagnostics.At(3), "err 1")

	if got := len(ctx.Warnings()); got != 2 {
		t.Errorf("len(Warnings()) = %d, want 2", got)
	}
	if got := len(ctx.Errors()); got != 1 {
		t.Errorf("len(Errors()) = %d, want 1", got)
	}
	if got := ctx.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestEntryWithHintChains(t *testing.T) {
	ctx := diagnostics.New()
	entry := ctx.Error(diagnostics.At(8), "invalid shift count 64").WithHint("shift counts must be in 0..63")

	if entry.Hint() != "shift counts must be in 0..63" {
		t.Errorf("Hint() = %q, want the chained hint", entry.Hint())
	}
}
