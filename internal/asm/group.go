package asm

// Group is a named collection of catalog instructions, mirroring how the ISA
// manual itself is organised (data movement, arithmetic, control flow, ...).
type Group struct {
	// Name is the group's human-readable name (e.g., "Data Movement").
	Name string
	// Instructions maps mnemonic to its catalog entry.
	Instructions map[string]Instruction
}

// Provider supplies one group's worth of catalog instructions. Each
// instruction family in the x86_64 package implements this so the full
// catalog can be assembled by folding every provider together.
type Provider interface {
	Group() string
	Provide() []Instruction
}

// GroupFromSlice builds a Group from a flat slice of instructions, indexing
// them by mnemonic.
func GroupFromSlice(name string, instructions []Instruction) *Group {
	indexed := make(map[string]Instruction, len(instructions))
	for _, instr := range instructions {
		indexed[instr.Mnemonic] = instr
	}
	return &Group{
		Name:         name,
		Instructions: indexed,
	}
}

// Has reports whether an instruction with the given mnemonic exists in the
// group.
func (g *Group) Has(mnemonic string) bool {
	_, exists := g.Instructions[mnemonic]
	return exists
}

// Get retrieves an instruction from the group by mnemonic, or nil if absent.
func (g *Group) Get(mnemonic string) *Instruction {
	if instr, exists := g.Instructions[mnemonic]; exists {
		return &instr
	}
	return nil
}

// Put adds or overwrites an instruction in the group.
func (g *Group) Put(instr Instruction) {
	g.Instructions[instr.Mnemonic] = instr
}

// Count returns the number of instructions in the group.
func (g *Group) Count() int {
	return len(g.Instructions)
}

// Mnemonics returns every mnemonic registered in the group.
func (g *Group) Mnemonics() []string {
	mnemonics := make([]string, 0, len(g.Instructions))
	for mnemonic := range g.Instructions {
		mnemonics = append(mnemonics, mnemonic)
	}
	return mnemonics
}

// Merge folds another group's instructions into this one. On mnemonic
// collision, the other group's entry wins.
func (g *Group) Merge(other *Group) {
	for mnemonic, instr := range other.Instructions {
		g.Instructions[mnemonic] = instr
	}
}

// Catalog builds the full instruction catalog by collecting every
// provider's group, keyed by group name.
func Catalog(providers ...Provider) map[string]*Group {
	catalog := make(map[string]*Group, len(providers))
	for _, p := range providers {
		catalog[p.Group()] = GroupFromSlice(p.Group(), p.Provide())
	}
	return catalog
}
