package diagnostics

import "fmt"

// Site identifies a byte position in a buffer under construction. It is a
// value type — safe to copy and compare.
type Site struct {
	offset int
	detail string // optional free-form qualifier, e.g. "branch to label 3"
}

// At creates a Site for the given byte offset.
func At(offset int) Site {
	return Site{offset: offset}
}

// AtDetail creates a Site for the given byte offset with an extra qualifier
// shown alongside the offset.
func AtDetail(offset int, detail string) Site {
	return Site{offset: offset, detail: detail}
}

// Offset returns the byte offset the site refers to.
func (s Site) Offset() int { return s.offset }

// Detail returns the optional qualifier, or empty string.
func (s Site) Detail() string { return s.detail }

// String returns a human-readable representation of the site.
func (s Site) String() string {
	if s.detail == "" {
		return fmt.Sprintf("offset %d", s.offset)
	}
	return fmt.Sprintf("offset %d (%s)", s.offset, s.detail)
}
