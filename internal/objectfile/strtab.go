package objectfile

// StringTable is a null-terminated concatenation of names. Offset 0 always
// means "no name", so the table starts with a leading null byte before any
// name is added.
type StringTable struct {
	bytes   []byte
	offsets map[string]int
}

// NewStringTable returns a table containing only the leading null byte.
func NewStringTable() *StringTable {
	return &StringTable{
		bytes:   []byte{0},
		offsets: make(map[string]int),
	}
}

// Add returns name's byte offset into the table, appending it (with its
// terminating null) if this is the first time name has been seen. The
// empty string always resolves to offset 0 without being appended again.
func (t *StringTable) Add(name string) uint32 {
	if name == "" {
		return 0
	}
	if offset, ok := t.offsets[name]; ok {
		return uint32(offset)
	}
	offset := len(t.bytes)
	t.bytes = append(t.bytes, name...)
	t.bytes = append(t.bytes, 0)
	t.offsets[name] = offset
	return uint32(offset)
}

// Bytes returns the table's current contents.
func (t *StringTable) Bytes() []byte {
	return t.bytes
}

// Len returns the table's current byte length.
func (t *StringTable) Len() int {
	return len(t.bytes)
}
