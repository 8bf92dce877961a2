package buffer

// Selection is a normalized selection at one point in time.
type Selection struct {
	Active bool
	Range  Range
}

// Edit is one text replacement inside a Change.
type Edit struct {
	// RangeBefore is the replaced range in the old text; RangeAfter covers
	// the inserted text in the new one.
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change records one effective mutation: text, caret, or selection.
type Change struct {
	VersionBefore, VersionAfter     uint64
	CaretBefore, CaretAfter         int
	SelectionBefore, SelectionAfter Selection
	Edits                           []Edit
}

// TextChanged reports whether the change replaced any text.
func (c Change) TextChanged() bool { return len(c.Edits) > 0 }

// LastChange returns the most recent effective change. The returned value
// does not alias buffer state.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	ch := b.lastChange
	ch.Edits = append([]Edit(nil), ch.Edits...)
	return ch, true
}

// snapshot is the caret state a change starts from.
type snapshot struct {
	version uint64
	caret   int
	sel     Selection
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{version: b.version, caret: b.cursor, sel: b.publicSelection()}
}

func (b *Buffer) publicSelection() Selection {
	r, ok := b.Selection()
	if !ok {
		return Selection{}
	}
	return Selection{Active: true, Range: r}
}

// record stores the change from before to the current state, unless the
// version did not move.
func (b *Buffer) record(before snapshot, edits ...Edit) {
	if b.version == before.version {
		return
	}
	for i := range edits {
		edits[i].RangeBefore = NormalizeRange(edits[i].RangeBefore)
		edits[i].RangeAfter = NormalizeRange(edits[i].RangeAfter)
	}
	b.lastChange = Change{
		VersionBefore:   before.version,
		VersionAfter:    b.version,
		CaretBefore:     before.caret,
		CaretAfter:      b.cursor,
		SelectionBefore: before.sel,
		SelectionAfter:  b.publicSelection(),
		Edits:           append([]Edit(nil), edits...),
	}
	b.hasLastChange = true
}
