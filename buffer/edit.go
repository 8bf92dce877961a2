package buffer

import "github.com/iw2rmb/abacus/internal/grapheme"

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks in s are replaced with spaces.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.apply(r, s)
}

// ReplaceRange replaces the text in r with s and leaves a caret right after
// the inserted text. Any selection is dropped.
func (b *Buffer) ReplaceRange(r Range, s string) {
	b.apply(r, s)
}

// SetText replaces the whole buffer and puts the caret at its end.
func (b *Buffer) SetText(s string) {
	before := b.snapshot()
	_, edit, changed := b.replaceRange(Range{Start: 0, End: len(b.clusters)}, s)
	end := len(b.clusters)
	if !changed && end == b.cursor && !b.sel.active {
		return
	}
	b.cursor = end
	b.sel = selectionState{}
	b.version++
	if !changed {
		b.record(before)
		return
	}
	b.textVersion++
	b.record(before, edit)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.apply(Range{Start: b.cursor - 1, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor >= len(b.clusters) {
		return
	}
	b.apply(Range{Start: b.cursor, End: b.cursor + 1}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.apply(r, "")
}

func (b *Buffer) apply(r Range, s string) {
	before := b.snapshot()
	nextCursor, edit, changed := b.replaceRange(r, s)
	if !changed {
		// Replacing a selection with identical text still collapses it.
		if _, ok := b.Selection(); ok {
			n := NormalizeRange(ClampRange(r, len(b.clusters)))
			b.SetCursor(n.Start + grapheme.Count(sanitize(s)))
		}
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.record(before, edit)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor int, edit Edit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.clusters)))
	text = sanitize(text)
	if r.IsEmpty() && text == "" {
		return b.cursor, Edit{}, false
	}

	deleted := grapheme.Join(b.clusters[r.Start:r.End])
	if deleted == text {
		return b.cursor, Edit{}, false
	}

	ins := grapheme.Split(text)
	out := make([]string, 0, len(b.clusters)-r.Len()+len(ins))
	out = append(out, b.clusters[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.clusters[r.End:]...)

	// Re-segment around the seam: a combining mark typed after a digit must
	// join the preceding cluster.
	b.clusters = grapheme.Split(grapheme.Join(out))
	nextCursor = ClampOffset(grapheme.Count(grapheme.Join(out[:r.Start+len(ins)])), len(b.clusters))

	edit = Edit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, edit, true
}
