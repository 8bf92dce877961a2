package buffer

import (
	"strings"

	"github.com/iw2rmb/abacus/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure display state: text, cursor, and selection.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	clusters    []string
	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{
		clusters: grapheme.Split(sanitize(text)),
	}
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the buffer length in graphemes.
func (b *Buffer) Len() int { return len(b.clusters) }

// GraphemeAt returns the cluster at offset i.
func (b *Buffer) GraphemeAt(i int) (string, bool) {
	if i < 0 || i >= len(b.clusters) {
		return "", false
	}
	return b.clusters[i], true
}

// Graphemes returns a copy of the buffer's clusters.
func (b *Buffer) Graphemes() []string {
	return append([]string(nil), b.clusters...)
}

// Version changes on every effective text, cursor, or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the caret and drops any selection.
func (b *Buffer) SetCursor(off int) {
	next := ClampOffset(off, len(b.clusters))
	_, hadSel := b.Selection()
	b.sel = selectionState{}
	if next == b.cursor && !hadSel {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// UI layers use it to keep the selection direction for shift-extension.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r. r.Start is the anchor and r.End the active end,
// which also becomes the cursor. An empty range collapses to a caret at
// r.End.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.clusters))
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.IsEmpty() {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	prevCursor := b.cursor

	b.sel = next
	b.cursor = clamped.End

	nextRange, nextOK := b.Selection()
	if prevOK == nextOK && prevRange == nextRange && prevCursor == b.cursor {
		return
	}
	b.version++
}

// SelectAll selects the whole buffer with the cursor at the end.
func (b *Buffer) SelectAll() {
	b.SetSelection(Range{Start: 0, End: len(b.clusters)})
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// Caret returns the collapsed-or-not selection bounds the way a text field
// reports them: (start, end) with start == end for a bare caret.
func (b *Buffer) Caret() (start, end int) {
	if r, ok := b.Selection(); ok {
		return r.Start, r.End
	}
	return b.cursor, b.cursor
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// sanitize keeps the buffer on one line.
func sanitize(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return lineBreaks.Replace(text)
}
