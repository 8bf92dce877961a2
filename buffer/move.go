package buffer

import "github.com/iw2rmb/abacus/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	var nextCursor int
	if r, ok := b.Selection(); ok && !m.Extend && m.Unit == MoveGrapheme {
		// A plain left/right collapses the selection to its edge first.
		switch m.Dir {
		case DirLeft:
			nextCursor = r.Start
		case DirRight:
			nextCursor = r.End
		default:
			nextCursor = b.moveCursor(prevCursor, m)
		}
	} else {
		nextCursor = b.moveCursor(prevCursor, m)
	}
	nextCursor = ClampOffset(nextCursor, len(b.clusters))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	before := b.snapshot()
	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
	b.record(before)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(p int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if p == 0 {
			return p
		}
		return p - 1
	case DirRight:
		if p >= len(b.clusters) {
			return p
		}
		return p + 1
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return prevWordBoundary(b.clusters, p)
	case DirRight:
		return nextWordBoundary(b.clusters, p)
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p int, dir MoveDir) int {
	switch dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.clusters)
	default:
		return p
	}
}

// Word boundary rules:
// - skip separators (whitespace, operators, parentheses), then skip operand text
// - a number such as "3.25" is one word
func prevWordBoundary(line []string, col int) int {
	i := ClampOffset(col, len(line))
	for i > 0 && grapheme.IsSeparator(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSeparator(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := ClampOffset(col, len(line))
	for i < len(line) && grapheme.IsSeparator(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSeparator(line[i]) {
		i++
	}
	return i
}
