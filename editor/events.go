package editor

import (
	"github.com/iw2rmb/abacus/buffer"
	"github.com/iw2rmb/abacus/calc"
)

// ChangeEvent is the display state after an effective change.
type ChangeEvent struct {
	Version   uint64
	Text      string
	Cursor    int
	Selection buffer.Selection

	// Error is set while the display shows calc.ErrorText.
	Error bool
	// Change is the buffer's record of the last mutation.
	Change buffer.Change
}

func newChangeEvent(b *buffer.Buffer) ChangeEvent {
	text := b.Text()
	ev := ChangeEvent{
		Version: b.Version(),
		Text:    text,
		Cursor:  b.Cursor(),
		Error:   text == calc.ErrorText,
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.Selection{Active: true, Range: r}
	}
	ev.Change, _ = b.LastChange()
	return ev
}
