package calc

import (
	"github.com/iw2rmb/abacus/buffer"
	"github.com/iw2rmb/abacus/expr"
)

// ErrorText is what the display shows after a failed evaluation.
const ErrorText = "Error"

// Operations is the surface a host binds buttons and keys to.
type Operations interface {
	InsertNumber(token string)
	InsertOperator(token string)
	Clear()
	RemoveLastNumber()
	DeleteLast()
	Evaluate()
}

// Evaluation describes one non-empty Evaluate call.
type Evaluation struct {
	// Expr is the trimmed expression that was evaluated.
	Expr string
	// Result is the new display text: the formatted value or ErrorText.
	Result string
	// Err is nil on success and wraps expr.ErrInvalidExpression otherwise.
	Err error
}

type Options struct {
	// OnEvaluate, if set, observes every non-empty Evaluate call.
	OnEvaluate func(Evaluation)
}

// Editor applies calculator operations to a buffer.
type Editor struct {
	buf *buffer.Buffer
	opt Options
}

var _ Operations = (*Editor)(nil)

// New returns an Editor over an empty buffer.
func New(opt Options) *Editor {
	return NewWithBuffer(buffer.New(""), opt)
}

// NewWithBuffer returns an Editor that edits b in place. A nil b gets a
// fresh empty buffer.
func NewWithBuffer(b *buffer.Buffer, opt Options) *Editor {
	if b == nil {
		b = buffer.New("")
	}
	return &Editor{buf: b, opt: opt}
}

func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

func (e *Editor) Text() string { return e.buf.Text() }

// IsError reports whether the display holds the error marker.
func (e *Editor) IsError() bool { return e.buf.Text() == ErrorText }

// InsertText replaces the selection (or inserts at the caret) with text.
func (e *Editor) InsertText(text string) {
	e.buf.InsertText(text)
}

// InsertNumber inserts a digit or ".". A "0" typed into a display that is
// exactly "0" is dropped; other leading zeros are left alone.
//
// TODO: the guard misses "-0" and "1+0" followed by "0"; decide whether
// leading zeros should be collapsed per operand.
func (e *Editor) InsertNumber(token string) {
	if token == "0" && e.buf.Text() == "0" {
		return
	}
	e.buf.InsertText(token)
}

// InsertOperator inserts one of "+", "-", "*", "/".
//
// At the start of the display only "-" is accepted, so a negative number
// can be entered. Elsewhere an operator directly before the caret is
// replaced rather than followed, so repeated operator presses keep only
// the last one.
func (e *Editor) InsertOperator(token string) {
	if !expr.IsOperator(token) {
		return
	}

	start, end := e.buf.Caret()
	if start == 0 {
		if token == "-" {
			e.buf.InsertText(token)
		}
		return
	}

	if prev, ok := e.buf.GraphemeAt(start - 1); ok && expr.IsOperator(prev) {
		e.buf.ReplaceRange(buffer.Range{Start: start - 1, End: end}, token)
		return
	}
	e.buf.InsertText(token)
}

// Clear empties the display.
func (e *Editor) Clear() {
	e.buf.SetText("")
}

// RemoveLastNumber is the "C" key: delete the selection, or else the
// trailing operator, or else one character of the operand before the caret.
func (e *Editor) RemoveLastNumber() {
	if _, ok := e.buf.Selection(); ok {
		e.buf.DeleteSelection()
		return
	}
	cur := e.buf.Cursor()
	if cur == 0 {
		return
	}
	if prev, _ := e.buf.GraphemeAt(cur - 1); expr.IsOperator(prev) {
		e.buf.ReplaceRange(buffer.Range{Start: cur - 1, End: cur}, "")
		return
	}
	e.buf.DeleteBackward()
}

// DeleteLast is backspace: delete the selection or one character before
// the caret.
func (e *Editor) DeleteLast() {
	e.buf.DeleteBackward()
}

// Evaluate replaces the display with the value of its expression, or with
// ErrorText when the text is not a valid expression or the value is not
// finite. A blank display is left untouched. The caret ends up at the end.
func (e *Editor) Evaluate() {
	src := expr.TrimSpace(e.buf.Text())
	if src == "" {
		return
	}

	result, err := expr.Evaluate(src)
	if err != nil {
		result = ErrorText
	}
	e.buf.SetText(result)

	if e.opt.OnEvaluate != nil {
		e.opt.OnEvaluate(Evaluation{Expr: src, Result: result, Err: err})
	}
}
