package editor

import "github.com/iw2rmb/abacus/calc"

// Action is what pressing a button or a pad key does.
type Action uint8

const (
	ActionNone Action = iota
	ActionNumber
	ActionOperator
	ActionText
	ActionClear
	ActionRemoveLastNumber
	ActionDeleteLast
	ActionEvaluate
)

// Button is one key of the pad. Token is the text passed to the number,
// operator, or text action.
type Button struct {
	Label  string
	Action Action
	Token  string
}

func numberButton(t string) Button   { return Button{Label: t, Action: ActionNumber, Token: t} }
func operatorButton(t string) Button { return Button{Label: t, Action: ActionOperator, Token: t} }
func textButton(t string) Button     { return Button{Label: t, Action: ActionText, Token: t} }

// DefaultButtons is the standard pad layout.
func DefaultButtons() [][]Button {
	return [][]Button{
		{
			{Label: "AC", Action: ActionClear},
			{Label: "C", Action: ActionRemoveLastNumber},
			{Label: "⌫", Action: ActionDeleteLast},
			textButton("("),
			textButton(")"),
		},
		{numberButton("7"), numberButton("8"), numberButton("9"), operatorButton("/")},
		{numberButton("4"), numberButton("5"), numberButton("6"), operatorButton("*")},
		{numberButton("1"), numberButton("2"), numberButton("3"), operatorButton("-")},
		{numberButton("0"), numberButton("."), {Label: "=", Action: ActionEvaluate}, operatorButton("+")},
	}
}

// perform runs a on ops. Text actions need the concrete editor since they
// are not part of the Operations surface.
func perform(ops calc.Operations, a Action, token string) {
	switch a {
	case ActionNumber:
		ops.InsertNumber(token)
	case ActionOperator:
		ops.InsertOperator(token)
	case ActionText:
		if t, ok := ops.(interface{ InsertText(string) }); ok {
			t.InsertText(token)
		}
	case ActionClear:
		ops.Clear()
	case ActionRemoveLastNumber:
		ops.RemoveLastNumber()
	case ActionDeleteLast:
		ops.DeleteLast()
	case ActionEvaluate:
		ops.Evaluate()
	}
}
