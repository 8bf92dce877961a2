// Package calc implements the calculator's expression editor: the editing
// policy for digits and operators, the two deletion flavors, clearing, and
// evaluation of the display text.
//
// Editing operations are total. Evaluate is the only place an error can
// arise and it never escapes: a failed evaluation leaves the literal text
// "Error" in the buffer. That text is ordinary content afterwards, so
// editing after an error splices into it rather than starting over.
package calc
