// Package editor provides the Bubble Tea calculator component: a one-line
// display backed by the buffer package and a clickable button pad driving a
// calc.Editor.
//
// The component has two input modes. While the display is focused it
// behaves like a text field: keys edit the text directly and only Enter
// (evaluate) and Escape (delete last) are intercepted. While it is not
// focused, digit and operator keys go through the calculator policy
// (leading-zero guard, operator coalescing) and Backspace/Escape delete the
// last character.
//
// Mouse coordinates are interpreted relative to the component's top-left
// corner. Hosts that render it elsewhere translate mouse messages first.
package editor
