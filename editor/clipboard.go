package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; the component ignores them. Hosts that want
// to see failures wrap their implementation.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
