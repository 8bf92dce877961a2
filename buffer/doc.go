// Package buffer implements the pure, grapheme-accurate text model behind the
// calculator display.
//
// The buffer holds a single line. Offsets are 0-based grapheme indices and
// ranges are half-open: [Start, End).
package buffer
