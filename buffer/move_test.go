package buffer

import "testing"

func TestBuffer_MoveGrapheme_Bounds(t *testing.T) {
	b := New("1\u00e9")

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 2 {
		t.Fatalf("cursor=%d, want 2", got)
	}
	v := b.Version()
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d for no-op at end", got, v)
	}
}

func TestBuffer_MoveLine_HomeEnd(t *testing.T) {
	b := New("12+34")
	b.SetCursor(3)

	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
}

func TestBuffer_MoveWord_OperandBoundaries(t *testing.T) {
	b := New("12.5 * (30-4)")
	b.SetCursor(b.Len())

	var stops []int
	for i := 0; i < 6; i++ {
		b.Move(Move{Unit: MoveWord, Dir: DirLeft})
		stops = append(stops, b.Cursor())
	}
	want := []int{11, 8, 0, 0, 0, 0}
	for i := range want {
		if stops[i] != want[i] {
			t.Fatalf("left stops=%v, want %v", stops, want)
		}
	}

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 10 {
		t.Fatalf("cursor=%d, want 10", got)
	}
}

func TestBuffer_MoveExtend_KeepsAnchor(t *testing.T) {
	b := New("1234")
	b.SetCursor(2)

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	r, ok := b.Selection()
	if !ok || r != (Range{Start: 2, End: 4}) {
		t.Fatalf("selection=%v ok=%v, want {2 4}", r, ok)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome, Extend: true})
	r, ok = b.Selection()
	if !ok || r != (Range{Start: 0, End: 2}) {
		t.Fatalf("selection=%v ok=%v, want {0 2}", r, ok)
	}
	raw, _ := b.SelectionRaw()
	if raw.Start != 2 {
		t.Fatalf("anchor=%d, want 2", raw.Start)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection collapsed back onto anchor")
	}
}

func TestBuffer_Move_CollapsesSelectionToEdge(t *testing.T) {
	b := New("12345")
	b.SetSelection(Range{Start: 1, End: 4})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}

	b.SetSelection(Range{Start: 4, End: 1})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}
