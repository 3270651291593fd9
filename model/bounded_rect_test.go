package model

import "testing"

func newTestRect(w, h int) BoundedRect {
	r := NewBoundedRect(1)
	r.SetBounds(0, 0, w-1, h-1)
	return r
}

func TestBoundedRectStartsEmpty(t *testing.T) {
	r := newTestRect(10, 10)
	if !r.IsEmpty() {
		t.Fatal("new rect should be empty")
	}
	if r.Area() != 0 {
		t.Fatalf("empty rect area = %d, want 0", r.Area())
	}
	if r.Contains(0, 0) || r.Contains(9, 9) {
		t.Fatal("empty rect must not contain any point")
	}
}

func TestBoundedRectEncompassAddsBuffer(t *testing.T) {
	r := newTestRect(10, 10)
	r.Encompass(4, 5)

	if r.XMin != 3 || r.YMin != 4 || r.XMax != 5 || r.YMax != 6 {
		t.Fatalf("rect = (%d,%d)-(%d,%d), want (3,4)-(5,6)", r.XMin, r.YMin, r.XMax, r.YMax)
	}
	if r.Area() != 9 {
		t.Fatalf("area = %d, want 9", r.Area())
	}

	r.Encompass(7, 5)
	if r.XMin != 3 || r.XMax != 8 {
		t.Fatalf("x extent = %d..%d, want 3..8", r.XMin, r.XMax)
	}
}

func TestBoundedRectEncompassClampsToBounds(t *testing.T) {
	r := newTestRect(4, 3)
	r.Encompass(0, 0)
	if r.XMin != 0 || r.YMin != 0 || r.XMax != 1 || r.YMax != 1 {
		t.Fatalf("corner rect = (%d,%d)-(%d,%d), want (0,0)-(1,1)", r.XMin, r.YMin, r.XMax, r.YMax)
	}

	r.Encompass(3, 2)
	if r.XMin != 0 || r.YMin != 0 || r.XMax != 3 || r.YMax != 2 {
		t.Fatalf("rect = (%d,%d)-(%d,%d), want (0,0)-(3,2)", r.XMin, r.YMin, r.XMax, r.YMax)
	}
}

func TestBoundedRectEncompassIdempotent(t *testing.T) {
	r := newTestRect(20, 20)
	r.Encompass(10, 10)
	r.Encompass(2, 3)
	before := r
	for range 5 {
		r.Encompass(10, 10)
		r.Encompass(2, 3)
	}
	if r != before {
		t.Fatalf("repeated Encompass changed rect: %+v -> %+v", before, r)
	}
}

func TestBoundedRectResetCollapses(t *testing.T) {
	r := newTestRect(8, 6)
	r.Fill()
	r.Reset()

	if !r.IsEmpty() {
		t.Fatal("rect should be empty after Reset")
	}
	if r.XMin != 7 || r.YMin != 5 || r.XMax != 0 || r.YMax != 0 {
		t.Fatalf("reset rect = (%d,%d)-(%d,%d), want (7,5)-(0,0)", r.XMin, r.YMin, r.XMax, r.YMax)
	}
}

func TestBoundedRectResetOnSingleCellBounds(t *testing.T) {
	r := newTestRect(1, 1)
	r.Reset()

	// min and max coincide at (0,0) but the rect is still empty
	if r.Contains(0, 0) {
		t.Fatal("reset 1x1 rect must not contain (0,0)")
	}
	if r.Area() != 0 {
		t.Fatalf("area = %d, want 0", r.Area())
	}
}

func TestBoundedRectContainsInclusive(t *testing.T) {
	r := newTestRect(10, 10)
	r.Encompass(5, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{4, 4, true},
		{6, 6, true},
		{5, 5, true},
		{3, 5, false},
		{5, 7, false},
		{7, 7, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBoundedRectSetBoundsReclamps(t *testing.T) {
	r := newTestRect(10, 10)
	r.Fill()
	r.SetBounds(0, 0, 4, 4)
	if r.XMax != 4 || r.YMax != 4 {
		t.Fatalf("max = (%d,%d), want (4,4)", r.XMax, r.YMax)
	}
}
