package source

import "testing"

func TestSpan_CoverAndContains(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	b := Span{File: 1, Start: 2, End: 5}
	c := a.Cover(b)
	if c != (Span{File: 1, Start: 2, End: 6}) {
		t.Fatalf("Cover = %v", c)
	}
	if !c.Contains(a) || !c.Contains(b) {
		t.Fatalf("cover must contain both operands")
	}
	if a.Cover(Span{File: 2, Start: 0, End: 100}) != a {
		t.Fatalf("Cover across files must keep receiver")
	}
	if z := At(3, 7); !z.Empty() || z.Len() != 0 || z.String() != "3:7-7" {
		t.Fatalf("At = %v", z)
	}
}
