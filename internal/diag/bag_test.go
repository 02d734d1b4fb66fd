package diag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdoc/internal/source"
)

func TestBagLimitAndCounts(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewWarning(DocMissingQuote, source.At(0, 1), "w")) {
		t.Fatal("first add rejected")
	}
	if b.HasErrors() {
		t.Fatal("warning-only bag reports errors")
	}
	b.Add(NewError(SynMissingIdentifier, source.At(0, 0), "e"))
	if b.Add(NewError(SynMissingIdentifier, source.At(0, 5), "e")) {
		t.Fatal("add past the limit must fail")
	}
	if b.Len() != 2 || !b.HasErrors() || b.Truncated != 1 {
		t.Fatalf("Len=%d HasErrors=%v Truncated=%d", b.Len(), b.HasErrors(), b.Truncated)
	}
	if b.Count(SevError) != 1 || b.Count(SevWarning) != 1 || b.Count(SevInfo) != 0 {
		t.Fatalf("counts = %d/%d/%d", b.Count(SevError), b.Count(SevWarning), b.Count(SevInfo))
	}

	unlimited := NewBag(0)
	for i := range 100 {
		if !unlimited.Add(NewError(UnknownCode, source.At(0, uint32(i)), "x")) {
			t.Fatalf("unlimited bag rejected item %d", i)
		}
	}
}

func TestBagSortMerge(t *testing.T) {
	b := NewBag(2)
	b.Add(NewError(DocMissingQuote, source.Span{Start: 9, End: 10}, "q"))
	b.Add(NewWarning(SynMissingIdentifier, source.Span{Start: 1, End: 1}, "w"))

	other := NewBag(1)
	other.Add(NewError(SynMissingIdentifier, source.Span{Start: 1, End: 1}, "e"))
	other.Add(NewError(DocMissingEquals, source.Span{Start: 2, End: 2}, "dropped"))
	b.Merge(other)
	b.Sort()

	var got []string
	for _, d := range b.Items() {
		got = append(got, d.Message)
	}
	if diff := cmp.Diff([]string{"e", "w", "q"}, got); diff != "" {
		t.Fatalf("order (-want +got):\n%s", diff)
	}
	if b.Truncated != 1 {
		t.Fatalf("Truncated = %d, want 1 carried from other", b.Truncated)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})

	d := NewError(DocUnterminatedTag, source.At(0, 3), "unterminated XML tag").
		WithNote(source.At(0, 0), "opened here").
		WithInsert("close the tag", source.At(0, 3), "/>")
	Forward(r, d)
	Forward(r, d)
	Forward(r, NewWarning(DocUnterminatedTag, source.At(0, 3), "same code and span"))
	Forward(r, NewError(DocMissingQuote, source.At(0, 3), "other code"))
	Forward(nil, d)

	if bag.Len() != 2 || r.Dropped != 2 {
		t.Fatalf("Len=%d Dropped=%d", bag.Len(), r.Dropped)
	}
	first := bag.Items()[0]
	if len(first.Notes) != 1 || len(first.Fixes) != 1 || first.Fixes[0].Edits[0].NewText != "/>" {
		t.Fatalf("notes/fixes lost: %+v", first)
	}
	if !first.Fixes[0].Edits[0].IsInsert() {
		t.Fatal("insert edit not recognized")
	}
}

func TestFixBuilders(t *testing.T) {
	d := NewError(DocStrayEndTag, source.Span{Start: 4, End: 11}, "stray").
		WithDelete("remove </para>", source.Span{Start: 4, End: 11}, "</para>")
	e := d.Fixes[0].Edits[0]
	if e.IsInsert() || e.NewText != "" || e.OldText != "</para>" {
		t.Fatalf("delete edit = %+v", e)
	}
	if got := SevWarning.Label(); got != "warning" {
		t.Fatalf("Label = %q", got)
	}
}
