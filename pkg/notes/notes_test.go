package notes

import (
	"reflect"
	"testing"
)

func TestNormalizedDeduplicatesCaseInsensitively(t *testing.T) {
	set := NoteSet{
		Top: []string{"Rose", " rose ", "ROSE", "", "Oud"},
	}

	got := set.Normalized()
	want := []string{"rose", "oud"}
	if !reflect.DeepEqual(got.Top, want) {
		t.Fatalf("Normalized().Top = %v, want %v", got.Top, want)
	}
}

func TestNormalizedCapsBuckets(t *testing.T) {
	set := NoteSet{
		Base: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
	}

	got := set.Normalized()
	if len(got.Base) != MaxPerBucket {
		t.Fatalf("expected base bucket capped at %d, got %d", MaxPerBucket, len(got.Base))
	}
	if got.Base[0] != "a" || got.Base[MaxPerBucket-1] != "h" {
		t.Fatalf("cap should preserve extraction order, got %v", got.Base)
	}
}

func TestNormalizedPreservesOrder(t *testing.T) {
	set := NoteSet{Middle: []string{"Jasmine", "neroli", "jasmine", "Iris"}}

	got := set.Normalized()
	want := []string{"jasmine", "neroli", "iris"}
	if !reflect.DeepEqual(got.Middle, want) {
		t.Fatalf("Normalized().Middle = %v, want %v", got.Middle, want)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(NoteSet{}).IsEmpty() {
		t.Fatal("zero NoteSet should be empty")
	}
	if (NoteSet{Top: []string{"musk"}}).IsEmpty() {
		t.Fatal("NoteSet with a note should not be empty")
	}
}
