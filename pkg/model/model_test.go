package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"firstName":    "first name",
		"last_name":    "last name",
		"birth-year":   "birth year",
		"addressLine2": "address line 2",
		"":             "",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCompilePattern_AnchorsWholeValue(t *testing.T) {
	re, err := CompilePattern("[0-9]{4}")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !re.MatchString("1999") {
		t.Fatalf("expected 1999 to match")
	}
	if re.MatchString("19999") {
		t.Fatalf("expected pattern to be anchored")
	}

	empty, err := CompilePattern("  ")
	if err != nil || empty != nil {
		t.Fatalf("expected nil pattern for blank input, got %v / %v", empty, err)
	}

	if _, err := CompilePattern("[a-"); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
}

func TestFieldSpecRecord(t *testing.T) {
	spec := FieldSpec{Label: "year", Required: true, Pattern: "[0-9]{4}", MaxLength: 4}
	record, err := spec.Record(" 1990 ")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if record.Label != "year" || !record.Required || record.MaxLength != 4 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Pattern == nil || !record.Pattern.MatchString("1990") {
		t.Fatalf("expected compiled pattern on record")
	}
	if record.Trimmed() != "1990" {
		t.Fatalf("trimmed = %q", record.Trimmed())
	}
}

func TestSavedAnswers(t *testing.T) {
	var answers SavedAnswers
	answers.Set("first name", "Ada")
	answers.Set("last name", "Lovelace")
	answers.Set("first name", "Augusta")

	if answers.Len() != 2 {
		t.Fatalf("len = %d", answers.Len())
	}
	if value, ok := answers.Get("first name"); !ok || value != "Augusta" {
		t.Fatalf("get = %q, %v", value, ok)
	}
	if diff := cmp.Diff([]string{"first name", "last name"}, answers.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	snapshot := answers.Snapshot()
	snapshot["first name"] = "mutated"
	if value, _ := answers.Get("first name"); value != "Augusta" {
		t.Fatalf("snapshot must be a copy")
	}

	seeded := NewSavedAnswers(map[string]string{"b": "2", "a": "1"})
	if diff := cmp.Diff([]string{"a", "b"}, seeded.Labels()); diff != "" {
		t.Fatalf("seeded labels mismatch (-want +got):\n%s", diff)
	}
}
