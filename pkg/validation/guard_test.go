package validation

import "testing"

func TestInputGuard_RevertsToLastValidValue(t *testing.T) {
	guard := NewInputGuard()

	steps := []struct {
		typed  string
		want   string
		reason Reason
	}{
		{typed: "1", want: "1"},
		{typed: "19", want: "19"},
		{typed: "19a", want: "19", reason: ReasonPattern},
		{typed: "199", want: "199"},
		{typed: "1999", want: "1999"},
		{typed: "19990", want: "1999", reason: ReasonPattern},
		{typed: "", want: ""},
	}

	for _, step := range steps {
		got, err := guard.Input(yearRecord(step.typed))
		if got != step.want {
			t.Fatalf("typed %q: value = %q, want %q", step.typed, got, step.want)
		}
		switch {
		case step.reason == "" && err != nil:
			t.Fatalf("typed %q: unexpected error %v", step.typed, err)
		case step.reason != "" && (err == nil || err.Reason != step.reason):
			t.Fatalf("typed %q: expected %s error, got %v", step.typed, step.reason, err)
		}
	}
}

func TestInputGuard_MaxLengthMessage(t *testing.T) {
	guard := NewInputGuard()
	record := yearRecord("12345")
	record.Pattern = nil

	got, err := guard.Input(record)
	if got != "" {
		t.Fatalf("expected revert to empty, got %q", got)
	}
	if err == nil || err.Message != "Enter a year less than 4" {
		t.Fatalf("unexpected error %+v", err)
	}
}

func TestInputGuard_Seed(t *testing.T) {
	guard := NewInputGuard()
	guard.Seed("year", "1815")

	got, err := guard.Input(yearRecord("18x5"))
	if err == nil || got != "1815" {
		t.Fatalf("expected revert to seeded value, got %q (%v)", got, err)
	}
	if guard.Last("year") != "1815" {
		t.Fatalf("last = %q", guard.Last("year"))
	}
}
