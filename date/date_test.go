package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"2024-07-01", New(2024, time.July, 1)},
		{"2024-7-1", New(2024, time.July, 1)},
		{"07/01/2024", New(2024, time.July, 1)},
		{"7/1/2024", New(2024, time.July, 1)},
		{`"07/01/2024"`, New(2024, time.July, 1)},
		{" 12/31/2023 ", New(2023, time.December, 31)},
		{"07/01/2024 as of 06/28/2024", New(2024, time.July, 1)},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "--", "not a date", "13/45/2024", "07-01-2024"} {
		if got, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) = %s, want error", in, got)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2024, time.March, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-03-05"` {
		t.Errorf("Marshal = %s, want %q", data, "2024-03-05")
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2024, time.January, 31)
	b := a.Add(1)
	if b != New(2024, time.February, 1) {
		t.Errorf("Add(1) = %s, want 2024-02-01", b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Error("expected a < b")
	}
	if a.IsZero() {
		t.Error("a should not be zero")
	}
}
