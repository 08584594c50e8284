package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-06-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "1990-06-15" {
		t.Errorf("expected 1990-06-15, got %s", d)
	}
}

func TestParseDateRejectsOtherFormats(t *testing.T) {
	for _, s := range []string{"15-06-1990", "1990/06/15", "1990-06-15T00:00:00Z", "not-a-date", ""} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(1990, time.June, 15)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"1990-06-15"` {
		t.Errorf("expected \"1990-06-15\", got %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(d) {
		t.Errorf("expected %s, got %s", d, decoded)
	}
}

func TestDateJSONNullPreservesValue(t *testing.T) {
	d := NewDate(1990, time.June, 15)
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if d.String() != "1990-06-15" {
		t.Errorf("null should preserve existing value, got %s", d)
	}
}

func TestDateComparisons(t *testing.T) {
	early := NewDate(1990, time.January, 1)
	late := NewDate(2000, time.December, 31)

	if !early.Before(late) {
		t.Error("expected early.Before(late)")
	}
	if !late.After(early) {
		t.Error("expected late.After(early)")
	}
	if early.After(early) || early.Before(early) {
		t.Error("a date must not compare before or after itself")
	}
}

func TestAddYears(t *testing.T) {
	d := NewDate(2000, time.March, 10)
	if got := d.AddYears(-18).String(); got != "1982-03-10" {
		t.Errorf("expected 1982-03-10, got %s", got)
	}
}

func TestFromTimeTruncates(t *testing.T) {
	ts := time.Date(2024, time.May, 2, 23, 59, 59, 0, time.UTC)
	if got := FromTime(ts).String(); got != "2024-05-02" {
		t.Errorf("expected 2024-05-02, got %s", got)
	}
}
