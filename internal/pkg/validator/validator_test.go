package validator

import (
	"errors"
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{" \t ", true},
		{"Paid", false},
		{" x ", false},
	}
	for _, c := range cases {
		if got := IsEmpty(c.input); got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"hr@company.com", "jane.doe+leave@corp.co"}
	invalid := []string{"hr@", "@company.com", "hr@company", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-42D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"0188d0f2-7b8c-0b4a-8a2b-6b8b8b8b8b8b",
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDateIn(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)

	d, ok := IsValidDateIn("2024-03-15", loc)
	if !ok {
		t.Fatal("IsValidDateIn rejected a valid date")
	}
	if d.Location() != loc || d.Hour() != 0 || d.Day() != 15 {
		t.Errorf("IsValidDateIn = %v, want local midnight on the 15th", d)
	}

	for _, s := range []string{"2024-02-30", "15-03-2024", "2024-03-15T00:00:00Z", ""} {
		if _, ok := IsValidDateIn(s, loc); ok {
			t.Errorf("IsValidDateIn(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	for _, s := range []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"} {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"2024-01-15", "10:30", "yesterday"} {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Fatal("empty ValidationErrors should yield a nil error")
	}

	errs.Add("leave_type", "leave_type is required")
	errs.Add("start_date", "start_date must be in YYYY-MM-DD format")

	err := errs.Err()
	var ve ValidationErrors
	if !errors.As(err, &ve) || len(ve) != 2 {
		t.Fatalf("Err() = %v, want two ValidationErrors", err)
	}
	if got := ve.ToMap()["leave_type"]; got != "leave_type is required" {
		t.Errorf("ToMap()[leave_type] = %q", got)
	}
	want := "leave_type: leave_type is required; start_date: start_date must be in YYYY-MM-DD format"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
