package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidSettingName(t *testing.T) {
	valid := []string{"WEEKLY_HOURS", "WEEKLY_HOURS_SUNDAY", "MAX_GROUPS_V2"}
	invalid := []string{"weekly_hours", "W", "", "WEEKLY HOURS", "_WEEKLY"}
	for _, name := range valid {
		if !IsValidSettingName(name) {
			t.Errorf("IsValidSettingName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidSettingName(name) {
			t.Errorf("IsValidSettingName(%q) = true, want false", name)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate(2025-02-30) = true, want false")
	}
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "groups", Message: "at least one group is required"},
		{Field: "amount", Message: "must be non-negative"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["groups"] != "at least one group is required" {
		t.Errorf("ToMap()[groups] = %q", m["groups"])
	}
}
