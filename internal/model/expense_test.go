package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Food", CategoryFood},
		{"Travel", CategoryTravel},
		{"Study Material", CategoryStudy},
		{"Personal", CategoryPersonal},
		{"Other", CategoryOther},
		{"food", CategoryFood},
		{"Groceries", CategoryOther},
		{"", CategoryOther},
		{"Entertainment", CategoryOther},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestISOTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339 with offset", `"2025-03-15T10:30:00+00:00"`, time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"naive datetime", `"2025-03-15T10:30:00"`, time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"date only", `"2025-03-15"`, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ISOTime
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got.Time, tt.want)
			}
		})
	}

	var null ISOTime
	if err := json.Unmarshal([]byte(`null`), &null); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !null.IsZero() {
		t.Errorf("null should unmarshal to zero time, got %v", null.Time)
	}

	var bad ISOTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &bad); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func TestExpenseUnmarshal(t *testing.T) {
	raw := `{"id":"abc","amount":12.5,"category":"Snacks","date":"2025-03-15T00:00:00+00:00","notes":"vending machine"}`

	var e Expense
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("unmarshal expense: %v", err)
	}
	if e.Amount != 12.5 {
		t.Errorf("Amount = %.2f, want 12.50", e.Amount)
	}
	if e.ParsedCategory() != CategoryOther {
		t.Errorf("unknown category %q should parse as Other, got %q", e.Category, e.ParsedCategory())
	}
}
