// Package model defines the domain types returned by the expense manager API.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Category is one of the fixed expense categories the backend recognizes.
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryTravel   Category = "Travel"
	CategoryStudy    Category = "Study Material"
	CategoryPersonal Category = "Personal"
	CategoryOther    Category = "Other"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTravel,
	CategoryStudy,
	CategoryPersonal,
	CategoryOther,
}

// ParseCategory maps a raw label to a known category.
// Unrecognized labels fall back to Other.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOther
}

// ISOTime unmarshals the ISO-ish timestamps the backend emits.
// FastAPI serializes datetimes both with and without a timezone offset,
// and plain dates appear in user-entered records.
type ISOTime struct {
	time.Time
}

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *ISOTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range isoLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("model: unparseable timestamp %q", s)
}

func (t ISOTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339) + `"`), nil
}

// Expense is a single recorded spending transaction.
type Expense struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id,omitempty"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Date      ISOTime `json:"date"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt ISOTime `json:"created_at,omitempty"`
}

// ParsedCategory returns the expense's category normalized to the known set.
func (e Expense) ParsedCategory() Category {
	return ParseCategory(e.Category)
}
