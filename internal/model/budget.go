package model

// Budget is a spending-limit record. The dashboard only counts budgets,
// but the full record round-trips through the API for create/list.
type Budget struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id,omitempty"`
	Type      string  `json:"type"` // "monthly" or "category"
	Category  string  `json:"category,omitempty"`
	Amount    float64 `json:"amount"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	CreatedAt ISOTime `json:"created_at,omitempty"`
}
