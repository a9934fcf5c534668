package model

// SavingsGoal tracks progress toward a target amount.
type SavingsGoal struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id,omitempty"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    ISOTime `json:"target_date"`
	CreatedAt     ISOTime `json:"created_at,omitempty"`
}

// Progress returns current/target as a percentage, unclamped.
// A goal funded past its target reads over 100. Zero or negative
// targets report 0 rather than dividing by zero.
func (g SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// ProgressClamped returns Progress limited to [0, 100] for visual bars.
// The textual label stays unclamped so overfunded goals are visible.
func (g SavingsGoal) ProgressClamped() float64 {
	p := g.Progress()
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
