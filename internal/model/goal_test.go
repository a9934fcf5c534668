package model

import "testing"

func TestProgressUnclamped(t *testing.T) {
	g := SavingsGoal{CurrentAmount: 50, TargetAmount: 200}
	if got := g.Progress(); got != 25.0 {
		t.Fatalf("Progress() = %.1f, want 25.0", got)
	}

	over := SavingsGoal{CurrentAmount: 250, TargetAmount: 200}
	if got := over.Progress(); got != 125.0 {
		t.Fatalf("overfunded Progress() = %.1f, want 125.0", got)
	}
}

func TestProgressClamped(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"quarter", 50, 200, 25},
		{"overfunded clamps", 250, 200, 100},
		{"exactly full", 200, 200, 100},
		{"zero target", 50, 0, 0},
		{"negative current", -10, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := SavingsGoal{CurrentAmount: tt.current, TargetAmount: tt.target}
			if got := g.ProgressClamped(); got != tt.want {
				t.Errorf("ProgressClamped() = %.1f, want %.1f", got, tt.want)
			}
		})
	}
}
