package scoring_test

import (
	"testing"

	"eduquest_backend/internal/scoring"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  int
	}{
		{"perfect", 10, 10, 100},
		{"zero", 0, 10, 0},
		{"half", 5, 10, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"rounds half up", 1, 8, 13},
		{"invalid total", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoring.Percentage(tt.score, tt.total); got != tt.want {
				t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		percentage int
		want       scoring.MasteryStatus
	}{
		{100, scoring.Mastered},
		{80, scoring.Mastered},
		{79, scoring.NotMastered},
		{40, scoring.NotMastered},
		{0, scoring.NotMastered},
	}

	for _, tt := range tests {
		if got := scoring.StatusFor(tt.percentage); got != tt.want {
			t.Errorf("StatusFor(%d) = %s, want %s", tt.percentage, got, tt.want)
		}
	}
}

func TestClassify_BoundariesGoToHigherBand(t *testing.T) {
	tests := []struct {
		average int
		want    scoring.RemedialStatus
	}{
		{0, scoring.StatusUrgent},
		{49, scoring.StatusUrgent},
		{50, scoring.StatusSupport},
		{69, scoring.StatusSupport},
		{70, scoring.StatusMastered},
		{100, scoring.StatusMastered},
	}

	for _, tt := range tests {
		if got := scoring.Classify(tt.average); got != tt.want {
			t.Errorf("Classify(%d) = %s, want %s", tt.average, got, tt.want)
		}
	}
}

func TestMaxDifficultyFor(t *testing.T) {
	if max, ok := scoring.MaxDifficultyFor(scoring.StatusUrgent); !ok || max != 1 {
		t.Errorf("urgent band: got (%d, %v), want (1, true)", max, ok)
	}
	if max, ok := scoring.MaxDifficultyFor(scoring.StatusSupport); !ok || max != 2 {
		t.Errorf("support band: got (%d, %v), want (2, true)", max, ok)
	}
	if _, ok := scoring.MaxDifficultyFor(scoring.StatusMastered); ok {
		t.Error("mastered band should not assign remedial content")
	}
	if _, ok := scoring.MaxDifficultyFor(scoring.StatusNotAssessed); ok {
		t.Error("not-assessed band should not assign remedial content")
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"empty", nil, 0},
		{"single", []int{80}, 80},
		{"boundary average", []int{40, 60}, 50},
		{"rounds", []int{70, 71}, 71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoring.Average(tt.scores); got != tt.want {
				t.Errorf("Average(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}
