package scoring

import "math"

// MasteryStatus is the binary proficiency state derived from the latest
// attempt percentage for a skill or game key.
type MasteryStatus string

const (
	Mastered    MasteryStatus = "mastered"
	NotMastered MasteryStatus = "not_mastered"
)

// MasteryThreshold is the minimum percentage that counts as mastered.
const MasteryThreshold = 80

// Remedial bands. Averages at a boundary classify into the higher band.
type RemedialStatus string

const (
	StatusUrgent      RemedialStatus = "needs_urgent_remediation"
	StatusSupport     RemedialStatus = "needs_support"
	StatusMastered    RemedialStatus = "mastered"
	StatusNotAssessed RemedialStatus = "not_yet_assessed"
)

// band pairs a lower bound (inclusive) with its verdict. Ordered from the
// highest bound down; Classify takes the first band whose bound is met.
type band struct {
	lowerBound int
	status     RemedialStatus
}

var remedialBands = []band{
	{70, StatusMastered},
	{50, StatusSupport},
	{0, StatusUrgent},
}

// Percentage derives the stored percentage from a raw score. total must be
// positive; callers validate before persisting.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// StatusFor maps a percentage to the mastery state. No hysteresis: a lower
// re-submission flips a mastered record straight back.
func StatusFor(percentage int) MasteryStatus {
	if percentage >= MasteryThreshold {
		return Mastered
	}
	return NotMastered
}

// Classify maps a per-chapter average score to its remedial band.
func Classify(average int) RemedialStatus {
	for _, b := range remedialBands {
		if average >= b.lowerBound {
			return b.status
		}
	}
	return StatusUrgent
}

// MaxDifficultyFor returns the remedial-content difficulty ceiling for a
// band, and whether remedial content should be assigned at all.
func MaxDifficultyFor(status RemedialStatus) (int, bool) {
	switch status {
	case StatusUrgent:
		return 1, true
	case StatusSupport:
		return 2, true
	default:
		return 0, false
	}
}

// Average rounds the mean of scores to the nearest integer. Empty input
// averages to 0.
func Average(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}
