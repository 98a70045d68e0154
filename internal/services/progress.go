package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/sevenfit/coaching/internal/models"
)

// ProgressPoint is one chart-ready record per submitted check-in. Parsing is
// best effort: an unrecognized label zeroes that metric instead of failing the
// whole series, so one malformed row never blocks the chart.
type ProgressPoint struct {
	SequenceNumber  int      `json:"sequence_number"`
	Label           string   `json:"label"`
	DateLabel       string   `json:"date_label"`
	HydrationLiters int      `json:"hydration_liters"`
	SleepHours      int      `json:"sleep_hours"`
	ExerciseCount   int      `json:"exercise_count"`
	TrainingAverage int      `json:"training_average"`
	Weight          *float64 `json:"weight,omitempty"`
}

// ParseHydrationLabel extracts liters from answers like "2L" or "3L".
func ParseHydrationLabel(label string) int {
	return parseLeadingNumber(label, "L")
}

// ParseSleepLabel extracts hours from answers like "6h" or "8h".
func ParseSleepLabel(label string) int {
	return parseLeadingNumber(label, "h")
}

func parseLeadingNumber(label string, unitSuffix string) int {
	cleaned := strings.TrimSpace(label)
	cleaned = strings.TrimSuffix(cleaned, strings.ToUpper(unitSuffix))
	cleaned = strings.TrimSuffix(cleaned, strings.ToLower(unitSuffix))
	value, err := strconv.Atoi(strings.TrimSpace(cleaned))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// TrainingLevelPercent maps a per-day training answer onto its percentage.
// The bare numeric variants show up in older rows. The second return value
// reports whether the label belongs to the known set.
func TrainingLevelPercent(label string) (int, bool) {
	switch strings.TrimSpace(label) {
	case models.TrainingLevelFull, "100":
		return 100, true
	case models.TrainingLevelHigh, "75":
		return 75, true
	case models.TrainingLevelHalf, "50":
		return 50, true
	case models.TrainingLevelNone, "não treinei":
		return 0, true
	default:
		return 0, false
	}
}

// TrainingCompletionAverage averages the labeled days of a week. Days with no
// answer stay out of the denominator; unknown labels count as zero so a typo
// degrades the average instead of erroring.
func TrainingCompletionAverage(trainingDays map[string]string) int {
	if len(trainingDays) == 0 {
		return 0
	}
	sum := 0
	counted := 0
	for _, label := range trainingDays {
		if strings.TrimSpace(label) == "" {
			continue
		}
		percent, _ := TrainingLevelPercent(label)
		sum += percent
		counted++
	}
	if counted == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(counted)))
}

// BuildProgressSeries converts submitted check-ins into chart points, in slot
// order. It performs no I/O and never fails.
func BuildProgressSeries(submissions []models.CheckinSubmission) []ProgressPoint {
	points := make([]ProgressPoint, 0, len(submissions))
	for _, submission := range submissions {
		points = append(points, ProgressPoint{
			SequenceNumber:  submission.SequenceNumber,
			Label:           "Form #" + strconv.Itoa(submission.SequenceNumber),
			DateLabel:       submission.SubmittedAt.Format("02/01"),
			HydrationLiters: ParseHydrationLabel(submission.Hydration),
			SleepHours:      ParseSleepLabel(submission.SleepHours),
			ExerciseCount:   len(submission.CompletedExercises),
			TrainingAverage: TrainingCompletionAverage(submission.TrainingDays),
			Weight:          submission.Weight,
		})
	}
	return points
}
