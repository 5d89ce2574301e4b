package analytics

// Resource category shortlists keyed by recent average mood. Boundaries
// are inclusive on the upper end: exactly 4.0 selects the low tier and
// exactly 6.0 the middle tier.
var (
	lowMoodCategories  = []string{"Depression", "Coping", "Self-Care"}
	midMoodCategories  = []string{"Wellness", "Meditation", "Exercise"}
	highMoodCategories = []string{"Growth", "Mindfulness", "Happiness"}
)

func RecommendCategories(avgMood float64) []string {
	switch {
	case avgMood <= 4:
		return lowMoodCategories
	case avgMood <= 6:
		return midMoodCategories
	default:
		return highMoodCategories
	}
}
