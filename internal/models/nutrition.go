package models

import "time"

const (
	NutritionMeal  = "meal"
	NutritionWater = "water"
)

type NutritionEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	EntryType    string    `json:"entry_type"` // meal | water
	Name         *string   `json:"name"`
	MealType     *string   `json:"meal_type"` // breakfast, lunch, dinner, snack
	WaterGlasses *int      `json:"water_glasses"`
	EntryDate    Date      `json:"entry_date"`
	EntryTime    time.Time `json:"entry_time"`
	CreatedAt    time.Time `json:"created_at"`
}

type DailyNutritionSummary struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	SummaryDate       Date      `json:"summary_date"`
	TotalMeals        int       `json:"total_meals"`
	TotalWaterGlasses int       `json:"total_water_glasses"`
	MoodScore         string    `json:"mood_score"` // emoji indicator
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SummaryMood maps the day's meal and water totals to the indicator shown
// on the dashboard.
func SummaryMood(meals, waterGlasses int) string {
	switch {
	case meals >= 3 && waterGlasses >= 6:
		return "😄"
	case meals < 2 || waterGlasses < 4:
		return "😐"
	default:
		return "😊"
	}
}
