package meal

type CreateRequest struct {
	ElderID  int64   `json:"elder_id"` // required for caretakers, ignored for elders
	MealType string  `json:"meal_type" binding:"required,oneof=breakfast lunch snack dinner"`
	MealName string  `json:"meal_name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Notes    string  `json:"notes"`
}

type ListQuery struct {
	ElderID int64  `form:"elder_id"`
	Date    string `form:"date"` // YYYY-MM-DD, defaults to today
}

// DaySummary totals what the elder actually ate that day.
type DaySummary struct {
	TotalCalories int     `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFats     float64 `json:"total_fats"`
	MealsConsumed int     `json:"meals_consumed"`
}
