package mealdb

import (
	"strconv"
	"strings"
)

// maxIngredients is the number of strIngredientN/strMeasureN slots a meal
// carries.
const maxIngredients = 20

// apiLookupResponse is the body of lookup.php. Meals is null when the id is
// unknown.
type apiLookupResponse struct {
	Meals []apiMeal `json:"meals"`
}

// apiMeal is one meal object. Values are strings or null, and the
// ingredient slots are numbered keys, so the object is kept as a map.
type apiMeal map[string]any

func (m apiMeal) field(key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// ingredient returns slot n (1-based).
func (m apiMeal) ingredient(n int) (name, measure string) {
	suffix := strconv.Itoa(n)
	return m.field("strIngredient" + suffix), m.field("strMeasure" + suffix)
}
