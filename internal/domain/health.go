package domain

import "math"

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal weight"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

const (
	adviceUnderweight = "Increase calorie intake with nutrient-dense foods such as nuts, dried fruits, whole grains, " +
		"lean proteins, and healthy fats. Consider adding smoothies and energy-dense snacks."
	adviceNormal = "Maintain a balanced diet rich in fruits, vegetables, whole grains, lean proteins, and healthy fats. " +
		"Keep up with regular physical activity."
	adviceOverweight = "Adopt a diet low in saturated fats and sugars. Emphasize fruits, vegetables, whole grains, and lean proteins. " +
		"Monitor portion sizes and increase fiber intake."
	adviceObese = "Consult a healthcare provider for personalized advice. Focus on a calorie-restricted diet that is rich in nutrients, " +
		"and incorporate regular physical activity."
)

// millilitres of water per kilogram of body weight
const waterPerKg = 35

type DietRecommendation struct {
	UserID       string   `json:"user_id"`
	BMI          float64  `json:"bmi"`
	Category     Category `json:"category"`
	Advice       string   `json:"advice"`
	WaterIntakeL float64  `json:"water_intake"`
}

// ComputeBMI returns weight (kg) divided by the square of height (m), rounded
// to two decimals. A non-positive height, or a result that is not a finite
// number, yields 0 and ErrUndefinedBMI.
func ComputeBMI(weight, height float64) (float64, error) {
	if !(height > 0) {
		return 0, ErrUndefinedBMI
	}
	bmi := round2(weight / (height * height))
	if math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return 0, ErrUndefinedBMI
	}
	return bmi, nil
}

// ClassifyBMI maps a BMI onto its diet category and advice.
// Overweight starts at 24.9, leaving no gap after Normal weight.
func ClassifyBMI(bmi float64) (Category, string) {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight, adviceUnderweight
	case bmi < 24.9:
		return CategoryNormal, adviceNormal
	case bmi < 29.9:
		return CategoryOverweight, adviceOverweight
	default:
		return CategoryObese, adviceObese
	}
}

// ComputeWaterIntake returns the recommended daily water intake in litres.
func ComputeWaterIntake(weight float64) float64 {
	return round2(weight * waterPerKg / 1000)
}

func NewDietRecommendation(u *User) *DietRecommendation {
	category, advice := ClassifyBMI(u.BMI)
	return &DietRecommendation{
		UserID:       u.UserID,
		BMI:          u.BMI,
		Category:     category,
		Advice:       advice,
		WaterIntakeL: ComputeWaterIntake(u.Weight),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
