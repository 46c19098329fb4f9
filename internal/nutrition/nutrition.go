// Package nutrition derives body-composition metrics and daily intake
// targets from a profile. Everything here is a pure function of the profile:
// the same input always yields the same report.
package nutrition

import (
	"math"

	"gymzen/gymlog-app/internal/domain"
)

// BMI categories.
const (
	BMIUnderweight = "Underweight"
	BMIHealthy     = "Healthy"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary: 1.2,
	domain.ActivityLight:     1.375,
	domain.ActivityModerate:  1.55,
	domain.ActivityActive:    1.725,
}

// Micros holds fixed micronutrient reference values keyed off the profile's
// sex category.
type Micros struct {
	SodiumMg    int    `json:"sodiumMg"`
	ZincMg      int    `json:"zincMg"`
	MagnesiumMg int    `json:"magnesiumMg"`
	VitaminD    string `json:"vitaminD"`
	Creatine    string `json:"creatine"`
}

// Report is the full set of derived metrics for one profile.
type Report struct {
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmiCategory"`
	BMR         float64 `json:"bmr"`
	Calories    int     `json:"calories"` // TDEE
	ProteinG    int     `json:"proteinG"`
	FatsG       int     `json:"fatsG"`
	CarbsG      int     `json:"carbsG"`
	WaterL      float64 `json:"waterL"`
	Micros      Micros  `json:"micros"`
}

// BMI computes bodyweight(kg) / height(m)^2.
func BMI(bodyweightKg, heightCm float64) float64 {
	if heightCm == 0 {
		return 0
	}
	heightM := heightCm / 100
	return bodyweightKg / (heightM * heightM)
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMIHealthy
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. Only the additive
// constant differs by sex.
func BMR(p *domain.Profile) float64 {
	bmr := 10*p.Bodyweight + 6.25*p.Height - 5*float64(p.Age)
	if p.Sex == domain.SexFemale {
		return bmr - 161
	}
	return bmr + 5
}

// TDEE scales BMR by the activity multiplier, rounded to the nearest
// integer. Unknown activity levels fall back to moderate.
func TDEE(p *domain.Profile) int {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = activityMultipliers[domain.ActivityModerate]
	}
	return int(math.Round(BMR(p) * mult))
}

// Calculate derives the full report: protein at 2.2 g/kg, fats at 25% of
// calories, carbs from the calories left over, water at 40 ml/kg.
func Calculate(p *domain.Profile) Report {
	bmi := BMI(p.Bodyweight, p.Height)
	tdee := TDEE(p)

	protein := math.Round(p.Bodyweight * 2.2)
	fats := math.Round(float64(tdee) * 0.25 / 9)
	carbs := math.Round((float64(tdee) - p.Bodyweight*2.2*4 - float64(tdee)*0.25) / 4)
	water := math.Round(p.Bodyweight*0.04*10) / 10

	micros := Micros{
		SodiumMg:    2300,
		ZincMg:      8,
		MagnesiumMg: 320,
		VitaminD:    "2000-5000 IU",
		Creatine:    "5g",
	}
	if p.Sex == domain.SexMale {
		micros.ZincMg = 11
		micros.MagnesiumMg = 420
	}

	return Report{
		BMI:         bmi,
		BMICategory: BMICategory(bmi),
		BMR:         BMR(p),
		Calories:    tdee,
		ProteinG:    int(protein),
		FatsG:       int(fats),
		CarbsG:      int(carbs),
		WaterL:      water,
		Micros:      micros,
	}
}
