package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gymzen/gymlog-app/internal/domain"
)

func testProfile() *domain.Profile {
	return &domain.Profile{
		Bodyweight:    75,
		Height:        175,
		Age:           25,
		Sex:           domain.SexMale,
		ActivityLevel: domain.ActivityModerate,
	}
}

func TestBMICategories(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, BMIUnderweight},
		{18.5, BMIHealthy},
		{24.9, BMIHealthy},
		{25.0, BMIOverweight},
		{29.9, BMIOverweight},
		{30.0, BMIObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestBMR(t *testing.T) {
	p := testProfile()
	// 10*75 + 6.25*175 - 5*25 + 5 = 1723.75
	assert.InDelta(t, 1723.75, BMR(p), 1e-9)

	p.Sex = domain.SexFemale
	// male constant +5 replaced by -161
	assert.InDelta(t, 1557.75, BMR(p), 1e-9)
}

func TestTDEE(t *testing.T) {
	p := testProfile()
	want := int(math.Round(1723.75 * 1.55))
	assert.Equal(t, want, TDEE(p))

	p.ActivityLevel = domain.ActivitySedentary
	assert.Equal(t, int(math.Round(1723.75*1.2)), TDEE(p))

	// Unknown level falls back to moderate.
	p.ActivityLevel = "extreme"
	assert.Equal(t, want, TDEE(p))
}

func TestCalculate(t *testing.T) {
	p := testProfile()
	rep := Calculate(p)

	assert.InDelta(t, 24.49, rep.BMI, 0.01)
	assert.Equal(t, BMIHealthy, rep.BMICategory)
	assert.Equal(t, 165, rep.ProteinG) // 75 * 2.2
	assert.InDelta(t, 3.0, rep.WaterL, 1e-9)

	tdee := float64(rep.Calories)
	assert.Equal(t, int(math.Round(tdee*0.25/9)), rep.FatsG)
	assert.Equal(t, int(math.Round((tdee-75*2.2*4-tdee*0.25)/4)), rep.CarbsG)

	assert.Equal(t, 11, rep.Micros.ZincMg)
	assert.Equal(t, 420, rep.Micros.MagnesiumMg)
	assert.Equal(t, 2300, rep.Micros.SodiumMg)
}

func TestCalculateIdempotent(t *testing.T) {
	p := testProfile()
	assert.Equal(t, Calculate(p), Calculate(p))
}

func TestCalculateFemaleMicros(t *testing.T) {
	p := testProfile()
	p.Sex = domain.SexFemale
	rep := Calculate(p)
	assert.Equal(t, 8, rep.Micros.ZincMg)
	assert.Equal(t, 320, rep.Micros.MagnesiumMg)
}
