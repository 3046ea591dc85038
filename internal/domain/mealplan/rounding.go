package mealplan

import "math"

// Reglas de redondeo con nombre; no dependemos del formateo de floats.

// RoundHalfAwayFromZero redondea al entero más cercano; .5 se aleja del cero.
func RoundHalfAwayFromZero(x float64) int {
	return int(math.Round(x))
}

// toBoundedInt redondea como RoundHalfAwayFromZero pero falla si el valor
// no es finito o no entra en un int32.
func toBoundedInt(x float64) (int, bool) {
	r := math.Round(x)
	if math.IsNaN(r) || r > math.MaxInt32 || r < math.MinInt32 {
		return 0, false
	}
	return int(r), true
}

// RoundTenths redondea a un decimal con la misma regla (half away from zero).
func RoundTenths(x float64) float64 {
	return math.Round(x*10) / 10
}

const gramsPerOunce = 28.3495

func gramsToOunces(g int) float64 {
	return float64(g) / gramsPerOunce
}

// SplitPounds separa una cantidad en onzas en libras enteras + onzas (1 decimal).
func SplitPounds(oz float64) (lb int, rest float64) {
	lb = int(math.Floor(oz / 16))
	return lb, RoundTenths(oz - float64(lb)*16)
}
