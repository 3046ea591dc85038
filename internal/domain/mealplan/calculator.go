package mealplan

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"paw-connects/internal/domain/dogs"
)

var (
	ErrInvalidDogProfile = errors.New("invalid dog profile")
	ErrInfeasibleDiet    = errors.New("infeasible diet")
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

const (
	lbToKg = 0.45359237

	rerCoefficient = 70.0
	rerExponent    = 0.75

	factorRunning = 1.9
	factorDefault = 1.6

	mealsPerDay = 2
	batchDays   = 30
	ozPerLb     = 16.0

	// MaxWeightLb: por encima, kcal y gramos del batch dejan de ser representables.
	MaxWeightLb = 1000.0

	Disclaimer = "Note: Educational estimate for demo. Consult your veterinarian for a clinical plan."
)

// RecipePlan es derivado: se recalcula siempre, nunca se guarda.
type RecipePlan struct {
	KcalPerDay int

	GramsPerDay  int
	GramsPerMeal int

	OzPerDay        float64
	OzPerMeal       float64
	TotalBatchLb30d float64

	// Onzas para 30 días por ingrediente; sin los excluidos por alergia.
	PerIngredientOz map[Ingredient]float64

	Excluded []Ingredient
	Notes    string
}

// IngredientPortion es una fila del desglose, en el orden de la tabla base.
type IngredientPortion struct {
	Ingredient Ingredient
	Label      string
	Oz         float64
	Lb         int
	RestOz     float64
}

// Breakdown ordena PerIngredientOz según la tabla y separa lb + oz.
func (p RecipePlan) Breakdown() []IngredientPortion {
	out := make([]IngredientPortion, 0, len(p.PerIngredientOz))
	for _, in := range Ingredients {
		oz, ok := p.PerIngredientOz[in]
		if !ok {
			continue
		}
		lb, rest := SplitPounds(oz)
		out = append(out, IngredientPortion{
			Ingredient: in,
			Label:      in.Label(),
			Oz:         oz,
			Lb:         lb,
			RestOz:     rest,
		})
	}
	return out
}

// RestingEnergyRequirement: RER = 70 * kg^0.75.
func RestingEnergyRequirement(weightKg float64) float64 {
	return rerCoefficient * math.Pow(weightKg, rerExponent)
}

// ActivityFactor: 1.9 si corre, 1.6 en cualquier otro caso.
func ActivityFactor(a dogs.Activities) float64 {
	if a.Has(dogs.ActivityRunning) {
		return factorRunning
	}
	return factorDefault
}

// DailyCalories devuelve kcal/día redondeadas (half away from zero).
func DailyCalories(d dogs.Dog) (int, error) {
	if !(d.WeightLb > 0) || d.WeightLb > MaxWeightLb {
		return 0, fmt.Errorf("%w: weight must be in (0, %g] lb", ErrInvalidDogProfile, MaxWeightLb)
	}
	rer := RestingEnergyRequirement(d.WeightLb * lbToKg)
	kcal, ok := toBoundedInt(rer * ActivityFactor(d.Activities))
	if !ok || kcal <= 0 {
		return 0, fmt.Errorf("%w: daily calories out of range", ErrInvalidDogProfile)
	}
	return kcal, nil
}

// GeneratePlan calcula el batch de 30 días. Determinista: misma entrada,
// misma salida (incluido el redondeo).
func GeneratePlan(d dogs.Dog) (RecipePlan, error) {
	kcalDay, err := DailyCalories(d)
	if err != nil {
		return RecipePlan{}, err
	}

	excluded, err := excludedIngredients(d.Allergies)
	if err != nil {
		return RecipePlan{}, fmt.Errorf("%w: %w", ErrInvalidDogProfile, err)
	}

	shares, err := normalizedShares(excluded)
	if err != nil {
		return RecipePlan{}, err
	}

	kcalPer100g := 0.0
	for _, in := range Ingredients {
		if s, ok := shares[in]; ok {
			kcalPer100g += s * baseTable[in].kcal100g
		}
	}

	gramsDayRaw := float64(kcalDay) / (kcalPer100g / 100)
	if _, ok := toBoundedInt(gramsDayRaw * batchDays); !ok {
		return RecipePlan{}, fmt.Errorf("%w: batch mass out of range", ErrInvalidDogProfile)
	}
	gramsDay := RoundHalfAwayFromZero(gramsDayRaw)
	gramsMeal := RoundHalfAwayFromZero(float64(gramsDay) / mealsPerDay)

	ozDay := gramsToOunces(gramsDay)
	ozMeal := gramsToOunces(gramsMeal)
	totalLb := ozDay * batchDays / ozPerLb

	perIngredient := make(map[Ingredient]float64, len(shares))
	for in, s := range shares {
		grams30 := RoundHalfAwayFromZero(s * float64(gramsDay*batchDays))
		perIngredient[in] = RoundTenths(gramsToOunces(grams30))
	}

	return RecipePlan{
		KcalPerDay:      kcalDay,
		GramsPerDay:     gramsDay,
		GramsPerMeal:    gramsMeal,
		OzPerDay:        RoundTenths(ozDay),
		OzPerMeal:       RoundTenths(ozMeal),
		TotalBatchLb30d: RoundTenths(totalLb),
		PerIngredientOz: perIngredient,
		Excluded:        excluded,
		Notes:           notesFor(excluded),
	}, nil
}

// excludedIngredients devuelve los ingredientes a excluir en orden de tabla.
func excludedIngredients(allergies []string) ([]Ingredient, error) {
	hit := make(map[Ingredient]struct{}, len(allergies))
	for _, a := range allergies {
		in, err := ParseAllergy(a)
		if err != nil {
			return nil, err
		}
		hit[in] = struct{}{}
	}

	out := make([]Ingredient, 0, len(hit))
	for _, in := range Ingredients {
		if _, ok := hit[in]; ok {
			out = append(out, in)
		}
	}
	return out, nil
}

// normalizedShares renormaliza las proporciones sobrevivientes para que sumen 1.
func normalizedShares(excluded []Ingredient) (map[Ingredient]float64, error) {
	skip := make(map[Ingredient]struct{}, len(excluded))
	for _, in := range excluded {
		skip[in] = struct{}{}
	}

	sum := 0.0
	for _, in := range Ingredients {
		if _, ok := skip[in]; ok {
			continue
		}
		sum += baseTable[in].share
	}
	if sum <= 0 {
		return nil, fmt.Errorf("%w: every base ingredient is excluded by allergies", ErrInfeasibleDiet)
	}

	out := make(map[Ingredient]float64, len(Ingredients)-len(skip))
	for _, in := range Ingredients {
		if _, ok := skip[in]; ok {
			continue
		}
		out[in] = baseTable[in].share / sum
	}
	return out, nil
}

func notesFor(excluded []Ingredient) string {
	if len(excluded) == 0 {
		return Disclaimer
	}
	keys := make([]string, 0, len(excluded))
	for _, in := range excluded {
		keys = append(keys, string(in))
	}
	return Disclaimer + " Excluded for allergies: " + strings.Join(keys, ", ") + "."
}
