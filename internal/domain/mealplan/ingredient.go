package mealplan

import (
	"fmt"
	"strings"
)

// Ingredient es la key cerrada de la tabla base de la receta.
// @Enum turkey, sweet_potato, carrot, broccoli
type Ingredient string

const (
	Turkey      Ingredient = "turkey"
	SweetPotato Ingredient = "sweet_potato"
	Carrot      Ingredient = "carrot"
	Broccoli    Ingredient = "broccoli"
)

// Ingredients en el orden de la tabla base (también el orden de salida).
var Ingredients = []Ingredient{Turkey, SweetPotato, Carrot, Broccoli}

type ingredientSpec struct {
	share     float64 // proporción por peso, unidades arbitrarias
	kcal100g  float64
	labelText string
}

var baseTable = map[Ingredient]ingredientSpec{
	Turkey:      {share: 60, kcal100g: 170, labelText: "Ground turkey 93/7"},
	SweetPotato: {share: 30, kcal100g: 86, labelText: "Sweet potato"},
	Carrot:      {share: 5, kcal100g: 41, labelText: "Carrot"},
	Broccoli:    {share: 5, kcal100g: 34, labelText: "Broccoli"},
}

// Label es el nombre para mostrar en el desglose.
func (i Ingredient) Label() string {
	if s, ok := baseTable[i]; ok {
		return s.labelText
	}
	return string(i)
}

// ParseIngredient valida una key exacta de la tabla (sin alias).
func ParseIngredient(s string) (Ingredient, error) {
	in := Ingredient(strings.TrimSpace(s))
	if _, ok := baseTable[in]; !ok {
		return "", fmt.Errorf("%w: unknown ingredient %q", ErrUnknownIngredient, s)
	}
	return in, nil
}

// ParseAllergy normaliza una alergia declarada a su ingrediente: ignora
// mayúsculas y espacios, y acepta "sweet potato" como alias de sweet_potato.
// El alias vale solo aquí, no en ParseIngredient.
func ParseAllergy(s string) (Ingredient, error) {
	norm := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if norm == "sweet potato" {
		return SweetPotato, nil
	}
	in := Ingredient(norm)
	if _, ok := baseTable[in]; !ok {
		return "", fmt.Errorf("%w: unknown allergy %q", ErrUnknownIngredient, s)
	}
	return in, nil
}

// ValidateAllergies rechaza keys fuera de la tabla (se usa en los bordes: seed y API).
func ValidateAllergies(allergies []string) error {
	for _, a := range allergies {
		if _, err := ParseAllergy(a); err != nil {
			return err
		}
	}
	return nil
}
