package mealplan

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"paw-connects/internal/domain/dogs"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/recipe", func(rr chi.Router) {
		// Plan del perro activo
		rr.Get("/", activeDogPlanHandler(svc))
		// Plan para un perfil ad-hoc (no se guarda)
		rr.Post("/", adHocPlanHandler(svc))
	})
}

type planRequest struct {
	Name       string   `json:"name"`
	AgeYears   int      `json:"age_years"`
	WeightLb   float64  `json:"weight_lb"`
	Activities []string `json:"activities"`
	Allergies  []string `json:"allergies"`
}

type portionResponse struct {
	Ingredient Ingredient `json:"ingredient"`
	Label      string     `json:"label"`
	Oz         float64    `json:"oz"`
	Lb         int        `json:"lb"`
	RestOz     float64    `json:"rest_oz"`
}

type planResponse struct {
	Dog *planDogSummary `json:"dog,omitempty"`

	KcalPerDay      int                    `json:"kcal_per_day"`
	GramsPerDay     int                    `json:"grams_per_day"`
	GramsPerMeal    int                    `json:"grams_per_meal"`
	OzPerDay        float64                `json:"oz_per_day"`
	OzPerMeal       float64                `json:"oz_per_meal"`
	TotalBatchLb30d float64                `json:"total_batch_lb_30d"`
	PerIngredientOz map[Ingredient]float64 `json:"per_ingredient_oz"`
	Breakdown       []portionResponse      `json:"breakdown"`
	Excluded        []Ingredient           `json:"excluded"`
	Notes           string                 `json:"notes"`
}

type planDogSummary struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	WeightLb   float64         `json:"weight_lb"`
	AgeYears   int             `json:"age_years"`
	Allergies  []string        `json:"allergies"`
	Activities dogs.Activities `json:"activities"`
}

// activeDogPlanHandler godoc
// @Summary Batch de 30 días para el perro activo
// @Tags recipe
// @Produce json
// @Success 200 {object} planResponse
// @Failure 422 {string} string
// @Router /recipe [get]
func activeDogPlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, p, err := svc.ForActiveDog(r.Context())
		if err != nil {
			writePlanError(w, err)
			return
		}

		resp := toPlanResponse(p)
		resp.Dog = &planDogSummary{
			ID:         d.ID,
			Name:       d.Name,
			WeightLb:   d.WeightLb,
			AgeYears:   d.AgeYears,
			Allergies:  nonNilStrings(d.Allergies),
			Activities: d.Activities,
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// adHocPlanHandler godoc
// @Summary Batch de 30 días para un perfil ad-hoc
// @Tags recipe
// @Accept json
// @Produce json
// @Param body body planRequest true "perfil"
// @Success 200 {object} planResponse
// @Failure 400 {string} string
// @Failure 422 {string} string
// @Router /recipe [post]
func adHocPlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req planRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		acts, err := dogs.ParseActivities(req.Activities)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		d := dogs.Dog{
			Name:       strings.TrimSpace(req.Name),
			AgeYears:   req.AgeYears,
			WeightLb:   req.WeightLb,
			Allergies:  req.Allergies,
			Activities: acts,
		}
		if err := d.ValidateProfile(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.ForDog(r.Context(), d)
		if err != nil {
			writePlanError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPlanResponse(p))
	}
}

func writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInfeasibleDiet):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidDogProfile):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, dogs.ErrNotFound):
		http.Error(w, "dog not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPlanResponse(p RecipePlan) planResponse {
	rows := p.Breakdown()
	breakdown := make([]portionResponse, 0, len(rows))
	for _, b := range rows {
		breakdown = append(breakdown, portionResponse{
			Ingredient: b.Ingredient,
			Label:      b.Label,
			Oz:         b.Oz,
			Lb:         b.Lb,
			RestOz:     b.RestOz,
		})
	}

	excluded := p.Excluded
	if excluded == nil {
		excluded = []Ingredient{}
	}

	return planResponse{
		KcalPerDay:      p.KcalPerDay,
		GramsPerDay:     p.GramsPerDay,
		GramsPerMeal:    p.GramsPerMeal,
		OzPerDay:        p.OzPerDay,
		OzPerMeal:       p.OzPerMeal,
		TotalBatchLb30d: p.TotalBatchLb30d,
		PerIngredientOz: p.PerIngredientOz,
		Breakdown:       breakdown,
		Excluded:        excluded,
		Notes:           p.Notes,
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
