package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/domain/mealplan"

	"github.com/spf13/cobra"
)

type planOptions struct {
	dogID      int
	weightLb   float64
	activities []string
	allergies  []string
	asJSON     bool
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	po := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Calcula el batch casero de 30 días",
		Long: `Calcula el batch de 30 días para un perro del seed (--dog) o para un
perfil ad-hoc (--weight, --activity, --allergy).`,
		Example: `  pawctl plan --dog 1
  pawctl plan --weight 28 --activity hiking --allergy "sweet potato" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := po.resolveDog(cmd, opts)
			if err != nil {
				return err
			}

			svc := mealplan.NewService(nil, opts.logger())
			p, err := svc.ForDog(cmd.Context(), d)
			if err != nil {
				return err
			}

			if po.asJSON {
				return writePlanJSON(cmd, p)
			}
			writePlanText(cmd, d, p)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&po.dogID, "dog", 0, "id de un perro del seed")
	f.Float64Var(&po.weightLb, "weight", 0, "peso en libras (perfil ad-hoc)")
	f.StringSliceVar(&po.activities, "activity", nil, "actividades (RUNNING, BEACH, HIKING, PARK, AGILITY)")
	f.StringSliceVar(&po.allergies, "allergy", nil, "ingredientes a excluir")
	f.BoolVar(&po.asJSON, "json", false, "salida JSON")
	cmd.MarkFlagsMutuallyExclusive("dog", "weight")
	cmd.MarkFlagsOneRequired("dog", "weight")
	return cmd
}

func (po *planOptions) resolveDog(cmd *cobra.Command, opts *rootOptions) (dogs.Dog, error) {
	if cmd.Flags().Changed("dog") {
		if cmd.Flags().Changed("activity") || cmd.Flags().Changed("allergy") {
			return dogs.Dog{}, errors.New("--activity/--allergy only apply to ad-hoc profiles")
		}
		svc, err := opts.dogService()
		if err != nil {
			return dogs.Dog{}, err
		}
		return lookupDog(cmd.Context(), svc, po.dogID)
	}

	acts, err := dogs.ParseActivities(po.activities)
	if err != nil {
		return dogs.Dog{}, err
	}
	return dogs.Dog{
		Name:       "ad-hoc",
		WeightLb:   po.weightLb,
		Allergies:  po.allergies,
		Activities: acts,
	}, nil
}

func writePlanText(cmd *cobra.Command, d dogs.Dog, p mealplan.RecipePlan) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Batch for %s (%.1f lb, %s)\n", d.Name, d.WeightLb, joinActivities(d.Activities))
	fmt.Fprintf(out, "Calories/day: %d kcal\n", p.KcalPerDay)
	fmt.Fprintf(out, "Food/day: %d g (%.1f oz)\n", p.GramsPerDay, p.OzPerDay)
	fmt.Fprintf(out, "Per meal (2x/day): %d g (%.1f oz)\n", p.GramsPerMeal, p.OzPerMeal)
	fmt.Fprintf(out, "30-day batch: %.1f lb\n", p.TotalBatchLb30d)
	for _, row := range p.Breakdown() {
		fmt.Fprintf(out, "  %-20s %d lb %.1f oz\n", row.Label, row.Lb, row.RestOz)
	}
	fmt.Fprintln(out, p.Notes)
}

type planJSON struct {
	KcalPerDay      int                             `json:"kcal_per_day"`
	GramsPerDay     int                             `json:"grams_per_day"`
	GramsPerMeal    int                             `json:"grams_per_meal"`
	OzPerDay        float64                         `json:"oz_per_day"`
	OzPerMeal       float64                         `json:"oz_per_meal"`
	TotalBatchLb30d float64                         `json:"total_batch_lb_30d"`
	PerIngredientOz map[mealplan.Ingredient]float64 `json:"per_ingredient_oz"`
	Excluded        []mealplan.Ingredient           `json:"excluded"`
	Notes           string                          `json:"notes"`
}

func writePlanJSON(cmd *cobra.Command, p mealplan.RecipePlan) error {
	excluded := p.Excluded
	if excluded == nil {
		excluded = []mealplan.Ingredient{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(planJSON{
		KcalPerDay:      p.KcalPerDay,
		GramsPerDay:     p.GramsPerDay,
		GramsPerMeal:    p.GramsPerMeal,
		OzPerDay:        p.OzPerDay,
		OzPerMeal:       p.OzPerMeal,
		TotalBatchLb30d: p.TotalBatchLb30d,
		PerIngredientOz: p.PerIngredientOz,
		Excluded:        excluded,
		Notes:           p.Notes,
	})
}
