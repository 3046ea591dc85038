package main

import (
	"fmt"

	"paw-connects/internal/domain/dogs"

	"github.com/spf13/cobra"
)

func newDogsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dogs",
		Short: "Lista los perros propios y el mazo de candidatos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.dogService()
			if err != nil {
				return err
			}
			owned, err := svc.ListOwned(cmd.Context())
			if err != nil {
				return err
			}
			candidates, err := svc.ListCandidates(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "My dogs:")
			printDogs(cmd, owned)
			fmt.Fprintln(out, "Candidates:")
			printDogs(cmd, candidates)
			return nil
		},
	}
}

func printDogs(cmd *cobra.Command, items []dogs.Dog) {
	out := cmd.OutOrStdout()
	for _, d := range items {
		fmt.Fprintf(out, "  %4d  %-10s %2dy %5.1f lb  %-6s  %-18s  %s\n",
			d.ID, d.Name, d.AgeYears, d.WeightLb, d.Sex, d.Breed, joinActivities(d.Activities))
	}
}
