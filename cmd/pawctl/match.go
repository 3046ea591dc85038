package main

import (
	"fmt"

	"paw-connects/internal/domain/matching"

	"github.com/spf13/cobra"
)

func newMatchCmd(opts *rootOptions) *cobra.Command {
	var dogID, candidateID int

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Evalúa si un like entre dos perros genera match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.dogService()
			if err != nil {
				return err
			}
			mine, err := lookupDog(cmd.Context(), svc, dogID)
			if err != nil {
				return err
			}
			other, err := lookupDog(cmd.Context(), svc, candidateID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			m, ok := matching.EvaluateLike(mine, other)
			if !ok {
				fmt.Fprintf(out, "No match: %s and %s share no activities\n", mine.Name, other.Name)
				return nil
			}
			fmt.Fprintf(out, "It's a match! %s + %s: %s\n", m.MyDog.Name, m.OtherDog.Name, joinActivities(m.Shared))
			return nil
		},
	}
	cmd.Flags().IntVar(&dogID, "dog", 0, "id del perro propio")
	cmd.Flags().IntVar(&candidateID, "candidate", 0, "id del candidato")
	_ = cmd.MarkFlagRequired("dog")
	_ = cmd.MarkFlagRequired("candidate")
	return cmd
}
