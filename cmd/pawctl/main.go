package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	mem "paw-connects/internal/adapters/storage/memory"
	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/platform/logger"
	"paw-connects/internal/seed"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pawctl: %v\n", err)
		os.Exit(1)
	}
}

// rootOptions son los flags compartidos por todos los subcomandos.
type rootOptions struct {
	seedFile string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pawctl",
		Short:         "Herramientas de línea de comandos para PawConnects",
		Long:          `Consulta los perfiles de muestra, calcula batches de 30 días y prueba matches sin levantar la API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "archivo YAML de seed (vacío = seed embebido)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "logs de debug a stderr")

	root.AddCommand(
		newDogsCmd(opts),
		newPlanCmd(opts),
		newMatchCmd(opts),
	)
	return root
}

func (o *rootOptions) logger() logger.Logger {
	if !o.verbose {
		return logger.NewNop()
	}
	return logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, App: "pawctl", Output: "stderr"})
}

// dogService arma el catálogo de perros desde el seed.
func (o *rootOptions) dogService() (*dogs.Service, error) {
	data, err := seed.Load(o.seedFile)
	if err != nil {
		return nil, err
	}
	repo, err := mem.NewDogRepo(data.Owned, data.Candidates)
	if err != nil {
		return nil, err
	}
	return dogs.NewService(repo), nil
}

func lookupDog(ctx context.Context, svc *dogs.Service, id int) (dogs.Dog, error) {
	d, err := svc.GetByID(ctx, id)
	if err != nil {
		return dogs.Dog{}, fmt.Errorf("dog %d: %w", id, err)
	}
	return d, nil
}

func joinActivities(a dogs.Activities) string {
	if len(a) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(a))
	for _, t := range a {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
