package mealplan

import (
	"context"

	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/platform/logger"
)

// ActiveDogProvider devuelve el perro seleccionado en el perfil.
type ActiveDogProvider interface {
	ActiveDog(ctx context.Context) (dogs.Dog, error)
}

type Service struct {
	active ActiveDogProvider
	log    logger.Logger
}

func NewService(active ActiveDogProvider, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		active: active,
		log:    log.With(map[string]any{"module": "mealplan"}),
	}
}

// ForActiveDog genera el plan del perro activo (pantalla "Batch").
func (s *Service) ForActiveDog(ctx context.Context) (dogs.Dog, RecipePlan, error) {
	d, err := s.active.ActiveDog(ctx)
	if err != nil {
		return dogs.Dog{}, RecipePlan{}, err
	}
	p, err := s.ForDog(ctx, d)
	if err != nil {
		return dogs.Dog{}, RecipePlan{}, err
	}
	return d, p, nil
}

func (s *Service) ForDog(_ context.Context, d dogs.Dog) (RecipePlan, error) {
	p, err := GeneratePlan(d)
	if err != nil {
		s.log.Warn("meal plan rejected", map[string]any{"dog_id": d.ID, "err": err})
		return RecipePlan{}, err
	}
	s.log.Debug("meal plan generated", map[string]any{
		"dog_id":       d.ID,
		"kcal_per_day": p.KcalPerDay,
		"excluded":     len(p.Excluded),
	})
	return p, nil
}
