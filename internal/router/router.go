package router

import (
	"context"
	"fmt"
	"net/http"

	mem "paw-connects/internal/adapters/storage/memory"
	_ "paw-connects/internal/docs"
	"paw-connects/internal/domain/chat"
	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/domain/mealplan"
	"paw-connects/internal/domain/quiz"
	"paw-connects/internal/domain/swipe"
	"paw-connects/internal/middleware"
	"paw-connects/internal/platform/logger"
	"paw-connects/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (nop)

	// Opcional: si no viene, usa el seed embebido.
	Seed *seed.Data

	// <= 0 usa swipe.DefaultThreshold.
	SwipeThreshold float64
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	data := opts.Seed
	if data == nil {
		d, err := seed.Default()
		if err != nil {
			return nil, err
		}
		data = &d
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/nav", navHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Repos in-memory (no hay persistencia)
	dogRepo, err := mem.NewDogRepo(data.Owned, data.Candidates)
	if err != nil {
		return nil, fmt.Errorf("build dog repo: %w", err)
	}
	catalog := mem.NewAssetCatalog(data.Assets)

	// Services por módulo
	dogsSvc := dogs.NewService(dogRepo)

	owned, candidates, err := dogsSvc.Deck(context.Background())
	if err != nil {
		return nil, err
	}
	deck, err := swipe.NewDeck(owned, candidates)
	if err != nil {
		return nil, err
	}
	swipeSvc := swipe.NewService(deck, opts.SwipeThreshold, log)
	planSvc := mealplan.NewService(swipeSvc, log)
	quizSvc, err := quiz.NewService(data.Quiz, log)
	if err != nil {
		return nil, err
	}

	// Rutas por módulo
	dogs.RegisterRoutes(r, dogsSvc, catalog)
	swipe.RegisterRoutes(r, swipeSvc, catalog)
	mealplan.RegisterRoutes(r, planSvc)
	quiz.RegisterRoutes(r, quizSvc)
	chat.RegisterRoutes(r, data.Chat)

	log.Info("router ready", map[string]any{
		"owned":      len(owned),
		"candidates": len(candidates),
		"questions":  len(data.Quiz),
	})

	return r, nil
}
