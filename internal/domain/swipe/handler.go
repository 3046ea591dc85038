package swipe

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"paw-connects/internal/domain/assets"
	"paw-connects/internal/domain/dogs"
	"paw-connects/internal/domain/matching"

	"github.com/go-chi/chi/v5"
)

const emptyDeckMessage = "No more profiles today. Go to Matches or create a batch recipe!"

func RegisterRoutes(r chi.Router, svc *Service, catalog assets.Catalog) {
	r.Route("/swipe", func(sr chi.Router) {
		sr.Get("/", viewHandler(svc, catalog))
		sr.Post("/like", likeHandler(svc, catalog))
		sr.Post("/skip", skipHandler(svc, catalog))
		sr.Post("/drag", dragHandler(svc, catalog))
	})

	r.Get("/matches", listMatchesHandler(svc, catalog))

	// Perfil: perros propios y selección del activo
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/dogs", listOwnedHandler(svc, catalog))
		pr.Put("/active", setActiveHandler(svc, catalog))
	})
}

type viewResponse struct {
	ActiveDog    dogs.DogResponse  `json:"active_dog"`
	Candidate    *dogs.DogResponse `json:"candidate"`
	Remaining    int               `json:"remaining"`
	EmptyMessage string            `json:"empty_message,omitempty"`
}

type resultResponse struct {
	Gesture   Gesture           `json:"gesture"`
	Candidate *dogs.DogResponse `json:"candidate,omitempty"`
	Matched   bool              `json:"matched"`
	Match     *matchResponse    `json:"match,omitempty"`
	Exhausted bool              `json:"exhausted"`
}

type dragRequest struct {
	OffsetX *float64 `json:"offset_x"`
}

type matchResponse struct {
	ID        string           `json:"id"`
	MyDog     dogs.DogResponse `json:"my_dog"`
	OtherDog  dogs.DogResponse `json:"other_dog"`
	Shared    dogs.Activities  `json:"shared_activities"`
	MatchedAt time.Time        `json:"matched_at"`
}

type ownedDogsResponse struct {
	ActiveDogID int                `json:"active_dog_id"`
	Dogs        []dogs.DogResponse `json:"dogs"`
}

type setActiveRequest struct {
	DogID int `json:"dog_id"`
}

// viewHandler godoc
// @Summary Perro activo y candidato actual
// @Tags swipe
// @Produce json
// @Success 200 {object} viewResponse
// @Router /swipe [get]
func viewHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.View(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := viewResponse{
			ActiveDog: dogs.ToResponse(r.Context(), v.ActiveDog, catalog),
			Remaining: v.Remaining,
		}
		if v.Candidate != nil {
			c := dogs.ToResponse(r.Context(), *v.Candidate, catalog)
			resp.Candidate = &c
		} else {
			resp.EmptyMessage = emptyDeckMessage
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// likeHandler godoc
// @Summary Like al candidato actual
// @Tags swipe
// @Produce json
// @Success 200 {object} resultResponse
// @Router /swipe/like [post]
func likeHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Like(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResultResponse(r, res, catalog))
	}
}

// skipHandler godoc
// @Summary Skip del candidato actual
// @Tags swipe
// @Produce json
// @Success 200 {object} resultResponse
// @Router /swipe/skip [post]
func skipHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Skip(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResultResponse(r, res, catalog))
	}
}

// dragHandler godoc
// @Summary Resuelve el gesto al soltar la tarjeta
// @Tags swipe
// @Accept json
// @Produce json
// @Param body body dragRequest true "offset horizontal"
// @Success 200 {object} resultResponse
// @Failure 400 {string} string
// @Router /swipe/drag [post]
func dragHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dragRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.OffsetX == nil {
			http.Error(w, "offset_x required", http.StatusBadRequest)
			return
		}

		res, err := svc.Drag(r.Context(), *req.OffsetX)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResultResponse(r, res, catalog))
	}
}

// listMatchesHandler godoc
// @Summary Matches en orden de creación
// @Tags matches
// @Produce json
// @Success 200 {array} matchResponse
// @Router /matches [get]
func listMatchesHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.Matches(r.Context())

		out := make([]matchResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMatchResponse(r, m, catalog))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listOwnedHandler godoc
// @Summary Mis perros y el activo
// @Tags profile
// @Produce json
// @Success 200 {object} ownedDogsResponse
// @Router /profile/dogs [get]
func listOwnedHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeID, owned := svc.OwnedDogs(r.Context())
		writeJSON(w, http.StatusOK, ownedDogsResponse{
			ActiveDogID: activeID,
			Dogs:        dogs.ToResponses(r.Context(), owned, catalog),
		})
	}
}

// setActiveHandler godoc
// @Summary Selecciona el perro activo
// @Tags profile
// @Accept json
// @Produce json
// @Param body body setActiveRequest true "dog id"
// @Success 200 {object} dogs.DogResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /profile/active [put]
func setActiveHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setActiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.SetActiveDog(r.Context(), req.DogID)
		if err != nil {
			if errors.Is(err, ErrUnknownDog) {
				http.Error(w, "dog not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, dogs.ToResponse(r.Context(), d, catalog))
	}
}

func toResultResponse(r *http.Request, res Result, catalog assets.Catalog) resultResponse {
	out := resultResponse{
		Gesture:   res.Gesture,
		Exhausted: res.Exhausted,
		Matched:   res.Match != nil,
	}
	if res.Candidate != nil {
		c := dogs.ToResponse(r.Context(), *res.Candidate, catalog)
		out.Candidate = &c
	}
	if res.Match != nil {
		m := toMatchResponse(r, *res.Match, catalog)
		out.Match = &m
	}
	return out
}

func toMatchResponse(r *http.Request, m matching.Match, catalog assets.Catalog) matchResponse {
	return matchResponse{
		ID:        m.ID,
		MyDog:     dogs.ToResponse(r.Context(), m.MyDog, catalog),
		OtherDog:  dogs.ToResponse(r.Context(), m.OtherDog, catalog),
		Shared:    m.Shared,
		MatchedAt: m.MatchedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
