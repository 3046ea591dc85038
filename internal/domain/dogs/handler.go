package dogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"paw-connects/internal/domain/assets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catalog assets.Catalog) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc, catalog))
		dr.Get("/{dogID}", getDogHandler(svc, catalog))
	})
}

// AvatarResponse lleva la clave y el path del asset tal como están en el
// catálogo; el cliente los resuelve contra su propio bundle.
type AvatarResponse struct {
	ImageKey  string `json:"image_key,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
	Initial   string `json:"initial,omitempty"` // solo si no hay imagen
}

type DogResponse struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	AgeYears   int            `json:"age_years"`
	WeightLb   float64        `json:"weight_lb"`
	Sex        Sex            `json:"sex"`
	Neutered   bool           `json:"neutered"`
	Breed      string         `json:"breed"`
	Allergies  []string       `json:"allergies"`
	Activities Activities     `json:"activities"`
	Avatar     AvatarResponse `json:"avatar"`
}

type listDogsResponse struct {
	Owned      []DogResponse `json:"owned"`
	Candidates []DogResponse `json:"candidates"`
}

// listDogsHandler godoc
// @Summary Lista perros propios y candidatos
// @Tags dogs
// @Produce json
// @Success 200 {object} listDogsResponse
// @Router /dogs [get]
func listDogsHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owned, err := svc.ListOwned(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		candidates, err := svc.ListCandidates(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, listDogsResponse{
			Owned:      ToResponses(r.Context(), owned, catalog),
			Candidates: ToResponses(r.Context(), candidates, catalog),
		})
	}
}

// getDogHandler godoc
// @Summary Perfil de un perro
// @Tags dogs
// @Produce json
// @Param dogID path int true "dog id"
// @Success 200 {object} DogResponse
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service, catalog assets.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "dogID")))
		if err != nil {
			http.Error(w, "dogID must be an integer", http.StatusBadRequest)
			return
		}

		d, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "dog not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, ToResponse(r.Context(), d, catalog))
	}
}

// ToResponse arma la vista de un perro. Si el asset no existe (o no hay
// catálogo) usa la inicial del nombre.
func ToResponse(ctx context.Context, d Dog, catalog assets.Catalog) DogResponse {
	allergies := d.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	activities := d.Activities
	if activities == nil {
		activities = Activities{}
	}

	return DogResponse{
		ID:         d.ID,
		Name:       d.Name,
		AgeYears:   d.AgeYears,
		WeightLb:   d.WeightLb,
		Sex:        d.Sex,
		Neutered:   d.Neutered,
		Breed:      d.Breed,
		Allergies:  allergies,
		Activities: activities,
		Avatar:     avatarFor(ctx, d, catalog),
	}
}

func ToResponses(ctx context.Context, items []Dog, catalog assets.Catalog) []DogResponse {
	out := make([]DogResponse, 0, len(items))
	for _, d := range items {
		out = append(out, ToResponse(ctx, d, catalog))
	}
	return out
}

func avatarFor(ctx context.Context, d Dog, catalog assets.Catalog) AvatarResponse {
	if catalog != nil && strings.TrimSpace(d.ImageKey) != "" {
		a, err := catalog.Lookup(ctx, d.ImageKey)
		if err == nil {
			return AvatarResponse{ImageKey: a.Key, ImagePath: a.Path}
		}
	}
	return AvatarResponse{Initial: d.Initial()}
}

// writeJSON duplicado por módulo, igual que en el resto de handlers.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
