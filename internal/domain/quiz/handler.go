package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/learn", func(lr chi.Router) {
		lr.Get("/", viewHandler(svc))
		lr.Post("/select", selectHandler(svc))
		lr.Post("/next", nextHandler(svc))
		lr.Post("/reset", resetHandler(svc))
	})
}

type selectRequest struct {
	Option *int `json:"option"`
}

type scoreResponse struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Ratio   float64 `json:"ratio"`
}

type viewResponse struct {
	Number      int           `json:"number"`
	Total       int           `json:"total"`
	Question    string        `json:"question"`
	Options     []string      `json:"options"`
	Selected    *int          `json:"selected"`
	Explanation string        `json:"explanation,omitempty"` // solo con opción elegida
	CanAdvance  bool          `json:"can_advance"`
	Finished    bool          `json:"finished"`
	Score       scoreResponse `json:"score"`
	Takeaway    string        `json:"takeaway,omitempty"`
}

// viewHandler godoc
// @Summary Pregunta actual del quiz
// @Tags learn
// @Produce json
// @Success 200 {object} viewResponse
// @Router /learn [get]
func viewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toViewResponse(svc.View(r.Context())))
	}
}

// selectHandler godoc
// @Summary Elige una opción
// @Tags learn
// @Accept json
// @Produce json
// @Param body body selectRequest true "índice de opción"
// @Success 200 {object} viewResponse
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /learn/select [post]
func selectHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Option == nil {
			http.Error(w, "option required", http.StatusBadRequest)
			return
		}

		v, err := svc.Select(r.Context(), *req.Option)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(v))
	}
}

// nextHandler godoc
// @Summary Avanza a la siguiente pregunta (requiere selección)
// @Tags learn
// @Produce json
// @Success 200 {object} viewResponse
// @Failure 409 {string} string
// @Router /learn/next [post]
func nextHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Next(r.Context())
		if err != nil {
			writeQuizError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toViewResponse(v))
	}
}

// resetHandler godoc
// @Summary Reinicia el quiz
// @Tags learn
// @Produce json
// @Success 200 {object} viewResponse
// @Router /learn/reset [post]
func resetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toViewResponse(svc.Reset(r.Context())))
	}
}

func writeQuizError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoSelection), errors.Is(err, ErrFinished):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toViewResponse(v View) viewResponse {
	out := viewResponse{
		Number:     v.Number,
		Total:      v.Total,
		Question:   v.Question.Prompt,
		Options:    v.Question.Options,
		CanAdvance: v.Attempt.CanAdvance(),
		Finished:   v.Attempt.Finished,
		Score: scoreResponse{
			Correct: v.Score.Correct,
			Total:   v.Score.Total,
			Ratio:   v.Score.Ratio(),
		},
	}
	if v.Attempt.HasSelection() {
		sel := v.Attempt.Selected
		out.Selected = &sel
		out.Explanation = "Why: " + v.Question.Explanation
	}
	if v.Attempt.Finished {
		out.Takeaway = Takeaway
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
