package chat

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
)

// Message es una línea del transcript guionado.
type Message struct {
	From string `json:"from"`
	Text string `json:"text"`
	Time string `json:"time"` // hora tal cual se muestra ("9:02 AM")
}

// Transcript es contenido estático; no hay transporte de chat real.
type Transcript struct {
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
	// Notice aclara que el input está deshabilitado en la demo.
	Notice string `json:"notice"`
}

const inputDisabledNotice = "(Input disabled in demo)"

func NewTranscript(title string, msgs []Message) Transcript {
	return Transcript{
		Title:    title,
		Messages: slices.Clone(msgs),
		Notice:   inputDisabledNotice,
	}
}

// RegisterRoutes expone solo lectura: POST /chat no existe (chi responde 405).
func RegisterRoutes(r chi.Router, t Transcript) {
	r.Get("/chat", getChatHandler(t))
}

// getChatHandler godoc
// @Summary Transcript guionado
// @Tags chat
// @Produce json
// @Success 200 {object} Transcript
// @Router /chat [get]
func getChatHandler(t Transcript) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(t)
	}
}
