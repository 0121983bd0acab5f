package dialogue

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/kebele-gov/intake-agent/backend/internal/catalog"
)

type upgrader = websocket.Upgrader

func newUpgrader() upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// wsTurn is one inbound chat frame.
type wsTurn struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

/// handleWebSocket runs an interactive dialogue over a websocket: each inbound
// frame is one turn, each outbound frame the resulting prompt. File uploads
// stay on the HTTP endpoint.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		http.Error(w, "userID is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	language := r.URL.Query().Get("language")
	if language == "" {
		language = catalog.LanguageAmharic
	}

	connID := uuid.NewString()[:8]
	log.Printf("[ws] connection %s opened for user=%s", connID, userID)

	// Greet immediately so the client has the first question without sending
	// an empty turn.
	opening := h.engine.Process(r.Context(), userID, "", language, nil)
	if err := conn.WriteJSON(opening); err != nil {
		log.Printf("[ws] connection %s write failed: %v", connID, err)
		return
	}

	for {
		var turn wsTurn
		if err := conn.ReadJSON(&turn); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] connection %s read failed: %v", connID, err)
			}
			break
		}
		if turn.Language == "" {
			turn.Language = language
		}

		prompt := h.engine.Process(r.Context(), userID, turn.Message, turn.Language, nil)
		if err := conn.WriteJSON(prompt); err != nil {
			log.Printf("[ws] connection %s write failed: %v", connID, err)
			break
		}
	}

	log.Printf("[ws] connection %s closed for user=%s", connID, userID)
}
