package dialogue

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kebele-gov/intake-agent/backend/internal/catalog"
	dialogueservice "github.com/kebele-gov/intake-agent/backend/internal/service/dialogue"
	"github.com/kebele-gov/intake-agent/backend/internal/service/upload"
	"github.com/kebele-gov/intake-agent/backend/pkg/utils"
)

// maxUploadBytes bounds one multipart chat turn.
const maxUploadBytes = 32 << 20

// Handler exposes the dialogue engine over HTTP.
type Handler struct {
	engine       *dialogueservice.Engine
	generatedDir string
	upgrader     upgrader
}

// New creates the dialogue HTTP handler. generatedDir is where completed
// certificates are served from.
func New(engine *dialogueservice.Engine, generatedDir string) *Handler {
	return &Handler{
		engine:       engine,
		generatedDir: generatedDir,
		upgrader:     newUpgrader(),
	}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/start", h.handleStart)
	r.Post("/chat", h.handleProcess)
	r.Get("/documents/{name}", h.handleDownload)
	r.Get("/ws/{userID}", h.handleWebSocket)
}

type startRequest struct {
	UserID   string `json:"userId"`
	Language string `json:"language"`
}

// handleStart creates (or resets) a session and returns the greeting.
func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	var payload startRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if payload.Language == "" {
		payload.Language = catalog.LanguageAmharic
	}

	prompt := h.engine.Start(r.Context(), payload.UserID, payload.Language)
	utils.RespondJSON(w, http.StatusOK, prompt)
}

type processRequest struct {
	UserID   string `json:"userId"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

// handleProcess runs one turn. JSON bodies carry plain messages; multipart
// bodies additionally carry document uploads under the "files" field.
func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	var payload processRequest
	var files []upload.File

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid multipart body")
			return
		}
		payload.UserID = r.FormValue("userId")
		payload.Message = r.FormValue("message")
		payload.Language = r.FormValue("language")

		// A multipart turn is an upload attempt even with zero files, so the
		// engine can re-prompt on an empty selection.
		headers := r.MultipartForm.File["files"]
		files = make([]upload.File, 0, len(headers))
		for _, header := range headers {
			f, err := header.Open()
			if err != nil {
				utils.RespondError(w, http.StatusBadRequest, "unreadable upload")
				return
			}
			defer f.Close()
			files = append(files, upload.File{Name: header.Filename, Content: f})
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if payload.UserID == "" {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if payload.Language == "" {
		payload.Language = catalog.LanguageAmharic
	}

	prompt := h.engine.Process(r.Context(), payload.UserID, payload.Message, payload.Language, files)
	utils.RespondJSON(w, http.StatusOK, prompt)
}

// handleDownload serves a generated certificate by filename.
func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(chi.URLParam(r, "name"))
	if name == "." || name == "/" || !strings.HasSuffix(name, ".pdf") {
		utils.RespondError(w, http.StatusBadRequest, "invalid document name")
		return
	}
	http.ServeFile(w, r, filepath.Join(h.generatedDir, name))
}
