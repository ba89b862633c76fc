package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/atelierfield/matspec/internal/models"
	"github.com/atelierfield/matspec/internal/pipeline"
	"github.com/atelierfield/matspec/internal/storage"
)

// Handler serves the web interface: image upload, run inspection, and
// document download.
type Handler struct {
	runStore *storage.RunStore
	runner   *pipeline.Runner
	provider string
	model    string
}

func New(runner *pipeline.Runner, provider, model string) *Handler {
	return &Handler{
		runStore: storage.New(),
		runner:   runner,
		provider: provider,
		model:    model,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) getRunOrError(w http.ResponseWriter, runID string) (*models.Run, bool) {
	run, exists := h.runStore.Get(runID)
	if !exists {
		h.writeError(w, "Run not found", http.StatusNotFound)
		return nil, false
	}
	return run, true
}
