package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

func (h *Handler) HandleRuns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.runStore.List())
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleRunDetail(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/runs/")

	// Document download: /api/runs/{id}/document
	if runID, ok := strings.CutSuffix(path, "/document"); ok {
		h.handleDocument(w, r, runID)
		return
	}

	run, ok := h.getRunOrError(w, path)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, run)
	case "DELETE":
		h.runStore.Delete(path)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleDocument(w http.ResponseWriter, r *http.Request, runID string) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	run, ok := h.getRunOrError(w, runID)
	if !ok {
		return
	}
	if run.Result == nil || run.Result.Document == "" {
		h.writeError(w, "Run has no document", http.StatusNotFound)
		return
	}

	filename := fmt.Sprintf("material_specifications_%s.md", run.Result.GeneratedAt.Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/markdown")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write([]byte(run.Result.Document)); err != nil {
		h.writeError(w, "Failed to write document", http.StatusInternalServerError)
	}
}
