package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/atelierfield/matspec/internal/imaging"
	"github.com/atelierfield/matspec/internal/models"
	"github.com/atelierfield/matspec/internal/pipeline"
	"github.com/atelierfield/matspec/internal/prompts"
)

// maxImageSize bounds each uploaded image.
const maxImageSize = 10 * 1024 * 1024

// HandleGenerate accepts a multipart form with one or more images, an
// optional project brief, and the two option booleans, runs the pipeline,
// and stores the outcome as a new run.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		h.writeError(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		h.writeError(w, "At least one image is required", http.StatusBadRequest)
		return
	}

	var images []imaging.SourceImage
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			h.writeError(w, "Failed to read file "+header.Filename+": "+err.Error(), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
		file.Close()
		if err != nil {
			h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if len(data) >= maxImageSize {
			h.writeError(w, "File too large (max 10MB): "+header.Filename, http.StatusBadRequest)
			return
		}
		images = append(images, imaging.SourceImage{Name: header.Filename, Data: data})
	}

	brief := r.FormValue("brief")
	opts := prompts.Options{
		IncludeSustainability: r.FormValue("sustainability") == "true",
		IncludeAlternatives:   r.FormValue("alternatives") == "true",
	}

	run := &models.Run{
		ID:        fmt.Sprintf("run_%d", time.Now().UnixNano()),
		Provider:  h.provider,
		Model:     h.model,
		Options:   opts,
		CreatedAt: time.Now(),
	}
	for _, img := range images {
		run.Images = append(run.Images, img.Name)
	}

	slog.Info("Starting generation run", "run_id", run.ID, "images", len(images))

	result, err := h.runner.Run(r.Context(), images, brief, opts)
	run.Result = result
	if err != nil {
		run.Error = err.Error()
		h.runStore.Set(run.ID, run)

		if errors.Is(err, pipeline.ErrNoValidAnalysis) || errors.Is(err, pipeline.ErrNoValidSpecification) {
			h.writeJSON(w, map[string]any{
				"run_id": run.ID,
				"error":  err.Error(),
			})
			return
		}
		h.writeError(w, "Generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.runStore.Set(run.ID, run)
	slog.Info("Generation run complete", "run_id", run.ID, "specifications", len(result.Specifications))

	h.writeJSON(w, map[string]any{
		"run_id":         run.ID,
		"images":         len(images),
		"specifications": len(result.Specifications),
		"warnings":       result.Warnings,
		"message":        fmt.Sprintf("Generated %d specification(s)", len(result.Specifications)),
	})
}
